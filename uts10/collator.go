package uts10

import (
	"bytes"
	"fmt"

	"github.com/npillmayer/textlocale"
	"github.com/npillmayer/textlocale/casing"
	"github.com/npillmayer/textlocale/locale"
	"github.com/npillmayer/textlocale/uax15"
)

// Options select the rules of a collation operation. Options are passed by
// value and are immutable for an operation.
type Options struct {
	IgnoreCase bool   // fold case under the locale's rules before comparing
	Locale     string // locale identifier; "" selects the root locale
	Numeric    bool   // compare runs of digits by numeric value
}

// Ordering is the result of comparing two texts.
type Ordering int

// Orderings returned by Compare.
const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	}
	return fmt.Sprintf("Ordering(%d)", int(o))
}

// Span is a match position in a text, given as half-open byte offsets
// [Start, End).
type Span struct {
	Start, End int
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Collator compares and matches texts under a fixed set of options.
// A Collator is immutable and may be used from multiple goroutines;
// per-operation state is borrowed from a pool.
type Collator struct {
	opts   Options
	rules  *locale.RuleSet
	mapper *casing.Mapper
	cache  *uax15.Cache
	pool   *workspacePool
}

// New creates a Collator for opts. If opts.Locale does not resolve to a
// supported rule set, a *textlocale.UnknownLocaleError is returned.
func New(opts Options) (*Collator, error) {
	return NewCached(opts, nil)
}

// NewCached creates a Collator which memoizes normalized forms of its
// operands in cache. cache may be nil, in which case nothing is cached.
func NewCached(opts Options, cache *uax15.Cache) (*Collator, error) {
	rules, err := locale.Resolve(opts.Locale)
	if err != nil {
		return nil, err
	}
	return &Collator{
		opts:   opts,
		rules:  rules,
		mapper: casing.ForRules(rules),
		cache:  cache,
		pool:   poolFor(rules, opts),
	}, nil
}

// Options returns the options of c.
func (c *Collator) Options() Options {
	return c.opts
}

// Rules returns the locale rule set of c.
func (c *Collator) Rules() *locale.RuleSet {
	return c.rules
}

// prepare normalizes text and, if requested, folds case.
func (c *Collator) prepare(text string) (string, error) {
	var n uax15.Normalized
	var err error
	if c.cache != nil {
		n, err = c.cache.Normalize(text)
	} else {
		n, err = uax15.Normalize(text)
	}
	if err != nil {
		return "", err
	}
	if !c.opts.IgnoreCase || n == "" {
		return string(n), nil
	}
	folded, err := c.mapper.Fold(string(n))
	if err != nil {
		return "", err
	}
	// case folding may leave text in a non-canonical state
	n, err = uax15.Normalize(folded)
	return string(n), err
}

// nonEmpty is prepended to keys of non-empty texts. This makes the empty text
// the smallest of all and different from texts consisting of ignorable
// code-points only.
const nonEmpty = 0x01

// Key returns a sort key for text. Comparing keys with bytes.Compare yields
// the same result as Compare for the respective texts.
func (c *Collator) Key(text string) ([]byte, error) {
	p, err := c.prepare(text)
	if err != nil {
		return nil, err
	}
	if p == "" {
		return []byte{}, nil
	}
	ws, err := c.pool.borrow()
	if err != nil {
		return nil, err
	}
	defer c.pool.release(ws)
	k := ws.coll.KeyFromString(&ws.buf, p)
	key := make([]byte, 0, len(k)+1)
	key = append(key, nonEmpty)
	return append(key, k...), nil
}

// Compare compares a and b under the collation rules of c.
func (c *Collator) Compare(a, b string) (Ordering, error) {
	ka, err := c.Key(a)
	if err != nil {
		return Equal, err
	}
	kb, err := c.Key(b)
	if err != nil {
		return Equal, err
	}
	return Ordering(bytes.Compare(ka, kb)), nil
}

// Equal reports whether a and b are equal under the collation rules of c.
// Texts which differ only in the encoding of accented characters are equal.
// The empty text is equal to the empty text only.
func (c *Collator) Equal(a, b string) (bool, error) {
	o, err := c.Compare(a, b)
	return o == Equal, err
}

// Find returns the position of the first match of needle in haystack under
// the collation rules of c. The span is given in byte offsets of haystack as
// passed in; the matched region may be encoded differently than needle.
// An empty needle matches at position 0.
func (c *Collator) Find(haystack, needle string) (Span, bool, error) {
	if err := textlocale.Validate(haystack); err != nil {
		return Span{}, false, err
	}
	if err := textlocale.Validate(needle); err != nil {
		return Span{}, false, err
	}
	if needle == "" {
		return Span{}, true, nil
	}
	if haystack == "" {
		return Span{}, false, nil
	}
	ws, err := c.pool.borrow()
	if err != nil {
		return Span{}, false, err
	}
	defer c.pool.release(ws)
	start, end := ws.matcher.IndexString(haystack, needle)
	if start < 0 {
		return Span{}, false, nil
	}
	return Span{Start: start, End: end}, true, nil
}

// Contains reports whether needle occurs in haystack under the collation
// rules of c.
func (c *Collator) Contains(haystack, needle string) (bool, error) {
	_, found, err := c.Find(haystack, needle)
	return found, err
}

// --- Package level functions -----------------------------------------------

// Equals reports whether a and b are equal under opts.
func Equals(a, b string, opts Options) (bool, error) {
	c, err := New(opts)
	if err != nil {
		return false, err
	}
	return c.Equal(a, b)
}

// Compare compares a and b under opts.
func Compare(a, b string, opts Options) (Ordering, error) {
	c, err := New(opts)
	if err != nil {
		return Equal, err
	}
	return c.Compare(a, b)
}

// Contains reports whether needle occurs in haystack under opts.
func Contains(haystack, needle string, opts Options) (bool, error) {
	c, err := New(opts)
	if err != nil {
		return false, err
	}
	return c.Contains(haystack, needle)
}

// Find returns the span of the first match of needle in haystack under opts.
func Find(haystack, needle string, opts Options) (Span, bool, error) {
	c, err := New(opts)
	if err != nil {
		return Span{}, false, err
	}
	return c.Find(haystack, needle)
}
