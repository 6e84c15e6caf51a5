package sorting

import (
	"bytes"
	"sort"

	"github.com/npillmayer/textlocale/uts10"
)

// Options control the ordering of a sort operation.
type Options struct {
	Locale     string // locale identifier; "" selects the root locale
	IgnoreCase bool   // fold case before comparing
	Numeric    bool   // order runs of digits by numeric value
	Descending bool   // reverse the order; ties keep their input order
}

func (o Options) collation() uts10.Options {
	return uts10.Options{
		Locale:     o.Locale,
		IgnoreCase: o.IgnoreCase,
		Numeric:    o.Numeric,
	}
}

// Sort returns a new slice holding texts in ascending order under the
// collation rules of locale. texts is not modified. If one of the texts is
// malformed or locale is unknown, no result is returned.
func Sort(texts []string, locale string) ([]string, error) {
	return SortWith(texts, Options{Locale: locale})
}

// SortWith returns a new slice holding texts ordered under opts.
func SortWith(texts []string, opts Options) ([]string, error) {
	return SortFunc(texts, func(s string) string { return s }, opts)
}

// SortFunc returns a new slice holding items ordered by the text component
// selected by text. Items with equal text components keep their relative
// order.
func SortFunc[E any](items []E, text func(E) string, opts Options) ([]E, error) {
	c, err := uts10.New(opts.collation())
	if err != nil {
		return nil, err
	}
	keyed := make([]keyedItem[E], len(items))
	for i, item := range items {
		k, err := c.Key(text(item))
		if err != nil {
			T().Debugf("cannot sort: item #%d has no collation key: %v", i, err)
			return nil, err
		}
		keyed[i] = keyedItem[E]{key: k, item: item}
	}
	sort.SliceStable(keyed, func(i, j int) bool {
		cmp := bytes.Compare(keyed[i].key, keyed[j].key)
		if opts.Descending {
			return cmp > 0
		}
		return cmp < 0
	})
	result := make([]E, len(keyed))
	for i := range keyed {
		result[i] = keyed[i].item
	}
	return result, nil
}

type keyedItem[E any] struct {
	key  []byte
	item E
}

// IsSorted reports whether texts are ordered under opts.
func IsSorted(texts []string, opts Options) (bool, error) {
	c, err := uts10.New(opts.collation())
	if err != nil {
		return false, err
	}
	var prev []byte
	for i, s := range texts {
		k, err := c.Key(s)
		if err != nil {
			return false, err
		}
		if i > 0 {
			cmp := bytes.Compare(prev, k)
			if (!opts.Descending && cmp > 0) || (opts.Descending && cmp < 0) {
				return false, nil
			}
		}
		prev = k
	}
	return true, nil
}
