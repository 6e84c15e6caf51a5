package grapheme

import (
	"strings"

	"github.com/npillmayer/textlocale"
	"github.com/rivo/uniseg"
)

// Len returns the number of graphemes in s.
func Len(s string) (int, error) {
	if err := textlocale.Validate(s); err != nil {
		return 0, err
	}
	return uniseg.GraphemeClusterCount(s), nil
}

// Sub returns the graphemes of s in the half-open range [from, to).
// Negative indices count from the end of s, i.e. -1 denotes the last
// grapheme. Indices are clamped to the bounds of s; an empty range results
// in "".
func Sub(s string, from, to int) (string, error) {
	gstr, err := StringFromString(s)
	if err != nil {
		return "", err
	}
	l := gstr.Len()
	from, to = clamp(from, l), clamp(to, l)
	if from >= to {
		return "", nil
	}
	var b strings.Builder
	for i := from; i < to; i++ {
		b.WriteString(gstr.Nth(i))
	}
	return b.String(), nil
}

func clamp(i, l int) int {
	if i < 0 {
		i += l
	}
	if i < 0 {
		return 0
	} else if i > l {
		return l
	}
	return i
}

// Truncate shortens s to at most n graphemes. If s has to be cut, ellipsis is
// appended and counts towards n. If ellipsis itself is longer than n
// graphemes, s is cut to n graphemes without an ellipsis. Truncate never
// splits a grapheme.
//
//	Truncate("Straße", 4, "…")  // => "Str…"
func Truncate(s string, n int, ellipsis string) (string, error) {
	gstr, err := StringFromString(s)
	if err != nil {
		return "", err
	}
	if n < 0 {
		n = 0
	}
	if gstr.Len() <= n {
		return s, nil
	}
	e, err := Len(ellipsis)
	if err != nil {
		return "", err
	}
	keep := n - e
	if keep < 0 {
		keep, ellipsis = n, ""
	}
	tracer().Debugf("truncating %d graphemes to %d", gstr.Len(), keep)
	var b strings.Builder
	for i := 0; i < keep; i++ {
		b.WriteString(gstr.Nth(i))
	}
	b.WriteString(ellipsis)
	return b.String(), nil
}
