package uts10

import "strings"

// EqualsFixed reports whether a and b consist of identical code-point
// sequences. No normalization is performed: “á” encoded as a single
// code-point is different from “a” followed by a combining acute accent.
func EqualsFixed(a, b string) bool {
	return a == b
}

// FindFixed returns the span of the first occurrence of the exact code-point
// sequence needle in haystack. An empty needle matches at position 0.
func FindFixed(haystack, needle string) (Span, bool) {
	i := strings.Index(haystack, needle)
	if i < 0 {
		return Span{}, false
	}
	return Span{Start: i, End: i + len(needle)}, true
}

// ContainsFixed reports whether the exact code-point sequence needle occurs in
// haystack.
func ContainsFixed(haystack, needle string) bool {
	return strings.Contains(haystack, needle)
}

// CountFixed counts the non-overlapping occurrences of needle in haystack.
// For an empty needle it returns 1 + the number of code-points in haystack.
func CountFixed(haystack, needle string) int {
	return strings.Count(haystack, needle)
}
