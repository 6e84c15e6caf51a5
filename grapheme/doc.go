/*
Package grapheme implements strings in units of user-perceived characters.

Unicode Annex #29 defines how to break text into grapheme clusters, i.e.
what a reader would perceive as a single character. “é” may be encoded as
one or as two code-points, a family emoji as seven, but either way it is a
single grapheme. Operations in this package count and slice in graphemes:

	s, _ := grapheme.StringFromString("世界")
	fmt.Printf("number of graphemes: %d", s.Len())                     // => 2
	fmt.Printf("number of bytes for 2nd grapheme: %d", len(s.Nth(1)))  // => 3

Grapheme strings are a read-only data structure and not intended for large
texts, but rather for small to medium-sized strings such as labels, names or
table cells. Finding graphemes is an operation with runtime complexity O(N).

Grapheme cluster boundaries are provided by github.com/rivo/uniseg.

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grapheme

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
