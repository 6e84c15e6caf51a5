/*
Package uax15 implements Unicode® Standard Annex #15 “Unicode Normalization Forms”
for the comparison of texts.

UAX 15 Introduction

From the Unicode Consortium:

Unicode Normalization Forms are formally defined normalizations of Unicode
strings which make it possible to determine whether any two Unicode strings
are equivalent to each other. Depending on the particular Unicode
Normalization Form, that equivalence can either be a canonical equivalence
or a compatibility equivalence.

[…]

Canonical equivalence is a fundamental equivalency between characters or
sequences of characters which represent the same abstract character, and
which when correctly displayed should always have the same visual appearance
and behavior.

Usage

Normalize maps any mixture of precomposed characters and decomposed sequences
to NFC, the canonical representative used throughout this module:

	n, err := uax15.Normalize("á")   // n == "á"

Normalization does not depend on a locale. It fails only for malformed input.
Results are not cached, unless clients explicitly use a Cache.

The Unicode data is provided by golang.org/x/text/unicode/norm.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package uax15

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
