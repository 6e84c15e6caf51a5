/*
Package textlocale is about comparing, matching and ordering Unicode text
the way human readers expect it, under the rules of a selected locale.

Description

Two strings which look identical to a reader may differ in their encoding:
an “á” may be stored as a single code-point or as an “a” followed by a
combining acute accent. Case mapping is not a simple per-rune table either:
in Turkish, “i” upper-cases to a dotted capital “İ”, and in German “ß”
upper-cases to two letters “SS”. And the alphabet itself is a matter of
locale: Swedish places “ö” after “z”, Hawaiian places vowels before
consonants.

Package textlocale and its sub-packages implement these concerns on top of
the Unicode data of golang.org/x/text:

  uax15     Unicode Normalization Forms (UAX#15)
  casing    locale-aware case mapping and case folding
  uts10     locale-aware collation, equality and substring search (UTS#10)
  sorting   stable, collation-consistent ordering of texts
  locale    the closed table of supported locale rule sets
  grapheme  length and substrings in units of user-perceived characters

Data flows from raw input through the normalizer to either the case mapper or
the collator; the sorter composes on top of the collator.

Text Ingestion

All packages operate on Go strings holding well-formed UTF-8. Conversion into
this representation is explicit and fallible: Validate, FromBytes, FromRunes
and FromEncoding are the ingestion points of this module. No operation
converts between encodings implicitly, and no operation processes part of a
malformed input: it either completes on the whole input or returns a
MalformedTextError.

Locales

Locale identifiers select rule sets from a closed table (see package locale).
An empty identifier selects the root rule set. Identifiers which cannot be
resolved result in an UnknownLocaleError; the library never falls back to the
root locale on its own. Clients wanting a fallback will have to catch the
error and retry with a known locale.

Fixed and Collation Matching

Package uts10 offers two kinds of matching. Fixed matching compares raw
code-point sequences and is the appropriate choice for performance-sensitive
exact matching. Collation matching normalizes its operands, applies locale
rules and compares collation weights; it is considerably more expensive, but
reflects what a reader would consider equal. Both are offered side by side
and neither is used as a silent substitute for the other.

Concurrency

All operations are pure functions of their inputs and of a locale's immutable
rule table. Rule tables are loaded lazily, once per locale, and may be used
from multiple goroutines concurrently.

___________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package textlocale

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
