/*
Package uts10 implements locale-aware comparison and matching of texts
following Unicode® Technical Standard #10 “Unicode Collation Algorithm”.

UTS 10 Introduction

From the Unicode Consortium:

Collation is the general term for the process and function of determining
the sorting order of strings of characters. It is a key function in computer
systems; whenever a list of strings is presented to users, they are likely
to want it in a sorted order so that they can easily and reliably find
individual strings.

[…]

Collation varies according to language and culture: Germans, French and
Swedes sort the same characters differently. It may also vary by specific
application: even within the same language, dictionaries may sort
differently than phonebooks or book indices.

Fixed and Collation Matching

This package offers two families of operations.

Fixed matching (EqualsFixed, ContainsFixed, FindFixed) compares raw
code-point sequences. It does not normalize, does not know about locales and
does not fold case. Fixed equality is a single comparison of the encoded
bytes, O(n); fixed search is a substring search of O(n+m). It is the right
choice for performance-sensitive exact matching.

Collation matching (Equals, Compare, Contains, Find) compares texts the way a
human reader would. Every comparison normalizes its operands (package uax15),
optionally folds case under locale rules (package casing), and then compares
collation weights of the locale's tables. All of this costs allocations and
table look-ups per code-point, and collation search may have to re-examine
text at every position of the haystack (O(n·m) in the worst case). Collation
matching is therefore always more expensive than fixed matching. Clients
should choose deliberately; this package will never switch between the two
behind the scenes.

Locales

Options select a locale by identifier (see package locale). Different
locales may disagree on whether two texts are equal when ignoring case:
under Turkish rules “i” and “İ” are case variants of the same letter, under
root rules they are not. This is expected behavior.

Collation tables and collation-aware search are provided by
golang.org/x/text/collate and golang.org/x/text/search.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package uts10

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
