/*
Package sorting orders texts by the collation rules of a locale.

Sorting is stable: texts which compare as equal keep their relative input
order. The order produced is consistent with uts10.Compare for the same
options, i.e. for any two neighbours a, b of a sorted result Compare(a, b)
is never Greater. The empty text sorts before every other text.

Collation keys are computed once per element; afterwards the sort compares
plain byte slices. Sorting n texts therefore costs n key constructions plus
O(n log n) byte comparisons.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sorting

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
