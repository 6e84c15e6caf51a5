/*
Package locale provides the closed table of locale rule sets used for case
mapping and collation.

Rule Sets

A rule set bundles everything locale-specific this module knows about a
language: its BCP 47 language tag (selecting collation tables of
golang.org/x/text), case exceptions which take precedence over the generic
Unicode case mapping, and whether the language's scripts know about case at
all.

Supported rule sets are listed in an embedded data file, which is read once
on first use. Each rule set in turn is built at most once, the first time it
is resolved; concurrent first use of a locale will never produce more than one
instance of a rule set.

Resolving Identifiers

Resolve accepts BCP 47 tags as well as POSIX style locale names:

	tr, tr-TR, tr_TR, tr_TR.UTF-8   => Turkish rules
	"", und, root, C, POSIX         => root rules

Identifiers are first looked up literally; if that fails and they name a
region or script, the rule set of their base language is used. Anything else
results in an UnknownLocaleError. Package locale never silently substitutes
the root rule set.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package locale

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
