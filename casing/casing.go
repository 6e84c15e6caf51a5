/*
Package casing implements locale-aware case mapping.

Case mapping under the rules of a locale first applies the locale's case
exceptions (see package locale), then the full Unicode case mapping for the
locale's language. Clients should not assume that case mapping preserves the
length of a text:

	casing.ToUpper("straße", "de")   // => "STRASSE"
	casing.ToUpper("istanbul", "tr") // => "İSTANBUL"
	casing.ToUpper("istanbul", "")   // => "ISTANBUL"

Case mapping is provided by golang.org/x/text/cases.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package casing

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/textlocale"
	"github.com/npillmayer/textlocale/locale"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// T traces to a global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Mapper maps text to upper, lower or title case under the rules of a locale.
// A Mapper is immutable and may be used by multiple goroutines.
type Mapper struct {
	rules *locale.RuleSet
}

// New creates a Mapper for a locale identifier. The empty identifier selects
// the root rule set. Unknown locales result in a *textlocale.UnknownLocaleError.
func New(loc string) (*Mapper, error) {
	rules, err := locale.Resolve(loc)
	if err != nil {
		return nil, err
	}
	return ForRules(rules), nil
}

// ForRules creates a Mapper for a resolved rule set.
func ForRules(rules *locale.RuleSet) *Mapper {
	if rules == nil {
		rules = locale.Root()
	}
	return &Mapper{rules: rules}
}

// Rules returns the locale rule set of the mapper.
func (m *Mapper) Rules() *locale.RuleSet {
	return m.rules
}

// ToUpper maps text to upper case.
func (m *Mapper) ToUpper(text string) (string, error) {
	return m.apply(text, m.rules.UpperException, cases.Upper(m.rules.Tag()))
}

// ToLower maps text to lower case.
func (m *Mapper) ToLower(text string) (string, error) {
	return m.apply(text, m.rules.LowerException, cases.Lower(m.rules.Tag()))
}

// ToTitle maps the first letter of every word in text to title case and the
// remaining letters to lower case.
//
// For locales without case distinction a *textlocale.UnsupportedOperationError
// is returned.
func (m *Mapper) ToTitle(text string) (string, error) {
	if m.rules.Caseless() {
		return "", &textlocale.UnsupportedOperationError{Op: "ToTitle", Locale: m.rules.ID()}
	}
	// Lower exceptions first: Turkish “ıstanbul” has to become “Istanbul”,
	// not “İstanbul”.
	return m.apply(text, m.rules.LowerException, cases.Title(m.rules.Tag()))
}

// Fold maps text to a case-insensitive canonical form for comparisons.
// Locale exceptions for lower-casing are applied before full Unicode case
// folding, therefore Turkish “İ” and “i” fold together, whereas for the root
// locale “İ” folds to “i̇” (i with combining dot above).
func (m *Mapper) Fold(text string) (string, error) {
	return m.apply(text, m.rules.LowerException, cases.Fold())
}

func (m *Mapper) apply(text string, exceptions func(rune) (rune, bool), caser cases.Caser) (string, error) {
	if err := textlocale.Validate(text); err != nil {
		return "", err
	}
	if text == "" {
		return "", nil
	}
	var t transform.Transformer = caser
	if m.rules.HasCaseExceptions() {
		t = transform.Chain(runes.Map(func(r rune) rune {
			if x, ok := exceptions(r); ok {
				return x
			}
			return r
		}), caser)
	}
	out, _, err := transform.String(t, text)
	if err != nil {
		T().Errorf("case mapping for locale %s failed: %v", m.rules.ID(), err)
		return "", err
	}
	return out, nil
}

// --- Convenience functions -------------------------------------------------

// ToUpper maps text to upper case under the rules of locale loc.
func ToUpper(text, loc string) (string, error) {
	m, err := New(loc)
	if err != nil {
		return "", err
	}
	return m.ToUpper(text)
}

// ToLower maps text to lower case under the rules of locale loc.
func ToLower(text, loc string) (string, error) {
	m, err := New(loc)
	if err != nil {
		return "", err
	}
	return m.ToLower(text)
}

// ToTitle maps text to title case under the rules of locale loc.
func ToTitle(text, loc string) (string, error) {
	m, err := New(loc)
	if err != nil {
		return "", err
	}
	return m.ToTitle(text)
}

// Fold case-folds text under the rules of locale loc.
func Fold(text, loc string) (string, error) {
	m, err := New(loc)
	if err != nil {
		return "", err
	}
	return m.Fold(text)
}
