package locale

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/language"
)

// RuleSet is an immutable set of locale-specific rules. RuleSets are created
// by Resolve only and may be shared between goroutines.
type RuleSet struct {
	id       string
	name     string
	tag      language.Tag
	caseless bool
	upper    map[rune]rune
	lower    map[rune]rune
}

// ID returns the identifier of the rule set, e.g. "tr" or "root".
func (rs *RuleSet) ID() string {
	return rs.id
}

// Name returns a human readable name for the rule set.
func (rs *RuleSet) Name() string {
	return rs.name
}

// Tag returns the language tag selecting Unicode data for this rule set.
// The root rule set has tag language.Und.
func (rs *RuleSet) Tag() language.Tag {
	return rs.tag
}

// IsRoot is true for the root rule set.
func (rs *RuleSet) IsRoot() bool {
	return rs.id == RootID
}

// Caseless is true for languages whose scripts have no case distinction.
// Title-casing is not defined for these.
func (rs *RuleSet) Caseless() bool {
	return rs.caseless
}

// UpperException returns the locale-specific upper case mapping of r, if any.
func (rs *RuleSet) UpperException(r rune) (rune, bool) {
	u, ok := rs.upper[r]
	return u, ok
}

// LowerException returns the locale-specific lower case mapping of r, if any.
func (rs *RuleSet) LowerException(r rune) (rune, bool) {
	l, ok := rs.lower[r]
	return l, ok
}

// HasCaseExceptions is true if the rule set overrides any generic case mapping.
func (rs *RuleSet) HasCaseExceptions() bool {
	return len(rs.upper) > 0 || len(rs.lower) > 0
}

func (rs *RuleSet) String() string {
	return fmt.Sprintf("RuleSet[%s]", rs.id)
}

// makeRuleSet creates a rule set from a record of the rules data file.
func makeRuleSet(rec record) (*RuleSet, error) {
	tag, err := language.Parse(rec.Tag)
	if err != nil {
		return nil, fmt.Errorf("rule set %q: tag %q: %w", rec.ID, rec.Tag, err)
	}
	rs := &RuleSet{
		id:       rec.ID,
		name:     rec.Name,
		tag:      tag,
		caseless: rec.Caseless,
	}
	if rs.upper, err = runeTable(rec.Upper); err != nil {
		return nil, fmt.Errorf("rule set %q: upper: %w", rec.ID, err)
	}
	if rs.lower, err = runeTable(rec.Lower); err != nil {
		return nil, fmt.Errorf("rule set %q: lower: %w", rec.ID, err)
	}
	return rs, nil
}

func runeTable(m map[string]string) (map[rune]rune, error) {
	if len(m) == 0 {
		return nil, nil
	}
	t := make(map[rune]rune, len(m))
	for from, to := range m {
		f, ok := singleRune(from)
		if !ok {
			return nil, fmt.Errorf("exception key %q is not a single code-point", from)
		}
		r, ok := singleRune(to)
		if !ok {
			return nil, fmt.Errorf("exception value %q is not a single code-point", to)
		}
		t[f] = r
	}
	return t, nil
}

func singleRune(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, false
	}
	return r, true
}
