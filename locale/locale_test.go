package locale

import (
	"errors"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/textlocale"
	"golang.org/x/text/language"
)

func TestCatalog(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	ids := Supported()
	if len(ids) < 10 {
		t.Fatalf("expected at least 10 supported rule sets, have %d", len(ids))
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Errorf("expected supported ids to be sorted, have %v", ids)
			break
		}
	}
	if DataVersion() == "" {
		t.Errorf("expected rules data to carry a version")
	}
	for _, id := range ids {
		if _, err := Resolve(id); err != nil {
			t.Errorf("rule set %q from catalog does not load: %v", id, err)
		}
	}
}

func TestResolve(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	tests := []struct {
		input string
		id    string
	}{
		{"", RootID},
		{"und", RootID},
		{"ROOT", RootID},
		{"C", RootID},
		{"POSIX", RootID},
		{"en", "en"},
		{"en-US", "en"},
		{"tr", "tr"},
		{"tr-TR", "tr"},
		{"tr_TR.UTF-8", "tr"},
		{"de_CH@euro", "de"},
		{"zh-Hant", "zh"},
		{"haw", "haw"},
	}
	for _, tt := range tests {
		rs, err := Resolve(tt.input)
		if err != nil {
			t.Errorf("Resolve(%q) failed: %v", tt.input, err)
			continue
		}
		if rs.ID() != tt.id {
			t.Errorf("Resolve(%q) = %s, want %s", tt.input, rs.ID(), tt.id)
		}
	}
}

func TestResolveUnknown(t *testing.T) {
	for _, id := range []string{"xx-YY", "no such locale", "sr", "tlh"} {
		rs, err := Resolve(id)
		if err == nil {
			t.Errorf("expected Resolve(%q) to fail, have %v", id, rs)
			continue
		}
		if !errors.Is(err, textlocale.ErrUnknownLocale) {
			t.Errorf("expected unknown locale error for %q, have %v", id, err)
		}
		var lerr *textlocale.UnknownLocaleError
		if !errors.As(err, &lerr) || lerr.Locale != id {
			t.Errorf("expected error to carry locale %q, have %v", id, err)
		}
	}
}

func TestRuleSets(t *testing.T) {
	root := Root()
	if !root.IsRoot() || root.Tag() != language.Und {
		t.Errorf("expected root rule set with undetermined tag, have %v", root)
	}
	if root.HasCaseExceptions() {
		t.Errorf("root rule set must not have case exceptions")
	}
	tr := MustResolve("tr")
	if u, ok := tr.UpperException('i'); !ok || u != '\u0130' {
		t.Errorf("expected Turkish upper exception i -> U+0130, have %#U", u)
	}
	if l, ok := tr.LowerException('I'); !ok || l != '\u0131' {
		t.Errorf("expected Turkish lower exception I -> U+0131, have %#U", l)
	}
	if _, ok := tr.UpperException('a'); ok {
		t.Errorf("expected no exception for 'a'")
	}
	if !MustResolve("ja").Caseless() || tr.Caseless() {
		t.Errorf("expected only Japanese to be caseless")
	}
}

func TestConcurrentFirstUse(t *testing.T) {
	const n = 16
	results := make([]*RuleSet, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rs, err := Resolve("az")
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			results[i] = rs
		}(i)
	}
	wg.Wait()
	for i := 1; i < n; i++ {
		if results[i] != results[0] {
			t.Fatalf("concurrent resolution produced different rule set instances")
		}
	}
}

func TestCanonicalKey(t *testing.T) {
	if k := canonicalKey(" tr_TR.UTF-8@euro "); k != "tr-tr" {
		t.Errorf("expected canonical key tr-tr, have %q", k)
	}
}

func TestBadRulesData(t *testing.T) {
	_, err := parseCatalog([]byte("locales:\n  - id: en\n    tag: en\n"))
	if err == nil {
		t.Errorf("expected rules data without root rule set to be rejected")
	}
	_, err = makeRuleSet(record{ID: "x", Tag: "en", Upper: map[string]string{"ab": "C"}})
	if err == nil {
		t.Errorf("expected multi code-point exception to be rejected")
	}
}

func TestEnvLocale(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	saved := detectIETF
	defer func() { detectIETF = saved }()
	detectIETF = func() (string, error) { return "tr-TR", nil }
	rs, err := FromEnvironment()
	if err != nil || rs.ID() != "tr" {
		t.Errorf("expected Turkish rules from environment, have %v, %v", rs, err)
	}
	detectIETF = func() (string, error) { return "", errors.New("no LANG") }
	if _, err = FromEnvironment(); err == nil {
		t.Errorf("expected detection failure to be reported")
	}
	detectIETF = func() (string, error) { return "xx-YY", nil }
	if _, err = FromEnvironment(); !errors.Is(err, textlocale.ErrUnknownLocale) {
		t.Errorf("expected unsupported user locale to be reported, have %v", err)
	}
}
