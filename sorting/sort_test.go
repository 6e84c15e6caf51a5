package sorting

import (
	"errors"
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/textlocale"
)

func TestSortRoot(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	input := []string{"eggplant", "banana", "apple"}
	sorted, err := Sort(input, "")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(sorted, []string{"apple", "banana", "eggplant"}) {
		t.Errorf("expected apple, banana, eggplant, is %v", sorted)
	}
	if input[0] != "eggplant" {
		t.Errorf("expected input to be left untouched, is %v", input)
	}
}

func TestSortLocales(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tests := []struct {
		locale string
		input  []string
		want   []string
	}{
		{"haw", []string{"banana", "apple", "eggplant"}, []string{"apple", "eggplant", "banana"}},
		{"root", []string{"zebra", "\u00f6l"}, []string{"\u00f6l", "zebra"}},
		{"sv", []string{"\u00f6l", "zebra"}, []string{"zebra", "\u00f6l"}},
		{"sv_SE.UTF-8", []string{"\u00f6l", "zebra"}, []string{"zebra", "\u00f6l"}},
		{"de", []string{"\u00f6l", "zebra", "ol"}, []string{"ol", "\u00f6l", "zebra"}},
	}
	for _, tt := range tests {
		sorted, err := Sort(tt.input, tt.locale)
		if err != nil {
			t.Errorf("sorting under %q failed: %v", tt.locale, err)
			continue
		}
		if !reflect.DeepEqual(sorted, tt.want) {
			t.Errorf("sorting under %q: expected %q, is %q", tt.locale, tt.want, sorted)
		}
	}
}

func TestSortEmptyFirst(t *testing.T) {
	sorted, err := Sort([]string{"b", "", "a", "\u200b"}, "en")
	if err != nil {
		t.Fatal(err)
	}
	if sorted[0] != "" {
		t.Errorf("expected empty text to sort first, is %q", sorted)
	}
	if sorted, _ = Sort(nil, "en"); len(sorted) != 0 {
		t.Errorf("expected empty result for nil input, is %v", sorted)
	}
}

type record struct {
	name string
	n    int
}

func TestSortFuncStable(t *testing.T) {
	records := []record{{"b", 1}, {"a", 2}, {"b", 3}}
	byName := func(r record) string { return r.name }
	sorted, err := SortFunc(records, byName, Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := []record{{"a", 2}, {"b", 1}, {"b", 3}}
	if !reflect.DeepEqual(sorted, want) {
		t.Errorf("expected %v, is %v", want, sorted)
	}
	sorted, _ = SortFunc(records, byName, Options{Descending: true})
	want = []record{{"b", 1}, {"b", 3}, {"a", 2}}
	if !reflect.DeepEqual(sorted, want) {
		t.Errorf("expected descending %v, is %v", want, sorted)
	}
}

func TestSortEncodingVariantsStable(t *testing.T) {
	records := []record{{"caf\u00e9", 1}, {"cafe\u0301", 2}, {"caf\u00e9", 3}}
	sorted, err := SortFunc(records, func(r record) string { return r.name }, Options{Locale: "fr"})
	if err != nil {
		t.Fatal(err)
	}
	for i, r := range sorted {
		if r.n != i+1 {
			t.Errorf("expected canonically equivalent texts to keep input order, is %v", sorted)
			break
		}
	}
}

func TestSortWithOptions(t *testing.T) {
	sorted, err := SortWith([]string{"item10", "Item2", "item1"}, Options{IgnoreCase: true, Numeric: true})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(sorted, []string{"item1", "Item2", "item10"}) {
		t.Errorf("expected numeric case-insensitive order, is %v", sorted)
	}
	ok, err := IsSorted(sorted, Options{IgnoreCase: true, Numeric: true})
	if err != nil || !ok {
		t.Errorf("expected result to be sorted, is %v (%v)", ok, err)
	}
	if ok, _ = IsSorted(sorted, Options{Numeric: true, IgnoreCase: true, Descending: true}); ok {
		t.Errorf("expected ascending result not to be sorted descending")
	}
}

func TestSortErrors(t *testing.T) {
	if _, err := Sort([]string{"a", "b"}, "xx-YY"); !errors.Is(err, textlocale.ErrUnknownLocale) {
		t.Errorf("expected unknown locale error, is %v", err)
	}
	sorted, err := Sort([]string{"a", "b\xff"}, "en")
	if !errors.Is(err, textlocale.ErrMalformedText) {
		t.Errorf("expected malformed text error, is %v", err)
	}
	if sorted != nil {
		t.Errorf("expected no partial result, is %v", sorted)
	}
}

func BenchmarkSort(b *testing.B) {
	words := []string{"Zebra", "apple", "\u00c4pfel", "banana", "Birne", "cherry", "\u00f6l", "eggplant"}
	for i := 0; i < b.N; i++ {
		_, _ = Sort(words, "de")
	}
}
