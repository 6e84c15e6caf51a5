package locale

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/textlocale"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// RootID is the identifier of the root rule set.
const RootID = "root"

//go:embed data/locales.yaml
var rulesData []byte

// record is an entry of the rules data file.
type record struct {
	ID       string            `yaml:"id"`
	Aliases  []string          `yaml:"aliases"`
	Tag      string            `yaml:"tag"`
	Name     string            `yaml:"name"`
	Caseless bool              `yaml:"caseless"`
	Upper    map[string]string `yaml:"upper"`
	Lower    map[string]string `yaml:"lower"`
}

type document struct {
	Version string   `yaml:"version"`
	Locales []record `yaml:"locales"`
}

// entry holds a rule set, which is built lazily on first use.
type entry struct {
	rec   record
	once  sync.Once
	rules *RuleSet
	err   error
}

func (e *entry) load() (*RuleSet, error) {
	e.once.Do(func() {
		e.rules, e.err = makeRuleSet(e.rec)
		if e.err != nil {
			tracer().Errorf("cannot load locale rules: %v", e.err)
			return
		}
		tracer().Infof("loaded locale rule set %q (%s)", e.rules.id, e.rules.tag)
	})
	return e.rules, e.err
}

type catalog struct {
	version string
	entries *treemap.Map // id -> *entry, ordered by id
	aliases map[string]*entry
}

var (
	catalogOnce sync.Once
	theCatalog  *catalog
	catalogErr  error
)

func loadCatalog() (*catalog, error) {
	catalogOnce.Do(func() {
		theCatalog, catalogErr = parseCatalog(rulesData)
		if catalogErr != nil {
			tracer().Errorf("cannot read locale rules data: %v", catalogErr)
		}
	})
	return theCatalog, catalogErr
}

func parseCatalog(data []byte) (*catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("locale rules: %w", err)
	}
	cat := &catalog{
		version: doc.Version,
		entries: treemap.NewWithStringComparator(),
		aliases: make(map[string]*entry),
	}
	for _, rec := range doc.Locales {
		id := canonicalKey(rec.ID)
		if id == "" {
			return nil, fmt.Errorf("locale rules: entry without id")
		}
		if _, dup := cat.entries.Get(id); dup {
			return nil, fmt.Errorf("locale rules: duplicate id %q", id)
		}
		rec.ID = id
		e := &entry{rec: rec}
		cat.entries.Put(id, e)
		for _, alias := range rec.Aliases {
			cat.aliases[canonicalKey(alias)] = e
		}
	}
	if _, ok := cat.entries.Get(RootID); !ok {
		return nil, fmt.Errorf("locale rules: missing %q rule set", RootID)
	}
	tracer().Debugf("locale rules version %q with %d rule sets", cat.version, cat.entries.Size())
	return cat, nil
}

func (cat *catalog) lookup(key string) *entry {
	if e, ok := cat.entries.Get(key); ok {
		return e.(*entry)
	}
	return cat.aliases[key]
}

// canonicalKey maps POSIX and BCP 47 style identifiers to a common lookup
// key: "tr_TR.UTF-8@euro" => "tr-tr".
func canonicalKey(id string) string {
	id = strings.TrimSpace(id)
	if i := strings.IndexAny(id, ".@"); i >= 0 {
		id = id[:i]
	}
	id = strings.ReplaceAll(id, "_", "-")
	return strings.ToLower(id)
}

// Resolve returns the rule set for a locale identifier. The empty identifier
// selects the root rule set.
//
// If id does not resolve to a supported rule set, a
// *textlocale.UnknownLocaleError is returned. Resolve will never fall back to
// the root rule set for unknown identifiers.
func Resolve(id string) (*RuleSet, error) {
	cat, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	key := canonicalKey(id)
	if e := cat.lookup(key); e != nil {
		return e.load()
	}
	tag, err := language.Parse(key)
	if err != nil {
		return nil, &textlocale.UnknownLocaleError{Locale: id, Err: err}
	}
	if base, conf := tag.Base(); conf != language.No {
		if e := cat.lookup(strings.ToLower(base.String())); e != nil && e.rec.ID != RootID {
			tracer().Debugf("locale %q resolved to rule set of base language %q", id, e.rec.ID)
			return e.load()
		}
	}
	return nil, &textlocale.UnknownLocaleError{Locale: id}
}

// MustResolve is like Resolve, but panics if id cannot be resolved.
// It is intended for package level variables with well-known locales.
func MustResolve(id string) *RuleSet {
	rs, err := Resolve(id)
	if err != nil {
		panic(fmt.Sprintf("locale.MustResolve: %v", err))
	}
	return rs
}

// Root returns the root rule set.
func Root() *RuleSet {
	return MustResolve(RootID)
}

// Supported returns the identifiers of all supported rule sets, in
// lexicographic order.
func Supported() []string {
	cat, err := loadCatalog()
	if err != nil {
		return nil
	}
	keys := cat.entries.Keys()
	ids := make([]string, len(keys))
	for i, k := range keys {
		ids[i] = k.(string)
	}
	return ids
}

// DataVersion returns the version string of the rules data.
func DataVersion() string {
	cat, err := loadCatalog()
	if err != nil {
		return ""
	}
	return cat.version
}
