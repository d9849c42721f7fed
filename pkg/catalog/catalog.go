package catalog

import (
	_ "embed"
	"errors"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"
)

//go:embed data/browsers.yml
var defaultCatalogYAML []byte

// Entry describes a single known browser product.
type Entry struct {
	// Name is the canonical display name, e.g. "Opera Mobile".
	Name string `yaml:"name"`
	// Family groups related products, e.g. "Chrome" for Chromium forks.
	// Empty when the product does not belong to a known family.
	Family string `yaml:"family,omitempty"`
}

// Catalog is an immutable, name-indexed collection of browser entries.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

// New builds a catalog from the given entries. Later duplicates of a
// normalized name are ignored so declaration order stays authoritative.
func New(entries []Entry) *Catalog {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		key := normalizeName(e.Name)
		if key == "" {
			continue
		}
		if _, exists := c.index[key]; exists {
			continue
		}
		c.entries = append(c.entries, e)
		c.index[key] = len(c.entries) - 1
	}
	return c
}

// Load parses a YAML catalog document, a flat list of entries:
//
//	- name: Chrome
//	  family: Chrome
//	- name: Flow Browser
func Load(data []byte) (*Catalog, error) {
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, errors.Join(ErrInvalidCatalog, err)
	}
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}
	return New(entries), nil
}

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// Default returns the embedded catalog, built once per process and shared
// read-only thereafter.
func Default() *Catalog {
	defaultCatalogOnce.Do(func() {
		c, err := Load(defaultCatalogYAML)
		if err != nil {
			panic("catalog: loading embedded browser catalog: " + err.Error())
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// SearchByName finds an entry by case- and spacing-insensitive name match.
// The returned entry is a copy; callers own it. A miss is a normal outcome,
// not an error.
func (c *Catalog) SearchByName(name string) (Entry, bool) {
	i, ok := c.index[normalizeName(name)]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int { return len(c.entries) }

// normalizeName case-folds a browser name and collapses interior whitespace
// so "opera  mobile" and "Opera Mobile" index identically. Casers are
// stateful, so one is created per call rather than shared.
func normalizeName(name string) string {
	folded := cases.Fold().String(strings.TrimSpace(name))
	return strings.Join(strings.Fields(folded), " ")
}
