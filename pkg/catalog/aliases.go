package catalog

import "strings"

// AliasTable maps Client-Hint brand strings onto canonical catalog names.
// Vendors frequently advertise a marketing brand ("Google Chrome",
// "Android WebView") that differs from the catalog's canonical product name.
type AliasTable struct {
	byBrand map[string]string
}

// NewAliasTable builds an alias table from canonical-name -> brand-list
// pairs. Brand matching is case-insensitive.
func NewAliasTable(mapping map[string][]string) *AliasTable {
	t := &AliasTable{byBrand: make(map[string]string)}
	for canonical, brands := range mapping {
		for _, brand := range brands {
			t.byBrand[strings.ToLower(strings.TrimSpace(brand))] = canonical
		}
	}
	return t
}

// defaultAliases mirrors the brand rewrites vendors are known to need.
var defaultAliases = NewAliasTable(map[string][]string{
	"Chrome":                     {"Google Chrome"},
	"Chrome Webview":             {"Android WebView"},
	"DuckDuckGo Privacy Browser": {"DuckDuckGo"},
	"Edge WebView":               {"Microsoft Edge WebView2"},
	"Microsoft Edge":             {"Edge"},
	"Norton Private Browser":     {"Norton Secure Browser"},
	"Vewd Browser":               {"Vewd Core"},
	"Mi Browser":                 {"Miui Browser"},
})

// DefaultAliases returns the built-in brand-alias table.
func DefaultAliases() *AliasTable { return defaultAliases }

// Apply resolves a Client-Hint brand to its canonical catalog name.
// Unmapped brands pass through unchanged.
func (t *AliasTable) Apply(brand string) string {
	if canonical, ok := t.byBrand[strings.ToLower(strings.TrimSpace(brand))]; ok {
		return canonical
	}
	return brand
}
