package catalog

import "strings"

// AppHints maps application identifiers (Android package names carried in
// the X-Requested-With header) onto browser names. A hit means the request
// was issued by that application's embedded browser rather than by whatever
// the User-Agent string claims.
type AppHints struct {
	byID map[string]string
}

// NewAppHints builds an app-hint table. Identifiers match case-insensitively.
func NewAppHints(mapping map[string]string) *AppHints {
	t := &AppHints{byID: make(map[string]string, len(mapping))}
	for id, name := range mapping {
		t.byID[strings.ToLower(strings.TrimSpace(id))] = name
	}
	return t
}

var defaultAppHints = NewAppHints(map[string]string{
	"com.aloha.browser":             "Aloha Browser",
	"com.brave.browser":             "Brave",
	"com.duckduckgo.mobile.android": "DuckDuckGo Privacy Browser",
	"com.jio.web":                   "JioSphere",
	"com.mcent.browser":             "mCent",
	"com.opera.browser":             "Opera",
	"com.opera.mini.native":         "Opera Mini",
	"com.openbrowser.lite":          "Open Browser Lite",
	"com.vivaldi.browser":           "Vivaldi",
	"com.xnbrowse.browser":          "XnBrowse",
	"org.mozilla.focus":             "Firefox Focus",
	"org.tvbrowser.tvbrowser":       "TV-Browser Internet",
})

// DefaultAppHints returns the built-in app-hint table.
func DefaultAppHints() *AppHints { return defaultAppHints }

// Lookup resolves an application identifier to a browser name.
// A miss is a normal outcome: most app identifiers are not browsers.
func (t *AppHints) Lookup(appID string) (string, bool) {
	name, ok := t.byID[strings.ToLower(strings.TrimSpace(appID))]
	return name, ok
}
