package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/browserdetect/pkg/catalog"
)

func TestSearchByName(t *testing.T) {
	t.Parallel()
	cat := catalog.Default()

	tests := []struct {
		name     string
		query    string
		expected catalog.Entry
		found    bool
	}{
		{name: "exact match", query: "Chrome", expected: catalog.Entry{Name: "Chrome", Family: "Chrome"}, found: true},
		{name: "case insensitive", query: "opera mobile", expected: catalog.Entry{Name: "Opera Mobile", Family: "Opera"}, found: true},
		{name: "extra whitespace", query: "  Opera   Mobile ", expected: catalog.Entry{Name: "Opera Mobile", Family: "Opera"}, found: true},
		{name: "no family", query: "Flow Browser", expected: catalog.Entry{Name: "Flow Browser"}, found: true},
		{name: "unknown browser", query: "Netscape Navigator 2000", found: false},
		{name: "empty query", query: "", found: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			entry, ok := cat.SearchByName(tc.query)
			assert.Equal(t, tc.found, ok)
			if tc.found {
				assert.Equal(t, tc.expected, entry)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("custom catalog", func(t *testing.T) {
		t.Parallel()
		cat, err := catalog.Load([]byte("- name: MyBrowser\n  family: Chrome\n"))
		require.NoError(t, err)
		assert.Equal(t, 1, cat.Len())

		entry, ok := cat.SearchByName("mybrowser")
		require.True(t, ok)
		assert.Equal(t, "MyBrowser", entry.Name)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.Load([]byte("{not yaml"))
		assert.ErrorIs(t, err, catalog.ErrInvalidCatalog)
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.Load([]byte("[]"))
		assert.ErrorIs(t, err, catalog.ErrEmptyCatalog)
	})
}

func TestNew_DuplicatesKeepFirst(t *testing.T) {
	t.Parallel()

	cat := catalog.New([]catalog.Entry{
		{Name: "Chrome", Family: "Chrome"},
		{Name: "chrome", Family: "Other"},
	})

	require.Equal(t, 1, cat.Len())
	entry, ok := cat.SearchByName("Chrome")
	require.True(t, ok)
	assert.Equal(t, "Chrome", entry.Family)
}

func TestAliasTable(t *testing.T) {
	t.Parallel()
	aliases := catalog.DefaultAliases()

	tests := []struct {
		name     string
		brand    string
		expected string
	}{
		{name: "google chrome", brand: "Google Chrome", expected: "Chrome"},
		{name: "android webview", brand: "Android WebView", expected: "Chrome Webview"},
		{name: "edge short brand", brand: "Edge", expected: "Microsoft Edge"},
		{name: "edge webview2", brand: "Microsoft Edge WebView2", expected: "Edge WebView"},
		{name: "case insensitive", brand: "duckduckgo", expected: "DuckDuckGo Privacy Browser"},
		{name: "miui", brand: "Miui Browser", expected: "Mi Browser"},
		{name: "pass through unmapped", brand: "Firefox", expected: "Firefox"},
		{name: "pass through unknown", brand: "Not A;Brand", expected: "Not A;Brand"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, aliases.Apply(tc.brand))
		})
	}
}

func TestAppHints(t *testing.T) {
	t.Parallel()
	hints := catalog.DefaultAppHints()

	name, ok := hints.Lookup("com.duckduckgo.mobile.android")
	require.True(t, ok)
	assert.Equal(t, "DuckDuckGo Privacy Browser", name)

	name, ok = hints.Lookup("ORG.TVBROWSER.TVBROWSER")
	require.True(t, ok)
	assert.Equal(t, "TV-Browser Internet", name)

	_, ok = hints.Lookup("com.example.app")
	assert.False(t, ok)

	custom := catalog.NewAppHints(map[string]string{"foo browser": "Foo Browser"})
	name, ok = custom.Lookup("Foo Browser")
	require.True(t, ok)
	assert.Equal(t, "Foo Browser", name)
}
