package browser_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/browserdetect/pkg/browser"
	"github.com/dmitrymomot/browserdetect/pkg/clienthints"
)

func TestNewDetector_Defaults(t *testing.T) {
	t.Parallel()

	d, err := browser.NewDetector()
	require.NoError(t, err)
	require.NotNil(t, d)
}

func TestNewDetector_InvalidTables(t *testing.T) {
	t.Parallel()

	t.Run("malformed rule document", func(t *testing.T) {
		t.Parallel()
		_, err := browser.NewDetector(browser.WithRulesYAML([]byte("{{not yaml")))
		require.Error(t, err)
		assert.ErrorIs(t, err, browser.ErrInvalidRules)
	})

	t.Run("uncompilable rule pattern", func(t *testing.T) {
		t.Parallel()
		rules := []byte(`
- name: Broken
  regex: '('
`)
		_, err := browser.NewDetector(browser.WithRulesYAML(rules))
		require.Error(t, err)
		assert.ErrorIs(t, err, browser.ErrInvalidPattern)
	})

	t.Run("uncompilable engine recognizer", func(t *testing.T) {
		t.Parallel()
		rules := []byte(`
- name: Blink
  regex: '[unterminated'
`)
		_, err := browser.NewDetector(browser.WithEngineRulesYAML(rules))
		require.Error(t, err)
		assert.ErrorIs(t, err, browser.ErrInvalidPattern)
	})
}

func TestMustNewDetector_PanicsOnBrokenTable(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		browser.MustNewDetector(browser.WithRulesYAML([]byte("{{not yaml")))
	})
}

func TestLookup_MatchFailure(t *testing.T) {
	t.Parallel()

	// The engine name doubles as a version-extraction pattern; one that
	// cannot compile surfaces as a matching failure, not as "no match".
	rules := []byte(`
- name: Hostile Browser
  regex: 'Hostile/(\d+)'
  version: '$1'
  engine:
    default: 'Bro(ken'
`)
	d := newDetector(t, browser.WithRulesYAML(rules))

	client, err := d.Lookup("Hostile/7", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, browser.ErrMatchFailed)
	assert.Nil(t, client)
}

func TestLookup_Idempotent(t *testing.T) {
	t.Parallel()
	d := newDetector(t)

	hints := hintsFrom(clienthints.BrandVersion{Brand: "Google Chrome", Version: "96"})

	first, err := d.Lookup(uaChromeDesktop, hints)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := d.Lookup(uaChromeDesktop, hints)
	require.NoError(t, err)
	require.NotNil(t, second)

	assert.Equal(t, first, second)
	assert.NotSame(t, first, second)
}

func TestLookup_ConcurrentUse(t *testing.T) {
	t.Parallel()
	d := newDetector(t)

	uas := []string{uaChromeDesktop, uaFirefoxDesktop, uaSafariMobile, uaOperaDesktop, uaEdgeChromium}
	expected := make([]*browser.Client, len(uas))
	for i, ua := range uas {
		c, err := d.Lookup(ua, nil)
		require.NoError(t, err)
		expected[i] = c
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				idx := i % len(uas)
				c, err := d.Lookup(uas[idx], nil)
				assert.NoError(t, err)
				assert.Equal(t, expected[idx], c)
			}
		}()
	}
	wg.Wait()
}

func TestNewDetectorFromEnv(t *testing.T) {
	rulesFile := filepath.Join(t.TempDir(), "rules.yml")
	rules := []byte(`
- name: Env Browser
  regex: 'EnvBrowser/(\d+[\.\d]*)'
  version: '$1'
`)
	require.NoError(t, os.WriteFile(rulesFile, rules, 0o600))

	t.Setenv("BROWSER_RULES_FILE", rulesFile)
	t.Setenv("BROWSER_PATTERN_CACHE_SIZE", "16")

	d, err := browser.NewDetectorFromEnv()
	require.NoError(t, err)

	client, err := d.Lookup("EnvBrowser/2.1", nil)
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.Equal(t, "Env Browser", client.Name)
	assert.Equal(t, "2.1", client.Version)
}
