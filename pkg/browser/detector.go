package browser

import (
	"fmt"
	"os"
	"regexp"

	"github.com/dmitrymomot/browserdetect/pkg/cache"
	"github.com/dmitrymomot/browserdetect/pkg/catalog"
	"github.com/dmitrymomot/browserdetect/pkg/clienthints"
	"github.com/dmitrymomot/browserdetect/pkg/config"
)

// defaultPatternCacheSize bounds the shared engine-pattern cache. There are
// fewer than twenty engines, so the cache never fills in practice; the bound
// caps memory on adversarial table content.
const defaultPatternCacheSize = 40

// Detector classifies browsers from UA strings and Client Hints. All tables
// are immutable after construction; a Detector is safe for concurrent use.
type Detector struct {
	rules       []rule
	engineRules []engineRule
	catalog     *catalog.Catalog
	aliases     *catalog.AliasTable
	appHints    *catalog.AppHints
	patterns    *cache.LRU[string, *regexp.Regexp]
}

// Option configures Detector construction.
type Option func(*detectorConfig)

type detectorConfig struct {
	rulesYAML       []byte
	engineRulesYAML []byte
	catalog         *catalog.Catalog
	aliases         *catalog.AliasTable
	appHints        *catalog.AppHints
	cacheSize       int
}

// WithRulesYAML replaces the embedded browser rule table.
func WithRulesYAML(data []byte) Option {
	return func(c *detectorConfig) { c.rulesYAML = data }
}

// WithEngineRulesYAML replaces the embedded engine recognizer table.
func WithEngineRulesYAML(data []byte) Option {
	return func(c *detectorConfig) { c.engineRulesYAML = data }
}

// WithCatalog replaces the embedded browser catalog.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(c *detectorConfig) {
		if cat != nil {
			c.catalog = cat
		}
	}
}

// WithAliases replaces the built-in brand-alias table.
func WithAliases(t *catalog.AliasTable) Option {
	return func(c *detectorConfig) {
		if t != nil {
			c.aliases = t
		}
	}
}

// WithAppHints replaces the built-in app-hint table.
func WithAppHints(t *catalog.AppHints) Option {
	return func(c *detectorConfig) {
		if t != nil {
			c.appHints = t
		}
	}
}

// WithPatternCacheSize resizes the engine-pattern cache. Non-positive sizes
// are ignored.
func WithPatternCacheSize(n int) Option {
	return func(c *detectorConfig) {
		if n > 0 {
			c.cacheSize = n
		}
	}
}

// NewDetector builds a Detector from the embedded tables, adjusted by the
// given options. A rule pattern that fails to compile aborts construction;
// no partially loaded table is ever served.
func NewDetector(opts ...Option) (*Detector, error) {
	cfg := &detectorConfig{
		rulesYAML:       defaultRulesYAML,
		engineRulesYAML: defaultEngineRulesYAML,
		catalog:         catalog.Default(),
		aliases:         catalog.DefaultAliases(),
		appHints:        catalog.DefaultAppHints(),
		cacheSize:       defaultPatternCacheSize,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	rules, err := loadRules(cfg.rulesYAML)
	if err != nil {
		return nil, fmt.Errorf("loading browser rules: %w", err)
	}
	engineRules, err := loadEngineRules(cfg.engineRulesYAML)
	if err != nil {
		return nil, fmt.Errorf("loading engine rules: %w", err)
	}

	return &Detector{
		rules:       rules,
		engineRules: engineRules,
		catalog:     cfg.catalog,
		aliases:     cfg.aliases,
		appHints:    cfg.appHints,
		patterns:    cache.NewLRU[string, *regexp.Regexp](cfg.cacheSize),
	}, nil
}

// MustNewDetector is NewDetector for process startup, where a broken table
// must abort initialization.
func MustNewDetector(opts ...Option) *Detector {
	d, err := NewDetector(opts...)
	if err != nil {
		panic(fmt.Sprintf("browser: building detector: %v", err))
	}
	return d
}

// Config carries the environment-driven detector settings.
type Config struct {
	RulesFile       string `env:"BROWSER_RULES_FILE"`
	EngineRulesFile string `env:"BROWSER_ENGINE_RULES_FILE"`
	CatalogFile     string `env:"BROWSER_CATALOG_FILE"`
	CacheSize       int    `env:"BROWSER_PATTERN_CACHE_SIZE" envDefault:"40"`
}

// NewDetectorFromEnv builds a Detector configured from the environment.
// Unset file variables keep the embedded tables.
func NewDetectorFromEnv() (*Detector, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	opts := []Option{WithPatternCacheSize(cfg.CacheSize)}

	if cfg.RulesFile != "" {
		data, err := os.ReadFile(cfg.RulesFile)
		if err != nil {
			return nil, fmt.Errorf("reading browser rules file: %w", err)
		}
		opts = append(opts, WithRulesYAML(data))
	}
	if cfg.EngineRulesFile != "" {
		data, err := os.ReadFile(cfg.EngineRulesFile)
		if err != nil {
			return nil, fmt.Errorf("reading engine rules file: %w", err)
		}
		opts = append(opts, WithEngineRulesYAML(data))
	}
	if cfg.CatalogFile != "" {
		data, err := os.ReadFile(cfg.CatalogFile)
		if err != nil {
			return nil, fmt.Errorf("reading catalog file: %w", err)
		}
		cat, err := catalog.Load(data)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithCatalog(cat))
	}

	return NewDetector(opts...)
}

// Lookup identifies the browser behind a request. It returns nil for an
// unknown client; an error only signals an internal matching failure and is
// never "no match".
func (d *Detector) Lookup(ua string, hints *clienthints.ClientHints) (*Client, error) {
	uaClient, err := d.lookupUA(ua)
	if err != nil {
		return nil, err
	}

	hintsClient, err := d.resolveHints(ua, hints)
	if err != nil {
		return nil, err
	}

	c := merge(hintsClient, uaClient)
	if c == nil {
		return nil, nil
	}

	for _, p := range postProcessors {
		if err := p.apply(d, c, ua, hints); err != nil {
			return nil, err
		}
	}
	return c, nil
}
