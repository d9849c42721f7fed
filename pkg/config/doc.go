// Package config loads typed configuration structs from environment
// variables, optionally seeded from a local .env file.
//
// Each configuration type is parsed exactly once per process and cached, so
// any component may call Load for the same struct without re-reading the
// environment or racing other callers.
//
// # Usage
//
//	type DetectorConfig struct {
//	    RulesFile string `env:"BROWSER_RULES_FILE"`
//	    CacheSize int    `env:"BROWSER_PATTERN_CACHE_SIZE" envDefault:"40"`
//	}
//
//	var cfg DetectorConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle ErrParsingConfig
//	}
package config
