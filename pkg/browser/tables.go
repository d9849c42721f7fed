package browser

import (
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/browserdetect/pkg/version"
)

//go:embed data/browsers.yml
var defaultRulesYAML []byte

//go:embed data/engines.yml
var defaultEngineRulesYAML []byte

// rule is one compiled entry of the ordered UA decision list. Name and
// version are templates that may reference capture groups of the pattern
// ($1..$9); unmatched groups expand to empty strings.
type rule struct {
	nameTmpl    string
	versionTmpl string
	re          *regexp.Regexp
	engine      *engineSpec
}

// engineSpec selects a rendering engine from the extracted browser version:
// the highest threshold not exceeding the version wins, falling back to the
// default name. Thresholds are kept sorted with the loose comparator so YAML
// map ordering never affects selection.
type engineSpec struct {
	def        string
	thresholds []engineThreshold
}

type engineThreshold struct {
	version string
	name    string
}

// resolve returns the engine for the given browser version, or "" when
// neither a threshold nor the default applies.
func (s *engineSpec) resolve(ver string) string {
	var engine string
	for _, t := range s.thresholds {
		if version.GreaterOrEqual(ver, t.version) {
			engine = t.name
		}
	}
	if engine == "" {
		engine = s.def
	}
	return engine
}

// engineRule is one entry of the global ordered engine recognizer list.
type engineRule struct {
	name string
	re   *regexp.Regexp
}

type ruleDoc struct {
	Name    string `yaml:"name"`
	Regex   string `yaml:"regex"`
	Version string `yaml:"version"`
	Engine  *struct {
		Default  string            `yaml:"default"`
		Versions map[string]string `yaml:"versions"`
	} `yaml:"engine"`
}

type engineRuleDoc struct {
	Name  string `yaml:"name"`
	Regex string `yaml:"regex"`
}

// loadRules parses and compiles a YAML rule document, preserving declaration
// order. Any pattern that fails to compile aborts loading.
func loadRules(data []byte) ([]rule, error) {
	var docs []ruleDoc
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, errors.Join(ErrInvalidRules, err)
	}

	rules := make([]rule, 0, len(docs))
	for i, doc := range docs {
		re, err := compileUAPattern(doc.Regex)
		if err != nil {
			return nil, fmt.Errorf("%w: rule %d (%s): %v", ErrInvalidPattern, i, doc.Name, err)
		}

		r := rule{nameTmpl: doc.Name, versionTmpl: doc.Version, re: re}
		if doc.Engine != nil {
			spec := &engineSpec{def: doc.Engine.Default}
			for ver, name := range doc.Engine.Versions {
				spec.thresholds = append(spec.thresholds, engineThreshold{version: ver, name: name})
			}
			sort.SliceStable(spec.thresholds, func(a, b int) bool {
				return version.Compare(spec.thresholds[a].version, spec.thresholds[b].version) < 0
			})
			r.engine = spec
		}
		rules = append(rules, r)
	}
	return rules, nil
}

// loadEngineRules parses and compiles the global engine recognizer list.
func loadEngineRules(data []byte) ([]engineRule, error) {
	var docs []engineRuleDoc
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, errors.Join(ErrInvalidRules, err)
	}

	rules := make([]engineRule, 0, len(docs))
	for i, doc := range docs {
		re, err := compileUAPattern(doc.Regex)
		if err != nil {
			return nil, fmt.Errorf("%w: engine rule %d (%s): %v", ErrInvalidPattern, i, doc.Name, err)
		}
		rules = append(rules, engineRule{name: doc.Name, re: re})
	}
	return rules, nil
}

// compileUAPattern compiles a declared pattern the way UA rule tables expect:
// case-insensitive and anchored to a token boundary, so "Opera" does not
// match inside "NotOpera/1.0".
func compileUAPattern(expr string) (*regexp.Regexp, error) {
	return regexp.Compile(`(?i)(?:^|[^A-Z0-9_-])(?:` + expr + `)`)
}
