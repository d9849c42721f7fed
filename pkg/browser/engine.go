package browser

import (
	"fmt"
	"regexp"
	"strings"
)

// Engine version tokens. The Blink token deliberately differs between the
// UA-rule path and the Client-Hints path: the hints arbitration also accepts
// a bare "Chromium/<version>" product token, the rule path does not. Both
// mirror long-standing legacy behavior and live in the same pattern cache.
const (
	blinkRuleToken  = `(?:Chr[o0]me|Cronet)`
	blinkHintsToken = `(?:Chr[o0]me|Chromium|Cronet)`
	arachneToken    = `(?:Arachne\/5\.)`
	libwebToken     = `(?:LibWeb\+LibJs)`
)

// Gecko and Clecko carry their version in an rv: token that must be followed
// by an 8-10 digit build date.
var geckoVersionRe = regexp.MustCompile(`(?i)[ ](?:rv[: ]([0-9.]+)).*(?:g|cl)ecko/[0-9]{8,10}`)

// matchEngine scans the global ordered engine-rule list, first match wins.
// When none match, it falls back to case-insensitive equality against the
// known-engine vocabulary. An empty result is a normal outcome.
func (d *Detector) matchEngine(ua string) string {
	for _, er := range d.engineRules {
		if er.re.MatchString(ua) {
			return er.name
		}
	}
	for _, known := range knownEngines {
		if strings.EqualFold(known, ua) {
			return known
		}
	}
	return ""
}

// engineVersion extracts the engine version from the UA for the rule path.
func (d *Detector) engineVersion(ua, engine string) (string, error) {
	return d.engineVersionByToken(ua, engine, blinkRuleToken)
}

// hintsEngineVersion extracts the engine version for Client-Hints
// arbitration, which additionally recognizes the Chromium product token.
func (d *Detector) hintsEngineVersion(ua, engine string) (string, error) {
	return d.engineVersionByToken(ua, engine, blinkHintsToken)
}

func (d *Detector) engineVersionByToken(ua, engine, blinkToken string) (string, error) {
	if engine == "" {
		return "", nil
	}

	if engine == "Gecko" || engine == "Clecko" {
		if m := geckoVersionRe.FindStringSubmatch(ua); m != nil {
			return m[1], nil
		}
		return "", nil
	}

	token := engine
	switch engine {
	case "Blink":
		token = blinkToken
	case "Arachne":
		token = arachneToken
	case "LibWeb":
		token = libwebToken
	}

	// Engine tokens recur constantly across requests; the compiled patterns
	// are shared through a bounded cache instead of being rebuilt per call.
	re, err := d.patterns.GetOrCompute(token, func() (*regexp.Regexp, error) {
		return regexp.Compile(`(?i)(?:` + token + `)\s*[/_]?\s*(\d+(?:\.\d+)*)`)
	})
	if err != nil {
		return "", fmt.Errorf("%w: engine version pattern for %q: %v", ErrMatchFailed, engine, err)
	}

	if m := re.FindStringSubmatch(ua); m != nil {
		return m[1], nil
	}
	return "", nil
}
