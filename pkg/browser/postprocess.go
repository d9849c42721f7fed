package browser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrymomot/browserdetect/pkg/clienthints"
)

var (
	// Opera Mobile hides behind a WebView UA but keeps its OPR/ product token.
	operaMobileRe   = regexp.MustCompile(`Mobile.+OPR/(\d+[\.\d]+)`)
	chromeVersionRe = regexp.MustCompile(`Chrome/(\d+[\.\d]+)`)

	// blinkSignatureRe recognizes the generic Chromium UA tail shared by
	// every Blink-based app-hosted browser.
	blinkSignatureRe = regexp.MustCompile(`Chrome/.+ Safari/537.36`)
)

// alwaysBlinkApps are app-hosted browsers that are Blink-based even when
// their UA does not carry the generic Chromium signature.
var alwaysBlinkApps = map[string]struct{}{
	"TV-Browser Internet": {},
	"XnBrowse":            {},
	"Open Browser Lite":   {},
}

// postProcessor is one named final fixup pass over the merged candidate.
type postProcessor struct {
	name  string
	apply func(d *Detector, c *Client, ua string, hints *clienthints.ClientHints) error
}

// postProcessors run in this exact order on a non-nil merged candidate.
var postProcessors = []postProcessor{
	{name: "opera-mobile-webview", apply: operaMobileWebview},
	{name: "app-hint-override", apply: appHintOverride},
	{name: "engine-fixups", apply: engineFixups},
}

// operaMobileWebview corrects Opera Mobile traffic that classifies as Chrome
// Webview: the wrapping WebView sets the generic UA, but the OPR/ token
// identifies the real browser.
func operaMobileWebview(d *Detector, c *Client, ua string, _ *clienthints.ClientHints) error {
	if c.Name != "Chrome Webview" || !strings.Contains(ua, " OPR/") {
		return nil
	}

	m := operaMobileRe.FindStringSubmatch(ua)
	if m == nil {
		return nil
	}

	c.Name = "Opera Mobile"
	c.Version = m[1]
	c.Engine = "Blink"
	if cm := chromeVersionRe.FindStringSubmatch(ua); cm != nil {
		c.EngineVersion = cm[1]
	}
	if entry, ok := d.catalog.SearchByName("Opera Mobile"); ok {
		c.Catalog = &entry
	}
	return nil
}

// appHintOverride renames the candidate after the application identifier
// carried in the hints: an app-hosted browser outranks whatever the UA and
// brand list claim.
func appHintOverride(d *Detector, c *Client, ua string, hints *clienthints.ClientHints) error {
	if hints == nil || hints.App == "" {
		return nil
	}
	appName, ok := d.appHints.Lookup(hints.App)
	if !ok || appName == c.Name {
		return nil
	}

	c.Name = appName

	ver, err := appVersionFromUA(ua, hints.App)
	if err != nil {
		return err
	}
	c.Version = ver

	entry, ok := d.catalog.SearchByName(appName)
	if !ok {
		return nil
	}

	_, alwaysBlink := alwaysBlinkApps[appName]
	if !alwaysBlink && !blinkSignatureRe.MatchString(ua) {
		return nil
	}

	c.Engine = "Blink"
	ev, err := d.engineVersion(ua, "Blink")
	if err != nil {
		return err
	}
	c.EngineVersion = ev

	if entry.Family == "" {
		entry.Family = "Chrome"
	}
	c.Catalog = &entry
	return nil
}

// engineFixups holds the last name-specific corrections. Flow Browser's
// Blink builds report no usable engine version; Every Browser is always
// Blink but its version tokens are unreliable.
func engineFixups(_ *Detector, c *Client, _ string, _ *clienthints.ClientHints) error {
	if c.Engine == "" {
		return nil
	}
	if c.Engine == "Blink" && c.Name == "Flow Browser" {
		c.EngineVersion = ""
	}
	if c.Name == "Every Browser" {
		c.Engine = "Blink"
		c.EngineVersion = ""
	}
	return nil
}

// appVersionFromUA searches the raw UA for an "<app>/<version>" product
// token. The app identifier is dot-escaped only; identifiers are package
// names, not patterns.
func appVersionFromUA(ua, app string) (string, error) {
	escaped := strings.ReplaceAll(app, ".", `\.`)
	re, err := regexp.Compile(escaped + `/(\d+[\.\d]+)`)
	if err != nil {
		return "", fmt.Errorf("%w: app version pattern for %q: %v", ErrMatchFailed, app, err)
	}
	if m := re.FindStringSubmatch(ua); m != nil {
		return m[1], nil
	}
	return "", nil
}
