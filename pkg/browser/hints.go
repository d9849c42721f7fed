package browser

import (
	"sort"
	"strings"

	"github.com/dmitrymomot/browserdetect/pkg/catalog"
	"github.com/dmitrymomot/browserdetect/pkg/clienthints"
	"github.com/dmitrymomot/browserdetect/pkg/version"
)

// blinkBrands are catalog names that imply the Blink engine when they arrive
// via Client Hints: Chromium itself plus forks that never ship another engine.
var blinkBrands = map[string]struct{}{
	"Chrome":               {},
	"Chromium":             {},
	"Microsoft Edge":       {},
	"Edge":                 {},
	"CCleaner":             {},
	"AVG Secure Browser":   {},
	"Avast Secure Browser": {},
}

// resolveHints derives a candidate from Client-Hint brand data. Brands map
// through the alias table onto the catalog; pairs without a catalog hit are
// discarded. "Chromium" and "Microsoft Edge" are generic compatibility
// brands co-listed next to the true brand, so they sort last.
func (d *Detector) resolveHints(ua string, hints *clienthints.ClientHints) (*Client, error) {
	if hints == nil || len(hints.FullVersionList) == 0 {
		return nil, nil
	}

	type candidate struct {
		brand   string
		version string
		entry   catalog.Entry
	}

	var candidates []candidate
	for _, bv := range hints.FullVersionList {
		canonical := d.aliases.Apply(bv.Brand)
		entry, ok := d.catalog.SearchByName(strings.TrimSpace(canonical))
		if !ok {
			continue
		}
		candidates = append(candidates, candidate{brand: bv.Brand, version: bv.Version, entry: entry})
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	generic := func(brand string) bool { return brand == "Chromium" || brand == "Microsoft Edge" }
	sort.SliceStable(candidates, func(a, b int) bool {
		return !generic(candidates[a].brand) && generic(candidates[b].brand)
	})

	chosen := candidates[0]

	ver := hints.UAFullVersion
	if ver == "" {
		ver = chosen.version
	}

	entry := chosen.entry
	c := &Client{
		Name:    entry.Name,
		Version: ver,
		Kind:    KindBrowser,
		Catalog: &entry,
	}

	if _, ok := blinkBrands[c.Name]; ok {
		c.Engine = "Blink"

		uaEngineVersion, err := d.hintsEngineVersion(ua, "Blink")
		if err != nil {
			return nil, err
		}

		// The hints-reported browser version doubles as the Blink version.
		// The more detailed side wins; Iridium misreports through hints and
		// always takes the UA-derived version.
		hintsEngineVersion := ver
		if c.Name == "Iridium" {
			c.EngineVersion = uaEngineVersion
		} else {
			switch {
			case uaEngineVersion != "" && hintsEngineVersion != "":
				if version.GreaterThan(hintsEngineVersion, uaEngineVersion) {
					c.EngineVersion = hintsEngineVersion
				} else {
					c.EngineVersion = uaEngineVersion
				}
			case hintsEngineVersion != "":
				c.EngineVersion = hintsEngineVersion
			default:
				c.EngineVersion = uaEngineVersion
			}
		}
	}

	return c, nil
}
