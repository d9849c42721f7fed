package browser

import "strings"

// lookupUA scans the rule list in declared order; the first rule whose
// pattern matches wins. No match across all rules is a nil result, not an
// error.
func (d *Detector) lookupUA(ua string) (*Client, error) {
	for _, r := range d.rules {
		m := r.re.FindStringSubmatchIndex(ua)
		if m == nil {
			continue
		}

		name := string(r.re.ExpandString(nil, r.nameTmpl, ua, m))
		ver := string(r.re.ExpandString(nil, r.versionTmpl, ua, m))
		ver = strings.TrimRight(ver, ". ")

		var engine string
		if r.engine != nil {
			engine = r.engine.resolve(ver)
		}
		if engine == "" {
			engine = d.matchEngine(ua)
		}

		var engineVersion string
		if engine != "" {
			ev, err := d.engineVersion(ua, engine)
			if err != nil {
				return nil, err
			}
			engineVersion = ev
		}

		c := &Client{
			Name:          name,
			Version:       ver,
			Kind:          KindBrowser,
			Engine:        engine,
			EngineVersion: engineVersion,
		}
		if entry, ok := d.catalog.SearchByName(name); ok {
			c.Catalog = &entry
		}
		return c, nil
	}

	return nil, nil
}
