package browser

import (
	"strings"

	"github.com/dmitrymomot/browserdetect/pkg/version"
)

// earlyUAVersionBrowsers report unusable versions through Client Hints and
// take the UA-derived version before any other reconciliation runs.
var earlyUAVersionBrowsers = map[string]struct{}{
	"Atom":           {},
	"Huawei Browser": {},
	"Mi Browser":     {},
}

// lateUAVersionBrowsers take the UA-derived version unconditionally after
// name resolution, overriding even the detailed-version step.
var lateUAVersionBrowsers = map[string]struct{}{
	"Aloha Browser": {},
	"JioSphere":     {},
	"mCent":         {},
	"Opera":         {},
	"Opera Mini":    {},
	"Opera Mobile":  {},
}

// iridiumVersionPrefixes: Iridium reports YYYY or YYYY.MM release versions
// through Client Hints (https://iridiumbrowser.de/news/).
var iridiumVersionPrefixes = []string{"2020", "2021", "2022", "2023", "2024"}

// reconcileStep is one named override rule of the merge pipeline. Each step
// observes the mutations of the steps before it; hc is never nil, uc may be.
type reconcileStep struct {
	name  string
	apply func(hc, uc *Client)
}

// reconcileSteps run in this exact order. The order is load-bearing: several
// steps only make sense against the mutations of their predecessors (e.g.
// the late UA-version override must win over the detailed-version step).
var reconcileSteps = []reconcileStep{
	{name: "iridium-version-scheme", apply: func(hc, uc *Client) {
		if hc.Version == "" {
			return
		}
		for _, prefix := range iridiumVersionPrefixes {
			if strings.HasPrefix(hc.Version, prefix) {
				hc.Name = "Iridium"
				return
			}
		}
	}},

	// https://bbs.360.cn/thread-16096544-1-1.html
	{name: "360-secure-browser", apply: func(hc, uc *Client) {
		if uc == nil || hc.Version == "" || uc.Version == "" {
			return
		}
		if strings.HasPrefix(hc.Version, "15") && strings.HasPrefix(uc.Version, "114") {
			hc.Name = "360 Secure Browser"
			hc.Engine = uc.Engine
			hc.EngineVersion = uc.EngineVersion
		}
	}},

	{name: "early-ua-version", apply: func(hc, uc *Client) {
		if _, ok := earlyUAVersionBrowsers[hc.Name]; !ok {
			return
		}
		hc.Version = ""
		if uc != nil {
			hc.Version = uc.Version
		}
	}},

	{name: "duckduckgo-version", apply: func(hc, uc *Client) {
		if hc.Name == "DuckDuckGo Privacy Browser" {
			hc.Version = ""
		}
	}},

	{name: "vewd-engine", apply: func(hc, uc *Client) {
		if hc.Name != "Vewd Browser" {
			return
		}
		hc.Engine = ""
		hc.EngineVersion = ""
		if uc != nil {
			hc.Engine = uc.Engine
			hc.EngineVersion = uc.EngineVersion
		}
	}},

	{name: "chromium-generic-brand", apply: func(hc, uc *Client) {
		if hc.Name == "Chromium" && uc != nil && uc.Name != "Chromium" {
			hc.Name = uc.Name
			hc.Version = uc.Version
		}
	}},

	{name: "mobile-variant", apply: func(hc, uc *Client) {
		if uc != nil && uc.Name == hc.Name+" Mobile" {
			hc.Name = uc.Name
		}
	}},

	{name: "same-family-engine", apply: func(hc, uc *Client) {
		if uc == nil || hc.Name == uc.Name {
			return
		}
		if hc.Catalog == nil || uc.Catalog == nil {
			return
		}
		if hc.Catalog.Family == "" || hc.Catalog.Family != uc.Catalog.Family {
			return
		}
		mergeEngineVersion(hc, uc)
	}},

	{name: "same-name-engine", apply: func(hc, uc *Client) {
		if uc != nil && hc.Name == uc.Name {
			mergeEngineVersion(hc, uc)
		}
	}},

	{name: "detailed-ua-version", apply: func(hc, uc *Client) {
		if uc == nil || uc.Version == "" || hc.Version == "" {
			return
		}
		// The UA often reports "106.0.0.0" where hints say "106"; the longer
		// version wins only when it extends the hints version.
		if strings.HasPrefix(uc.Version, hc.Version) && len(uc.Version) > len(hc.Version) {
			hc.Version = uc.Version
		}
	}},

	{name: "late-ua-version", apply: func(hc, uc *Client) {
		if uc == nil || uc.Version == "" {
			return
		}
		if _, ok := lateUAVersionBrowsers[hc.Name]; ok {
			hc.Version = uc.Version
		}
	}},
}

// mergeEngineVersion takes the UA candidate's engine wholesale and its engine
// version only when strictly more detailed than what the hints carry.
func mergeEngineVersion(hc, uc *Client) {
	hc.Engine = uc.Engine
	switch {
	case uc.EngineVersion != "" && hc.EngineVersion != "":
		if version.GreaterThan(uc.EngineVersion, hc.EngineVersion) {
			hc.EngineVersion = uc.EngineVersion
		}
	case hc.EngineVersion == "":
		hc.EngineVersion = uc.EngineVersion
	}
}

// merge reconciles the hints candidate with the UA candidate. With no hints
// candidate the UA result stands as-is; otherwise the hints candidate is
// mutated through every step and returned.
func merge(hc, uc *Client) *Client {
	if hc == nil {
		return uc
	}
	for _, step := range reconcileSteps {
		step.apply(hc, uc)
	}
	return hc
}
