package browser

import "github.com/dmitrymomot/browserdetect/pkg/catalog"

// KindBrowser is the client kind this package produces.
const KindBrowser = "browser"

// Client is the normalized identification record for one request.
// A Client is created fresh per lookup and owned solely by the caller.
type Client struct {
	// Name is the canonical browser name, never empty.
	Name string

	// Version is the browser version, empty when unknown.
	Version string

	// Kind is always KindBrowser for this package.
	Kind string

	// Engine is the rendering engine name, drawn from the known-engine
	// vocabulary; empty when unknown.
	Engine string

	// EngineVersion is only meaningful together with Engine.
	EngineVersion string

	// Catalog is a copy of the catalog entry for Name at the moment of
	// attachment; nil when the name is absent from the catalog.
	Catalog *catalog.Entry
}

// knownEngines is the fixed rendering-engine vocabulary. It doubles as the
// last-resort recognizer: an input that equals one of these names
// case-insensitively resolves to that engine.
var knownEngines = []string{
	"WebKit",
	"Blink",
	"Trident",
	"Text-based",
	"Dillo",
	"iCab",
	"Elektra",
	"Presto",
	"Clecko",
	"Gecko",
	"KHTML",
	"NetFront",
	"Edge",
	"NetSurf",
	"Servo",
	"Goanna",
	"EkiohFlow",
	"Arachne",
	"LibWeb",
}
