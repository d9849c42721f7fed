// Package browser identifies the client application responsible for an HTTP
// request from its User-Agent string and optional Client-Hint data.
//
// Identification runs two independent derivations and reconciles them:
//
//   - an ordered, first-match-wins pattern-rule scan over the UA string that
//     also derives the rendering engine and its version
//   - a mapping of Client-Hint (brand, version) pairs onto the browser
//     catalog, with Blink-specific engine-version arbitration
//
// The two candidates are merged by a strictly ordered pipeline of named
// override rules that detect rebrands, WebView wrapping, mobile variants and
// app-hosted browsers, followed by post-processing passes for special
// disambiguation. The many special cases are order-sensitive by design; each
// lives in its own named step so it can be tested in isolation.
//
// Rule, engine and catalog tables are immutable once a Detector is built and
// are shared read-only across concurrent callers. The only mutable shared
// state is a small bounded cache of compiled per-engine version patterns.
// Lookup itself is a pure, synchronous function: no I/O, no blocking.
//
// # Usage
//
//	detector := browser.MustNewDetector()
//
//	client, err := detector.Lookup(r.UserAgent(), clienthints.Parse(r.Header))
//	if err != nil {
//	    // internal matching failure, distinct from "no match"
//	}
//	if client == nil {
//	    // unknown client
//	}
//	fmt.Println(client.Name, client.Version, client.Engine)
//
// For HTTP services, Middleware classifies every request and stores the
// result in the request context for ClientFromContext to retrieve.
//
// # Error Handling
//
// Table construction fails fast: a rule pattern that does not compile aborts
// NewDetector with ErrInvalidPattern and no partial table is ever served.
// At lookup time, "no match" is a nil result and a nil error; an error is
// only returned for an internal matching failure (ErrMatchFailed) and must
// never be conflated with an unknown client.
package browser
