// Package catalog holds the static reference data the browser classifier
// validates and enriches its results against:
//
//   - the browser catalog - known browser products with descriptive metadata,
//     searched by normalized name
//   - the brand-alias table - Client-Hint brand strings that resolve to a
//     different canonical catalog name (e.g. "Google Chrome" -> "Chrome")
//   - the app-hint table - mobile application identifiers that map to a
//     browser name when a request originates from an app-hosted WebView
//
// All three tables are immutable once constructed and safe to share by
// reference across concurrent callers. The built-in defaults are embedded
// YAML documents; custom tables can be loaded for tests or for deployments
// that track the upstream catalog more closely.
//
// # Usage
//
//	cat := catalog.Default()
//	if entry, ok := cat.SearchByName("opera mobile"); ok {
//	    fmt.Println(entry.Name, entry.Family) // "Opera Mobile", "Opera"
//	}
package catalog
