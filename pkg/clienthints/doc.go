// Package clienthints parses User-Agent Client Hints headers into a
// structured record the browser classifier consumes alongside the raw
// User-Agent string.
//
// Client Hints are the header-carried successor to the monolithic UA string:
// ordered (brand, version) pairs plus optional full-version, application
// identity and form-factor signals. Browsers co-list generic compatibility
// brands ("Chromium", "Not A;Brand") next to the real one, so the list order
// is preserved for the classifier to arbitrate.
//
// Recognized headers:
//
//   - Sec-CH-UA-Full-Version-List (preferred) or Sec-CH-UA - brand/version pairs
//   - Sec-CH-UA-Full-Version - the browser's full version
//   - Sec-CH-UA-Form-Factors - quoted form-factor tags, normalized to lower case
//   - X-Requested-With - Android application identifier for WebView traffic
//
// # Usage
//
//	hints := clienthints.Parse(r.Header)
//	client, err := detector.Lookup(r.UserAgent(), hints)
package clienthints
