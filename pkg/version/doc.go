// Package version implements the loose semantic-version comparison used by
// the browser classification pipeline.
//
// Browser and engine version strings found in the wild are only loosely
// semver-shaped: "114", "15.4.1", "2022.04", "11.0b3". The comparator here
// never fails. Numeric fragments are compared numerically, missing fragments
// count as zero, and fragments that carry no leading number at all compare as
// equal. Treating malformed input as "no order" rather than as an error is a
// deliberate resilience choice: threshold selection over declarative engine
// tables must keep working even when a rule captures garbage.
//
// # Usage
//
//	if version.Compare("106.0.0.0", "106") > 0 {
//	    // the longer version is considered greater
//	}
//
//	version.GreaterThan("25", "20") // true
package version
