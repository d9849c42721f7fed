// Package cache provides a small, thread-safe, capacity-bounded LRU cache.
//
// It exists to memoize expensive derived values that are keyed by a small,
// recurring set of inputs - most prominently the per-engine version-extraction
// patterns compiled by the browser classifier. There are only around twenty
// rendering engines, so such a cache never grows large, but recompiling the
// same pattern on every call is wasteful and fragments memory. A bounded LRU
// keeps the hot entries resident while guaranteeing an upper limit on memory
// regardless of input.
//
// Eviction order is a performance knob, not a correctness contract: callers
// must treat every lookup as potentially missing.
//
// # Usage
//
//	patterns := cache.NewLRU[string, *regexp.Regexp](40)
//
//	re, err := patterns.GetOrCompute(token, func() (*regexp.Regexp, error) {
//	    return regexp.Compile(expr)
//	})
package cache
