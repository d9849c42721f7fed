package browser

import "errors"

var (
	// ErrInvalidRules is returned when a rule document cannot be parsed.
	ErrInvalidRules = errors.New("invalid rule document")

	// ErrInvalidPattern is returned when a declared rule pattern fails to
	// compile. Table loading aborts; no partial table is served.
	ErrInvalidPattern = errors.New("invalid rule pattern")

	// ErrMatchFailed is returned when pattern evaluation itself fails at
	// lookup time. This is an internal failure, never "no match".
	ErrMatchFailed = errors.New("pattern match failed")
)
