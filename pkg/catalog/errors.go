package catalog

import "errors"

var (
	// ErrInvalidCatalog is returned when catalog YAML cannot be parsed.
	ErrInvalidCatalog = errors.New("invalid catalog document")

	// ErrEmptyCatalog is returned when a catalog document contains no entries.
	ErrEmptyCatalog = errors.New("catalog contains no entries")
)
