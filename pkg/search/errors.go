package search

import "errors"

var (
	// ErrNilGetter is raised when an engine is built without a field getter.
	ErrNilGetter = errors.New("search: nil field getter")

	// ErrInvalidCacheSize is returned when a memo cache is created with a non-positive size.
	ErrInvalidCacheSize = errors.New("search: cache size must be greater than zero")

	// ErrInvalidFilterValue is returned by ParseValues for values that cannot be
	// converted to the type their filter expects.
	ErrInvalidFilterValue = errors.New("search: invalid filter value")
)
