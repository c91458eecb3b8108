package importer

import "errors"

var (
	ErrEmptyFile     = errors.New("importer: file has no header row")
	ErrMissingColumn = errors.New("importer: required column missing")
	ErrReadFailed    = errors.New("importer: failed to read rows")
)
