package main

import "errors"

var (
	errUnknownOutput   = errors.New("unknown output format")
	errUnknownLanguage = errors.New("unsupported language")
	errInvalidRUT      = errors.New("invalid RUT")
	errInvalidRows     = errors.New("import has invalid rows")
	errBadFilter       = errors.New("filter must be key=value")
	errUnknownFile     = errors.New("unsupported data file, use .json, .yaml or .yml")
)
