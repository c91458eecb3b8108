package rut

import "errors"

var (
	// ErrInvalidBody is returned when a RUT body is empty or contains non-digit characters.
	ErrInvalidBody = errors.New("rut: invalid body")

	// ErrInvalidRUT is returned by Parse when the input does not pass validation.
	ErrInvalidRUT = errors.New("rut: invalid identifier")
)
