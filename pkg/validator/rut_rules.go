package validator

import (
	"github.com/dmitrymomot/otec/pkg/rut"
)

// ValidRUT validates a Chilean RUT. The translation key is the specific rut
// result code (rut.required, rut.too_short, ...), so blank input reports
// "RUT requerido" rather than a generic format error.
func ValidRUT(field, value string) Rule {
	res := rut.Validate(value)
	return Rule{
		Check: func() bool { return res.Valid },
		Error: fieldError(field, string(res.Code), res.Message, "value", value),
	}
}
