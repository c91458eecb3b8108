// Package validator builds declarative validation out of small Rule values.
//
// A Rule pairs a Check function with a ValidationError carrying the field
// name, an English fallback message and an i18n translation key. Apply runs
// rules and collects failures into ValidationErrors, which implements error.
//
//	err := validator.Apply(
//	    validator.ValidRUT("rut", row.RUT),
//	    validator.Required("nombre", row.Nombre),
//	    validator.Optional(row.Email, validator.ValidEmail("email", row.Email)),
//	    validator.InRange("nota", nota, 1.0, 7.0),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    verrs = verrs.Translate(translate)
//	}
//
// Rules are grouped by concern: string_rules.go, contact_rules.go,
// numeric_rules.go, date_rules.go and rut_rules.go. The package has no global
// state and is safe for concurrent use.
package validator
