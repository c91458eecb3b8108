// Package rut validates and formats Chilean national identifiers (Rol Único
// Tributario).
//
// A RUT is a numeric body followed by a single check character computed with
// the Module-11 algorithm. The check character is a digit 0-9 or the letter K.
// User input arrives in every imaginable shape ("12.345.678-5", "123456785",
// "12345678-k") so every helper starts by normalizing the raw string.
//
// # Usage
//
//	res := rut.Validate("12.345.678-5")
//	if !res.Valid {
//	    // res.Message is ready to render, res.Code is a stable i18n key
//	}
//
//	rut.Format("123456785") // "12.345.678-5"
//	rut.Normalize("12.345.678-k") // "12345678K"
//
// Format never validates, so it can be applied live while the user types.
//
// All functions are pure and safe for concurrent use.
package rut
