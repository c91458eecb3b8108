// Package i18n translates user-facing messages of the back office.
//
// Catalogs are nested maps keyed by language and dot-separated keys:
//
//	es:
//	  rut:
//	    required: "RUT requerido"
//	  validation:
//	    max_length: "%{field} debe tener como máximo %{max} caracteres"
//
// A Translator loads catalogs once from a TranslationAdapter (MapAdapter,
// FSAdapter) and resolves keys with T. Placeholders use the %{name} form and
// are filled from key/value argument pairs. When a key is missing in the
// requested language the default language is tried, then the key itself is
// returned.
//
// The built-in Spanish and English catalogs are embedded; Default builds a
// translator over them:
//
//	tr, err := i18n.Default(ctx)
//	msg := tr.T("en", "rut.invalid_check_digit") // "Incorrect check digit"
//
// Translator is safe for concurrent use.
package i18n
