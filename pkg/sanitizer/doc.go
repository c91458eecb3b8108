// Package sanitizer cleans free-form contact data typed or imported by back
// office staff before it is validated and stored.
//
// Helpers are small string transforms grouped in three files:
//
//   - fold.go: Spanish-aware case folding (FoldCase, TitleName) shared with
//     the search matcher so "ÁLVAREZ" and "álvarez" compare equal.
//   - contact.go: e-mail, phone and whitespace normalisation.
//   - apply.go: Apply and Compose for building pipelines.
//
// Pipelines are the usual way to use the package:
//
//	clean := sanitizer.Compose(
//	    sanitizer.NormalizeWhitespace,
//	    sanitizer.TitleName,
//	)
//	clean("  maría   JOSÉ  ") // "María José"
//
// All helpers are pure and safe for concurrent use.
package sanitizer
