// Package importer validates participant rows coming from a bulk upload
// (CSV export of a spreadsheet, typically) before they reach the back office.
//
// Every row is cleaned (names title-cased, e-mails and phones normalised,
// RUTs formatted), checked with package validator and, when valid, decoded
// into a backoffice.Participant. Duplicate RUTs inside one batch are reported
// on every occurrence after the first. Validation problems are values in the
// Report, never errors:
//
//	rows, err := importer.ReadCSV(file)
//	report := importer.New().Validate(ctx, rows)
//	for _, r := range report.Invalid {
//	    fmt.Println(r.Line, r.Errors)
//	}
//
// Messages carry i18n keys (rut.*, validation.*, import.*), so a report can
// be rendered in another language with Report.Translate.
package importer
