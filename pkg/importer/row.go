package importer

import (
	"strings"

	"github.com/dmitrymomot/otec/pkg/sanitizer"
)

// Row is one uploaded record keyed by canonical column name.
type Row map[string]string

// Column aliases accepted in headers, matched after case folding.
var aliases = map[string]string{
	"rut":                "rut",
	"run":                "rut",
	"nombre":             "nombre",
	"nombre completo":    "nombre",
	"email":              "email",
	"correo":             "email",
	"correo electrónico": "email",
	"e-mail":             "email",
	"telefono":           "telefono",
	"teléfono":           "telefono",
	"celular":            "telefono",
	"empresa":            "empresa",
	"estado":             "estado",
	"curso":              "curso",
	"edad":               "edad",
	"nota":               "nota",
	"asistencia":         "asistencia",
	"fecha registro":     "fechaRegistro",
	"fecha de registro":  "fechaRegistro",
	"fecharegistro":      "fechaRegistro",
}

// Column maps a header cell to its canonical name. Unknown headers are
// returned folded and trimmed.
func Column(header string) string {
	h := sanitizer.FoldCase(sanitizer.NormalizeWhitespace(header))
	h = strings.ReplaceAll(h, "_", " ")
	if c, ok := aliases[h]; ok {
		return c
	}
	return h
}

// Get returns the trimmed value of column.
func (r Row) Get(column string) string {
	return strings.TrimSpace(r[column])
}
