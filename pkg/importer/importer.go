package importer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/google/uuid"

	"github.com/dmitrymomot/otec/pkg/backoffice"
	"github.com/dmitrymomot/otec/pkg/rut"
	"github.com/dmitrymomot/otec/pkg/sanitizer"
	"github.com/dmitrymomot/otec/pkg/validator"
)

// MaxNameLength bounds the nombre column.
const MaxNameLength = 120

// RowResult is the outcome for one row. Line is 1-based over data rows.
type RowResult struct {
	Line        int                        `json:"line"`
	Row         Row                        `json:"row"`
	Participant *backoffice.Participant    `json:"participant,omitempty"`
	Errors      validator.ValidationErrors `json:"errors,omitempty"`
}

// Report splits a batch into valid and invalid rows, each in input order.
type Report struct {
	Total   int         `json:"total"`
	Valid   []RowResult `json:"valid"`
	Invalid []RowResult `json:"invalid"`
}

// Participants returns the decoded participants of the valid rows.
func (r Report) Participants() []backoffice.Participant {
	out := make([]backoffice.Participant, 0, len(r.Valid))
	for _, v := range r.Valid {
		if v.Participant != nil {
			out = append(out, *v.Participant)
		}
	}
	return out
}

// Translate returns a copy with error messages rendered by fn,
// typically (*i18n.Translator).Translate(lang).
func (r Report) Translate(fn func(key string, values map[string]any) string) Report {
	out := r
	out.Invalid = make([]RowResult, len(r.Invalid))
	for i, res := range r.Invalid {
		res.Errors = res.Errors.Translate(fn)
		out.Invalid[i] = res
	}
	return out
}

// Importer validates batches of rows.
type Importer struct {
	now    func() time.Time
	logger *slog.Logger
}

// Option configures an Importer.
type Option func(*Importer)

// WithClock sets the clock used to default and bound fechaRegistro.
func WithClock(now func() time.Time) Option {
	return func(im *Importer) {
		if now != nil {
			im.now = now
		}
	}
}

// WithLogger sets the logger for batch summaries.
func WithLogger(l *slog.Logger) Option {
	return func(im *Importer) {
		if l != nil {
			im.logger = l
		}
	}
}

// New creates an Importer.
func New(opts ...Option) *Importer {
	im := &Importer{
		now:    time.Now,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(im)
	}
	return im
}

// Validate checks rows with a default Importer.
func Validate(rows []Row) Report {
	return New().Validate(context.Background(), rows)
}

// Validate checks every row and reports duplicates within the batch.
func (im *Importer) Validate(ctx context.Context, rows []Row) Report {
	report := Report{Total: len(rows), Valid: []RowResult{}, Invalid: []RowResult{}}
	firstSeen := make(map[string]int, len(rows))
	now := im.now()

	for i, raw := range rows {
		line := i + 1
		row := clean(raw)
		res := RowResult{Line: line, Row: row}

		errs := validator.ExtractValidationErrors(validator.Apply(im.rules(row, now)...))

		if key := rut.Normalize(row.Get("rut")); rut.IsValid(key) {
			if first, dup := firstSeen[key]; dup {
				errs.Add(duplicate(first))
			} else {
				firstSeen[key] = line
			}
		}

		if errs.IsEmpty() {
			p, decodeErrs := decode(row, now)
			if decodeErrs.IsEmpty() {
				res.Participant = &p
			}
			errs = decodeErrs
		}

		res.Errors = errs
		if errs.IsEmpty() {
			report.Valid = append(report.Valid, res)
		} else {
			report.Invalid = append(report.Invalid, res)
		}
	}

	im.logger.InfoContext(ctx, "import batch validated",
		slog.Int("total", report.Total),
		slog.Int("valid", len(report.Valid)),
		slog.Int("invalid", len(report.Invalid)),
	)
	return report
}

var estados = func() []string {
	out := make([]string, len(backoffice.Estados))
	for i, e := range backoffice.Estados {
		out[i] = string(e)
	}
	return out
}()

func (im *Importer) rules(row Row, now time.Time) []validator.Rule {
	rules := []validator.Rule{
		validator.ValidRUT("rut", row.Get("rut")),
		validator.Required("nombre", row.Get("nombre")),
		validator.MaxLen("nombre", row.Get("nombre"), MaxNameLength),
		validator.Optional(row.Get("email"), validator.ValidEmail("email", row.Get("email"))),
		validator.Optional(row.Get("telefono"), validator.ValidPhone("telefono", row.Get("telefono"))),
		validator.Optional(row.Get("estado"), validator.InList("estado", row.Get("estado"), estados)),
	}
	if v, ok := number(row.Get("nota")); ok {
		rules = append(rules, validator.InRange("nota", v, 1.0, 7.0))
	}
	if v, ok := number(row.Get("asistencia")); ok {
		rules = append(rules, validator.InRange("asistencia", v, 0, 100))
	}
	if v, ok := number(row.Get("edad")); ok {
		rules = append(rules, validator.InRange("edad", v, 14, 100))
	}
	if t, ok := parseDate(row.Get("fechaRegistro")); ok {
		rules = append(rules, validator.NotFuture("fechaRegistro", t, now))
	}
	return rules
}

func clean(raw Row) Row {
	row := make(Row, len(raw))
	for k, v := range raw {
		row[k] = sanitizer.NormalizeWhitespace(v)
	}
	if v := row["nombre"]; v != "" {
		row["nombre"] = sanitizer.TitleName(v)
	}
	if v := row["email"]; v != "" {
		row["email"] = sanitizer.NormalizeEmail(v)
	}
	if v := row["telefono"]; v != "" {
		row["telefono"] = sanitizer.NormalizePhone(v)
	}
	if v := row["estado"]; v != "" {
		row["estado"] = sanitizer.FoldCase(v)
	}
	if v := row["rut"]; rut.IsValid(v) {
		row["rut"] = rut.Format(v)
	}
	return row
}

func duplicate(first int) validator.ValidationError {
	return validator.ValidationError{
		Field:          "rut",
		Message:        fmt.Sprintf("duplicate RUT, first seen in row %d", first),
		TranslationKey: "import.duplicate",
		TranslationValues: map[string]any{
			"field": "rut",
			"row":   first,
		},
	}
}

// decode maps a clean row onto a Participant. Blank cells are left at their
// zero value; estado defaults to activo and fechaRegistro to now.
func decode(row Row, now time.Time) (backoffice.Participant, validator.ValidationErrors) {
	input := make(map[string]any, len(row))
	for k, v := range row {
		if v == "" {
			continue
		}
		if k == "nota" || k == "asistencia" || k == "edad" {
			// accept decimal commas
			v = strings.Replace(v, ",", ".", 1)
		}
		input[k] = v
	}

	var p backoffice.Participant
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.DecodeHookFuncType(dateHook),
		Result:           &p,
	})
	if err == nil {
		err = dec.Decode(input)
	}
	if err != nil {
		return backoffice.Participant{}, validator.ValidationErrors{{
			Field:             "row",
			Message:           err.Error(),
			TranslationKey:    "validation.invalid",
			TranslationValues: map[string]any{"field": "row"},
		}}
	}

	if r, err := rut.Parse(p.RUT); err == nil {
		p.ID = uuid.NewSHA1(uuid.NameSpaceOID, []byte(r.Compact()))
	}
	if p.Estado == "" {
		p.Estado = backoffice.EstadoActivo
	}
	if p.FechaRegistro.IsZero() {
		p.FechaRegistro = now
	}
	return p, nil
}

var dateLayouts = []string{time.DateOnly, "02-01-2006", "02/01/2006", time.RFC3339}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func dateHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(time.Time{}) {
		return data, nil
	}
	if t, ok := parseDate(data.(string)); ok {
		return t, nil
	}
	return nil, fmt.Errorf("invalid date %q", data)
}

func number(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	return v, err == nil
}
