package backoffice

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/otec/pkg/search"
)

// EstadoInscripcion is the state of an enrollment.
type EstadoInscripcion string

const (
	InscripcionPendiente  EstadoInscripcion = "pendiente"
	InscripcionConfirmada EstadoInscripcion = "confirmada"
	InscripcionAnulada    EstadoInscripcion = "anulada"
)

// Enrollment links a participant to a course.
type Enrollment struct {
	ID          uuid.UUID         `json:"id" yaml:"id" mapstructure:"id"`
	RUT         string            `json:"rut" yaml:"rut" mapstructure:"rut"`
	Participant string            `json:"participante" yaml:"participante" mapstructure:"participante"`
	Curso       string            `json:"curso" yaml:"curso" mapstructure:"curso"`
	Estado      EstadoInscripcion `json:"estado" yaml:"estado" mapstructure:"estado"`
	Fecha       time.Time         `json:"fecha" yaml:"fecha" mapstructure:"fecha"`
}

// Field exposes enrollment fields by their table column key.
func (e Enrollment) Field(key string) (any, bool) {
	switch key {
	case "id":
		return e.ID.String(), true
	case "rut":
		return e.RUT, true
	case "participante":
		return e.Participant, true
	case "curso":
		return e.Curso, true
	case "estado":
		return string(e.Estado), true
	case "fecha":
		return timeOrNil(e.Fecha), true
	}
	return nil, false
}

// EnrollmentSearchFields are scanned by the enrollment table search box.
var EnrollmentSearchFields = []string{"rut", "participante", "curso"}

// Grade is one evaluation result of a participant in a course, on the 1.0-7.0 scale.
type Grade struct {
	RUT        string    `json:"rut" yaml:"rut" mapstructure:"rut"`
	Curso      string    `json:"curso" yaml:"curso" mapstructure:"curso"`
	Evaluacion string    `json:"evaluacion" yaml:"evaluacion" mapstructure:"evaluacion"`
	Nota       float64   `json:"nota" yaml:"nota" mapstructure:"nota"`
	Fecha      time.Time `json:"fecha" yaml:"fecha" mapstructure:"fecha"`
}

// PassingGrade is the minimum approving grade.
const PassingGrade = 4.0

// Aprobado reports whether the grade is approving.
func (g Grade) Aprobado() bool {
	return g.Nota >= PassingGrade
}

// Field exposes grade fields by their table column key.
func (g Grade) Field(key string) (any, bool) {
	switch key {
	case "rut":
		return g.RUT, true
	case "curso":
		return g.Curso, true
	case "evaluacion":
		return g.Evaluacion, true
	case "nota":
		return g.Nota, true
	case "aprobado":
		return g.Aprobado(), true
	case "fecha":
		return timeOrNil(g.Fecha), true
	}
	return nil, false
}

// GradeFilters returns the filter specs of the grade table.
func GradeFilters() search.Specs {
	return search.Specs{
		search.SelectFilter{Field: "curso", Label: "Curso"},
		search.RangeFilter{Field: "nota", Label: "Nota", Min: 1, Max: 7, Step: 0.1},
		search.BooleanFilter{Field: "aprobado", Label: "Aprobado"},
	}
}

// NewGradeEngine builds the search engine of the grade table.
func NewGradeEngine() *search.Engine[Grade] {
	return search.New(search.FielderGetter[Grade](),
		search.WithFields[Grade]("rut", "curso", "evaluacion"),
		search.WithFilters[Grade](GradeFilters()...),
	)
}
