package backoffice

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/otec/pkg/rut"
	"github.com/dmitrymomot/otec/pkg/search"
)

// Estado is the lifecycle state of a participant.
type Estado string

const (
	EstadoActivo     Estado = "activo"
	EstadoInactivo   Estado = "inactivo"
	EstadoSuspendido Estado = "suspendido"
	EstadoEgresado   Estado = "egresado"
)

// Estados lists participant states in display order.
var Estados = []Estado{EstadoActivo, EstadoInactivo, EstadoSuspendido, EstadoEgresado}

// Participant is a person enrolled, or about to be enrolled, in a course.
type Participant struct {
	ID            uuid.UUID `json:"id" yaml:"id" mapstructure:"id"`
	RUT           string    `json:"rut" yaml:"rut" mapstructure:"rut"`
	Nombre        string    `json:"nombre" yaml:"nombre" mapstructure:"nombre"`
	Email         string    `json:"email,omitempty" yaml:"email,omitempty" mapstructure:"email"`
	Telefono      string    `json:"telefono,omitempty" yaml:"telefono,omitempty" mapstructure:"telefono"`
	Empresa       string    `json:"empresa,omitempty" yaml:"empresa,omitempty" mapstructure:"empresa"`
	Estado        Estado    `json:"estado" yaml:"estado" mapstructure:"estado"`
	Curso         string    `json:"curso,omitempty" yaml:"curso,omitempty" mapstructure:"curso"`
	Edad          int       `json:"edad,omitempty" yaml:"edad,omitempty" mapstructure:"edad"`
	Nota          *float64  `json:"nota,omitempty" yaml:"nota,omitempty" mapstructure:"nota"`
	Asistencia    float64   `json:"asistencia" yaml:"asistencia" mapstructure:"asistencia"`
	Certificado   bool      `json:"certificado" yaml:"certificado" mapstructure:"certificado"`
	FechaRegistro time.Time `json:"fechaRegistro" yaml:"fechaRegistro" mapstructure:"fechaRegistro"`
}

// Field exposes participant fields by their table column key.
func (p Participant) Field(key string) (any, bool) {
	switch key {
	case "id":
		return p.ID.String(), true
	case "rut":
		return p.RUT, true
	case "rutNormalizado":
		return rut.Normalize(p.RUT), true
	case "nombre":
		return p.Nombre, true
	case "email":
		return optional(p.Email), true
	case "telefono":
		return optional(p.Telefono), true
	case "empresa":
		return optional(p.Empresa), true
	case "estado":
		return string(p.Estado), true
	case "curso":
		return optional(p.Curso), true
	case "edad":
		if p.Edad == 0 {
			return nil, true
		}
		return p.Edad, true
	case "nota":
		return p.Nota, true
	case "asistencia":
		return p.Asistencia, true
	case "certificado":
		return p.Certificado, true
	case "fechaRegistro":
		if p.FechaRegistro.IsZero() {
			return nil, true
		}
		return p.FechaRegistro, true
	}
	return nil, false
}

// ParticipantSearchFields are scanned by the participant table search box.
// rutNormalizado lets "12345678" find "12.345.678-5".
var ParticipantSearchFields = []string{"nombre", "rut", "rutNormalizado", "email", "empresa"}

// ParticipantFilters returns the filter specs of the participant table.
func ParticipantFilters() search.Specs {
	options := make([]search.Option, len(Estados))
	for i, e := range Estados {
		options[i] = search.Option{Value: string(e), Label: estadoLabels[e]}
	}
	return search.Specs{
		search.SelectFilter{Field: "estado", Label: "Estado", Options: options},
		search.SelectFilter{Field: "curso", Label: "Curso"},
		search.TextFilter{Field: "empresa", Label: "Empresa"},
		search.NumberFilter{Field: "edad", Label: "Edad"},
		search.RangeFilter{Field: "nota", Label: "Nota", Min: 1, Max: 7, Step: 0.1},
		search.RangeFilter{Field: "asistencia", Label: "Asistencia (%)", Min: 0, Max: 100, Step: 1},
		search.BooleanFilter{Field: "certificado", Label: "Certificado"},
		search.DateFilter{Field: "fechaRegistro", Label: "Fecha de registro"},
	}
}

var estadoLabels = map[Estado]string{
	EstadoActivo:     "Activo",
	EstadoInactivo:   "Inactivo",
	EstadoSuspendido: "Suspendido",
	EstadoEgresado:   "Egresado",
}

// NewParticipantEngine builds the search engine of the participant table.
func NewParticipantEngine() *search.Engine[Participant] {
	return search.New(search.FielderGetter[Participant](),
		search.WithFields[Participant](ParticipantSearchFields...),
		search.WithFilters[Participant](ParticipantFilters()...),
	)
}

func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}
