package backoffice

import (
	"time"

	"github.com/dmitrymomot/otec/pkg/search"
)

// Modalidad is how a course is delivered.
type Modalidad string

const (
	ModalidadPresencial Modalidad = "presencial"
	ModalidadOnline     Modalidad = "online"
	ModalidadMixta      Modalidad = "mixta"
)

// Course is a training course offered by the provider.
type Course struct {
	Codigo      string    `json:"codigo" yaml:"codigo" mapstructure:"codigo"`
	Nombre      string    `json:"nombre" yaml:"nombre" mapstructure:"nombre"`
	CodigoSence string    `json:"codigoSence,omitempty" yaml:"codigoSence,omitempty" mapstructure:"codigoSence"`
	Modalidad   Modalidad `json:"modalidad" yaml:"modalidad" mapstructure:"modalidad"`
	Relator     string    `json:"relator,omitempty" yaml:"relator,omitempty" mapstructure:"relator"`
	Horas       int       `json:"horas" yaml:"horas" mapstructure:"horas"`
	Cupos       int       `json:"cupos" yaml:"cupos" mapstructure:"cupos"`
	Inscritos   int       `json:"inscritos" yaml:"inscritos" mapstructure:"inscritos"`
	Precio      int       `json:"precio" yaml:"precio" mapstructure:"precio"`
	Activo      bool      `json:"activo" yaml:"activo" mapstructure:"activo"`
	Inicio      time.Time `json:"inicio" yaml:"inicio" mapstructure:"inicio"`
	Fin         time.Time `json:"fin" yaml:"fin" mapstructure:"fin"`
}

// Disponibles returns the number of free seats.
func (c Course) Disponibles() int {
	return max(c.Cupos-c.Inscritos, 0)
}

// Field exposes course fields by their table column key.
func (c Course) Field(key string) (any, bool) {
	switch key {
	case "codigo":
		return c.Codigo, true
	case "nombre":
		return c.Nombre, true
	case "codigoSence":
		return optional(c.CodigoSence), true
	case "modalidad":
		return string(c.Modalidad), true
	case "relator":
		return optional(c.Relator), true
	case "horas":
		return c.Horas, true
	case "cupos":
		return c.Cupos, true
	case "inscritos":
		return c.Inscritos, true
	case "disponibles":
		return c.Disponibles(), true
	case "precio":
		return c.Precio, true
	case "activo":
		return c.Activo, true
	case "inicio":
		return timeOrNil(c.Inicio), true
	case "fin":
		return timeOrNil(c.Fin), true
	}
	return nil, false
}

// CourseSearchFields are scanned by the course table search box.
var CourseSearchFields = []string{"codigo", "nombre", "codigoSence", "relator"}

// CourseFilters returns the filter specs of the course table.
func CourseFilters() search.Specs {
	return search.Specs{
		search.SelectFilter{Field: "modalidad", Label: "Modalidad", Options: []search.Option{
			{Value: string(ModalidadPresencial), Label: "Presencial"},
			{Value: string(ModalidadOnline), Label: "Online"},
			{Value: string(ModalidadMixta), Label: "Mixta"},
		}},
		search.BooleanFilter{Field: "activo", Label: "Activo"},
		search.RangeFilter{Field: "horas", Label: "Horas", Min: 0, Max: 400, Step: 4},
		search.RangeFilter{Field: "precio", Label: "Precio", Min: 0, Max: 2_000_000, Step: 10_000},
		search.NumberFilter{Field: "disponibles", Label: "Cupos disponibles"},
		search.DateFilter{Field: "inicio", Label: "Inicio"},
		search.TextFilter{Field: "relator", Label: "Relator"},
	}
}

// NewCourseEngine builds the search engine of the course table.
func NewCourseEngine() *search.Engine[Course] {
	return search.New(search.FielderGetter[Course](),
		search.WithFields[Course](CourseSearchFields...),
		search.WithFilters[Course](CourseFilters()...),
	)
}

func timeOrNil(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}
