package backoffice

import (
	"github.com/dmitrymomot/otec/pkg/search"
)

// Dataset names used by the global search.
const (
	DatasetParticipants = "participantes"
	DatasetCourses      = "cursos"
	DatasetEnrollments  = "inscripciones"
)

// Catalog is the in-memory state searched by the global search box.
type Catalog struct {
	Participants []Participant `json:"participantes" yaml:"participantes"`
	Courses      []Course      `json:"cursos" yaml:"cursos"`
	Enrollments  []Enrollment  `json:"inscripciones" yaml:"inscripciones"`
	Grades       []Grade       `json:"notas,omitempty" yaml:"notas,omitempty"`
}

// Sources returns the catalog collections as global search sources,
// participants first.
func (c Catalog) Sources() []search.Source {
	return []search.Source{
		search.Dataset[Participant]{
			Name:   DatasetParticipants,
			Items:  c.Participants,
			Fields: []string{"nombre", "rut", "rutNormalizado", "email"},
			Get:    search.FielderGetter[Participant](),
			Label:  func(p Participant) string { return p.Nombre + " (" + p.RUT + ")" },
		},
		search.Dataset[Course]{
			Name:   DatasetCourses,
			Items:  c.Courses,
			Fields: []string{"nombre", "codigo", "relator"},
			Get:    search.FielderGetter[Course](),
			Label:  func(c Course) string { return c.Codigo + " " + c.Nombre },
		},
		search.Dataset[Enrollment]{
			Name:   DatasetEnrollments,
			Items:  c.Enrollments,
			Fields: EnrollmentSearchFields,
			Get:    search.FielderGetter[Enrollment](),
			Label:  func(e Enrollment) string { return e.Participant + " / " + e.Curso },
		},
	}
}

// Search runs the global search over the catalog.
func (c Catalog) Search(term string) []search.Hit {
	return search.GlobalSearch(term, c.Sources()...)
}
