package mockdata

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/otec/pkg/backoffice"
	"github.com/dmitrymomot/otec/pkg/rut"
	"github.com/dmitrymomot/otec/pkg/sanitizer"
)

// DefaultSeed is used when no seed is configured.
const DefaultSeed uint64 = 2024

// Generator produces deterministic records. It is not safe for concurrent use.
type Generator struct {
	rnd   *rand.Rand
	start time.Time
	span  int
	words map[Category][]string
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the random seed.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.rnd = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithStart sets the earliest registration date and the window, in days,
// registration dates are spread over.
func WithStart(start time.Time, days int) Option {
	return func(g *Generator) {
		g.start = start
		if days > 0 {
			g.span = days
		}
	}
}

// WithWords replaces the word list of a category.
func WithWords(c Category, words ...string) Option {
	return func(g *Generator) {
		if len(words) > 0 {
			g.words[c] = words
		}
	}
}

// New creates a generator.
func New(opts ...Option) *Generator {
	g := &Generator{
		start: time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC),
		span:  365,
		words: make(map[Category][]string, len(defaultWords)),
	}
	for c, w := range defaultWords {
		g.words[c] = w
	}
	WithSeed(DefaultSeed)(g)
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// estado weights: activo 6, inactivo 2, suspendido 1, egresado 1.
var estadoWeights = []backoffice.Estado{
	backoffice.EstadoActivo, backoffice.EstadoActivo, backoffice.EstadoActivo,
	backoffice.EstadoActivo, backoffice.EstadoActivo, backoffice.EstadoActivo,
	backoffice.EstadoInactivo, backoffice.EstadoInactivo,
	backoffice.EstadoSuspendido, backoffice.EstadoEgresado,
}

// Participants returns n participants with unique valid RUTs.
func (g *Generator) Participants(n int) []backoffice.Participant {
	return g.participants(n, nil)
}

func (g *Generator) participants(n int, courses []backoffice.Course) []backoffice.Participant {
	if n <= 0 {
		return []backoffice.Participant{}
	}
	out := make([]backoffice.Participant, 0, n)
	seen := make(map[int]struct{}, n)
	for len(out) < n {
		body := 5_000_000 + g.rnd.IntN(22_000_000)
		if _, dup := seen[body]; dup {
			continue
		}
		seen[body] = struct{}{}
		out = append(out, g.participant(rut.FromBody(body), courses))
	}
	return out
}

func (g *Generator) participant(r rut.RUT, courses []backoffice.Course) backoffice.Participant {
	first := g.pick(FirstName)
	last := g.pick(LastName)
	second := g.pick(LastName)
	p := backoffice.Participant{
		ID:            uuid.NewSHA1(uuid.NameSpaceOID, []byte(r.Compact())),
		RUT:           r.String(),
		Nombre:        first + " " + last + " " + second,
		Email:         emailFor(first, last, r.Body),
		Telefono:      fmt.Sprintf("+56 9 %04d %04d", g.rnd.IntN(10_000), g.rnd.IntN(10_000)),
		Estado:        estadoWeights[g.rnd.IntN(len(estadoWeights))],
		Edad:          18 + g.rnd.IntN(48),
		Asistencia:    float64(40 + g.rnd.IntN(61)),
		FechaRegistro: g.start.Add(time.Duration(g.rnd.IntN(g.span*24*60)) * time.Minute),
	}
	if g.rnd.IntN(4) > 0 {
		p.Empresa = g.pick(Company)
	}
	if g.rnd.IntN(5) > 0 {
		nota := float64(10+g.rnd.IntN(61)) / 10
		p.Nota = &nota
		p.Certificado = nota >= backoffice.PassingGrade && p.Asistencia >= 75
	}
	if len(courses) > 0 {
		p.Curso = courses[g.rnd.IntN(len(courses))].Codigo
	} else {
		p.Curso = fmt.Sprintf("C-%03d", 100+g.rnd.IntN(12))
	}
	return p
}

// Courses returns n courses with codes C-100, C-101 and so on.
func (g *Generator) Courses(n int) []backoffice.Course {
	if n <= 0 {
		return []backoffice.Course{}
	}
	modalidades := []backoffice.Modalidad{backoffice.ModalidadPresencial, backoffice.ModalidadOnline, backoffice.ModalidadMixta}
	out := make([]backoffice.Course, n)
	for i := range out {
		cupos := 10 + 5*g.rnd.IntN(5)
		inicio := g.start.AddDate(0, 0, g.rnd.IntN(g.span))
		horas := 8 * (1 + g.rnd.IntN(10))
		out[i] = backoffice.Course{
			Codigo:      fmt.Sprintf("C-%03d", 100+i),
			Nombre:      g.pick(CourseTopic) + " " + g.pick(CourseLevel),
			CodigoSence: fmt.Sprintf("12-37-%04d-%02d", g.rnd.IntN(10_000), g.rnd.IntN(100)),
			Modalidad:   modalidades[g.rnd.IntN(len(modalidades))],
			Relator:     g.pick(FirstName) + " " + g.pick(LastName),
			Horas:       horas,
			Cupos:       cupos,
			Inscritos:   g.rnd.IntN(cupos + 1),
			Precio:      50_000 * (1 + g.rnd.IntN(16)),
			Activo:      g.rnd.IntN(5) > 0,
			Inicio:      inicio,
			Fin:         inicio.AddDate(0, 0, horas/4),
		}
	}
	return out
}

// Catalog returns a consistent catalog: participants reference the generated
// courses and each participant with a course gets one enrollment and, when
// graded, one grade.
func (g *Generator) Catalog(participants, courses int) backoffice.Catalog {
	cs := g.Courses(courses)
	ps := g.participants(participants, cs)
	cat := backoffice.Catalog{
		Participants: ps,
		Courses:      cs,
		Enrollments:  make([]backoffice.Enrollment, 0, len(ps)),
	}
	states := []backoffice.EstadoInscripcion{
		backoffice.InscripcionConfirmada, backoffice.InscripcionConfirmada,
		backoffice.InscripcionPendiente, backoffice.InscripcionAnulada,
	}
	for _, p := range ps {
		if p.Curso == "" {
			continue
		}
		cat.Enrollments = append(cat.Enrollments, backoffice.Enrollment{
			ID:          uuid.NewSHA1(p.ID, []byte(p.Curso)),
			RUT:         p.RUT,
			Participant: p.Nombre,
			Curso:       p.Curso,
			Estado:      states[g.rnd.IntN(len(states))],
			Fecha:       p.FechaRegistro,
		})
		if p.Nota != nil {
			cat.Grades = append(cat.Grades, backoffice.Grade{
				RUT:        p.RUT,
				Curso:      p.Curso,
				Evaluacion: g.pick(Evaluation),
				Nota:       *p.Nota,
				Fecha:      p.FechaRegistro.AddDate(0, 1, 0),
			})
		}
	}
	return cat
}

func (g *Generator) pick(c Category) string {
	w := g.words[c]
	if len(w) == 0 {
		return ""
	}
	return w[g.rnd.IntN(len(w))]
}

var emailReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ñ", "n", "ü", "u", " ", "",
)

func emailFor(first, last string, body int) string {
	local := emailReplacer.Replace(sanitizer.FoldCase(first + "." + last))
	return fmt.Sprintf("%s%d@correo.cl", local, body%1000)
}

// Participants is a shortcut for New(WithSeed(seed)).Participants(n).
func Participants(n int, seed uint64) []backoffice.Participant {
	return New(WithSeed(seed)).Participants(n)
}

// Courses is a shortcut for New(WithSeed(seed)).Courses(n).
func Courses(n int, seed uint64) []backoffice.Course {
	return New(WithSeed(seed)).Courses(n)
}
