package mockdata_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/otec/pkg/backoffice"
	"github.com/dmitrymomot/otec/pkg/mockdata"
	"github.com/dmitrymomot/otec/pkg/rut"
)

func TestParticipants(t *testing.T) {
	ps := mockdata.Participants(200, 42)
	require.Len(t, ps, 200)

	seen := make(map[string]bool, len(ps))
	counts := make(map[backoffice.Estado]int)
	for _, p := range ps {
		assert.True(t, rut.IsValid(p.RUT), p.RUT)
		assert.Equal(t, rut.Format(p.RUT), p.RUT, "RUT is stored formatted")
		assert.False(t, seen[p.RUT], "duplicate RUT %s", p.RUT)
		seen[p.RUT] = true

		assert.NotEmpty(t, p.Nombre)
		assert.Regexp(t, `^[a-z.]+\d+@correo\.cl$`, p.Email)
		assert.GreaterOrEqual(t, p.Edad, 18)
		assert.False(t, p.FechaRegistro.Before(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
		if p.Nota != nil {
			assert.GreaterOrEqual(t, *p.Nota, 1.0)
			assert.LessOrEqual(t, *p.Nota, 7.0)
		} else {
			assert.False(t, p.Certificado)
		}
		counts[p.Estado]++
	}
	assert.Greater(t, counts[backoffice.EstadoActivo], counts[backoffice.EstadoInactivo], "activo is the most common state")
}

func TestDeterministic(t *testing.T) {
	assert.Equal(t, mockdata.Participants(50, 7), mockdata.Participants(50, 7))
	assert.Equal(t, mockdata.Courses(5, 7), mockdata.Courses(5, 7))
	assert.NotEqual(t, mockdata.Participants(50, 7), mockdata.Participants(50, 8))
}

func TestNonPositiveCount(t *testing.T) {
	assert.Empty(t, mockdata.Participants(0, 1))
	assert.NotNil(t, mockdata.Participants(-1, 1))
	assert.Empty(t, mockdata.Courses(0, 1))
}

func TestCourses(t *testing.T) {
	cs := mockdata.Courses(12, 1)
	require.Len(t, cs, 12)
	for i, c := range cs {
		assert.Equal(t, 100+i, mustAtoi(t, c.Codigo[2:]))
		assert.LessOrEqual(t, c.Inscritos, c.Cupos)
		assert.GreaterOrEqual(t, c.Disponibles(), 0)
		assert.True(t, c.Fin.After(c.Inicio) || c.Fin.Equal(c.Inicio))
	}
}

func TestCatalog(t *testing.T) {
	cat := mockdata.New(mockdata.WithSeed(5)).Catalog(60, 4)
	require.Len(t, cat.Participants, 60)
	require.Len(t, cat.Courses, 4)
	assert.Len(t, cat.Enrollments, 60)

	codes := make(map[string]bool)
	for _, c := range cat.Courses {
		codes[c.Codigo] = true
	}
	for _, e := range cat.Enrollments {
		assert.True(t, codes[e.Curso], "enrollment references generated course %s", e.Curso)
		assert.True(t, rut.IsValid(e.RUT))
	}
	for _, g := range cat.Grades {
		assert.True(t, codes[g.Curso])
	}
}

func TestOptions(t *testing.T) {
	start := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)
	g := mockdata.New(
		mockdata.WithSeed(9),
		mockdata.WithStart(start, 10),
		mockdata.WithWords(mockdata.FirstName, "Única"),
		mockdata.WithWords(mockdata.LastName),
	)
	for _, p := range g.Participants(20) {
		assert.Regexp(t, `^Única `, p.Nombre)
		assert.False(t, p.FechaRegistro.Before(start))
		assert.True(t, p.FechaRegistro.Before(start.AddDate(0, 0, 10)))
	}
}

func mustAtoi(t *testing.T, s string) int {
	t.Helper()
	n := 0
	for _, c := range s {
		require.True(t, c >= '0' && c <= '9', s)
		n = n*10 + int(c-'0')
	}
	return n
}
