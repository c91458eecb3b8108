package backoffice_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/otec/pkg/backoffice"
	"github.com/dmitrymomot/otec/pkg/mockdata"
	"github.com/dmitrymomot/otec/pkg/search"
)

func TestParticipantField(t *testing.T) {
	nota := 5.5
	p := backoffice.Participant{
		RUT:           "12.345.678-5",
		Nombre:        "Juan Pérez",
		Estado:        backoffice.EstadoActivo,
		Nota:          &nota,
		Edad:          30,
		FechaRegistro: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		key     string
		value   any
		present bool
	}{
		{"rut", "12.345.678-5", true},
		{"rutNormalizado", "123456785", true},
		{"nombre", "Juan Pérez", true},
		{"estado", "activo", true},
		{"email", nil, true},
		{"edad", 30, true},
		{"nota", &nota, true},
		{"fechaRegistro", p.FechaRegistro, true},
		{"desconocido", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v, ok := p.Field(tt.key)
			assert.Equal(t, tt.present, ok)
			assert.Equal(t, tt.value, v)
		})
	}

	v, ok := backoffice.Participant{}.Field("fechaRegistro")
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestCourseField(t *testing.T) {
	c := backoffice.Course{Codigo: "C-100", Cupos: 20, Inscritos: 25, Modalidad: backoffice.ModalidadOnline}
	assert.Equal(t, 0, c.Disponibles())

	v, _ := c.Field("modalidad")
	assert.Equal(t, "online", v)
	v, _ = c.Field("inicio")
	assert.Nil(t, v)
	_, ok := c.Field("nope")
	assert.False(t, ok)
}

func TestGradeAprobado(t *testing.T) {
	assert.True(t, backoffice.Grade{Nota: 4.0}.Aprobado())
	assert.False(t, backoffice.Grade{Nota: 3.9}.Aprobado())
}

func TestParticipantSearchByCompactRUT(t *testing.T) {
	data := []backoffice.Participant{
		{RUT: "12.345.678-5", Nombre: "Juan"},
		{RUT: "7.654.321-6", Nombre: "Ana"},
	}
	res := backoffice.NewParticipantEngine().Query(data, search.Query{Term: "12345678"})
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Juan", res.Items[0].Nombre)
}

func TestParticipantFilters(t *testing.T) {
	specs := backoffice.ParticipantFilters()
	estado, ok := specs.Get("estado")
	require.True(t, ok)
	assert.Equal(t, search.FilterSelect, estado.Type())
	assert.Len(t, estado.(search.SelectFilter).Options, len(backoffice.Estados))

	nota, ok := specs.Get("nota")
	require.True(t, ok)
	assert.Equal(t, search.FilterRange, nota.Type())
}

// Mirrors the participant table: 150 records, search "garcía", estado
// activo, newest first, 15 per page.
func TestParticipantTableScenario(t *testing.T) {
	g := mockdata.New(mockdata.WithSeed(11), mockdata.WithWords(mockdata.LastName, "García", "Soto", "Muñoz", "Rojas"))
	data := g.Participants(150)
	engine := backoffice.NewParticipantEngine()

	q := search.Query{
		Term:    "garcía",
		Filters: search.Values{"estado": "activo"},
		Sort:    search.ParseSort("-fechaRegistro"),
	}
	res := engine.Query(data, q)

	var expected int
	for _, p := range data {
		if p.Estado == backoffice.EstadoActivo && strings.Contains(strings.ToLower(p.Nombre), "garcía") {
			expected++
		}
	}
	require.NotZero(t, expected)
	assert.Equal(t, expected, res.Stats.Filtered)
	assert.Equal(t, 150, res.Stats.Total)
	assert.Equal(t, 1, res.Stats.ActiveFilters)

	for i, p := range res.Items {
		assert.Equal(t, backoffice.EstadoActivo, p.Estado)
		assert.Contains(t, strings.ToLower(p.Nombre), "garcía")
		if i > 0 {
			assert.False(t, p.FechaRegistro.After(res.Items[i-1].FechaRegistro), "newest first")
		}
	}

	page, info := search.Page(res.Items, 15, 1)
	assert.LessOrEqual(t, len(page), 15)
	assert.Equal(t, (expected+14)/15, info.TotalPages)
	assert.Equal(t, res.Items[:len(page)], page)

	t.Run("session", func(t *testing.T) {
		s, err := search.NewSession(engine, data,
			search.WithPerPage[backoffice.Participant](15),
			search.WithDebounce[backoffice.Participant](time.Hour),
			search.WithIdentity(func(p backoffice.Participant) string { return p.ID.String() }),
		)
		require.NoError(t, err)
		t.Cleanup(s.Close)

		s.SetTerm("GARCÍA")
		s.SetFilter("estado", "activo")
		s.SetSort(search.ParseSort("-fechaRegistro"))
		snap := s.FlushTerm()

		assert.Equal(t, expected, snap.Stats.Filtered)
		assert.Equal(t, page, snap.Items)

		snap = s.SelectPage()
		assert.Equal(t, len(page), snap.Stats.Selected)
	})
}

func TestCatalogSearch(t *testing.T) {
	cat := mockdata.New(mockdata.WithSeed(3)).Catalog(40, 5)
	require.NotEmpty(t, cat.Enrollments)

	target := cat.Participants[0]
	hits := cat.Search(target.RUT)
	require.NotEmpty(t, hits)
	assert.Equal(t, backoffice.DatasetParticipants, hits[0].Dataset)
	assert.Equal(t, target, hits[0].Record)

	groups := search.GroupByDataset(cat.Search(cat.Courses[0].Codigo))
	require.NotEmpty(t, groups)
	var datasets []string
	for _, g := range groups {
		datasets = append(datasets, g.Dataset)
	}
	assert.Contains(t, datasets, backoffice.DatasetCourses)

	assert.Nil(t, cat.Search("   "))
}
