package backoffice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/otec/pkg/backoffice"
	"github.com/dmitrymomot/otec/pkg/statemachine"
)

func nota(v float64) *float64 { return &v }

func TestParticipantLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("suspend and reactivate", func(t *testing.T) {
		t.Parallel()
		p := backoffice.Participant{Estado: backoffice.EstadoActivo}
		require.NoError(t, p.Apply(ctx, backoffice.EventoSuspender))
		assert.Equal(t, backoffice.EstadoSuspendido, p.Estado)
		require.NoError(t, p.Apply(ctx, backoffice.EventoReactivar))
		assert.Equal(t, backoffice.EstadoActivo, p.Estado)
	})

	t.Run("graduate sets certificado", func(t *testing.T) {
		t.Parallel()
		p := backoffice.Participant{Estado: backoffice.EstadoActivo, Nota: nota(5.5), Asistencia: 90}
		assert.Contains(t, p.Acciones(ctx), backoffice.EventoEgresar)
		require.NoError(t, p.Apply(ctx, backoffice.EventoEgresar))
		assert.Equal(t, backoffice.EstadoEgresado, p.Estado)
		assert.True(t, p.Certificado)
		assert.Empty(t, p.Acciones(ctx))
	})

	t.Run("graduate requires grade and attendance", func(t *testing.T) {
		t.Parallel()
		for _, p := range []backoffice.Participant{
			{Estado: backoffice.EstadoActivo, Asistencia: 100},
			{Estado: backoffice.EstadoActivo, Nota: nota(3.9), Asistencia: 100},
			{Estado: backoffice.EstadoActivo, Nota: nota(7), Asistencia: 74.9},
		} {
			assert.NotContains(t, p.Acciones(ctx), backoffice.EventoEgresar)
			err := p.Apply(ctx, backoffice.EventoEgresar)
			require.ErrorIs(t, err, backoffice.ErrNotEligible)
			assert.Equal(t, backoffice.EstadoActivo, p.Estado)
			assert.False(t, p.Certificado)
		}
	})

	t.Run("unknown transition", func(t *testing.T) {
		t.Parallel()
		p := backoffice.Participant{Estado: backoffice.EstadoEgresado}
		err := p.Apply(ctx, backoffice.EventoSuspender)
		assert.True(t, statemachine.IsNoTransition(err))
		assert.Equal(t, backoffice.EstadoEgresado, p.Estado)
	})

	t.Run("blank state is activo", func(t *testing.T) {
		t.Parallel()
		var p backoffice.Participant
		assert.Equal(t, []backoffice.Evento{backoffice.EventoSuspender, backoffice.EventoDesactivar}, p.Acciones(ctx))
		require.NoError(t, p.Apply(ctx, backoffice.EventoDesactivar))
		assert.Equal(t, backoffice.EstadoInactivo, p.Estado)
	})
}

func TestEnrollmentLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var e backoffice.Enrollment
	require.NoError(t, e.Apply(ctx, backoffice.EventoConfirmar))
	assert.Equal(t, backoffice.InscripcionConfirmada, e.Estado)
	assert.Error(t, e.Apply(ctx, backoffice.EventoConfirmar))
	require.NoError(t, e.Apply(ctx, backoffice.EventoAnular))
	assert.Equal(t, backoffice.InscripcionAnulada, e.Estado)
	assert.True(t, statemachine.IsNoTransition(e.Apply(ctx, backoffice.EventoAnular)))
}
