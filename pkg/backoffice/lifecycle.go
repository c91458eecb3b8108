package backoffice

import (
	"context"
	"errors"

	"github.com/dmitrymomot/otec/pkg/statemachine"
)

// MinAttendance is the attendance percentage required to graduate.
const MinAttendance = 75.0

// ErrNotEligible is returned when a participant does not meet the graduation requirements.
var ErrNotEligible = errors.New("participant does not meet graduation requirements")

// Evento triggers a participant state change.
type Evento string

const (
	EventoSuspender  Evento = "suspender"
	EventoDesactivar Evento = "desactivar"
	EventoReactivar  Evento = "reactivar"
	EventoEgresar    Evento = "egresar"
)

// Elegible reports whether p may graduate: a passing grade and enough attendance.
func (p Participant) Elegible() bool {
	return p.Nota != nil && *p.Nota >= PassingGrade && p.Asistencia >= MinAttendance
}

func elegible(_ context.Context, _ Estado, _ Evento, data any) bool {
	p, ok := data.(*Participant)
	return ok && p.Elegible()
}

func certify(_ context.Context, _, _ Estado, _ Evento, data any) error {
	p, ok := data.(*Participant)
	if !ok {
		return ErrNotEligible
	}
	p.Certificado = true
	return nil
}

var participantLifecycle = statemachine.NewTable(
	statemachine.Transition[Estado, Evento]{From: EstadoActivo, Event: EventoSuspender, To: EstadoSuspendido},
	statemachine.Transition[Estado, Evento]{From: EstadoActivo, Event: EventoDesactivar, To: EstadoInactivo},
	statemachine.Transition[Estado, Evento]{
		From:    EstadoActivo,
		Event:   EventoEgresar,
		To:      EstadoEgresado,
		Guards:  []statemachine.Guard[Estado, Evento]{elegible},
		Actions: []statemachine.Action[Estado, Evento]{certify},
	},
	statemachine.Transition[Estado, Evento]{From: EstadoSuspendido, Event: EventoReactivar, To: EstadoActivo},
	statemachine.Transition[Estado, Evento]{From: EstadoSuspendido, Event: EventoDesactivar, To: EstadoInactivo},
	statemachine.Transition[Estado, Evento]{From: EstadoInactivo, Event: EventoReactivar, To: EstadoActivo},
)

// Apply fires event on p and updates its Estado. Graduating also sets Certificado.
// Participants without a state are treated as activo.
func (p *Participant) Apply(ctx context.Context, event Evento) error {
	initial := p.Estado
	if initial == "" {
		initial = EstadoActivo
	}
	m := statemachine.NewFromTable(initial, participantLifecycle)
	if err := m.Fire(ctx, event, p); err != nil {
		if statemachine.IsRejected(err) {
			return errors.Join(ErrNotEligible, err)
		}
		return err
	}
	p.Estado = m.Current()
	return nil
}

// Acciones returns the events that can currently be applied to p.
func (p Participant) Acciones(ctx context.Context) []Evento {
	initial := p.Estado
	if initial == "" {
		initial = EstadoActivo
	}
	return statemachine.NewFromTable(initial, participantLifecycle).Available(ctx, &p)
}

// EventoInscripcion triggers an enrollment state change.
type EventoInscripcion string

const (
	EventoConfirmar EventoInscripcion = "confirmar"
	EventoAnular    EventoInscripcion = "anular"
)

var enrollmentLifecycle = statemachine.NewTable(
	statemachine.Transition[EstadoInscripcion, EventoInscripcion]{From: InscripcionPendiente, Event: EventoConfirmar, To: InscripcionConfirmada},
	statemachine.Transition[EstadoInscripcion, EventoInscripcion]{From: InscripcionPendiente, Event: EventoAnular, To: InscripcionAnulada},
	statemachine.Transition[EstadoInscripcion, EventoInscripcion]{From: InscripcionConfirmada, Event: EventoAnular, To: InscripcionAnulada},
)

// Apply fires event on e and updates its Estado. Enrollments without a state are pendiente.
func (e *Enrollment) Apply(ctx context.Context, event EventoInscripcion) error {
	initial := e.Estado
	if initial == "" {
		initial = InscripcionPendiente
	}
	m := statemachine.NewFromTable(initial, enrollmentLifecycle)
	if err := m.Fire(ctx, event, e); err != nil {
		return err
	}
	e.Estado = m.Current()
	return nil
}
