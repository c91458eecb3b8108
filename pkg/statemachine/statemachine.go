package statemachine

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// Guard decides at fire time whether a transition may proceed.
type Guard[S, E ~string] func(ctx context.Context, from S, event E, data any) bool

// Action runs a side effect before the state changes. Returning an error aborts the transition.
type Action[S, E ~string] func(ctx context.Context, from, to S, event E, data any) error

// Transition moves the machine from From to To when Event fires.
type Transition[S, E ~string] struct {
	From    S
	Event   E
	To      S
	Guards  []Guard[S, E]  // all must pass
	Actions []Action[S, E] // run in order
}

// Table indexes transitions by source state and event. It is read-only after
// NewTable and may be shared by any number of machines.
type Table[S, E ~string] struct {
	index map[S]map[E][]Transition[S, E]
	order map[S][]E
}

// NewTable builds a transition table.
func NewTable[S, E ~string](transitions ...Transition[S, E]) *Table[S, E] {
	t := &Table[S, E]{
		index: make(map[S]map[E][]Transition[S, E]),
		order: make(map[S][]E),
	}
	for _, tr := range transitions {
		if _, ok := t.index[tr.From]; !ok {
			t.index[tr.From] = make(map[E][]Transition[S, E])
		}
		if _, ok := t.index[tr.From][tr.Event]; !ok {
			t.order[tr.From] = append(t.order[tr.From], tr.Event)
		}
		t.index[tr.From][tr.Event] = append(t.index[tr.From][tr.Event], tr)
	}
	return t
}

// Events returns the events registered for state, in registration order.
func (t *Table[S, E]) Events(state S) []E {
	return slices.Clone(t.order[state])
}

// pick returns the first transition from state for event whose guards pass.
func (t *Table[S, E]) pick(ctx context.Context, state S, event E, data any) (Transition[S, E], error) {
	candidates := t.index[state][event]
	if len(candidates) == 0 {
		return Transition[S, E]{}, &NoTransitionError{State: string(state), Event: string(event)}
	}
	for _, tr := range candidates {
		if passes(ctx, tr.Guards, state, event, data) {
			return tr, nil
		}
	}
	return Transition[S, E]{}, &RejectedError{State: string(state), Event: string(event)}
}

func passes[S, E ~string](ctx context.Context, guards []Guard[S, E], from S, event E, data any) bool {
	for _, g := range guards {
		if g != nil && !g(ctx, from, event, data) {
			return false
		}
	}
	return true
}

// Machine is a state machine instance. It is safe for concurrent use.
type Machine[S, E ~string] struct {
	mu      sync.RWMutex
	table   *Table[S, E]
	initial S
	current S
}

// New creates a machine in state initial with its own transition table.
func New[S, E ~string](initial S, transitions ...Transition[S, E]) *Machine[S, E] {
	return NewFromTable(initial, NewTable(transitions...))
}

// NewFromTable creates a machine in state initial over a shared table.
func NewFromTable[S, E ~string](initial S, table *Table[S, E]) *Machine[S, E] {
	return &Machine[S, E]{table: table, initial: initial, current: initial}
}

// Current returns the current state.
func (m *Machine[S, E]) Current() S {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Fire applies event. data is passed to guards and actions.
func (m *Machine[S, E]) Fire(ctx context.Context, event E, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tr, err := m.table.pick(ctx, m.current, event, data)
	if err != nil {
		return err
	}
	for _, action := range tr.Actions {
		if action == nil {
			continue
		}
		if err := action(ctx, m.current, tr.To, event, data); err != nil {
			return fmt.Errorf("action failed: %w", err)
		}
	}
	m.current = tr.To
	return nil
}

// CanFire reports whether Fire would find a transition for event.
// Actions are not run, so Fire may still fail.
func (m *Machine[S, E]) CanFire(ctx context.Context, event E, data any) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, err := m.table.pick(ctx, m.current, event, data)
	return err == nil
}

// Available returns the events that can fire from the current state.
func (m *Machine[S, E]) Available(ctx context.Context, data any) []E {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []E
	for _, e := range m.table.Events(m.current) {
		if _, err := m.table.pick(ctx, m.current, e, data); err == nil {
			out = append(out, e)
		}
	}
	return out
}

// Reset returns the machine to its initial state.
func (m *Machine[S, E]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.initial
}
