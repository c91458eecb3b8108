// Package statemachine provides a small, concurrency-safe finite state machine
// keyed by string-like state and event types.
//
// Transitions are registered up front. When several transitions share the
// same source state and event, the first whose guards all pass wins, which
// allows guard-based branching:
//
//	m := statemachine.New("pendiente",
//		statemachine.Transition[string, string]{From: "pendiente", Event: "confirmar", To: "confirmada"},
//		statemachine.Transition[string, string]{From: "pendiente", Event: "anular", To: "anulada"},
//	)
//	err := m.Fire(ctx, "confirmar", nil)
//
// Actions run before the state changes; an action error aborts the transition.
// Machines are cheap and are usually built per record from a shared Table.
package statemachine
