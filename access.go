package tinyfsm

import (
	"fmt"

	"github.com/comalice/tinyfsm/internal/typelist"
)

// Get returns the instance of state type S. It panics if S is not part of the
// machine's state set; use Lookup when that is not known in advance.
func Get[S, H any](m *Machine[H]) S {
	m.mustInit()
	s, ok := Lookup[S](m)
	if !ok {
		panic(fmt.Errorf("%w: %v", ErrUnknownState, typelist.Of[S]()))
	}
	return s
}

// Lookup returns the instance of state type S and whether it is registered.
func Lookup[S, H any](m *Machine[H]) (S, bool) {
	i, ok := m.index[typelist.Of[S]()]
	if !ok {
		var zero S
		return zero, false
	}
	return m.states[i].(S), true
}

// StateID returns the ordinal of state type S and whether it is registered.
func StateID[S, H any](m *Machine[H]) (uint, bool) {
	i, ok := m.index[typelist.Of[S]()]
	return uint(i), ok
}

// Is reports whether S is the active state.
func Is[S, H any](m *Machine[H]) bool {
	id, ok := StateID[S](m)
	return ok && id == m.current
}

// Handles reports whether the state with ordinal id handles events of type E,
// through Handle or a declared route.
func Handles[E, H any](m *Machine[H], id uint) bool {
	return Implements[Handler[H, E]](m, id) || (id < uint(len(m.routes)) && route[H, E](m, id) != nil)
}

// Implements reports whether the state with ordinal id implements C.
func Implements[C, H any](m *Machine[H], id uint) bool {
	if id >= uint(len(m.states)) {
		return false
	}
	return HasCapability[C](m.states[id])
}
