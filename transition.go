package tinyfsm

import (
	"fmt"

	"github.com/comalice/tinyfsm/internal/typelist"
)

// Enter makes S the active state and then runs its enter hook, if it has one.
// The previous state is not notified. Enter panics if S is not part of the
// machine's state set, or with ErrNotInitialized before Init.
func Enter[S, H any](m *Machine[H]) {
	m.mustInit()
	i, ok := m.index[typelist.Of[S]()]
	if !ok {
		panic(fmt.Errorf("%w: %v", ErrUnknownState, typelist.Of[S]()))
	}
	m.enter(uint(i))
}

// EnterID is Enter by ordinal.
func (m *Machine[H]) EnterID(id uint) error {
	if m.states == nil {
		return ErrNotInitialized
	}
	if id >= uint(len(m.states)) {
		return fmt.Errorf("%w: %d >= %d", ErrStateOutOfRange, id, len(m.states))
	}
	m.enter(id)
	return nil
}

func (m *Machine[H]) enter(id uint) {
	if m.debug() {
		m.logger.Debug("entering state", "machine", m.id, "from", m.StateName(m.current), "to", m.StateName(id))
	}

	m.current = id
	if e, ok := m.states[id].(Enterer[H]); ok {
		e.Enter(m.host)
	}
}
