package tinyfsm

// StateInfo describes one entry of a machine's state set.
type StateInfo struct {
	ID    uint   `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Type  string `json:"type" yaml:"type"`
	Enter bool   `json:"enter" yaml:"enter"`
}

// Layout is a read-only description of a machine, used for inspection and
// visualization.
type Layout struct {
	MachineID string      `json:"machineID" yaml:"machineID"`
	Strategy  string      `json:"strategy" yaml:"strategy"`
	Current   uint        `json:"current" yaml:"current"`
	States    []StateInfo `json:"states" yaml:"states"`
}

// Layout describes the machine's states in declaration order.
func (m *Machine[H]) Layout() Layout {
	l := Layout{
		MachineID: m.id,
		Strategy:  m.strategy.String(),
		Current:   m.current,
		States:    make([]StateInfo, len(m.states)),
	}
	for i, s := range m.states {
		l.States[i] = StateInfo{
			ID:    uint(i),
			Name:  m.StateName(uint(i)),
			Type:  m.types[i].String(),
			Enter: HasEnterHook[H](s),
		}
	}
	return l
}

// CurrentState returns the description of the active state.
func (l Layout) CurrentState() (StateInfo, bool) {
	if l.Current >= uint(len(l.States)) {
		return StateInfo{}, false
	}
	return l.States[l.Current], true
}
