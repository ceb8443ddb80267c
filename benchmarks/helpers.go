// Package benchmarks holds a generated large state set and the benchmarks and
// tests that compare dispatch strategies on it.
package benchmarks

//go:generate go run ../cmd/stategen -n 300 -pkg benchmarks -host Host -event Tick -handle-every 3 -enter-every 5 -o states_gen.go

import (
	"github.com/comalice/tinyfsm"
)

// Tick is the only event the generated states handle.
type Tick struct{ Seq int }

// Host owns the generated states and counts what they report.
type Host struct {
	tinyfsm.Machine[*Host]

	Handled     int
	LastHandled int
	LastSeq     int
	Entries     int
	LastEntered int

	// Advance makes every handler move the machine to the next ordinal.
	Advance bool
}

// NewHost builds a host over a fresh generated state set.
func NewHost(opts ...tinyfsm.Option) (*Host, error) {
	h := &Host{LastHandled: -1, LastEntered: -1}
	if err := h.Init(h, States(), opts...); err != nil {
		return nil, err
	}
	return h, nil
}

// Record is called by generated handlers.
func (h *Host) Record(id int, ev Tick) {
	h.Handled++
	h.LastHandled = id
	h.LastSeq = ev.Seq
	if h.Advance {
		_ = h.EnterID(uint((id + 1) % NumStates))
	}
}

// Entered is called by generated enter hooks.
func (h *Host) Entered(id int) {
	h.Entries++
	h.LastEntered = id
}
