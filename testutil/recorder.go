// Package testutil provides helpers for testing machines and their states.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/comalice/tinyfsm"
)

// Kind tells handler calls from enter hook calls.
type Kind int

const (
	KindHandle Kind = iota
	KindEnter
)

// Call is one recorded handler or enter hook invocation.
type Call struct {
	Kind  Kind
	State string
	Event any
}

// Recorder collects calls made by states under test, in order.
type Recorder struct {
	calls []Call
}

// Handle records a handler invocation of state for ev.
func (r *Recorder) Handle(state string, ev any) {
	r.calls = append(r.calls, Call{Kind: KindHandle, State: state, Event: ev})
}

// Enter records an enter hook invocation of state.
func (r *Recorder) Enter(state string) {
	r.calls = append(r.calls, Call{Kind: KindEnter, State: state})
}

// Calls returns a copy of the recorded calls.
func (r *Recorder) Calls() []Call {
	return append([]Call(nil), r.calls...)
}

// Count returns how many calls of kind were recorded for state.
func (r *Recorder) Count(kind Kind, state string) int {
	n := 0
	for _, c := range r.calls {
		if c.Kind == kind && c.State == state {
			n++
		}
	}
	return n
}

// Last returns the most recent call.
func (r *Recorder) Last() (Call, bool) {
	if len(r.calls) == 0 {
		return Call{}, false
	}
	return r.calls[len(r.calls)-1], true
}

// Len returns the number of recorded calls.
func (r *Recorder) Len() int {
	return len(r.calls)
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.calls = r.calls[:0]
}

// RequireState fails the test unless S is the active state of m.
func RequireState[S, H any](t testing.TB, m *tinyfsm.Machine[H]) {
	t.Helper()
	want, ok := tinyfsm.StateID[S](m)
	require.True(t, ok, "state %T is not registered", *new(S))
	got := m.CurrentStateID()
	require.Equal(t, want, got, "expected state %s, got %s", m.StateName(want), m.StateName(got))
}
