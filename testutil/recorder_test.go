package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/comalice/tinyfsm"
)

type host struct{}

type (
	first  struct{}
	second struct{}
)

func TestRecorder(t *testing.T) {
	var r Recorder
	_, ok := r.Last()
	require.False(t, ok)

	r.Enter("a")
	r.Handle("a", 1)
	r.Handle("a", 2)
	r.Handle("b", "x")

	require.Equal(t, 4, r.Len())
	require.Equal(t, 1, r.Count(KindEnter, "a"))
	require.Equal(t, 2, r.Count(KindHandle, "a"))
	require.Equal(t, 1, r.Count(KindHandle, "b"))
	require.Equal(t, 0, r.Count(KindEnter, "b"))

	last, ok := r.Last()
	require.True(t, ok)
	require.Equal(t, Call{Kind: KindHandle, State: "b", Event: "x"}, last)

	calls := r.Calls()
	calls[0].State = "mutated"
	require.Equal(t, "a", r.Calls()[0].State)

	r.Reset()
	require.Zero(t, r.Len())
}

func TestRequireState(t *testing.T) {
	m, err := tinyfsm.New(&host{}, tinyfsm.States{&first{}, &second{}})
	require.NoError(t, err)

	RequireState[*first](t, m)
	tinyfsm.Enter[*second](m)
	RequireState[*second](t, m)
}
