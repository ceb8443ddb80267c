package tinyfsm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/comalice/tinyfsm"
	"github.com/comalice/tinyfsm/testutil"
)

func TestProcessReachesRoutedHandlers(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			g, err := newGate(tinyfsm.WithStrategy(s))
			require.NoError(t, err)
			tinyfsm.Enter[*gateShut](&g.Machine)
			shut := tinyfsm.Get[*gateShut](&g.Machine)

			tinyfsm.Process(&g.Machine, ping{})
			tinyfsm.Process(&g.Machine, payload{N: 4})
			tinyfsm.Process(&g.Machine, payload{N: 5})
			tinyfsm.Process(&g.Machine, closeEv{})
			testutil.RequireState[*gateShut](t, &g.Machine)
			require.Equal(t, 1, shut.Pings)
			require.Equal(t, 9, shut.Sum)

			tinyfsm.Process(&g.Machine, openEv{})
			testutil.RequireState[*gateOpen](t, &g.Machine)

			// Routes belong to gateShut only.
			tinyfsm.Process(&g.Machine, ping{})
			tinyfsm.Process(&g.Machine, openEv{})
			testutil.RequireState[*gateOpen](t, &g.Machine)
			require.Equal(t, 1, shut.Pings)

			tinyfsm.Process(&g.Machine, closeEv{})
			testutil.RequireState[*gateShut](t, &g.Machine)

			require.Equal(t, []testutil.Call{
				{Kind: testutil.KindHandle, State: "gateShut", Event: openEv{}},
				{Kind: testutil.KindHandle, State: "gateOpen", Event: closeEv{}},
			}, g.rec.Calls())
		})
	}
}

func TestHandlesSeesRoutes(t *testing.T) {
	g, err := newGate()
	require.NoError(t, err)

	require.True(t, tinyfsm.Handles[closeEv](&g.Machine, 0))
	require.False(t, tinyfsm.Handles[openEv](&g.Machine, 0))
	require.True(t, tinyfsm.Handles[openEv](&g.Machine, 1))
	require.True(t, tinyfsm.Handles[ping](&g.Machine, 1))
	require.False(t, tinyfsm.Handles[closeEv](&g.Machine, 1))
	require.False(t, tinyfsm.Handles[ping](&g.Machine, 2))

	d := tinyfsm.Compile[payload](&g.Machine)
	require.Equal(t, 1, d.Len())
	require.True(t, d.Handles(1))

	tinyfsm.Enter[*gateShut](&g.Machine)
	d.Process(payload{N: 3})
	require.Equal(t, 3, tinyfsm.Get[*gateShut](&g.Machine).Sum)
}

type (
	twiceRouted struct{}
	clashRouted struct{}
	strayRouted struct{}
)

func (twiceRouted) OnPing(*gateHost, ping) {}
func (twiceRouted) OnPong(*gateHost, ping) {}
func (clashRouted) Handle(*gateHost, ping) {}
func (clashRouted) OnPing(*gateHost, ping) {}

func (*twiceRouted) Routes(r *tinyfsm.Routes[*gateHost]) {
	tinyfsm.On(r, (*twiceRouted).OnPing)
	tinyfsm.On(r, (*twiceRouted).OnPong)
}

func (*clashRouted) Routes(r *tinyfsm.Routes[*gateHost]) {
	tinyfsm.On(r, (*clashRouted).OnPing)
}

func (*strayRouted) Routes(r *tinyfsm.Routes[*gateHost]) {
	tinyfsm.On(r, (*gateShut).OnPing)
}

func TestRouteValidation(t *testing.T) {
	tests := []struct {
		name  string
		state any
		err   error
	}{
		{name: "same event twice", state: &twiceRouted{}, err: tinyfsm.ErrDuplicateHandler},
		{name: "route shadows Handle", state: &clashRouted{}, err: tinyfsm.ErrDuplicateHandler},
		{name: "foreign receiver", state: &strayRouted{}, err: tinyfsm.ErrRouteMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := &gateHost{}
			err := g.Init(g, tinyfsm.States{&gateOpen{}, tc.state})
			require.ErrorIs(t, err, tc.err)
			require.ErrorContains(t, err, "state 1")
		})
	}
}

func TestRoutedDispatchAllocations(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			g, err := newGate(tinyfsm.WithStrategy(s))
			require.NoError(t, err)
			tinyfsm.Enter[*gateShut](&g.Machine)

			allocs := testing.AllocsPerRun(100, func() {
				tinyfsm.Process(&g.Machine, ping{})
				tinyfsm.Process(&g.Machine, payload{N: 1})
			})
			require.Zero(t, allocs)
			require.Equal(t, 101, tinyfsm.Get[*gateShut](&g.Machine).Pings)
		})
	}
}

func TestZeroMachinePanics(t *testing.T) {
	var m tinyfsm.Machine[*probeHost]

	requirePanicsWith(t, tinyfsm.ErrNotInitialized, func() { tinyfsm.Process(&m, ping{}) })
	requirePanicsWith(t, tinyfsm.ErrNotInitialized, func() { tinyfsm.Dispatch(&m, ping{}, pinger.OnPing) })
	requirePanicsWith(t, tinyfsm.ErrNotInitialized, func() { tinyfsm.Enter[*idle](&m) })
	requirePanicsWith(t, tinyfsm.ErrNotInitialized, func() { tinyfsm.Get[*idle](&m) })
	requirePanicsWith(t, tinyfsm.ErrNotInitialized, func() { tinyfsm.Compile[ping](&m) })
	require.ErrorIs(t, m.EnterID(0), tinyfsm.ErrNotInitialized)
}

func TestDispatcherFollowsInit(t *testing.T) {
	h, err := newProbeHost()
	require.NoError(t, err)

	d := tinyfsm.Compile[payload](&h.Machine)
	p := tinyfsm.CompileFunc(&h.Machine, pinger.OnPing)
	require.True(t, d.Handles(1))
	require.True(t, p.Handles(3))

	// Shrink the state set: listening moves to ordinal 0, done is gone.
	require.NoError(t, h.Init(h, tinyfsm.States{&listening{}}))
	require.True(t, d.Handles(0))
	require.False(t, d.Handles(1))
	require.Zero(t, p.Len())

	tinyfsm.Enter[*listening](&h.Machine)
	d.Process(payload{N: 8})
	p.Process(ping{})
	require.Equal(t, 8, tinyfsm.Get[*listening](&h.Machine).Last.N)
	testutil.RequireState[*listening](t, &h.Machine)
}
