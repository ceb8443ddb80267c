package tinyfsm_test

import (
	"github.com/comalice/tinyfsm"
	"github.com/comalice/tinyfsm/testutil"
)

// Events.
type (
	openEv  struct{}
	closeEv struct{}
	payload struct {
		N    int
		Text string
	}
	ping struct{}
)

// door is the two-state door: open <-> closed.
type door struct {
	tinyfsm.Machine[*door]
	rec testutil.Recorder
}

type (
	opened struct{}
	closed struct{}
)

func (opened) Handle(d *door, ev closeEv) {
	d.rec.Handle("opened", ev)
	tinyfsm.Enter[*closed](&d.Machine)
}

func (closed) Handle(d *door, ev openEv) {
	d.rec.Handle("closed", ev)
	tinyfsm.Enter[*opened](&d.Machine)
}

func newDoor(opts ...tinyfsm.Option) (*door, error) {
	d := &door{}
	if err := d.Init(d, tinyfsm.States{&opened{}, &closed{}}, opts...); err != nil {
		return nil, err
	}
	return d, nil
}

// probeHost exercises enter hooks, payloads and reentrancy.
type probeHost struct {
	tinyfsm.Machine[*probeHost]
	rec     testutil.Recorder
	handled int
	entered int
}

// idle has no handlers and no enter hook.
type idle struct{}

// listening handles payload and has an enter hook.
type listening struct {
	Last payload
	Hits int
}

func (l *listening) Enter(h *probeHost) {
	h.entered++
	h.rec.Enter("listening")
}

func (l *listening) Handle(h *probeHost, ev payload) {
	l.Last = ev
	l.Hits++
	h.handled++
	h.rec.Handle("listening", ev)
}

// relay forwards a ping into a transition to done, whose enter hook handles
// another event.
type relay struct{}

func (relay) Handle(h *probeHost, ev ping) {
	h.rec.Handle("relay", ev)
	tinyfsm.Enter[*done](&h.Machine)
}

type done struct{ Entered int }

func (d *done) Enter(h *probeHost) {
	d.Entered++
	h.rec.Enter("done")
}

// pinger is a named capability: idle and relay do not implement it.
type pinger interface {
	OnPing(*probeHost, ping)
}

func (d *done) OnPing(h *probeHost, ev ping) {
	h.rec.Handle("done", ev)
	tinyfsm.Enter[*listening](&h.Machine)
}

func newProbeHost(opts ...tinyfsm.Option) (*probeHost, error) {
	h := &probeHost{}
	err := h.Init(h, tinyfsm.States{&idle{}, &listening{}, &relay{}, &done{}}, opts...)
	return h, err
}

// counting is a host whose states do not allocate, for allocation tests.
type counting struct {
	tinyfsm.Machine[*counting]
	n int
}

type (
	countA struct{}
	countB struct{ hits int }
)

func (countA) Handle(c *counting, ev payload) { c.n += ev.N }

func (b *countB) Enter(c *counting) { b.hits++ }

// Generic state that never names its host type.
type bumper interface{ Bump() }

type bumping[H bumper] struct{}

func (bumping[H]) Handle(h H, _ ping) { h.Bump() }

type bumpHost struct {
	tinyfsm.Machine[*bumpHost]
	bumps int
}

func (b *bumpHost) Bump() { b.bumps++ }

// gateHost has a state that reacts to several event types through routes.
type gateHost struct {
	tinyfsm.Machine[*gateHost]
	rec testutil.Recorder
}

// gateOpen reacts to closeEv only, through Handle.
type gateOpen struct{}

func (gateOpen) Handle(g *gateHost, ev closeEv) {
	g.rec.Handle("gateOpen", ev)
	tinyfsm.Enter[*gateShut](&g.Machine)
}

// gateShut reacts to openEv, ping and payload.
type gateShut struct {
	Pings int
	Sum   int
}

func (s *gateShut) Routes(r *tinyfsm.Routes[*gateHost]) {
	tinyfsm.On(r, (*gateShut).OnOpen)
	tinyfsm.On(r, (*gateShut).OnPing)
	tinyfsm.On(r, (*gateShut).OnPayload)
}

func (s *gateShut) OnOpen(g *gateHost, ev openEv) {
	g.rec.Handle("gateShut", ev)
	tinyfsm.Enter[*gateOpen](&g.Machine)
}

func (s *gateShut) OnPing(_ *gateHost, _ ping) { s.Pings++ }

func (s *gateShut) OnPayload(_ *gateHost, ev payload) { s.Sum += ev.N }

func newGate(opts ...tinyfsm.Option) (*gateHost, error) {
	g := &gateHost{}
	err := g.Init(g, tinyfsm.States{&gateOpen{}, &gateShut{}}, opts...)
	return g, err
}
