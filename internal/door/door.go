// Package door implements a lockable door on top of tinyfsm. It backs the demo
// command and doubles as an end-to-end exercise of the engine.
package door

import (
	"fmt"
	"log/slog"

	"github.com/comalice/tinyfsm"
	"github.com/comalice/tinyfsm/visualize"
)

// Events understood by the door.
type (
	OpenEvent   struct{}
	CloseEvent  struct{}
	LockEvent   struct{ Key uint }
	UnlockEvent struct{ Key uint }
)

// Door is a host with three states: Open, Closed and Locked. Only the right key
// locks or unlocks it.
type Door struct {
	tinyfsm.Machine[*Door]

	key    uint
	locks  int
	logger *slog.Logger
}

// New creates a door that accepts key and starts open.
func New(key uint, logger *slog.Logger, opts ...tinyfsm.Option) (*Door, error) {
	if logger == nil {
		logger = tinyfsm.Logger
	}
	d := &Door{key: key, logger: logger}
	if err := d.Init(d, tinyfsm.States{&Open{}, &Closed{}, &Locked{}}, opts...); err != nil {
		return nil, fmt.Errorf("init door: %w", err)
	}
	tinyfsm.Enter[*Open](&d.Machine)
	return d, nil
}

func (d *Door) Open() { tinyfsm.Process(&d.Machine, OpenEvent{}) }

func (d *Door) Close() { tinyfsm.Process(&d.Machine, CloseEvent{}) }

func (d *Door) Lock(key uint) { tinyfsm.Process(&d.Machine, LockEvent{Key: key}) }

func (d *Door) Unlock(key uint) { tinyfsm.Process(&d.Machine, UnlockEvent{Key: key}) }

// Send dispatches one of the door's event values. Unknown values are ignored
// like any other event no state handles.
func (d *Door) Send(ev any) {
	switch ev := ev.(type) {
	case OpenEvent:
		tinyfsm.Process(&d.Machine, ev)
	case CloseEvent:
		tinyfsm.Process(&d.Machine, ev)
	case LockEvent:
		tinyfsm.Process(&d.Machine, ev)
	case UnlockEvent:
		tinyfsm.Process(&d.Machine, ev)
	}
}

// Locks returns how many times the door has been locked.
func (d *Door) Locks() int {
	return d.locks
}

// State returns the name of the active state.
func (d *Door) State() string {
	return d.StateName(d.CurrentStateID())
}

// Edges lists the transitions the door's handlers can take.
func Edges() []visualize.Edge {
	return []visualize.Edge{
		{From: "Open", To: "Closed", Label: "close"},
		{From: "Closed", To: "Open", Label: "open"},
		{From: "Closed", To: "Locked", Label: "lock(key)"},
		{From: "Locked", To: "Closed", Label: "unlock(key)"},
	}
}

// Open is the state of an open door.
type Open struct{}

func (Open) Handle(d *Door, _ CloseEvent) {
	d.logger.Info("closing door")
	tinyfsm.Enter[*Closed](&d.Machine)
}

// Closed is the state of a closed, unlocked door. It reacts to open and lock.
type Closed struct{}

func (c *Closed) Routes(r *tinyfsm.Routes[*Door]) {
	tinyfsm.On(r, (*Closed).OnOpen)
	tinyfsm.On(r, (*Closed).OnLock)
}

func (Closed) OnOpen(d *Door, _ OpenEvent) {
	d.logger.Info("opening door")
	tinyfsm.Enter[*Open](&d.Machine)
}

func (Closed) OnLock(d *Door, ev LockEvent) {
	if ev.Key != d.key {
		d.logger.Warn("wrong key")
		return
	}
	d.logger.Info("locking door")
	tinyfsm.Enter[*Locked](&d.Machine)
}

// Locked is the state of a locked door.
type Locked struct {
	// Attempts counts unlock tries with a wrong key since the door was locked.
	Attempts int
}

func (*Locked) String() string { return "Locked" }

func (l *Locked) Enter(d *Door) {
	l.Attempts = 0
	d.locks++
}

func (l *Locked) Handle(d *Door, ev UnlockEvent) {
	if ev.Key != d.key {
		l.Attempts++
		d.logger.Warn("wrong key", "attempts", l.Attempts)
		return
	}
	d.logger.Info("unlocking door")
	tinyfsm.Enter[*Closed](&d.Machine)
}
