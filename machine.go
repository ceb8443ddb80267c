// Package tinyfsm is a minimal embeddable finite-state-machine dispatch engine.
//
// A host type owns a Machine holding one instance of every state it can be in.
// Exactly one state is active at a time. Events are plain values of any type;
// Process hands an event to the active state if, and only if, that state
// declares a handler for the event's type. Everything else is silently ignored.
// A state declares one event through its Handle method and further events
// through Routes, see Router.
//
//	type Door struct{ tinyfsm.Machine[*Door] }
//
//	type Open struct{}
//	type Closed struct{}
//
//	func (Open) Handle(d *Door, _ CloseEvent)  { tinyfsm.Enter[*Closed](&d.Machine) }
//	func (Closed) Handle(d *Door, _ OpenEvent) { tinyfsm.Enter[*Open](&d.Machine) }
//
//	d := &Door{}
//	if err := d.Init(d, tinyfsm.States{&Open{}, &Closed{}}); err != nil { ... }
//	tinyfsm.Enter[*Open](&d.Machine)
//	tinyfsm.Process(&d.Machine, CloseEvent{})
//
// The machine is single-threaded and synchronous. Process and Enter do not
// allocate. Handlers may call back into the machine; such calls simply nest.
package tinyfsm

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/google/uuid"

	"github.com/comalice/tinyfsm/internal/typelist"
)

// Logger is the default logger for machines built without WithLogger.
var Logger = slog.Default()

// States is the ordered state set of a machine. Every entry must be a distinct
// non-nil pointer to a struct; its position is the state's ordinal.
type States []any

// Machine holds the state instances of a host and the index of the active one.
// The zero value is unusable until Init is called.
type Machine[H any] struct {
	host    H
	states  States
	types   []reflect.Type
	index   map[reflect.Type]int
	routes  []map[reflect.Type]any
	current uint
	gen     uint64

	strategy Strategy
	tables   map[reflect.Type]any
	logger   *slog.Logger
	id       string
}

// New allocates a Machine for host. See Init.
func New[H any](host H, states States, opts ...Option) (*Machine[H], error) {
	m := &Machine[H]{}
	if err := m.Init(host, states, opts...); err != nil {
		return nil, err
	}
	return m, nil
}

// Init validates states and binds them to host. It is meant for hosts that embed
// a Machine. The first declared state is current afterwards, but its enter hook
// has not run; call Enter to run it.
func (m *Machine[H]) Init(host H, states States, opts ...Option) error {
	types, err := validate(states)
	if err != nil {
		return err
	}
	routes, err := collectRoutes[H](states)
	if err != nil {
		return err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == "" {
		o.id = uuid.NewString()
	}

	*m = Machine[H]{
		host:     host,
		states:   append(States(nil), states...),
		types:    types,
		index:    typelist.Positions(types),
		routes:   routes,
		gen:      m.gen + 1,
		strategy: o.strategy.resolve(len(states), o.threshold),
		tables:   make(map[reflect.Type]any),
		logger:   o.logger,
		id:       o.id,
	}

	if m.debug() {
		m.logger.Debug("machine initialized", "machine", m.id, "states", len(states), "strategy", m.strategy)
	}
	return nil
}

func validate(states States) ([]reflect.Type, error) {
	if len(states) == 0 {
		return nil, ErrNoStates
	}

	types := make([]reflect.Type, len(states))
	for i, s := range states {
		t := reflect.TypeOf(s)
		if t == nil || t.Kind() != reflect.Pointer || t.Elem().Kind() != reflect.Struct {
			return nil, fmt.Errorf("%w: state %d has type %v", ErrInvalidState, i, t)
		}
		if reflect.ValueOf(s).IsNil() {
			return nil, fmt.Errorf("%w: state %d (%v) is nil", ErrInvalidState, i, t)
		}
		types[i] = t
	}

	if i, dup := typelist.FirstDuplicate(types); dup {
		first := typelist.IndexOf(types[i], types)
		return nil, fmt.Errorf("%w: %v at %d and %d", ErrDuplicateState, types[i], first, i)
	}
	return types, nil
}

// CurrentStateID returns the ordinal of the active state in declaration order.
func (m *Machine[H]) CurrentStateID() uint {
	return m.current
}

// Len returns the number of states.
func (m *Machine[H]) Len() int {
	return len(m.states)
}

// Host returns the host the machine was initialized with.
func (m *Machine[H]) Host() H {
	return m.host
}

// ID returns the machine identifier.
func (m *Machine[H]) ID() string {
	return m.id
}

// Strategy returns the dispatch strategy in use.
func (m *Machine[H]) Strategy() Strategy {
	return m.strategy
}

// StateName returns a human readable name for the state with the given ordinal.
// States implementing fmt.Stringer name themselves; otherwise the struct type
// name is used. Out of range ordinals yield an empty string.
func (m *Machine[H]) StateName(id uint) string {
	if id >= uint(len(m.states)) {
		return ""
	}
	if s, ok := m.states[id].(fmt.Stringer); ok {
		return s.String()
	}
	return m.types[id].Elem().Name()
}

func (m *Machine[H]) mustInit() {
	if m.states == nil {
		panic(ErrNotInitialized)
	}
}

func (m *Machine[H]) debug() bool {
	return m.logger != nil && m.logger.Enabled(context.Background(), slog.LevelDebug)
}
