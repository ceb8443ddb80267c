package tinyfsm

import (
	"github.com/comalice/tinyfsm/internal/typelist"
)

// DefaultTableThreshold is the state count above which StrategyAuto uses
// table dispatch.
const DefaultTableThreshold = 256

// Strategy selects how the active state's handler is found.
// Every strategy invokes exactly the same handlers.
type Strategy int

const (
	// StrategyAuto picks StrategyProbe for small state sets and StrategyTable
	// for large ones.
	StrategyAuto Strategy = iota
	// StrategyProbe asserts the active state against the handler on every event.
	StrategyProbe
	// StrategyTable resolves, once per event type, which states handle it and
	// then dispatches through a slice indexed by the current state.
	StrategyTable
)

func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "auto"
	case StrategyProbe:
		return "probe"
	case StrategyTable:
		return "table"
	default:
		return "unknown"
	}
}

func (s Strategy) resolve(n, threshold int) Strategy {
	if s != StrategyAuto {
		return s
	}
	if n <= threshold {
		return StrategyProbe
	}
	return StrategyTable
}

// Process hands ev to the active state if it declares a handler for E, either
// as Handler[H, E] or through Routes. Otherwise it does nothing.
func Process[H, E any](m *Machine[H], ev E) {
	m.mustInit()
	if m.strategy == StrategyTable {
		if f := handlersFor[H, E](m)[m.current]; f != nil {
			f(m.host, ev)
		}
		return
	}
	if h, ok := m.states[m.current].(Handler[H, E]); ok {
		h.Handle(m.host, ev)
		return
	}
	if f := route[H, E](m, m.current); f != nil {
		f(m.host, ev)
	}
}

// Dispatch hands ev to the active state through handle if the state implements
// the capability C. Otherwise it does nothing. It is a shortcut for callers
// that group methods in their own interface:
//
//	type locker interface{ OnLock(*Door, LockEvent) }
//
//	tinyfsm.Dispatch(&d.Machine, LockEvent{Key: 7}, locker.OnLock)
//
// Only states implementing C are reached; Process reaches every declared handler.
func Dispatch[C, H, E any](m *Machine[H], ev E, handle func(C, H, E)) {
	m.mustInit()
	if m.strategy == StrategyTable {
		t := tableFor[C](m)
		if t.ok[m.current] {
			handle(t.impl[m.current], m.host, ev)
		}
		return
	}
	if c, ok := m.states[m.current].(C); ok {
		handle(c, m.host, ev)
	}
}

// handlersFor returns, per state ordinal, the handler for E or nil.
// Tables are cached per event type until the next Init.
func handlersFor[H, E any](m *Machine[H]) []func(H, E) {
	key := typelist.Of[func(H, E)]()
	if t, ok := m.tables[key]; ok {
		return t.([]func(H, E))
	}
	fns := make([]func(H, E), len(m.states))
	for i, s := range m.states {
		if h, ok := s.(Handler[H, E]); ok {
			fns[i] = h.Handle
		} else {
			fns[i] = route[H, E](m, uint(i))
		}
	}
	m.tables[key] = fns
	return fns
}

// capTable records, per state ordinal, whether the state implements C.
type capTable[C any] struct {
	impl []C
	ok   []bool
}

func buildTable[C any](states States) *capTable[C] {
	t := &capTable[C]{
		impl: make([]C, len(states)),
		ok:   make([]bool, len(states)),
	}
	for i, s := range states {
		t.impl[i], t.ok[i] = s.(C)
	}
	return t
}

func tableFor[C, H any](m *Machine[H]) *capTable[C] {
	key := typelist.Of[C]()
	if t, ok := m.tables[key]; ok {
		return t.(*capTable[C])
	}
	t := buildTable[C](m.states)
	m.tables[key] = t
	return t
}

// Dispatcher is a precompiled dispatch table for one event type, independent
// of the machine's strategy. It follows the machine across Init: the table is
// rebuilt on first use after the state set changes.
type Dispatcher[H, E any] struct {
	m     *Machine[H]
	gen   uint64
	fns   []func(H, E)
	build func() []func(H, E)
}

// Compile builds the dispatch table of event type E, covering Handle methods
// and declared routes alike.
func Compile[E, H any](m *Machine[H]) *Dispatcher[H, E] {
	return compile(m, func() []func(H, E) { return handlersFor[H, E](m) })
}

// CompileFunc builds the dispatch table for states implementing capability C,
// see Dispatch.
func CompileFunc[C, H, E any](m *Machine[H], handle func(C, H, E)) *Dispatcher[H, E] {
	return compile(m, func() []func(H, E) {
		t := tableFor[C](m)
		fns := make([]func(H, E), len(t.ok))
		for i, ok := range t.ok {
			if !ok {
				continue
			}
			c := t.impl[i]
			fns[i] = func(h H, ev E) { handle(c, h, ev) }
		}
		return fns
	})
}

func compile[H, E any](m *Machine[H], build func() []func(H, E)) *Dispatcher[H, E] {
	m.mustInit()
	return &Dispatcher[H, E]{m: m, gen: m.gen, fns: build(), build: build}
}

func (d *Dispatcher[H, E]) table() []func(H, E) {
	if d.gen != d.m.gen {
		d.fns, d.gen = d.build(), d.m.gen
	}
	return d.fns
}

// Process hands ev to the machine's active state if the table has a handler for it.
func (d *Dispatcher[H, E]) Process(ev E) {
	if f := d.table()[d.m.current]; f != nil {
		f(d.m.host, ev)
	}
}

// Handles reports whether the state with ordinal id has a handler in the table.
func (d *Dispatcher[H, E]) Handles(id uint) bool {
	fns := d.table()
	return id < uint(len(fns)) && fns[id] != nil
}

// Len returns the number of states with a handler in the table.
func (d *Dispatcher[H, E]) Len() int {
	n := 0
	for _, f := range d.table() {
		if f != nil {
			n++
		}
	}
	return n
}
