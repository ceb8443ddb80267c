package tinyfsm

import (
	"fmt"
	"reflect"

	"github.com/comalice/tinyfsm/internal/typelist"
)

// Router is implemented by a state that handles more than one event type.
// A Go type has a single Handle method, so such a state names one method per
// event and declares them with On:
//
//	func (c *Closed) Routes(r *tinyfsm.Routes[*Door]) {
//		tinyfsm.On(r, (*Closed).OnOpen)
//		tinyfsm.On(r, (*Closed).OnLock)
//	}
//
// Routes is called once, by Init. Process then delivers those events exactly
// as it delivers events to Handle.
type Router[H any] interface {
	Routes(r *Routes[H])
}

// Routes collects the event handlers declared by one state.
type Routes[H any] struct {
	state any
	fns   map[reflect.Type]any
	err   error
}

// On declares fn as the handler of the routing state for events of type E.
// fn is usually a method expression of the state type.
func On[S, H, E any](r *Routes[H], fn func(S, H, E)) {
	if r.err != nil {
		return
	}
	s, ok := r.state.(S)
	if !ok {
		r.err = fmt.Errorf("%w: %T declared by %T", ErrRouteMismatch, fn, r.state)
		return
	}

	key := typelist.Of[E]()
	if _, dup := r.fns[key]; dup || HasHandler[E, H](r.state) {
		r.err = fmt.Errorf("%w: %v in %T", ErrDuplicateHandler, key, r.state)
		return
	}
	if r.fns == nil {
		r.fns = make(map[reflect.Type]any)
	}
	r.fns[key] = func(h H, ev E) { fn(s, h, ev) }
}

// collectRoutes asks every Router in states for its handlers.
func collectRoutes[H any](states States) ([]map[reflect.Type]any, error) {
	routes := make([]map[reflect.Type]any, len(states))
	for i, s := range states {
		rt, ok := s.(Router[H])
		if !ok {
			continue
		}
		r := &Routes[H]{state: s}
		rt.Routes(r)
		if r.err != nil {
			return nil, fmt.Errorf("state %d: %w", i, r.err)
		}
		routes[i] = r.fns
	}
	return routes, nil
}

// route returns the declared handler of state id for E, or nil.
func route[H, E any](m *Machine[H], id uint) func(H, E) {
	f, ok := m.routes[id][typelist.Of[E]()]
	if !ok {
		return nil
	}
	return f.(func(H, E))
}
