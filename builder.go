package tinyfsm

import (
	"fmt"
	"reflect"
)

// Builder provides a fluent API for assembling a machine one state at a time.
type Builder[H any] struct {
	host    H
	states  States
	opts    []Option
	initial any
}

// NewBuilder creates a builder for a machine owned by host.
func NewBuilder[H any](host H) *Builder[H] {
	return &Builder[H]{host: host}
}

// State appends a state; its ordinal is the number of states added before it.
func (b *Builder[H]) State(s any) *Builder[H] {
	b.states = append(b.states, s)
	return b
}

// States appends several states in order.
func (b *Builder[H]) States(ss ...any) *Builder[H] {
	b.states = append(b.states, ss...)
	return b
}

// Initial selects the state entered at the end of Build. States are identified
// by type: s names the type, and the registered instance of that type is entered.
func (b *Builder[H]) Initial(s any) *Builder[H] {
	b.initial = s
	return b
}

// With adds machine options.
func (b *Builder[H]) With(opts ...Option) *Builder[H] {
	b.opts = append(b.opts, opts...)
	return b
}

// Build validates the state set and constructs the machine. If an initial
// state was selected it is entered, running its enter hook.
func (b *Builder[H]) Build() (*Machine[H], error) {
	m, err := New(b.host, b.states, b.opts...)
	if err != nil {
		return nil, err
	}
	if b.initial == nil {
		return m, nil
	}

	i, ok := m.index[reflect.TypeOf(b.initial)]
	if !ok {
		return nil, fmt.Errorf("%w: initial state %T is not part of the state set", ErrUnknownState, b.initial)
	}
	m.enter(uint(i))
	return m, nil
}
