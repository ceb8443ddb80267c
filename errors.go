package tinyfsm

import "errors"

var (
	// ErrNoStates is returned when a machine is built without states.
	ErrNoStates = errors.New("no states provided")
	// ErrInvalidState is returned for a state that is not a non-nil pointer to a struct.
	ErrInvalidState = errors.New("state must be a non-nil pointer to a struct")
	// ErrDuplicateState is returned when two states share a type.
	ErrDuplicateState = errors.New("duplicate state type")
	// ErrUnknownState reports a state type outside the machine's state set.
	ErrUnknownState = errors.New("state type not registered")
	// ErrStateOutOfRange is returned by EnterID for an ordinal past the last state.
	ErrStateOutOfRange = errors.New("state id out of range")
	// ErrNotInitialized reports use of a machine before Init.
	ErrNotInitialized = errors.New("machine not initialized")
	// ErrDuplicateHandler is returned when a state declares two handlers for one event type.
	ErrDuplicateHandler = errors.New("event type handled twice by one state")
	// ErrRouteMismatch is returned when a declared handler's receiver is not the declaring state.
	ErrRouteMismatch = errors.New("handler receiver does not match state")
)
