package tinyfsm

// Handler is implemented by a state that reacts to events of type E.
// The host type is a parameter, so a state never has to name the concrete host
// type; it may just as well be generic over a constraint the host satisfies.
type Handler[H, E any] interface {
	Handle(host H, ev E)
}

// Enterer is implemented by a state that wants to run code when it becomes active.
type Enterer[H any] interface {
	Enter(host H)
}

// HasHandler reports whether state handles events of type E for hosts of type H.
func HasHandler[E, H any](state any) bool {
	_, ok := state.(Handler[H, E])
	return ok
}

// HasEnterHook reports whether state has an enter hook for hosts of type H.
func HasEnterHook[H any](state any) bool {
	_, ok := state.(Enterer[H])
	return ok
}

// HasCapability reports whether state implements C.
func HasCapability[C any](state any) bool {
	_, ok := state.(C)
	return ok
}
