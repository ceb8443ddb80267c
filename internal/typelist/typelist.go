// Package typelist provides predicates over ordered lists of types.
//
// The machine builds its state list once at construction; everything here runs
// on that list and is never called on the dispatch path.
package typelist

import "reflect"

// Of returns the static type of T. Interface types are returned as themselves,
// not as the dynamic type of some value.
func Of[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Contains reports whether elem is identical to some entry of list.
func Contains(elem reflect.Type, list []reflect.Type) bool {
	return IndexOf(elem, list) >= 0
}

// Count returns the number of entries of list identical to elem.
func Count(elem reflect.Type, list []reflect.Type) int {
	n := 0
	for _, t := range list {
		if t == elem {
			n++
		}
	}
	return n
}

// AllDistinct reports whether every entry of list occurs exactly once.
func AllDistinct(list []reflect.Type) bool {
	_, dup := FirstDuplicate(list)
	return !dup
}

// FirstDuplicate returns the position of the first entry that already occurred
// earlier in list.
func FirstDuplicate(list []reflect.Type) (int, bool) {
	for i, t := range list {
		if Count(t, list[:i]) > 0 {
			return i, true
		}
	}
	return -1, false
}

// IndexOf returns the ordinal of elem in list, or -1 when absent.
func IndexOf(elem reflect.Type, list []reflect.Type) int {
	for i, t := range list {
		if t == elem {
			return i
		}
	}
	return -1
}

// Positions maps every entry of a distinct list to its ordinal.
func Positions(list []reflect.Type) map[reflect.Type]int {
	pos := make(map[reflect.Type]int, len(list))
	for i, t := range list {
		pos[t] = i
	}
	return pos
}
