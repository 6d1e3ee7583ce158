// downcast.go — runtime type identity and casts across representations.
//
// Rules:
//   - Leaf and Layered values are only ever the *Error type itself, so casts
//     succeed for E == *Error[C, K] and nothing else.
//   - Opaque values compare E against the type tag of the foreign error.
//     Matching is exact: interface types and convertible types never match.
//   - A failed cast is not an error condition; the original value is handed
//     back untouched.
package anyerr

import (
	"reflect"

	"github.com/xgx-io/anyerr/kind"
	"github.com/xgx-io/anyerr/store"
)

// Is reports whether e is of type E.
func Is[E any, C store.Context[C], K kind.Kind[K]](e *Error[C, K]) bool {
	switch d := e.data.(type) {
	case *leaf[C, K], *layered[C, K]:
		return isSelf[E, C, K]()
	case *opaque:
		return d.typ == reflect.TypeFor[E]()
	default:
		panic(unknownRepresentation(d))
	}
}

// Downcast returns e as E. On a mismatch it returns the zero E and e itself.
func Downcast[E any, C store.Context[C], K kind.Kind[K]](e *Error[C, K]) (E, *Error[C, K]) {
	if v, ok := DowncastRef[E](e); ok {
		return v, nil
	}
	var zero E
	return zero, e
}

// DowncastRef returns e as E and whether the cast succeeded.
func DowncastRef[E any, C store.Context[C], K kind.Kind[K]](e *Error[C, K]) (E, bool) {
	var zero E
	switch d := e.data.(type) {
	case *leaf[C, K], *layered[C, K]:
		if !isSelf[E, C, K]() {
			return zero, false
		}
		return any(e).(E), true
	case *opaque:
		if d.typ != reflect.TypeFor[E]() {
			return zero, false
		}
		return d.slot.Interface().(E), true
	default:
		panic(unknownRepresentation(d))
	}
}

// DowncastMut returns a pointer to e as E. For Opaque values the pointer
// addresses the stored foreign error, so writes through it are visible to
// every holder of e. Callers sharing e across goroutines must synchronize
// such writes themselves.
func DowncastMut[E any, C store.Context[C], K kind.Kind[K]](e *Error[C, K]) (*E, bool) {
	switch d := e.data.(type) {
	case *leaf[C, K], *layered[C, K]:
		if !isSelf[E, C, K]() {
			return nil, false
		}
		self := any(e).(E)
		return &self, true
	case *opaque:
		if d.typ != reflect.TypeFor[E]() {
			return nil, false
		}
		return d.slot.Addr().Interface().(*E), true
	default:
		panic(unknownRepresentation(d))
	}
}

func isSelf[E any, C store.Context[C], K kind.Kind[K]]() bool {
	return reflect.TypeFor[E]() == reflect.TypeFor[*Error[C, K]]()
}
