// typed_field.go — type-safe reads of context values.
//
// Overview
//   ValueAs reads one layer's context and returns the value as T. Boxed
//   values (store.AnyMap, store.AnySingleton) are unboxed first, so the same
//   call works for every store.
//
//   TypedField names a key once and reads it anywhere in a chain:
//
//	var FUserID = anyerr.Field[int64]("user_id")
//
//	id, ok := FUserID.Get(err) // outermost layer that has user_id wins
//
// Caveats
//   • The dynamic type stored MUST match T exactly; no conversions are made.
//     A store.StringMap holds debug strings, so T is string there.
package anyerr

import (
	"fmt"

	"github.com/xgx-io/anyerr/kind"
	"github.com/xgx-io/anyerr/store"
)

// ValueAs returns the value stored under key in e's own layer as T.
func ValueAs[T any, C store.Context[C], K kind.Kind[K]](e *Error[C, K], key any) (T, bool) {
	var zero T
	if e == nil {
		return zero, false
	}
	entry, ok := e.Lookup(key)
	if !ok {
		return zero, false
	}
	return store.As[T](entry)
}

// MustValueAs is ValueAs that panics when the key is missing or holds a
// different type. Intended for tests and for keys whose presence is a
// program invariant.
func MustValueAs[T any, C store.Context[C], K kind.Kind[K]](e *Error[C, K], key any) T {
	v, ok := ValueAs[T](e, key)
	if !ok {
		var zero T
		panic(fmt.Errorf("anyerr.MustValueAs[%T](%v): missing or wrong type", zero, key))
	}
	return v
}

// looker is implemented by every *Error instantiation.
type looker interface {
	Lookup(key any) (store.Entry, bool)
}

// TypedField is a key bound to the Go type stored under it.
type TypedField[T any] struct {
	key any
}

// Field constructs a TypedField[T] for key.
func Field[T any](key any) TypedField[T] {
	return TypedField[T]{key: key}
}

// Key returns the underlying key.
func (f TypedField[T]) Key() any { return f.key }

// Get searches err's unwrap graph, outermost first, for a layer holding the
// key and returns its value as T. A layer holding the key with another type
// ends the search with false.
func (f TypedField[T]) Get(err error) (T, bool) {
	var (
		out   T
		found bool
	)
	Walk(err, func(e error) bool {
		l, ok := e.(looker)
		if !ok {
			return true
		}
		entry, ok := l.Lookup(f.key)
		if !ok {
			return true
		}
		out, found = store.As[T](entry)
		return false
	})
	return out, found
}

// MustGet is Get that panics when the field is missing or mistyped.
func (f TypedField[T]) MustGet(err error) T {
	v, ok := f.Get(err)
	if !ok {
		var zero T
		panic(fmt.Errorf("anyerr.TypedField[%T](%v): missing or wrong type", zero, f.key))
	}
	return v
}
