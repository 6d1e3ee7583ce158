// Package store provides the pluggable context stores an error carries per
// layer.
//
// Design:
//   - Every store is an immutable value: inserting returns a NEW store and
//     never touches the receiver (copy-on-write), so a store shared between
//     goroutines needs no locking.
//   - Stores produce a lazy Iter over their entries in insertion order; Iters
//     compose without materializing either side.
//   - Which store an application uses is a compile-time choice made once in a
//     type alias, e.g. anyerr.Error[store.StringMap, kind.Standard].
//
// Variants:
//   - Map:       ordered list, duplicates kept, lookups return the first match.
//   - Singleton: at most one entry; inserting again replaces it.
//   - Unit:      always empty.
//   - AnyMap:    a Map whose values are type-erased converter.AnyValue boxes.
package store

import "github.com/xgx-io/anyerr/converter"

// Entry is a single key/value pair held by a store.
type Entry interface {
	Key() any
	Value() any
	// String renders the entry for reports, e.g. `key = "value"`.
	String() string
}

// Context is the capability every store implements. C is the concrete store
// type itself, so InsertAny can hand back a value of the same type.
type Context[C any] interface {
	// InsertAny converts value with conv (the store default when conv is nil)
	// and returns a new store holding the extra entry. Pairs whose key or
	// converted value do not fit the store's types are dropped.
	InsertAny(conv converter.Converter, key, value any) C
	// Lookup returns the first entry whose key equals key.
	Lookup(key any) (Entry, bool)
	// Iter returns a fresh iterator over the entries in insertion order.
	Iter() *Iter
	Len() int
	// Converter is the converter used when the caller does not pick one.
	Converter() converter.Converter
}

// As returns the value of e as T. Boxed values are unboxed first, so the
// same call works for string stores and AnyMap alike.
func As[T any](e Entry) (T, bool) {
	var zero T
	if e == nil {
		return zero, false
	}
	v := e.Value()
	if av, ok := v.(converter.AnyValue); ok {
		return converter.As[T](av)
	}
	tv, ok := v.(T)
	if !ok {
		return zero, false
	}
	return tv, true
}

// defaultConverter returns the zero value of Conv, falling back to Into when
// Conv is an interface type.
func defaultConverter[Conv converter.Converter]() converter.Converter {
	var c Conv
	if any(c) == nil {
		return converter.Into{}
	}
	return c
}

// cloneAppend returns a NEW slice with dst's contents followed by add.
// It always allocates a fresh backing array when add is non-empty so that
// stores derived from the same parent never alias each other.
func cloneAppend[E any](dst []E, add ...E) []E {
	if len(add) == 0 {
		return dst
	}
	out := make([]E, len(dst)+len(add))
	copy(out, dst)
	copy(out[len(dst):], add)
	return out
}
