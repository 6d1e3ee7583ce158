package store

import (
	"fmt"

	"github.com/xgx-io/anyerr/converter"
)

// MapEntry is an entry of Map.
type MapEntry[Q comparable, V any] struct {
	key   Q
	value V
}

// NewMapEntry builds an entry; mostly useful in tests and custom stores.
func NewMapEntry[Q comparable, V any](key Q, value V) MapEntry[Q, V] {
	return MapEntry[Q, V]{key: key, value: value}
}

func (e MapEntry[Q, V]) Key() any   { return e.key }
func (e MapEntry[Q, V]) Value() any { return e.value }

// Pair returns the typed key and value.
func (e MapEntry[Q, V]) Pair() (Q, V) { return e.key, e.value }

func (e MapEntry[Q, V]) String() string {
	return fmt.Sprintf("%v = %v", e.key, e.value)
}

// Map is an ordered list store. Duplicate keys are kept; Get and Lookup
// return the first match in insertion order. Conv is the converter used when
// callers insert through the Context interface without choosing one.
//
// The zero value is an empty, ready-to-use store.
type Map[Q comparable, V any, Conv converter.Converter] struct {
	entries []MapEntry[Q, V]
}

// StringMap holds string keys and debug-formatted string values.
type StringMap = Map[string, string, converter.Debug]

// AnyMap holds string keys and boxed values retrievable by type.
type AnyMap = Map[string, converter.AnyValue, converter.Box]

// StringMapOf is StringMap with a custom key type.
type StringMapOf[Q comparable] = Map[Q, string, converter.Debug]

// AnyMapOf is AnyMap with a custom key type.
type AnyMapOf[Q comparable] = Map[Q, converter.AnyValue, converter.Box]

// MapOf builds a Map from entries, in order.
func MapOf[Q comparable, V any, Conv converter.Converter](entries ...MapEntry[Q, V]) Map[Q, V, Conv] {
	return Map[Q, V, Conv]{entries: cloneAppend(nil, entries...)}
}

// Insert returns a new store with (key, value) appended.
func (m Map[Q, V, Conv]) Insert(key Q, value V) Map[Q, V, Conv] {
	return Map[Q, V, Conv]{entries: cloneAppend(m.entries, MapEntry[Q, V]{key: key, value: value})}
}

// InsertWith converts value with conv before appending. The receiver is
// returned unchanged when the converted value is not a V.
func (m Map[Q, V, Conv]) InsertWith(conv converter.Converter, key Q, value any) Map[Q, V, Conv] {
	if conv == nil {
		conv = m.Converter()
	}
	v, ok := conv.Convert(value).(V)
	if !ok {
		return m
	}
	return m.Insert(key, v)
}

func (m Map[Q, V, Conv]) InsertAny(conv converter.Converter, key, value any) Map[Q, V, Conv] {
	q, ok := key.(Q)
	if !ok {
		return m
	}
	return m.InsertWith(conv, q, value)
}

// Get returns the value of the first entry with the given key.
func (m Map[Q, V, Conv]) Get(key Q) (V, bool) {
	for _, e := range m.entries {
		if e.key == key {
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

func (m Map[Q, V, Conv]) Lookup(key any) (Entry, bool) {
	q, ok := key.(Q)
	if !ok {
		return nil, false
	}
	for _, e := range m.entries {
		if e.key == q {
			return e, true
		}
	}
	return nil, false
}

func (m Map[Q, V, Conv]) Iter() *Iter {
	if len(m.entries) == 0 {
		return EmptyIter()
	}
	return newIter(&sliceCursor[MapEntry[Q, V]]{items: m.entries})
}

func (m Map[Q, V, Conv]) Len() int { return len(m.entries) }

func (m Map[Q, V, Conv]) Converter() converter.Converter { return defaultConverter[Conv]() }

var (
	_ Context[StringMap] = StringMap{}
	_ Context[AnyMap]    = AnyMap{}
)
