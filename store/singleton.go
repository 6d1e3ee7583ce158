package store

import (
	"fmt"

	"github.com/xgx-io/anyerr/converter"
)

// SelfKey is the only key a Singleton knows. Whatever key callers pass is
// accepted and replaced by SelfKey.
type SelfKey struct{}

func (SelfKey) String() string { return "self" }

// SingletonEntry is the entry of Singleton.
type SingletonEntry[V any] struct {
	value V
}

func (e SingletonEntry[V]) Key() any       { return SelfKey{} }
func (e SingletonEntry[V]) Value() any     { return e.value }
func (e SingletonEntry[V]) String() string { return fmt.Sprint(e.value) }

// Singleton holds at most one value. Inserting again replaces it.
type Singleton[V any, Conv converter.Converter] struct {
	entry *SingletonEntry[V]
}

// StringSingleton holds one string. Values are stored as they are, so
// inserting anything other than a string is dropped.
type StringSingleton = Singleton[string, converter.Into]

// AnySingleton holds one boxed value of any type.
type AnySingleton = Singleton[converter.AnyValue, converter.Box]

// FixedSingleton holds one value of a fixed type T.
type FixedSingleton[T any] = Singleton[T, converter.Into]

// SingletonOf builds a Singleton already holding v.
func SingletonOf[V any, Conv converter.Converter](v V) Singleton[V, Conv] {
	return Singleton[V, Conv]{entry: &SingletonEntry[V]{value: v}}
}

// Insert returns a new store holding only value. The key is ignored.
func (s Singleton[V, Conv]) Insert(_ any, value V) Singleton[V, Conv] {
	return SingletonOf[V, Conv](value)
}

// InsertWith converts value with conv first. The receiver is returned
// unchanged when the converted value is not a V.
func (s Singleton[V, Conv]) InsertWith(conv converter.Converter, key, value any) Singleton[V, Conv] {
	if conv == nil {
		conv = s.Converter()
	}
	v, ok := conv.Convert(value).(V)
	if !ok {
		return s
	}
	return s.Insert(key, v)
}

func (s Singleton[V, Conv]) InsertAny(conv converter.Converter, key, value any) Singleton[V, Conv] {
	return s.InsertWith(conv, key, value)
}

// Value returns the held value, if any.
func (s Singleton[V, Conv]) Value() (V, bool) {
	if s.entry == nil {
		var zero V
		return zero, false
	}
	return s.entry.value, true
}

// Get ignores key and returns the held value.
func (s Singleton[V, Conv]) Get(_ any) (V, bool) { return s.Value() }

func (s Singleton[V, Conv]) Lookup(_ any) (Entry, bool) {
	if s.entry == nil {
		return nil, false
	}
	return *s.entry, true
}

func (s Singleton[V, Conv]) Iter() *Iter {
	if s.entry == nil {
		return EmptyIter()
	}
	return newIter(&sliceCursor[SingletonEntry[V]]{items: []SingletonEntry[V]{*s.entry}})
}

func (s Singleton[V, Conv]) Len() int {
	if s.entry == nil {
		return 0
	}
	return 1
}

func (s Singleton[V, Conv]) Converter() converter.Converter { return defaultConverter[Conv]() }

var (
	_ Context[StringSingleton] = StringSingleton{}
	_ Context[AnySingleton]    = AnySingleton{}
)
