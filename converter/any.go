package converter

import "reflect"

// AnyValue is a type-tagged box around an arbitrary value. The tag is the
// dynamic type observed when boxing; Is and As compare against it before
// handing the payload back.
type AnyValue struct {
	typ reflect.Type
	v   any
}

// NewAnyValue boxes v. A nil v yields a box with a nil type tag.
func NewAnyValue(v any) AnyValue {
	return AnyValue{typ: reflect.TypeOf(v), v: v}
}

// Type returns the type tag (nil for a boxed nil).
func (a AnyValue) Type() reflect.Type { return a.typ }

// Interface returns the boxed payload.
func (a AnyValue) Interface() any { return a.v }

// String renders the payload in its debug form.
func (a AnyValue) String() string { return DebugString(a.v) }

// Is reports whether the boxed payload has exactly type T.
func Is[T any](a AnyValue) bool {
	return a.typ != nil && a.typ == reflect.TypeFor[T]()
}

// As returns the payload as T when the type tag matches exactly.
func As[T any](a AnyValue) (T, bool) {
	var zero T
	if !Is[T](a) {
		return zero, false
	}
	v, ok := a.v.(T)
	if !ok {
		return zero, false
	}
	return v, true
}
