// result.go — success-or-error values that speak the overlay protocol.
//
// Result lets propagation code write one fluent chain whether or not the
// previous step failed: Overlay, Context and Build only touch the error
// branch and carry a success value through unchanged.
//
//	func loadUser(id string) anyerr.Result[User, Ctx, Kind] {
//		u, err := db.Find(id)
//		return anyerr.Attempt[Ctx, Kind](u, err).
//			Overlay(anyerr.Msg("could not load user")).
//			Context("id", id).
//			Build()
//	}
package anyerr

import (
	"github.com/xgx-io/anyerr/converter"
	"github.com/xgx-io/anyerr/kind"
	"github.com/xgx-io/anyerr/store"
)

// Result holds either a value of T or an *Error.
type Result[T any, C store.Context[C], K kind.Kind[K]] struct {
	value T
	err   *Error[C, K]
}

// Ok returns a successful Result.
func Ok[C store.Context[C], K kind.Kind[K], T any](v T) Result[T, C, K] {
	return Result[T, C, K]{value: v}
}

// Fail returns a failed Result. A nil err yields a successful Result holding
// the zero T.
func Fail[T any, C store.Context[C], K kind.Kind[K]](err *Error[C, K]) Result[T, C, K] {
	return Result[T, C, K]{err: err}
}

// Attempt adapts a (value, error) pair. Foreign errors are wrapped opaquely;
// *Error values are kept as they are.
func Attempt[C store.Context[C], K kind.Kind[K], T any](v T, err error) Result[T, C, K] {
	if err == nil {
		return Result[T, C, K]{value: v}
	}
	if e, ok := err.(*Error[C, K]); ok {
		return Result[T, C, K]{err: e}
	}
	return Result[T, C, K]{err: &Error[C, K]{data: newOpaque(err, captureBacktrace(1))}}
}

// IsOk reports whether r holds a value.
func (r Result[T, C, K]) IsOk() bool { return r.err == nil }

// Value returns the held value (the zero T on failure).
func (r Result[T, C, K]) Value() T { return r.value }

// Err returns the held error, or nil on success.
func (r Result[T, C, K]) Err() *Error[C, K] { return r.err }

// Get returns the value and the typed error.
func (r Result[T, C, K]) Get() (T, *Error[C, K]) { return r.value, r.err }

// Unpack returns the value and an error that is untyped nil on success, for
// functions returning the plain error interface.
func (r Result[T, C, K]) Unpack() (T, error) {
	if r.err == nil {
		return r.value, nil
	}
	return r.value, r.err
}

// IntermediateResult is an overlay in progress on a Result.
type IntermediateResult[T any, C store.Context[C], K kind.Kind[K]] struct {
	value   T
	failed  bool
	builder Builder[C, K]
}

// Overlay starts a new layer on the error branch; success passes through.
func (r Result[T, C, K]) Overlay(o Overlayer) IntermediateResult[T, C, K] {
	if r.err == nil {
		return IntermediateResult[T, C, K]{value: r.value}
	}
	return IntermediateResult[T, C, K]{failed: true, builder: overlayBuilder(r.err, o)}
}

// Context adds one entry on the error branch.
func (i IntermediateResult[T, C, K]) Context(key, value any) IntermediateResult[T, C, K] {
	if i.failed {
		i.builder = i.builder.Context(key, value)
	}
	return i
}

// ContextWith adds one entry converted by conv on the error branch.
func (i IntermediateResult[T, C, K]) ContextWith(conv converter.Converter, key, value any) IntermediateResult[T, C, K] {
	if i.failed {
		i.builder = i.builder.ContextWith(conv, key, value)
	}
	return i
}

// Fields adds alternating key/value pairs on the error branch.
func (i IntermediateResult[T, C, K]) Fields(kv ...any) IntermediateResult[T, C, K] {
	if i.failed {
		i.builder = i.builder.Fields(kv...)
	}
	return i
}

// Build finishes the overlay.
func (i IntermediateResult[T, C, K]) Build() Result[T, C, K] {
	if !i.failed {
		return Result[T, C, K]{value: i.value}
	}
	return Result[T, C, K]{err: i.builder.Build()}
}
