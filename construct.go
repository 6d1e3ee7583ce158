// construct.go — constructors and the builder for anyerr values.
//
// Scope:
//   - Minimal / Quick: one-call Leaf construction.
//   - Builder: multi-step construction of a Leaf or Layered value.
//   - Factory: the same constructors as methods on a zero-size value, so an
//     application can bind C and K once.
//
// Notes:
//   - Builders are values; every step returns a NEW builder and the context
//     store is copy-on-write, so a partially built builder can be reused.
//   - Backtraces are captured for Leaf values only, at the call that
//     finishes construction.
package anyerr

import (
	"github.com/xgx-io/anyerr/converter"
	"github.com/xgx-io/anyerr/kind"
	"github.com/xgx-io/anyerr/store"
)

// Minimal creates a Leaf with the default kind and an empty context.
func Minimal[C store.Context[C], K kind.Kind[K]](message string) *Error[C, K] {
	return newLeaf(kind.Default[K](), message, *new(C), 1)
}

// Quick creates a Leaf with an explicit kind and an empty context.
func Quick[C store.Context[C], K kind.Kind[K]](message string, k K) *Error[C, K] {
	return newLeaf(k, message, *new(C), 1)
}

// newLeaf captures a backtrace starting 'skip' frames above its caller.
func newLeaf[C store.Context[C], K kind.Kind[K]](k K, message string, ctx C, skip int) *Error[C, K] {
	return &Error[C, K]{data: &leaf[C, K]{
		kind:      k,
		message:   message,
		backtrace: captureBacktrace(skip + 1),
		context:   ctx,
	}}
}

// Builder assembles an *Error step by step. The zero value is ready to use;
// Build yields a Leaf when no source was set and a Layered value otherwise.
type Builder[C store.Context[C], K kind.Kind[K]] struct {
	kind    K
	message string
	context C
	source  *Error[C, K]
}

// NewBuilder returns an empty builder.
func NewBuilder[C store.Context[C], K kind.Kind[K]]() Builder[C, K] {
	return Builder[C, K]{}
}

// Kind sets the kind. The default kind is used when never called.
func (b Builder[C, K]) Kind(k K) Builder[C, K] {
	b.kind = k
	return b
}

// Message sets the message.
func (b Builder[C, K]) Message(message string) Builder[C, K] {
	b.message = message
	return b
}

// Context appends one entry converted by the store's default converter.
func (b Builder[C, K]) Context(key, value any) Builder[C, K] {
	b.context = b.context.InsertAny(nil, key, value)
	return b
}

// ContextWith appends one entry converted by conv.
func (b Builder[C, K]) ContextWith(conv converter.Converter, key, value any) Builder[C, K] {
	b.context = b.context.InsertAny(conv, key, value)
	return b
}

// Fields appends alternating key/value pairs. See store.Pairs for the
// parsing rules.
func (b Builder[C, K]) Fields(kv ...any) Builder[C, K] {
	b.context = store.InsertPairs(b.context, nil, kv...)
	return b
}

// Source sets the error this layer is built on. A nil source leaves the
// builder producing a Leaf.
func (b Builder[C, K]) Source(src *Error[C, K]) Builder[C, K] {
	b.source = src
	return b
}

// Build finishes construction.
func (b Builder[C, K]) Build() *Error[C, K] {
	return b.build(1)
}

func (b Builder[C, K]) build(skip int) *Error[C, K] {
	if b.source == nil {
		return newLeaf(b.kind, b.message, b.context, skip+1)
	}
	return &Error[C, K]{data: &layered[C, K]{
		kind:    b.kind,
		message: b.message,
		context: b.context,
		source:  b.source,
	}}
}

// Factory binds C and K once so call sites do not repeat them:
//
//	var Errs anyerr.Factory[store.StringMap, kind.Standard]
//	err := Errs.Quick("no such user", kind.EntityAbsence)
type Factory[C store.Context[C], K kind.Kind[K]] struct{}

// Minimal is the package-level Minimal.
func (Factory[C, K]) Minimal(message string) *Error[C, K] {
	return newLeaf(kind.Default[K](), message, *new(C), 1)
}

// Quick is the package-level Quick.
func (Factory[C, K]) Quick(message string, k K) *Error[C, K] {
	return newLeaf(k, message, *new(C), 1)
}

// Wrap is the package-level Wrap.
func (Factory[C, K]) Wrap(err error) *Error[C, K] {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error[C, K]); ok {
		return e
	}
	return &Error[C, K]{data: newOpaque(err, captureBacktrace(1))}
}

// Builder is the package-level NewBuilder.
func (Factory[C, K]) Builder() Builder[C, K] { return NewBuilder[C, K]() }
