// error.go — the Error type, its three representations and accessors.
//
// Every accessor switches over the closed set of representations; reaching
// the default branch means the invariant was broken inside this package.
package anyerr

import (
	"fmt"

	"github.com/xgx-io/anyerr/kind"
	"github.com/xgx-io/anyerr/store"
)

// ContextDepth selects how far Context looks down the causal chain.
type ContextDepth int

const (
	// All yields this layer's entries followed by every source's entries,
	// outermost layer first.
	All ContextDepth = iota
	// Shallowest yields this layer's entries only.
	Shallowest
)

func (d ContextDepth) String() string {
	switch d {
	case All:
		return "All"
	case Shallowest:
		return "Shallowest"
	default:
		return fmt.Sprintf("ContextDepth(%d)", int(d))
	}
}

// Error is the error value. Use it through *Error; the zero value is not
// usable and panics on access.
type Error[C store.Context[C], K kind.Kind[K]] struct {
	data representation
}

// representation is the closed set of variants: *leaf, *layered, *opaque.
type representation interface {
	representation()
}

type leaf[C store.Context[C], K kind.Kind[K]] struct {
	kind      K
	message   string
	backtrace *Backtrace
	context   C
}

type layered[C store.Context[C], K kind.Kind[K]] struct {
	kind    K
	message string
	context C
	source  *Error[C, K] // never nil
}

func (*leaf[C, K]) representation()    {}
func (*layered[C, K]) representation() {}
func (*opaque) representation()        {}

// unknownRepresentation reports a broken invariant. Reaching it is a bug in
// this package, not a runtime condition.
func unknownRepresentation(d representation) string {
	return fmt.Sprintf("anyerr: unknown error representation %T", d)
}

// Kind returns the failure kind. Opaque values report K's raw kind.
func (e *Error[C, K]) Kind() K {
	switch d := e.data.(type) {
	case *leaf[C, K]:
		return d.kind
	case *layered[C, K]:
		return d.kind
	case *opaque:
		return kind.RawOf[K]()
	default:
		panic(unknownRepresentation(d))
	}
}

// Message returns this layer's message. Opaque values return the foreign
// error's text.
func (e *Error[C, K]) Message() string {
	switch d := e.data.(type) {
	case *leaf[C, K]:
		return d.message
	case *layered[C, K]:
		return d.message
	case *opaque:
		return d.err().Error()
	default:
		panic(unknownRepresentation(d))
	}
}

// Backtrace returns the backtrace captured at the root of the chain.
func (e *Error[C, K]) Backtrace() *Backtrace {
	switch d := e.data.(type) {
	case *leaf[C, K]:
		return d.backtrace
	case *layered[C, K]:
		return d.source.Backtrace()
	case *opaque:
		return d.backtrace
	default:
		panic(unknownRepresentation(d))
	}
}

// Context returns a lazy iterator over context entries. With All, entries
// of this layer come first, then those of each source in turn.
func (e *Error[C, K]) Context(depth ContextDepth) *store.Iter {
	switch d := e.data.(type) {
	case *leaf[C, K]:
		return d.context.Iter()
	case *layered[C, K]:
		if depth == Shallowest {
			return d.context.Iter()
		}
		return d.context.Iter().Compose(d.source.Context(All))
	case *opaque:
		return store.EmptyIter()
	default:
		panic(unknownRepresentation(d))
	}
}

// Lookup returns the first entry of this layer's context with the given key.
func (e *Error[C, K]) Lookup(key any) (store.Entry, bool) {
	switch d := e.data.(type) {
	case *leaf[C, K]:
		return d.context.Lookup(key)
	case *layered[C, K]:
		return d.context.Lookup(key)
	case *opaque:
		return nil, false
	default:
		panic(unknownRepresentation(d))
	}
}

// Get returns the value stored under key in this layer's context.
func (e *Error[C, K]) Get(key any) (any, bool) {
	entry, ok := e.Lookup(key)
	if !ok {
		return nil, false
	}
	return entry.Value(), true
}

// Source returns the *Error this layer was built on, or nil for Leaf and
// Opaque values.
func (e *Error[C, K]) Source() *Error[C, K] {
	switch d := e.data.(type) {
	case *leaf[C, K]:
		return nil
	case *layered[C, K]:
		return d.source
	case *opaque:
		return nil
	default:
		panic(unknownRepresentation(d))
	}
}

// Error implements error and returns this layer's message only. Use a
// report.Report to render the whole chain.
func (e *Error[C, K]) Error() string { return e.Message() }

// Unwrap exposes the causal parent to errors.Is / errors.As. Opaque values
// unwrap to the foreign error they hold.
func (e *Error[C, K]) Unwrap() error {
	switch d := e.data.(type) {
	case *leaf[C, K]:
		return nil
	case *layered[C, K]:
		return d.source
	case *opaque:
		return d.err()
	default:
		panic(unknownRepresentation(d))
	}
}

// IsOpaque reports whether e wraps a foreign error.
func (e *Error[C, K]) IsOpaque() bool {
	_, ok := e.data.(*opaque)
	return ok
}

// IsLayered reports whether e was built on another *Error.
func (e *Error[C, K]) IsLayered() bool {
	_, ok := e.data.(*layered[C, K])
	return ok
}
