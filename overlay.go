// overlay.go — the fluent protocol for adding a layer at a propagation site.
//
//	return err.Overlay(anyerr.WithKind("failed to load profile", kind.EntityAbsence)).
//		Context("user_id", id).
//		Build()
//
// Overlay accepts a small closed set of argument shapes (Msg, MsgKind); the
// shape picks what the new layer takes over, Context calls add entries, and
// Build produces the Layered value.
package anyerr

import (
	"fmt"
	"reflect"

	"github.com/xgx-io/anyerr/converter"
	"github.com/xgx-io/anyerr/kind"
	"github.com/xgx-io/anyerr/store"
)

// Overlayer is implemented by Msg and MsgKind only.
type Overlayer interface {
	overlayMessage() string
	overlayKind() (any, bool)
}

// Msg overlays a message; the new layer gets the default kind.
type Msg string

func (m Msg) overlayMessage() string { return string(m) }
func (Msg) overlayKind() (any, bool) { return nil, false }

// MsgKind overlays a message and a kind. Build it with WithKind.
type MsgKind[K kind.Kind[K]] struct {
	msg  string
	kind K
}

// WithKind pairs a message with a kind for Overlay.
func WithKind[K kind.Kind[K]](msg string, k K) MsgKind[K] {
	return MsgKind[K]{msg: msg, kind: k}
}

func (m MsgKind[K]) overlayMessage() string { return m.msg }
func (m MsgKind[K]) overlayKind() (any, bool) { return m.kind, true }

// Intermediate is an overlay in progress. It is a value; every method
// returns a new Intermediate.
type Intermediate[C store.Context[C], K kind.Kind[K]] struct {
	builder Builder[C, K]
}

// Overlay starts a new layer on top of e. A nil e, or a MsgKind whose kind
// type is not K, is a programming error and panics.
func (e *Error[C, K]) Overlay(o Overlayer) Intermediate[C, K] {
	return Intermediate[C, K]{builder: overlayBuilder(e, o)}
}

func overlayBuilder[C store.Context[C], K kind.Kind[K]](src *Error[C, K], o Overlayer) Builder[C, K] {
	if src == nil {
		panic(fmt.Sprintf("anyerr: overlay %q on a nil *Error[%s, %s]",
			o.overlayMessage(), reflect.TypeFor[C](), reflect.TypeFor[K]()))
	}
	b := NewBuilder[C, K]().Source(src).Message(o.overlayMessage())
	if v, ok := o.overlayKind(); ok {
		k, match := v.(K)
		if !match {
			panic(fmt.Sprintf("anyerr: overlay kind %T does not match error kind %s",
				v, reflect.TypeFor[K]()))
		}
		b = b.Kind(k)
	}
	return b
}

// Context adds one entry converted by the store's default converter.
func (i Intermediate[C, K]) Context(key, value any) Intermediate[C, K] {
	i.builder = i.builder.Context(key, value)
	return i
}

// ContextWith adds one entry converted by conv.
func (i Intermediate[C, K]) ContextWith(conv converter.Converter, key, value any) Intermediate[C, K] {
	i.builder = i.builder.ContextWith(conv, key, value)
	return i
}

// Fields adds alternating key/value pairs.
func (i Intermediate[C, K]) Fields(kv ...any) Intermediate[C, K] {
	i.builder = i.builder.Fields(kv...)
	return i
}

// Build produces the Layered value.
func (i Intermediate[C, K]) Build() *Error[C, K] {
	return i.builder.Build()
}
