package anyerr

import (
	"fmt"
	"log/slog"

	"github.com/xgx-io/anyerr/converter"
	"github.com/xgx-io/anyerr/kind"
	"github.com/xgx-io/anyerr/store"
)

// LogValue implements slog.LogValuer. The error is logged as a group:
//
//	kind, message, context (this layer's entries), then cause (the source
//	layer) or, for Opaque values, type (the foreign error's Go type).
func (e *Error[C, K]) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 4)
	attrs = append(attrs,
		slog.String("kind", e.Kind().String()),
		slog.String("message", e.Message()),
	)

	var ctx []slog.Attr
	for entry := range e.Context(Shallowest).All() {
		v := entry.Value()
		if av, ok := v.(converter.AnyValue); ok {
			v = av.Interface()
		}
		ctx = append(ctx, slog.Any(fmt.Sprint(entry.Key()), v))
	}
	if len(ctx) > 0 {
		attrs = append(attrs, slog.Attr{Key: "context", Value: slog.GroupValue(ctx...)})
	}

	switch d := e.data.(type) {
	case *layered[C, K]:
		attrs = append(attrs, slog.Any("cause", d.source))
	case *opaque:
		attrs = append(attrs, slog.String("type", d.typ.String()))
	}
	return slog.GroupValue(attrs...)
}

var _ slog.LogValuer = (*Error[store.Unit, kind.None])(nil)
