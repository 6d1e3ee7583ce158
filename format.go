// format.go — fmt.Formatter implementation for anyerr values.
//
// Behavior:
//
//   %s, %v   → this layer's message (Error()).
//   %q       → quoted Error().
//   %+v      → verbose, structured multi-line format:
//                kind=<kind> msg="<message>"
//                ctx: key1 = val1, key2 = val2
//                cause: <recursively formatted with %+v>
//                stack:
//                  funcA file.go:123
//                  funcB other.go:45
//
// Only Leaf and Opaque layers print a stack; Layered values share their
// source's backtrace, which is printed once at the bottom of the recursion.
package anyerr

import (
	"fmt"
	"io"

	"github.com/xgx-io/anyerr/store"
)

// Format implements fmt.Formatter.
func (e *Error[C, K]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			e.formatVerbose(s)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}

func (e *Error[C, K]) formatVerbose(w io.Writer) {
	_, _ = fmt.Fprintf(w, "kind=%s msg=%q", e.Kind(), e.Message())

	if ctx := store.Join(e.Context(Shallowest)); ctx != "" {
		_, _ = io.WriteString(w, "\nctx: ")
		_, _ = io.WriteString(w, ctx)
	}

	if cause := e.Unwrap(); cause != nil {
		_, _ = io.WriteString(w, "\ncause: ")
		_, _ = fmt.Fprintf(w, "%+v", cause)
	}

	if e.IsLayered() {
		return
	}
	if bt := e.Backtrace(); bt.Len() > 0 {
		_, _ = io.WriteString(w, "\nstack:")
		for _, fr := range bt.frames {
			_, _ = fmt.Fprintf(w, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
		}
	}
}
