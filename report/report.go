// Package report renders an anyerr chain for humans.
//
// A Report is either Success (nothing to print) or Failure (an error plus
// four rendering flags). Two layouts exist:
//
// Pretty (default), one block per layer with its own context:
//
//	Error:
//	    (Unknown) could not start
//	    [port = "8080"]
//	Caused by:
//	    (InfrastructureFailure) address in use
//
//	Stack backtrace:
//	main.listen
//		/src/main.go:42
//
// Compact, a single line with the context of every layer:
//
//	(Unknown) could not start: (InfrastructureFailure) address in use [port = "8080"]
//
// Backtraces are printed in pretty mode only.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/xgx-io/anyerr"
	"github.com/xgx-io/anyerr/kind"
	"github.com/xgx-io/anyerr/store"
)

const (
	// ExitSuccess and ExitFailure are the codes ExitCode reports.
	ExitSuccess = 0
	ExitFailure = 1
)

// Report is an immutable rendering view over an error. Flag setters return
// new values and are no-ops on Success.
type Report[C store.Context[C], K kind.Kind[K]] struct {
	err       *anyerr.Error[C, K]
	pretty    bool
	kind      bool
	backtrace bool
	context   bool
}

// Wrap returns a Failure report with every flag on, or Success for nil.
func Wrap[C store.Context[C], K kind.Kind[K]](err *anyerr.Error[C, K]) Report[C, K] {
	if err == nil {
		return Report[C, K]{}
	}
	return Report[C, K]{err: err, pretty: true, kind: true, backtrace: true, context: true}
}

// Capture runs fn and reports its outcome. Foreign errors are wrapped
// opaquely; *anyerr.Error values are reported as they are.
func Capture[C store.Context[C], K kind.Kind[K]](fn func() error) Report[C, K] {
	return Wrap(anyerr.Wrap[C, K](fn()))
}

// Failed reports whether r holds an error.
func (r Report[C, K]) Failed() bool { return r.err != nil }

// Err returns the reported error, or nil on Success.
func (r Report[C, K]) Err() *anyerr.Error[C, K] { return r.err }

// Pretty selects the multi-line layout (true) or the compact one (false).
func (r Report[C, K]) Pretty(on bool) Report[C, K] {
	if r.err != nil {
		r.pretty = on
	}
	return r
}

// Kind toggles the "(Kind) " prefix on every message.
func (r Report[C, K]) Kind(on bool) Report[C, K] {
	if r.err != nil {
		r.kind = on
	}
	return r
}

// Backtrace toggles the backtrace block of the pretty layout.
func (r Report[C, K]) Backtrace(on bool) Report[C, K] {
	if r.err != nil {
		r.backtrace = on
	}
	return r
}

// Context toggles context lists.
func (r Report[C, K]) Context(on bool) Report[C, K] {
	if r.err != nil {
		r.context = on
	}
	return r
}

// ExitCode returns ExitSuccess or ExitFailure.
func (r Report[C, K]) ExitCode() int {
	if r.err == nil {
		return ExitSuccess
	}
	return ExitFailure
}

// Terminate writes a Failure report followed by a newline to w and returns
// the exit code, so a main function can end with
//
//	os.Exit(report.Capture[Ctx, Kind](run).Terminate(os.Stderr))
func (r Report[C, K]) Terminate(w io.Writer) int {
	if r.err != nil {
		_, _ = io.WriteString(w, r.String())
		_, _ = io.WriteString(w, "\n")
	}
	return r.ExitCode()
}

// String renders the report. Success renders as the empty string.
func (r Report[C, K]) String() string {
	var sb strings.Builder
	_, _ = r.WriteTo(&sb)
	return sb.String()
}

// Format implements fmt.Formatter; every verb renders the report, %q quotes it.
func (r Report[C, K]) Format(s fmt.State, verb rune) {
	if verb == 'q' {
		_, _ = fmt.Fprintf(s, "%q", r.String())
		return
	}
	_, _ = r.WriteTo(s)
}

// WriteTo implements io.WriterTo.
func (r Report[C, K]) WriteTo(w io.Writer) (int64, error) {
	if r.err == nil {
		return 0, nil
	}
	cw := &countingWriter{w: w}
	if r.pretty {
		r.renderPretty(cw)
	} else {
		r.renderCompact(cw)
	}
	return cw.n, cw.err
}

func (r Report[C, K]) renderPretty(w *countingWriter) {
	prefix := "Error:"
	for layer := range anyerr.Layers(r.err) {
		w.printf("%s\n", prefix)
		w.printf("    %s\n", r.message(layer))
		if r.context {
			if ctx := store.Join(layer.Context(anyerr.Shallowest)); ctx != "" {
				w.printf("    [%s]\n", ctx)
			}
		}
		prefix = "Caused by:"
	}
	if r.backtrace {
		w.printf("\nStack backtrace:\n%s\n", r.err.Backtrace())
	}
}

func (r Report[C, K]) renderCompact(w *countingWriter) {
	first := true
	for layer := range anyerr.Layers(r.err) {
		if !first {
			w.printf(": ")
		}
		w.printf("%s", r.message(layer))
		first = false
	}
	if r.context {
		if ctx := store.Join(r.err.Context(anyerr.All)); ctx != "" {
			w.printf(" [%s]", ctx)
		}
	}
}

func (r Report[C, K]) message(layer *anyerr.Error[C, K]) string {
	if r.kind {
		return "(" + layer.Kind().String() + ") " + layer.Message()
	}
	return layer.Message()
}

// countingWriter keeps the first write error and the byte count.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) printf(format string, args ...any) {
	if c.err != nil {
		return
	}
	n, err := fmt.Fprintf(c.w, format, args...)
	c.n += int64(n)
	c.err = err
}
