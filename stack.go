// stack.go — backtrace capture for anyerr values.
//
// Design goals:
//   - Use runtime.Callers + runtime.CallersFrames for accurate frame
//     resolution (handles inlining correctly).
//   - Capture once per chain: Leaf and Opaque values own a Backtrace, Layered
//     values defer to their source, so every layer reports the same one.
//   - Bounded depth; frames are resolved eagerly at capture time so a
//     Backtrace is immutable and safe to share.
package anyerr

import (
	"fmt"
	"runtime"
	"strings"
)

// Frame represents a single call site in a backtrace.
type Frame struct {
	PC       uintptr // program counter of the call return
	File     string  // absolute file path (as provided by runtime)
	Line     int     // line number
	Function string  // fully-qualified function name (pkg.Func or method)
}

// Stack is a slice of Frames from most recent call outward.
type Stack []Frame

// Backtrace is the call stack captured when a Leaf or Opaque value was
// created. It is shared by pointer across all layers built on top.
type Backtrace struct {
	frames Stack
}

const (
	// defaultMaxDepth bounds the number of recorded frames.
	defaultMaxDepth = 64
)

// Frames returns a copy of the captured frames.
func (b *Backtrace) Frames() Stack {
	if b == nil || len(b.frames) == 0 {
		return nil
	}
	out := make(Stack, len(b.frames))
	copy(out, b.frames)
	return out
}

// Len returns the number of captured frames.
func (b *Backtrace) Len() int {
	if b == nil {
		return 0
	}
	return len(b.frames)
}

// String renders one frame per entry in the layout Go uses for goroutine
// dumps:
//
//	pkg.Func
//		/path/to/file.go:42
func (b *Backtrace) String() string {
	if b.Len() == 0 {
		return "<empty backtrace>"
	}
	var sb strings.Builder
	for i, fr := range b.frames {
		if i > 0 {
			sb.WriteByte('\n')
		}
		_, _ = fmt.Fprintf(&sb, "%s\n\t%s:%d", fr.Function, fr.File, fr.Line)
	}
	return sb.String()
}

// captureBacktrace captures a backtrace skipping 'skip' frames beyond the
// caller of captureBacktrace.
//
// Skip model for a typical call chain:
//
//	user → Minimal → captureBacktrace → captureStack → runtime.Callers
//
// captureStack adds +3 (runtime.Callers, captureStack, captureBacktrace), so
// skip=0 records from Minimal and skip=1 from the user call site.
func captureBacktrace(skip int) *Backtrace {
	return &Backtrace{frames: captureStack(skip, defaultMaxDepth)}
}

// captureStack captures up to maxDepth frames, skipping 'skip' initial frames.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+3, pc)
	if n == 0 {
		return nil
	}
	pc = pc[:n]

	frames := runtime.CallersFrames(pc)
	out := make(Stack, 0, n)

	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}
