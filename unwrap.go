// unwrap.go — chain traversal helpers.
//
// Scope:
//   - Layers / Root: walk one anyerr chain through Source, outermost first.
//   - Walk / Flatten / Has: generic traversal over any error graph,
//     covering both Unwrap() error and Unwrap() []error (errors.Join), so
//     anyerr values hidden behind foreign wrappers are still found.
//
// Graph traversal guards against cycles with a dual seen-set:
//   - seenErr (map[error]struct{})   for comparable dynamic types
//   - seenPtr (map[uintptr]struct{}) for pointer identity otherwise
//
// Non-comparable, non-pointer dynamics are treated as acyclic and bounded by
// a depth cap.
package anyerr

import (
	"errors"
	"iter"
	"reflect"

	"github.com/xgx-io/anyerr/kind"
	"github.com/xgx-io/anyerr/store"
)

// Layers yields e and then each Source in turn. It stops at the first Leaf
// or Opaque value; a nil e yields nothing.
func Layers[C store.Context[C], K kind.Kind[K]](e *Error[C, K]) iter.Seq[*Error[C, K]] {
	return func(yield func(*Error[C, K]) bool) {
		for cur := e; cur != nil; cur = cur.Source() {
			if !yield(cur) {
				return
			}
		}
	}
}

// Root returns the innermost layer of e's chain (a Leaf or Opaque value).
func Root[C store.Context[C], K kind.Kind[K]](e *Error[C, K]) *Error[C, K] {
	var last *Error[C, K]
	for l := range Layers(e) {
		last = l
	}
	return last
}

type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

// markSeen returns true if err was newly marked; false if already seen.
func markSeen(err error, seenErr map[error]struct{}, seenPtr map[uintptr]struct{}) bool {
	if err == nil {
		return false
	}
	if reflect.TypeOf(err).Comparable() {
		if _, ok := seenErr[err]; ok {
			return false
		}
		seenErr[err] = struct{}{}
		return true
	}
	rv := reflect.ValueOf(err)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		id := rv.Pointer()
		if _, dup := seenPtr[id]; dup {
			return false
		}
		seenPtr[id] = struct{}{}
	}
	return true
}

// Walk visits each distinct node of err's unwrap graph in pre-order (visit
// before children, joined children left to right). If visit returns false,
// traversal stops. Nil is a no-op.
func Walk(err error, visit func(error) bool) {
	if err == nil || visit == nil {
		return
	}
	const maxDepth = 1 << 12

	stack := make([]error, 0, 8)
	seenErr := make(map[error]struct{}, 16)
	seenPtr := make(map[uintptr]struct{}, 16)

	stack = append(stack, err)
	_ = markSeen(err, seenErr, seenPtr)

	for len(stack) > 0 && len(stack) < maxDepth {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(cur) {
			return
		}

		switch u := cur.(type) {
		case multiUnwrapper:
			kids := u.Unwrap()
			for i := len(kids) - 1; i >= 0; i-- {
				if c := kids[i]; c != nil && markSeen(c, seenErr, seenPtr) {
					stack = append(stack, c)
				}
			}
		case singleUnwrapper:
			if c := u.Unwrap(); c != nil && markSeen(c, seenErr, seenPtr) {
				stack = append(stack, c)
			}
		}
	}
}

// Flatten returns the leaf errors (nodes with no children) of err's unwrap
// graph in depth-first order. It returns nil for nil.
func Flatten(err error) []error {
	var out []error
	Walk(err, func(e error) bool {
		switch u := e.(type) {
		case multiUnwrapper:
			if len(u.Unwrap()) > 0 {
				return true
			}
		case singleUnwrapper:
			if u.Unwrap() != nil {
				return true
			}
		}
		out = append(out, e)
		return true
	})
	return out
}

// Has reports whether target appears anywhere in err's unwrap graph.
// It wraps errors.Is with nil-safety.
func Has(err, target error) bool {
	if err == nil || target == nil {
		return false
	}
	return errors.Is(err, target)
}
