// predicates.go — classification questions over arbitrary errors.
//
// All helpers accept the plain error interface and traverse with Walk, so
// anyerr values behind fmt.Errorf("%w"), errors.Join or other foreign
// wrappers are found too. Only values of the exact instantiation
// *Error[C, K] are considered.
package anyerr

import (
	"github.com/xgx-io/anyerr/kind"
	"github.com/xgx-io/anyerr/store"
)

// Find returns the first *Error[C, K] in err's unwrap graph.
func Find[C store.Context[C], K kind.Kind[K]](err error) (*Error[C, K], bool) {
	var found *Error[C, K]
	Walk(err, func(e error) bool {
		if x, ok := e.(*Error[C, K]); ok && x != nil {
			found = x
			return false
		}
		return true
	})
	return found, found != nil
}

// KindOf returns the kind of the first *Error[C, K] in err's unwrap graph.
// When there is none it returns K's unknown kind and false.
func KindOf[C store.Context[C], K kind.Kind[K]](err error) (K, bool) {
	if e, ok := Find[C, K](err); ok {
		return e.Kind(), true
	}
	return kind.UnknownOf[K](), false
}

// HasKind reports whether any *Error[C, K] in err's unwrap graph carries k.
func HasKind[C store.Context[C], K kind.Kind[K]](err error, k K) bool {
	hit := false
	Walk(err, func(e error) bool {
		if x, ok := e.(*Error[C, K]); ok && x != nil && x.Kind() == k {
			hit = true
			return false
		}
		return true
	})
	return hit
}
