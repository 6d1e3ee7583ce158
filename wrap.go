// wrap.go — opaque wrapping of foreign errors.
//
// Purpose
//   - Bring ANY error into an anyerr chain without inspecting it.
//   - Keep the foreign value reachable: errors.Is/As see it through Unwrap,
//     and Downcast hands it back by exact type.
//
// The foreign value is held in a tagged box: its reflect.Type plus an
// addressable slot of exactly that type. Casts compare the tag before
// touching the slot, and DowncastMut can hand out a pointer into it.
package anyerr

import (
	"reflect"

	"github.com/xgx-io/anyerr/kind"
	"github.com/xgx-io/anyerr/store"
)

type opaque struct {
	backtrace *Backtrace
	typ       reflect.Type
	slot      reflect.Value // addressable, holds a value of typ
}

func newOpaque(err error, bt *Backtrace) *opaque {
	typ := reflect.TypeOf(err)
	slot := reflect.New(typ).Elem()
	slot.Set(reflect.ValueOf(err))
	return &opaque{backtrace: bt, typ: typ, slot: slot}
}

func (o *opaque) err() error {
	return o.slot.Interface().(error)
}

// Wrap brings err into the chain.
//   - nil → nil
//   - *Error[C, K] → returned unchanged (never nested opaquely)
//   - any other error → a new Opaque value with a fresh backtrace
func Wrap[C store.Context[C], K kind.Kind[K]](err error) *Error[C, K] {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error[C, K]); ok {
		return e
	}
	return &Error[C, K]{data: newOpaque(err, captureBacktrace(1))}
}
