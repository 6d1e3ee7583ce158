// converter.go — value transformation strategies applied before context insertion.
//
// A Converter is selected at the call site (or by the store as its default)
// and turns an arbitrary value into the value type a context store holds:
//
//   - Debug: the debug text form, for stores holding strings.
//   - Into:  identity; the store type-asserts into its value type.
//   - Box:   a type-erased AnyValue for stores holding heterogeneous values.
//
// Converters are stateless zero-size values and safe for concurrent use.
package converter

import (
	"fmt"
	"strconv"
)

// Converter transforms a value before it is stored.
type Converter interface {
	Convert(v any) any
}

// Debug renders values to their debug text form. Strings are quoted so that
// "1" and 1 stay distinguishable in reports.
type Debug struct{}

func (Debug) Convert(v any) any { return DebugString(v) }

// Into passes values through unchanged.
type Into struct{}

func (Into) Convert(v any) any { return v }

// Box wraps values into an AnyValue. Values that already are AnyValue are
// not boxed twice.
type Box struct{}

func (Box) Convert(v any) any {
	if av, ok := v.(AnyValue); ok {
		return av
	}
	return NewAnyValue(v)
}

// DebugString returns the debug form used by Debug and AnyValue.String.
func DebugString(v any) string {
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return strconv.Quote(x)
	case []byte:
		return strconv.Quote(string(x))
	case error:
		return strconv.Quote(x.Error())
	default:
		return fmt.Sprintf("%+v", x)
	}
}

var (
	_ Converter = Debug{}
	_ Converter = Into{}
	_ Converter = Box{}
)
