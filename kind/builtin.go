// builtin.go — reference kind enumerations.
//
// Intent:
//   - Standard covers the categories most services need when classifying
//     failures for logging and auditing.
//   - None is for applications that do not classify errors at all.
//
// Projects are free to define their own enumeration; anything satisfying
// Kind[K] plugs into anyerr.Error.
package kind

import "strconv"

// Standard is a general-purpose kind enumeration. Its zero value is Unknown.
type Standard int

const (
	Unknown Standard = iota
	ValueValidation
	RuleViolation
	EntityAbsence
	InfrastructureFailure
	Raw
)

// allBuiltin is the ordered set of Standard kinds.
// Unexported to avoid exposing mutable slice identity to callers.
var allBuiltin = []Standard{
	Unknown,
	ValueValidation,
	RuleViolation,
	EntityAbsence,
	InfrastructureFailure,
	Raw,
}

// Builtin returns a fresh copy of the Standard kinds in a stable order.
func Builtin() []Standard {
	out := make([]Standard, len(allBuiltin))
	copy(out, allBuiltin)
	return out
}

// IsBuiltin reports whether k is one of the declared Standard kinds.
func (k Standard) IsBuiltin() bool { return k >= Unknown && k <= Raw }

func (k Standard) String() string {
	switch k {
	case Unknown:
		return "Unknown"
	case ValueValidation:
		return "ValueValidation"
	case RuleViolation:
		return "RuleViolation"
	case EntityAbsence:
		return "EntityAbsence"
	case InfrastructureFailure:
		return "InfrastructureFailure"
	case Raw:
		return "Raw"
	default:
		return "Standard(" + strconv.Itoa(int(k)) + ")"
	}
}

func (Standard) Raw() Standard     { return Raw }
func (Standard) Unknown() Standard { return Unknown }

// None is a kind with a single value, for errors that carry no category.
// Raw and Unknown both map onto it.
type None struct{}

// Anything is the only None value.
var Anything = None{}

func (None) String() string { return "Anything" }
func (None) Raw() None      { return Anything }
func (None) Unknown() None  { return Anything }

// Kind embeds comparable, so conformance is checked through instantiation.
func assertKind[K Kind[K]]() {}

var (
	_ = assertKind[Standard]
	_ = assertKind[None]
)
