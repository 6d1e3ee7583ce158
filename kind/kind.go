// Package kind defines the contract an application's failure-category
// enumeration must satisfy, plus two reference enumerations.
//
// Contract:
//   - Kinds are comparable values with a String form for reports.
//   - The zero value is the default kind assigned when none is given.
//   - Raw() names the kind reported by errors that wrap a foreign error.
//   - Unknown() names the "not specified" kind.
//
// Raw and Unknown are called on the zero value, so implementations must not
// depend on the receiver.
package kind

import "fmt"

// Kind is the constraint satisfied by kind enumerations. K is the
// enumeration type itself.
type Kind[K any] interface {
	comparable
	fmt.Stringer
	Raw() K
	Unknown() K
}

// Default returns the default kind of K (its zero value).
func Default[K Kind[K]]() K {
	var zero K
	return zero
}

// RawOf returns the raw sentinel of K.
func RawOf[K Kind[K]]() K {
	var zero K
	return zero.Raw()
}

// UnknownOf returns the unknown sentinel of K.
func UnknownOf[K Kind[K]]() K {
	var zero K
	return zero.Unknown()
}

// IsRaw reports whether k is the raw sentinel.
func IsRaw[K Kind[K]](k K) bool { return k == RawOf[K]() }

// IsUnknown reports whether k is the unknown sentinel.
func IsUnknown[K Kind[K]](k K) bool { return k == UnknownOf[K]() }
