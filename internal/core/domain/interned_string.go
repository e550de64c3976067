package domain

import (
	"strings"
	"unique"
)

// InternedString wraps a unique.Handle[string].
// Task names are compared on every graph lookup, so they are interned once at registration.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString creates a new InternedString from a string.
func NewInternedString(s string) InternedString {
	return InternedString{
		h: unique.Make(s),
	}
}

// String returns the underlying string value.
func (is InternedString) String() string {
	var zero unique.Handle[string]
	if is.h == zero {
		return ""
	}
	return is.h.Value()
}

// IsZero reports whether the string was never set.
func (is InternedString) IsZero() bool {
	var zero unique.Handle[string]
	return is.h == zero
}

// Compare orders two interned strings by their values.
func (is InternedString) Compare(other InternedString) int {
	return strings.Compare(is.String(), other.String())
}

// InternAll interns every string in names, keeping order.
func InternAll(names ...string) []InternedString {
	out := make([]InternedString, len(names))
	for i, n := range names {
		out[i] = NewInternedString(n)
	}
	return out
}
