package types

import "fmt"

// OptionalField is the value of an optional column: either absent, or
// present and wrapping a value of the inner primitive type.
type OptionalField struct {
	typ   Type
	inner Field // nil when absent
}

// NewAbsentField returns the absent value of the optional form of t.
func NewAbsentField(t Type) *OptionalField {
	return &OptionalField{typ: t.Optional()}
}

// NewPresentField wraps a primitive value. It fails if inner is nil or
// already optional.
func NewPresentField(inner Field) (*OptionalField, error) {
	if inner == nil {
		return nil, fmt.Errorf("present optional needs a value")
	}
	if inner.Type().IsOptional() {
		return nil, fmt.Errorf("cannot wrap optional type %s", inner.Type())
	}
	return &OptionalField{typ: inner.Type().Optional(), inner: inner}, nil
}

func (f *OptionalField) Type() Type {
	return f.typ
}

// Present reports whether the cell holds a value.
func (f *OptionalField) Present() bool {
	return f.inner != nil
}

// Value returns the wrapped value and whether it is present.
func (f *OptionalField) Value() (Field, bool) {
	return f.inner, f.inner != nil
}

// String renders absent cells as the empty string.
func (f *OptionalField) String() string {
	if f.inner == nil {
		return ""
	}
	return f.inner.String()
}

// Equals treats two absent values as equal, absent and present as unequal,
// and otherwise compares the wrapped values.
func (f *OptionalField) Equals(other Field) bool {
	o, ok := other.(*OptionalField)
	if !ok || f.typ != o.typ {
		return false
	}
	switch {
	case f.inner == nil && o.inner == nil:
		return true
	case f.inner == nil || o.inner == nil:
		return false
	default:
		return f.inner.Equals(o.inner)
	}
}
