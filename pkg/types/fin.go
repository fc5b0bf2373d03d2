package types

import (
	"fmt"
	"strconv"
)

// FinField is a bounded index cell. Value is always below Bound.
type FinField struct {
	Value uint64
	Bound uint64
}

// NewFinField is the only way to build a FinField; it fails unless value < bound.
func NewFinField(value, bound uint64) (*FinField, error) {
	if value >= bound {
		return nil, fmt.Errorf("value %d is not below %d", value, bound)
	}
	return &FinField{Value: value, Bound: bound}, nil
}

func (f *FinField) Type() Type {
	return FinType(f.Bound)
}

func (f *FinField) String() string {
	return strconv.FormatUint(f.Value, 10)
}

func (f *FinField) Equals(other Field) bool {
	return sameValue(f, other, func(a, b *FinField) bool {
		return a.Value == b.Value
	})
}
