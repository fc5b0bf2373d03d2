package types

import (
	"strconv"
)

// Float64Field represents a 64-bit floating point cell.
type Float64Field struct {
	Value float64
}

func NewFloat64Field(value float64) *Float64Field {
	return &Float64Field{Value: value}
}

func (f *Float64Field) Type() Type {
	return FloatType
}

// String uses the shortest representation that parses back to the same value.
func (f *Float64Field) String() string {
	return strconv.FormatFloat(f.Value, 'g', -1, 64)
}

// Equals compares exactly. NaN is not equal to anything, including NaN.
func (f *Float64Field) Equals(other Field) bool {
	return sameValue(f, other, func(a, b *Float64Field) bool {
		return a.Value == b.Value
	})
}
