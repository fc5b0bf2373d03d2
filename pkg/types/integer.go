package types

import (
	"strconv"
)

// UintField represents a fixed-width unsigned integer cell (b8, b16, b32, b64).
// Value always fits the width implied by the field's type.
type UintField struct {
	Value uint64
	kind  Kind
}

func NewBits8Field(value uint8) *UintField {
	return &UintField{Value: uint64(value), kind: Bits8Kind}
}

func NewBits16Field(value uint16) *UintField {
	return &UintField{Value: uint64(value), kind: Bits16Kind}
}

func NewBits32Field(value uint32) *UintField {
	return &UintField{Value: uint64(value), kind: Bits32Kind}
}

func NewBits64Field(value uint64) *UintField {
	return &UintField{Value: value, kind: Bits64Kind}
}

func (f *UintField) Type() Type {
	return Type{kind: f.kind}
}

func (f *UintField) String() string {
	return strconv.FormatUint(f.Value, 10)
}

func (f *UintField) Equals(other Field) bool {
	return sameValue(f, other, func(a, b *UintField) bool {
		return equalOrdered(a.Value, b.Value)
	})
}

// IntField represents a fixed-width signed integer cell (i8, i16, i32, i64).
type IntField struct {
	Value int64
	kind  Kind
}

func NewInt8Field(value int8) *IntField {
	return &IntField{Value: int64(value), kind: Int8Kind}
}

func NewInt16Field(value int16) *IntField {
	return &IntField{Value: int64(value), kind: Int16Kind}
}

func NewInt32Field(value int32) *IntField {
	return &IntField{Value: int64(value), kind: Int32Kind}
}

func NewInt64Field(value int64) *IntField {
	return &IntField{Value: value, kind: Int64Kind}
}

func (f *IntField) Type() Type {
	return Type{kind: f.kind}
}

func (f *IntField) String() string {
	return strconv.FormatInt(f.Value, 10)
}

func (f *IntField) Equals(other Field) bool {
	return sameValue(f, other, func(a, b *IntField) bool {
		return equalOrdered(a.Value, b.Value)
	})
}

// bitSize returns the width in bits of a fixed-width integer kind.
func bitSize(k Kind) int {
	switch k {
	case Bits8Kind, Int8Kind:
		return 8
	case Bits16Kind, Int16Kind:
		return 16
	case Bits32Kind, Int32Kind:
		return 32
	default:
		return 64
	}
}
