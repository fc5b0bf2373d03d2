package types

import (
	"math/big"
)

// NaturalField represents an arbitrary-precision non-negative integer cell.
type NaturalField struct {
	Value *big.Int
}

// NewNaturalField copies value into a new NaturalField. Negative values are
// rejected by Validate, not here.
func NewNaturalField(value *big.Int) *NaturalField {
	return &NaturalField{Value: new(big.Int).Set(value)}
}

func NewNaturalFieldUint64(value uint64) *NaturalField {
	return &NaturalField{Value: new(big.Int).SetUint64(value)}
}

func (f *NaturalField) Type() Type {
	return NaturalType
}

func (f *NaturalField) String() string {
	return f.Value.String()
}

func (f *NaturalField) Equals(other Field) bool {
	return sameValue(f, other, func(a, b *NaturalField) bool {
		return a.Value.Cmp(b.Value) == 0
	})
}

// BigIntField represents an arbitrary-precision signed integer cell.
type BigIntField struct {
	Value *big.Int
}

func NewBigIntField(value *big.Int) *BigIntField {
	return &BigIntField{Value: new(big.Int).Set(value)}
}

func NewBigIntFieldInt64(value int64) *BigIntField {
	return &BigIntField{Value: big.NewInt(value)}
}

func (f *BigIntField) Type() Type {
	return BigIntType
}

func (f *BigIntField) String() string {
	return f.Value.String()
}

func (f *BigIntField) Equals(other Field) bool {
	return sameValue(f, other, func(a, b *BigIntField) bool {
		return a.Value.Cmp(b.Value) == 0
	})
}
