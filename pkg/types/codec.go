package types

import (
	"math/big"
	"strconv"
	"strings"

	dberror "csvdb/pkg/error"
)

// DecodeField decodes the text of one cell as a value of type t.
// row and col are 1-based and only used for error reporting.
//
// Empty text decodes to the absent value of an optional type and is an
// error for every primitive type. Non-empty text under an optional type is
// decoded as the inner type and wrapped as present.
func DecodeField(t Type, text string, row, col int) (Field, error) {
	if t.IsOptional() {
		if text == "" {
			return NewAbsentField(t), nil
		}
		inner, ok := decodePrimitive(t.Inner(), text)
		if !ok {
			return nil, dberror.InvalidCell(row, col, t.String(), text)
		}
		present, err := NewPresentField(inner)
		if err != nil {
			return nil, dberror.InvalidCell(row, col, t.String(), text)
		}
		return present, nil
	}

	f, ok := decodePrimitive(t, text)
	if !ok {
		return nil, dberror.InvalidCell(row, col, t.String(), text)
	}
	return f, nil
}

// EncodeField returns the cell text of f. It is the inverse of DecodeField.
func EncodeField(f Field) string {
	return f.String()
}

func decodePrimitive(t Type, text string) (Field, bool) {
	if text == "" {
		return nil, false
	}

	switch t.kind {
	case Bits8Kind, Bits16Kind, Bits32Kind, Bits64Kind:
		v, err := strconv.ParseUint(text, 10, bitSize(t.kind))
		if err != nil {
			return nil, false
		}
		return &UintField{Value: v, kind: t.kind}, true

	case Int8Kind, Int16Kind, Int32Kind, Int64Kind:
		if text[0] == '+' {
			return nil, false
		}
		v, err := strconv.ParseInt(text, 10, bitSize(t.kind))
		if err != nil {
			return nil, false
		}
		return &IntField{Value: v, kind: t.kind}, true

	case StringKind:
		f := NewStringField(text)
		if Validate(f) != nil {
			return nil, false
		}
		return f, true

	case BoolKind:
		switch text {
		case TrueText:
			return NewBoolField(true), true
		case FalseText:
			return NewBoolField(false), true
		}
		return nil, false

	case FloatKind:
		if !isDecimalFloat(text) {
			return nil, false
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, false
		}
		f := NewFloat64Field(v)
		if Validate(f) != nil {
			return nil, false
		}
		return f, true

	case NaturalKind:
		if !isDigits(text) {
			return nil, false
		}
		v, ok := new(big.Int).SetString(text, 10)
		if !ok {
			return nil, false
		}
		return &NaturalField{Value: v}, true

	case BigIntKind:
		digits := text
		if text[0] == '-' {
			digits = text[1:]
		}
		if !isDigits(digits) {
			return nil, false
		}
		v, ok := new(big.Int).SetString(text, 10)
		if !ok {
			return nil, false
		}
		return &BigIntField{Value: v}, true

	case FinKind:
		if !isDigits(text) {
			return nil, false
		}
		v, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return nil, false
		}
		f, err := NewFinField(v, t.bound)
		if err != nil {
			return nil, false
		}
		return f, true
	}

	return nil, false
}

// isDecimalFloat reports whether text is written in plain decimal notation:
// an optional minus, digits with at most one point, and an optional exponent.
// NaN, infinities and hex floats do not match.
func isDecimalFloat(text string) bool {
	mantissa, exp, hasExp := strings.Cut(strings.ToLower(text), "e")
	mantissa = strings.TrimPrefix(mantissa, "-")
	whole, frac, _ := strings.Cut(mantissa, ".")
	if whole == "" && frac == "" {
		return false
	}
	if (whole != "" && !isDigits(whole)) || (frac != "" && !isDigits(frac)) {
		return false
	}
	if hasExp {
		if exp != "" && (exp[0] == '+' || exp[0] == '-') {
			exp = exp[1:]
		}
		return isDigits(exp)
	}
	return true
}
