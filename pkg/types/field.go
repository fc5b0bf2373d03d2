package types

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Field is a single cell value. Its concrete type is determined by the
// column type it was decoded or built for.
type Field interface {
	// Type returns the column type this value belongs to.
	Type() Type

	// String returns the encoded cell text.
	String() string

	// Equals reports whether other has the same type and value.
	Equals(other Field) bool
}

var (
	errEmptyString    = errors.New("string cells must not be empty")
	errStringNewline  = errors.New("string cells must not contain line breaks")
	errStringComma    = errors.New("string cells must not contain commas")
	errNegativeNumber = errors.New("natural cells must not be negative")
	errNonFiniteFloat = errors.New("float cells must be finite")
)

// Validate checks that f encodes to text which decodes back to f. Rows are
// only ever built from validated fields.
func Validate(f Field) error {
	switch v := f.(type) {
	case nil:
		return errors.New("nil field")
	case *StringField:
		switch {
		case v.Value == "":
			return errEmptyString
		case strings.ContainsAny(v.Value, "\r\n"):
			return errStringNewline
		case strings.Contains(v.Value, ","):
			return errStringComma
		}
	case *Float64Field:
		if math.IsNaN(v.Value) || math.IsInf(v.Value, 0) {
			return errNonFiniteFloat
		}
	case *NaturalField:
		if v.Value == nil || v.Value.Sign() < 0 {
			return errNegativeNumber
		}
	case *BigIntField:
		if v.Value == nil {
			return errors.New("nil bigint value")
		}
	case *FinField:
		if v.Value >= v.Bound {
			return fmt.Errorf("fin value %d is not below %d", v.Value, v.Bound)
		}
	case *OptionalField:
		if v.Present() {
			return Validate(v.inner)
		}
	}
	return nil
}
