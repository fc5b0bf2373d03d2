package types

// Textual forms of boolean cells.
const (
	TrueText  = "t"
	FalseText = "f"
)

// BoolField represents a boolean cell.
type BoolField struct {
	Value bool // The boolean value stored in this field
}

// NewBoolField creates a new BoolField instance with the specified boolean value.
func NewBoolField(value bool) *BoolField {
	return &BoolField{Value: value}
}

// Type returns the type identifier for this field.
// Returns:
//   - Type: Always returns BoolType for boolean fields
func (b *BoolField) Type() Type {
	return BoolType
}

// String returns the encoded form of the boolean value.
// Returns:
//   - string: "t" if the value is true, "f" otherwise
func (b *BoolField) String() string {
	if b.Value {
		return TrueText
	}
	return FalseText
}

// Equals checks if this BoolField is equal to another Field.
// Parameters:
//   - other: The other Field to compare for equality
//
// Returns:
//   - bool: true if both fields are BoolFields with the same value, false otherwise
func (b *BoolField) Equals(other Field) bool {
	otherBool, ok := other.(*BoolField)
	if !ok {
		return false
	}
	return b.Value == otherBool.Value
}
