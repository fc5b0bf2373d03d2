package types

// StringField represents an unbounded text cell.
type StringField struct {
	Value string // The string value stored in this field
}

// NewStringField creates a new StringField. The value is not checked here;
// rows validate their fields before accepting them.
func NewStringField(value string) *StringField {
	return &StringField{Value: value}
}

func (s *StringField) Type() Type {
	return StringType
}

func (s *StringField) String() string {
	return s.Value
}

func (s *StringField) Equals(other Field) bool {
	return sameValue(s, other, func(a, b *StringField) bool {
		return equalOrdered(a.Value, b.Value)
	})
}
