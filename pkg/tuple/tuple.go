package tuple

import (
	"fmt"
	"strings"

	"csvdb/pkg/types"
)

// Tuple is a row of a table. Its i-th field always has the i-th type of
// its schema. Tuples are only created by a Builder or DecodeRow and are
// never modified afterwards.
type Tuple struct {
	schema *Schema       // Schema of this tuple
	fields []types.Field // The actual field values
}

// Schema returns the schema the tuple was validated against.
func (t *Tuple) Schema() *Schema {
	return t.schema
}

// NumFields returns the number of cells.
func (t *Tuple) NumFields() int {
	return len(t.fields)
}

// Field returns the value of the ith field.
func (t *Tuple) Field(i int) (types.Field, error) {
	if i < 0 || i >= len(t.fields) {
		return nil, fmt.Errorf("field index %d out of bounds [0, %d)", i, len(t.fields))
	}
	return t.fields[i], nil
}

// Fields returns a copy of the tuple's fields.
func (t *Tuple) Fields() []types.Field {
	out := make([]types.Field, len(t.fields))
	copy(out, t.fields)
	return out
}

// Equals reports whether both tuples share a schema shape and all fields are equal.
func (t *Tuple) Equals(other *Tuple) bool {
	if other == nil || !t.schema.Equals(other.schema) {
		return false
	}
	for i, f := range t.fields {
		if !f.Equals(other.fields[i]) {
			return false
		}
	}
	return true
}

// String returns the encoded row, the same text EncodeRow produces.
func (t *Tuple) String() string {
	parts := make([]string, len(t.fields))
	for i, f := range t.fields {
		parts[i] = types.EncodeField(f)
	}
	return strings.Join(parts, Separator)
}
