package tuple

import (
	"fmt"
	"strings"

	"csvdb/pkg/types"
	"csvdb/pkg/utils/functools"
)

// Separator splits schema tokens and row cells.
const Separator = ","

// Schema describes the shape of a table: the ordered column types. Column
// position is the only column identity. A Schema is immutable.
type Schema struct {
	types []types.Type
}

// NewSchema creates a Schema from the given column types. The slice is
// copied, so later changes by the caller do not affect the schema.
// An empty schema is valid; it describes rows with no cells.
func NewSchema(fieldTypes ...types.Type) *Schema {
	typesCopy := make([]types.Type, len(fieldTypes))
	copy(typesCopy, fieldTypes)
	return &Schema{types: typesCopy}
}

// ParseSchema parses a comma-separated list of type tokens. The first
// unknown token fails the whole line with its 1-based position.
//
// A blank line parses to the empty schema.
func ParseSchema(line string) (*Schema, error) {
	if line == "" {
		return NewSchema(), nil
	}

	parsed, err := functools.MapIndexedWithError(strings.Split(line, Separator), func(i int, tok string) (types.Type, error) {
		return types.ParseType(i+1, tok)
	})
	if err != nil {
		return nil, err
	}
	return &Schema{types: parsed}, nil
}

// NumFields returns the number of columns.
func (s *Schema) NumFields() int {
	return len(s.types)
}

// TypeAt returns the type of the ith column (0-based).
func (s *Schema) TypeAt(i int) (types.Type, error) {
	if i < 0 || i >= len(s.types) {
		return types.Type{}, fmt.Errorf("column index %d out of bounds [0, %d)", i, len(s.types))
	}
	return s.types[i], nil
}

// Types returns a copy of the column types.
func (s *Schema) Types() []types.Type {
	out := make([]types.Type, len(s.types))
	copy(out, s.types)
	return out
}

// Equals reports whether both schemas have the same column types in the same order.
func (s *Schema) Equals(other *Schema) bool {
	if other == nil || len(s.types) != len(other.types) {
		return false
	}
	for i, t := range s.types {
		if t != other.types[i] {
			return false
		}
	}
	return true
}

// String renders the schema as it is written by ParseSchema's callers,
// e.g. "b8,str,fin3?".
func (s *Schema) String() string {
	return strings.Join(functools.Map(s.types, types.Type.String), Separator)
}
