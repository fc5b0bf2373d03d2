package tuple

import (
	"strings"

	dberror "csvdb/pkg/error"
	"csvdb/pkg/types"
)

// DecodeRow decodes one comma-separated line against schema. rowNumber is
// the 1-based line number used in error reports.
//
// Arity is checked before any cell is decoded: too few cells fail with
// UNEXPECTED_END_OF_INPUT at the first missing position, too many with
// EXPECTED_END_OF_INPUT just past the last column. Cells are then decoded
// left to right and the first invalid one is reported.
func DecodeRow(schema *Schema, rowNumber int, line string) (*Tuple, error) {
	n := schema.NumFields()
	if n == 0 {
		if line != "" {
			return nil, dberror.ExpectedEndOfInput(1, line)
		}
		return NewBuilder(schema).Build()
	}

	cells := strings.Split(line, Separator)
	switch {
	case len(cells) < n:
		return nil, dberror.UnexpectedEndOfInput(len(cells)+1, line)
	case len(cells) > n:
		return nil, dberror.ExpectedEndOfInput(n+1, strings.Join(cells[n:], Separator))
	}

	b := NewBuilder(schema)
	for _, cell := range cells {
		b.AddText(rowNumber, cell)
	}
	return b.Build()
}

// EncodeRow joins the encoded cells of t with commas. It is the inverse of
// DecodeRow.
func EncodeRow(t *Tuple) string {
	return t.String()
}

// DecodeValue decodes a single cell against the type of column col (0-based).
func DecodeValue(schema *Schema, col int, text string) (types.Field, error) {
	t, err := schema.TypeAt(col)
	if err != nil {
		return nil, dberror.OutOfBounds(uint64(schema.NumFields()), uint64(col))
	}
	return types.DecodeField(t, text, 1, col+1)
}
