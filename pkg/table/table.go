// Package table implements the in-memory table: a schema plus an ordered
// list of rows that all conform to it.
//
// A *Table is never modified after construction. Prepend and Delete return
// a new table and leave the receiver untouched, so callers thread the
// current table through their loop by replacement.
package table

import (
	"fmt"

	dberror "csvdb/pkg/error"
	"csvdb/pkg/tuple"
	"csvdb/pkg/types"
	"csvdb/pkg/utils/functools"
)

// Table owns a schema and the rows validated against it. Index 0 is the
// most recently added row.
type Table struct {
	schema *tuple.Schema
	rows   []*tuple.Tuple
}

// New returns an empty table with the given schema.
func New(schema *tuple.Schema) *Table {
	return &Table{schema: schema}
}

// FromRows builds a table from rows in the given order. Every row must have
// been built for a schema equal to schema.
func FromRows(schema *tuple.Schema, rows []*tuple.Tuple) (*Table, error) {
	for i, row := range rows {
		if err := checkRow(schema, row); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	out := make([]*tuple.Tuple, len(rows))
	copy(out, rows)
	return &Table{schema: schema, rows: out}, nil
}

// Schema returns the table's schema.
func (t *Table) Schema() *tuple.Schema {
	return t.schema
}

// Size returns the number of rows.
func (t *Table) Size() int {
	return len(t.rows)
}

// Rows returns the rows in table order. The slice is a copy.
func (t *Table) Rows() []*tuple.Tuple {
	out := make([]*tuple.Tuple, len(t.rows))
	copy(out, t.rows)
	return out
}

// Prepend returns a new table with row in front of the existing rows.
func (t *Table) Prepend(row *tuple.Tuple) (*Table, error) {
	if err := checkRow(t.schema, row); err != nil {
		return nil, err
	}
	rows := make([]*tuple.Tuple, 0, len(t.rows)+1)
	rows = append(rows, row)
	rows = append(rows, t.rows...)
	return &Table{schema: t.schema, rows: rows}, nil
}

// Get returns the row at the 0-based index.
func (t *Table) Get(index uint64) (*tuple.Tuple, error) {
	if err := t.checkIndex(index); err != nil {
		return nil, err
	}
	return t.rows[index], nil
}

// Delete returns a new table without the row at index. An empty table has
// no valid index, so Delete on it always fails.
func (t *Table) Delete(index uint64) (*Table, error) {
	if err := t.checkIndex(index); err != nil {
		return nil, err
	}
	rows := make([]*tuple.Tuple, 0, len(t.rows)-1)
	rows = append(rows, t.rows[:index]...)
	rows = append(rows, t.rows[index+1:]...)
	return &Table{schema: t.schema, rows: rows}, nil
}

// QueryEq returns, in table order, every row whose value in column col
// equals value.
func (t *Table) QueryEq(col int, value types.Field) ([]*tuple.Tuple, error) {
	if col < 0 || col >= t.schema.NumFields() {
		return nil, dberror.OutOfBounds(uint64(t.schema.NumFields()), uint64(col))
	}
	return functools.Filter(t.rows, func(row *tuple.Tuple) bool {
		f, err := row.Field(col)
		return err == nil && f.Equals(value)
	}), nil
}

func (t *Table) checkIndex(index uint64) error {
	if index >= uint64(len(t.rows)) {
		return dberror.OutOfBounds(uint64(len(t.rows)), index)
	}
	return nil
}

func checkRow(schema *tuple.Schema, row *tuple.Tuple) error {
	if row == nil {
		return fmt.Errorf("nil row")
	}
	if !schema.Equals(row.Schema()) {
		return fmt.Errorf("row schema %s does not match table schema %s", row.Schema(), schema)
	}
	return nil
}
