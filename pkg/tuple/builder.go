package tuple

import (
	"fmt"
	"math/big"

	"csvdb/pkg/types"
	"csvdb/pkg/utils"
)

// Builder provides a fluent interface for constructing tuples. Every field
// is checked against the schema type at its position and validated before
// it is accepted; the first failure sticks and is reported by Build.
type Builder struct {
	schema       *Schema
	fields       []types.Field
	currentIndex int
	err          error
}

// NewBuilder creates a new tuple builder with the given schema
func NewBuilder(schema *Schema) *Builder {
	return &Builder{
		schema: schema,
		fields: make([]types.Field, 0, schema.NumFields()),
	}
}

// AddField adds a generic field at the current index
func (b *Builder) AddField(field types.Field) *Builder {
	if b.err != nil {
		return b
	}

	expected, err := b.schema.TypeAt(b.currentIndex)
	if err != nil {
		b.err = fmt.Errorf("field %d: %w", b.currentIndex, err)
		return b
	}
	if utils.IsNilInterface(field) {
		b.err = fmt.Errorf("field %d: nil value", b.currentIndex)
		return b
	}
	if field.Type() != expected {
		b.err = fmt.Errorf("field %d: type mismatch: expected %v, got %v",
			b.currentIndex, expected, field.Type())
		return b
	}
	if err := types.Validate(field); err != nil {
		b.err = fmt.Errorf("field %d: %w", b.currentIndex, err)
		return b
	}

	b.fields = append(b.fields, field)
	b.currentIndex++
	return b
}

// AddString adds a string field at the current index
func (b *Builder) AddString(value string) *Builder {
	return b.AddField(types.NewStringField(value))
}

// AddBool adds a boolean field at the current index
func (b *Builder) AddBool(value bool) *Builder {
	return b.AddField(types.NewBoolField(value))
}

// AddFloat adds a float field at the current index
func (b *Builder) AddFloat(value float64) *Builder {
	return b.AddField(types.NewFloat64Field(value))
}

// AddInt64 adds an i64 field at the current index
func (b *Builder) AddInt64(value int64) *Builder {
	return b.AddField(types.NewInt64Field(value))
}

// AddNatural adds an arbitrary-precision natural at the current index
func (b *Builder) AddNatural(value *big.Int) *Builder {
	return b.AddField(types.NewNaturalField(value))
}

// AddAbsent adds an absent value for the optional column at the current index
func (b *Builder) AddAbsent() *Builder {
	if b.err != nil {
		return b
	}
	expected, err := b.schema.TypeAt(b.currentIndex)
	if err != nil {
		b.err = fmt.Errorf("field %d: %w", b.currentIndex, err)
		return b
	}
	return b.AddField(types.NewAbsentField(expected))
}

// AddText decodes text against the column type at the current index.
// row is the 1-based row number used in error reports.
func (b *Builder) AddText(row int, text string) *Builder {
	if b.err != nil {
		return b
	}
	expected, err := b.schema.TypeAt(b.currentIndex)
	if err != nil {
		b.err = fmt.Errorf("field %d: %w", b.currentIndex, err)
		return b
	}
	field, err := types.DecodeField(expected, text, row, b.currentIndex+1)
	if err != nil {
		b.err = err
		return b
	}
	return b.AddField(field)
}

// Build returns the constructed tuple or an error if any operation failed
func (b *Builder) Build() (*Tuple, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.currentIndex != b.schema.NumFields() {
		return nil, fmt.Errorf("incomplete tuple: expected %d fields, got %d",
			b.schema.NumFields(), b.currentIndex)
	}

	return &Tuple{schema: b.schema, fields: b.fields}, nil
}

// MustBuild returns the tuple or panics on error (use only when errors are impossible)
func (b *Builder) MustBuild() *Tuple {
	t, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("tuple builder error: %v", err))
	}
	return t
}
