package tuple

import (
	"testing"

	"csvdb/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Build(t *testing.T) {
	s := NewSchema(types.Int64Type, types.StringType)

	row, err := NewBuilder(s).AddInt64(42).AddString("alice").Build()
	require.NoError(t, err)

	assert.Same(t, s, row.Schema())
	assert.Equal(t, "42,alice", row.String())
}

func TestBuilder_Errors(t *testing.T) {
	s := NewSchema(types.Int64Type, types.StringType)

	tests := []struct {
		name  string
		build func() (*Tuple, error)
	}{
		{"type mismatch", func() (*Tuple, error) {
			return NewBuilder(s).AddString("x").AddString("y").Build()
		}},
		{"incomplete", func() (*Tuple, error) {
			return NewBuilder(s).AddInt64(1).Build()
		}},
		{"too many", func() (*Tuple, error) {
			return NewBuilder(s).AddInt64(1).AddString("a").AddString("b").Build()
		}},
		{"unencodable string", func() (*Tuple, error) {
			return NewBuilder(s).AddInt64(1).AddString("a,b").Build()
		}},
		{"empty string", func() (*Tuple, error) {
			return NewBuilder(s).AddInt64(1).AddString("").Build()
		}},
		{"nil field", func() (*Tuple, error) {
			return NewBuilder(s).AddField(nil).AddString("a").Build()
		}},
		{"typed nil field", func() (*Tuple, error) {
			var f *types.IntField
			return NewBuilder(s).AddField(f).AddString("a").Build()
		}},
		{"absent on primitive column", func() (*Tuple, error) {
			return NewBuilder(s).AddAbsent().AddString("a").Build()
		}},
		{"invalid text", func() (*Tuple, error) {
			return NewBuilder(s).AddText(1, "x").AddString("a").Build()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, err := tt.build()
			assert.Error(t, err)
			assert.Nil(t, row)
		})
	}
}

func TestBuilder_MustBuildPanics(t *testing.T) {
	s := NewSchema(types.BoolType)
	assert.Panics(t, func() { NewBuilder(s).MustBuild() })
	assert.NotPanics(t, func() { NewBuilder(s).AddBool(true).MustBuild() })
}

func TestTuple_FieldsIsACopy(t *testing.T) {
	s := NewSchema(types.BoolType)
	row := NewBuilder(s).AddBool(true).MustBuild()

	fields := row.Fields()
	fields[0] = types.NewBoolField(false)

	f, err := row.Field(0)
	require.NoError(t, err)
	assert.Equal(t, "t", f.String())

	_, err = row.Field(1)
	assert.Error(t, err)
}

func TestTuple_Equals(t *testing.T) {
	s := NewSchema(types.BoolType, types.StringType.Optional())
	a := NewBuilder(s).AddBool(true).AddAbsent().MustBuild()
	b := NewBuilder(s).AddBool(true).AddAbsent().MustBuild()
	c := NewBuilder(s).AddBool(false).AddAbsent().MustBuild()

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(nil))
}
