package table

import (
	"testing"

	dberror "csvdb/pkg/error"
	"csvdb/pkg/tuple"
	"csvdb/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTable(t *testing.T, schemaLine string, lines ...string) *Table {
	t.Helper()

	schema, err := tuple.ParseSchema(schemaLine)
	require.NoError(t, err)

	tbl := New(schema)
	for i, line := range lines {
		row, err := tuple.DecodeRow(schema, i+1, line)
		require.NoError(t, err)
		tbl, err = tbl.Prepend(row)
		require.NoError(t, err)
	}
	return tbl
}

func encoded(rows []*tuple.Tuple) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = tuple.EncodeRow(r)
	}
	return out
}

func TestNew(t *testing.T) {
	tbl := setupTable(t, "b8,str")
	assert.Equal(t, 0, tbl.Size())
	assert.Equal(t, "b8,str", tbl.Schema().String())
	assert.Empty(t, tbl.Rows())
}

func TestPrepend_IsAStack(t *testing.T) {
	tbl := setupTable(t, "b8,str", "1,a", "2,b", "3,c")

	assert.Equal(t, 3, tbl.Size())
	assert.Equal(t, []string{"3,c", "2,b", "1,a"}, encoded(tbl.Rows()))
}

func TestPrepend_LeavesReceiverUnchanged(t *testing.T) {
	before := setupTable(t, "b8", "1")
	row, err := tuple.DecodeRow(before.Schema(), 1, "2")
	require.NoError(t, err)

	after, err := before.Prepend(row)
	require.NoError(t, err)

	assert.Equal(t, 1, before.Size())
	assert.Equal(t, 2, after.Size())
}

func TestPrepend_RejectsForeignRow(t *testing.T) {
	tbl := setupTable(t, "b8")
	other := tuple.NewSchema(types.Bits16Type)
	row := tuple.NewBuilder(other).AddField(types.NewBits16Field(1)).MustBuild()

	_, err := tbl.Prepend(row)
	assert.Error(t, err)

	_, err = tbl.Prepend(nil)
	assert.Error(t, err)
}

func TestGet(t *testing.T) {
	tbl := setupTable(t, "b8", "1", "2")

	for i, want := range []string{"2", "1"} {
		row, err := tbl.Get(uint64(i))
		require.NoError(t, err)
		assert.Equal(t, want, tuple.EncodeRow(row))
	}

	for _, idx := range []uint64{2, 3, 1 << 63} {
		_, err := tbl.Get(idx)
		var dbErr *dberror.DBError
		require.ErrorAs(t, err, &dbErr)
		assert.Equal(t, dberror.CodeOutOfBounds, dbErr.Code)
		assert.Equal(t, uint64(2), dbErr.Size)
		assert.Equal(t, idx, dbErr.Index)
	}
}

func TestDelete(t *testing.T) {
	tbl := setupTable(t, "b8", "1", "2", "3")

	after, err := tbl.Delete(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "1"}, encoded(after.Rows()))
	assert.Equal(t, 3, tbl.Size())

	_, err = tbl.Delete(3)
	assert.Equal(t, dberror.CodeOutOfBounds, dberror.CodeOf(err))
}

func TestDelete_EmptyTableAlwaysFails(t *testing.T) {
	tbl := setupTable(t, "b8")

	_, err := tbl.Delete(0)
	var dbErr *dberror.DBError
	require.ErrorAs(t, err, &dbErr)
	assert.Equal(t, uint64(0), dbErr.Size)
	assert.Equal(t, uint64(0), dbErr.Index)
}

func TestIndexBounds(t *testing.T) {
	tbl := setupTable(t, "b8", "1", "2", "3", "4")
	size := uint64(tbl.Size())

	for i := uint64(0); i < size+3; i++ {
		_, getErr := tbl.Get(i)
		_, delErr := tbl.Delete(i)
		if i < size {
			assert.NoError(t, getErr)
			assert.NoError(t, delErr)
		} else {
			assert.Equal(t, dberror.CodeOutOfBounds, dberror.CodeOf(getErr))
			assert.Equal(t, dberror.CodeOutOfBounds, dberror.CodeOf(delErr))
		}
	}
}

func TestQueryEq(t *testing.T) {
	tbl := setupTable(t, "b8,str?", "1,a", "2,", "1,b", "3,a", "1,")

	one, err := types.DecodeField(types.Bits8Type, "1", 1, 1)
	require.NoError(t, err)
	rows, err := tbl.QueryEq(0, one)
	require.NoError(t, err)
	assert.Equal(t, []string{"1,", "1,b", "1,a"}, encoded(rows))

	absent := types.NewAbsentField(types.StringType)
	rows, err = tbl.QueryEq(1, absent)
	require.NoError(t, err)
	assert.Equal(t, []string{"1,", "2,"}, encoded(rows))

	a, err := types.DecodeField(types.StringType.Optional(), "a", 1, 2)
	require.NoError(t, err)
	rows, err = tbl.QueryEq(1, a)
	require.NoError(t, err)
	assert.Equal(t, []string{"3,a", "1,a"}, encoded(rows))
}

func TestQueryEq_SubsetAndIdempotent(t *testing.T) {
	tbl := setupTable(t, "i8,boolean", "1,t", "2,f", "3,t", "4,f", "5,t")
	value := types.NewBoolField(true)

	first, err := tbl.QueryEq(1, value)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(first), tbl.Size())

	sub, err := FromRows(tbl.Schema(), first)
	require.NoError(t, err)
	second, err := sub.QueryEq(1, value)
	require.NoError(t, err)
	assert.Equal(t, encoded(first), encoded(second))
	assert.Equal(t, []string{"5,t", "3,t", "1,t"}, encoded(second))
}

func TestQueryEq_BadColumn(t *testing.T) {
	tbl := setupTable(t, "b8", "1")

	_, err := tbl.QueryEq(1, types.NewBits8Field(1))
	assert.Equal(t, dberror.CodeOutOfBounds, dberror.CodeOf(err))
}

func TestFromRows(t *testing.T) {
	src := setupTable(t, "b8", "1", "2")

	tbl, err := FromRows(src.Schema(), src.Rows())
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1"}, encoded(tbl.Rows()))

	_, err = FromRows(tuple.NewSchema(types.StringType), src.Rows())
	assert.Error(t, err)
}
