package database

import (
	"context"
	"errors"
	"testing"

	"csvdb/pkg/command"
	dberror "csvdb/pkg/error"
	"csvdb/pkg/table"
	"csvdb/pkg/tuple"
	"csvdb/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory TableStore.
type memStore struct {
	tables map[string]*table.Table
	err    error
}

func newMemStore() *memStore {
	return &memStore{tables: make(map[string]*table.Table)}
}

func (s *memStore) Save(_ context.Context, path string, tbl *table.Table) error {
	if s.err != nil {
		return s.err
	}
	s.tables[path] = tbl
	return nil
}

func (s *memStore) Load(_ context.Context, path string) (*table.Table, error) {
	if s.err != nil {
		return nil, s.err
	}
	tbl, ok := s.tables[path]
	if !ok {
		return nil, dberror.ReadError(path+".schema", errors.New("not found"))
	}
	return tbl, nil
}

func applyLine(t *testing.T, store *memStore, tbl *table.Table, line string) Outcome {
	t.Helper()
	cmd, err := command.Parse(line, tbl)
	require.NoError(t, err)
	out, err := Apply(context.Background(), store, tbl, cmd)
	require.NoError(t, err)
	return out
}

func TestApply_Keywords(t *testing.T) {
	store := newMemStore()
	tbl := table.New(tuple.NewSchema(types.Bits8Type, types.StringType))

	assert.Equal(t, "b8,str", applyLine(t, store, tbl, "schema").Output)
	assert.Equal(t, "0", applyLine(t, store, tbl, "size").Output)
	assert.Equal(t, "b8 | str\n--------", applyLine(t, store, tbl, "table").Output)
	assert.Contains(t, applyLine(t, store, tbl, "help").Output, "query <col> <value>")

	out := applyLine(t, store, tbl, "quit")
	assert.True(t, out.Quit)
	assert.Same(t, tbl, out.Table)
}

func TestApply_ThreadsTable(t *testing.T) {
	store := newMemStore()
	tbl := table.New(tuple.NewSchema())

	tbl = applyLine(t, store, tbl, "new i8,str?").Table
	tbl = applyLine(t, store, tbl, "add 1,a").Table
	tbl = applyLine(t, store, tbl, "add -2,").Table
	tbl = applyLine(t, store, tbl, "add 3,a").Table
	require.Equal(t, 3, tbl.Size())

	out := applyLine(t, store, tbl, "query 1 a")
	assert.Equal(t, "i8 | str?\n---------\n3  | a   \n1  | a   ", out.Output)

	out = applyLine(t, store, tbl, "get 1")
	assert.Equal(t, "i8 | str?\n---------\n-2 |     ", out.Output)

	before := tbl
	out = applyLine(t, store, tbl, "delete 0")
	assert.Equal(t, 2, out.Table.Size())
	assert.Equal(t, 3, before.Size())
}

func TestApply_SaveLoad(t *testing.T) {
	store := newMemStore()
	tbl := table.New(tuple.NewSchema())
	tbl = applyLine(t, store, tbl, "new b8").Table
	tbl = applyLine(t, store, tbl, "add 7").Table

	out := applyLine(t, store, tbl, "save people")
	assert.Equal(t, "Saved 1 row(s) to people", out.Output)
	assert.Same(t, tbl, out.Table)

	empty := table.New(tuple.NewSchema())
	out = applyLine(t, store, empty, "load people")
	assert.Equal(t, "Loaded 1 row(s) from people", out.Output)
	assert.Equal(t, "b8", out.Table.Schema().String())
}

func TestApply_StoreErrors(t *testing.T) {
	store := newMemStore()
	tbl := table.New(tuple.NewSchema())

	cmd, err := command.Parse("load missing", tbl)
	require.NoError(t, err)
	_, err = Apply(context.Background(), store, tbl, cmd)
	assert.Equal(t, dberror.CodeReadError, dberror.CodeOf(err))

	store.err = dberror.WriteError("x.csv", errors.New("disk full"))
	cmd, err = command.Parse("save x", tbl)
	require.NoError(t, err)
	_, err = Apply(context.Background(), store, tbl, cmd)
	assert.Equal(t, dberror.CodeWriteError, dberror.CodeOf(err))

	_, err = Apply(context.Background(), nil, tbl, cmd)
	assert.Error(t, err)
}

func TestApply_StaleCommand(t *testing.T) {
	store := newMemStore()
	tbl := table.New(tuple.NewSchema())
	tbl = applyLine(t, store, tbl, "new b8").Table
	tbl = applyLine(t, store, tbl, "add 1").Table

	cmd, err := command.Parse("delete 0", tbl)
	require.NoError(t, err)

	emptied := applyLine(t, store, tbl, "delete 0").Table
	_, err = Apply(context.Background(), store, emptied, cmd)
	assert.Equal(t, dberror.CodeOutOfBounds, dberror.CodeOf(err))
}
