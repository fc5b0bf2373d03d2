package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	dberror "csvdb/pkg/error"
	"csvdb/pkg/table"
	"csvdb/pkg/tuple"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTable(t *testing.T, schemaLine string, lines ...string) *table.Table {
	t.Helper()

	schema, err := tuple.ParseSchema(schemaLine)
	require.NoError(t, err)

	tbl := table.New(schema)
	for i, line := range lines {
		row, err := tuple.DecodeRow(schema, i+1, line)
		require.NoError(t, err)
		tbl, err = tbl.Prepend(row)
		require.NoError(t, err)
	}
	return tbl
}

func encoded(tbl *table.Table) []string {
	out := make([]string, 0, tbl.Size())
	for _, r := range tbl.Rows() {
		out = append(out, tuple.EncodeRow(r))
	}
	return out
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestNewFileStore(t *testing.T) {
	assert.Equal(t, DefaultMaxLines, NewFileStore(0).MaxLines)
	assert.Equal(t, DefaultMaxLines, NewFileStore(-3).MaxLines)
	assert.Equal(t, 10, NewFileStore(10).MaxLines)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	base := filepath.Join(t.TempDir(), "people")
	store := NewFileStore(0)

	tbl := setupTable(t, "b8,str?,fin3,bigint,boolean", "1,alice,0,-12,t", "2,,2,99999999999999999999,f")
	require.NoError(t, store.Save(ctx, base, tbl))

	schemaData, err := os.ReadFile(base + SchemaExt)
	require.NoError(t, err)
	assert.Equal(t, "b8,str?,fin3,bigint,boolean\n", string(schemaData))

	csvData, err := os.ReadFile(base + RowsExt)
	require.NoError(t, err)
	assert.Equal(t, "2,,2,99999999999999999999,f\n1,alice,0,-12,t\n", string(csvData))

	loaded, err := store.Load(ctx, base)
	require.NoError(t, err)
	assert.True(t, tbl.Schema().Equals(loaded.Schema()))
	assert.Equal(t, encoded(tbl), encoded(loaded))
}

func TestSaveLoad_EmptyTable(t *testing.T) {
	ctx := context.Background()
	base := filepath.Join(t.TempDir(), "empty")
	store := NewFileStore(0)

	require.NoError(t, store.Save(ctx, base, table.New(tuple.NewSchema())))

	loaded, err := store.Load(ctx, base)
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.Schema().NumFields())
	assert.Equal(t, 0, loaded.Size())
}

func TestLoad_TrimsAndSkipsBlankLines(t *testing.T) {
	base := filepath.Join(t.TempDir(), "t")
	writeFile(t, base+SchemaExt, "  i8,str \n")
	writeFile(t, base+RowsExt, "\n 1,a \n\n\t-2,b\n\n")

	loaded, err := NewFileStore(0).Load(context.Background(), base)
	require.NoError(t, err)
	assert.Equal(t, []string{"1,a", "-2,b"}, encoded(loaded))
}

func TestLoad_RowErrorsUsePhysicalLineNumbers(t *testing.T) {
	base := filepath.Join(t.TempDir(), "t")
	writeFile(t, base+SchemaExt, "b8\n")
	writeFile(t, base+RowsExt, "1\n\n300\n")

	_, err := NewFileStore(0).Load(context.Background(), base)
	var dbErr *dberror.DBError
	require.ErrorAs(t, err, &dbErr)
	assert.Equal(t, dberror.CodeInvalidCell, dbErr.Code)
	assert.Equal(t, 3, dbErr.Row)
	assert.Equal(t, 1, dbErr.Column)
	assert.Equal(t, "b8", dbErr.Expected)
	assert.Equal(t, "300", dbErr.Text)
}

func TestLoad_BadSchema(t *testing.T) {
	base := filepath.Join(t.TempDir(), "t")
	writeFile(t, base+SchemaExt, "b8,b7\n")
	writeFile(t, base+RowsExt, "")

	_, err := NewFileStore(0).Load(context.Background(), base)
	assert.Equal(t, dberror.CodeUnknownType, dberror.CodeOf(err))
}

func TestLoad_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "missing")

	_, err := NewFileStore(0).Load(context.Background(), base)
	var dbErr *dberror.DBError
	require.ErrorAs(t, err, &dbErr)
	assert.Equal(t, dberror.CodeReadError, dbErr.Code)
	assert.True(t, strings.HasPrefix(dbErr.Path, base))
	assert.NotNil(t, dbErr.Cause)

	writeFile(t, base+SchemaExt, "b8\n")
	_, err = NewFileStore(0).Load(context.Background(), base)
	require.ErrorAs(t, err, &dbErr)
	assert.Equal(t, dberror.CodeReadError, dbErr.Code)
	assert.Equal(t, base+RowsExt, dbErr.Path)
}

func TestLoad_SizeLimit(t *testing.T) {
	base := filepath.Join(t.TempDir(), "t")
	writeFile(t, base+SchemaExt, "b8\n")
	writeFile(t, base+RowsExt, "1\n2\n3\n")

	loaded, err := NewFileStore(3).Load(context.Background(), base)
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.Size())

	_, err = NewFileStore(2).Load(context.Background(), base)
	var dbErr *dberror.DBError
	require.ErrorAs(t, err, &dbErr)
	assert.Equal(t, dberror.CodeSizeLimit, dbErr.Code)
	assert.Equal(t, base+RowsExt, dbErr.Path)
}

func TestLoad_BlankLinesCountTowardLimit(t *testing.T) {
	base := filepath.Join(t.TempDir(), "t")
	writeFile(t, base+SchemaExt, "b8\n")
	writeFile(t, base+RowsExt, "\n\n\n1\n")

	_, err := NewFileStore(3).Load(context.Background(), base)
	assert.Equal(t, dberror.CodeSizeLimit, dberror.CodeOf(err))
}

func TestSave_WriteError(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "no", "such", "dir", "t")

	err := NewFileStore(0).Save(context.Background(), base, setupTable(t, "b8", "1"))
	var dbErr *dberror.DBError
	require.ErrorAs(t, err, &dbErr)
	assert.Equal(t, dberror.CodeWriteError, dbErr.Code)
	assert.Equal(t, filepath.Dir(base), dbErr.Path)
	assert.Equal(t, "Save", dbErr.Operation)
	assert.Equal(t, "storage", dbErr.Component)
	assert.NotNil(t, dbErr.Cause)
}

func TestSave_ParentIsFile(t *testing.T) {
	dir := t.TempDir()
	parent := filepath.Join(dir, "plain")
	writeFile(t, parent, "x")

	err := NewFileStore(0).Save(context.Background(), filepath.Join(parent, "t"), setupTable(t, "b8", "1"))
	var dbErr *dberror.DBError
	require.ErrorAs(t, err, &dbErr)
	assert.Equal(t, dberror.CodeWriteError, dbErr.Code)
	assert.Equal(t, parent, dbErr.Path)
}

func TestSave_FailedRowsWriteKeepsOldSchema(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "t")
	writeFile(t, base+SchemaExt, "str\n")
	require.NoError(t, os.Mkdir(base+RowsExt, 0o755))

	err := NewFileStore(0).Save(context.Background(), base, setupTable(t, "b8", "1"))
	var dbErr *dberror.DBError
	require.ErrorAs(t, err, &dbErr)
	assert.Equal(t, dberror.CodeWriteError, dbErr.Code)
	assert.Equal(t, base+RowsExt, dbErr.Path)

	schemaData, err := os.ReadFile(base + SchemaExt)
	require.NoError(t, err)
	assert.Equal(t, "str\n", string(schemaData))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"t" + SchemaExt, "t" + RowsExt}, names)
}

func TestSave_OverwritesExistingPair(t *testing.T) {
	ctx := context.Background()
	base := filepath.Join(t.TempDir(), "t")
	store := NewFileStore(0)

	require.NoError(t, store.Save(ctx, base, setupTable(t, "str", "old")))
	require.NoError(t, store.Save(ctx, base, setupTable(t, "b8,b8", "1,2")))

	loaded, err := store.Load(ctx, base)
	require.NoError(t, err)
	assert.Equal(t, "b8,b8", loaded.Schema().String())
	assert.Equal(t, []string{"1,2"}, encoded(loaded))

	_, err = os.Stat(base + RowsExt + tempExt)
	assert.True(t, os.IsNotExist(err))
}

func TestSave_CanceledContext(t *testing.T) {
	base := filepath.Join(t.TempDir(), "t")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewFileStore(0).Save(ctx, base, setupTable(t, "b8", "1"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, dberror.CodeWriteError, dberror.CodeOf(err))

	_, statErr := os.Stat(base + SchemaExt)
	assert.True(t, os.IsNotExist(statErr))
}

func TestLoad_CanceledContext(t *testing.T) {
	base := filepath.Join(t.TempDir(), "t")
	writeFile(t, base+SchemaExt, "b8\n")
	writeFile(t, base+RowsExt, "1\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileStore(0).Load(ctx, base)
	assert.ErrorIs(t, err, context.Canceled)

	var dbErr *dberror.DBError
	require.ErrorAs(t, err, &dbErr)
	assert.Equal(t, dberror.CodeReadError, dbErr.Code)
	assert.Equal(t, "Load", dbErr.Operation)
	assert.Equal(t, "storage", dbErr.Component)
	assert.Contains(t, dbErr.Error(), "(operation: Load, component: storage)")
}
