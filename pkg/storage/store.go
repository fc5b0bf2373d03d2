package storage

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	dberror "csvdb/pkg/error"
	"csvdb/pkg/logging"
	"csvdb/pkg/primitives"
	"csvdb/pkg/table"
	"csvdb/pkg/tuple"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultMaxLines is the per-file line ceiling applied by Load.
	DefaultMaxLines = 1_000_000

	SchemaExt = ".schema"
	RowsExt   = ".csv"

	maxLineBytes = 1 << 20
	tempExt      = ".tmp"
	component    = "storage"
)

// TableStore saves and loads whole tables by base path.
type TableStore interface {
	Save(ctx context.Context, path string, tbl *table.Table) error
	Load(ctx context.Context, path string) (*table.Table, error)
}

// FileStore is a TableStore backed by the local file system.
type FileStore struct {
	MaxLines int
}

// NewFileStore returns a FileStore with the given line ceiling.
// A non-positive maxLines selects DefaultMaxLines.
func NewFileStore(maxLines int) *FileStore {
	if maxLines <= 0 {
		maxLines = DefaultMaxLines
	}
	return &FileStore{MaxLines: maxLines}
}

// Save writes tbl to <path>.schema and <path>.csv. Both files are staged
// as temporaries and renamed into place, csv first, so a failed write never
// leaves a new schema beside old rows.
func (s *FileStore) Save(ctx context.Context, path string, tbl *table.Table) error {
	base := primitives.Filepath(path)
	log := logging.WithComponent(component).With("path", path)

	if err := checkDir(base); err != nil {
		log.Warn("save failed", "error", err)
		return dberror.Wrap(err, dberror.CodeWriteError, "Save", component)
	}

	rows := make([]string, 0, tbl.Size())
	for _, row := range tbl.Rows() {
		rows = append(rows, tuple.EncodeRow(row))
	}

	rowsPath, schemaPath := base.Sister(RowsExt), base.Sister(SchemaExt)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return writeLines(gctx, rowsPath.Sister(tempExt), rows)
	})
	g.Go(func() error {
		return writeLines(gctx, schemaPath.Sister(tempExt), []string{tbl.Schema().String()})
	})
	err := g.Wait()
	if err == nil {
		err = commit(rowsPath)
	}
	if err == nil {
		err = commit(schemaPath)
	}
	if err != nil {
		removeTemp(rowsPath)
		removeTemp(schemaPath)
		log.Warn("save failed", "error", err)
		return dberror.Wrap(err, dberror.CodeWriteError, "Save", component)
	}

	log.Info("table saved", "schema", tbl.Schema().String(), "rows", len(rows))
	return nil
}

// Load reads <path>.schema and <path>.csv concurrently and builds a new
// table from them. Row errors report the physical line number in the csv
// file.
func (s *FileStore) Load(ctx context.Context, path string) (*table.Table, error) {
	base := primitives.Filepath(path)
	log := logging.WithComponent(component).With("path", path)
	maxLines := s.MaxLines
	if maxLines <= 0 {
		maxLines = DefaultMaxLines
	}

	var schemaLines, rowLines []string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		schemaLines, err = readLines(gctx, base.Sister(SchemaExt), maxLines)
		return err
	})
	g.Go(func() error {
		var err error
		rowLines, err = readLines(gctx, base.Sister(RowsExt), maxLines)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Warn("load failed", "error", err)
		return nil, dberror.Wrap(err, dberror.CodeReadError, "Load", component)
	}

	schemaLine := ""
	if len(schemaLines) > 0 {
		schemaLine = strings.TrimSpace(schemaLines[0])
	}
	schema, err := tuple.ParseSchema(schemaLine)
	if err != nil {
		return nil, err
	}

	rows := make([]*tuple.Tuple, 0, len(rowLines))
	for i, line := range rowLines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row, err := tuple.DecodeRow(schema, i+1, line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	tbl, err := table.FromRows(schema, rows)
	if err != nil {
		return nil, err
	}
	log.Info("table loaded", "schema", schema.String(), "rows", tbl.Size())
	return tbl, nil
}

func readLines(ctx context.Context, path primitives.Filepath, maxLines int) ([]string, error) {
	file, err := os.Open(path.String())
	if err != nil {
		return nil, dberror.ReadError(path.String(), err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []string
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, dberror.ReadError(path.String(), err)
		}
		if len(lines) == maxLines {
			return nil, dberror.SizeLimit(path.String())
		}
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, dberror.ReadError(path.String(), err)
	}
	return lines, nil
}

func writeLines(ctx context.Context, path primitives.Filepath, lines []string) (err error) {
	if err := ctx.Err(); err != nil {
		return dberror.WriteError(path.String(), err)
	}

	file, err := os.Create(path.String())
	if err != nil {
		return dberror.WriteError(path.String(), err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = dberror.WriteError(path.String(), cerr)
		}
	}()

	w := bufio.NewWriter(file)
	for _, line := range lines {
		if _, werr := w.WriteString(line + "\n"); werr != nil {
			return dberror.WriteError(path.String(), werr)
		}
	}
	if ferr := w.Flush(); ferr != nil {
		return dberror.WriteError(path.String(), ferr)
	}
	return nil
}

// checkDir reports a WRITE_ERROR unless the directory holding base exists.
func checkDir(base primitives.Filepath) error {
	dir := base.Dir()
	info, err := os.Stat(dir)
	if err != nil {
		return dberror.WriteError(dir, err)
	}
	if !info.IsDir() {
		return dberror.WriteError(dir, fmt.Errorf("%s is not a directory", dir))
	}
	return nil
}

// commit renames the staged temporary of path over path.
func commit(path primitives.Filepath) error {
	if err := os.Rename(path.Sister(tempExt).String(), path.String()); err != nil {
		return dberror.WriteError(path.String(), err)
	}
	return nil
}

func removeTemp(path primitives.Filepath) {
	_ = os.Remove(path.Sister(tempExt).String())
}
