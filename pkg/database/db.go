package database

import (
	"context"
	"errors"
	"strings"
	"sync"

	"csvdb/pkg/command"
	dberror "csvdb/pkg/error"
	"csvdb/pkg/logging"
	"csvdb/pkg/storage"
	"csvdb/pkg/table"
	"csvdb/pkg/tuple"
)

// Database is one interactive session: the current table, the store used
// by save and load, and session statistics.
type Database struct {
	store storage.TableStore
	table *table.Table

	mutex sync.RWMutex
	stats *DatabaseStats
}

// DatabaseStats tracks session counters
type DatabaseStats struct {
	CommandsExecuted int64
	ErrorCount       int64
	TablesReplaced   int64
	mutex            sync.RWMutex
}

// QueryResult represents the result of executing one input line
type QueryResult struct {
	Command command.CommandType
	Success bool
	Output  string
	Quit    bool
	Error   error
}

// DatabaseInfo contains session metadata
type DatabaseInfo struct {
	Schema           string
	Size             int
	CommandsExecuted int64
	ErrorCount       int64
	TablesReplaced   int64
}

// NewDatabase starts a session with an empty table of empty schema.
func NewDatabase(store storage.TableStore) *Database {
	return &Database{
		store: store,
		table: table.New(tuple.NewSchema()),
		stats: &DatabaseStats{},
	}
}

// Execute parses and applies one input line. The returned result always
// carries the response text; for a failed command Output holds the user
// message and the error is also returned. A failed command leaves the
// table unchanged.
func (db *Database) Execute(ctx context.Context, line string) (QueryResult, error) {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	keyword, _, _ := strings.Cut(strings.TrimSpace(line), " ")
	log := logging.WithCommand(keyword)
	log.Debug("executing", "line", line)

	cmd, err := command.Parse(line, db.table)
	if err != nil {
		return db.fail(line, err)
	}

	out, err := Apply(ctx, db.store, db.table, cmd)
	if err != nil {
		res, err := db.fail(line, err)
		res.Command = cmd.GetType()
		return res, err
	}

	if cmd.GetType().Mutates() {
		log.Info("table replaced", "schema", out.Table.Schema().String(), "size", out.Table.Size())
		db.recordReplacement()
	}
	db.table = out.Table
	db.recordSuccess()
	log.Debug("applied", "size", db.table.Size())

	return QueryResult{
		Command: cmd.GetType(),
		Success: true,
		Output:  out.Output,
		Quit:    out.Quit,
	}, nil
}

func (db *Database) fail(line string, err error) (QueryResult, error) {
	db.recordError()
	log := logging.WithError(err)
	log.Warn("command failed", "line", line, "code", dberror.CodeOf(err))
	var dbErr *dberror.DBError
	if errors.As(err, &dbErr) {
		log.Debug("error origin", "stack", dbErr.FormatStack())
	}
	return QueryResult{
		Success: false,
		Output:  ErrorMessage(err),
		Error:   err,
	}, err
}

// ErrorMessage renders err as the one-paragraph text shown to the user.
func ErrorMessage(err error) string {
	var dbErr *dberror.DBError
	if errors.As(err, &dbErr) {
		return "Error: " + dbErr.UserMessage()
	}
	return "Error: " + err.Error()
}

// Table returns the current table.
func (db *Database) Table() *table.Table {
	db.mutex.RLock()
	defer db.mutex.RUnlock()
	return db.table
}

// recordError updates error statistics
func (db *Database) recordError() {
	db.stats.mutex.Lock()
	db.stats.ErrorCount++
	db.stats.mutex.Unlock()
}

// recordSuccess updates success statistics
func (db *Database) recordSuccess() {
	db.stats.mutex.Lock()
	db.stats.CommandsExecuted++
	db.stats.mutex.Unlock()
}

func (db *Database) recordReplacement() {
	db.stats.mutex.Lock()
	db.stats.TablesReplaced++
	db.stats.mutex.Unlock()
}

// GetStatistics returns current session statistics
func (db *Database) GetStatistics() DatabaseInfo {
	tbl := db.Table()

	db.stats.mutex.RLock()
	defer db.stats.mutex.RUnlock()

	return DatabaseInfo{
		Schema:           FormatSchema(tbl.Schema()),
		Size:             tbl.Size(),
		CommandsExecuted: db.stats.CommandsExecuted,
		ErrorCount:       db.stats.ErrorCount,
		TablesReplaced:   db.stats.TablesReplaced,
	}
}
