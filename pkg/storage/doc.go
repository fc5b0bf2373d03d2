// Package storage persists tables as a pair of sister text files.
//
// A table saved under the base path p occupies two files:
//
//   - p.schema holds one line, the comma-separated column type tokens.
//   - p.csv holds one encoded row per line, in table order.
//
// Loading trims every line and ignores blank lines in the csv file. Each
// file may hold at most FileStore.MaxLines lines; a larger file aborts the
// load with a SIZE_LIMIT error. All file system failures surface as
// READ_ERROR or WRITE_ERROR values from csvdb/pkg/error, never as raw OS
// errors.
//
// Save stages both files as <file>.tmp and renames them into place, the
// csv file before the schema. A directory that does not exist is reported
// before anything is written.
//
// Load and Save never touch a table that already exists in memory: Load
// returns a fresh *table.Table, so a failed load leaves the caller's state
// as it was.
package storage
