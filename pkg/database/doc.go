// Package database runs the csvdb command loop state.
//
// Apply is the pure transition function: given the current table and a
// parsed command it returns the next table and the response text. Database
// wraps it for interactive use, keeping the current table between lines,
// counting commands and errors, and turning errors into user messages.
// Execute is the only place where an error becomes text.
package database
