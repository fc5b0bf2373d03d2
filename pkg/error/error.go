package error

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ErrorCategory classifies errors by their nature and appropriate handling strategy.
type ErrorCategory int

const (
	// ErrCategoryUser represents errors caused by invalid user input: malformed
	// schemas, rows or cells, unknown commands and out-of-range indices.
	// These errors are fixed by re-issuing the command with corrected input.
	ErrCategoryUser ErrorCategory = iota

	// ErrCategorySystem represents errors from the environment, such as files
	// that cannot be read or written.
	ErrCategorySystem

	// ErrCategoryData represents errors caused by persisted data that violates
	// a limit, e.g. a file with too many lines.
	ErrCategoryData
)

func (c ErrorCategory) String() string {
	switch c {
	case ErrCategoryUser:
		return "user"
	case ErrCategorySystem:
		return "system"
	case ErrCategoryData:
		return "data"
	default:
		return "unknown"
	}
}

// Error codes. There is exactly one code per failure mode.
const (
	CodeExpectedEndOfInput   = "EXPECTED_END_OF_INPUT"
	CodeUnexpectedEndOfInput = "UNEXPECTED_END_OF_INPUT"
	CodeInvalidCell          = "INVALID_CELL"
	CodeNoNat                = "NO_NAT"
	CodeOutOfBounds          = "OUT_OF_BOUNDS"
	CodeReadError            = "READ_ERROR"
	CodeWriteError           = "WRITE_ERROR"
	CodeSizeLimit            = "SIZE_LIMIT"
	CodeUnknownCommand       = "UNKNOWN_COMMAND"
	CodeUnknownType          = "UNKNOWN_TYPE"
)

// DBError represents a structured error with rich context information.
type DBError struct {
	// Code is a unique identifier for this error type (e.g., "INVALID_CELL").
	Code string

	// Category classifies the error for appropriate handling strategy.
	Category ErrorCategory

	// Message is a human-readable description of what went wrong.
	Message string

	// Detail provides additional context about the specific error instance.
	Detail string

	// Hint suggests how the user might fix or work around this error.
	Hint string

	// Operation identifies the operation that was being performed when the error occurred.
	// Examples: "DecodeRow", "ParseSchema", "Load".
	Operation string

	// Component identifies the system component where the error originated.
	Component string

	// Row and Column locate the offending input. Both are 1-based; zero means unset.
	// Positional errors that are not tied to a data row only set Column.
	Row    int
	Column int

	// Text is the offending input text.
	Text string

	// Expected names the column type that was expected, for cell errors.
	Expected string

	// Path is the file involved in I/O related errors.
	Path string

	// Size and Index are the table size and requested index of OUT_OF_BOUNDS errors.
	Size  uint64
	Index uint64

	// Cause is the underlying error that triggered this error.
	Cause error

	// Stack contains the call stack where this error was created.
	Stack []uintptr
}

// New creates a new DBError with the specified code, category, and message.
func New(category ErrorCategory, code, message string) *DBError {
	return &DBError{
		Code:     code,
		Category: category,
		Message:  message,
		Stack:    captureStack(),
	}
}

// Wrap wraps an existing error with operation and component context.
// If the error is already a DBError, it enriches the existing error
// (only if not already set).
func Wrap(err error, code, operation, component string) *DBError {
	if err == nil {
		return nil
	}

	var dbErr *DBError
	if errors.As(err, &dbErr) {
		if dbErr.Operation == "" {
			dbErr.Operation = operation
		}
		if dbErr.Component == "" {
			dbErr.Component = component
		}
		return dbErr
	}

	return &DBError{
		Code:      code,
		Category:  ErrCategorySystem,
		Message:   err.Error(),
		Operation: operation,
		Component: component,
		Cause:     err,
		Stack:     captureStack(),
	}
}

// ExpectedEndOfInput reports a row with more fields than its schema has columns.
// pos is the 1-based position of the first surplus field.
func ExpectedEndOfInput(pos int, text string) *DBError {
	err := New(ErrCategoryUser, CodeExpectedEndOfInput, "Expected end of input")
	err.Column = pos
	err.Text = text
	err.Detail = fmt.Sprintf("position %d, found %q", pos, text)
	return err
}

// UnexpectedEndOfInput reports a row with fewer fields than its schema has columns.
// pos is the 1-based position of the first missing field.
func UnexpectedEndOfInput(pos int, text string) *DBError {
	err := New(ErrCategoryUser, CodeUnexpectedEndOfInput, "Unexpected end of input")
	err.Column = pos
	err.Text = text
	err.Detail = fmt.Sprintf("position %d, missing field after %q", pos, text)
	return err
}

// InvalidCell reports cell text that does not decode as the column's type.
func InvalidCell(row, col int, expected, text string) *DBError {
	err := New(ErrCategoryUser, CodeInvalidCell, "Invalid value")
	err.Row = row
	err.Column = col
	err.Expected = expected
	err.Text = text
	err.Detail = fmt.Sprintf("line %d, column %d: expected type %s, value found %q", row, col, expected, text)
	return err
}

// NoNat reports an index token that is not a natural number.
func NoNat(text string) *DBError {
	err := New(ErrCategoryUser, CodeNoNat, "Not a natural number")
	err.Text = text
	err.Detail = fmt.Sprintf("%q", text)
	return err
}

// OutOfBounds reports an index that is not below size.
func OutOfBounds(size, index uint64) *DBError {
	err := New(ErrCategoryUser, CodeOutOfBounds, "Index out of bounds")
	err.Size = size
	err.Index = index
	err.Detail = fmt.Sprintf("size %d, index %d", size, index)
	return err
}

// ReadError reports a file that could not be read.
func ReadError(path string, cause error) *DBError {
	err := New(ErrCategorySystem, CodeReadError, "Error when reading file")
	err.Path = path
	err.Cause = cause
	err.Detail = path
	return err
}

// WriteError reports a file that could not be written.
func WriteError(path string, cause error) *DBError {
	err := New(ErrCategorySystem, CodeWriteError, "Error when writing file")
	err.Path = path
	err.Cause = cause
	err.Detail = path
	return err
}

// SizeLimit reports a file whose line count exceeds the read ceiling.
func SizeLimit(path string) *DBError {
	err := New(ErrCategoryData, CodeSizeLimit, "Size limit exceeded")
	err.Path = path
	err.Detail = path
	err.Hint = "split the file or raise the line limit"
	return err
}

// UnknownCommand reports input that matches no command.
func UnknownCommand(text string) *DBError {
	err := New(ErrCategoryUser, CodeUnknownCommand, "Unknown command")
	err.Text = text
	err.Detail = fmt.Sprintf("%q", text)
	err.Hint = "type help for a list of commands"
	return err
}

// UnknownType reports a schema token that names no column type.
func UnknownType(pos int, text string) *DBError {
	err := New(ErrCategoryUser, CodeUnknownType, "Unknown type")
	err.Column = pos
	err.Text = text
	err.Detail = fmt.Sprintf("position %d: %q", pos, text)
	return err
}

// CodeOf returns the code of the first DBError in err's chain, or "" if there is none.
func CodeOf(err error) string {
	var dbErr *DBError
	if errors.As(err, &dbErr) {
		return dbErr.Code
	}
	return ""
}

// captureStack captures the current call stack for debugging purposes.
// It skips the first 3 frames to exclude captureStack, New and the
// immediate caller.
func captureStack() []uintptr {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	return pcs[0:n]
}

// Error implements the standard Go error interface
//
// The format follows the pattern:
// [ERROR_CODE] Message: Detail (operation: Operation, component: Component) caused by: underlying error
func (e *DBError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Detail != "" {
		b.WriteString(fmt.Sprintf(": %s", e.Detail))
	}

	if e.Operation != "" {
		b.WriteString(fmt.Sprintf(" (operation: %s", e.Operation))
		if e.Component != "" {
			b.WriteString(fmt.Sprintf(", component: %s", e.Component))
		}
		b.WriteString(")")
	}

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(" caused by: %v", e.Cause))
	}

	return b.String()
}

// UserMessage renders the error as the single paragraph shown to an
// interactive user: message, detail, then hint.
func (e *DBError) UserMessage() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Cause != nil {
		b.WriteString(" (")
		b.WriteString(e.Cause.Error())
		b.WriteString(")")
	}
	b.WriteString(".")
	if e.Hint != "" {
		b.WriteString(" Hint: ")
		b.WriteString(e.Hint)
		b.WriteString(".")
	}
	return b.String()
}

// Unwrap returns the underlying cause error, enabling error chain traversal
// with Go's standard error handling functions like errors.Is and errors.As.
func (e *DBError) Unwrap() error {
	return e.Cause
}

// FormatStack returns a human-readable stack trace for debugging purposes.
func (e *DBError) FormatStack() string {
	if len(e.Stack) == 0 {
		return ""
	}

	var b strings.Builder
	frames := runtime.CallersFrames(e.Stack)

	b.WriteString("Stack trace:\n")
	for {
		f, more := frames.Next()
		b.WriteString(fmt.Sprintf("  %s\n    %s:%d\n",
			f.Function, f.File, f.Line))
		if !more {
			break
		}
	}

	return b.String()
}
