package command

import (
	"fmt"

	"csvdb/pkg/tuple"
	"csvdb/pkg/types"
)

type CommandType int

const (
	PrintSchema CommandType = iota
	PrintSize
	PrintTable
	NewTable
	Prepend
	Get
	Delete
	Query
	Save
	Load
	Quit
	Help
)

func (ct CommandType) String() string {
	switch ct {
	case PrintSchema:
		return "schema"
	case PrintSize:
		return "size"
	case PrintTable:
		return "table"
	case NewTable:
		return "new"
	case Prepend:
		return "add"
	case Get:
		return "get"
	case Delete:
		return "delete"
	case Query:
		return "query"
	case Save:
		return "save"
	case Load:
		return "load"
	case Quit:
		return "quit"
	case Help:
		return "help"
	default:
		return "unknown"
	}
}

// Mutates reports whether applying the command can replace the current table.
func (ct CommandType) Mutates() bool {
	return ct == NewTable || ct == Prepend || ct == Delete || ct == Load
}

// Command is a parsed input line. A command that carries a row, an index or
// a value is only valid against the table it was parsed for.
type Command interface {
	// GetType returns the type of the command
	GetType() CommandType
	// String returns the command in input syntax
	String() string
}

// KeywordCommand is a command without arguments: schema, size, table, quit
// and help.
type KeywordCommand struct {
	Type CommandType
}

func (c *KeywordCommand) GetType() CommandType { return c.Type }
func (c *KeywordCommand) String() string       { return c.Type.String() }

// NewTableCommand replaces the table with an empty one of Schema.
type NewTableCommand struct {
	Schema *tuple.Schema
}

func (c *NewTableCommand) GetType() CommandType { return NewTable }
func (c *NewTableCommand) String() string {
	return fmt.Sprintf("new %s", c.Schema)
}

// PrependCommand adds Row in front of the table.
type PrependCommand struct {
	Row *tuple.Tuple
}

func (c *PrependCommand) GetType() CommandType { return Prepend }
func (c *PrependCommand) String() string {
	return fmt.Sprintf("add %s", tuple.EncodeRow(c.Row))
}

// IndexCommand addresses one row by 0-based index; it is either get or delete.
type IndexCommand struct {
	Type  CommandType
	Index uint64
}

func (c *IndexCommand) GetType() CommandType { return c.Type }
func (c *IndexCommand) String() string {
	return fmt.Sprintf("%s %d", c.Type, c.Index)
}

// QueryCommand selects the rows whose Column equals Value.
type QueryCommand struct {
	Column int
	Value  types.Field
}

func (c *QueryCommand) GetType() CommandType { return Query }
func (c *QueryCommand) String() string {
	return fmt.Sprintf("query %d %s", c.Column, types.EncodeField(c.Value))
}

// FileCommand names the base path of a save or load.
type FileCommand struct {
	Type CommandType
	Path string
}

func (c *FileCommand) GetType() CommandType { return c.Type }
func (c *FileCommand) String() string {
	return fmt.Sprintf("%s %s", c.Type, c.Path)
}
