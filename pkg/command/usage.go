package command

import (
	"strings"

	"csvdb/pkg/utils/functools"
)

// Usage describes one entry of the command language.
type Usage struct {
	Syntax      string
	Description string
}

// Usages lists every command in the order help prints them.
var Usages = []Usage{
	{"schema", "print the current schema"},
	{"size", "print the number of rows"},
	{"table", "print the whole table"},
	{"new <types>", "replace the table with an empty one, e.g. new b8,str?,fin3"},
	{"add <row>", "decode a row against the schema and add it in front"},
	{"get <n>", "print the row at 0-based index n"},
	{"delete <n>", "remove the row at index n"},
	{"query <col> <value>", "print the rows whose column col equals value"},
	{"save <path>", "write <path>.schema and <path>.csv"},
	{"load <path>", "read <path>.schema and <path>.csv and replace the table"},
	{"help", "print this list"},
	{"quit", "leave the session"},
}

// Keywords returns the command keywords in Usages order.
func Keywords() []string {
	return functools.Map(Usages, func(u Usage) string {
		keyword, _, _ := strings.Cut(u.Syntax, " ")
		return keyword
	})
}
