// Package command parses the line-oriented command language of csvdb.
//
// Each input line is one command:
//
//	schema | size | table | quit | help
//	new <type>,<type>,...
//	add <cell>,<cell>,...
//	get <n> | delete <n>
//	query <col> <value>
//	save <path> | load <path>
//
// Parse is pure. It needs the current table because rows, indices and query
// values are validated against its schema and size while parsing; applying
// a command is the job of csvdb/pkg/database.
package command
