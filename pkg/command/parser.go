package command

import (
	"strconv"
	"strings"

	dberror "csvdb/pkg/error"
	"csvdb/pkg/table"
	"csvdb/pkg/tuple"
)

var keywords = map[string]CommandType{
	"schema": PrintSchema,
	"size":   PrintSize,
	"table":  PrintTable,
	"quit":   Quit,
	"help":   Help,
}

// Parse turns one input line into a Command checked against tbl.
//
// The line is trimmed and split at its first space into a keyword and an
// argument. Rows, indices and query values are decoded against tbl's schema
// and size, so the result must be applied to tbl (or a table of the same
// schema and size).
func Parse(line string, tbl *table.Table) (Command, error) {
	trimmed := strings.TrimSpace(line)
	keyword, arg, _ := strings.Cut(trimmed, " ")

	if ct, ok := keywords[trimmed]; ok {
		return &KeywordCommand{Type: ct}, nil
	}

	switch keyword {
	case "new":
		schema, err := tuple.ParseSchema(arg)
		if err != nil {
			return nil, err
		}
		return &NewTableCommand{Schema: schema}, nil

	case "add":
		row, err := tuple.DecodeRow(tbl.Schema(), 1, arg)
		if err != nil {
			return nil, err
		}
		return &PrependCommand{Row: row}, nil

	case "get", "delete":
		index, err := parseIndex(arg, uint64(tbl.Size()))
		if err != nil {
			return nil, err
		}
		ct := Get
		if keyword == "delete" {
			ct = Delete
		}
		return &IndexCommand{Type: ct, Index: index}, nil

	case "query":
		return parseQuery(arg, tbl)

	case "save", "load":
		if arg == "" {
			break
		}
		ct := Save
		if keyword == "load" {
			ct = Load
		}
		return &FileCommand{Type: ct, Path: arg}, nil
	}

	return nil, dberror.UnknownCommand(trimmed)
}

func parseQuery(arg string, tbl *table.Table) (Command, error) {
	indexText, valueText, _ := strings.Cut(arg, " ")

	col, err := parseIndex(indexText, uint64(tbl.Schema().NumFields()))
	if err != nil {
		return nil, err
	}
	value, err := tuple.DecodeValue(tbl.Schema(), int(col), valueText)
	if err != nil {
		return nil, err
	}
	return &QueryCommand{Column: int(col), Value: value}, nil
}

// parseIndex parses a decimal natural number and checks it against size.
func parseIndex(text string, size uint64) (uint64, error) {
	if text == "" || strings.ContainsAny(text, "+-") {
		return 0, dberror.NoNat(text)
	}
	index, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, dberror.NoNat(text)
	}
	if index >= size {
		return 0, dberror.OutOfBounds(size, index)
	}
	return index, nil
}
