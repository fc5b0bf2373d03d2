package database

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"csvdb/pkg/command"
	"csvdb/pkg/storage"
	"csvdb/pkg/table"
)

// Outcome is the result of applying one command: the table to continue
// with, the response text and whether the session ends.
type Outcome struct {
	Table  *table.Table
	Output string
	Quit   bool
}

var errNoStore = errors.New("no table store configured")

// Apply runs cmd against tbl and returns the next state. tbl is never
// modified; on error the caller keeps tbl as it was.
//
// cmd must have been parsed against tbl. Save and load go through store.
func Apply(ctx context.Context, store storage.TableStore, tbl *table.Table, cmd command.Command) (Outcome, error) {
	out := Outcome{Table: tbl}

	switch c := cmd.(type) {
	case *command.KeywordCommand:
		switch c.Type {
		case command.PrintSchema:
			out.Output = FormatSchema(tbl.Schema())
		case command.PrintSize:
			out.Output = strconv.Itoa(tbl.Size())
		case command.PrintTable:
			out.Output = FormatTable(tbl.Schema(), tbl.Rows())
		case command.Help:
			out.Output = FormatUsage(command.Usages)
		case command.Quit:
			out.Output = "Goodbye!"
			out.Quit = true
		default:
			return Outcome{}, fmt.Errorf("unsupported command type: %s", c.Type)
		}

	case *command.NewTableCommand:
		out.Table = table.New(c.Schema)
		out.Output = fmt.Sprintf("Table created with schema %q", FormatSchema(c.Schema))

	case *command.PrependCommand:
		next, err := tbl.Prepend(c.Row)
		if err != nil {
			return Outcome{}, err
		}
		out.Table = next
		out.Output = fmt.Sprintf("Row added, size %d", next.Size())

	case *command.IndexCommand:
		switch c.Type {
		case command.Get:
			row, err := tbl.Get(c.Index)
			if err != nil {
				return Outcome{}, err
			}
			out.Output = FormatRow(row)
		case command.Delete:
			next, err := tbl.Delete(c.Index)
			if err != nil {
				return Outcome{}, err
			}
			out.Table = next
			out.Output = fmt.Sprintf("Row %d deleted, size %d", c.Index, next.Size())
		default:
			return Outcome{}, fmt.Errorf("unsupported command type: %s", c.Type)
		}

	case *command.QueryCommand:
		rows, err := tbl.QueryEq(c.Column, c.Value)
		if err != nil {
			return Outcome{}, err
		}
		out.Output = FormatTable(tbl.Schema(), rows)

	case *command.FileCommand:
		if store == nil {
			return Outcome{}, errNoStore
		}
		switch c.Type {
		case command.Save:
			if err := store.Save(ctx, c.Path, tbl); err != nil {
				return Outcome{}, err
			}
			out.Output = fmt.Sprintf("Saved %d row(s) to %s", tbl.Size(), c.Path)
		case command.Load:
			loaded, err := store.Load(ctx, c.Path)
			if err != nil {
				return Outcome{}, err
			}
			out.Table = loaded
			out.Output = fmt.Sprintf("Loaded %d row(s) from %s", loaded.Size(), c.Path)
		default:
			return Outcome{}, fmt.Errorf("unsupported command type: %s", c.Type)
		}

	default:
		return Outcome{}, fmt.Errorf("unsupported command: %T", cmd)
	}

	return out, nil
}
