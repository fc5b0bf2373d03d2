package database

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"csvdb/pkg/command"
	"csvdb/pkg/tuple"
	"csvdb/pkg/types"
	"csvdb/pkg/utils/functools"
)

const (
	columnJoiner    = " | "
	separatorJoiner = "---"
)

// FormatSchema renders the schema as its comma-joined type tokens.
func FormatSchema(schema *tuple.Schema) string {
	return schema.String()
}

// FormatRow renders a single row as a one-row table.
func FormatRow(row *tuple.Tuple) string {
	return FormatTable(row.Schema(), []*tuple.Tuple{row})
}

// FormatTable renders rows as a text grid. The header holds the column type
// tokens and is followed by a dashed separator. Every cell is right-padded
// to the widest entry of its column, header included.
//
//	b8 | str
//	--------
//	12 | hello
func FormatTable(schema *tuple.Schema, rows []*tuple.Tuple) string {
	header := functools.Map(schema.Types(), func(t types.Type) string { return t.String() })
	cells := functools.Map(rows, func(row *tuple.Tuple) []string {
		return functools.Map(row.Fields(), func(f types.Field) string { return f.String() })
	})
	return formatGrid(header, cells)
}

func formatGrid(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := utf8.RuneCountInString(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, formatLine(header, widths))

	dashes := functools.Map(widths, func(w int) string { return strings.Repeat("-", w) })
	lines = append(lines, strings.Join(dashes, separatorJoiner))

	for _, row := range rows {
		lines = append(lines, formatLine(row, widths))
	}
	return strings.Join(lines, "\n")
}

func formatLine(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = fmt.Sprintf("%-*s", widths[i], cell)
	}
	return strings.Join(padded, columnJoiner)
}

// FormatUsage renders the command list printed by help.
func FormatUsage(usages []command.Usage) string {
	width := functools.Reduce(usages, 0, func(acc int, u command.Usage) int {
		return max(acc, utf8.RuneCountInString(u.Syntax))
	})
	lines := functools.Map(usages, func(u command.Usage) string {
		return fmt.Sprintf("  %-*s  %s", width, u.Syntax, u.Description)
	})
	return "Commands:\n" + strings.Join(lines, "\n")
}
