package base

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PadString pads s with spaces to the given display width.
func PadString(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// TruncateString cuts s to maxWidth runes, ending with an ellipsis when cut.
func TruncateString(s string, maxWidth int) string {
	runes := []rune(s)
	if len(runes) <= maxWidth {
		return s
	}
	if maxWidth < 3 {
		return string(runes[:maxWidth])
	}
	return string(runes[:maxWidth-3]) + "..."
}

// KeyValueLines renders pairs as aligned "key  value" lines.
func KeyValueLines(pairs [][2]string) string {
	width := 0
	for _, p := range pairs {
		width = max(width, lipgloss.Width(p[0]))
	}
	lines := make([]string, len(pairs))
	for i, p := range pairs {
		lines[i] = PadString(p[0], width) + "  " + p[1]
	}
	return strings.Join(lines, "\n")
}
