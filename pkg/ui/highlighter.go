package ui

import (
	"strings"

	"csvdb/pkg/command"
	"csvdb/pkg/types"
	"csvdb/pkg/ui/base"

	"github.com/charmbracelet/lipgloss"
)

type tokenKind int

const (
	plainToken tokenKind = iota
	keywordToken
	numberToken
	typeToken
	badToken
)

type token struct {
	text string
	kind tokenKind
}

// CommandHighlighter colors a command line: the keyword, index arguments
// and the type tokens of a new schema.
type CommandHighlighter struct {
	keywords map[string]bool
	styles   map[tokenKind]lipgloss.Style
}

func NewCommandHighlighter() *CommandHighlighter {
	h := &CommandHighlighter{
		keywords: make(map[string]bool),
		styles: map[tokenKind]lipgloss.Style{
			plainToken:   lipgloss.NewStyle(),
			keywordToken: lipgloss.NewStyle().Foreground(base.AdaptiveKeyword).Bold(true),
			numberToken:  lipgloss.NewStyle().Foreground(base.AdaptiveNumber),
			typeToken:    lipgloss.NewStyle().Foreground(base.AdaptiveType),
			badToken:     lipgloss.NewStyle().Foreground(base.AdaptiveError).Underline(true),
		},
	}
	for _, kw := range command.Keywords() {
		h.keywords[kw] = true
	}
	return h
}

func (h *CommandHighlighter) Highlight(line string) string {
	var b strings.Builder
	for _, tok := range h.tokenize(line) {
		if tok.kind == plainToken {
			b.WriteString(tok.text)
			continue
		}
		b.WriteString(h.styles[tok.kind].Render(tok.text))
	}
	return b.String()
}

// tokenize splits line into tokens whose texts concatenate back to line.
func (h *CommandHighlighter) tokenize(line string) []token {
	keyword, rest, found := strings.Cut(line, " ")
	if !h.keywords[keyword] {
		return []token{{text: line, kind: plainToken}}
	}

	out := []token{{text: keyword, kind: keywordToken}}
	if !found {
		return out
	}
	out = append(out, token{text: " ", kind: plainToken})

	switch keyword {
	case "new":
		for i, text := range strings.Split(rest, ",") {
			if i > 0 {
				out = append(out, token{text: ",", kind: plainToken})
			}
			kind := typeToken
			if _, err := types.ParseType(i+1, text); err != nil {
				kind = badToken
			}
			out = append(out, token{text: text, kind: kind})
		}
	case "get", "delete":
		out = append(out, numberOrPlain(rest))
	case "query":
		col, value, hasValue := strings.Cut(rest, " ")
		out = append(out, numberOrPlain(col))
		if hasValue {
			out = append(out, token{text: " " + value, kind: plainToken})
		}
	default:
		out = append(out, token{text: rest, kind: plainToken})
	}
	return out
}

func numberOrPlain(s string) token {
	if isNumeric(s) {
		return token{text: s, kind: numberToken}
	}
	return token{text: s, kind: plainToken}
}

// isNumeric checks if a string is a run of decimal digits
func isNumeric(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}
