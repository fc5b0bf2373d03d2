package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"csvdb/pkg/database"
	"csvdb/pkg/ui/base"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const prompt = "csv> "

// Model represents the application state
type Model struct {
	database    *database.Database
	input       textinput.Model
	transcript  viewport.Model
	help        help.Model
	highlighter *CommandHighlighter

	width     int
	height    int
	executing bool
	showHelp  bool
	entries   []string

	history    []string
	historyPos int

	lastDuration time.Duration
	keys         keyMap
}

func NewModel(db *database.Database) Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = "type a command, e.g. new b8,str"
	ti.CharLimit = 4096
	ti.PromptStyle = promptStyle
	ti.PlaceholderStyle = mutedStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(textPrimary)
	ti.Focus()

	vp := viewport.New(80, 10)
	vp.Style = transcriptStyle

	return Model{
		database:    db,
		input:       ti,
		transcript:  vp,
		help:        help.New(),
		highlighter: NewCommandHighlighter(),
		keys:        keys,
		history:     make([]string, 0),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()

	case tea.KeyMsg:
		if m.executing {
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Execute):
			line := m.input.Value()
			m.input.Reset()
			if strings.TrimSpace(line) == "" {
				return m, nil
			}
			m.executing = true
			return m, m.executeCommand(line)

		case key.Matches(msg, m.keys.ShowTable):
			m.executing = true
			return m, m.executeCommand("table")

		case key.Matches(msg, m.keys.ShowStats):
			m.appendEntry(m.renderStatistics())
			return m, nil

		case key.Matches(msg, m.keys.Clear):
			m.entries = nil
			m.refreshTranscript()
			return m, nil

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.Previous):
			m.recall(-1)
			return m, nil

		case key.Matches(msg, m.keys.Next):
			m.recall(1)
			return m, nil

		case key.Matches(msg, m.keys.PageUp, m.keys.PageDown):
			var cmd tea.Cmd
			m.transcript, cmd = m.transcript.Update(msg)
			return m, cmd
		}

	case commandResultMsg:
		m.executing = false
		m.lastDuration = msg.duration
		m.history = append(m.history, msg.line)
		m.historyPos = len(m.history)
		m.appendEntry(m.renderResult(msg))
		if msg.result.Quit {
			return m, tea.Quit
		}
		return m, nil
	}

	if !m.executing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	sections := []string{
		m.renderHeader(),
		m.transcript.View(),
		inputStyle.Render(m.input.View()),
		m.renderStatusBar(),
	}

	if m.showHelp {
		sections = append(sections, helpStyle.Render(m.help.View(m.keys)))
	}

	return appStyle.Render(strings.Join(sections, "\n"))
}

func (m Model) renderHeader() string {
	info := m.database.GetStatistics()

	schema := info.Schema
	if schema == "" {
		schema = "(empty schema)"
	}

	title := titleStyle.Render("csvdb")
	badge := schemaBadgeStyle.Render(base.TruncateString(schema, 40))
	counts := lipgloss.NewStyle().
		Foreground(textSecondary).
		Render(fmt.Sprintf("Rows: %d | Commands: %d | Errors: %d",
			info.Size, info.CommandsExecuted, info.ErrorCount))

	return lipgloss.JoinHorizontal(lipgloss.Left, title, "  ", badge, "  ", counts)
}

func (m Model) renderStatusBar() string {
	status := lipgloss.NewStyle().Foreground(accentColor).Render("● Ready")
	if m.executing {
		status = lipgloss.NewStyle().Foreground(palette.Warning).Render("● Running")
	}

	timer := ""
	if m.lastDuration > 0 {
		timer = fmt.Sprintf(" | Last command: %v", m.lastDuration.Round(time.Microsecond))
	}

	content := status + mutedStyle.Render(timer+" | "+m.help.ShortHelpView(m.keys.ShortHelp()))

	width := m.width - 4
	if width < 0 {
		width = 0
	}
	return statusBarStyle.Width(width).Render(content)
}

func (m Model) renderResult(msg commandResultMsg) string {
	echo := promptStyle.Render(prompt) + m.highlighter.Highlight(msg.line)
	if !msg.result.Success {
		return echo + "\n" + errorTextStyle.Render(msg.result.Output)
	}
	if msg.result.Output == "" {
		return echo
	}
	return echo + "\n" + outputStyle.Render(msg.result.Output)
}

func (m Model) renderStatistics() string {
	info := m.database.GetStatistics()
	return mutedStyle.Render("session statistics") + "\n" + base.KeyValueLines([][2]string{
		{"Schema", info.Schema},
		{"Rows", strconv.Itoa(info.Size)},
		{"Commands executed", strconv.FormatInt(info.CommandsExecuted, 10)},
		{"Errors", strconv.FormatInt(info.ErrorCount, 10)},
		{"Tables replaced", strconv.FormatInt(info.TablesReplaced, 10)},
	})
}

func (m *Model) appendEntry(entry string) {
	m.entries = append(m.entries, entry)
	m.refreshTranscript()
}

func (m *Model) refreshTranscript() {
	m.transcript.SetContent(strings.Join(m.entries, "\n\n"))
	m.transcript.GotoBottom()
}

// recall moves through the command history; past the newest entry the
// input is cleared.
func (m *Model) recall(delta int) {
	if len(m.history) == 0 {
		return
	}
	pos := m.historyPos + delta
	switch {
	case pos < 0:
		pos = 0
	case pos >= len(m.history):
		m.historyPos = len(m.history)
		m.input.SetValue("")
		return
	}
	m.historyPos = pos
	m.input.SetValue(m.history[pos])
	m.input.CursorEnd()
}

// updateLayout adjusts component sizes based on window size
func (m *Model) updateLayout() {
	reserved := 10
	if m.showHelp {
		reserved += 6
	}
	height := m.height - reserved
	if height < 3 {
		height = 3
	}

	m.input.Width = m.width - 10 - len(prompt)
	m.transcript.Width = m.width - 4
	m.transcript.Height = height
	m.help.Width = m.width - 4
}

type commandResultMsg struct {
	line     string
	result   database.QueryResult
	duration time.Duration
}

func (m Model) executeCommand(line string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		result, _ := m.database.Execute(context.Background(), line)
		return commandResultMsg{
			line:     line,
			result:   result,
			duration: time.Since(start),
		}
	}
}
