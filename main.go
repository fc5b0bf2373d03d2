package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"csvdb/pkg/command"
	"csvdb/pkg/database"
	"csvdb/pkg/logging"
	"csvdb/pkg/storage"
	"csvdb/pkg/ui"
	"csvdb/pkg/ui/base"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"
)

const (
	prompt             = "csv> "
	defaultHistoryFile = ".csvdb_history"
)

type Configuration struct {
	LoadPath    string
	TUI         bool
	HistoryPath string
	LogLevel    logging.LogLevel
	LogFile     string
	LogFormat   string
	MaxLines    int
}

var (
	errorStyle   = lipgloss.NewStyle().Foreground(base.AdaptiveError)
	warningStyle = lipgloss.NewStyle().Foreground(base.AdaptiveWarning)
	changeStyle  = lipgloss.NewStyle().Foreground(base.AdaptiveSuccess)
	savedStyle   = lipgloss.NewStyle().Foreground(base.AdaptiveSecondary)
	plainStyle   = lipgloss.NewStyle()
)

func main() {
	config, err := parseArguments(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := logging.Init(logging.Config{
		Level:      config.LogLevel,
		OutputPath: config.LogFile,
		Format:     config.LogFormat,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	db := database.NewDatabase(storage.NewFileStore(config.MaxLines))

	if config.TUI {
		err = startInteractiveMode(ctx, db, config)
	} else {
		err = runREPL(ctx, db, config)
	}
	if err != nil {
		logging.WithError(err).Error("session ended with error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

// parseArguments processes command-line flags
func parseArguments(args []string) (Configuration, error) {
	var config Configuration
	var level string

	home, _ := os.UserHomeDir()
	defaultHistory := ""
	if home != "" {
		defaultHistory = filepath.Join(home, defaultHistoryFile)
	}

	fs := flag.NewFlagSet("csvdb", flag.ContinueOnError)
	fs.StringVar(&config.LoadPath, "load", "", "Table to load on startup (base path without .schema/.csv)")
	fs.BoolVar(&config.TUI, "tui", false, "Run the full-screen terminal interface")
	fs.StringVar(&config.HistoryPath, "history", defaultHistory, "Command history file, empty to disable")
	fs.StringVar(&level, "log-level", string(logging.LevelWarn), "Log level: debug, info, warn or error")
	fs.StringVar(&config.LogFile, "log-file", "", "Log file path (default stderr)")
	fs.StringVar(&config.LogFormat, "log-format", "text", "Log format: text or json")
	fs.IntVar(&config.MaxLines, "max-lines", storage.DefaultMaxLines, "Maximum number of lines read from one file")

	if err := fs.Parse(args); err != nil {
		return Configuration{}, err
	}
	if fs.NArg() > 0 {
		return Configuration{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return Configuration{}, err
	}
	config.LogLevel = lvl

	if config.LogFormat != "text" && config.LogFormat != "json" {
		return Configuration{}, fmt.Errorf("unknown log format %q", config.LogFormat)
	}
	if config.MaxLines <= 0 {
		return Configuration{}, fmt.Errorf("max-lines must be positive, got %d", config.MaxLines)
	}
	return config, nil
}

// showBanner prints the welcome banner on interactive terminals only, so
// piped sessions see nothing but command responses.
func showBanner() {
	if !isTerminal(os.Stdin) {
		return
	}

	title := lipgloss.NewStyle().
		Foreground(base.AdaptivePrimary).
		Bold(true).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(base.AdaptivePrimary).
		Padding(0, 2).
		Render("csvdb · typed CSV tables")
	hint := lipgloss.NewStyle().
		Foreground(base.AdaptiveMuted).
		Render("type help for commands, quit or Ctrl-D to leave")

	fmt.Println(lipgloss.JoinVertical(lipgloss.Left, title, hint))
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

// loadInitial runs the startup load. A failure is reported and the session
// continues with the empty table.
func loadInitial(ctx context.Context, db *database.Database, config Configuration) (string, bool) {
	if config.LoadPath == "" {
		return "", true
	}
	res, _ := db.Execute(ctx, "load "+config.LoadPath)
	return res.Output, res.Success
}

// resultStyle colours a response by what the command did.
func resultStyle(res database.QueryResult) lipgloss.Style {
	switch {
	case !res.Success:
		return errorStyle
	case res.Command == command.Save:
		return savedStyle
	case res.Command.Mutates():
		return changeStyle
	default:
		return plainStyle
	}
}

// runREPL reads one command per line until quit or end of input.
func runREPL(ctx context.Context, db *database.Database, config Configuration) error {
	showBanner()
	if out, ok := loadInitial(ctx, db, config); !ok {
		fmt.Println(warningStyle.Render(out))
	} else if out != "" {
		fmt.Println(changeStyle.Render(out))
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(completeKeyword)

	if config.HistoryPath != "" {
		if f, err := os.Open(config.HistoryPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(config.HistoryPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			} else {
				logging.WithPath(config.HistoryPath).Warn("cannot write history", "error", err)
			}
		}()
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}

		res, _ := db.Execute(ctx, line)
		if res.Output != "" {
			fmt.Println(resultStyle(res).Render(res.Output))
		}
		if res.Quit {
			return nil
		}
	}
}

// completeKeyword offers the command keywords that extend line.
func completeKeyword(line string) []string {
	var out []string
	for _, kw := range command.Keywords() {
		if strings.HasPrefix(kw, strings.ToLower(line)) {
			out = append(out, kw)
		}
	}
	return out
}

// startInteractiveMode launches the Bubble Tea UI
func startInteractiveMode(ctx context.Context, db *database.Database, config Configuration) error {
	if out, ok := loadInitial(ctx, db, config); out != "" {
		logging.WithPath(config.LoadPath).Info("startup load", "result", out, "ok", ok)
	}

	p := tea.NewProgram(
		ui.NewModel(db),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
