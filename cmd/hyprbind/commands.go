package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-isatty"

	"github.com/LISSConsulting/LISSTech.HyprBind/internal/config"
	"github.com/LISSConsulting/LISSTech.HyprBind/internal/hyprland"
	"github.com/LISSConsulting/LISSTech.HyprBind/internal/keybind"
	"github.com/LISSConsulting/LISSTech.HyprBind/internal/logging"
	"github.com/LISSConsulting/LISSTech.HyprBind/internal/tui"
)

// failure is an error reported to the user as "<prefix>: <err>".
type failure struct {
	prefix string
	err    error
}

func (f *failure) Error() string { return f.prefix + ": " + f.err.Error() }

func (f *failure) Unwrap() error { return f.err }

// run dispatches to one mode. Precedence: write theme, JSON, YAML, dmenu,
// then the interactive UI.
func run(ctx context.Context, f flags, out io.Writer) error {
	if f.writeTheme {
		return writeTheme(out, config.ThemePath(), f.force, time.Now())
	}

	cfgPath := f.configPath
	if cfgPath == "" {
		cfgPath = config.Path()
	}
	cfg, cfgErr := config.Load(cfgPath)
	if f.command != "" {
		cfg.Source.Command = f.command
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}

	logger, closeLog := openLogger(config.LogPath(), cfg.Log.Level)
	defer closeLog()
	if cfgErr != nil {
		logger.Warn("loading config, using defaults", "path", cfgPath, "error", cfgErr)
	}

	src, err := hyprland.NewSource(cfg.Source.Command)
	if err != nil {
		return &failure{"Failed to load keybindings", err}
	}

	ctx, cancel := signalContext(ctx)
	defer cancel()

	switch {
	case f.json:
		return printJSON(ctx, src, out, isTerminal(out))
	case f.yaml:
		return printYAML(ctx, src, out)
	case f.dmenu:
		return printDmenu(ctx, src, out)
	}
	return runTUI(ctx, src, cfg, cfgPath, logger)
}

// fetch runs the bind report command and parses its output.
func fetch(ctx context.Context, src tui.Source) (keybind.Bindings, error) {
	raw, err := src.Fetch(ctx)
	if err != nil {
		return keybind.Bindings{}, &failure{"Failed to load keybindings", err}
	}
	return keybind.Parse(raw), nil
}

// printJSON writes the JSON export. color pretty-prints it with ANSI colors.
func printJSON(ctx context.Context, src tui.Source, out io.Writer, color bool) error {
	b, err := fetch(ctx, src)
	if err != nil {
		return err
	}
	data, err := b.JSON()
	if err != nil {
		return &failure{"Failed to serialize JSON", err}
	}
	if color {
		data = colorJSON(data)
	}
	_, err = fmt.Fprintf(out, "%s\n", data)
	return err
}

// jsonMember matches one `"name": value` line of indented JSON.
var jsonMember = regexp.MustCompile(`^(\s*)("(?:[^"\\]|\\.)*")(: )(.*?)(,?)$`)

// colorJSON colors member names and string values of indented JSON with the
// prettyjson palette. Layout and member order are left untouched.
func colorJSON(data []byte) []byte {
	f := prettyjson.NewFormatter()
	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		m := jsonMember.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		value := m[4]
		if strings.HasPrefix(value, `"`) {
			value = f.StringColor.Sprint(value)
		}
		lines[i] = m[1] + f.KeyColor.Sprint(m[2]) + m[3] + value + m[5]
	}
	return []byte(strings.Join(lines, "\n"))
}

func printYAML(ctx context.Context, src tui.Source, out io.Writer) error {
	b, err := fetch(ctx, src)
	if err != nil {
		return err
	}
	data, err := b.YAML()
	if err != nil {
		return &failure{"Failed to serialize YAML", err}
	}
	_, err = out.Write(data)
	return err
}

func printDmenu(ctx context.Context, src tui.Source, out io.Writer) error {
	b, err := fetch(ctx, src)
	if err != nil {
		return err
	}
	lines := b.Dmenu()
	if lines == "" {
		return nil
	}
	_, err = fmt.Fprintln(out, lines)
	return err
}

func writeTheme(out io.Writer, path string, force bool, now time.Time) error {
	written, err := config.WriteDefaultTheme(path, force, now)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Wrote default theme to %s\n", written)
	return err
}

// runTUI runs the interactive UI until the user quits.
func runTUI(ctx context.Context, src *hyprland.Source, cfg config.Config, cfgPath string, logger *logging.Logger) error {
	themePath := config.ThemePath()

	var changes <-chan struct{}
	watcher, err := config.WatchTheme(themePath)
	if err != nil {
		logger.Warn("theme hot reload disabled", "path", themePath, "error", err)
	} else {
		defer watcher.Close()
		changes = watcher.Changes()
		go logWatchErrors(ctx, watcher, logger)
	}

	model := tui.New(tui.Options{
		Source:       src,
		SourceName:   src.String(),
		Config:       cfg,
		ConfigPath:   cfgPath,
		ThemePath:    themePath,
		ThemeChanges: changes,
		ExportDir:    config.ExportDir(),
		Logger:       logger,
	})
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	return finishTUI(program, logger)
}

// finishTUI runs the bubbletea program. Cancellation by signal is a normal
// shutdown. A failed fetch is shown inside the UI and is not an exit error.
func finishTUI(program *tea.Program, logger *logging.Logger) error {
	finalModel, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	if m, ok := finalModel.(tui.Model); ok && m.Err() != nil {
		logger.Info("exited after failed load", "error", m.Err())
	}
	return nil
}

func logWatchErrors(ctx context.Context, w *config.ThemeWatcher, logger *logging.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case err := <-w.Errors():
			logger.Warn("watching theme file", "error", err)
		}
	}
}

// openLogger opens the log file at path for appending. When the file cannot
// be opened, messages are only retained in memory for the log overlay.
func openLogger(path, level string) (*logging.Logger, func()) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return logging.New(io.Discard, level), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return logging.New(io.Discard, level), func() {}
	}
	return logging.New(f, level), func() { f.Close() }
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
