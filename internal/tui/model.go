package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.HyprBind/internal/config"
	"github.com/LISSConsulting/LISSTech.HyprBind/internal/keybind"
	"github.com/LISSConsulting/LISSTech.HyprBind/internal/logging"
	"github.com/LISSConsulting/LISSTech.HyprBind/internal/store"
	"github.com/LISSConsulting/LISSTech.HyprBind/internal/tui/panels"
)

// fetchTimeout bounds a single run of the bind report command.
const fetchTimeout = 10 * time.Second

// statusTTL is how long a non-error status message stays in the footer.
const statusTTL = 4 * time.Second

// Source produces the raw text of a bind report.
type Source interface {
	Fetch(ctx context.Context) (string, error)
}

// Options configures a Model.
type Options struct {
	Source     Source
	SourceName string // shown in the header

	Config     config.Config
	ConfigPath string // empty disables saving option changes

	// ThemePath is the theme override file. Empty disables overrides.
	ThemePath string
	// ThemeChanges signals that ThemePath changed on disk. Nil disables
	// hot reload.
	ThemeChanges <-chan struct{}

	ExportDir string
	Logger    *logging.Logger
	Now       func() time.Time
}

// Model is the root bubbletea model for the keybinding viewer.
type Model struct {
	// Collaborators
	source       Source
	sourceName   string
	configPath   string
	themePath    string
	themeChanges <-chan struct{}
	exportDir    string
	log          *logging.Logger
	now          func() time.Time

	// Data
	cfg        config.Config
	bindings   keybind.Bindings
	visible    []keybind.Entry
	query      string
	sortColumn keybind.SortColumn
	sortState  keybind.SortState
	loadState  LoadState
	err        error // last fetch error

	// Widgets
	search  textinput.Model
	table   table.Model
	options panels.OptionsPanel
	logs    panels.LogsPanel
	help    help.Model
	keys    KeyMap

	// Table geometry, for header clicks
	cols      []column
	colWidths []int

	// Layout and focus
	layout   Layout
	focus    FocusTarget
	overlay  Overlay
	theme    Theme
	override config.ThemeOverride
	width    int
	height   int

	// Footer status
	status    string
	statusErr bool
	statusID  int
}

// New creates the root Model. Bindings are fetched by the command returned
// from Init.
func New(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search keybindings…"

	m := Model{
		source:       opts.Source,
		sourceName:   opts.SourceName,
		configPath:   opts.ConfigPath,
		themePath:    opts.ThemePath,
		themeChanges: opts.ThemeChanges,
		exportDir:    opts.ExportDir,
		log:          opts.Logger,
		now:          opts.Now,
		cfg:          opts.Config,
		loadState:    StateLoading,
		search:       search,
		table:        table.New(table.WithFocused(true)),
		options:      panels.NewOptionsPanel(opts.Config, 0),
		logs:         panels.NewLogsPanel(0, 0),
		help:         help.New(),
		keys:         DefaultKeyMap(),
		focus:        FocusTable,
		width:        80,
		height:       24,
	}
	m = m.applyTheme()
	m = m.resize(m.width, m.height)
	return m
}

// Init returns the initial commands: fetch the bind report, load the theme
// override and start listening for theme changes.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{fetchCmd(m.source)}
	if m.themePath != "" {
		cmds = append(cmds, loadThemeCmd(m.themePath))
	}
	if m.themeChanges != nil {
		cmds = append(cmds, waitForThemeChange(m.themeChanges, m.themePath))
	}
	return tea.Batch(cmds...)
}

// Err returns the error from the most recent fetch, or nil.
func (m Model) Err() error { return m.err }

// Config returns the configuration as currently edited.
func (m Model) Config() config.Config { return m.cfg }

// Visible returns the entries currently shown, in display order.
func (m Model) Visible() []keybind.Entry { return m.visible }

// fetchCmd runs the bind report command and parses its output.
func fetchCmd(src Source) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		raw, err := src.Fetch(ctx)
		if err != nil {
			return bindingsLoadedMsg{Err: err}
		}
		return bindingsLoadedMsg{Bindings: keybind.Parse(raw)}
	}
}

// loadThemeCmd reads the theme override file.
func loadThemeCmd(path string) tea.Cmd {
	return func() tea.Msg {
		o, err := config.LoadTheme(path)
		return themeChangedMsg{Override: o, Err: err}
	}
}

// waitForThemeChange blocks on the change channel, then reloads the theme.
func waitForThemeChange(ch <-chan struct{}, path string) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return themeWatchClosedMsg{}
		}
		o, err := config.LoadTheme(path)
		return themeChangedMsg{Override: o, Err: err}
	}
}

// exportCmd writes b to a timestamped file in dir and prunes old exports.
func exportCmd(dir string, b keybind.Bindings, now time.Time, retention int, log *logging.Logger) tea.Cmd {
	return func() tea.Msg {
		path, err := store.WriteExport(dir, b, now)
		if err != nil {
			return exportDoneMsg{Err: err}
		}
		if err := store.EnforceRetention(dir, retention); err != nil {
			log.Warn("pruning old exports", "dir", dir, "error", err)
		}
		return exportDoneMsg{Path: path}
	}
}

// saveConfigCmd persists cfg to path.
func saveConfigCmd(path string, cfg config.Config) tea.Cmd {
	return func() tea.Msg {
		return configSavedMsg{Err: config.Save(path, cfg)}
	}
}

// clearStatusCmd expires status id after statusTTL.
func clearStatusCmd(id int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

// logsTickCmd schedules the next logs overlay refresh.
func logsTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return logsTickMsg{}
	})
}
