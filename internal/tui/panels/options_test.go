package panels

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.HyprBind/internal/config"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// toggle presses keys, then space, and returns the emitted config.
func toggle(t *testing.T, p OptionsPanel, keys ...string) (OptionsPanel, config.Config) {
	t.Helper()
	for _, k := range keys {
		p, _ = p.Update(key(k))
	}
	p, cmd := p.Update(key(" "))
	if cmd == nil {
		t.Fatal("toggle emitted no command")
	}
	msg, ok := cmd().(OptionsChangedMsg)
	if !ok {
		t.Fatalf("toggle emitted %T", cmd())
	}
	return p, msg.Config
}

func TestOptionsPanel_Navigation(t *testing.T) {
	p := NewOptionsPanel(config.Defaults(), 60)
	if p.Tab() != TabTheme || p.Cursor() != 0 {
		t.Fatalf("start at tab %d row %d", p.Tab(), p.Cursor())
	}

	p, _ = p.Update(key("j"))
	p, _ = p.Update(key("j"))
	p, _ = p.Update(key("j")) // clamps at the last row
	if p.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", p.Cursor())
	}

	p, _ = p.Update(key("tab"))
	if p.Tab() != TabColumns || p.Cursor() != 0 {
		t.Errorf("tab = %d row %d, want columns row 0", p.Tab(), p.Cursor())
	}
	p, _ = p.Update(key("]"))
	if p.Tab() != TabSearch {
		t.Errorf("] moved to tab %d, want search", p.Tab())
	}
	p, _ = p.Update(key("tab"))
	if p.Tab() != TabTheme {
		t.Errorf("tab did not wrap, at %d", p.Tab())
	}
	p, _ = p.Update(key("shift+tab"))
	if p.Tab() != TabSearch {
		t.Errorf("shift+tab moved to tab %d, want search", p.Tab())
	}
	p, _ = p.Update(key("k"))
	if p.Cursor() != 0 {
		t.Errorf("k at the top moved the cursor to %d", p.Cursor())
	}
}

func TestOptionsPanel_ThemeRadio(t *testing.T) {
	p := NewOptionsPanel(config.Defaults(), 60)
	p, cfg := toggle(t, p, "j")
	if cfg.Theme != config.ThemeLight {
		t.Errorf("theme = %q, want light", cfg.Theme)
	}
	_, cfg = toggle(t, p, "k")
	if cfg.Theme != config.ThemeDark {
		t.Errorf("theme = %q, want dark", cfg.Theme)
	}
}

func TestOptionsPanel_Minimal(t *testing.T) {
	p := NewOptionsPanel(config.Defaults(), 60)
	_, cfg := toggle(t, p, "j", "j")
	if !cfg.Minimal {
		t.Error("minimal should be enabled")
	}
}

func TestOptionsPanel_Columns(t *testing.T) {
	p := NewOptionsPanel(config.Defaults(), 60)
	p, cfg := toggle(t, p, "tab", "j", "j")
	if !cfg.Columns.Command {
		t.Error("command column should be enabled")
	}
	_, cfg = toggle(t, p, "k", "k")
	if cfg.Columns.Keybind {
		t.Error("keybind column should be disabled")
	}
	if !cfg.Columns.Command {
		t.Error("earlier toggles must be kept")
	}
}

func TestOptionsPanel_Search(t *testing.T) {
	p := NewOptionsPanel(config.Defaults(), 60)
	_, cfg := toggle(t, p, "]", "]", "j")
	if cfg.Search.Description {
		t.Error("description search should be disabled")
	}
	if !cfg.Search.Keybind || !cfg.Search.Command {
		t.Error("other search fields must be untouched")
	}
}

func TestOptionsPanel_SetConfig(t *testing.T) {
	p := NewOptionsPanel(config.Defaults(), 60)
	p, _ = p.Update(key("tab"))
	cfg := config.Defaults()
	cfg.Columns.Command = true
	p = p.SetConfig(cfg)
	if p.Tab() != TabColumns {
		t.Error("SetConfig should keep the active tab")
	}
	if !p.Config().Columns.Command {
		t.Error("SetConfig did not replace the config")
	}
}

func TestOptionsPanel_View(t *testing.T) {
	p := NewOptionsPanel(config.Defaults(), 60)
	view := p.View()
	for _, want := range []string{"[Theme]", "Columns", "Search", "> (•) Dark", "  ( ) Light", "[ ] Minimal mode"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}

	p, _ = p.Update(key("tab"))
	view = p.View()
	for _, want := range []string{"[Columns]", "> [x] Keybind", "  [x] Description", "  [ ] Command"} {
		if !strings.Contains(view, want) {
			t.Errorf("columns View() missing %q:\n%s", want, view)
		}
	}
}

func TestOptionsPanel_IgnoresOtherMessages(t *testing.T) {
	p := NewOptionsPanel(config.Defaults(), 60)
	p2, cmd := p.Update(tea.WindowSizeMsg{Width: 10, Height: 10})
	if cmd != nil || p2.Tab() != p.Tab() || p2.Cursor() != p.Cursor() {
		t.Error("non-key messages should be ignored")
	}
}
