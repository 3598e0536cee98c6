package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.HyprBind/internal/keybind"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMap_SortColumn(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		key    string
		want   keybind.SortColumn
		wantOK bool
	}{
		{"1", keybind.SortKeybind, true},
		{"2", keybind.SortDescription, true},
		{"3", keybind.SortCommand, true},
		{"4", 0, false},
		{"q", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := km.SortColumn(keyRunes(tt.key))
			if ok != tt.wantOK {
				t.Fatalf("SortColumn(%q) ok = %v, want %v", tt.key, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("SortColumn(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestKeyMap_Bindings(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		name    string
		binding key.Binding
		msg     tea.KeyMsg
	}{
		{"search", km.Search, keyRunes("/")},
		{"leave esc", km.Leave, tea.KeyMsg{Type: tea.KeyEsc}},
		{"leave enter", km.Leave, tea.KeyMsg{Type: tea.KeyEnter}},
		{"refresh", km.Refresh, keyRunes("r")},
		{"export", km.Export, keyRunes("e")},
		{"options", km.Options, keyRunes("o")},
		{"minimal", km.Minimal, keyRunes("z")},
		{"logs", km.Logs, keyRunes("l")},
		{"help", km.Help, keyRunes("?")},
		{"quit q", km.Quit, keyRunes("q")},
		{"quit ctrl+c", km.Quit, tea.KeyMsg{Type: tea.KeyCtrlC}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !key.Matches(tt.msg, tt.binding) {
				t.Errorf("%q does not match %s binding", tt.msg.String(), tt.name)
			}
		})
	}
}

func TestKeyMap_HelpCoversEveryBinding(t *testing.T) {
	km := DefaultKeyMap()
	seen := map[string]bool{}
	for _, col := range km.FullHelp() {
		for _, b := range col {
			seen[b.Help().Key] = true
		}
	}
	for _, want := range []string{"/", "esc", "1", "2", "3", "r", "e", "o", "z", "l", "?", "q"} {
		if !seen[want] {
			t.Errorf("FullHelp missing %q", want)
		}
	}
	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp is empty")
	}
}
