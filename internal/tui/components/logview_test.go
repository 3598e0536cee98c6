package components

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func numbered(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i+1)
	}
	return lines
}

func TestNewLogView(t *testing.T) {
	lv := NewLogView(80, 24)
	if !lv.Following() {
		t.Error("NewLogView: expected follow mode to be enabled by default")
	}
	if lv.Len() != 0 {
		t.Errorf("NewLogView: expected no lines, got %d", lv.Len())
	}
}

func TestLogView_SetLines_FollowShowsNewest(t *testing.T) {
	lv := NewLogView(80, 3).SetLines(numbered(10))
	if lv.Len() != 10 {
		t.Fatalf("Len = %d, want 10", lv.Len())
	}
	view := lv.View()
	if !strings.Contains(view, "line 10") {
		t.Errorf("follow mode should show the newest line: %q", view)
	}
	if strings.Contains(view, "line 7") {
		t.Errorf("oldest line should have scrolled out: %q", view)
	}
}

func TestLogView_SetLines_IndependentCopy(t *testing.T) {
	original := []string{"a", "b"}
	lv := NewLogView(80, 10).SetLines(original)
	original[0] = "mutated"
	if strings.Contains(lv.View(), "mutated") {
		t.Error("SetLines should copy the slice, not reference it")
	}
}

func TestLogView_ToggleFollow(t *testing.T) {
	lv := NewLogView(80, 10)
	lv = lv.ToggleFollow()
	if lv.Following() {
		t.Error("ToggleFollow should turn follow mode off")
	}
	lv = lv.ToggleFollow()
	if !lv.Following() {
		t.Error("second ToggleFollow should turn follow mode back on")
	}
}

func TestLogView_Update_FKeyToggles(t *testing.T) {
	lv := NewLogView(80, 10)
	lv, _ = lv.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	if lv.Following() {
		t.Error("f should toggle follow mode off")
	}
}

func TestLogView_Update_ScrollUpLeavesFollow(t *testing.T) {
	lv := NewLogView(80, 3).SetLines(numbered(20))
	lv, _ = lv.Update(tea.KeyMsg{Type: tea.KeyUp})
	if lv.Following() {
		t.Error("scrolling up should leave follow mode")
	}

	// New content no longer jumps to the bottom.
	lv = lv.SetLines(numbered(30))
	if strings.Contains(lv.View(), "line 30") {
		t.Error("view jumped to the newest line with follow mode off")
	}
}

func TestLogView_Update_AtBottomKeepsFollow(t *testing.T) {
	lv := NewLogView(80, 100).SetLines(numbered(5))
	lv, _ = lv.Update(tea.KeyMsg{Type: tea.KeyDown})
	if !lv.Following() {
		t.Error("a key that leaves the view at the bottom should keep follow mode")
	}
}

func TestLogView_Update_NonScrollMsg(t *testing.T) {
	lv := NewLogView(80, 3).SetLines(numbered(20))
	lv, _ = lv.Update(tea.WindowSizeMsg{Width: 10, Height: 10})
	if !lv.Following() {
		t.Error("non-input messages should not change follow mode")
	}
}

func TestLogView_SetSize(t *testing.T) {
	lv := NewLogView(80, 2).SetLines(numbered(10)).SetSize(40, 5)
	lines := strings.Split(lv.View(), "\n")
	if len(lines) != 5 {
		t.Errorf("view has %d lines after SetSize, want 5", len(lines))
	}
	if !strings.Contains(lv.View(), "line 10") {
		t.Error("resized view in follow mode should still show the newest line")
	}
}
