package panels

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderFooter_EachFocus(t *testing.T) {
	tests := []struct {
		focus string
		hints []string
	}{
		{"table", []string{"/:search", "1-3:sort", "o:options", "?:help", "q:quit"}},
		{"search", []string{"type to filter", "esc/enter:back to table"}},
		{"options", []string{"space:toggle", "[/]:tab", "esc:close"}},
		{"logs", []string{"f:follow", "esc:close"}},
		{"help", []string{"esc:close"}},
	}

	for _, tt := range tests {
		t.Run(tt.focus, func(t *testing.T) {
			rendered := RenderFooter(FooterProps{Focus: tt.focus}, 200, lipgloss.NewStyle(), lipgloss.NewStyle())
			for _, hint := range tt.hints {
				if !strings.Contains(rendered, hint) {
					t.Errorf("RenderFooter(focus=%q) missing hint %q; got %q", tt.focus, hint, rendered)
				}
			}
		})
	}
}

func TestRenderFooter_Status(t *testing.T) {
	props := FooterProps{Focus: "table", Status: "Exported to /tmp/keybindings_1.json"}
	rendered := RenderFooter(props, 200, lipgloss.NewStyle(), lipgloss.NewStyle())
	if !strings.Contains(rendered, "Exported to /tmp/keybindings_1.json") {
		t.Errorf("status missing; got %q", rendered)
	}
	if strings.Index(rendered, "Exported") > strings.Index(rendered, "q:quit") {
		t.Errorf("status should be left of the hints; got %q", rendered)
	}
}

func TestRenderFooter_ErrorStatus(t *testing.T) {
	props := FooterProps{Status: "Failed to load keybindings: boom", IsError: true}
	rendered := RenderFooter(props, 200, lipgloss.NewStyle(), lipgloss.NewStyle().Bold(true))
	if !strings.Contains(rendered, "Failed to load keybindings: boom") {
		t.Errorf("error status missing; got %q", rendered)
	}
}

func TestRenderFooter_CustomHints(t *testing.T) {
	props := FooterProps{Focus: "table", Hints: "custom hints"}
	rendered := RenderFooter(props, 200, lipgloss.NewStyle(), lipgloss.NewStyle())
	if !strings.Contains(rendered, "custom hints") || strings.Contains(rendered, "q:quit") {
		t.Errorf("Hints should replace the defaults; got %q", rendered)
	}
}

func TestRenderFooter_NarrowWidth(t *testing.T) {
	props := FooterProps{Focus: "table", Status: strings.Repeat("x", 100)}
	rendered := RenderFooter(props, 40, lipgloss.NewStyle(), lipgloss.NewStyle())
	if lines := strings.Count(rendered, "\n") + 1; lines != 1 {
		t.Errorf("footer spans %d lines at width 40, want 1", lines)
	}
}
