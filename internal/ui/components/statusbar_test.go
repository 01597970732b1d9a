package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/Byambaa0325/claude-carbon-tracker/internal/i18n"
)

func TestStatusLine_Text(t *testing.T) {
	s := StatusLine{Emoji: "☕", Kg: 0.03041}
	if got, want := s.Text(), "☕ 0.0304 kg CO₂"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
	if !strings.Contains(s.Render(), "0.0304 kg CO₂") {
		t.Error("Render() should contain the text")
	}
}

func TestStatusDetail(t *testing.T) {
	i18n.SetLanguage("en")
	got := StatusDetail("Light Usage", "Brewing a cup of coffee", 76000, 2)
	want := "Carbon Emissions from Claude Code\nLight Usage: Brewing a cup of coffee\n76,000 tokens | 2 requests"
	if got != want {
		t.Errorf("StatusDetail =\n%s\nwant\n%s", got, want)
	}
}

func TestStatusBar_Render(t *testing.T) {
	i18n.SetLanguage("en")
	status := StatusLine{Emoji: "💡", Kg: 0.001}.Render()

	out := StatusBar{Width: 120, Status: status}.Render()
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[1], "0.0010 kg CO₂") {
		t.Errorf("status missing from %q", lines[1])
	}
	if w := lipgloss.Width(lines[1]); w != 118 {
		t.Errorf("hint line width = %d, want 118", w)
	}

	hidden := StatusBar{Width: 120}.Render()
	if strings.Contains(hidden, "kg CO₂") {
		t.Error("status should be hidden when empty")
	}
}
