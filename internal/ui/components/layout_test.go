package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestCenterText(t *testing.T) {
	got := CenterText("ab", 6)
	if got != "  ab  " {
		t.Errorf("CenterText = %q, want %q", got, "  ab  ")
	}
	if got := CenterText("toolong", 3); got != "toolong" {
		t.Errorf("overflow should be returned unchanged, got %q", got)
	}
}

func TestPadRight_IgnoresANSI(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("kg")
	got := PadRight(styled, 5)
	if w := lipgloss.Width(got); w != 5 {
		t.Errorf("width = %d, want 5", w)
	}
}

func TestJoinHorizontal(t *testing.T) {
	lines := JoinHorizontal([][]string{{"a", "bb"}, {"ccc"}}, 2)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "a   ccc" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if strings.TrimRight(lines[1], " ") != "bb" {
		t.Errorf("line 1 = %q", lines[1])
	}
	if lipgloss.Width(lines[0]) != lipgloss.Width(lines[1]) {
		t.Error("rows should have equal width")
	}
}

func TestKeyValue(t *testing.T) {
	got := KeyValue("Input", "1,200", 8)
	if !strings.Contains(got, "Input") || !strings.Contains(got, "1,200") {
		t.Errorf("KeyValue = %q", got)
	}
}
