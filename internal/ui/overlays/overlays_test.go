package overlays

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Byambaa0325/claude-carbon-tracker/internal/config"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/i18n"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestSettings_CycleAndSave(t *testing.T) {
	i18n.SetLanguage("en")
	var saved config.Config
	s := NewSettingsOverlay(config.DefaultConfig(), "/unused/config.toml")
	s.save = func(cfg config.Config, path string) error {
		saved = cfg
		return nil
	}

	// emission factor 0.0004 -> 0.0008
	s.Update(tea.KeyMsg{Type: tea.KeyRight})
	// move to the status bar toggle and flip it
	s.Update(tea.KeyMsg{Type: tea.KeyDown})
	s.Update(tea.KeyMsg{Type: tea.KeyDown})
	s.Update(tea.KeyMsg{Type: tea.KeyEnter})

	closed, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !closed || cmd == nil {
		t.Fatalf("closed=%v cmd=%v, want close with cmd", closed, cmd != nil)
	}
	msg, ok := cmd().(ConfigChangedMsg)
	if !ok {
		t.Fatalf("cmd produced %T", cmd())
	}
	if msg.Err != nil {
		t.Errorf("unexpected error: %v", msg.Err)
	}
	if msg.Config.Carbon.EmissionFactor != 0.0008 {
		t.Errorf("factor = %v, want 0.0008", msg.Config.Carbon.EmissionFactor)
	}
	if msg.Config.Display.ShowInStatusBar {
		t.Error("status bar should be toggled off")
	}
	if saved.Carbon.EmissionFactor != 0.0008 {
		t.Error("config should be saved on close")
	}
}

func TestSettings_CloseWithoutChanges(t *testing.T) {
	s := NewSettingsOverlay(config.DefaultConfig(), "/unused")
	s.save = func(config.Config, string) error {
		t.Fatal("save called without changes")
		return nil
	}
	closed, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !closed || cmd != nil {
		t.Errorf("closed=%v cmd=%v", closed, cmd != nil)
	}
}

func TestSettings_SaveErrorIsReported(t *testing.T) {
	s := NewSettingsOverlay(config.DefaultConfig(), "/unused")
	s.save = func(config.Config, string) error { return errors.New("read-only") }
	s.Update(tea.KeyMsg{Type: tea.KeyLeft})
	_, cmd := s.Update(keyRune('s'))
	msg := cmd().(ConfigChangedMsg)
	if msg.Err == nil {
		t.Error("expected the save error")
	}
}

func TestFactorOptions_KeepsCustomValue(t *testing.T) {
	opts := factorOptions(0.00042)
	if opts[0] != "0.00042" {
		t.Errorf("custom factor should be first, got %v", opts)
	}
	if got := factorOptions(0.0004); got[0] != "0.0001" {
		t.Errorf("known factor should not be duplicated, got %v", got)
	}
}

func TestConfirmReset(t *testing.T) {
	i18n.SetLanguage("en")
	c := ConfirmReset{}

	closed, cmd := c.Update(keyRune('y'))
	if !closed || cmd == nil {
		t.Fatal("y should confirm")
	}
	if _, ok := cmd().(ResetConfirmedMsg); !ok {
		t.Error("expected ResetConfirmedMsg")
	}

	closed, cmd = c.Update(keyRune('n'))
	if !closed || cmd != nil {
		t.Error("n should cancel")
	}

	closed, _ = c.Update(keyRune('z'))
	if closed {
		t.Error("other keys keep the prompt open")
	}

	if !strings.Contains(c.Render(80, 24), i18n.T("reset_confirm")) {
		t.Error("prompt text missing")
	}
}

func TestMonitorStatus_Summary(t *testing.T) {
	i18n.SetLanguage("en")
	m := MonitorStatus{Active: true, PathsFound: 1, MessagesProcessed: 42}
	want := "Monitoring: Active | Paths found: 1 | Messages processed: 42"
	if got := m.Summary(); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
	m.Active = false
	if !strings.Contains(m.Summary(), "Inactive") {
		t.Errorf("Summary() = %q", m.Summary())
	}
}

func TestHelpOverlay_Render(t *testing.T) {
	i18n.SetLanguage("en")
	out := NewHelpOverlay().Render(80, 30)
	if !strings.Contains(out, i18n.T("help_reset")) {
		t.Error("help should list the reset binding")
	}
}
