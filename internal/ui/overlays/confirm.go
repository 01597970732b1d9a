package overlays

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Byambaa0325/claude-carbon-tracker/internal/i18n"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/theme"
)

// ResetConfirmedMsg is emitted when the user accepts the reset prompt.
type ResetConfirmedMsg struct{}

// ConfirmReset asks before the totals are zeroed.
type ConfirmReset struct{}

// Update reports whether the prompt closed. Only y/Y confirms.
func (c ConfirmReset) Update(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return true, func() tea.Msg { return ResetConfirmedMsg{} }
	case "n", "N", "esc", "q":
		return true, nil
	}
	return false, nil
}

func (c ConfirmReset) Render(width, height int) string {
	bg := theme.ColorCardBg
	question := lipgloss.NewStyle().Foreground(theme.ColorEmber).Bold(true).Background(bg).
		Render(i18n.T("reset_confirm"))
	hint := lipgloss.NewStyle().Foreground(theme.ColorMutedText).Background(bg).
		Render(i18n.T("reset_confirm_help"))

	boxWidth := 64
	if width < 68 {
		boxWidth = width - 4
	}
	return theme.CardStyle.Width(boxWidth).Render(question + "\n\n" + hint)
}
