package overlays

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Byambaa0325/claude-carbon-tracker/internal/i18n"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/theme"
)

// MonitorStatus shows whether transcripts are being polled.
type MonitorStatus struct {
	Active            bool
	PathsFound        int
	MessagesProcessed int
	Paths             []string
	AnimTick          uint
}

// Summary is the one-line status: "Monitoring: Active | Paths found: 1 |
// Messages processed: 42".
func (m MonitorStatus) Summary() string {
	state := i18n.T("inactive")
	if m.Active {
		state = i18n.T("active")
	}
	return i18n.Tf("monitor_summary", state, m.PathsFound, m.MessagesProcessed)
}

func (m MonitorStatus) Render(width, height int) string {
	bg := theme.ColorCardBg
	title := theme.AnimatedGradientText(i18n.T("monitoring_status"), m.AnimTick, bg)

	body := lipgloss.NewStyle().Foreground(theme.ColorBodyText).Background(bg)
	muted := lipgloss.NewStyle().Foreground(theme.ColorMutedText).Background(bg)

	content := title + "\n\n" + body.Render(m.Summary())
	for _, p := range m.Paths {
		content += "\n" + muted.Render(fmt.Sprintf("  %s", p))
	}
	content += "\n\n" + muted.Render(i18n.T("overlay_close"))

	boxWidth := 72
	if width < 76 {
		boxWidth = width - 4
	}
	return theme.CardStyle.Width(boxWidth).Render(content)
}
