package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Byambaa0325/claude-carbon-tracker/internal/i18n"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/theme"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/ui/components"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/ui/overlays"
)

func (a App) View() string {
	if !a.ready {
		return i18n.T("initializing")
	}

	if a.width < 80 || a.height < 24 {
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.ColorPeach).Render(
				i18n.T("terminal_too_small")+"\n"+
					i18n.Tf("current_size", a.width, a.height),
			),
		)
	}

	if a.overlay != OverlayNone {
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center,
			a.renderOverlay(),
			lipgloss.WithWhitespaceBackground(theme.ColorOverlayBg),
		)
	}

	compact := a.height < 30

	tabBar := a.renderTabs()
	statusBar := a.renderStatusBar()

	contentHeight := a.height - 4 // 2 tab + 2 status
	if contentHeight < 5 {
		contentHeight = 5
	}

	content := lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(a.renderActiveView(contentHeight, compact))

	if banner := a.notifications.RenderBanner(a.width); banner != "" {
		return tabBar + "\n" + content + "\n" + banner
	}

	return tabBar + "\n" + content + "\n" + statusBar
}

func (a App) renderTabs() string {
	return components.TabBar{
		ViewNames:   []string{i18n.T("tab_stats"), i18n.T("tab_tiers")},
		ActiveIndex: int(a.activeView),
		Width:       a.width,
		Monitoring:  a.monitoring.Active,
	}.Render()
}

func (a App) renderActiveView(contentHeight int, compact bool) string {
	switch a.activeView {
	case ViewStats:
		return a.statsView.Render(a.snap, a.width, contentHeight, compact)
	case ViewTiers:
		return a.tiersView.Render(a.snap, a.width, contentHeight, compact)
	}
	return ""
}

func (a App) renderStatusBar() string {
	bar := components.StatusBar{Width: a.width}
	if a.Config.Display.ShowInStatusBar {
		bar.Status = components.StatusLine{
			Emoji: a.snap.Tier.Emoji,
			Kg:    a.snap.Stats.TotalCO2Kg,
			Color: theme.TierColor(a.snap.Tier.Color),
		}.Render()
	}
	return bar.Render()
}

func (a App) renderOverlay() string {
	switch a.overlay {
	case OverlayHelp:
		return a.helpOverlay.Render(a.width, a.height)
	case OverlaySettings:
		if a.settingsOverlay != nil {
			return a.settingsOverlay.Render(a.width, a.height)
		}
	case OverlayConfirmReset:
		return a.confirmReset.Render(a.width, a.height)
	case OverlayMonitor:
		return overlays.MonitorStatus{
			Active:            a.monitoring.Active,
			PathsFound:        a.monitoring.PathsFound,
			MessagesProcessed: a.monitoring.MessagesProcessed,
			Paths:             a.Config.DataDirs(),
			AnimTick:          a.animTick,
		}.Render(a.width, a.height)
	}
	return ""
}
