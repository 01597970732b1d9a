package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Byambaa0325/claude-carbon-tracker/internal/i18n"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/ui/overlays"
)

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if !a.ready {
			a.ready = true
			return a, doTick(a.refreshInterval())
		}
		return a, nil

	case tea.KeyMsg:
		if a.overlay != OverlayNone {
			return a.updateOverlay(msg)
		}
		return a.handleGlobalKey(msg)

	case BlinkMsg:
		a.animTick++
		a.propagateAnimTick()
		a.notifications.Expire()
		return a, doBlink()

	case TickMsg:
		a.notifications.Expire()
		a.reload()
		a.refresh()
		return a, doTick(a.refreshInterval())

	case MilestoneMsg:
		a.notifications.Push(msg.Text, msg.Emoji)
		a.refresh()
		return a, tea.Batch(waitForMilestone(a.milestones), a.ringBell())

	case scanDoneMsg:
		a.refresh()
		return a, nil

	case overlays.ConfigChangedMsg:
		if msg.Err != nil {
			a.notifications.SetMessage(i18n.Tf("settings_save_failed", msg.Err))
		}
		a.Config = msg.Config
		a.applyConfig()
		return a, nil

	case overlays.ResetConfirmedMsg:
		if a.src != nil {
			a.src.Reset()
		}
		a.refresh()
		a.notifications.SetMessage(i18n.T("reset_done"))
		return a, nil
	}

	return a, nil
}

func (a App) handleGlobalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.activeView == ViewTiers {
		if cmd := a.tiersView.Update(msg); cmd != nil {
			return a, cmd
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "1":
		a.activeView = ViewStats
	case "2":
		a.activeView = ViewTiers
	case "tab":
		a.activeView = (a.activeView + 1) % ViewCount
	case "shift+tab":
		a.activeView = (a.activeView + ViewCount - 1) % ViewCount
	case "?":
		a.overlay = OverlayHelp
	case "s":
		a.settingsOverlay = overlays.NewSettingsOverlay(a.Config, a.configPath)
		a.overlay = OverlaySettings
	case "m":
		a.refresh()
		a.overlay = OverlayMonitor
	case "x":
		a.overlay = OverlayConfirmReset
	case "r":
		return a, a.scanNow
	}
	return a, nil
}

func (a App) updateOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.overlay {
	case OverlayHelp:
		switch msg.String() {
		case "esc", "?":
			a.overlay = OverlayNone
		}
	case OverlayMonitor:
		switch msg.String() {
		case "esc", "m", "q":
			a.overlay = OverlayNone
		}
	case OverlayConfirmReset:
		closed, cmd := a.confirmReset.Update(msg)
		if closed {
			a.overlay = OverlayNone
		}
		return a, cmd
	case OverlaySettings:
		if a.settingsOverlay != nil {
			closed, cmd := a.settingsOverlay.Update(msg)
			if closed {
				a.overlay = OverlayNone
			}
			return a, cmd
		}
	}
	return a, nil
}

func (a *App) propagateAnimTick() {
	a.statsView.AnimTick = a.animTick
	a.tiersView.AnimTick = a.animTick
	a.helpOverlay.AnimTick = a.animTick
	if a.settingsOverlay != nil {
		a.settingsOverlay.SetAnimTick(a.animTick)
	}
}
