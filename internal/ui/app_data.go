package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Byambaa0325/claude-carbon-tracker/internal/i18n"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/notify"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/ui/views"
)

// refresh reads a fresh snapshot from the tracker.
func (a *App) refresh() {
	if a.src == nil {
		return
	}
	table := a.src.Table()
	next, hasNext := a.src.NextTier()
	a.snap = views.Snapshot{
		Stats:       a.src.Stats(),
		Equivalents: a.src.Equivalents(),
		Tier:        a.src.CurrentTier(),
		Next:        next,
		HasNext:     hasNext,
		Progress:    a.src.Progress(),
		Tiers:       table.Tiers(),
		Waypoints:   table.Waypoints(),
		Factor:      a.src.EmissionFactor(),
		Now:         a.now(),
	}
	a.monitoring = a.src.MonitoringStatus()
}

// reload picks up totals changed by another claude-carbon process, such as
// a reset from the command line. A failed read keeps the current totals.
func (a *App) reload() {
	if a.src == nil {
		return
	}
	_ = a.src.Reload(context.Background())
}

// waitForMilestone blocks on the next milestone. The returned command is
// re-armed after every MilestoneMsg.
func waitForMilestone(ch <-chan notify.Message) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		m, ok := <-ch
		if !ok {
			return nil
		}
		return MilestoneMsg(m)
	}
}

// scanNow forces one scan outside the polling schedule.
func (a App) scanNow() tea.Msg {
	if a.src == nil {
		return scanDoneMsg{}
	}
	return scanDoneMsg(a.src.ScanNow(context.Background()))
}

func (a App) ringBell() tea.Cmd {
	if !a.Config.Notifications.Bell || a.bellOut == nil {
		return nil
	}
	out := a.bellOut
	return func() tea.Msg {
		fmt.Fprint(out, "\a")
		return nil
	}
}

// applyConfig pushes live-editable settings into the tracker and UI.
func (a *App) applyConfig() {
	cfg := a.Config
	i18n.SetLanguage(cfg.General.Language)
	if a.src != nil {
		if cfg.Carbon.EmissionFactor != a.src.EmissionFactor() {
			if err := a.src.SetEmissionFactor(cfg.Carbon.EmissionFactor); err != nil {
				a.notifications.SetMessage(err.Error())
			}
		}
		a.src.SetNotificationsEnabled(cfg.Notifications.Enabled)
	}
	if a.desktop != nil {
		a.desktop.SetEnabled(cfg.Notifications.Desktop)
	}
	a.refresh()
}
