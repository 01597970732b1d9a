// Package ui is the bubbletea front end.
package ui

import (
	"context"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Byambaa0325/claude-carbon-tracker/internal/carbon"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/config"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/i18n"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/ingest"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/milestone"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/notify"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/tracker"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/ui/overlays"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/ui/views"
)

// Source is the part of the tracker the UI reads and drives.
type Source interface {
	Stats() carbon.Stats
	Equivalents() carbon.Equivalents
	Table() *milestone.Table
	CurrentTier() milestone.Tier
	NextTier() (milestone.Tier, bool)
	Progress() float64
	EmissionFactor() float64
	SetEmissionFactor(factor float64) error
	SetNotificationsEnabled(enabled bool)
	MonitoringStatus() tracker.MonitoringStatus
	ScanNow(ctx context.Context) ingest.ScanResult
	Reload(ctx context.Context) error
	Reset()
}

type ViewType int

const (
	ViewStats ViewType = iota
	ViewTiers
	ViewCount // sentinel: number of views
)

type OverlayType int

const (
	OverlayNone OverlayType = iota
	OverlayHelp
	OverlaySettings
	OverlayConfirmReset
	OverlayMonitor
)

// TickMsg triggers periodic data refresh.
type TickMsg time.Time

// BlinkMsg triggers UI-only refresh for smooth animation (250ms).
type BlinkMsg time.Time

// MilestoneMsg carries a milestone from the tracker.
type MilestoneMsg notify.Message

// scanDoneMsg reports a forced scan.
type scanDoneMsg ingest.ScanResult

// Options configures the App.
type Options struct {
	Config     config.Config
	ConfigPath string
	Tracker    Source
	Milestones <-chan notify.Message
	Desktop    *notify.Switch // optional; toggled by the desktop setting
}

type App struct {
	activeView ViewType
	overlay    OverlayType

	// Views
	statsView *views.StatsView
	tiersView *views.TiersView

	// Overlays
	helpOverlay     *overlays.HelpOverlay
	settingsOverlay *overlays.SettingsOverlay
	confirmReset    overlays.ConfirmReset

	Config     config.Config
	configPath string
	src        Source
	milestones <-chan notify.Message
	desktop    *notify.Switch

	snap       views.Snapshot
	monitoring tracker.MonitoringStatus

	// Animation state
	animTick uint

	notifications *NotificationManager
	bellOut       io.Writer
	now           func() time.Time

	// Terminal
	width  int
	height int

	ready bool
}

func NewApp(opts Options) App {
	i18n.SetLanguage(opts.Config.General.Language)

	a := App{
		activeView:    ViewStats,
		overlay:       OverlayNone,
		Config:        opts.Config,
		configPath:    opts.ConfigPath,
		src:           opts.Tracker,
		milestones:    opts.Milestones,
		desktop:       opts.Desktop,
		statsView:     views.NewStatsView(),
		tiersView:     views.NewTiersView(),
		helpOverlay:   overlays.NewHelpOverlay(),
		notifications: NewNotificationManager(),
		bellOut:       os.Stderr,
		now:           time.Now,
	}
	a.refresh()
	return a
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(config.AppName),
		waitForMilestone(a.milestones),
		doBlink(),
	)
}

func doBlink() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return BlinkMsg(t)
	})
}

func doTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (a App) refreshInterval() time.Duration {
	if a.Config.General.Refresh <= 0 {
		return time.Duration(config.DefaultConfig().General.Refresh) * time.Second
	}
	return time.Duration(a.Config.General.Refresh) * time.Second
}
