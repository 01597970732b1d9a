package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Byambaa0325/claude-carbon-tracker/internal/config"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/ingest"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/metrics"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/notify"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/ui"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/ui/overlays"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/watcher"
)

func newWatchCmd(opts *rootOptions) *cobra.Command {
	var headless bool
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Monitor transcripts and show the dashboard (default)",
		Long: `Monitor Claude Code transcripts and show the live dashboard. With --no-tui the
tracker runs in the foreground and logs milestones to stderr until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, opts, headless)
		},
	}
	cmd.Flags().BoolVar(&headless, "no-tui", false, "run without the dashboard, logging milestones")
	return cmd
}

func runWatch(cmd *cobra.Command, opts *rootOptions, headless bool) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logFallback := config.DefaultLogPath()
	if headless {
		logFallback = ""
	}
	s, err := openSession(ctx, opts, logFallback)
	if err != nil {
		return err
	}
	defer s.Close()

	logger := s.logger
	logger.Info().
		Str("version", cmd.Root().Version).
		Str("config", opts.configPath).
		Strs("data_dirs", s.cfg.DataDirs()).
		Bool("persist", !opts.noPersist).
		Msg("Starting carbon tracker")

	desktop := notify.NewSwitch(notify.NewDesktop(logger))
	desktop.SetEnabled(s.cfg.Notifications.Desktop)

	m := metrics.New(s.tracker)
	s.tracker.AddObserver(m.ObserveEvent)

	g, gctx := errgroup.WithContext(ctx)

	if s.cfg.Metrics.Addr != "" {
		srv := metrics.NewServer(s.cfg.Metrics.Addr, m, logger)
		g.Go(func() error { return srv.Run(gctx) })
	}

	if headless {
		s.tracker.AddNotifier(notify.Multi{desktop, notify.NewLog(logger)})
		s.attachScanner(
			ingest.WithWriteNotifications(true),
			ingest.WithWarning(func(msg string) { logger.Warn().Msg(msg) }),
		)
		s.tracker.Start(gctx)

		if w := watchConfig(opts, logger, func(cfg config.Config) {
			applyLiveConfig(s.tracker, desktop, logger, cfg)
		}); w != nil {
			defer w.Close()
		}

		g.Go(func() error {
			<-gctx.Done()
			logger.Info().Msg("Shutting down")
			return nil
		})
		return g.Wait()
	}

	milestones := notify.NewChannel(16)
	s.tracker.AddNotifier(notify.Multi{desktop, milestones})
	s.attachScanner(
		ingest.WithWriteNotifications(true),
		ingest.WithWarning(func(msg string) { milestones.Notify(msg, "⚠️") }),
	)
	s.tracker.Start(gctx)

	app := ui.NewApp(ui.Options{
		Config:     s.cfg,
		ConfigPath: opts.configPath,
		Tracker:    s.tracker,
		Milestones: milestones.C,
		Desktop:    desktop,
	})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(gctx))

	if w := watchConfig(opts, logger, func(cfg config.Config) {
		p.Send(overlays.ConfigChangedMsg{Config: cfg})
	}); w != nil {
		defer w.Close()
	}

	g.Go(func() error {
		defer stop()
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	return g.Wait()
}

// liveSettings is the part of the tracker a config reload drives.
type liveSettings interface {
	EmissionFactor() float64
	SetEmissionFactor(factor float64) error
	SetNotificationsEnabled(enabled bool)
}

// applyLiveConfig pushes reloaded settings into a headless tracker. The
// totals are only recomputed when the factor actually changed.
func applyLiveConfig(tr liveSettings, desktop *notify.Switch, logger zerolog.Logger, cfg config.Config) {
	if cfg.Carbon.EmissionFactor != tr.EmissionFactor() {
		if err := tr.SetEmissionFactor(cfg.Carbon.EmissionFactor); err != nil {
			logger.Warn().Err(err).Msg("Ignoring emission factor")
		}
	}
	tr.SetNotificationsEnabled(cfg.Notifications.Enabled)
	desktop.SetEnabled(cfg.Notifications.Desktop)
}

// watchConfig reloads the config file on every write and hands the result,
// with flag overrides applied, to apply. Invalid files are ignored. It
// returns nil when the file cannot be watched.
func watchConfig(opts *rootOptions, logger zerolog.Logger, apply func(config.Config)) *watcher.Watcher {
	w, err := watcher.WatchFile(opts.configPath, func() {
		cfg, err := config.Load(opts.configPath)
		if err != nil {
			logger.Warn().Err(err).Msg("Ignoring invalid config change")
			return
		}
		logger.Info().Str("config", opts.configPath).Msg("Configuration reloaded")
		apply(opts.applyOverrides(cfg))
	})
	if err != nil {
		logger.Warn().Err(err).Msg("Config file will not be watched")
		return nil
	}
	return w
}
