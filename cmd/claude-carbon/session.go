package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/Byambaa0325/claude-carbon-tracker/internal/carbon"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/config"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/ingest"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/logging"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/milestone"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/store"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/tracker"
)

// session holds everything a command needs: config, logger, storage and
// the tracker.
type session struct {
	cfg     config.Config
	logger  zerolog.Logger
	tracker *tracker.Tracker
	dedup   ingest.DedupSet

	db       *store.DB
	logClose io.Closer
}

// openSession loads config, opens the log and the database and restores
// the tracker. logFallback is the log file used when logging.file is unset;
// empty means stderr.
func openSession(ctx context.Context, opts *rootOptions, logFallback string) (*session, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg = opts.applyOverrides(cfg)

	logger, logClose, err := logging.Open(cfg.Logging, logFallback)
	if err != nil {
		return nil, fmt.Errorf("failed to open log: %w", err)
	}
	s := &session{cfg: cfg, logger: logger, logClose: logClose}

	var stats carbon.StatsStore
	if !opts.noPersist {
		db, err := store.Open(cfg.DBPath())
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		s.db = db
		stats = db

		dedup, err := store.LoadDedupSet(ctx, db)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("failed to load processed records: %w", err)
		}
		s.dedup = dedup

		logger.Debug().
			Str("path", cfg.DBPath()).
			Int("processed_records", dedup.Len()).
			Msg("Storage initialized")
	}

	acc, err := carbon.NewAccumulator(ctx, stats, cfg.Carbon.EmissionFactor, carbon.WithLogger(logger))
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to initialize accumulator: %w", err)
	}

	s.tracker = tracker.New(acc, milestone.Default(), tracker.WithLogger(logger))
	s.tracker.SetNotificationsEnabled(cfg.Notifications.Enabled)
	return s, nil
}

// attachScanner creates the transcript scanner for the configured dirs.
func (s *session) attachScanner(opts ...ingest.Option) *ingest.Scanner {
	base := []ingest.Option{
		ingest.WithLogger(s.logger),
		ingest.WithInterval(time.Duration(s.cfg.General.Interval) * time.Second),
	}
	return s.tracker.NewScanner(s.cfg.DataDirs(), s.dedup, append(base, opts...)...)
}

func (s *session) Close() error {
	var errs []error
	if s.tracker != nil {
		s.tracker.Stop()
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close storage: %w", err))
		}
	}
	if s.logClose != nil {
		if err := s.logClose.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close log: %w", err))
		}
	}
	return errors.Join(errs...)
}
