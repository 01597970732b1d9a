package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Byambaa0325/claude-carbon-tracker/internal/carbon"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/config"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/milestone"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/notify"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/tracker"
)

func TestWatchConfig_ReloadsWithOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[carbon]\nemission_factor = 0.0004\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	opts := &rootOptions{configPath: path, dbPath: "/tmp/override.db"}
	got := make(chan config.Config, 16)
	w := watchConfig(opts, zerolog.Nop(), func(cfg config.Config) { got <- cfg })
	if w == nil {
		t.Fatal("expected a watcher")
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("[carbon]\nemission_factor = 0.001\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	timeout := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-got:
			if cfg.Carbon.EmissionFactor != 0.001 {
				continue // partial write
			}
			if cfg.Storage.Path != "/tmp/override.db" {
				t.Errorf("storage path = %q, flag override lost", cfg.Storage.Path)
			}
			return
		case <-timeout:
			t.Fatal("config change not delivered")
		}
	}
}

func TestWatchConfig_MissingDirectory(t *testing.T) {
	opts := &rootOptions{configPath: filepath.Join(t.TempDir(), "no", "such", "config.toml")}
	if w := watchConfig(opts, zerolog.Nop(), func(config.Config) {}); w != nil {
		w.Close()
		t.Error("expected nil watcher for a missing directory")
	}
}

type countingTracker struct {
	*tracker.Tracker
	factorSets int
}

func (c *countingTracker) SetEmissionFactor(factor float64) error {
	c.factorSets++
	return c.Tracker.SetEmissionFactor(factor)
}

func TestApplyLiveConfig(t *testing.T) {
	acc, err := carbon.NewAccumulator(context.Background(), nil, carbon.DefaultEmissionFactor)
	if err != nil {
		t.Fatal(err)
	}
	tr := &countingTracker{Tracker: tracker.New(acc, milestone.Default())}
	desktop := notify.NewSwitch(nil)

	cfg := config.DefaultConfig()
	cfg.General.Language = "en"
	cfg.Notifications.Desktop = false
	applyLiveConfig(tr, desktop, zerolog.Nop(), cfg)
	if tr.factorSets != 0 {
		t.Errorf("factor rewritten %d times without a change", tr.factorSets)
	}
	if desktop.Enabled() {
		t.Error("desktop switch should be off")
	}

	cfg.Carbon.EmissionFactor = 0.002
	applyLiveConfig(tr, desktop, zerolog.Nop(), cfg)
	if tr.factorSets != 1 || tr.EmissionFactor() != 0.002 {
		t.Errorf("factorSets = %d, factor = %v", tr.factorSets, tr.EmissionFactor())
	}
}
