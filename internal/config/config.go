// Package config loads and saves the TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/Byambaa0325/claude-carbon-tracker/internal/carbon"
)

// AppName names the config and state directories.
const AppName = "claude-carbon"

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Carbon        CarbonConfig        `toml:"carbon"`
	General       GeneralConfig       `toml:"general"`
	Display       DisplayConfig       `toml:"display"`
	Notifications NotificationsConfig `toml:"notifications"`
	Storage       StorageConfig       `toml:"storage"`
	Logging       LoggingConfig       `toml:"logging"`
	Metrics       MetricsConfig       `toml:"metrics"`
}

type CarbonConfig struct {
	// EmissionFactor is kg CO₂ per 1000 tokens.
	EmissionFactor float64 `toml:"emission_factor"`
}

type GeneralConfig struct {
	Interval int      `toml:"interval"` // scan interval, seconds
	Refresh  int      `toml:"refresh"`  // status refresh, seconds
	Language string   `toml:"language"`
	DataDirs []string `toml:"data_dirs"`
}

type DisplayConfig struct {
	ShowInStatusBar bool `toml:"show_in_status_bar"`
}

type NotificationsConfig struct {
	Enabled bool `toml:"enabled"`
	Bell    bool `toml:"bell"`
	Desktop bool `toml:"desktop"`
}

type StorageConfig struct {
	Path string `toml:"path"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"`
}

type MetricsConfig struct {
	Addr string `toml:"addr"`
}

func DefaultConfig() Config {
	return Config{
		Carbon: CarbonConfig{
			EmissionFactor: carbon.DefaultEmissionFactor,
		},
		General: GeneralConfig{
			Interval: 5,
			Refresh:  5,
			Language: "en",
		},
		Display: DisplayConfig{
			ShowInStatusBar: true,
		},
		Notifications: NotificationsConfig{
			Enabled: true,
			Bell:    true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	if !carbon.ValidFactor(c.Carbon.EmissionFactor) {
		return fmt.Errorf("%w: carbon.emission_factor must be a finite number >= 0, got %v", ErrInvalid, c.Carbon.EmissionFactor)
	}
	if c.General.Interval < 1 {
		return fmt.Errorf("%w: general.interval must be at least 1 second, got %d", ErrInvalid, c.General.Interval)
	}
	if c.General.Refresh < 1 {
		return fmt.Errorf("%w: general.refresh must be at least 1 second, got %d", ErrInvalid, c.General.Refresh)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level %q (want debug, info, warn or error)", ErrInvalid, c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: logging.format %q (want text or json)", ErrInvalid, c.Logging.Format)
	}
	return nil
}

// DataDirs returns the configured data directories, or the platform
// defaults when none are configured.
func (c Config) DataDirs() []string {
	if len(c.General.DataDirs) > 0 {
		return c.General.DataDirs
	}
	return DefaultDataDirs()
}

// DBPath returns the configured database path or the default one.
func (c Config) DBPath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	return filepath.Join(StateDir(), "carbon.db")
}

// DefaultDataDirs lists the candidate Claude Code project directories for
// this platform, in search order.
func DefaultDataDirs() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return platformDataDirs(home)
}

func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", AppName, "config.toml")
}

// StateDir holds the database and the TUI log file.
func StateDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", AppName)
}

// DefaultLogPath is where the TUI logs when logging.file is empty.
func DefaultLogPath() string {
	return filepath.Join(StateDir(), AppName+".log")
}

func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // use defaults
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
