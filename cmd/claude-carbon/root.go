package main

import (
	"github.com/spf13/cobra"

	"github.com/Byambaa0325/claude-carbon-tracker/internal/config"
)

type rootOptions struct {
	configPath string
	dataDirs   []string
	dbPath     string
	noPersist  bool
}

// NewRootCmd builds the command tree. Without a subcommand it runs watch.
func NewRootCmd(version string) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Track the carbon footprint of your Claude Code sessions",
		Long: `claude-carbon reads Claude Code transcripts, converts token usage into an
estimate of emitted CO₂ and reports milestones as the total grows.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, opts, false)
		},
	}

	cmd.Version = version
	cmd.SetVersionTemplate(config.AppName + " version {{.Version}}\n")

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", config.DefaultPath(), "config file path")
	cmd.PersistentFlags().StringSliceVar(&opts.dataDirs, "data-dir", nil, "Claude Code projects directory (repeatable; overrides config)")
	cmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "SQLite database path (overrides config)")
	cmd.PersistentFlags().BoolVar(&opts.noPersist, "no-persist", false, "keep totals in memory only")

	cmd.AddCommand(
		newWatchCmd(opts),
		newStatsCmd(opts),
		newStatusCmd(opts),
		newResetCmd(opts),
		newTiersCmd(),
	)
	return cmd
}

// applyOverrides puts command-line flags over a loaded config.
func (o *rootOptions) applyOverrides(cfg config.Config) config.Config {
	if len(o.dataDirs) > 0 {
		cfg.General.DataDirs = o.dataDirs
	}
	if o.dbPath != "" {
		cfg.Storage.Path = o.dbPath
	}
	return cfg
}
