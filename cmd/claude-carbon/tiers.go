package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Byambaa0325/claude-carbon-tracker/internal/milestone"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/ui/components"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/ui/views"
)

func newTiersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tiers",
		Short: "List the emission tiers and waypoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := milestone.Default()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Tiers")
			for _, t := range table.Tiers() {
				fmt.Fprintf(out, "  %s %s %s %s\n",
					t.Emoji,
					components.PadRight(t.Name, 20),
					components.PadRight(views.FormatRange(t), 16),
					t.Equivalent)
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Waypoints")
			for _, w := range table.Waypoints() {
				fmt.Fprintf(out, "  %s %s %s\n",
					w.Emoji,
					components.PadRight(fmt.Sprintf("%g kg", w.ThresholdKg), 10),
					strings.TrimSpace(w.Message))
			}
			return nil
		},
	}
}
