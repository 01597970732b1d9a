package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Byambaa0325/claude-carbon-tracker/internal/ui/components"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/ui/overlays"
)

func newStatusCmd(opts *rootOptions) *cobra.Command {
	var detail bool
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Print the one-line status, for shell prompts and status bars",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), opts, "")
			if err != nil {
				return err
			}
			defer s.Close()

			s.attachScanner()
			s.tracker.ScanNow(cmd.Context())

			st := s.tracker.Stats()
			tier := s.tracker.CurrentTier()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, components.StatusLine{Emoji: tier.Emoji, Kg: st.TotalCO2Kg}.Text())
			if !detail {
				return nil
			}
			fmt.Fprintln(out, components.StatusDetail(tier.Name, tier.Equivalent, st.TotalTokens, st.RequestCount))

			mon := s.tracker.MonitoringStatus()
			fmt.Fprintln(out, overlays.MonitorStatus{
				Active:            mon.Active,
				PathsFound:        mon.PathsFound,
				MessagesProcessed: mon.MessagesProcessed,
			}.Summary())
			return nil
		},
	}
	cmd.Flags().BoolVarP(&detail, "detail", "d", false, "also print the tier, totals and monitoring summary")
	return cmd
}
