package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Byambaa0325/claude-carbon-tracker/internal/i18n"
)

func newResetCmd(opts *rootOptions) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Zero the accumulated totals",
		Long: `Zero the accumulated totals and restart the tracking period. Transcript
messages already counted stay counted, so they are not added again.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				fmt.Fprint(cmd.OutOrStdout(), i18n.T("reset_confirm")+" [y/N] ")
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			s, err := openSession(cmd.Context(), opts, "")
			if err != nil {
				return err
			}
			defer s.Close()

			s.tracker.Reset()
			s.logger.Info().Msg("Carbon tracking reset")
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("reset_done"))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
