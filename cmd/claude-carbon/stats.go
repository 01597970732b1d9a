package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/Byambaa0325/claude-carbon-tracker/internal/carbon"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/tracker"
	"github.com/Byambaa0325/claude-carbon-tracker/internal/ui/components"
)

// statsReport is the --json shape of the stats command.
type statsReport struct {
	TotalCO2Kg     float64            `json:"total_co2_kg"`
	TotalTokens    int                `json:"total_tokens"`
	InputTokens    int                `json:"input_tokens"`
	OutputTokens   int                `json:"output_tokens"`
	RequestCount   int                `json:"request_count"`
	EmissionFactor float64            `json:"emission_factor"`
	Tier           string             `json:"tier"`
	NextTier       string             `json:"next_tier,omitempty"`
	Progress       float64            `json:"progress"`
	Equivalents    carbon.Equivalents `json:"equivalents"`
	StartedAt      time.Time          `json:"started_at"`
	LastUpdatedAt  time.Time          `json:"last_updated_at"`
}

func newStatsCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Scan transcripts once and print the totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), opts, "")
			if err != nil {
				return err
			}
			defer s.Close()

			s.attachScanner()
			res := s.tracker.ScanNow(cmd.Context())
			s.logger.Debug().
				Int("files", res.Files).
				Int("records", res.Records).
				Msg("Scan finished")

			if asJSON {
				return writeStatsJSON(cmd.OutOrStdout(), s.tracker)
			}
			writeStatsText(cmd.OutOrStdout(), s.tracker, time.Now())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output in JSON format")
	return cmd
}

func buildReport(tr *tracker.Tracker) statsReport {
	st := tr.Stats()
	r := statsReport{
		TotalCO2Kg:     st.TotalCO2Kg,
		TotalTokens:    st.TotalTokens,
		InputTokens:    st.InputTokens,
		OutputTokens:   st.OutputTokens,
		RequestCount:   st.RequestCount,
		EmissionFactor: tr.EmissionFactor(),
		Tier:           tr.CurrentTier().ID,
		Progress:       tr.Progress(),
		Equivalents:    tr.Equivalents(),
		StartedAt:      st.StartedAt,
		LastUpdatedAt:  st.LastUpdatedAt,
	}
	if next, ok := tr.NextTier(); ok {
		r.NextTier = next.ID
	}
	return r
}

func writeStatsJSON(w io.Writer, tr *tracker.Tracker) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(buildReport(tr)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func writeStatsText(w io.Writer, tr *tracker.Tracker, now time.Time) {
	st := tr.Stats()
	tier := tr.CurrentTier()
	eq := tr.Equivalents()

	fmt.Fprintf(w, "%s %s\n\n", tier.Emoji, components.FormatMass(st.TotalCO2Kg))
	row := func(label, value string) {
		fmt.Fprintf(w, "%s %s\n", components.PadRight(label+":", 17), value)
	}
	row("Tier", fmt.Sprintf("%s (%s)", tier.Name, tier.Equivalent))
	if next, ok := tr.NextTier(); ok {
		row("Next tier", fmt.Sprintf("%s at %g kg (%s)", next.Name, next.Min, components.FormatPercent(tr.Progress())))
	}
	row("Tokens", fmt.Sprintf("%s (in %s, out %s)",
		components.FormatNumber(st.TotalTokens),
		components.FormatNumber(st.InputTokens),
		components.FormatNumber(st.OutputTokens)))
	row("Requests", components.FormatNumber(st.RequestCount))
	row("Trees/year", components.FormatAmount(eq.TreesNeeded))
	row("Km driven", components.FormatAmount(eq.KmDriven))
	row("Phone charges", components.FormatAmount(eq.PhoneCharges))
	row("60W bulb hours", components.FormatAmount(eq.BulbHours))
	row("Tracking since", components.FormatSince(st.StartedAt, now))
	row("Emission factor", fmt.Sprintf("%g kg CO₂ / 1000 tokens", tr.EmissionFactor()))
}
