package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/variantkit/feen/feen"
)

// InspectReport describes one parsed record.
type InspectReport struct {
	Canonical  string `json:"canonical"`
	Dimension  int    `json:"dimension"`
	Ranks      int    `json:"ranks"`
	RankWidths []int  `json:"rank_widths"`
	Uniform    bool   `json:"uniform"`
	FirstHand  int    `json:"first_hand"`
	SecondHand int    `json:"second_hand"`
	ActiveSide string `json:"active_side"`
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "inspect <record>",
		Short:         "Parse one record and describe its structure",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runInspect(opts *RootOptions, record string, cmd *cobra.Command) error {
	pos, err := feen.ParsePositionWithOptions(record, feen.PositionOptions{Strict: opts.Strict})
	if err != nil {
		return err
	}

	pl := pos.Placement()
	report := InspectReport{
		Canonical:  pos.Dump(),
		Dimension:  pl.Dimension(),
		Ranks:      pl.RankCount(),
		Uniform:    pl.CheckUniform() == nil,
		FirstHand:  pos.Hands().Size(feen.SideFirst),
		SecondHand: pos.Hands().Size(feen.SideSecond),
		ActiveSide: pos.Style().ActiveSide().String(),
	}
	for i := 0; i < pl.RankCount(); i++ {
		report.RankWidths = append(report.RankWidths, len(pl.Rank(i)))
	}

	return writeInspect(cmd.OutOrStdout(), opts.Format, report)
}

func writeInspect(w io.Writer, format string, report InspectReport) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	fmt.Fprintf(w, "canonical:   %s\n", report.Canonical)
	fmt.Fprintf(w, "dimension:   %d\n", report.Dimension)
	fmt.Fprintf(w, "ranks:       %d %v\n", report.Ranks, report.RankWidths)
	fmt.Fprintf(w, "uniform:     %v\n", report.Uniform)
	fmt.Fprintf(w, "first hand:  %d piece(s)\n", report.FirstHand)
	fmt.Fprintf(w, "second hand: %d piece(s)\n", report.SecondHand)
	fmt.Fprintf(w, "active side: %s\n", report.ActiveSide)
	return nil
}
