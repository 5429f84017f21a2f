package main

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/variantkit/feen/stream"
)

// NewCanonCommand creates the canon command.
func NewCanonCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "canon [file]",
		Short: "Rewrite FEEN records in canonical form",
		Long: `Parse records leniently and print each one in canonical form.

Unmerged or unordered reserve entries come out merged and canonically
ordered; placements round-trip exactly. Invalid records abort with the
offending line number.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, closer, err := openInput(args, cmd)
			if err != nil {
				return err
			}
			defer closer()
			return runCanon(rootOpts, src, cmd)
		},
	}
	return cmd
}

func runCanon(opts *RootOptions, src io.Reader, cmd *cobra.Command) error {
	r := stream.NewReader(src)
	w := stream.NewWriter(cmd.OutOrStdout())
	for {
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if err := w.WritePosition(rec.Position); err != nil {
			return err
		}
	}
	return w.Flush()
}
