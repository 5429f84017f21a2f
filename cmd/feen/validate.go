package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/variantkit/feen/stream"
)

// ValidationIssue is one invalid record line.
type ValidationIssue struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// ValidationReport summarizes a validate run.
type ValidationReport struct {
	Valid   bool              `json:"valid"`
	Records int               `json:"records"`
	Issues  []ValidationIssue `json:"issues,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate FEEN records from a file or stdin",
		Long: `Validate newline-delimited FEEN records.

Reads records from the given file, or stdin when no file is given. With
--strict, reserve fields must already be in canonical form. Exits non-zero
if any record is invalid.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, closer, err := openInput(args, cmd)
			if err != nil {
				return err
			}
			defer closer()
			return runValidate(rootOpts, src, cmd)
		},
	}
	return cmd
}

func runValidate(opts *RootOptions, src io.Reader, cmd *cobra.Command) error {
	var ropts []stream.ReaderOption
	if opts.Strict {
		ropts = append(ropts, stream.WithStrict())
	}
	r := stream.NewReader(src, ropts...)

	report := ValidationReport{Valid: true}
	for {
		_, err := r.Next()
		if err == io.EOF {
			break
		}
		var recErr *stream.RecordError
		if errors.As(err, &recErr) {
			report.Valid = false
			report.Issues = append(report.Issues, ValidationIssue{Line: recErr.Line, Message: recErr.Err.Error()})
			continue
		}
		if err != nil {
			return err
		}
		report.Records++
	}

	if err := writeReport(cmd.OutOrStdout(), opts.Format, report); err != nil {
		return err
	}
	if !report.Valid {
		return fmt.Errorf("%d invalid record(s)", len(report.Issues))
	}
	return nil
}

func writeReport(w io.Writer, format string, report ValidationReport) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	for _, issue := range report.Issues {
		fmt.Fprintf(w, "line %d: %s\n", issue.Line, issue.Message)
	}
	if report.Valid {
		fmt.Fprintf(w, "ok: %d record(s)\n", report.Records)
	}
	return nil
}

// openInput resolves the optional file argument, defaulting to stdin.
func openInput(args []string, cmd *cobra.Command) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
