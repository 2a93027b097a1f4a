package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/penwyp/go-logline/internal/data/parser"
	"github.com/penwyp/go-logline/internal/presentation/formatter"
	"github.com/penwyp/go-logline/internal/util"
)

func newParseCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse LINE [LINE...]",
		Short: "Classify log lines",
		Long: `Classifies each argument as one log line and prints the typed result.

A line whose marker is not I, W or E is reported as unknown with the whole
line as its text. A line with a valid marker but a bad field is reported as
unknown with only the unconsumed remainder as its text.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, opts, args)
		},
	}

	cmd.Flags().Bool("strict", false, "Exit with an error when any line is unknown")
	return cmd
}

func runParse(cmd *cobra.Command, opts *rootOptions, lines []string) error {
	results := make(formatter.LogLineResults, 0, len(lines))
	for i, line := range lines {
		record := formatter.NewLogLineRecord(line, parser.Parse(line))
		util.LogDebug("Classified line",
			util.F("index", i),
			util.F("kind", record.Kind),
			util.F("severity", record.Severity))
		results = append(results, record)
	}

	f, err := opts.newFormatter(cmd)
	if err != nil {
		return err
	}
	if err := f.Format(cmd.OutOrStdout(), results); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if unknown := results.UnknownCount(); unknown > 0 {
		util.LogInfof("%d of %d line(s) could not be classified", unknown, len(results))
		if opts.cfg.Strict {
			return fmt.Errorf("%w: %d unknown line(s)", ErrStrictFailure, unknown)
		}
	}
	return nil
}
