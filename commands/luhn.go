package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/penwyp/go-logline/internal/core/luhn"
	"github.com/penwyp/go-logline/internal/presentation/formatter"
	"github.com/penwyp/go-logline/internal/util"
)

func newLuhnCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "luhn NUMBER [NUMBER...]",
		Short: "Validate card numbers with the Luhn checksum",
		Long: `Validates each argument with the Luhn mod-10 checksum. Spaces and dashes
between digit groups are ignored. Zero, negative and non-numeric input is
never valid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLuhn(cmd, opts, args)
		},
	}

	cmd.Flags().Bool("strict", false, "Exit with an error when any number is invalid")
	return cmd
}

func runLuhn(cmd *cobra.Command, opts *rootOptions, numbers []string) error {
	results := make(formatter.CardResults, 0, len(numbers))
	for _, number := range numbers {
		record := formatter.CardRecord{Input: number}

		valid, err := luhn.ValidateString(number)
		if err != nil {
			util.LogWarnf("Rejected %q: %v", number, err)
			record.Error = err.Error()
		} else {
			record.Digits = luhn.Normalize(number)
			record.Valid = valid
		}
		results = append(results, record)
	}

	f, err := opts.newFormatter(cmd)
	if err != nil {
		return err
	}
	if err := f.Format(cmd.OutOrStdout(), results); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if invalid := results.InvalidCount(); invalid > 0 && opts.cfg.Strict {
		return fmt.Errorf("%w: %d invalid number(s)", ErrStrictFailure, invalid)
	}
	return nil
}
