package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/stepwise/internal/catalog"
)

// ValidationResult holds dataset validation results.
type ValidationResult struct {
	Valid  bool                      `json:"valid"`
	Errors []catalog.ValidationError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <dataset.yaml>",
		Short: "Validate an item dataset",
		Long: `Validate a YAML item dataset without importing or sorting it.

Checks for empty names, negative prices and quantities, and duplicate
explicit IDs - the problems the engines do not guard against themselves.

Exit codes:
  0 - Dataset is valid
  1 - Dataset has validation problems
  2 - Command error (unreadable or unparseable file)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, datasetPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	items, err := catalog.LoadFile(datasetPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load dataset", err)
	}

	formatter.VerboseLog("loaded %d item(s) from %s", len(items), datasetPath)

	errs := catalog.Validate(items)
	result := ValidationResult{Valid: len(errs) == 0, Errors: errs}

	if opts.Format == "json" {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else if err := outputValidateText(formatter, result); err != nil {
		return err
	}

	if !result.Valid {
		return NewExitError(ExitFailure, fmt.Sprintf("dataset has %d problem(s)", len(errs)))
	}
	return nil
}

func outputValidateText(formatter *OutputFormatter, result ValidationResult) error {
	w := formatter.Writer
	if result.Valid {
		fmt.Fprintln(w, "dataset is valid")
		return nil
	}
	fmt.Fprintf(w, "%d problem(s) found:\n", len(result.Errors))
	for _, e := range result.Errors {
		fmt.Fprintf(w, "  [%s] %s: %s\n", e.Code, e.Field, e.Message)
	}
	return nil
}
