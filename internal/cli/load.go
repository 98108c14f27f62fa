package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/stepwise/internal/catalog"
	"github.com/roach88/stepwise/internal/store"
)

// LoadOptions holds flags for the load command.
type LoadOptions struct {
	*RootOptions
	Database string
}

// LoadResult is the load command's output payload.
type LoadResult struct {
	Imported int `json:"imported"`
	Total    int `json:"total"`
}

// NewLoadCommand creates the load command.
func NewLoadCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LoadOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "load <dataset.yaml>",
		Short: "Import a YAML dataset into a catalog database",
		Long: `Import items from a YAML dataset into a SQLite catalog database,
creating the database if it doesn't exist. The dataset is validated
first; a dataset with problems imports nothing.

Example:
  stepwise load --db catalog.db items.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite catalog database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runLoad(opts *LoadOptions, datasetPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	items, err := catalog.LoadFile(datasetPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load dataset", err)
	}

	if errs := catalog.Validate(items); len(errs) > 0 {
		if outErr := formatter.Error("E100", fmt.Sprintf("dataset has %d problem(s)", len(errs)), errs); outErr != nil {
			return outErr
		}
		return NewExitError(ExitFailure, "dataset validation failed")
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open catalog database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	ctx := cmd.Context()
	if err := st.ImportItems(ctx, items); err != nil {
		return WrapExitError(ExitCommandError, "import failed", err)
	}

	total, err := st.Count(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to count catalog", err)
	}

	slog.Info("dataset imported", "imported", len(items), "total", total, "db", opts.Database)

	result := LoadResult{Imported: len(items), Total: total}
	if opts.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintf(formatter.Writer, "imported %d item(s); catalog now holds %d\n", result.Imported, result.Total)
	return nil
}
