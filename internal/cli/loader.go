package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/stepwise/internal/catalog"
	"github.com/roach88/stepwise/internal/store"
)

// InputOptions are the shared flags choosing where items come from:
// a YAML dataset file or a SQLite catalog database.
type InputOptions struct {
	Input    string
	Database string
}

// addInputFlags registers the shared input flags on a command.
func addInputFlags(cmd *cobra.Command, opts *InputOptions) {
	cmd.Flags().StringVar(&opts.Input, "input", "", "path to a YAML item dataset")
	cmd.Flags().StringVar(&opts.Database, "db", "", "path to a SQLite catalog database")
}

// loadItems resolves the input flags into an item sequence.
// Exactly one of --input and --db must be set.
func loadItems(ctx context.Context, opts *InputOptions) ([]catalog.Item, error) {
	switch {
	case opts.Input != "" && opts.Database != "":
		return nil, NewExitError(ExitCommandError, "--input and --db are mutually exclusive")

	case opts.Input != "":
		slog.Debug("loading items from dataset", "path", opts.Input)
		items, err := catalog.LoadFile(opts.Input)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to load dataset", err)
		}
		return items, nil

	case opts.Database != "":
		slog.Debug("loading items from catalog database", "path", opts.Database)
		st, err := store.Open(opts.Database)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to open catalog database", err)
		}
		defer func() {
			if closeErr := st.Close(); closeErr != nil {
				slog.Error("error closing database", "error", closeErr)
			}
		}()

		items, err := st.Items(ctx)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to read catalog", err)
		}
		return items, nil

	default:
		return nil, NewExitError(ExitCommandError, "one of --input or --db is required")
	}
}
