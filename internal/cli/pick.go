package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/stepwise/internal/catalog"
	"github.com/roach88/stepwise/internal/engine"
)

// PickOptions holds flags for the pick command.
type PickOptions struct {
	*RootOptions
	InputOptions
	Budget float64
}

// NewPickCommand creates the pick command.
func NewPickCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PickOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Greedily select items under a budget",
		Long: `Select catalog items under a budget with a single greedy pass.

Items are ranked by price per unit descending and scanned once; an item
is selected iff its price still fits the remaining budget. Skipped items
are never revisited. The total spent never exceeds the budget.

Examples:
  stepwise pick --input items.yaml --budget 200
  stepwise pick --db catalog.db --budget 99.5 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(opts, cmd)
		},
	}

	addInputFlags(cmd, &opts.InputOptions)
	cmd.Flags().Float64Var(&opts.Budget, "budget", 0, "available budget (required, must be positive)")
	_ = cmd.MarkFlagRequired("budget")

	return cmd
}

func runPick(opts *PickOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	// The engine accepts any budget; rejecting nonsense is this layer's job.
	if opts.Budget <= 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("--budget must be positive (got %v)", opts.Budget))
	}

	items, err := loadItems(cmd.Context(), &opts.InputOptions)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return NewExitError(ExitCommandError, "no items in catalog")
	}

	slog.Debug("selecting items", "count", len(items), "budget", opts.Budget)

	selection := engine.GreedyBestProducts(items, opts.Budget)

	if opts.Format == "json" {
		return formatter.Success(selection)
	}
	return outputPickText(formatter, selection)
}

func outputPickText(formatter *OutputFormatter, sel engine.Selection[catalog.Item]) error {
	w := formatter.Writer
	fmt.Fprintf(w, "budget %v: selected %d item(s), spent %v\n", sel.Budget, len(sel.Selected), sel.TotalSpent)
	for _, it := range sel.Selected {
		fmt.Fprintf(w, "  %-20s price=%v quantity=%d\n", it.Name, it.Price, it.Quantity)
	}
	return nil
}
