package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/stepwise/internal/catalog"
)

// SortOptions holds flags for the sort command.
type SortOptions struct {
	*RootOptions
	InputOptions
	Method string
	By     string
	Steps  bool
}

// SortResult is the sort command's output payload. Mirrors the response
// shape of the catalog ordering endpoint this tool grew out of.
type SortResult struct {
	Method string         `json:"method"`
	By     string         `json:"by"`
	Count  int            `json:"count"`
	Steps  []any          `json:"steps,omitempty"`
	Sorted []catalog.Item `json:"sorted"`
}

// NewSortCommand creates the sort command.
func NewSortCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SortOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort catalog items by a field",
		Long: `Sort catalog items with a deterministic comparison sort.

Items come from a YAML dataset (--input) or a SQLite catalog (--db).
With --steps, the output includes one key snapshot per recorded step of
the algorithm, suitable for visualizing how the sort progressed.

Examples:
  stepwise sort --input items.yaml --by price
  stepwise sort --db catalog.db --by name --method mergesort
  stepwise sort --input items.yaml --by quantity --steps --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(opts, cmd)
		},
	}

	addInputFlags(cmd, &opts.InputOptions)
	cmd.Flags().StringVar(&opts.Method, "method", "quicksort", "sort method (quicksort|mergesort)")
	cmd.Flags().StringVar(&opts.By, "by", "price", "sort field (price|name|quantity)")
	cmd.Flags().BoolVar(&opts.Steps, "steps", false, "record key snapshots of the sort's steps")

	return cmd
}

func runSort(opts *SortOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	method, err := catalog.ParseMethod(opts.Method)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --method", err)
	}
	field, err := catalog.ParseSortField(opts.By)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --by", err)
	}

	items, err := loadItems(cmd.Context(), &opts.InputOptions)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return NewExitError(ExitCommandError, "no items in catalog")
	}

	slog.Debug("sorting items", "count", len(items), "method", method, "by", field, "steps", opts.Steps)

	sorted, steps, err := catalog.Sort(items, method, field, opts.Steps)
	if err != nil {
		return WrapExitError(ExitCommandError, "sort failed", err)
	}

	result := SortResult{
		Method: string(method),
		By:     string(field),
		Count:  len(sorted),
		Steps:  steps,
		Sorted: sorted,
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}
	return outputSortText(formatter, result)
}

func outputSortText(formatter *OutputFormatter, result SortResult) error {
	w := formatter.Writer
	fmt.Fprintf(w, "%d item(s) sorted by %s (%s)\n", result.Count, result.By, result.Method)
	for _, it := range result.Sorted {
		fmt.Fprintf(w, "  %-20s price=%v quantity=%d\n", it.Name, it.Price, it.Quantity)
	}
	if result.Steps != nil {
		fmt.Fprintf(w, "steps (%d):\n", len(result.Steps))
		for i, snap := range result.Steps {
			fmt.Fprintf(w, "  %3d: %v\n", i+1, snap)
		}
	}
	return nil
}
