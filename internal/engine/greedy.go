package engine

import (
	"cmp"
	"slices"
)

// Product exposes the two numeric fields the budget selector reads.
// Everything else about an item is opaque to the engine.
type Product interface {
	// UnitPrice is the cost contribution of selecting the item.
	UnitPrice() float64

	// UnitCount is the stock quantity, used only to normalize the
	// ranking ratio.
	UnitCount() int
}

// Selection is the outcome of a greedy budget selection.
//
// Invariants: TotalSpent <= Budget, and TotalSpent is the exact sum of
// the selected items' prices. Selected preserves ranked order (not input
// order) and is never nil.
type Selection[T Product] struct {
	Budget     float64 `json:"budget"`
	TotalSpent float64 `json:"total_spent"`
	Selected   []T     `json:"selected_items"`
}

// GreedyRatio is the ranking heuristic for the budget selector:
// price per unit, with a quantity floor of 1 guarding division by zero.
//
// Items are ranked by this ratio DESCENDING, so the most expensive-per-
// unit items are considered first. That matches the behavior this engine
// replicates, even though "best value for money" would suggest the
// opposite order; callers wanting different semantics supply their own
// selection, not a flag here.
func GreedyRatio[T Product](item T) float64 {
	q := item.UnitCount()
	if q <= 0 {
		q = 1
	}
	return item.UnitPrice() / float64(q)
}

// GreedyBestProducts selects items under budget in a single greedy pass.
//
// Items are ranked by GreedyRatio descending (stable, so ratio ties keep
// input order), then scanned once: an item is selected iff its price
// still fits the remaining budget. Skipped items are never revisited,
// there is no backtracking and no partial quantities.
//
// An empty input, or a budget no item fits into, yields an empty
// selection with TotalSpent 0; that is valid output, not an error.
// Callers are responsible for rejecting non-positive budgets and
// negative prices before invocation.
func GreedyBestProducts[T Product](items []T, budget float64) Selection[T] {
	ranked := make([]T, len(items))
	copy(ranked, items)
	slices.SortStableFunc(ranked, func(a, b T) int {
		return cmp.Compare(GreedyRatio(b), GreedyRatio(a))
	})

	sel := Selection[T]{Budget: budget, Selected: []T{}}
	for _, it := range ranked {
		price := it.UnitPrice()
		if sel.TotalSpent+price <= budget {
			sel.Selected = append(sel.Selected, it)
			sel.TotalSpent += price
		}
	}
	return sel
}
