package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/stepwise/internal/catalog"
	"github.com/roach88/stepwise/internal/engine"
)

func sortResult(items ...catalog.Item) *Result {
	r := NewResult()
	r.Sorted = items
	return r
}

func pickResult(budget, spent float64, items ...catalog.Item) *Result {
	r := NewResult()
	r.Selection = &engine.Selection[catalog.Item]{
		Budget:     budget,
		TotalSpent: spent,
		Selected:   items,
	}
	return r
}

func TestAssertOrder(t *testing.T) {
	result := sortResult(
		catalog.Item{Name: "A"},
		catalog.Item{Name: "B"},
	)

	assert.NoError(t, evaluate(result, Assertion{Type: "order", Order: []string{"A", "B"}}))

	err := evaluate(result, Assertion{Type: "order", Order: []string{"B", "A"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first mismatch at index 0")

	err = evaluate(result, Assertion{Type: "order", Order: []string{"A"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 items")
}

func TestAssertOrder_UsesSelectionForPicks(t *testing.T) {
	result := pickResult(10, 5, catalog.Item{Name: "X"})

	assert.NoError(t, evaluate(result, Assertion{Type: "order", Order: []string{"X"}}))
}

func TestAssertSortedBy(t *testing.T) {
	ordered := sortResult(
		catalog.Item{Name: "cheap", Price: 1},
		catalog.Item{Name: "mid", Price: 2},
		catalog.Item{Name: "dear", Price: 2},
	)
	assert.NoError(t, evaluate(ordered, Assertion{Type: "sorted_by", Field: "price"}))

	unordered := sortResult(
		catalog.Item{Name: "dear", Price: 9},
		catalog.Item{Name: "cheap", Price: 1},
	)
	err := evaluate(unordered, Assertion{Type: "sorted_by", Field: "price"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "descent at index 0")

	err = evaluate(ordered, Assertion{Type: "sorted_by", Field: "color"})
	assert.ErrorContains(t, err, "unknown sort field")
}

func TestAssertSortedBy_NameFolding(t *testing.T) {
	// "apple" < "Banana" only under case folding.
	result := sortResult(
		catalog.Item{Name: "apple"},
		catalog.Item{Name: "Banana"},
	)
	assert.NoError(t, evaluate(result, Assertion{Type: "sorted_by", Field: "name"}))
}

func TestAssertTraceCount(t *testing.T) {
	result := sortResult()
	result.Steps = []any{1, 2, 3}

	assert.NoError(t, evaluate(result, Assertion{Type: "trace_count", Count: 3}))
	assert.Error(t, evaluate(result, Assertion{Type: "trace_count", Count: 2}))
}

func TestAssertTotalSpent(t *testing.T) {
	result := pickResult(100, 19)

	assert.NoError(t, evaluate(result, Assertion{Type: "total_spent", Spent: 19}))
	assert.Error(t, evaluate(result, Assertion{Type: "total_spent", Spent: 20}))

	// total_spent on a sort result is itself a failure.
	assert.Error(t, evaluate(sortResult(), Assertion{Type: "total_spent", Spent: 0}))
}

func TestAssertWithinBudget(t *testing.T) {
	assert.NoError(t, evaluate(pickResult(100, 99), Assertion{Type: "within_budget"}))
	assert.NoError(t, evaluate(pickResult(100, 100), Assertion{Type: "within_budget"}))
	assert.Error(t, evaluate(pickResult(100, 101), Assertion{Type: "within_budget"}))
}

func TestEvaluateAssertions_CollectsFailures(t *testing.T) {
	result := sortResult(catalog.Item{Name: "A"})

	failures := EvaluateAssertions(result, []Assertion{
		{Type: "order", Order: []string{"A"}},
		{Type: "trace_count", Count: 5},
		{Type: "nonsense"},
	})

	require.Len(t, failures, 2)
	assert.Contains(t, failures[0], "assertion 1")
	assert.Contains(t, failures[1], "unknown assertion type")
}
