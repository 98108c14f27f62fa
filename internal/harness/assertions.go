package harness

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/roach88/stepwise/internal/catalog"
)

// Assertion validates one aspect of a scenario result.
// The Type field selects which of the remaining fields apply.
type Assertion struct {
	// Type is one of: order, sorted_by, trace_count, total_spent,
	// within_budget.
	Type string `yaml:"type"`

	// Order is the exact expected item-name sequence (type "order").
	Order []string `yaml:"order,omitempty"`

	// Field is the sort field to verify (type "sorted_by").
	Field string `yaml:"field,omitempty"`

	// Count is the expected snapshot count (type "trace_count").
	Count int `yaml:"count,omitempty"`

	// Spent is the expected exact total (type "total_spent").
	Spent float64 `yaml:"spent,omitempty"`
}

// AssertionError describes one failed assertion with enough context to
// debug the failure without re-running the scenario.
type AssertionError struct {
	Type     string
	Expected string
	Actual   string
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  actual: %s", e.Actual)
	return buf.String()
}

// EvaluateAssertions checks every assertion against the result and
// returns the failure messages. An empty slice means all held.
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	var failures []string
	for i, a := range assertions {
		if err := evaluate(result, a); err != nil {
			failures = append(failures, fmt.Sprintf("assertion %d: %v", i, err))
		}
	}
	return failures
}

func evaluate(result *Result, a Assertion) error {
	switch a.Type {
	case "order":
		return assertOrder(result, a)
	case "sorted_by":
		return assertSortedBy(result, a)
	case "trace_count":
		return assertTraceCount(result, a)
	case "total_spent":
		return assertTotalSpent(result, a)
	case "within_budget":
		return assertWithinBudget(result)
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
}

// assertOrder checks the result sequence carries exactly the expected
// names, in order. Applies to the sorted items of a sort scenario and
// the selected items of a pick scenario.
func assertOrder(result *Result, a Assertion) error {
	actual := catalog.Names(result.selected())
	if len(actual) != len(a.Order) {
		return &AssertionError{
			Type:     "order",
			Expected: fmt.Sprintf("%d items: %v", len(a.Order), a.Order),
			Actual:   fmt.Sprintf("%d items: %v", len(actual), actual),
		}
	}
	for i := range actual {
		if actual[i] != a.Order[i] {
			return &AssertionError{
				Type:     "order",
				Expected: fmt.Sprintf("%v", a.Order),
				Actual:   fmt.Sprintf("%v (first mismatch at index %d)", actual, i),
			}
		}
	}
	return nil
}

// assertSortedBy checks the sorted sequence is non-decreasing under the
// named field's key.
func assertSortedBy(result *Result, a Assertion) error {
	field, err := catalog.ParseSortField(a.Field)
	if err != nil {
		return err
	}

	var bad int
	var ok bool
	switch field {
	case catalog.SortByPrice:
		bad, ok = firstDescent(result.Sorted, catalog.PriceKey)
	case catalog.SortByName:
		bad, ok = firstDescent(result.Sorted, catalog.NameKey)
	case catalog.SortByQuantity:
		bad, ok = firstDescent(result.Sorted, catalog.QuantityKey)
	}
	if ok {
		return nil
	}
	return &AssertionError{
		Type:     "sorted_by",
		Expected: fmt.Sprintf("non-decreasing %s keys", field),
		Actual:   fmt.Sprintf("descent at index %d (%v > %v)", bad, result.Sorted[bad], result.Sorted[bad+1]),
	}
}

// firstDescent returns the index of the first out-of-order adjacent pair,
// or ok=true when the sequence is non-decreasing under key.
func firstDescent[K cmp.Ordered](items []catalog.Item, key func(catalog.Item) K) (int, bool) {
	for i := 0; i+1 < len(items); i++ {
		if key(items[i]) > key(items[i+1]) {
			return i, false
		}
	}
	return 0, true
}

func assertTraceCount(result *Result, a Assertion) error {
	if len(result.Steps) == a.Count {
		return nil
	}
	return &AssertionError{
		Type:     "trace_count",
		Expected: fmt.Sprintf("%d snapshots", a.Count),
		Actual:   fmt.Sprintf("%d snapshots", len(result.Steps)),
	}
}

func assertTotalSpent(result *Result, a Assertion) error {
	if result.Selection == nil {
		return &AssertionError{
			Type:     "total_spent",
			Expected: "a pick result",
			Actual:   "scenario did not run a pick",
		}
	}
	if result.Selection.TotalSpent == a.Spent {
		return nil
	}
	return &AssertionError{
		Type:     "total_spent",
		Expected: fmt.Sprintf("%v", a.Spent),
		Actual:   fmt.Sprintf("%v", result.Selection.TotalSpent),
	}
}

func assertWithinBudget(result *Result) error {
	if result.Selection == nil {
		return &AssertionError{
			Type:     "within_budget",
			Expected: "a pick result",
			Actual:   "scenario did not run a pick",
		}
	}
	if result.Selection.TotalSpent <= result.Selection.Budget {
		return nil
	}
	return &AssertionError{
		Type:     "within_budget",
		Expected: fmt.Sprintf("total_spent <= %v", result.Selection.Budget),
		Actual:   fmt.Sprintf("total_spent = %v", result.Selection.TotalSpent),
	}
}
