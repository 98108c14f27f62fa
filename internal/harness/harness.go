package harness

import (
	"fmt"

	"github.com/roach88/stepwise/internal/catalog"
	"github.com/roach88/stepwise/internal/engine"
)

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall scenario success: true iff every assertion held.
	Pass bool `json:"pass"`

	// Sorted holds the ordered items for sort scenarios.
	Sorted []catalog.Item `json:"sorted,omitempty"`

	// Steps holds the recorded trace when the scenario requested one.
	Steps []any `json:"steps,omitempty"`

	// Selection holds the greedy outcome for pick scenarios.
	Selection *engine.Selection[catalog.Item] `json:"selection,omitempty"`

	// Errors contains assertion failure messages. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a passing result to accumulate into.
func NewResult() *Result {
	return &Result{Pass: true, Errors: []string{}}
}

// AddError records an assertion failure and marks the result failed.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Pass = false
}

// selected returns the result's output sequence: the sorted items for a
// sort, the selected items for a pick.
func (r *Result) selected() []catalog.Item {
	if r.Selection != nil {
		return r.Selection.Selected
	}
	return r.Sorted
}

// Run executes a scenario and returns the result.
//
// The engines are pure, so execution is just: resolve the input items,
// invoke one engine, evaluate assertions. A scenario error (unreadable
// dataset, unknown op) is returned as an error; assertion failures are
// recorded on the result instead.
func Run(scenario *Scenario) (*Result, error) {
	items := scenario.Items
	if scenario.Dataset != "" {
		loaded, err := catalog.LoadFile(scenario.Dataset)
		if err != nil {
			return nil, fmt.Errorf("failed to load scenario dataset: %w", err)
		}
		items = loaded
	}

	result := NewResult()

	switch scenario.Op.Kind {
	case OpSort:
		method, err := catalog.ParseMethod(scenario.Op.Method)
		if err != nil {
			return nil, err
		}
		field, err := catalog.ParseSortField(scenario.Op.By)
		if err != nil {
			return nil, err
		}
		sorted, steps, err := catalog.Sort(items, method, field, scenario.Op.Steps)
		if err != nil {
			return nil, err
		}
		result.Sorted = sorted
		result.Steps = steps

	case OpPick:
		sel := engine.GreedyBestProducts(items, scenario.Op.Budget)
		result.Selection = &sel

	default:
		return nil, fmt.Errorf("unknown op kind %q", scenario.Op.Kind)
	}

	for _, msg := range EvaluateAssertions(result, scenario.Assertions) {
		result.AddError(msg)
	}

	return result, nil
}
