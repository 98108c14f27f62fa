// Package harness provides conformance testing for the stepwise engines.
//
// The harness loads scenarios, runs one engine operation per scenario,
// and evaluates assertions against the result. Because the engines are
// pure and deterministic, a scenario needs no setup or teardown: the
// item list IS the entire input state.
//
// # Scenario Format
//
// Scenarios are defined in YAML files:
//
//	name: sort_by_price_quicksort_steps
//	description: "Price sort records partition snapshots"
//	items:
//	  - { name: Desk, price: 120, quantity: 3 }
//	  - { name: Lamp, price: 45, quantity: 10 }
//	op:
//	  kind: sort          # sort | pick
//	  method: quicksort   # sort only: quicksort | mergesort
//	  by: price           # sort only: price | name | quantity
//	  steps: true         # sort only: record the trace
//	  budget: 200         # pick only
//	assertions:
//	  - type: order
//	    order: [Lamp, Desk]
//	  - type: trace_count
//	    count: 4
//
// Items may instead come from a dataset file referenced by path relative
// to the scenario file:
//
//	dataset: ../datasets/furniture.yaml
//
// # Assertion Types
//
//   - order: the result sequence carries exactly these item names, in order
//   - sorted_by: the sorted sequence is non-decreasing under the named field
//   - trace_count: the trace holds exactly N snapshots
//   - total_spent: the selection spent exactly this amount
//   - within_budget: the selection spent no more than its budget
//
// # Golden Traces
//
// RunWithGolden compares a scenario's recorded trace against a golden
// file under testdata/golden. Traces are deterministic by construction,
// so golden files double as a regression net for recursion shape and
// snapshot placement.
package harness
