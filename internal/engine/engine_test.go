package engine

// Shared test fixtures for the engine package.

// record is a payload with a distinguishable label, for checking how
// equal keys are ordered.
type record struct {
	label string
	val   int
}

func recordKey(r record) int { return r.val }

// product implements Product for greedy selector tests.
type product struct {
	name     string
	price    float64
	quantity int
}

func (p product) UnitPrice() float64 { return p.price }
func (p product) UnitCount() int     { return p.quantity }

func names(selected []product) []string {
	out := make([]string, len(selected))
	for i, p := range selected {
		out[i] = p.name
	}
	return out
}

func labels(records []record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.label
	}
	return out
}

func vals(records []record) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.val
	}
	return out
}

func recordsOf(values ...int) []record {
	out := make([]record, len(values))
	for i, v := range values {
		out[i] = record{label: string(rune('a' + i)), val: v}
	}
	return out
}
