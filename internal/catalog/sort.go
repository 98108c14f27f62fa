package catalog

import (
	"cmp"
	"fmt"

	"github.com/roach88/stepwise/internal/engine"
)

// Method selects the sorting algorithm.
type Method string

const (
	MethodQuicksort Method = "quicksort"
	MethodMergesort Method = "mergesort"
)

// Methods lists the accepted method names.
var Methods = []Method{MethodQuicksort, MethodMergesort}

// ParseMethod resolves a caller-supplied method name.
func ParseMethod(s string) (Method, error) {
	for _, m := range Methods {
		if s == string(m) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown sort method %q: must be one of %v", s, Methods)
}

// Sort orders items by field using method. When withSteps is true the
// second return value holds one engine.Snapshot per recorded step, with
// the snapshot's element type following the field's key type (float64
// for price, string for name, int for quantity); otherwise it is nil.
//
// The field name is resolved to a typed key function exactly once, here,
// before the engines run.
func Sort(items []Item, method Method, field SortField, withSteps bool) ([]Item, []any, error) {
	switch field {
	case SortByPrice:
		return sortByKey(items, method, withSteps, PriceKey)
	case SortByName:
		return sortByKey(items, method, withSteps, NameKey)
	case SortByQuantity:
		return sortByKey(items, method, withSteps, QuantityKey)
	default:
		return nil, nil, fmt.Errorf("unknown sort field %q: must be one of %v", field, SortFields)
	}
}

func sortByKey[K cmp.Ordered](items []Item, method Method, withSteps bool, key func(Item) K) ([]Item, []any, error) {
	switch method {
	case MethodQuicksort:
		if withSteps {
			sorted, trace := engine.QuicksortWithSteps(items, key)
			return sorted, eraseTrace(trace), nil
		}
		return engine.Quicksort(items, key), nil, nil
	case MethodMergesort:
		if withSteps {
			sorted, trace := engine.MergesortWithSteps(items, key)
			return sorted, eraseTrace(trace), nil
		}
		return engine.Mergesort(items, key), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown sort method %q: must be one of %v", method, Methods)
	}
}

// eraseTrace drops the key type so traces of different key types can
// share one serialization path.
func eraseTrace[K cmp.Ordered](trace engine.Trace[K]) []any {
	steps := make([]any, len(trace))
	for i, snap := range trace {
		steps[i] = snap
	}
	return steps
}
