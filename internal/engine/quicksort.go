package engine

import "cmp"

// Quicksort returns the items ordered non-decreasing under key.
//
// The input slice is never mutated; the result is a new slice (for
// inputs of length <= 1 the input is returned as-is).
//
// Ordering of equal keys is only guaranteed within a single partition
// bucket: the linear partition scan keeps input order inside each of the
// less-than, equal and greater-than groups, but not across recursion
// levels. Callers that need a stable sort should use Mergesort.
func Quicksort[T any, K cmp.Ordered](items []T, key func(T) K) []T {
	return quicksort(items, key, nil)
}

// QuicksortWithSteps sorts like Quicksort and additionally records the
// partition trace: for every partition of more than one element, one
// snapshot of the bucket concatenation before recursing and one snapshot
// of the combined result after. The trace is fresh per call.
func QuicksortWithSteps[T any, K cmp.Ordered](items []T, key func(T) K) ([]T, Trace[K]) {
	trace := Trace[K]{}
	sorted := quicksort(items, key, &trace)
	return sorted, trace
}

// quicksort is the recursive three-way partition sort. A nil trace
// disables snapshot capture.
func quicksort[T any, K cmp.Ordered](arr []T, key func(T) K, trace *Trace[K]) []T {
	if len(arr) <= 1 {
		return arr
	}

	// Positional pivot: key of the middle element. Deterministic by
	// construction, quadratic on adversarial inputs.
	pivot := key(arr[len(arr)/2])

	var left, middle, right []T
	for _, it := range arr {
		switch k := key(it); {
		case k < pivot:
			left = append(left, it)
		case k > pivot:
			right = append(right, it)
		default:
			middle = append(middle, it)
		}
	}

	if trace != nil {
		snap := make(Snapshot[K], 0, len(arr))
		snap = append(snap, keysOf(left, key)...)
		snap = append(snap, keysOf(middle, key)...)
		snap = append(snap, keysOf(right, key)...)
		*trace = append(*trace, snap)
	}

	sortedLeft := quicksort(left, key, trace)
	sortedRight := quicksort(right, key, trace)

	merged := make([]T, 0, len(arr))
	merged = append(merged, sortedLeft...)
	merged = append(merged, middle...)
	merged = append(merged, sortedRight...)

	if trace != nil {
		*trace = append(*trace, keysOf(merged, key))
	}
	return merged
}
