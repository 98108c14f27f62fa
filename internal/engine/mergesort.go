package engine

import "cmp"

// Mergesort returns the items ordered non-decreasing under key.
//
// The sort is stable: items with equal keys keep their relative input
// order, because the merge always prefers the left run on ties. The
// input slice is never mutated.
func Mergesort[T any, K cmp.Ordered](items []T, key func(T) K) []T {
	return mergesort(items, key, nil)
}

// MergesortWithSteps sorts like Mergesort and additionally records one
// snapshot per merge, of the fully merged run. For n items the trace
// holds exactly n-1 snapshots (one per internal node of the recursion
// tree); the final snapshot is the sorted sequence. The trace is fresh
// per call.
func MergesortWithSteps[T any, K cmp.Ordered](items []T, key func(T) K) ([]T, Trace[K]) {
	trace := Trace[K]{}
	sorted := mergesort(items, key, &trace)
	return sorted, trace
}

// mergesort is the top-down divide-and-conquer sort. A nil trace
// disables snapshot capture.
func mergesort[T any, K cmp.Ordered](arr []T, key func(T) K, trace *Trace[K]) []T {
	if len(arr) <= 1 {
		return arr
	}

	mid := len(arr) / 2
	left := mergesort(arr[:mid], key, trace)
	right := mergesort(arr[mid:], key, trace)
	return merge(left, right, key, trace)
}

// merge combines two sorted runs with a linear two-pointer scan.
// Ties take the left element first, which is what makes the sort stable.
func merge[T any, K cmp.Ordered](left, right []T, key func(T) K, trace *Trace[K]) []T {
	merged := make([]T, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if key(left[i]) <= key(right[j]) {
			merged = append(merged, left[i])
			i++
		} else {
			merged = append(merged, right[j])
			j++
		}
	}
	merged = append(merged, left[i:]...)
	merged = append(merged, right[j:]...)

	if trace != nil {
		*trace = append(*trace, keysOf(merged, key))
	}
	return merged
}
