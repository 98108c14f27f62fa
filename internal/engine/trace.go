package engine

import "cmp"

// Snapshot is the ordering of the working keys at one point during a
// stepped sort. Snapshots record keys, not items, so they stay cheap and
// directly comparable across runs.
type Snapshot[K cmp.Ordered] []K

// Trace is the ordered sequence of snapshots produced by one stepped
// sort invocation. Append-only; the engines never read it back.
type Trace[K cmp.Ordered] []Snapshot[K]

// keysOf projects every item through key, in order.
func keysOf[T any, K cmp.Ordered](items []T, key func(T) K) Snapshot[K] {
	snap := make(Snapshot[K], len(items))
	for i, it := range items {
		snap[i] = key(it)
	}
	return snap
}
