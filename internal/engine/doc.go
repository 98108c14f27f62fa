// Package engine implements the stepwise sorting and selection engines.
//
// The engines are pure functions over caller-owned data: they receive a
// sequence of items plus a key projection, and return freshly allocated
// results. Nothing is shared between invocations and nothing is retained
// after a call returns, so callers may run any number of invocations in
// parallel without coordination.
//
// DETERMINISM:
//
// Every engine is fully deterministic. Given the same input and the same
// key function, the output and the recorded trace are always identical:
//
//   - QuickSort picks its pivot positionally (the key of the middle
//     element, index len/2), never randomly.
//   - MergeSort splits at len/2 and its merge prefers the left run on
//     ties, which also makes it stable.
//   - The greedy selector ranks with a stable sort, so ratio ties keep
//     their input order.
//
// TRACES:
//
// The WithSteps variants record a Snapshot of the working keys at fixed
// points of the recursion (see each function's contract). Each top-level
// call starts from a fresh, empty Trace threaded through the recursion
// by pointer; traces are observational only and never influence the
// result.
//
// QuickSort keeps its classic worst case: O(n^2) on inputs that interact
// badly with the fixed middle pivot. That is an accepted property of the
// positional pivot, not something the engine tries to detect or repair.
package engine
