// Package store provides the SQLite-backed product catalog.
//
// The store is strictly caller-side infrastructure: commands load items
// from it and hand them to the engines, which never touch the database.
// Reads return items ordered by id so that, for a given catalog, every
// invocation sees the same input sequence and therefore produces the
// same output and trace.
package store
