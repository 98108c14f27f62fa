// Package catalog defines the product records the engines operate on and
// the dispatch layer between caller-chosen field names and the strongly
// typed key functions the engines require.
//
// The engines in internal/engine are generic over the key type; a sort
// request arrives with a field NAME ("price", "name", "quantity"). This
// package resolves that name once, outside the engines, into a typed key
// function via a fixed closure table, and erases the per-key trace types
// behind []any for serialization.
//
// Name keys are case-folded and NFC-normalized so that text ordering is
// case-insensitive and agrees across Unicode representations of the same
// string.
package catalog
