package catalog

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// SortField names an Item field usable as a sort key.
type SortField string

const (
	SortByPrice    SortField = "price"
	SortByName     SortField = "name"
	SortByQuantity SortField = "quantity"
)

// SortFields lists the accepted field names.
var SortFields = []SortField{SortByPrice, SortByName, SortByQuantity}

// ParseSortField resolves a caller-supplied field name.
func ParseSortField(s string) (SortField, error) {
	for _, f := range SortFields {
		if s == string(f) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown sort field %q: must be one of %v", s, SortFields)
}

// PriceKey projects an item to its price.
func PriceKey(it Item) float64 { return it.Price }

// QuantityKey projects an item to its stock quantity.
func QuantityKey(it Item) int { return it.Quantity }

// NameKey projects an item to a case-folded, NFC-normalized form of its
// name, so ordering is case-insensitive and identical for composed and
// decomposed spellings of the same text.
func NameKey(it Item) string {
	// cases.Caser carries state; build one per call rather than sharing.
	return cases.Fold().String(norm.NFC.String(it.Name))
}
