package catalog

import "fmt"

// ValidationError describes one problem found in a dataset.
// Structured so the CLI can render it in both text and JSON output.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Validation error codes.
const (
	// ErrCodeEmptyName flags an item without a name.
	ErrCodeEmptyName = "E001"

	// ErrCodeNegativePrice flags a negative price. The engines treat
	// negative prices as undefined input, so datasets must not carry them.
	ErrCodeNegativePrice = "E002"

	// ErrCodeNegativeQuantity flags a negative quantity. The greedy
	// ratio floors quantity at 1, but a negative stock count is a data
	// error regardless.
	ErrCodeNegativeQuantity = "E003"

	// ErrCodeDuplicateID flags two items carrying the same explicit ID.
	ErrCodeDuplicateID = "E004"
)

// Validate checks a dataset for problems the engines do not guard
// against themselves. Returns nil when the dataset is clean.
func Validate(items []Item) []ValidationError {
	var errs []ValidationError

	seen := make(map[int64]int)
	for i, it := range items {
		field := fmt.Sprintf("items[%d]", i)

		if it.Name == "" {
			errs = append(errs, ValidationError{
				Field:   field + ".name",
				Message: "item name must not be empty",
				Code:    ErrCodeEmptyName,
			})
		}
		if it.Price < 0 {
			errs = append(errs, ValidationError{
				Field:   field + ".price",
				Message: fmt.Sprintf("price must not be negative (got %v)", it.Price),
				Code:    ErrCodeNegativePrice,
			})
		}
		if it.Quantity < 0 {
			errs = append(errs, ValidationError{
				Field:   field + ".quantity",
				Message: fmt.Sprintf("quantity must not be negative (got %d)", it.Quantity),
				Code:    ErrCodeNegativeQuantity,
			})
		}
		if it.ID != 0 {
			if prev, ok := seen[it.ID]; ok {
				errs = append(errs, ValidationError{
					Field:   field + ".id",
					Message: fmt.Sprintf("id %d already used by items[%d]", it.ID, prev),
					Code:    ErrCodeDuplicateID,
				})
			} else {
				seen[it.ID] = i
			}
		}
	}

	return errs
}
