package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_CleanDataset(t *testing.T) {
	items := []Item{
		{ID: 1, Name: "Desk", Price: 120, Quantity: 3},
		{ID: 2, Name: "Lamp", Price: 45, Quantity: 0},
		{Name: "Chair", Price: 0, Quantity: 5}, // zero price and no ID are fine
	}

	assert.Nil(t, Validate(items))
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	items := []Item{
		{ID: 7, Name: "", Price: -3, Quantity: 2},
		{ID: 7, Name: "Lamp", Price: 45, Quantity: -1},
	}

	errs := Validate(items)
	require.Len(t, errs, 4)

	codes := make([]string, len(errs))
	for i, e := range errs {
		codes[i] = e.Code
	}
	assert.Equal(t, []string{
		ErrCodeEmptyName,
		ErrCodeNegativePrice,
		ErrCodeNegativeQuantity,
		ErrCodeDuplicateID,
	}, codes)

	assert.Equal(t, "items[0].name", errs[0].Field)
	assert.Equal(t, "items[1].id", errs[3].Field)
}
