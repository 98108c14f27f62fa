package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortField(t *testing.T) {
	testCases := []struct {
		input   string
		want    SortField
		wantErr bool
	}{
		{"price", SortByPrice, false},
		{"name", SortByName, false},
		{"quantity", SortByQuantity, false},
		{"Price", "", true},
		{"created_at", "", true},
		{"", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			f, err := ParseSortField(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, f)
		})
	}
}

func TestNameKey_CaseInsensitive(t *testing.T) {
	upper := NameKey(Item{Name: "BANANA"})
	lower := NameKey(Item{Name: "banana"})
	mixed := NameKey(Item{Name: "BaNaNa"})

	assert.Equal(t, lower, upper)
	assert.Equal(t, lower, mixed)
}

func TestNameKey_NormalizationStable(t *testing.T) {
	composed := NameKey(Item{Name: "\u00c9clair"})   // E-acute as one rune
	decomposed := NameKey(Item{Name: "E\u0301clair"}) // E + combining acute

	assert.Equal(t, composed, decomposed)
}

func TestFieldKeys(t *testing.T) {
	it := Item{Name: "Desk", Price: 120.5, Quantity: 3}

	assert.Equal(t, 120.5, PriceKey(it))
	assert.Equal(t, 3, QuantityKey(it))
	assert.Equal(t, "desk", NameKey(it))
}
