package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/stepwise/internal/catalog"
)

func TestFurniture_FreshPerCall(t *testing.T) {
	first := Furniture()
	first[0].Price = 1

	second := Furniture()
	assert.Equal(t, float64(120), second[0].Price)
}

func TestWriteDataset_RoundTrips(t *testing.T) {
	path := WriteDataset(t, Furniture())

	items, err := catalog.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Furniture(), items)
}
