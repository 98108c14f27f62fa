package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/stepwise/internal/engine"
)

func fixtureItems() []Item {
	return []Item{
		{Name: "Desk", Price: 120, Quantity: 3},
		{Name: "lamp", Price: 45, Quantity: 10},
		{Name: "Chair", Price: 80, Quantity: 5},
		{Name: "Stool", Price: 60, Quantity: 2},
	}
}

func TestSort_ByPrice(t *testing.T) {
	for _, method := range Methods {
		t.Run(string(method), func(t *testing.T) {
			sorted, steps, err := Sort(fixtureItems(), method, SortByPrice, false)
			require.NoError(t, err)
			assert.Nil(t, steps)
			assert.Equal(t, []string{"lamp", "Stool", "Chair", "Desk"}, Names(sorted))
		})
	}
}

func TestSort_ByNameIsCaseInsensitive(t *testing.T) {
	for _, method := range Methods {
		t.Run(string(method), func(t *testing.T) {
			sorted, _, err := Sort(fixtureItems(), method, SortByName, false)
			require.NoError(t, err)
			assert.Equal(t, []string{"Chair", "Desk", "lamp", "Stool"}, Names(sorted))
		})
	}
}

func TestSort_ByQuantity(t *testing.T) {
	sorted, _, err := Sort(fixtureItems(), MethodMergesort, SortByQuantity, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Stool", "Desk", "Chair", "lamp"}, Names(sorted))
}

func TestSort_WithStepsErasesKeyType(t *testing.T) {
	sorted, steps, err := Sort(fixtureItems(), MethodMergesort, SortByPrice, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"lamp", "Stool", "Chair", "Desk"}, Names(sorted))

	// 4 items, 3 merges.
	require.Len(t, steps, 3)
	final, ok := steps[len(steps)-1].(engine.Snapshot[float64])
	require.True(t, ok, "price snapshots carry float64 keys")
	assert.Equal(t, engine.Snapshot[float64]{45, 60, 80, 120}, final)
}

func TestSort_NameStepsCarryFoldedKeys(t *testing.T) {
	items := []Item{
		{Name: "Pear", Price: 1, Quantity: 1},
		{Name: "apple", Price: 2, Quantity: 1},
	}

	_, steps, err := Sort(items, MethodMergesort, SortByName, true)
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, engine.Snapshot[string]{"apple", "pear"}, steps[0])
}

func TestSort_UnknownMethodAndField(t *testing.T) {
	_, _, err := Sort(fixtureItems(), "bogosort", SortByPrice, false)
	assert.ErrorContains(t, err, "unknown sort method")

	_, _, err = Sort(fixtureItems(), MethodQuicksort, "color", false)
	assert.ErrorContains(t, err, "unknown sort field")
}

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod("quicksort")
	require.NoError(t, err)
	assert.Equal(t, MethodQuicksort, m)

	m, err = ParseMethod("mergesort")
	require.NoError(t, err)
	assert.Equal(t, MethodMergesort, m)

	_, err = ParseMethod("heapsort")
	assert.Error(t, err)
}
