package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/stepwise/internal/catalog"
	"github.com/roach88/stepwise/internal/testutil"
)

func TestLoadCommand_ImportsDataset(t *testing.T) {
	dataset := testutil.WriteDataset(t, testutil.Furniture())
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	stdout, _, err := execute(t, "load", "--db", dbPath, dataset)
	require.NoError(t, err)
	assert.Contains(t, stdout, "imported 4 item(s); catalog now holds 4")

	// The imported catalog is immediately usable as a sort input.
	stdout, _, err = execute(t, "sort", "--db", dbPath, "--by", "price", "--format", "json")
	require.NoError(t, err)

	data := dataMap(t, decodeResponse(t, stdout))
	assert.Equal(t, float64(4), data["count"])
}

func TestLoadCommand_AccumulatesAcrossImports(t *testing.T) {
	dataset := testutil.WriteDataset(t, testutil.Furniture())
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	_, _, err := execute(t, "load", "--db", dbPath, dataset)
	require.NoError(t, err)

	stdout, _, err := execute(t, "load", "--db", dbPath, dataset, "--format", "json")
	require.NoError(t, err)

	data := dataMap(t, decodeResponse(t, stdout))
	assert.Equal(t, float64(4), data["imported"])
	assert.Equal(t, float64(8), data["total"])
}

func TestLoadCommand_RejectsInvalidDataset(t *testing.T) {
	dataset := testutil.WriteDataset(t, []catalog.Item{
		{Name: "Bad", Price: -1, Quantity: 1},
	})
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	_, _, err := execute(t, "load", "--db", dbPath, dataset)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.ErrorContains(t, err, "dataset validation failed")
}
