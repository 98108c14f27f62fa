// Package testutil provides deterministic item fixtures shared by the
// CLI and harness test suites.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/roach88/stepwise/internal/catalog"
)

// Furniture returns the four-item fixture used across the test suites.
//
// Price order:    Lamp(45) < Stool(60) < Chair(80) < Desk(120)
// Quantity order: Stool(2) < Desk(3) < Chair(5) < Lamp(10)
// Greedy ratios:  Desk(40) > Stool(30) > Chair(16) > Lamp(4.5)
//
// Returned fresh per call so tests can mutate their copy.
func Furniture() []catalog.Item {
	return []catalog.Item{
		{Name: "Desk", Description: "Oak standing desk", Price: 120, Quantity: 3},
		{Name: "Lamp", Description: "Brass reading lamp", Price: 45, Quantity: 10},
		{Name: "Chair", Description: "Walnut side chair", Price: 80, Quantity: 5},
		{Name: "Stool", Description: "Pine bar stool", Price: 60, Quantity: 2},
	}
}

// DatasetYAML marshals items into dataset file form.
func DatasetYAML(t *testing.T, items []catalog.Item) []byte {
	t.Helper()
	data, err := yaml.Marshal(catalog.Dataset{Items: items})
	if err != nil {
		t.Fatalf("failed to marshal dataset: %v", err)
	}
	return data
}

// WriteDataset writes items as a dataset YAML file in a fresh temp
// directory and returns the file's path.
func WriteDataset(t *testing.T, items []catalog.Item) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.yaml")
	if err := os.WriteFile(path, DatasetYAML(t, items), 0o644); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}
	return path
}
