package catalog

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Dataset is the on-disk YAML form of an item collection:
//
//	items:
//	  - name: Desk
//	    description: Oak standing desk
//	    price: 120
//	    quantity: 3
type Dataset struct {
	Items []Item `yaml:"items"`
}

// LoadFile reads an item dataset from a YAML file.
//
// Unknown fields are rejected so typos in datasets fail loudly instead
// of silently dropping values.
func LoadFile(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}

	var ds Dataset
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&ds); err != nil {
		return nil, fmt.Errorf("failed to parse dataset YAML: %w", err)
	}

	return ds.Items, nil
}
