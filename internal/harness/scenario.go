package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/roach88/stepwise/internal/catalog"
)

// Operation kinds.
const (
	OpSort = "sort"
	OpPick = "pick"
)

// Scenario defines one conformance scenario: an input item sequence, a
// single engine operation, and assertions on the outcome.
type Scenario struct {
	// Name uniquely identifies this scenario. Also the golden file name.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Items is the inline input sequence. Mutually exclusive with Dataset.
	Items []catalog.Item `yaml:"items,omitempty"`

	// Dataset is a path to an item dataset YAML file, relative to the
	// scenario file. Mutually exclusive with Items.
	Dataset string `yaml:"dataset,omitempty"`

	// Op is the engine operation to run.
	Op Op `yaml:"op"`

	// Assertions validate the result.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Op describes the engine operation a scenario runs.
type Op struct {
	// Kind is "sort" or "pick".
	Kind string `yaml:"kind"`

	// Method is the sort algorithm ("quicksort" or "mergesort").
	Method string `yaml:"method,omitempty"`

	// By is the sort field ("price", "name" or "quantity").
	By string `yaml:"by,omitempty"`

	// Steps requests trace capture during a sort.
	Steps bool `yaml:"steps,omitempty"`

	// Budget is the pick budget. Must be positive for pick scenarios.
	Budget float64 `yaml:"budget,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file.
// Dataset paths are resolved relative to the scenario file's directory.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "assertion:" vs "assertions:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse scenario YAML: %w", err)
	}

	if scenario.Dataset != "" && !filepath.IsAbs(scenario.Dataset) {
		scenario.Dataset = filepath.Join(filepath.Dir(path), scenario.Dataset)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and coherent.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Items) > 0 && s.Dataset != "" {
		return fmt.Errorf("items and dataset are mutually exclusive")
	}

	switch s.Op.Kind {
	case OpSort:
		if _, err := catalog.ParseMethod(s.Op.Method); err != nil {
			return err
		}
		if _, err := catalog.ParseSortField(s.Op.By); err != nil {
			return err
		}
		if s.Op.Budget != 0 {
			return fmt.Errorf("budget is only valid for pick scenarios")
		}
	case OpPick:
		// The engine accepts any budget; rejecting non-positive ones is
		// the caller's job, and the harness is a caller.
		if s.Op.Budget <= 0 {
			return fmt.Errorf("pick requires a positive budget (got %v)", s.Op.Budget)
		}
		if s.Op.Method != "" || s.Op.By != "" || s.Op.Steps {
			return fmt.Errorf("method, by and steps are only valid for sort scenarios")
		}
	default:
		return fmt.Errorf("op.kind must be %q or %q (got %q)", OpSort, OpPick, s.Op.Kind)
	}

	return nil
}
