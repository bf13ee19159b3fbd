package export

import (
	"encoding/json"
	"os"

	"github.com/orirando/seedgen/pkg/generator"
)

// ExportJSON serializes the complete SeedUniverse to indented JSON.
func ExportJSON(universe *generator.SeedUniverse) ([]byte, error) {
	return json.MarshalIndent(universe, "", "  ")
}

// ExportJSONCompact serializes the SeedUniverse to compact JSON, suitable
// for storage or transmission.
func ExportJSONCompact(universe *generator.SeedUniverse) ([]byte, error) {
	return json.Marshal(universe)
}

// SaveJSONToFile exports universe to path as indented JSON.
func SaveJSONToFile(universe *generator.SeedUniverse, path string) error {
	data, err := ExportJSON(universe)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// SaveJSONCompactToFile exports universe to path as compact JSON.
func SaveJSONCompactToFile(universe *generator.SeedUniverse, path string) error {
	data, err := ExportJSONCompact(universe)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadJSONFromFile reads a SeedUniverse previously written by
// SaveJSONToFile or SaveJSONCompactToFile.
func LoadJSONFromFile(path string) (*generator.SeedUniverse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var universe generator.SeedUniverse
	if err := json.Unmarshal(data, &universe); err != nil {
		return nil, err
	}
	return &universe, nil
}
