// Package yamlcat loads a farm catalog from a YAML file, so deployments
// can tune crops, animals and the level table without a rebuild.
package yamlcat

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"farmstead/internal/domain/farm"
)

type catalogFile struct {
	Crops   []farm.Crop      `yaml:"crops"`
	Animals []farm.Animal    `yaml:"animals"`
	Levels  []farm.FarmLevel `yaml:"levels"`
}

// Load reads path and builds a validated catalog from it.
func Load(path string) (farm.Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return farm.Catalog{}, err
	}
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return farm.Catalog{}, fmt.Errorf("catalog yaml: %w", err)
	}
	cat, err := farm.NewCatalog(file.Crops, file.Animals, file.Levels)
	if err != nil {
		return farm.Catalog{}, fmt.Errorf("catalog yaml: %w", err)
	}
	return cat, nil
}
