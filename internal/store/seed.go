package store

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/jonathan/recipe-finder/internal/schemas"
	"github.com/jonathan/recipe-finder/internal/types"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// catalogFile is the top-level structure of a seed catalog.
type catalogFile struct {
	Recipes []types.Recipe `yaml:"recipes" json:"recipes"`
}

// LoadSeed reads a YAML seed catalog from path, or the embedded sample catalog
// when path is empty, and validates it against the catalog schema.
func LoadSeed(path string) ([]types.Recipe, error) {
	data := defaultCatalog
	source := "embedded catalog"
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
		}
		source = path
	}
	return ParseSeed(data, source)
}

// ParseSeed decodes and validates YAML seed data. source names the data in errors.
func ParseSeed(data []byte, source string) ([]types.Recipe, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", source, err)
	}
	if f.Recipes == nil {
		f.Recipes = []types.Recipe{}
	}

	if err := schemas.ValidateValue(schemas.CatalogSchema, f); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", source, err)
	}

	return f.Recipes, nil
}
