package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/factorymaster/mission-control/backend/models"

	"gopkg.in/yaml.v3"
)

//go:embed default_curriculum.yaml
var defaultCurriculum []byte

var ErrInvalidCatalog = errors.New("invalid catalog")

// Default returns the built-in 100 day curriculum.
func Default() (models.Catalog, error) {
	return Parse(defaultCurriculum)
}

// Load reads a catalog from path, or the built-in curriculum when path is empty.
func Load(path string) (models.Catalog, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.Catalog{}, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return models.Catalog{}, fmt.Errorf("loading catalog %s: %w", path, err)
	}
	return c, nil
}

func Parse(data []byte) (models.Catalog, error) {
	var c models.Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return models.Catalog{}, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if err := Validate(c); err != nil {
		return models.Catalog{}, err
	}
	return c, nil
}

// Validate checks that phase ids are unique and that day ids are unique
// within their phase, which keeps every activity id unambiguous.
func Validate(c models.Catalog) error {
	phases := make(map[int]bool, len(c.Phases))
	for _, phase := range c.Phases {
		if phases[phase.ID] {
			return fmt.Errorf("%w: duplicate phase id %d", ErrInvalidCatalog, phase.ID)
		}
		phases[phase.ID] = true

		days := make(map[int]bool, len(phase.Days))
		for _, day := range phase.Days {
			if days[day.ID] {
				return fmt.Errorf("%w: duplicate day id %d in phase %d", ErrInvalidCatalog, day.ID, phase.ID)
			}
			days[day.ID] = true
		}
	}
	return nil
}
