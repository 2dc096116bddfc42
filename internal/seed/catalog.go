package seed

import (
	_ "embed"
	"fmt"

	"tastebuds/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yml
var catalogYAML []byte

// Catalog is the curated demo content shipped with the seeder.
type Catalog struct {
	Ingredients []CatalogIngredient `yaml:"ingredients"`
	Cocktails   []CatalogRecipe     `yaml:"cocktails"`
	Dishes      []CatalogRecipe     `yaml:"dishes"`
	Pairings    []CatalogPairing    `yaml:"pairings"`
}

type CatalogIngredient struct {
	Name string                `yaml:"name"`
	Type models.IngredientType `yaml:"type"`
}

type CatalogRecipe struct {
	Name             string               `yaml:"name"`
	FlavorProfile    models.FlavorProfile `yaml:"flavor_profile"`
	PreparationSteps string               `yaml:"preparation_steps"`
}

// CatalogPairing names a cocktail and a dish from the same catalog.
type CatalogPairing struct {
	Cocktail string `yaml:"cocktail"`
	Dish     string `yaml:"dish"`
}

// DefaultCatalog parses the embedded catalog.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(catalogYAML)
}

// ParseCatalog decodes and validates a catalog document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	names := make(map[string]struct{}, len(c.Ingredients))
	for _, ing := range c.Ingredients {
		if ing.Name == "" || !ing.Type.Valid() {
			return fmt.Errorf("catalog ingredient %q: name and a dish/cocktail type are required", ing.Name)
		}
		if _, dup := names[ing.Name]; dup {
			return fmt.Errorf("catalog ingredient %q listed twice", ing.Name)
		}
		names[ing.Name] = struct{}{}
	}

	cocktails := make(map[string]struct{}, len(c.Cocktails))
	for _, r := range c.Cocktails {
		if err := r.validate("cocktail"); err != nil {
			return err
		}
		cocktails[r.Name] = struct{}{}
	}
	dishes := make(map[string]struct{}, len(c.Dishes))
	for _, r := range c.Dishes {
		if err := r.validate("dish"); err != nil {
			return err
		}
		dishes[r.Name] = struct{}{}
	}

	for _, p := range c.Pairings {
		if _, ok := cocktails[p.Cocktail]; !ok {
			return fmt.Errorf("catalog pairing references unknown cocktail %q", p.Cocktail)
		}
		if _, ok := dishes[p.Dish]; !ok {
			return fmt.Errorf("catalog pairing references unknown dish %q", p.Dish)
		}
	}
	return nil
}

func (r CatalogRecipe) validate(kind string) error {
	if r.Name == "" || r.PreparationSteps == "" {
		return fmt.Errorf("catalog %s %q: name and preparation_steps are required", kind, r.Name)
	}
	if !r.FlavorProfile.Valid() {
		return fmt.Errorf("catalog %s %q: unknown flavor profile %q", kind, r.Name, r.FlavorProfile)
	}
	return nil
}
