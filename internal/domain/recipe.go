package domain

import "sort"

// Category tags a recipe with the kind of crafting action it represents.
type Category string

// Recipe categories
const (
	CategoryProcessedGood Category = "processed_good"
	CategoryWeaving       Category = "weaving"
	CategoryCrafting      Category = "crafting"
	CategoryCooking       Category = "cooking"
	CategoryAlchemy       Category = "alchemy"
	CategorySmithing      Category = "smithing"
)

// Categories lists every valid recipe category
var Categories = []Category{
	CategoryProcessedGood,
	CategoryWeaving,
	CategoryCrafting,
	CategoryCooking,
	CategoryAlchemy,
	CategorySmithing,
}

// IsValid reports whether c is one of the known categories
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ConservationExempt reports whether ingredient conservation is ignored for this category.
// Processed goods and weaving always consume their full ingredient counts.
func (c Category) ConservationExempt() bool {
	return c == CategoryProcessedGood || c == CategoryWeaving
}

// Recipe is a craftable item consuming materials or other recipes
type Recipe struct {
	Name        string             `json:"-" yaml:"-"`
	Category    Category           `json:"category" yaml:"category" validate:"required"`
	Stamina     float64            `json:"stamina" yaml:"stamina" validate:"gte=0"`
	Ingredients map[string]float64 `json:"ingredients" yaml:"ingredients" validate:"dive,keys,required,endkeys,gt=0"`
}

// IngredientNames returns the ingredient names in sorted order
func (r Recipe) IngredientNames() []string {
	names := make([]string, 0, len(r.Ingredients))
	for name := range r.Ingredients {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy of the recipe
func (r Recipe) Clone() Recipe {
	out := r
	out.Ingredients = make(map[string]float64, len(r.Ingredients))
	for k, v := range r.Ingredients {
		out.Ingredients[k] = v
	}
	return out
}
