package domain

import "sort"

// Dataset is the full set of materials, recipes and settings a valuation runs against.
// Once handed to a resolver a Dataset must not be modified; the dataset store
// publishes fresh copies instead.
type Dataset struct {
	Materials map[string]float64 `json:"materials" yaml:"materials" validate:"required,dive,keys,required,endkeys"`
	Recipes   map[string]Recipe  `json:"recipes" yaml:"recipes" validate:"required,dive,keys,required,endkeys"`
	Settings  Settings           `json:"settings" yaml:"settings"`
}

// NewDataset returns an empty dataset with default settings
func NewDataset() *Dataset {
	return &Dataset{
		Materials: make(map[string]float64),
		Recipes:   make(map[string]Recipe),
		Settings: Settings{
			EfficiencyThreshold: DefaultEfficiencyThreshold,
		},
	}
}

// Material looks a name up among the materials
func (d *Dataset) Material(name string) (Material, bool) {
	price, ok := d.Materials[name]
	if !ok {
		return Material{}, false
	}
	return Material{Name: name, Price: price}, true
}

// Recipe looks a name up among the recipes
func (d *Dataset) Recipe(name string) (Recipe, bool) {
	recipe, ok := d.Recipes[name]
	if !ok {
		return Recipe{}, false
	}
	recipe.Name = name
	return recipe, true
}

// Kind resolves a name first as a material, then as a recipe
func (d *Dataset) Kind(name string) (ItemKind, bool) {
	if _, ok := d.Materials[name]; ok {
		return ItemKindMaterial, true
	}
	if _, ok := d.Recipes[name]; ok {
		return ItemKindRecipe, true
	}
	return "", false
}

// RecipeNames returns every recipe name in sorted order
func (d *Dataset) RecipeNames() []string {
	names := make([]string, 0, len(d.Recipes))
	for name := range d.Recipes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MaterialNames returns every material name in sorted order
func (d *Dataset) MaterialNames() []string {
	names := make([]string, 0, len(d.Materials))
	for name := range d.Materials {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy of the dataset
func (d *Dataset) Clone() *Dataset {
	out := &Dataset{
		Materials: make(map[string]float64, len(d.Materials)),
		Recipes:   make(map[string]Recipe, len(d.Recipes)),
		Settings:  d.Settings,
	}
	for name, price := range d.Materials {
		out.Materials[name] = price
	}
	for name, recipe := range d.Recipes {
		out.Recipes[name] = recipe.Clone()
	}
	if d.Settings.WorkLifeBalanceLevel != nil {
		level := *d.Settings.WorkLifeBalanceLevel
		out.Settings.WorkLifeBalanceLevel = &level
	}
	return out
}
