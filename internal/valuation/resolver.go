// Package valuation resolves the coin cost and stamina of items by walking the
// recipe dependency graph of a dataset.
package valuation

import (
	"math"

	"github.com/osse101/CraftValue_Go/internal/domain"
)

// Resolver computes costs against a single immutable dataset snapshot.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	dataset *domain.Dataset
}

// NewResolver creates a resolver bound to the given dataset
func NewResolver(dataset *domain.Dataset) *Resolver {
	return &Resolver{dataset: dataset}
}

// Dataset returns the snapshot the resolver reads from
func (r *Resolver) Dataset() *domain.Dataset {
	return r.dataset
}

// MaterialCost returns the coins spent on raw materials for one unit of name,
// excluding any stamina value.
func (r *Resolver) MaterialCost(name string, level int) (float64, error) {
	return r.materialCost(name, level, pathSet{})
}

// TotalCost returns the cost of name including stamina. A recipe costs the
// effective-count-weighted TotalCost of its ingredients plus Stamina(name) valued
// at the dataset's stamina value.
func (r *Resolver) TotalCost(name string, level int) (float64, error) {
	return r.totalCost(name, level, pathSet{})
}

// Stamina returns the stamina spent crafting one unit of name, sub-ingredients included.
func (r *Resolver) Stamina(name string, level int) (float64, error) {
	return r.stamina(name, level, pathSet{})
}

func (r *Resolver) materialCost(name string, level int, path pathSet) (float64, error) {
	if material, ok := r.dataset.Material(name); ok {
		return materialPrice(material)
	}

	recipe, childPath, err := r.enterRecipe(name, path)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for _, ingredient := range recipe.IngredientNames() {
		cost, err := r.materialCost(ingredient, level, childPath)
		if err != nil {
			return 0, err
		}
		total += EffectiveCount(recipe, ingredient, level) * cost
	}
	return total, nil
}

func (r *Resolver) totalCost(name string, level int, path pathSet) (float64, error) {
	if material, ok := r.dataset.Material(name); ok {
		return materialPrice(material)
	}

	recipe, childPath, err := r.enterRecipe(name, path)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for _, ingredient := range recipe.IngredientNames() {
		cost, err := r.totalCost(ingredient, level, childPath)
		if err != nil {
			return 0, err
		}
		total += EffectiveCount(recipe, ingredient, level) * cost
	}

	// The item's full stamina is valued at its own level on top of the
	// ingredient totals. path does not yet contain name, so cycles still surface.
	stamina, err := r.stamina(name, level, path)
	if err != nil {
		return 0, err
	}
	return total + stamina*r.dataset.Settings.StaminaValue, nil
}

func (r *Resolver) stamina(name string, level int, path pathSet) (float64, error) {
	if _, ok := r.dataset.Material(name); ok {
		return 0, nil
	}

	recipe, childPath, err := r.enterRecipe(name, path)
	if err != nil {
		return 0, err
	}

	total := recipe.Stamina
	for _, ingredient := range recipe.IngredientNames() {
		sub, err := r.stamina(ingredient, level, childPath)
		if err != nil {
			return 0, err
		}
		total += EffectiveCount(recipe, ingredient, level) * sub
	}

	if r.excludesOwnStamina(recipe) {
		total -= recipe.Stamina
	}
	return total, nil
}

// enterRecipe looks name up as a recipe and returns the path set its ingredients
// must be resolved with.
func (r *Resolver) enterRecipe(name string, path pathSet) (domain.Recipe, pathSet, error) {
	recipe, ok := r.dataset.Recipe(name)
	if !ok {
		return domain.Recipe{}, nil, domain.NewResolveError(domain.KindItemNotFound, name)
	}
	if path.contains(name) {
		return domain.Recipe{}, nil, domain.NewResolveError(domain.KindCircularDependency, name)
	}
	return recipe, path.with(name), nil
}

func (r *Resolver) excludesOwnStamina(recipe domain.Recipe) bool {
	return r.dataset.Settings.ExcludeIntermediateStamina && recipe.Category.ConservationExempt()
}

func materialPrice(material domain.Material) (float64, error) {
	if !material.HasPrice() {
		return 0, domain.NewResolveError(domain.KindMaterialPriceMissing, material.Name)
	}
	return material.Price, nil
}

// EffectiveCount returns how many units of ingredient one craft of recipe consumes
// after conservation. The product is rounded half-up before it is used.
func EffectiveCount(recipe domain.Recipe, ingredient string, level int) float64 {
	return roundHalfUp(recipe.Ingredients[ingredient] * domain.ReductionFactor(recipe.Category, level))
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
