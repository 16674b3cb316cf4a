package valuation

import (
	"github.com/osse101/CraftValue_Go/internal/domain"
)

// Breakdown resolves name into a tree of cost nodes in a single walk. The root
// node carries the same MaterialCost, Stamina and TotalCost values the scalar
// resolver methods return, and fails with the same errors.
func (r *Resolver) Breakdown(name string, level int) (*domain.CostNode, error) {
	return r.breakdown(name, 1, level, pathSet{})
}

func (r *Resolver) breakdown(name string, count float64, level int, path pathSet) (*domain.CostNode, error) {
	if material, ok := r.dataset.Material(name); ok {
		price, err := materialPrice(material)
		if err != nil {
			return nil, err
		}
		return &domain.CostNode{
			Name:         name,
			Kind:         domain.ItemKindMaterial,
			Count:        count,
			MaterialCost: price,
			TotalCost:    price,
		}, nil
	}

	recipe, childPath, err := r.enterRecipe(name, path)
	if err != nil {
		return nil, err
	}

	node := &domain.CostNode{
		Name:        name,
		Kind:        domain.ItemKindRecipe,
		Category:    recipe.Category,
		Count:       count,
		Stamina:     recipe.Stamina,
		Ingredients: make([]*domain.CostNode, 0, len(recipe.Ingredients)),
	}

	for _, ingredient := range recipe.IngredientNames() {
		effective := EffectiveCount(recipe, ingredient, level)
		child, err := r.breakdown(ingredient, effective, level, childPath)
		if err != nil {
			return nil, err
		}
		node.MaterialCost += effective * child.MaterialCost
		node.Stamina += effective * child.Stamina
		node.TotalCost += effective * child.TotalCost
		node.Ingredients = append(node.Ingredients, child)
	}

	if r.excludesOwnStamina(recipe) {
		node.Stamina -= recipe.Stamina
	}
	node.TotalCost += node.Stamina * r.dataset.Settings.StaminaValue

	return node, nil
}
