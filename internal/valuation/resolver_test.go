package valuation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftValue_Go/internal/domain"
)

// newTestDataset builds a small forge economy:
//
//	sword  (crafting, 10 stamina)       = 2 ingot + 1 plank
//	ingot  (smithing, 5 stamina)        = 2 ore
//	plank  (processed_good, 3 stamina)  = 3 wood
func newTestDataset() *domain.Dataset {
	ds := domain.NewDataset()
	ds.Materials["ore"] = 10
	ds.Materials["wood"] = 4
	ds.Materials["unpriced"] = 0
	ds.Recipes["ingot"] = domain.Recipe{
		Category:    domain.CategorySmithing,
		Stamina:     5,
		Ingredients: map[string]float64{"ore": 2},
	}
	ds.Recipes["plank"] = domain.Recipe{
		Category:    domain.CategoryProcessedGood,
		Stamina:     3,
		Ingredients: map[string]float64{"wood": 3},
	}
	ds.Recipes["sword"] = domain.Recipe{
		Category:    domain.CategoryCrafting,
		Stamina:     10,
		Ingredients: map[string]float64{"ingot": 2, "plank": 1},
	}
	ds.Settings.StaminaValue = 2
	return ds
}

func TestResolver_Materials(t *testing.T) {
	r := NewResolver(newTestDataset())

	cost, err := r.TotalCost("ore", 0)
	require.NoError(t, err)
	assert.Equal(t, 10.0, cost)

	cost, err = r.MaterialCost("wood", 7)
	require.NoError(t, err)
	assert.Equal(t, 4.0, cost)

	stamina, err := r.Stamina("ore", 0)
	require.NoError(t, err)
	assert.Zero(t, stamina)

	_, err = r.TotalCost("unpriced", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMaterialPriceMissing)
	re, ok := domain.AsResolveError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindMaterialPriceMissing, re.Kind)
	assert.Equal(t, "unpriced", re.Name)
}

func TestResolver_NegativePriceIsUnset(t *testing.T) {
	ds := newTestDataset()
	ds.Materials["ore"] = -5
	r := NewResolver(ds)

	_, err := r.MaterialCost("sword", 0)
	assert.ErrorIs(t, err, domain.ErrMaterialPriceMissing)
}

func TestResolver_Recipes(t *testing.T) {
	tests := []struct {
		name             string
		item             string
		level            int
		exclude          bool
		wantMaterialCost float64
		wantStamina      float64
		wantTotalCost    float64
	}{
		{name: "leaf recipe", item: "ingot", wantMaterialCost: 20, wantStamina: 5, wantTotalCost: 30},
		{name: "exempt recipe", item: "plank", wantMaterialCost: 12, wantStamina: 3, wantTotalCost: 18},
		{name: "nested recipe", item: "sword", wantMaterialCost: 52, wantStamina: 23, wantTotalCost: 124},
		{name: "conservation halves non-exempt counts", item: "sword", level: 10, wantMaterialCost: 22, wantStamina: 18, wantTotalCost: 74},
		{name: "conservation ignored for exempt category", item: "plank", level: 10, wantMaterialCost: 12, wantStamina: 3, wantTotalCost: 18},
		{name: "exclude intermediate stamina on exempt", item: "plank", exclude: true, wantMaterialCost: 12, wantStamina: 0, wantTotalCost: 12},
		{name: "exclude intermediate stamina in parent", item: "sword", exclude: true, wantMaterialCost: 52, wantStamina: 20, wantTotalCost: 112},
		{name: "exclude has no effect on non-exempt", item: "ingot", exclude: true, wantMaterialCost: 20, wantStamina: 5, wantTotalCost: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := newTestDataset()
			ds.Settings.ExcludeIntermediateStamina = tt.exclude
			r := NewResolver(ds)

			materialCost, err := r.MaterialCost(tt.item, tt.level)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantMaterialCost, materialCost, 1e-9)

			stamina, err := r.Stamina(tt.item, tt.level)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantStamina, stamina, 1e-9)

			totalCost, err := r.TotalCost(tt.item, tt.level)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantTotalCost, totalCost, 1e-9)
		})
	}
}

func TestResolver_TotalCostValuesFullStaminaAtEachLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   int
		exclude bool
	}{
		{name: "no conservation"},
		{name: "conservation", level: 10},
		{name: "exclude intermediate stamina", exclude: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := newTestDataset()
			ds.Settings.ExcludeIntermediateStamina = tt.exclude
			r := NewResolver(ds)
			sword, _ := ds.Recipe("sword")

			want := 0.0
			for _, ingredient := range sword.IngredientNames() {
				cost, err := r.TotalCost(ingredient, tt.level)
				require.NoError(t, err)
				want += EffectiveCount(sword, ingredient, tt.level) * cost
			}
			stamina, err := r.Stamina("sword", tt.level)
			require.NoError(t, err)
			want += stamina * ds.Settings.StaminaValue

			got, err := r.TotalCost("sword", tt.level)
			require.NoError(t, err)
			assert.InDelta(t, want, got, 1e-9)
		})
	}

	// ingredient stamina is valued inside the ingredient and again in the parent
	r := NewResolver(newTestDataset())
	materialCost, _ := r.MaterialCost("sword", 0)
	stamina, _ := r.Stamina("sword", 0)
	total, err := r.TotalCost("sword", 0)
	require.NoError(t, err)
	assert.Greater(t, total, materialCost+stamina*2)
}

func TestResolver_RecipeWithoutIngredients(t *testing.T) {
	ds := newTestDataset()
	ds.Recipes["gather"] = domain.Recipe{Category: domain.CategoryCooking, Stamina: 7}
	r := NewResolver(ds)

	cost, err := r.TotalCost("gather", 0)
	require.NoError(t, err)
	assert.Equal(t, 7*ds.Settings.StaminaValue, cost)

	stamina, err := r.Stamina("gather", 0)
	require.NoError(t, err)
	assert.Equal(t, 7.0, stamina)

	materialCost, err := r.MaterialCost("gather", 0)
	require.NoError(t, err)
	assert.Zero(t, materialCost)
}

func TestResolver_ItemNotFound(t *testing.T) {
	ds := newTestDataset()
	ds.Recipes["broken"] = domain.Recipe{
		Category:    domain.CategoryCrafting,
		Stamina:     1,
		Ingredients: map[string]float64{"ore": 1, "ghost": 1},
	}
	r := NewResolver(ds)

	for _, name := range []string{"nothing", "broken"} {
		_, err := r.TotalCost(name, 0)
		assert.ErrorIs(t, err, domain.ErrItemNotFound, name)

		_, err = r.Stamina(name, 0)
		assert.ErrorIs(t, err, domain.ErrItemNotFound, name)
	}

	_, err := r.MaterialCost("broken", 0)
	re, ok := domain.AsResolveError(err)
	require.True(t, ok)
	assert.Equal(t, "ghost", re.Name)
}

func TestResolver_CircularDependency(t *testing.T) {
	ds := newTestDataset()
	ds.Recipes["alpha"] = domain.Recipe{
		Category:    domain.CategoryCrafting,
		Stamina:     1,
		Ingredients: map[string]float64{"beta": 1},
	}
	ds.Recipes["beta"] = domain.Recipe{
		Category:    domain.CategoryCrafting,
		Stamina:     1,
		Ingredients: map[string]float64{"alpha": 1, "ore": 1},
	}
	ds.Recipes["ouroboros"] = domain.Recipe{
		Category:    domain.CategoryAlchemy,
		Stamina:     1,
		Ingredients: map[string]float64{"ouroboros": 1},
	}
	r := NewResolver(ds)

	for _, name := range []string{"alpha", "beta", "ouroboros"} {
		t.Run(name, func(t *testing.T) {
			_, err := r.TotalCost(name, 0)
			assert.ErrorIs(t, err, domain.ErrCircularDependency)

			_, err = r.MaterialCost(name, 0)
			assert.ErrorIs(t, err, domain.ErrCircularDependency)

			_, err = r.Stamina(name, 0)
			assert.ErrorIs(t, err, domain.ErrCircularDependency)

			re, ok := domain.AsResolveError(err)
			require.True(t, ok)
			assert.Equal(t, name, re.Name)
		})
	}
}

func TestResolver_DiamondIsNotACycle(t *testing.T) {
	ds := newTestDataset()
	// hilt and blade both consume ingot; neither branch sees the other's visit
	ds.Recipes["hilt"] = domain.Recipe{
		Category:    domain.CategoryCrafting,
		Stamina:     1,
		Ingredients: map[string]float64{"ingot": 1},
	}
	ds.Recipes["blade"] = domain.Recipe{
		Category:    domain.CategoryCrafting,
		Stamina:     1,
		Ingredients: map[string]float64{"ingot": 2},
	}
	ds.Recipes["longsword"] = domain.Recipe{
		Category:    domain.CategoryCrafting,
		Stamina:     4,
		Ingredients: map[string]float64{"hilt": 1, "blade": 1},
	}
	r := NewResolver(ds)

	materialCost, err := r.MaterialCost("longsword", 0)
	require.NoError(t, err)
	assert.Equal(t, 60.0, materialCost)

	stamina, err := r.Stamina("longsword", 0)
	require.NoError(t, err)
	assert.Equal(t, 4.0+(1+5)+(1+10), stamina)
}

func TestResolver_ErrorsAreNotPartial(t *testing.T) {
	ds := newTestDataset()
	ds.Materials["wood"] = 0
	r := NewResolver(ds)

	cost, err := r.TotalCost("sword", 0)
	require.Error(t, err)
	assert.Zero(t, cost)
	assert.True(t, errors.Is(err, domain.ErrMaterialPriceMissing))

	// Stamina never looks at prices
	stamina, err := r.Stamina("sword", 0)
	require.NoError(t, err)
	assert.Equal(t, 23.0, stamina)
}

func TestEffectiveCount(t *testing.T) {
	recipe := domain.Recipe{
		Category:    domain.CategoryCrafting,
		Ingredients: map[string]float64{"a": 2, "b": 3, "c": 7, "d": 1.4},
	}
	exempt := domain.Recipe{
		Category:    domain.CategoryWeaving,
		Ingredients: map[string]float64{"a": 2, "d": 1.4},
	}

	tests := []struct {
		name       string
		recipe     domain.Recipe
		ingredient string
		level      int
		want       float64
	}{
		{"level zero keeps count", recipe, "c", 0, 7},
		{"level zero rounds fractional count", recipe, "d", 0, 1},
		{"half rounds up", recipe, "a", 5, 2},
		{"half rounds up at level ten", recipe, "b", 10, 2},
		{"max level reduces to zero", recipe, "c", 20, 0},
		{"exempt ignores level", exempt, "a", 20, 2},
		{"exempt still rounds", exempt, "d", 20, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveCount(tt.recipe, tt.ingredient, tt.level))
		})
	}
}

func TestResolver_ConservationNeverNegative(t *testing.T) {
	r := NewResolver(newTestDataset())
	for level := domain.MinConservationLevel; level <= domain.MaxConservationLevel; level++ {
		cost, err := r.MaterialCost("sword", level)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, cost, 0.0, "level %d", level)
	}
}

func TestResolver_Breakdown(t *testing.T) {
	ds := newTestDataset()
	r := NewResolver(ds)

	for _, level := range []int{0, 10, 20} {
		node, err := r.Breakdown("sword", level)
		require.NoError(t, err)

		materialCost, _ := r.MaterialCost("sword", level)
		stamina, _ := r.Stamina("sword", level)
		totalCost, _ := r.TotalCost("sword", level)

		assert.InDelta(t, materialCost, node.MaterialCost, 1e-9)
		assert.InDelta(t, stamina, node.Stamina, 1e-9)
		assert.InDelta(t, totalCost, node.TotalCost, 1e-9)
	}

	node, err := r.Breakdown("sword", 0)
	require.NoError(t, err)
	require.Len(t, node.Ingredients, 2)
	assert.Equal(t, "ingot", node.Ingredients[0].Name)
	assert.Equal(t, 2.0, node.Ingredients[0].Count)
	assert.Equal(t, domain.ItemKindMaterial, node.Ingredients[0].Ingredients[0].Kind)

	_, err = r.Breakdown("unpriced", 0)
	assert.ErrorIs(t, err, domain.ErrMaterialPriceMissing)
}
