package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveError(t *testing.T) {
	tests := []struct {
		kind     ErrorKind
		sentinel error
		message  string
	}{
		{KindItemNotFound, ErrItemNotFound, "item not found: ghost"},
		{KindMaterialPriceMissing, ErrMaterialPriceMissing, "material price missing: ghost"},
		{KindCircularDependency, ErrCircularDependency, "circular dependency: ghost"},
		{KindGenericCost, ErrGenericCost, "unit cost resolved to zero: ghost"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			err := fmt.Errorf("valuing sword: %w", NewResolveError(tt.kind, "ghost"))

			assert.ErrorIs(t, err, tt.sentinel)
			re, ok := AsResolveError(err)
			require.True(t, ok)
			assert.Equal(t, tt.kind, re.Kind)
			assert.Equal(t, "ghost", re.Name)
			assert.EqualError(t, re, tt.message)
		})
	}

	_, ok := AsResolveError(errors.New("plain"))
	assert.False(t, ok)
	assert.EqualError(t, NewResolveError(KindGenericCost, ""), ErrMsgGenericCost)
}

func TestEfficiencyMode_IsValid(t *testing.T) {
	for _, mode := range []EfficiencyMode{ModeBest, ModeSimulate1, ModeSimulate2, ModeSimulate3, ModeSimulate5, ModeSimulate10} {
		assert.True(t, mode.IsValid(), mode)
	}
	for _, mode := range []EfficiencyMode{"", "4", "25", "BEST"} {
		assert.False(t, mode.IsValid(), mode)
	}
}

func TestEfficiencyResult_Formatted(t *testing.T) {
	round := 10
	result := EfficiencyResult{
		Round:                &round,
		TotalProfit:          1234.5,
		AverageEfficiency:    1.234567,
		UnitCost:             12.49,
		ConsumedMaterialCost: 99.5,
		TotalCost:            1000.4,
		TotalStamina:         0.5,
	}

	formatted := result.Formatted()

	assert.Equal(t, 1235.0, formatted.TotalProfit)
	assert.Equal(t, 1.2346, formatted.AverageEfficiency)
	assert.Equal(t, 12.0, formatted.UnitCost)
	assert.Equal(t, 100.0, formatted.ConsumedMaterialCost)
	assert.Equal(t, 1000.0, formatted.TotalCost)
	assert.Equal(t, 1.0, formatted.TotalStamina)
	assert.Equal(t, 1234.5, result.TotalProfit, "original is untouched")
	assert.Equal(t, 10, formatted.Deliveries())

	assert.Equal(t, 1, (&EfficiencyResult{}).Deliveries())
}

func TestDataset_LookupAndClone(t *testing.T) {
	level := 6
	ds := NewDataset()
	ds.Materials["ore"] = 10
	ds.Recipes["ingot"] = Recipe{Category: CategorySmithing, Stamina: 5, Ingredients: map[string]float64{"ore": 2}}
	ds.Settings.WorkLifeBalanceLevel = &level

	kind, ok := ds.Kind("ore")
	require.True(t, ok)
	assert.Equal(t, ItemKindMaterial, kind)
	kind, ok = ds.Kind("ingot")
	require.True(t, ok)
	assert.Equal(t, ItemKindRecipe, kind)
	_, ok = ds.Kind("ghost")
	assert.False(t, ok)

	recipe, ok := ds.Recipe("ingot")
	require.True(t, ok)
	assert.Equal(t, "ingot", recipe.Name)

	clone := ds.Clone()
	clone.Materials["ore"] = 99
	clone.Recipes["ingot"].Ingredients["ore"] = 7
	*clone.Settings.WorkLifeBalanceLevel = 11

	assert.Equal(t, 10.0, ds.Materials["ore"])
	assert.Equal(t, 2.0, ds.Recipes["ingot"].Ingredients["ore"])
	assert.Equal(t, 6, *ds.Settings.WorkLifeBalanceLevel)
}

func TestCategory(t *testing.T) {
	assert.True(t, CategoryProcessedGood.ConservationExempt())
	assert.True(t, CategoryWeaving.ConservationExempt())
	assert.False(t, CategorySmithing.ConservationExempt())
	assert.True(t, CategoryAlchemy.IsValid())
	assert.False(t, Category("millinery").IsValid())
}
