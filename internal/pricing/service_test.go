package pricing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftValue_Go/internal/dataset"
	"github.com/osse101/CraftValue_Go/internal/domain"
	"github.com/osse101/CraftValue_Go/internal/stamina"
)

func newTestStore(t *testing.T) *dataset.Store {
	t.Helper()
	ds := domain.NewDataset()
	ds.Materials["ore"] = 10
	ds.Materials["wood"] = 4
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
	ds.Recipes["loop"] = domain.Recipe{
		Category:    domain.CategoryAlchemy,
		Stamina:     1,
		Ingredients: map[string]float64{"loop": 1},
	}
	ds.Settings.StaminaValue = 2

	store, err := dataset.NewStore(ds)
	require.NoError(t, err)
	return store
}

func TestService_ScalarQueries(t *testing.T) {
	svc := NewService(newTestStore(t), 16, time.Minute)
	ctx := context.Background()

	cost, err := svc.ResolveCost(ctx, "sword")
	require.NoError(t, err)
	assert.Equal(t, 124.0, cost)

	materialCost, err := svc.ResolveMaterialCost(ctx, "sword")
	require.NoError(t, err)
	assert.Equal(t, 52.0, materialCost)

	staminaTotal, err := svc.ResolveStamina(ctx, "sword")
	require.NoError(t, err)
	assert.Equal(t, 23.0, staminaTotal)

	_, err = svc.ResolveCost(ctx, "loop")
	assert.ErrorIs(t, err, domain.ErrCircularDependency)

	_, err = svc.ResolveStamina(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestService_UsesConservationLevelFromSettings(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(store, 16, time.Minute)

	level := 10
	_, _, err := store.UpdateSettings(domain.SettingsPatch{ConservationLevel: &level})
	require.NoError(t, err)

	cost, err := svc.ResolveCost(context.Background(), "sword")
	require.NoError(t, err)
	assert.Equal(t, 74.0, cost)
}

func TestService_Breakdown(t *testing.T) {
	svc := NewService(newTestStore(t), 16, time.Minute)

	node, err := svc.Breakdown(context.Background(), "sword")
	require.NoError(t, err)
	assert.Equal(t, 124.0, node.TotalCost)
	assert.Len(t, node.Ingredients, 2)

	_, err = svc.Breakdown(context.Background(), "loop")
	assert.ErrorIs(t, err, domain.ErrCircularDependency)
}

func TestService_EvaluateEfficiency(t *testing.T) {
	svc := NewService(newTestStore(t), 16, time.Minute)

	result, err := svc.EvaluateEfficiency(context.Background(), "sword", 124, domain.ModeSimulate2)
	require.NoError(t, err)
	assert.True(t, result.Recommend)
	assert.Equal(t, 2, *result.Round)
	assert.Equal(t, 3, result.TotalItems)
	assert.Equal(t, 372.0, result.TotalCost)

	_, err = svc.EvaluateEfficiency(context.Background(), "sword", 124, domain.EfficiencyMode("7"))
	assert.ErrorIs(t, err, domain.ErrInvalidEfficiencyMode)
}

func TestService_CacheInvalidatedByMutation(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(store, 16, time.Minute).(*service)
	ctx := context.Background()

	first, err := svc.EvaluateEfficiency(ctx, "ingot", 30, domain.ModeSimulate1)
	require.NoError(t, err)
	assert.Equal(t, 30.0, first.UnitCost)
	assert.Equal(t, 1, svc.cache.Len())

	// Mutating the returned value must not leak into the cache
	*first.Round = 99
	again, err := svc.EvaluateEfficiency(ctx, "ingot", 30, domain.ModeSimulate1)
	require.NoError(t, err)
	assert.Equal(t, 1, *again.Round)
	assert.Equal(t, 1, svc.cache.Len())

	_, err = store.PutMaterial("ore", 20)
	require.NoError(t, err)

	repriced, err := svc.EvaluateEfficiency(ctx, "ingot", 30, domain.ModeSimulate1)
	require.NoError(t, err)
	assert.Equal(t, 50.0, repriced.UnitCost)
	assert.Equal(t, 2, svc.cache.Len())
}

func TestService_EvaluateBatch(t *testing.T) {
	svc := NewService(newTestStore(t), 16, time.Minute)

	entries, err := svc.EvaluateBatch(context.Background(), []EfficiencyQuery{
		{Item: "ingot", Reward: 30, Mode: domain.ModeBest},
		{Item: "ghost", Reward: 30, Mode: domain.ModeBest},
		{Item: "plank", Reward: 10, Mode: domain.ModeSimulate10},
	})
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.NoError(t, entries[0].Err)
	assert.NotNil(t, entries[0].Result)

	assert.Nil(t, entries[1].Result)
	assert.ErrorIs(t, entries[1].Err, domain.ErrItemNotFound)

	require.NoError(t, entries[2].Err)
	assert.Equal(t, 25, *entries[2].Result.Round)
	assert.Equal(t, "plank", entries[2].Query.Item)
}

func TestService_EvaluateBatchTooLarge(t *testing.T) {
	svc := NewService(newTestStore(t), 16, time.Minute)

	_, err := svc.EvaluateBatch(context.Background(), make([]EfficiencyQuery, MaxBatchSize+1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestService_StaminaValue(t *testing.T) {
	svc := NewService(newTestStore(t), 16, time.Minute)
	assert.Equal(t, stamina.MonetaryValue(6), svc.StaminaValue(6))
	assert.Equal(t, float64(stamina.NeverWorthIt), svc.StaminaValue(1))
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "success", outcome(nil))
	assert.Equal(t, "circular_dependency", outcome(domain.NewResolveError(domain.KindCircularDependency, "x")))
	assert.Equal(t, "error", outcome(domain.ErrInvalidEfficiencyMode))
}
