package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftValue_Go/internal/domain"
)

func forgeDataset() *domain.Dataset {
	ds := domain.NewDataset()
	ds.Materials["ore"] = 10
	ds.Materials["wood"] = 4
	ds.Recipes["ingot"] = domain.Recipe{
		Category:    domain.CategorySmithing,
		Stamina:     5,
		Ingredients: map[string]float64{"ore": 2},
	}
	level := 6
	ds.Settings.WorkLifeBalanceLevel = &level
	ds.Settings.ConservationLevel = 3
	return ds
}

func TestDatasetRepository_SaveAndGet(t *testing.T) {
	pool := requireDatabase(t)
	resetDatasets(t, pool)
	repo := NewDatasetRepository(pool)
	ctx := context.Background()

	saved, err := repo.SaveDataset(ctx, "forge", forgeDataset())
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.Revision)
	assert.False(t, saved.UpdatedAt.IsZero())

	got, err := repo.GetDataset(ctx, "forge")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Revision)
	assert.Equal(t, 10.0, got.Dataset.Materials["ore"])
	assert.Equal(t, 3, got.Dataset.Settings.ConservationLevel)
	require.NotNil(t, got.Dataset.Settings.WorkLifeBalanceLevel)
	assert.Equal(t, 6, *got.Dataset.Settings.WorkLifeBalanceLevel)

	ingot, ok := got.Dataset.Recipe("ingot")
	require.True(t, ok)
	assert.Equal(t, domain.CategorySmithing, ingot.Category)
	assert.Equal(t, map[string]float64{"ore": 2}, ingot.Ingredients)
}

func TestDatasetRepository_SaveBumpsRevision(t *testing.T) {
	pool := requireDatabase(t)
	resetDatasets(t, pool)
	repo := NewDatasetRepository(pool)
	ctx := context.Background()

	ds := forgeDataset()
	_, err := repo.SaveDataset(ctx, "forge", ds)
	require.NoError(t, err)

	ds.Materials["ore"] = 12
	second, err := repo.SaveDataset(ctx, "forge", ds)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.Revision)

	got, err := repo.GetDataset(ctx, "forge")
	require.NoError(t, err)
	assert.Equal(t, 12.0, got.Dataset.Materials["ore"])
}

func TestDatasetRepository_ListAndDelete(t *testing.T) {
	pool := requireDatabase(t)
	resetDatasets(t, pool)
	repo := NewDatasetRepository(pool)
	ctx := context.Background()

	_, err := repo.SaveDataset(ctx, "beta", forgeDataset())
	require.NoError(t, err)
	_, err = repo.SaveDataset(ctx, "alpha", domain.NewDataset())
	require.NoError(t, err)

	summaries, err := repo.ListDatasets(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "alpha", summaries[0].Name)
	assert.Equal(t, 0, summaries[0].Materials)
	assert.Equal(t, "beta", summaries[1].Name)
	assert.Equal(t, 2, summaries[1].Materials)
	assert.Equal(t, 1, summaries[1].Recipes)

	require.NoError(t, repo.DeleteDataset(ctx, "alpha"))
	assert.ErrorIs(t, repo.DeleteDataset(ctx, "alpha"), domain.ErrDatasetMissing)

	_, err = repo.GetDataset(ctx, "alpha")
	assert.ErrorIs(t, err, domain.ErrDatasetMissing)
}
