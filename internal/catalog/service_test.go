package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftValue_Go/internal/dataset"
	"github.com/osse101/CraftValue_Go/internal/domain"
	"github.com/osse101/CraftValue_Go/mocks"
)

func newTestService(t *testing.T, repo *mocks.MockDatasetRepository, exportPath string) (Service, *dataset.Store) {
	t.Helper()
	ds := domain.NewDataset()
	ds.Materials["ore"] = 10
	store, err := dataset.NewStore(ds)
	require.NoError(t, err)

	loader, err := dataset.NewLoader(nil)
	require.NoError(t, err)

	if repo == nil {
		return NewService(store, nil, loader, exportPath), store
	}
	return NewService(store, repo, loader, exportPath), store
}

func TestService_Mutations(t *testing.T) {
	svc, store := newTestService(t, nil, "")
	ctx := context.Background()

	v1, err := svc.PutMaterial(ctx, "wood", 4)
	require.NoError(t, err)

	v2, err := svc.PutRecipe(ctx, "plank", domain.Recipe{
		Category:    domain.CategoryProcessedGood,
		Stamina:     3,
		Ingredients: map[string]float64{"wood": 3},
	})
	require.NoError(t, err)
	assert.Greater(t, v2, v1)

	_, err = svc.PutRecipe(ctx, "wood", domain.Recipe{Category: domain.CategoryCooking})
	assert.ErrorIs(t, err, domain.ErrNameConflict)

	settings, v3, err := svc.UpdateSettings(ctx, domain.SettingsPatch{ExcludeIntermediateStamina: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, settings.ExcludeIntermediateStamina)
	assert.Equal(t, store.Version(), v3)

	_, err = svc.RemoveRecipe(ctx, "plank")
	require.NoError(t, err)
	_, err = svc.RemoveMaterial(ctx, "wood")
	require.NoError(t, err)

	ds, version := svc.Dataset(ctx)
	assert.Equal(t, store.Version(), version)
	assert.Equal(t, map[string]float64{"ore": 10}, ds.Materials)
	assert.Empty(t, ds.Recipes)
}

func TestService_ReplaceDataset(t *testing.T) {
	svc, _ := newTestService(t, nil, "")

	next := domain.NewDataset()
	next.Materials["flax"] = 2
	_, err := svc.ReplaceDataset(context.Background(), next)
	require.NoError(t, err)

	ds, _ := svc.Dataset(context.Background())
	assert.Equal(t, map[string]float64{"flax": 2}, ds.Materials)

	bad := domain.NewDataset()
	bad.Settings.ConservationLevel = 40
	_, err = svc.ReplaceDataset(context.Background(), bad)
	assert.ErrorIs(t, err, domain.ErrInvalidDataset)
}

func TestService_WithoutRepository(t *testing.T) {
	svc, _ := newTestService(t, nil, "")
	ctx := context.Background()

	_, err := svc.Save(ctx, "forge")
	assert.ErrorIs(t, err, domain.ErrNoPersistence)
	_, err = svc.Load(ctx, "forge")
	assert.ErrorIs(t, err, domain.ErrNoPersistence)
	_, err = svc.List(ctx)
	assert.ErrorIs(t, err, domain.ErrNoPersistence)
	_, err = svc.Export(ctx)
	assert.ErrorIs(t, err, domain.ErrNoPersistence)
}

func TestService_Save(t *testing.T) {
	repo := mocks.NewMockDatasetRepository(t)
	svc, store := newTestService(t, repo, "")
	active, _ := store.Snapshot()

	record := &domain.DatasetRecord{Name: "forge", Revision: 3, Dataset: active, UpdatedAt: time.Now()}
	repo.On("SaveDataset", mock.Anything, "forge", active).Return(record, nil)

	got, err := svc.Save(context.Background(), "forge")
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Revision)
}

func TestService_Load(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*mocks.MockDatasetRepository)
		wantErr   error
		wantOre   float64
	}{
		{
			name: "replaces active dataset",
			setupMock: func(m *mocks.MockDatasetRepository) {
				ds := domain.NewDataset()
				ds.Materials["ore"] = 25
				m.On("GetDataset", mock.Anything, "forge").
					Return(&domain.DatasetRecord{Name: "forge", Revision: 1, Dataset: ds}, nil)
			},
			wantOre: 25,
		},
		{
			name: "missing dataset leaves store untouched",
			setupMock: func(m *mocks.MockDatasetRepository) {
				m.On("GetDataset", mock.Anything, "forge").Return(nil, domain.ErrDatasetMissing)
			},
			wantErr: domain.ErrDatasetMissing,
			wantOre: 10,
		},
		{
			name: "invalid stored dataset is rejected",
			setupMock: func(m *mocks.MockDatasetRepository) {
				ds := domain.NewDataset()
				ds.Materials["ore"] = 1
				ds.Recipes["ore"] = domain.Recipe{Category: domain.CategoryCooking}
				m.On("GetDataset", mock.Anything, "forge").
					Return(&domain.DatasetRecord{Name: "forge", Dataset: ds}, nil)
			},
			wantErr: domain.ErrNameConflict,
			wantOre: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockDatasetRepository(t)
			tt.setupMock(repo)
			svc, store := newTestService(t, repo, "")

			_, err := svc.Load(context.Background(), "forge")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			ds, _ := store.Snapshot()
			assert.Equal(t, tt.wantOre, ds.Materials["ore"])
		})
	}
}

func TestService_List(t *testing.T) {
	repo := mocks.NewMockDatasetRepository(t)
	svc, _ := newTestService(t, repo, "")

	repo.On("ListDatasets", mock.Anything).Return(nil, errors.New("connection refused"))
	_, err := svc.List(context.Background())
	assert.EqualError(t, err, "connection refused")
}

func TestService_Export(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.yaml")
	svc, _ := newTestService(t, nil, path)

	written, err := svc.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, path, written)

	loader, err := dataset.NewLoader(nil)
	require.NoError(t, err)
	ds, err := loader.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 10.0, ds.Materials["ore"])
}

func boolPtr(b bool) *bool { return &b }
