package dataset

import (
	"fmt"
	"strings"
	"sync"

	"github.com/osse101/CraftValue_Go/internal/domain"
)

// Store holds the active dataset. Every mutation publishes a fresh copy and bumps
// the version, so snapshots handed out earlier are never modified.
type Store struct {
	mu      sync.RWMutex
	current *domain.Dataset
	version uint64
}

// NewStore creates a store holding ds, or an empty dataset when ds is nil
func NewStore(ds *domain.Dataset) (*Store, error) {
	if ds == nil {
		ds = domain.NewDataset()
	}
	s := &Store{}
	if _, err := s.Replace(ds); err != nil {
		return nil, err
	}
	return s, nil
}

// Snapshot returns the active dataset and its version. The dataset must be treated
// as read-only.
func (s *Store) Snapshot() (*domain.Dataset, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.version
}

// Version returns the version of the active dataset
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Replace validates ds and makes a copy of it the active dataset
func (s *Store) Replace(ds *domain.Dataset) (uint64, error) {
	if err := Validate(ds); err != nil {
		return 0, err
	}
	next := ds.Clone()
	Normalize(next)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = next
	s.version++
	return s.version, nil
}

// PutMaterial adds or reprices a material
func (s *Store) PutMaterial(name string, price float64) (uint64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("%w: material name is empty", domain.ErrInvalidInput)
	}

	return s.mutate(func(ds *domain.Dataset) error {
		if _, ok := ds.Recipes[name]; ok {
			return fmt.Errorf("%w: %q is a recipe", domain.ErrNameConflict, name)
		}
		ds.Materials[name] = price
		return nil
	})
}

// RemoveMaterial deletes a material
func (s *Store) RemoveMaterial(name string) (uint64, error) {
	return s.mutate(func(ds *domain.Dataset) error {
		if _, ok := ds.Materials[name]; !ok {
			return fmt.Errorf("%w: %s", domain.ErrItemNotFound, name)
		}
		delete(ds.Materials, name)
		return nil
	})
}

// PutRecipe adds or replaces a recipe
func (s *Store) PutRecipe(name string, recipe domain.Recipe) (uint64, error) {
	name = strings.TrimSpace(name)
	if err := ValidateRecipe(name, recipe); err != nil {
		return 0, err
	}

	return s.mutate(func(ds *domain.Dataset) error {
		if _, ok := ds.Materials[name]; ok {
			return fmt.Errorf("%w: %q is a material", domain.ErrNameConflict, name)
		}
		stored := recipe.Clone()
		stored.Name = ""
		ds.Recipes[name] = stored
		return nil
	})
}

// RemoveRecipe deletes a recipe
func (s *Store) RemoveRecipe(name string) (uint64, error) {
	return s.mutate(func(ds *domain.Dataset) error {
		if _, ok := ds.Recipes[name]; !ok {
			return fmt.Errorf("%w: %s", domain.ErrItemNotFound, name)
		}
		delete(ds.Recipes, name)
		return nil
	})
}

// UpdateSettings applies a partial settings update and returns the resulting settings
func (s *Store) UpdateSettings(patch domain.SettingsPatch) (domain.Settings, uint64, error) {
	var updated domain.Settings
	version, err := s.mutate(func(ds *domain.Dataset) error {
		next := patch.Apply(ds.Settings)
		if err := ValidateSettings(next); err != nil {
			return err
		}
		ds.Settings = next
		updated = NormalizeSettings(next)
		return nil
	})
	if err != nil {
		return domain.Settings{}, 0, err
	}
	return updated, version, nil
}

// mutate applies fn to a copy of the active dataset and publishes it when fn succeeds
func (s *Store) mutate(fn func(ds *domain.Dataset) error) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current.Clone()
	if err := fn(next); err != nil {
		return 0, err
	}
	Normalize(next)

	s.current = next
	s.version++
	return s.version, nil
}
