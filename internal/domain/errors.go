package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Resolution errors
	ErrMsgItemNotFound          = "item not found"
	ErrMsgMaterialPriceMissing  = "material price missing"
	ErrMsgCircularDependency    = "circular dependency"
	ErrMsgGenericCost           = "unit cost resolved to zero"
	ErrMsgInvalidEfficiencyMode = "invalid efficiency mode"

	// Dataset errors
	ErrMsgInvalidDataset = "invalid dataset"
	ErrMsgNameConflict   = "name already used by another entry"
	ErrMsgDatasetMissing = "dataset not found"
	ErrMsgNoPersistence  = "dataset persistence is not configured"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// ErrorKind is the machine-readable category of a resolution failure.
type ErrorKind string

// Resolution error kinds, as reported to API consumers.
const (
	KindItemNotFound         ErrorKind = "item_not_found"
	KindMaterialPriceMissing ErrorKind = "material_price_missing"
	KindCircularDependency   ErrorKind = "circular_dependency"
	KindGenericCost          ErrorKind = "generic_cost_error"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context,
// or use NewResolveError for failures that carry an item name.
var (
	ErrItemNotFound          = errors.New(ErrMsgItemNotFound)
	ErrMaterialPriceMissing  = errors.New(ErrMsgMaterialPriceMissing)
	ErrCircularDependency    = errors.New(ErrMsgCircularDependency)
	ErrGenericCost           = errors.New(ErrMsgGenericCost)
	ErrInvalidEfficiencyMode = errors.New(ErrMsgInvalidEfficiencyMode)

	ErrInvalidDataset = errors.New(ErrMsgInvalidDataset)
	ErrNameConflict   = errors.New(ErrMsgNameConflict)
	ErrDatasetMissing = errors.New(ErrMsgDatasetMissing)
	ErrNoPersistence  = errors.New(ErrMsgNoPersistence)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// ResolveError is returned by the resolver and optimizer. It carries the kind of
// failure and the name that triggered it, and unwraps to the matching sentinel.
type ResolveError struct {
	Kind ErrorKind
	Name string
}

// NewResolveError builds a ResolveError for the given kind and item name.
func NewResolveError(kind ErrorKind, name string) *ResolveError {
	return &ResolveError{Kind: kind, Name: name}
}

func (e *ResolveError) Error() string {
	if e.Name == "" {
		return e.sentinel().Error()
	}
	return fmt.Sprintf("%s: %s", e.sentinel().Error(), e.Name)
}

// Unwrap lets errors.Is match the sentinel for this kind.
func (e *ResolveError) Unwrap() error {
	return e.sentinel()
}

func (e *ResolveError) sentinel() error {
	switch e.Kind {
	case KindItemNotFound:
		return ErrItemNotFound
	case KindMaterialPriceMissing:
		return ErrMaterialPriceMissing
	case KindCircularDependency:
		return ErrCircularDependency
	default:
		return ErrGenericCost
	}
}

// AsResolveError extracts a ResolveError from err, if present anywhere in its chain.
func AsResolveError(err error) (*ResolveError, bool) {
	var re *ResolveError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
