// Package pricing answers valuation queries against the active dataset.
package pricing

import "time"

// Cache defaults
const (
	DefaultCacheSize = 1024
	DefaultCacheTTL  = 10 * time.Minute
)

// Operation labels for metrics and logs
const (
	OpResolveCost         = "resolve_cost"
	OpResolveMaterialCost = "resolve_material_cost"
	OpResolveStamina      = "resolve_stamina"
	OpBreakdown           = "breakdown"
	OpEvaluateEfficiency  = "evaluate_efficiency"
)

// MaxBatchSize caps the number of items in one batch evaluation
const MaxBatchSize = 200

// outcomeError labels failures that are not resolve errors
const outcomeError = "error"
