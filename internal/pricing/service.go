package pricing

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/CraftValue_Go/internal/delivery"
	"github.com/osse101/CraftValue_Go/internal/domain"
	"github.com/osse101/CraftValue_Go/internal/logger"
	"github.com/osse101/CraftValue_Go/internal/metrics"
	"github.com/osse101/CraftValue_Go/internal/stamina"
	"github.com/osse101/CraftValue_Go/internal/valuation"
)

// Service defines the interface for valuation queries
type Service interface {
	ResolveCost(ctx context.Context, name string) (float64, error)
	ResolveMaterialCost(ctx context.Context, name string) (float64, error)
	ResolveStamina(ctx context.Context, name string) (float64, error)
	Breakdown(ctx context.Context, name string) (*domain.CostNode, error)
	EvaluateEfficiency(ctx context.Context, name string, reward float64, mode domain.EfficiencyMode) (*domain.EfficiencyResult, error)
	EvaluateBatch(ctx context.Context, queries []EfficiencyQuery) ([]BatchEntry, error)
	StaminaValue(level int) float64
}

// SnapshotSource provides the active dataset. *dataset.Store satisfies it.
type SnapshotSource interface {
	Snapshot() (*domain.Dataset, uint64)
}

// EfficiencyQuery is one item of a batch evaluation
type EfficiencyQuery struct {
	Item   string                `json:"item" validate:"required,max=100"`
	Reward float64               `json:"reward" validate:"gte=0"`
	Mode   domain.EfficiencyMode `json:"mode" validate:"required"`
}

// BatchEntry pairs a query with its result or error
type BatchEntry struct {
	Query  EfficiencyQuery
	Result *domain.EfficiencyResult
	Err    error
}

type service struct {
	source SnapshotSource
	cache  *resultCache
	now    func() time.Time
}

// NewService creates a pricing service reading from source. Efficiency results are
// cached in an LRU of cacheSize entries that expire after cacheTTL.
func NewService(source SnapshotSource, cacheSize int, cacheTTL time.Duration) Service {
	return &service{
		source: source,
		cache:  newResultCache(cacheSize, cacheTTL),
		now:    time.Now,
	}
}

func (s *service) ResolveCost(ctx context.Context, name string) (float64, error) {
	return s.resolveScalar(ctx, OpResolveCost, name, (*valuation.Resolver).TotalCost)
}

func (s *service) ResolveMaterialCost(ctx context.Context, name string) (float64, error) {
	return s.resolveScalar(ctx, OpResolveMaterialCost, name, (*valuation.Resolver).MaterialCost)
}

func (s *service) ResolveStamina(ctx context.Context, name string) (float64, error) {
	return s.resolveScalar(ctx, OpResolveStamina, name, (*valuation.Resolver).Stamina)
}

func (s *service) resolveScalar(ctx context.Context, op, name string, fn func(*valuation.Resolver, string, int) (float64, error)) (float64, error) {
	log := logger.FromContext(ctx)
	start := s.now()

	ds, version := s.source.Snapshot()
	value, err := fn(valuation.NewResolver(ds), name, ds.Settings.ConservationLevel)
	s.observe(op, start, err)
	if err != nil {
		log.Debug("Valuation failed", "operation", op, "item", name, "version", version, "error", err)
		return 0, err
	}

	log.Debug("Valuation resolved", "operation", op, "item", name, "version", version, "value", value)
	return value, nil
}

func (s *service) Breakdown(ctx context.Context, name string) (*domain.CostNode, error) {
	log := logger.FromContext(ctx)
	start := s.now()

	ds, _ := s.source.Snapshot()
	node, err := valuation.NewResolver(ds).Breakdown(name, ds.Settings.ConservationLevel)
	s.observe(OpBreakdown, start, err)
	if err != nil {
		log.Debug("Breakdown failed", "item", name, "error", err)
		return nil, err
	}
	return node, nil
}

func (s *service) EvaluateEfficiency(ctx context.Context, name string, reward float64, mode domain.EfficiencyMode) (*domain.EfficiencyResult, error) {
	ds, version := s.source.Snapshot()
	return s.evaluate(ctx, ds, version, name, reward, mode)
}

// EvaluateBatch evaluates every query against one dataset snapshot. Per-item
// failures are reported in the entries; the error is only set for an oversized batch.
func (s *service) EvaluateBatch(ctx context.Context, queries []EfficiencyQuery) ([]BatchEntry, error) {
	if len(queries) > MaxBatchSize {
		return nil, fmt.Errorf("%w: batch of %d exceeds limit of %d", domain.ErrInvalidInput, len(queries), MaxBatchSize)
	}

	ds, version := s.source.Snapshot()
	entries := make([]BatchEntry, len(queries))
	for i, q := range queries {
		result, err := s.evaluate(ctx, ds, version, q.Item, q.Reward, q.Mode)
		entries[i] = BatchEntry{Query: q, Result: result, Err: err}
	}

	logger.FromContext(ctx).Info("Batch efficiency evaluated", "count", len(queries), "version", version)
	return entries, nil
}

func (s *service) evaluate(ctx context.Context, ds *domain.Dataset, version uint64, name string, reward float64, mode domain.EfficiencyMode) (*domain.EfficiencyResult, error) {
	log := logger.FromContext(ctx)

	key := cacheKey(version, name, reward, mode)
	if cached, ok := s.cache.Get(key); ok {
		metrics.EfficiencyCacheLookups.WithLabelValues(metrics.CacheHit).Inc()
		return cached, nil
	}
	metrics.EfficiencyCacheLookups.WithLabelValues(metrics.CacheMiss).Inc()

	start := s.now()
	optimizer := delivery.NewOptimizer(valuation.NewResolver(ds), ds.Settings)
	result, err := optimizer.Evaluate(name, reward, mode)
	s.observe(OpEvaluateEfficiency, start, err)
	if err != nil {
		log.Debug("Efficiency evaluation failed", "item", name, "mode", mode, "error", err)
		return nil, err
	}

	if mode == domain.ModeBest && result.Round != nil {
		metrics.RecommendedRounds.Observe(float64(*result.Round))
	}
	log.Debug("Efficiency evaluated",
		"item", name,
		"mode", mode,
		"recommend", result.Recommend,
		"deliveries", result.Deliveries(),
		"average_efficiency", result.AverageEfficiency)

	s.cache.Set(key, result)
	return result, nil
}

func (s *service) StaminaValue(level int) float64 {
	return stamina.MonetaryValue(level)
}

func (s *service) observe(op string, start time.Time, err error) {
	metrics.ValuationDuration.WithLabelValues(op).Observe(s.now().Sub(start).Seconds())
	metrics.ValuationsTotal.WithLabelValues(op, outcome(err)).Inc()
}

func outcome(err error) string {
	if err == nil {
		return metrics.OutcomeSuccess
	}
	if re, ok := domain.AsResolveError(err); ok {
		return string(re.Kind)
	}
	return outcomeError
}
