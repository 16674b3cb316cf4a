package delivery

import (
	"fmt"

	"github.com/osse101/CraftValue_Go/internal/domain"
)

// CostResolver is the subset of the valuation resolver the optimizer needs
type CostResolver interface {
	MaterialCost(name string, level int) (float64, error)
	TotalCost(name string, level int) (float64, error)
	Stamina(name string, level int) (float64, error)
}

// Optimizer evaluates delivery runs for items of one dataset
type Optimizer struct {
	resolver CostResolver
	settings domain.Settings
}

// NewOptimizer creates an optimizer using the given resolver and settings
func NewOptimizer(resolver CostResolver, settings domain.Settings) *Optimizer {
	return &Optimizer{resolver: resolver, settings: settings}
}

// unitEconomics are the per-unit inputs of every aggregate
type unitEconomics struct {
	cost         float64
	materialCost float64
	stamina      float64
}

// Evaluate computes the delivery run for item at the given reward per delivery.
// In ModeBest it searches for the most deliveries that stay above the efficiency
// threshold and snaps down to a milestone; any other mode simulates a fixed count.
func (o *Optimizer) Evaluate(item string, reward float64, mode domain.EfficiencyMode) (*domain.EfficiencyResult, error) {
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidEfficiencyMode, mode)
	}

	unit, err := o.resolveUnit(item)
	if err != nil {
		return nil, err
	}

	if mode == domain.ModeBest {
		return o.best(item, reward, unit), nil
	}
	return aggregate(item, mode, reward, unit, domain.SimulationDeliveries[mode], true), nil
}

func (o *Optimizer) resolveUnit(item string) (unitEconomics, error) {
	level := o.settings.ConservationLevel

	cost, err := o.resolver.TotalCost(item, level)
	if err != nil {
		return unitEconomics{}, err
	}
	materialCost, err := o.resolver.MaterialCost(item, level)
	if err != nil {
		return unitEconomics{}, err
	}
	stamina, err := o.resolver.Stamina(item, level)
	if err != nil {
		return unitEconomics{}, err
	}

	if cost == 0 {
		return unitEconomics{}, domain.NewResolveError(domain.KindGenericCost, item)
	}
	return unitEconomics{cost: cost, materialCost: materialCost, stamina: stamina}, nil
}

func (o *Optimizer) best(item string, reward float64, unit unitEconomics) *domain.EfficiencyResult {
	maxDeliveries := MaxDeliveries(reward, unit.cost, o.settings.EfficiencyThreshold)
	if maxDeliveries == 0 {
		return aggregate(item, domain.ModeBest, reward, unit, 1, false)
	}
	return aggregate(item, domain.ModeBest, reward, unit, SnapToMilestone(maxDeliveries), true)
}

// MaxDeliveries returns the largest delivery count, up to MaxSearchDeliveries, whose
// cumulative reward/cost ratio stays at or above threshold. It returns 0 when the
// very first delivery already falls short.
func MaxDeliveries(reward, unitCost, threshold float64) int {
	maxDeliveries := 0
	units := 0
	for i := 1; i <= MaxSearchDeliveries; i++ {
		units += RequiredUnits(i)
		efficiency := (reward * float64(i)) / (unitCost * float64(units))
		if efficiency < threshold {
			break
		}
		maxDeliveries = i
	}
	return maxDeliveries
}

func aggregate(item string, mode domain.EfficiencyMode, reward float64, unit unitEconomics, deliveries int, recommend bool) *domain.EfficiencyResult {
	units := CumulativeUnits(deliveries)
	profit := reward * float64(deliveries)
	totalCost := unit.cost * float64(units)

	result := &domain.EfficiencyResult{
		Item:                 item,
		Mode:                 mode,
		Recommend:            recommend,
		TotalItems:           units,
		TotalProfit:          profit,
		AverageEfficiency:    profit / totalCost,
		UnitCost:             unit.cost,
		ConsumedMaterialCost: unit.materialCost * float64(units),
		TotalCost:            totalCost,
		TotalStamina:         unit.stamina * float64(units),
	}
	if recommend {
		round := deliveries
		result.Round = &round
	}
	return result
}

