package domain

import "math"

// EfficiencyMode selects between searching for the best delivery count and
// simulating one of the fixed milestone counts.
type EfficiencyMode string

// Efficiency modes. The simulation labels are tier labels, not delivery counts:
// see SimulationDeliveries for the mapping.
const (
	ModeBest       EfficiencyMode = "best"
	ModeSimulate1  EfficiencyMode = "1"
	ModeSimulate2  EfficiencyMode = "2"
	ModeSimulate3  EfficiencyMode = "3"
	ModeSimulate5  EfficiencyMode = "5"
	ModeSimulate10 EfficiencyMode = "10"
)

// SimulationDeliveries maps each simulation label to the delivery count it simulates
var SimulationDeliveries = map[EfficiencyMode]int{
	ModeSimulate1:  1,
	ModeSimulate2:  2,
	ModeSimulate3:  10,
	ModeSimulate5:  20,
	ModeSimulate10: 25,
}

// IsValid reports whether m is a known mode
func (m EfficiencyMode) IsValid() bool {
	if m == ModeBest {
		return true
	}
	_, ok := SimulationDeliveries[m]
	return ok
}

// EfficiencyResult is the aggregated economics for a delivery run
type EfficiencyResult struct {
	Item      string         `json:"item"`
	Mode      EfficiencyMode `json:"mode"`
	Recommend bool           `json:"recommend"`
	// Round is the recommended delivery count; nil when the run is not recommended
	Round                *int    `json:"round,omitempty"`
	TotalItems           int     `json:"total_items"`
	TotalProfit          float64 `json:"total_profit"`
	AverageEfficiency    float64 `json:"average_efficiency"`
	UnitCost             float64 `json:"unit_cost"`
	ConsumedMaterialCost float64 `json:"consumed_material_cost"`
	TotalCost            float64 `json:"total_cost"`
	TotalStamina         float64 `json:"total_stamina"`
}

// Deliveries returns the delivery count the aggregates were computed for
func (r *EfficiencyResult) Deliveries() int {
	if r.Round == nil {
		return 1
	}
	return *r.Round
}

// Formatted returns a copy rounded for display: coins and stamina to whole numbers,
// efficiency to four decimals.
func (r EfficiencyResult) Formatted() EfficiencyResult {
	r.TotalProfit = math.Round(r.TotalProfit)
	r.UnitCost = math.Round(r.UnitCost)
	r.ConsumedMaterialCost = math.Round(r.ConsumedMaterialCost)
	r.TotalCost = math.Round(r.TotalCost)
	r.TotalStamina = math.Round(r.TotalStamina)
	r.AverageEfficiency = math.Round(r.AverageEfficiency*10000) / 10000
	return r
}

// CostNode is one node of a resolved cost tree
type CostNode struct {
	Name         string      `json:"name"`
	Kind         ItemKind    `json:"kind"`
	Category     Category    `json:"category,omitempty"`
	Count        float64     `json:"count"`
	MaterialCost float64     `json:"material_cost"`
	Stamina      float64     `json:"stamina"`
	TotalCost    float64     `json:"total_cost"`
	Ingredients  []*CostNode `json:"ingredients,omitempty"`
}
