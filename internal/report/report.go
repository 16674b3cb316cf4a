// Package report evaluates a whole dataset and writes the results to a spreadsheet.
package report

import (
	"context"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/osse101/CraftValue_Go/internal/domain"
	"github.com/osse101/CraftValue_Go/internal/pricing"
)

// CostRow is the valuation of one item
type CostRow struct {
	Item         string
	Kind         domain.ItemKind
	Category     domain.Category
	TotalCost    float64
	MaterialCost float64
	Stamina      float64
	Err          string
}

// DeliveryRow is the best-mode efficiency of one delivery request
type DeliveryRow struct {
	Item   string
	Reward float64
	Result *domain.EfficiencyResult
	Err    string
}

// Report holds every row written to the spreadsheet
type Report struct {
	DatasetVersion uint64
	Costs          []CostRow
	Deliveries     []DeliveryRow
}

// LoadRewards reads a mapping of item name to delivery reward. The file may be
// YAML or JSON.
func LoadRewards(path string) (map[string]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rewards file: %w", err)
	}

	rewards := make(map[string]float64)
	if err := yaml.Unmarshal(data, &rewards); err != nil {
		return nil, fmt.Errorf("failed to parse rewards file: %w", err)
	}
	for item, reward := range rewards {
		if reward < 0 {
			return nil, fmt.Errorf("%w: reward for %q is negative", domain.ErrInvalidInput, item)
		}
	}
	return rewards, nil
}

// Build values every material and recipe of ds and evaluates each rewarded item
// in best mode. Per-item failures are recorded on the row.
func Build(ctx context.Context, svc pricing.Service, ds *domain.Dataset, version uint64, rewards map[string]float64) (*Report, error) {
	r := &Report{DatasetVersion: version}

	for _, name := range ds.MaterialNames() {
		r.Costs = append(r.Costs, costRow(ctx, svc, name, domain.ItemKindMaterial, ""))
	}
	for _, name := range ds.RecipeNames() {
		recipe, _ := ds.Recipe(name)
		r.Costs = append(r.Costs, costRow(ctx, svc, name, domain.ItemKindRecipe, recipe.Category))
	}

	items := make([]string, 0, len(rewards))
	for item := range rewards {
		items = append(items, item)
	}
	sort.Strings(items)

	for start := 0; start < len(items); start += pricing.MaxBatchSize {
		end := min(start+pricing.MaxBatchSize, len(items))

		queries := make([]pricing.EfficiencyQuery, 0, end-start)
		for _, item := range items[start:end] {
			queries = append(queries, pricing.EfficiencyQuery{Item: item, Reward: rewards[item], Mode: domain.ModeBest})
		}

		entries, err := svc.EvaluateBatch(ctx, queries)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			row := DeliveryRow{Item: e.Query.Item, Reward: e.Query.Reward}
			if e.Err != nil {
				row.Err = e.Err.Error()
			} else {
				formatted := e.Result.Formatted()
				row.Result = &formatted
			}
			r.Deliveries = append(r.Deliveries, row)
		}
	}

	return r, nil
}

func costRow(ctx context.Context, svc pricing.Service, name string, kind domain.ItemKind, category domain.Category) CostRow {
	row := CostRow{Item: name, Kind: kind, Category: category}

	total, err := svc.ResolveCost(ctx, name)
	if err != nil {
		row.Err = err.Error()
		return row
	}
	material, err := svc.ResolveMaterialCost(ctx, name)
	if err != nil {
		row.Err = err.Error()
		return row
	}
	staminaTotal, err := svc.ResolveStamina(ctx, name)
	if err != nil {
		row.Err = err.Error()
		return row
	}

	row.TotalCost = total
	row.MaterialCost = material
	row.Stamina = staminaTotal
	return row
}
