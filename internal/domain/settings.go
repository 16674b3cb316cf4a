package domain

// Conservation bounds
const (
	MinConservationLevel = 0
	MaxConservationLevel = 20

	// ConservationStep is the fraction of each ingredient saved per conservation level
	ConservationStep = 0.05
)

// DefaultEfficiencyThreshold is used when a dataset does not set one
const DefaultEfficiencyThreshold = 0.36

// Settings holds the valuation knobs stored alongside a dataset
type Settings struct {
	// StaminaValue is the coin value of one point of stamina
	StaminaValue float64 `json:"stamina_cost" yaml:"stamina_cost" validate:"gte=0"`
	// EfficiencyThreshold is the minimum reward/cost ratio for a recommended delivery run
	EfficiencyThreshold float64 `json:"efficiency_limit" yaml:"efficiency_limit" validate:"gte=0"`
	ConservationLevel   int     `json:"conservation_level" yaml:"conservation_level" validate:"gte=0,lte=20"`
	// ExcludeIntermediateStamina drops an exempt recipe's own stamina from its totals
	ExcludeIntermediateStamina bool `json:"exclude_intermediate_stamina" yaml:"exclude_intermediate_stamina"`
	// WorkLifeBalanceLevel, when set, derives StaminaValue
	WorkLifeBalanceLevel *int `json:"wlb_level,omitempty" yaml:"wlb_level,omitempty" validate:"omitempty,gte=0"`
}

// ReductionFactor returns the multiplier applied to ingredient counts of a recipe
// in the given category at the given conservation level.
func ReductionFactor(category Category, level int) float64 {
	if category.ConservationExempt() {
		return 1
	}
	return 1 - float64(level)*ConservationStep
}

// SettingsPatch carries a partial settings update; nil fields are left unchanged
type SettingsPatch struct {
	StaminaValue               *float64 `json:"stamina_cost,omitempty" validate:"omitempty,gte=0"`
	EfficiencyThreshold        *float64 `json:"efficiency_limit,omitempty" validate:"omitempty,gte=0"`
	ConservationLevel          *int     `json:"conservation_level,omitempty" validate:"omitempty,gte=0,lte=20"`
	ExcludeIntermediateStamina *bool    `json:"exclude_intermediate_stamina,omitempty"`
	WorkLifeBalanceLevel       *int     `json:"wlb_level,omitempty" validate:"omitempty,gte=0"`
	// ClearWorkLifeBalance unsets WorkLifeBalanceLevel so StaminaValue is used verbatim
	ClearWorkLifeBalance bool `json:"clear_wlb_level,omitempty"`
}

// Apply returns a copy of s with the patch applied
func (p SettingsPatch) Apply(s Settings) Settings {
	if p.StaminaValue != nil {
		s.StaminaValue = *p.StaminaValue
	}
	if p.EfficiencyThreshold != nil {
		s.EfficiencyThreshold = *p.EfficiencyThreshold
	}
	if p.ConservationLevel != nil {
		s.ConservationLevel = *p.ConservationLevel
	}
	if p.ExcludeIntermediateStamina != nil {
		s.ExcludeIntermediateStamina = *p.ExcludeIntermediateStamina
	}
	if p.ClearWorkLifeBalance {
		s.WorkLifeBalanceLevel = nil
	}
	if p.WorkLifeBalanceLevel != nil {
		level := *p.WorkLifeBalanceLevel
		s.WorkLifeBalanceLevel = &level
	}
	return s
}
