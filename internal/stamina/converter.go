// Package stamina converts a work-life-balance level into the coin value of one
// point of stamina.
package stamina

import "math"

// Reference recipe used to price stamina: its total material cost and the net
// stamina it yields per level above the first.
const (
	ReferenceMaterialCost = 1000
	ReferenceStaminaGain  = 13
)

// NeverWorthIt is returned when stamina has no finite coin value at a level
const NeverWorthIt = 99999

// MonetaryValue returns the coin value of one stamina point at the given
// work-life-balance level, rounded to two decimals.
func MonetaryValue(level int) float64 {
	if level <= 1 {
		return NeverWorthIt
	}
	denominator := float64(ReferenceStaminaGain * (level - 1))
	if denominator <= 0 {
		return NeverWorthIt
	}
	return math.Round(ReferenceMaterialCost/denominator*100) / 100
}
