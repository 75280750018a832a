package core

import "github.com/shopspring/decimal"

// EffectiveUnitPrice resolves the unit cost of a material: the weighted
// average cost wins whenever it is positive, otherwise the static base price,
// otherwise zero. This is the single pricing policy in the engine — every
// place that needs a unit price goes through it, so COGS figures stay
// internally consistent. The result is never negative.
func EffectiveUnitPrice(m Material) decimal.Decimal {
	if m.WeightedAverageCost.IsPositive() {
		return m.WeightedAverageCost
	}
	if m.UnitPrice.IsPositive() {
		return m.UnitPrice
	}
	return decimal.Zero
}
