package core

import "github.com/shopspring/decimal"

// CostBreakdownLine is one row of a COGS breakdown. UnitPrice is the price
// actually used for the line; when a precomputed line cost was trusted it is
// back-derived as cost/quantity for display.
type CostBreakdownLine struct {
	MaterialID string          `json:"material_id"`
	Name       string          `json:"name"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price_used"`
	LineCost   decimal.Decimal `json:"line_cost"`

	// Expensive may be set by the caller to force the expensive-items insight
	// for this line regardless of its share of total COGS.
	Expensive bool `json:"expensive,omitempty"`
}

// CostSummary is the result of a COGS calculation. Estimated is true when the
// total came from the stock heuristic rather than a usage ledger, so reports
// can distinguish ledger-backed figures from guesses.
type CostSummary struct {
	Total     decimal.Decimal     `json:"total"`
	Breakdown []CostBreakdownLine `json:"breakdown"`
	Estimated bool                `json:"estimated"`
}

// MaterialIndex builds the by-ID lookup ComputeCOGS expects.
func MaterialIndex(materials []Material) map[string]Material {
	idx := make(map[string]Material, len(materials))
	for _, m := range materials {
		idx[m.ID] = m
	}
	return idx
}

// ComputeCOGS totals the cost of goods sold from a usage ledger. Per record,
// in order of preference:
//
//  1. a precomputed line cost is trusted verbatim (rounded to whole currency
//     units), with a synthetic unit price derived for display;
//  2. a precomputed effective unit price is multiplied by quantity;
//  3. the price resolver supplies the unit price.
//
// Upstream systems deliver partially denormalized data — some views
// precompute cost, others only raw quantities — and the aggregator must
// neither fail nor undercount in either case. A record whose material is
// unknown contributes nothing: upstream data entry is allowed to reference
// stale IDs, so a dangling reference is not an error.
func ComputeCOGS(usage []UsageRecord, materialsByID map[string]Material) CostSummary {
	var summary CostSummary
	total := decimal.Zero

	for _, u := range usage {
		m, ok := materialsByID[u.MaterialID]
		if !ok {
			continue
		}

		qty := clampAmount(u.Quantity)
		var lineCost, unitPrice decimal.Decimal
		switch {
		case u.LineCost != nil:
			lineCost = clampAmount(*u.LineCost).Round(0)
			if qty.IsZero() {
				unitPrice = EffectiveUnitPrice(m)
			} else {
				unitPrice = lineCost.Div(qty)
			}
		case u.UnitPrice != nil:
			unitPrice = clampAmount(*u.UnitPrice)
			lineCost = qty.Mul(unitPrice).Round(0)
		default:
			unitPrice = EffectiveUnitPrice(m)
			lineCost = qty.Mul(unitPrice).Round(0)
		}

		total = total.Add(lineCost)
		summary.Breakdown = append(summary.Breakdown, CostBreakdownLine{
			MaterialID: m.ID,
			Name:       m.Name,
			Quantity:   qty,
			UnitPrice:  unitPrice,
			LineCost:   lineCost,
		})
	}

	summary.Total = total
	return summary
}

// EstimateCOGS approximates COGS as stock × usage rate × effective price for
// every material, for periods with no usage ledger at all. This is a crude
// fallback and the result carries Estimated: true so no report can pass it
// off as a ledger-backed figure. Materials that contribute nothing are left
// out of the breakdown.
func (e *Engine) EstimateCOGS(materials []Material) CostSummary {
	summary := CostSummary{Estimated: true}
	total := decimal.Zero

	for _, m := range materials {
		price := EffectiveUnitPrice(m)
		qty := clampAmount(m.Stock).Mul(e.cfg.DefaultUsageRate)
		cost := qty.Mul(price).Round(0)
		if cost.IsZero() {
			continue
		}
		total = total.Add(cost)
		summary.Breakdown = append(summary.Breakdown, CostBreakdownLine{
			MaterialID: m.ID,
			Name:       m.Name,
			Quantity:   qty,
			UnitPrice:  price,
			LineCost:   cost,
		})
	}

	summary.Total = total
	return summary
}
