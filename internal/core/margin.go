package core

import "github.com/shopspring/decimal"

// MarginResult carries the profitability figures for one period. The clamped
// inputs are echoed back so callers always see the numbers the percentages
// were derived from. Every percentage field is zero when revenue is zero,
// never NaN or infinite.
type MarginResult struct {
	Revenue           decimal.Decimal `json:"revenue"`
	COGS              decimal.Decimal `json:"cogs"`
	Opex              decimal.Decimal `json:"opex"`
	GrossProfit       decimal.Decimal `json:"gross_profit"`
	NetProfit         decimal.Decimal `json:"net_profit"`
	GrossMarginPct    float64         `json:"gross_margin_pct"`
	NetMarginPct      float64         `json:"net_margin_pct"`
	COGSRatioPct      float64         `json:"cogs_ratio_pct"`
	OpexRatioPct      float64         `json:"opex_ratio_pct"`
	TotalCostRatioPct float64         `json:"total_cost_ratio_pct"`
}

// BreakEvenResult reports the revenue needed to cover fixed costs. Invalid is
// true when the contribution margin is zero or negative: no revenue level
// breaks even, and returning a number would be nonsense.
type BreakEvenResult struct {
	BreakEvenRevenue decimal.Decimal `json:"break_even_revenue"`
	TargetRevenue    decimal.Decimal `json:"target_revenue"`
	Invalid          bool            `json:"invalid"`
}

// PeriodSnapshot is the three-figure summary ComparePeriods works from.
type PeriodSnapshot struct {
	Revenue decimal.Decimal `json:"revenue"`
	COGS    decimal.Decimal `json:"cogs"`
	Opex    decimal.Decimal `json:"opex"`
}

type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendFlat Trend = "flat"
)

// MetricChange describes how one metric moved between two periods.
// ChangePct is zero when the previous value is zero.
type MetricChange struct {
	Current   decimal.Decimal `json:"current"`
	Previous  decimal.Decimal `json:"previous"`
	ChangePct float64         `json:"change_pct"`
	Trend     Trend           `json:"trend"`
}

// PeriodComparison is the per-metric movement between two periods.
type PeriodComparison struct {
	Revenue     MetricChange `json:"revenue"`
	COGS        MetricChange `json:"cogs"`
	Opex        MetricChange `json:"opex"`
	GrossMargin MetricChange `json:"gross_margin"`
	NetMargin   MetricChange `json:"net_margin"`
}

// ComputeMargins derives profit and cost-ratio figures from the three period
// totals. Negative inputs are data errors and are floored to zero before use.
// This is the only margin calculation in the codebase; every report goes
// through it.
func ComputeMargins(revenue, cogs, opex decimal.Decimal) MarginResult {
	revenue = clampAmount(revenue)
	cogs = clampAmount(cogs)
	opex = clampAmount(opex)

	gross := revenue.Sub(cogs)
	net := gross.Sub(opex)

	r := MarginResult{
		Revenue:     revenue,
		COGS:        cogs,
		Opex:        opex,
		GrossProfit: gross,
		NetProfit:   net,
	}
	if revenue.IsZero() {
		return r
	}

	r.GrossMarginPct = pctOf(gross, revenue)
	r.NetMarginPct = pctOf(net, revenue)
	r.COGSRatioPct = pctOf(cogs, revenue)
	r.OpexRatioPct = pctOf(opex, revenue)
	r.TotalCostRatioPct = r.COGSRatioPct + r.OpexRatioPct
	return r
}

// BreakEven computes the revenue needed to cover fixedCosts given a variable
// cost rate expressed as a percentage of revenue, and the revenue needed to
// additionally earn targetProfit. A variable cost rate of 100% or more makes
// the result Invalid.
func BreakEven(fixedCosts decimal.Decimal, variableCostRatePct float64, targetProfit decimal.Decimal) BreakEvenResult {
	fixedCosts = clampAmount(fixedCosts)
	targetProfit = clampAmount(targetProfit)
	if variableCostRatePct < 0 {
		variableCostRatePct = 0
	}
	if variableCostRatePct >= 100 {
		return BreakEvenResult{Invalid: true}
	}

	contribution := decimal.NewFromInt(1).
		Sub(decimal.NewFromFloat(variableCostRatePct).Div(decimal.NewFromInt(100)))
	return BreakEvenResult{
		BreakEvenRevenue: fixedCosts.Div(contribution).Round(0),
		TargetRevenue:    fixedCosts.Add(targetProfit).Div(contribution).Round(0),
	}
}

// ComparePeriods reports how revenue, costs and margins moved between two
// period snapshots. Margins are recomputed from the snapshots through
// ComputeMargins so the comparison can never disagree with the main report.
func ComparePeriods(current, previous PeriodSnapshot) PeriodComparison {
	cur := ComputeMargins(current.Revenue, current.COGS, current.Opex)
	prev := ComputeMargins(previous.Revenue, previous.COGS, previous.Opex)

	return PeriodComparison{
		Revenue:     metricChange(cur.Revenue, prev.Revenue),
		COGS:        metricChange(cur.COGS, prev.COGS),
		Opex:        metricChange(cur.Opex, prev.Opex),
		GrossMargin: metricChange(decimal.NewFromFloat(cur.GrossMarginPct), decimal.NewFromFloat(prev.GrossMarginPct)),
		NetMargin:   metricChange(decimal.NewFromFloat(cur.NetMarginPct), decimal.NewFromFloat(prev.NetMarginPct)),
	}
}

// metricChange tags the movement of a single metric. The ±1 dead-band keeps
// noise-level fluctuation from showing up as a trend.
func metricChange(cur, prev decimal.Decimal) MetricChange {
	mc := MetricChange{Current: cur, Previous: prev, Trend: TrendFlat}
	if !prev.IsZero() {
		mc.ChangePct = cur.Sub(prev).Div(prev).InexactFloat64() * 100
	}
	switch {
	case mc.ChangePct > 1:
		mc.Trend = TrendUp
	case mc.ChangePct < -1:
		mc.Trend = TrendDown
	}
	return mc
}

// pctOf returns part/whole as a percentage, zero-guarded.
func pctOf(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Div(whole).InexactFloat64() * 100
}

// SumIncome totals the income-typed transactions.
func SumIncome(txs []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		if tx.Type == TypeIncome {
			total = total.Add(clampAmount(tx.Amount))
		}
	}
	return total
}

// SumOperatingCosts totals the monthly amounts of active operating costs.
func SumOperatingCosts(costs []OperatingCost) decimal.Decimal {
	total := decimal.Zero
	for _, c := range costs {
		if c.Status == CostActive {
			total = total.Add(clampAmount(c.MonthlyAmount))
		}
	}
	return total
}
