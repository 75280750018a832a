package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type InsightKind string

const (
	KindAlert       InsightKind = "alert"
	KindOpportunity InsightKind = "opportunity"
	KindSeasonal    InsightKind = "seasonal"
	KindSuggestion  InsightKind = "suggestion"
)

type Impact string

const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

// Insight is one finding emitted by the rule set. IDs are stable rule
// identifiers, never random: the same inputs must always yield the same
// insight list.
type Insight struct {
	ID          string           `json:"id"`
	Kind        InsightKind      `json:"kind"`
	Category    string           `json:"category"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Impact      Impact           `json:"impact"`
	Actionable  bool             `json:"actionable"`
	Value       *decimal.Decimal `json:"value,omitempty"`
}

// InsightSummary rolls up the four insight lists.
type InsightSummary struct {
	TotalInsights         int             `json:"total_insights"`
	PotentialSavings      decimal.Decimal `json:"potential_savings"`
	PotentialRevenueBoost decimal.Decimal `json:"potential_revenue_boost"`
	HighPriorityCount     int             `json:"high_priority_count"`
}

// InsightReport groups insights by kind. Insights holds general suggestions;
// alerts, opportunities and seasonal tips get their own lists.
type InsightReport struct {
	Insights      []Insight      `json:"insights"`
	Alerts        []Insight      `json:"alerts"`
	Opportunities []Insight      `json:"opportunities"`
	SeasonalTips  []Insight      `json:"seasonal_tips"`
	Summary       InsightSummary `json:"summary"`
}

// InsightInput is everything the rule set looks at. Now drives the seasonal
// rule; passing it explicitly keeps the generator deterministic.
type InsightInput struct {
	Period    string
	Revenue   decimal.Decimal
	COGS      decimal.Decimal
	Margins   MarginResult
	Breakdown []CostBreakdownLine
	Now       time.Time
}

// GenerateInsights evaluates every rule independently. This is not a
// decision tree; any number of rules can fire for the same period.
func (e *Engine) GenerateInsights(in InsightInput) InsightReport {
	revenue := clampAmount(in.Revenue)
	cogs := clampAmount(in.COGS)
	period := in.Period
	if period == "" || period == "all" {
		period = "this period"
	}

	var rep InsightReport

	// ── High ingredient cost ──────────────────────────────────────────────

	if ratio := pctOf(cogs, revenue); !revenue.IsZero() && ratio > e.cfg.HighCOGSRatioPct {
		threshold := decimal.NewFromFloat(e.cfg.HighCOGSRatioPct).Div(decimal.NewFromInt(100))
		recoverable := cogs.Sub(revenue.Mul(threshold)).Round(0)
		rep.Alerts = append(rep.Alerts, Insight{
			ID:       "high-ingredient-cost",
			Kind:     KindAlert,
			Category: "cost-control",
			Title:    "Ingredient cost is eating your margin",
			Description: fmt.Sprintf(
				"COGS is %.1f%% of revenue for %s; bringing it back to %.0f%% would free up %s.",
				ratio, period, e.cfg.HighCOGSRatioPct, recoverable.StringFixed(0)),
			Impact:     ImpactHigh,
			Actionable: true,
			Value:      &recoverable,
		})
	}

	// ── Low revenue ───────────────────────────────────────────────────────

	if revenue.IsPositive() && revenue.LessThan(e.cfg.LowRevenueBenchmark) {
		gap := e.cfg.LowRevenueBenchmark.Sub(revenue).Round(0)
		rep.Opportunities = append(rep.Opportunities, Insight{
			ID:       "low-revenue",
			Kind:     KindOpportunity,
			Category: "revenue",
			Title:    "Revenue is below the benchmark",
			Description: fmt.Sprintf(
				"Sales for %s are %s short of the benchmark; promos or extended opening hours usually close this gap.",
				period, gap.StringFixed(0)),
			Impact:     ImpactMedium,
			Actionable: true,
			Value:      &gap,
		})
	}

	// ── Expensive breakdown lines ─────────────────────────────────────────

	if alert, ok := e.expensiveItems(in.Breakdown); ok {
		rep.Alerts = append(rep.Alerts, alert)
	}

	// ── Seasonal ──────────────────────────────────────────────────────────

	// Fires on the calendar alone, independent of any metric.
	if e.isHighSeason(in.Now.Month()) {
		rep.SeasonalTips = append(rep.SeasonalTips, Insight{
			ID:          "seasonal-high-demand",
			Kind:        KindSeasonal,
			Category:    "seasonal",
			Title:       "High season is here",
			Description: "Demand typically peaks in these months; stock up on fast-moving materials and lock in supplier prices early.",
			Impact:      ImpactHigh,
			Actionable:  true,
		})
	}

	// ── Excellent margin ──────────────────────────────────────────────────

	if in.Margins.NetMarginPct >= e.cfg.ExcellentNetMarginPct {
		rep.Insights = append(rep.Insights, Insight{
			ID:       "excellent-margin",
			Kind:     KindSuggestion,
			Category: "growth",
			Title:    "Net margin is excellent",
			Description: fmt.Sprintf(
				"Net margin of %.1f%% is above the %.0f%% excellence mark; current pricing and cost control are working.",
				in.Margins.NetMarginPct, e.cfg.ExcellentNetMarginPct),
			Impact: ImpactLow,
		})
		rep.Opportunities = append(rep.Opportunities, Insight{
			ID:          "expansion-ready",
			Kind:        KindOpportunity,
			Category:    "growth",
			Title:       "Margins can fund expansion",
			Description: "Sustained margins at this level support a second outlet, new menu lines or delivery channels.",
			Impact:      ImpactHigh,
			Actionable:  true,
		})
	}

	rep.Summary = summarize(rep)
	return rep
}

// expensiveItems flags breakdown lines that are explicitly marked expensive
// or contribute more than the configured share of total COGS. Up to three
// names are listed; the value is the summed cost of every flagged line.
func (e *Engine) expensiveItems(breakdown []CostBreakdownLine) (Insight, bool) {
	total := decimal.Zero
	for _, l := range breakdown {
		total = total.Add(l.LineCost)
	}

	var names []string
	flaggedCost := decimal.Zero
	for _, l := range breakdown {
		if l.Expensive || (total.IsPositive() && pctOf(l.LineCost, total) > e.cfg.ExpensiveLineSharePct) {
			names = append(names, l.Name)
			flaggedCost = flaggedCost.Add(l.LineCost)
		}
	}
	if len(names) == 0 {
		return Insight{}, false
	}

	listed := names
	if len(listed) > 3 {
		listed = listed[:3]
	}
	return Insight{
		ID:       "expensive-items",
		Kind:     KindAlert,
		Category: "cost-control",
		Title:    "A few materials dominate your COGS",
		Description: fmt.Sprintf(
			"%s account for %s of material cost; check portions and negotiate prices for these first.",
			strings.Join(listed, ", "), flaggedCost.StringFixed(0)),
		Impact:     ImpactMedium,
		Actionable: true,
		Value:      &flaggedCost,
	}, true
}

func (e *Engine) isHighSeason(m time.Month) bool {
	for _, hm := range e.cfg.HighSeasonMonths {
		if hm == m {
			return true
		}
	}
	return false
}

func summarize(rep InsightReport) InsightSummary {
	s := InsightSummary{
		TotalInsights:         len(rep.Insights) + len(rep.Alerts) + len(rep.Opportunities) + len(rep.SeasonalTips),
		PotentialSavings:      decimal.Zero,
		PotentialRevenueBoost: decimal.Zero,
	}
	for _, a := range rep.Alerts {
		if a.Value != nil {
			s.PotentialSavings = s.PotentialSavings.Add(*a.Value)
		}
	}
	for _, o := range rep.Opportunities {
		if o.Value != nil {
			s.PotentialRevenueBoost = s.PotentialRevenueBoost.Add(*o.Value)
		}
	}
	for _, list := range [][]Insight{rep.Alerts, rep.Opportunities, rep.SeasonalTips} {
		for _, i := range list {
			if i.Impact == ImpactHigh {
				s.HighPriorityCount++
			}
		}
	}
	return s
}
