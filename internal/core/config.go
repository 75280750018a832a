package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// BandThresholds are descending cutoffs for one metric. For margin metrics a
// value meeting or exceeding a cutoff earns that band; for COGS efficiency
// the comparison runs the other way (lower ratio is better).
type BandThresholds struct {
	Excellent float64 `json:"excellent"`
	Good      float64 `json:"good"`
	Fair      float64 `json:"fair"`
}

// BenchmarkTable groups the threshold tables for one business vertical.
// A nil entry means "not configured for this vertical" and falls through to
// the generic table, so the same classifier serves non-F&B verticals by
// swapping configuration only.
type BenchmarkTable struct {
	GrossMargin *BandThresholds `json:"gross_margin,omitempty"`
	NetMargin   *BandThresholds `json:"net_margin,omitempty"`
	COGSRatio   *BandThresholds `json:"cogs_ratio,omitempty"`
}

// Config is the static tuning surface of the engine. It is handed to
// NewEngine once and never mutated afterwards; tests and other verticals
// supply alternate values instead of changing code.
type Config struct {
	// FNB holds the vertical-specific thresholds and wins over Generic
	// wherever both are set.
	FNB     BenchmarkTable `json:"fnb"`
	Generic BenchmarkTable `json:"generic"`

	// HighCOGSRatioPct is the COGS-to-revenue percentage above which
	// ingredient cost is treated as a problem.
	HighCOGSRatioPct float64 `json:"high_cogs_ratio_pct"`

	// LowRevenueBenchmark is the monthly revenue under which the business is
	// considered underperforming.
	LowRevenueBenchmark decimal.Decimal `json:"low_revenue_benchmark"`

	// OpexWarningRatioPct is the operating-cost share of revenue that
	// triggers a data quality warning.
	OpexWarningRatioPct float64 `json:"opex_warning_ratio_pct"`

	// ExcellentNetMarginPct is the net margin at which expansion insights
	// start firing.
	ExcellentNetMarginPct float64 `json:"excellent_net_margin_pct"`

	// ExpensiveLineSharePct is the share of total COGS above which a single
	// breakdown line is flagged expensive.
	ExpensiveLineSharePct float64 `json:"expensive_line_share_pct"`

	// DefaultUsageRate is the fraction of current stock assumed consumed per
	// period when no usage ledger exists. The 10% default is a product-owner
	// heuristic with no stated derivation; it is configurable on purpose.
	DefaultUsageRate decimal.Decimal `json:"default_usage_rate"`

	// HighSeasonMonths lists the calendar months treated as high season.
	// An empty list disables seasonal tips entirely.
	HighSeasonMonths []time.Month `json:"high_season_months"`
}

// DefaultConfig returns the F&B defaults the product ships with.
func DefaultConfig() Config {
	return Config{
		FNB: BenchmarkTable{
			GrossMargin: &BandThresholds{Excellent: 70, Good: 60, Fair: 50},
			NetMargin:   &BandThresholds{Excellent: 18, Good: 12, Fair: 6},
			COGSRatio:   &BandThresholds{Excellent: 30, Good: 40, Fair: 50},
		},
		Generic: BenchmarkTable{
			GrossMargin: &BandThresholds{Excellent: 50, Good: 35, Fair: 20},
			NetMargin:   &BandThresholds{Excellent: 15, Good: 10, Fair: 5},
			COGSRatio:   &BandThresholds{Excellent: 40, Good: 55, Fair: 70},
		},
		HighCOGSRatioPct:      50,
		LowRevenueBenchmark:   decimal.NewFromInt(5_000_000),
		OpexWarningRatioPct:   30,
		ExcellentNetMarginPct: 18,
		ExpensiveLineSharePct: 15,
		DefaultUsageRate:      decimal.NewFromFloat(0.10),
		HighSeasonMonths:      []time.Month{time.March, time.April, time.May},
	}
}

// withDefaults fills zero-value holes from DefaultConfig so a partially
// specified configuration still behaves. HighSeasonMonths is left alone:
// empty means "no high season", which is a valid setting.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Generic.GrossMargin == nil {
		c.Generic.GrossMargin = def.Generic.GrossMargin
	}
	if c.Generic.NetMargin == nil {
		c.Generic.NetMargin = def.Generic.NetMargin
	}
	if c.Generic.COGSRatio == nil {
		c.Generic.COGSRatio = def.Generic.COGSRatio
	}
	if c.HighCOGSRatioPct == 0 {
		c.HighCOGSRatioPct = def.HighCOGSRatioPct
	}
	if c.LowRevenueBenchmark.IsZero() {
		c.LowRevenueBenchmark = def.LowRevenueBenchmark
	}
	if c.OpexWarningRatioPct == 0 {
		c.OpexWarningRatioPct = def.OpexWarningRatioPct
	}
	if c.ExcellentNetMarginPct == 0 {
		c.ExcellentNetMarginPct = def.ExcellentNetMarginPct
	}
	if c.ExpensiveLineSharePct == 0 {
		c.ExpensiveLineSharePct = def.ExpensiveLineSharePct
	}
	if c.DefaultUsageRate.IsZero() {
		c.DefaultUsageRate = def.DefaultUsageRate
	}
	return c
}
