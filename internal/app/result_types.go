package app

import (
	"github.com/shopspring/decimal"

	"github.com/monifinebakery/BISMILLAH-sub011/internal/core"
)

// Ratings carries the benchmark bands for one period.
type Ratings struct {
	GrossMargin    core.Band `json:"gross_margin"`
	NetMargin      core.Band `json:"net_margin"`
	COGSEfficiency core.Band `json:"cogs_efficiency"`
}

// ProfitReport is the complete output of one profitability analysis.
type ProfitReport struct {
	Period           string             `json:"period"`
	TransactionCount int                `json:"transaction_count"`
	Revenue          decimal.Decimal    `json:"revenue"`
	Opex             decimal.Decimal    `json:"opex"`
	Cost             core.CostSummary   `json:"cost"`
	Margins          core.MarginResult  `json:"margins"`
	Ratings          Ratings            `json:"ratings"`
	Quality          core.QualityReport `json:"quality"`
	Insights         core.InsightReport `json:"insights"`
}

// ComparisonResult is the output of a month-over-month comparison.
type ComparisonResult struct {
	CurrentPeriod  string                `json:"current_period"`
	PreviousPeriod string                `json:"previous_period"`
	Comparison     core.PeriodComparison `json:"comparison"`
}
