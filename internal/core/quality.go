package core

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// QualityReport scores how complete and plausible the period's input data is,
// 0 to 100. Issues describe what was detected; Recommendations say what to do
// about it. Both are plain sentences; formatting and localization belong to
// the caller.
type QualityReport struct {
	Score           int      `json:"score"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
}

// AssessQuality starts at 100 and subtracts a fixed penalty per detected
// condition, accumulating the matching issue and recommendation in the same
// pass. The score never drops below zero no matter how many conditions fire.
func (e *Engine) AssessQuality(revenue, cogs, opex decimal.Decimal) QualityReport {
	revenue = clampAmount(revenue)
	cogs = clampAmount(cogs)
	opex = clampAmount(opex)

	score := 100
	var issues, recs []string

	if revenue.IsZero() {
		score -= 30
		issues = append(issues, "no sales data recorded for this period")
		recs = append(recs, "record income transactions so margins can be computed")
	} else {
		if cogs.IsZero() {
			score -= 20
			issues = append(issues, "no COGS data: ingredient usage is not being tracked")
			recs = append(recs, "log material usage or recalculate recipe costs")
		}
		if opex.IsZero() {
			score -= 10
			issues = append(issues, "no operating cost data")
			recs = append(recs, "add monthly operating costs such as rent, wages and utilities")
		}
		if ratio := pctOf(cogs, revenue); ratio > e.cfg.HighCOGSRatioPct {
			score -= 10
			issues = append(issues, fmt.Sprintf("ingredient cost is %.1f%% of revenue, above the %.0f%% warning level", ratio, e.cfg.HighCOGSRatioPct))
			recs = append(recs, "review recipe portions and supplier prices")
		}
		if pctOf(opex, revenue) > e.cfg.OpexWarningRatioPct {
			score -= 10
			issues = append(issues, fmt.Sprintf("operating costs exceed %.0f%% of revenue", e.cfg.OpexWarningRatioPct))
			recs = append(recs, "look for overhead items that can be trimmed or renegotiated")
		}
		if revenue.LessThan(e.cfg.LowRevenueBenchmark) {
			score -= 5
			issues = append(issues, "revenue is below the low-revenue benchmark for this vertical")
		}
	}

	if score < 0 {
		score = 0
	}
	return QualityReport{Score: score, Issues: issues, Recommendations: recs}
}
