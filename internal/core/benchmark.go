package core

// Band is a qualitative rating. Ordering: poor < fair < good < excellent.
type Band string

const (
	BandExcellent Band = "excellent"
	BandGood      Band = "good"
	BandFair      Band = "fair"
	BandPoor      Band = "poor"
)

type MarginKind string

const (
	MarginGross MarginKind = "gross"
	MarginNet   MarginKind = "net"
)

// RateMargin classifies a margin percentage against the configured threshold
// table, best band first: the first cutoff the value meets or exceeds wins.
// F&B thresholds take precedence; the generic table is the fallback.
func (e *Engine) RateMargin(value float64, kind MarginKind) Band {
	var t *BandThresholds
	switch kind {
	case MarginNet:
		t = pickThresholds(e.cfg.FNB.NetMargin, e.cfg.Generic.NetMargin)
	default:
		t = pickThresholds(e.cfg.FNB.GrossMargin, e.cfg.Generic.GrossMargin)
	}

	switch {
	case value >= t.Excellent:
		return BandExcellent
	case value >= t.Good:
		return BandGood
	case value >= t.Fair:
		return BandFair
	}
	return BandPoor
}

// RateCOGSEfficiency classifies a COGS-to-revenue ratio. Same table-driven
// walk as RateMargin but inverted: a lower ratio is better, so the first
// cutoff the value stays at or under wins.
func (e *Engine) RateCOGSEfficiency(ratioPct float64) Band {
	t := pickThresholds(e.cfg.FNB.COGSRatio, e.cfg.Generic.COGSRatio)

	switch {
	case ratioPct <= t.Excellent:
		return BandExcellent
	case ratioPct <= t.Good:
		return BandGood
	case ratioPct <= t.Fair:
		return BandFair
	}
	return BandPoor
}

func pickThresholds(vertical, generic *BandThresholds) *BandThresholds {
	if vertical != nil {
		return vertical
	}
	return generic
}
