package app

import "context"

// AnalysisService is the single interface all entry points (CLI, future web)
// call. It decouples presentation from the calculation pipeline.
// Implementations must contain no fmt.Println, no ANSI codes, and no display
// logic of any kind; they return raw numbers only.
type AnalysisService interface {
	// AnalyzeProfitability runs the full pipeline over stored data for a named
	// period ("today", "week", "month", "year", "YYYY-MM" or "all").
	AnalyzeProfitability(ctx context.Context, period string) (*ProfitReport, error)

	// AnalyzePayload runs the same pipeline over a caller-supplied JSON
	// payload instead of the database.
	AnalyzePayload(ctx context.Context, payload []byte, period string) (*ProfitReport, error)

	// CompareMonths compares the given month ("YYYY-MM") against the month
	// before it.
	CompareMonths(ctx context.Context, month string) (*ComparisonResult, error)
}
