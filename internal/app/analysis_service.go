package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/monifinebakery/BISMILLAH-sub011/internal/core"
	"github.com/monifinebakery/BISMILLAH-sub011/internal/store"
)

type analysisService struct {
	store  store.Store
	engine *core.Engine
	logger *zap.Logger
	now    func() time.Time
}

// NewAnalysisService constructs an analysisService that satisfies AnalysisService.
func NewAnalysisService(st store.Store, engine *core.Engine, logger *zap.Logger) AnalysisService {
	return &analysisService{
		store:  st,
		engine: engine,
		logger: logger,
		now:    time.Now,
	}
}

// Inputs is one period's worth of raw data, however it was obtained.
type Inputs struct {
	Transactions   []core.Transaction
	Materials      []core.Material
	Usage          []core.UsageRecord
	OperatingCosts []core.OperatingCost
}

// Analyze runs the calculation pipeline over in-memory inputs. It is a pure
// function of its arguments so both the database-backed path and the payload
// path produce identical reports from identical data.
func Analyze(engine *core.Engine, in Inputs, period string, now time.Time) (*ProfitReport, error) {
	txs, err := core.FilterByPeriod(in.Transactions, period, now)
	if err != nil {
		return nil, fmt.Errorf("failed to filter transactions: %w", err)
	}
	revenue := core.SumIncome(txs)

	var cost core.CostSummary
	if len(in.Usage) > 0 {
		cost = core.ComputeCOGS(in.Usage, core.MaterialIndex(in.Materials))
	} else {
		cost = engine.EstimateCOGS(in.Materials)
	}

	opex := core.SumOperatingCosts(in.OperatingCosts)
	margins := core.ComputeMargins(revenue, cost.Total, opex)
	insights := engine.GenerateInsights(core.InsightInput{
		Period:    period,
		Revenue:   margins.Revenue,
		COGS:      margins.COGS,
		Margins:   margins,
		Breakdown: cost.Breakdown,
		Now:       now,
	})

	return &ProfitReport{
		Period:           period,
		TransactionCount: len(txs),
		Revenue:          margins.Revenue,
		Opex:             margins.Opex,
		Cost:             cost,
		Margins:          margins,
		Ratings: Ratings{
			GrossMargin:    engine.RateMargin(margins.GrossMarginPct, core.MarginGross),
			NetMargin:      engine.RateMargin(margins.NetMarginPct, core.MarginNet),
			COGSEfficiency: engine.RateCOGSEfficiency(margins.COGSRatioPct),
		},
		Quality:  engine.AssessQuality(margins.Revenue, margins.COGS, margins.Opex),
		Insights: insights,
	}, nil
}

// AnalyzeProfitability runs the full pipeline over stored data for a named period.
func (s *analysisService) AnalyzeProfitability(ctx context.Context, period string) (*ProfitReport, error) {
	now := s.now()
	in, err := s.loadInputs(ctx, period, now)
	if err != nil {
		return nil, err
	}

	report, err := Analyze(s.engine, in, period, now)
	if err != nil {
		return nil, err
	}

	s.logger.Info("profitability analysis complete",
		zap.String("period", period),
		zap.Int("transactions", report.TransactionCount),
		zap.String("revenue", report.Revenue.String()),
		zap.String("cogs", report.Cost.Total.String()),
		zap.Bool("cogs_estimated", report.Cost.Estimated),
		zap.Int("quality_score", report.Quality.Score))
	return report, nil
}

// AnalyzePayload runs the pipeline over a caller-supplied JSON payload.
func (s *analysisService) AnalyzePayload(ctx context.Context, payload []byte, period string) (*ProfitReport, error) {
	p := core.DecodeAnalysisPayload(payload, s.logger)
	in := Inputs{
		Transactions:   p.Transactions,
		Materials:      p.Materials,
		Usage:          p.Usage,
		OperatingCosts: p.OperatingCosts,
	}
	return Analyze(s.engine, in, period, s.now())
}

// CompareMonths compares the given month against the one before it.
func (s *analysisService) CompareMonths(ctx context.Context, month string) (*ComparisonResult, error) {
	first, err := time.ParseInLocation("2006-01", month, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid month %q: expected YYYY-MM", month)
	}
	prevMonth := first.AddDate(0, -1, 0).Format("2006-01")

	txs, err := s.store.Transactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	materials, err := s.store.Materials(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load materials: %w", err)
	}
	costs, err := s.store.ActiveOperatingCosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load operating costs: %w", err)
	}

	now := s.now()
	current, err := s.monthSnapshot(ctx, txs, materials, costs, month, now)
	if err != nil {
		return nil, err
	}
	previous, err := s.monthSnapshot(ctx, txs, materials, costs, prevMonth, now)
	if err != nil {
		return nil, err
	}

	s.logger.Info("month comparison complete",
		zap.String("current", month),
		zap.String("previous", prevMonth))
	return &ComparisonResult{
		CurrentPeriod:  month,
		PreviousPeriod: prevMonth,
		Comparison:     core.ComparePeriods(current, previous),
	}, nil
}

func (s *analysisService) loadInputs(ctx context.Context, period string, now time.Time) (Inputs, error) {
	var in Inputs
	var err error

	if in.Transactions, err = s.store.Transactions(ctx); err != nil {
		return in, fmt.Errorf("failed to load transactions: %w", err)
	}
	if in.Materials, err = s.store.Materials(ctx); err != nil {
		return in, fmt.Errorf("failed to load materials: %w", err)
	}

	// Usage is windowed at the store so the COGS figure matches the period;
	// an unresolvable token means no window at all.
	from, to, _ := core.ResolvePeriod(period, now)
	if in.Usage, err = s.store.MaterialUsage(ctx, from, to); err != nil {
		return in, fmt.Errorf("failed to load material usage: %w", err)
	}
	if in.OperatingCosts, err = s.store.ActiveOperatingCosts(ctx); err != nil {
		return in, fmt.Errorf("failed to load operating costs: %w", err)
	}
	return in, nil
}

// monthSnapshot reduces one month to the three totals ComparePeriods needs.
func (s *analysisService) monthSnapshot(ctx context.Context, txs []core.Transaction, materials []core.Material, costs []core.OperatingCost, month string, now time.Time) (core.PeriodSnapshot, error) {
	from, to, ok := core.ResolvePeriod(month, now)
	if !ok {
		return core.PeriodSnapshot{}, fmt.Errorf("invalid month %q: expected YYYY-MM", month)
	}

	monthTxs, err := core.FilterByDateRange(txs, from, to)
	if err != nil {
		return core.PeriodSnapshot{}, fmt.Errorf("failed to filter %s transactions: %w", month, err)
	}

	usage, err := s.store.MaterialUsage(ctx, from, to)
	if err != nil {
		return core.PeriodSnapshot{}, fmt.Errorf("failed to load %s material usage: %w", month, err)
	}

	var cost core.CostSummary
	if len(usage) > 0 {
		cost = core.ComputeCOGS(usage, core.MaterialIndex(materials))
	} else {
		cost = s.engine.EstimateCOGS(materials)
	}

	return core.PeriodSnapshot{
		Revenue: core.SumIncome(monthTxs),
		COGS:    cost.Total,
		Opex:    core.SumOperatingCosts(costs),
	}, nil
}
