package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/monifinebakery/BISMILLAH-sub011/internal/app"
	"github.com/monifinebakery/BISMILLAH-sub011/internal/config"
	"github.com/monifinebakery/BISMILLAH-sub011/internal/core"
	"github.com/monifinebakery/BISMILLAH-sub011/internal/db"
	"github.com/monifinebakery/BISMILLAH-sub011/internal/observability"
	"github.com/monifinebakery/BISMILLAH-sub011/internal/store"
)

func main() {
	_ = godotenv.Load()

	logger := observability.NewLogger(os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	cfg, err := config.Load(os.Getenv("ANALYSIS_CONFIG"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	engine := core.NewEngine(cfg)

	if len(os.Args) < 2 {
		usage()
	}

	ctx := context.Background()
	switch os.Args[1] {
	case "analyze":
		period := "month"
		if len(os.Args) > 2 {
			period = os.Args[2]
		}
		svc := newDBService(ctx, engine, logger)
		report, err := svc.AnalyzeProfitability(ctx, period)
		if err != nil {
			log.Fatalf("Analysis failed: %v", err)
		}
		printJSON(report)

	case "compare":
		if len(os.Args) < 3 {
			log.Fatal("Usage: app compare YYYY-MM")
		}
		svc := newDBService(ctx, engine, logger)
		result, err := svc.CompareMonths(ctx, os.Args[2])
		if err != nil {
			log.Fatalf("Comparison failed: %v", err)
		}
		printJSON(result)

	case "insights":
		period := "all"
		if len(os.Args) > 2 {
			period = os.Args[2]
		}
		payload := readStdin()
		svc := app.NewAnalysisService(nil, engine, logger)
		report, err := svc.AnalyzePayload(ctx, payload, period)
		if err != nil {
			log.Fatalf("Analysis failed: %v", err)
		}
		printJSON(report)

	case "margins":
		var in struct {
			Revenue decimal.Decimal `json:"revenue"`
			COGS    decimal.Decimal `json:"cogs"`
			Opex    decimal.Decimal `json:"opex"`
		}
		if err := json.NewDecoder(os.Stdin).Decode(&in); err != nil {
			log.Fatalf("Invalid JSON: %v", err)
		}
		margins := core.ComputeMargins(in.Revenue, in.COGS, in.Opex)
		printJSON(struct {
			Margins core.MarginResult  `json:"margins"`
			Quality core.QualityReport `json:"quality"`
		}{
			Margins: margins,
			Quality: engine.AssessQuality(margins.Revenue, margins.COGS, margins.Opex),
		})

	case "cogs":
		p := core.DecodeAnalysisPayload(readStdin(), logger)
		var cost core.CostSummary
		if len(p.Usage) > 0 {
			cost = core.ComputeCOGS(p.Usage, core.MaterialIndex(p.Materials))
		} else {
			cost = engine.EstimateCOGS(p.Materials)
		}
		printJSON(cost)

	case "breakeven":
		var in struct {
			FixedCosts          decimal.Decimal `json:"fixed_costs"`
			VariableCostRatePct float64         `json:"variable_cost_rate_pct"`
			TargetProfit        decimal.Decimal `json:"target_profit"`
		}
		if err := json.NewDecoder(os.Stdin).Decode(&in); err != nil {
			log.Fatalf("Invalid JSON: %v", err)
		}
		printJSON(core.BreakEven(in.FixedCosts, in.VariableCostRatePct, in.TargetProfit))

	default:
		usage()
	}
}

func newDBService(ctx context.Context, engine *core.Engine, logger *zap.Logger) app.AnalysisService {
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	return app.NewAnalysisService(store.NewPostgresStore(pool), engine, logger)
}

func readStdin() []byte {
	payload, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("Failed to read stdin: %v", err)
	}
	return payload
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: app <command>

Commands:
  analyze [period]    full profitability report from the database
                      (period: today, week, month, year, YYYY-MM, all)
  compare YYYY-MM     month-over-month comparison from the database
  insights [period]   full report from a JSON payload on stdin
  margins             margin and quality figures from {revenue, cogs, opex} on stdin
  cogs                COGS breakdown from a JSON payload on stdin
  breakeven           break-even revenue from {fixed_costs, variable_cost_rate_pct, target_profit} on stdin`)
	os.Exit(1)
}
