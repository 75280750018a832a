package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/monifinebakery/BISMILLAH-sub011/internal/core"
)

// fileConfig mirrors core.Config for YAML. Pointer fields distinguish "not in
// the file" from an explicit zero, so a partial file only overrides what it
// names.
type fileConfig struct {
	FNB                   *tableConfig `yaml:"fnb"`
	Generic               *tableConfig `yaml:"generic"`
	HighCOGSRatioPct      *float64     `yaml:"high_cogs_ratio_pct"`
	LowRevenueBenchmark   *float64     `yaml:"low_revenue_benchmark"`
	OpexWarningRatioPct   *float64     `yaml:"opex_warning_ratio_pct"`
	ExcellentNetMarginPct *float64     `yaml:"excellent_net_margin_pct"`
	ExpensiveLineSharePct *float64     `yaml:"expensive_line_share_pct"`
	DefaultUsageRate      *float64     `yaml:"default_usage_rate"`
	HighSeasonMonths      *[]int       `yaml:"high_season_months"`
}

type tableConfig struct {
	GrossMargin *bandConfig `yaml:"gross_margin"`
	NetMargin   *bandConfig `yaml:"net_margin"`
	COGSRatio   *bandConfig `yaml:"cogs_ratio"`
}

type bandConfig struct {
	Excellent float64 `yaml:"excellent"`
	Good      float64 `yaml:"good"`
	Fair      float64 `yaml:"fair"`
}

// Load reads an engine configuration from a YAML file, overlaying it on the
// shipped defaults. An empty path returns the defaults untouched.
func Load(path string) (core.Config, error) {
	cfg := core.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	applyTable(&cfg.FNB, fc.FNB)
	applyTable(&cfg.Generic, fc.Generic)
	if fc.HighCOGSRatioPct != nil {
		cfg.HighCOGSRatioPct = *fc.HighCOGSRatioPct
	}
	if fc.LowRevenueBenchmark != nil {
		cfg.LowRevenueBenchmark = decimal.NewFromFloat(*fc.LowRevenueBenchmark)
	}
	if fc.OpexWarningRatioPct != nil {
		cfg.OpexWarningRatioPct = *fc.OpexWarningRatioPct
	}
	if fc.ExcellentNetMarginPct != nil {
		cfg.ExcellentNetMarginPct = *fc.ExcellentNetMarginPct
	}
	if fc.ExpensiveLineSharePct != nil {
		cfg.ExpensiveLineSharePct = *fc.ExpensiveLineSharePct
	}
	if fc.DefaultUsageRate != nil {
		cfg.DefaultUsageRate = decimal.NewFromFloat(*fc.DefaultUsageRate)
	}
	if fc.HighSeasonMonths != nil {
		months := make([]time.Month, 0, len(*fc.HighSeasonMonths))
		for _, m := range *fc.HighSeasonMonths {
			if m < 1 || m > 12 {
				return cfg, fmt.Errorf("invalid high season month %d in %s", m, path)
			}
			months = append(months, time.Month(m))
		}
		cfg.HighSeasonMonths = months
	}
	return cfg, nil
}

func applyTable(dst *core.BenchmarkTable, src *tableConfig) {
	if src == nil {
		return
	}
	if src.GrossMargin != nil {
		dst.GrossMargin = &core.BandThresholds{
			Excellent: src.GrossMargin.Excellent,
			Good:      src.GrossMargin.Good,
			Fair:      src.GrossMargin.Fair,
		}
	}
	if src.NetMargin != nil {
		dst.NetMargin = &core.BandThresholds{
			Excellent: src.NetMargin.Excellent,
			Good:      src.NetMargin.Good,
			Fair:      src.NetMargin.Fair,
		}
	}
	if src.COGSRatio != nil {
		dst.COGSRatio = &core.BandThresholds{
			Excellent: src.COGSRatio.Excellent,
			Good:      src.COGSRatio.Good,
			Fair:      src.COGSRatio.Fair,
		}
	}
}
