package core_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/monifinebakery/BISMILLAH-sub011/internal/core"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestComputeMargins(t *testing.T) {
	got := core.ComputeMargins(dec(10_000_000), dec(4_500_000), dec(1_500_000))

	if !got.GrossProfit.Equal(dec(5_500_000)) {
		t.Errorf("GrossProfit = %s, want 5500000", got.GrossProfit)
	}
	if !got.NetProfit.Equal(dec(4_000_000)) {
		t.Errorf("NetProfit = %s, want 4000000", got.NetProfit)
	}
	if !almostEqual(got.GrossMarginPct, 55.0) {
		t.Errorf("GrossMarginPct = %v, want 55", got.GrossMarginPct)
	}
	if !almostEqual(got.NetMarginPct, 40.0) {
		t.Errorf("NetMarginPct = %v, want 40", got.NetMarginPct)
	}
	if !almostEqual(got.COGSRatioPct, 45.0) {
		t.Errorf("COGSRatioPct = %v, want 45", got.COGSRatioPct)
	}
	if !almostEqual(got.OpexRatioPct, 15.0) {
		t.Errorf("OpexRatioPct = %v, want 15", got.OpexRatioPct)
	}
	if !almostEqual(got.TotalCostRatioPct, 60.0) {
		t.Errorf("TotalCostRatioPct = %v, want 60", got.TotalCostRatioPct)
	}
}

func TestComputeMargins_ZeroRevenue(t *testing.T) {
	got := core.ComputeMargins(dec(0), dec(500_000), dec(300_000))

	for name, pct := range map[string]float64{
		"GrossMarginPct":    got.GrossMarginPct,
		"NetMarginPct":      got.NetMarginPct,
		"COGSRatioPct":      got.COGSRatioPct,
		"OpexRatioPct":      got.OpexRatioPct,
		"TotalCostRatioPct": got.TotalCostRatioPct,
	} {
		if pct != 0 {
			t.Errorf("%s = %v, want 0 when revenue is zero", name, pct)
		}
	}
	if !got.NetProfit.Equal(dec(-800_000)) {
		t.Errorf("NetProfit = %s, want -800000 (absolute figures still computed)", got.NetProfit)
	}
}

func TestComputeMargins_ClampsNegativeInputs(t *testing.T) {
	got := core.ComputeMargins(dec(-1000), dec(-500), dec(-200))
	if !got.Revenue.IsZero() || !got.COGS.IsZero() || !got.Opex.IsZero() {
		t.Errorf("negative inputs must be floored: got revenue=%s cogs=%s opex=%s",
			got.Revenue, got.COGS, got.Opex)
	}
}

func TestBreakEven(t *testing.T) {
	t.Run("40 percent variable cost rate", func(t *testing.T) {
		got := core.BreakEven(dec(1_000_000), 40, dec(0))
		if got.Invalid {
			t.Fatal("unexpected Invalid result")
		}
		if !got.BreakEvenRevenue.Equal(dec(1_666_667)) {
			t.Errorf("BreakEvenRevenue = %s, want 1666667", got.BreakEvenRevenue)
		}
	})

	t.Run("with target profit", func(t *testing.T) {
		got := core.BreakEven(dec(1_000_000), 40, dec(500_000))
		if !got.TargetRevenue.Equal(dec(2_500_000)) {
			t.Errorf("TargetRevenue = %s, want 2500000", got.TargetRevenue)
		}
	})

	t.Run("rate at or above 100 percent is invalid", func(t *testing.T) {
		for _, rate := range []float64{100, 120} {
			got := core.BreakEven(dec(1_000_000), rate, dec(0))
			if !got.Invalid {
				t.Errorf("rate %v: want Invalid", rate)
			}
		}
	})

	t.Run("negative rate treated as zero", func(t *testing.T) {
		got := core.BreakEven(dec(1_000_000), -10, dec(0))
		if !got.BreakEvenRevenue.Equal(dec(1_000_000)) {
			t.Errorf("BreakEvenRevenue = %s, want 1000000", got.BreakEvenRevenue)
		}
	})
}

func TestComparePeriods(t *testing.T) {
	cur := core.PeriodSnapshot{Revenue: dec(11_000_000), COGS: dec(4_000_000), Opex: dec(1_500_000)}
	prev := core.PeriodSnapshot{Revenue: dec(10_000_000), COGS: dec(4_500_000), Opex: dec(1_500_000)}

	got := core.ComparePeriods(cur, prev)

	if got.Revenue.Trend != core.TrendUp {
		t.Errorf("revenue trend = %s, want up", got.Revenue.Trend)
	}
	if !almostEqual(got.Revenue.ChangePct, 10.0) {
		t.Errorf("revenue change = %v, want 10", got.Revenue.ChangePct)
	}
	if got.COGS.Trend != core.TrendDown {
		t.Errorf("cogs trend = %s, want down", got.COGS.Trend)
	}
	if got.Opex.Trend != core.TrendFlat {
		t.Errorf("opex trend = %s, want flat", got.Opex.Trend)
	}
	if got.GrossMargin.Trend != core.TrendUp {
		t.Errorf("gross margin trend = %s, want up (55%% -> ~63.6%%)", got.GrossMargin.Trend)
	}
}

func TestComparePeriods_ZeroPrevious(t *testing.T) {
	got := core.ComparePeriods(
		core.PeriodSnapshot{Revenue: dec(5_000_000)},
		core.PeriodSnapshot{},
	)
	if got.Revenue.ChangePct != 0 {
		t.Errorf("ChangePct = %v, want 0 when the previous period is empty", got.Revenue.ChangePct)
	}
	if got.Revenue.Trend != core.TrendFlat {
		t.Errorf("trend = %s, want flat when no baseline exists", got.Revenue.Trend)
	}
}

func TestComparePeriods_DeadBand(t *testing.T) {
	got := core.ComparePeriods(
		core.PeriodSnapshot{Revenue: decimal.NewFromFloat(100.5)},
		core.PeriodSnapshot{Revenue: dec(100)},
	)
	if got.Revenue.Trend != core.TrendFlat {
		t.Errorf("trend = %s, want flat inside the 1%% dead band", got.Revenue.Trend)
	}
}

func TestSumIncome(t *testing.T) {
	txs := []core.Transaction{
		{Type: core.TypeIncome, Amount: dec(400)},
		{Type: core.TypeExpense, Amount: dec(999)},
		{Type: core.TypeIncome, Amount: dec(600)},
		{Type: core.TypeIncome, Amount: dec(-50)},
	}
	if got := core.SumIncome(txs); !got.Equal(dec(1000)) {
		t.Errorf("SumIncome() = %s, want 1000", got)
	}
}

func TestSumOperatingCosts(t *testing.T) {
	costs := []core.OperatingCost{
		{Name: "Sewa tempat", MonthlyAmount: dec(2_000_000), Status: core.CostActive},
		{Name: "Langganan lama", MonthlyAmount: dec(500_000), Status: core.CostInactive},
		{Name: "Listrik & air", MonthlyAmount: dec(750_000), Status: core.CostActive},
	}
	if got := core.SumOperatingCosts(costs); !got.Equal(dec(2_750_000)) {
		t.Errorf("SumOperatingCosts() = %s, want 2750000 (inactive excluded)", got)
	}
}
