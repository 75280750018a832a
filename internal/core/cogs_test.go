package core_test

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/monifinebakery/BISMILLAH-sub011/internal/core"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func decPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func TestComputeCOGS_ResolverPricing(t *testing.T) {
	materials := core.MaterialIndex([]core.Material{
		{ID: "flour", Name: "Tepung terigu", UnitPrice: dec(1800), WeightedAverageCost: dec(2000)},
	})
	usage := []core.UsageRecord{
		{MaterialID: "flour", Quantity: dec(5)},
	}

	got := core.ComputeCOGS(usage, materials)
	if !got.Total.Equal(dec(10000)) {
		t.Errorf("Total = %s, want 10000 (5 x weighted average 2000)", got.Total)
	}
	if got.Estimated {
		t.Error("ledger-backed COGS must not be flagged as estimated")
	}
	if len(got.Breakdown) != 1 {
		t.Fatalf("breakdown has %d lines, want 1", len(got.Breakdown))
	}
	line := got.Breakdown[0]
	if !line.UnitPrice.Equal(dec(2000)) {
		t.Errorf("unit price used = %s, want 2000", line.UnitPrice)
	}
	if line.Name != "Tepung terigu" {
		t.Errorf("line name = %q, want material master name", line.Name)
	}
}

func TestComputeCOGS_PrecomputedLineCost(t *testing.T) {
	materials := core.MaterialIndex([]core.Material{
		{ID: "sugar", Name: "Gula pasir", UnitPrice: dec(1500)},
	})

	t.Run("trusted verbatim over resolver price", func(t *testing.T) {
		usage := []core.UsageRecord{
			{MaterialID: "sugar", Quantity: dec(4), LineCost: decPtr(9000)},
		}
		got := core.ComputeCOGS(usage, materials)
		if !got.Total.Equal(dec(9000)) {
			t.Errorf("Total = %s, want the precomputed 9000, not 4 x 1500", got.Total)
		}
		if !got.Breakdown[0].UnitPrice.Equal(dec(2250)) {
			t.Errorf("display unit price = %s, want back-derived 2250", got.Breakdown[0].UnitPrice)
		}
	})

	t.Run("zero quantity shows the resolver price", func(t *testing.T) {
		usage := []core.UsageRecord{
			{MaterialID: "sugar", Quantity: dec(0), LineCost: decPtr(9000)},
		}
		got := core.ComputeCOGS(usage, materials)
		if !got.Total.Equal(dec(9000)) {
			t.Errorf("Total = %s, want 9000", got.Total)
		}
		if !got.Breakdown[0].UnitPrice.Equal(dec(1500)) {
			t.Errorf("display unit price = %s, want resolver price 1500", got.Breakdown[0].UnitPrice)
		}
	})
}

func TestComputeCOGS_PrecomputedUnitPrice(t *testing.T) {
	materials := core.MaterialIndex([]core.Material{
		{ID: "butter", Name: "Butter", UnitPrice: dec(25000), WeightedAverageCost: dec(24000)},
	})
	usage := []core.UsageRecord{
		{MaterialID: "butter", Quantity: dec(2), UnitPrice: decPtr(23000)},
	}

	got := core.ComputeCOGS(usage, materials)
	if !got.Total.Equal(dec(46000)) {
		t.Errorf("Total = %s, want 46000 (precomputed price beats resolver)", got.Total)
	}
}

func TestComputeCOGS_DanglingMaterialReference(t *testing.T) {
	materials := core.MaterialIndex([]core.Material{
		{ID: "flour", Name: "Tepung terigu", UnitPrice: dec(1800)},
	})
	usage := []core.UsageRecord{
		{MaterialID: "flour", Quantity: dec(2)},
		{MaterialID: "deleted-material", Quantity: dec(100)},
	}

	got := core.ComputeCOGS(usage, materials)
	if !got.Total.Equal(dec(3600)) {
		t.Errorf("Total = %s, want 3600; dangling reference must contribute nothing", got.Total)
	}
	if len(got.Breakdown) != 1 {
		t.Errorf("breakdown has %d lines, want 1", len(got.Breakdown))
	}
}

func TestComputeCOGS_RoundsToWholeCurrency(t *testing.T) {
	materials := core.MaterialIndex([]core.Material{
		{ID: "choc", Name: "Coklat", UnitPrice: decimal.NewFromFloat(1666.5)},
	})
	usage := []core.UsageRecord{
		{MaterialID: "choc", Quantity: dec(3)},
	}

	got := core.ComputeCOGS(usage, materials)
	if !got.Total.Equal(dec(5000)) {
		t.Errorf("Total = %s, want 5000 (4999.5 rounded)", got.Total)
	}
}

func TestComputeCOGS_Deterministic(t *testing.T) {
	materials := core.MaterialIndex([]core.Material{
		{ID: "flour", Name: "Tepung terigu", UnitPrice: dec(1800), WeightedAverageCost: dec(2000)},
		{ID: "sugar", Name: "Gula pasir", UnitPrice: dec(1500)},
	})
	usage := []core.UsageRecord{
		{MaterialID: "flour", Quantity: dec(5)},
		{MaterialID: "sugar", Quantity: dec(3), LineCost: decPtr(4500)},
	}

	first := core.ComputeCOGS(usage, materials)
	second := core.ComputeCOGS(usage, materials)
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs must produce identical summaries")
	}
}

func TestEstimateCOGS(t *testing.T) {
	engine := core.NewEngine(core.DefaultConfig())
	materials := []core.Material{
		{ID: "flour", Name: "Tepung terigu", Stock: dec(100), WeightedAverageCost: dec(2000)},
		{ID: "empty", Name: "Kemasan box", Stock: dec(0), UnitPrice: dec(500)},
	}

	got := engine.EstimateCOGS(materials)
	if !got.Estimated {
		t.Error("stock-based estimate must be flagged Estimated")
	}
	if !got.Total.Equal(dec(20000)) {
		t.Errorf("Total = %s, want 20000 (100 x 10%% x 2000)", got.Total)
	}
	if len(got.Breakdown) != 1 {
		t.Errorf("breakdown has %d lines, want 1; zero-cost materials are left out", len(got.Breakdown))
	}
}
