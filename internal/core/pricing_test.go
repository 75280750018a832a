package core_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/monifinebakery/BISMILLAH-sub011/internal/core"
)

func TestEffectiveUnitPrice(t *testing.T) {
	tests := []struct {
		name string
		wac  int64
		unit int64
		want int64
	}{
		{name: "weighted average cost wins over base price", wac: 2000, unit: 1800, want: 2000},
		{name: "falls back to base price when no purchases averaged yet", wac: 0, unit: 1800, want: 1800},
		{name: "zero when neither price is known", wac: 0, unit: 0, want: 0},
		{name: "negative average is ignored", wac: -500, unit: 1800, want: 1800},
		{name: "negative base price yields zero", wac: 0, unit: -100, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := core.Material{
				ID:                  "m1",
				Name:                "Tepung terigu",
				UnitPrice:           decimal.NewFromInt(tt.unit),
				WeightedAverageCost: decimal.NewFromInt(tt.wac),
			}
			got := core.EffectiveUnitPrice(m)
			if !got.Equal(decimal.NewFromInt(tt.want)) {
				t.Errorf("EffectiveUnitPrice() = %s, want %d", got, tt.want)
			}
		})
	}
}
