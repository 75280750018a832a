package core

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// This file is the decode boundary for caller-supplied JSON. Payloads arrive
// from several upstream exports that disagree on field names (English and
// Indonesian aliases, camelCase and snake_case) and on value types (numbers
// as floats or as strings). Decoding is lenient per field but strict per
// payload: a record missing a usable value gets a zero value, a record with
// an unparseable date is dropped, and a structurally malformed payload is
// discarded entirely with a warning.

// AnalysisPayload is a full analysis request decoded from loose JSON.
type AnalysisPayload struct {
	Transactions   []Transaction
	Materials      []Material
	Usage          []UsageRecord
	OperatingCosts []OperatingCost
}

// DecodeAnalysisPayload decodes a combined payload. Each section accepts its
// English name or the upstream Indonesian alias; absent sections decode to
// nil slices.
func DecodeAnalysisPayload(raw []byte, logger *zap.Logger) AnalysisPayload {
	var sections map[string]json.RawMessage
	if err := json.Unmarshal(raw, &sections); err != nil {
		logger.Warn("discarding malformed analysis payload", zap.Error(err))
		return AnalysisPayload{}
	}

	pick := func(keys ...string) json.RawMessage {
		for _, k := range keys {
			if v, ok := sections[k]; ok {
				return v
			}
		}
		return nil
	}

	var p AnalysisPayload
	if raw := pick("transactions", "transaksi"); raw != nil {
		p.Transactions = DecodeTransactions(raw, logger)
	}
	if raw := pick("materials", "bahan_baku"); raw != nil {
		p.Materials = DecodeMaterials(raw, logger)
	}
	if raw := pick("usage", "pemakaian"); raw != nil {
		p.Usage = DecodeUsageRecords(raw, logger)
	}
	if raw := pick("operating_costs", "biaya_operasional"); raw != nil {
		p.OperatingCosts = DecodeOperatingCosts(raw, logger)
	}
	return p
}

// DecodeTransactions decodes a transaction array. Records without a parseable
// date are dropped; an unrecognized type is treated as an expense so a typo
// can never inflate revenue.
func DecodeTransactions(raw []byte, logger *zap.Logger) []Transaction {
	rows, ok := decodeRows(raw, "transaction", logger)
	if !ok {
		return nil
	}

	out := make([]Transaction, 0, len(rows))
	for _, row := range rows {
		date, ok := pickDate(row, "date", "tanggal", "transaction_date", "created_at")
		if !ok {
			logger.Debug("skipping transaction without parseable date",
				zap.String("id", pickString(row, "id", "transaction_id")))
			continue
		}
		tx := Transaction{
			ID:          pickString(row, "id", "transaction_id"),
			Type:        TypeExpense,
			Amount:      pickAmount(row, "amount", "total", "nominal"),
			Category:    pickString(row, "category", "kategori"),
			Description: pickString(row, "description", "deskripsi", "keterangan"),
			Date:        date,
		}
		if strings.EqualFold(pickString(row, "type", "jenis"), string(TypeIncome)) {
			tx.Type = TypeIncome
		}
		out = append(out, tx)
	}
	return out
}

// DecodeMaterials decodes a material master array.
func DecodeMaterials(raw []byte, logger *zap.Logger) []Material {
	rows, ok := decodeRows(raw, "material", logger)
	if !ok {
		return nil
	}

	out := make([]Material, 0, len(rows))
	for _, row := range rows {
		out = append(out, Material{
			ID:                  pickString(row, "id", "material_id", "bahan_baku_id"),
			Name:                pickString(row, "name", "nama", "nama_bahan"),
			Stock:               pickAmount(row, "stock", "stok"),
			UnitPrice:           pickAmount(row, "unit_price", "unitPrice", "harga_satuan", "harga"),
			WeightedAverageCost: pickAmount(row, "weighted_average_cost", "weightedAverageCost", "wac", "harga_rata_rata"),
		})
	}
	return out
}

// DecodeUsageRecords decodes a usage ledger array. The precomputed cost and
// price fields stay nil when absent so the aggregator can tell "not provided"
// from an explicit zero.
func DecodeUsageRecords(raw []byte, logger *zap.Logger) []UsageRecord {
	rows, ok := decodeRows(raw, "usage", logger)
	if !ok {
		return nil
	}

	out := make([]UsageRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, UsageRecord{
			MaterialID: pickString(row, "material_id", "materialId", "bahan_baku_id"),
			Quantity:   pickAmount(row, "quantity", "qty", "jumlah"),
			LineCost:   pickOptionalAmount(row, "hpp_value", "hppValue", "line_cost", "precomputedCost"),
			UnitPrice:  pickOptionalAmount(row, "effective_unit_price", "effectiveUnitPrice", "harga_efektif"),
		})
	}
	return out
}

// DecodeOperatingCosts decodes an operating cost array. A missing status
// means active; upstream only writes the column when a cost is switched off.
func DecodeOperatingCosts(raw []byte, logger *zap.Logger) []OperatingCost {
	rows, ok := decodeRows(raw, "operating cost", logger)
	if !ok {
		return nil
	}

	out := make([]OperatingCost, 0, len(rows))
	for _, row := range rows {
		c := OperatingCost{
			ID:            pickString(row, "id", "cost_id"),
			Name:          pickString(row, "name", "nama", "nama_biaya"),
			MonthlyAmount: pickAmount(row, "monthly_amount", "monthlyAmount", "jumlah_per_bulan", "amount"),
			Status:        CostActive,
			Category:      pickString(row, "category", "kategori"),
		}
		if strings.EqualFold(pickString(row, "status"), string(CostInactive)) {
			c.Status = CostInactive
		}
		out = append(out, c)
	}
	return out
}

// ── Decode helpers ────────────────────────────────────────────────────────

func decodeRows(raw []byte, kind string, logger *zap.Logger) ([]map[string]any, bool) {
	var rows []map[string]any
	if err := json.Unmarshal(raw, &rows); err != nil {
		logger.Warn("discarding malformed "+kind+" payload", zap.Error(err))
		return nil, false
	}
	return rows, true
}

func pickString(row map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := row[k].(string); ok {
			return s
		}
	}
	return ""
}

// pickAmount reads the first present amount field, clamped to non-negative.
func pickAmount(row map[string]any, keys ...string) decimal.Decimal {
	if d := pickOptionalAmount(row, keys...); d != nil {
		return *d
	}
	return decimal.Zero
}

// pickOptionalAmount distinguishes "field absent" (nil) from an explicit
// value. Unconvertible values count as absent.
func pickOptionalAmount(row map[string]any, keys ...string) *decimal.Decimal {
	for _, k := range keys {
		v, ok := row[k]
		if !ok || v == nil {
			continue
		}
		if d, ok := toDecimal(v); ok {
			d = clampAmount(d)
			return &d
		}
	}
	return nil
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), true
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	}
	return decimal.Zero, false
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// pickDate tries each key against the known layouts, then against numeric
// epochs (seconds, or milliseconds for values too large to be seconds).
func pickDate(row map[string]any, keys ...string) (time.Time, bool) {
	for _, k := range keys {
		switch v := row[k].(type) {
		case string:
			for _, layout := range dateLayouts {
				if t, err := time.ParseInLocation(layout, v, time.Local); err == nil {
					return t, true
				}
			}
		case float64:
			n := int64(v)
			if n > 1e12 {
				return time.UnixMilli(n), true
			}
			if n > 0 {
				return time.Unix(n, 0), true
			}
		}
	}
	return time.Time{}, false
}
