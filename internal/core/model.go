package core

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Transaction is a single cash-book entry supplied by the caller.
// Amount is never negative once a record has passed the decode boundary.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
}

// Material is a raw-ingredient master record. WeightedAverageCost stays zero
// until a purchase has ever been averaged in; EffectiveUnitPrice treats zero
// as "not available" and falls back to UnitPrice.
type Material struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Stock               decimal.Decimal `json:"stock"`
	UnitPrice           decimal.Decimal `json:"unit_price"`
	WeightedAverageCost decimal.Decimal `json:"weighted_average_cost"`
}

// UsageRecord is one line of material consumption within a period.
// LineCost and UnitPrice are optional values precomputed by upstream views;
// when present they take precedence over resolver-based pricing (see
// ComputeCOGS for the full resolution order).
type UsageRecord struct {
	MaterialID string           `json:"material_id"`
	Quantity   decimal.Decimal  `json:"quantity"`
	LineCost   *decimal.Decimal `json:"hpp_value,omitempty"`
	UnitPrice  *decimal.Decimal `json:"effective_unit_price,omitempty"`
}

type CostStatus string

const (
	CostActive   CostStatus = "active"
	CostInactive CostStatus = "inactive"
)

// OperatingCost is a recurring monthly overhead item. Only entries with
// status 'active' contribute to operating expense totals.
type OperatingCost struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	MonthlyAmount decimal.Decimal `json:"monthly_amount"`
	Status        CostStatus      `json:"status"`
	Category      string          `json:"category"`
}

// clampAmount floors negative amounts to zero. These figures are managerial
// estimates, not ledger entries; the engine always produces a best-effort
// number instead of propagating bad input.
func clampAmount(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
