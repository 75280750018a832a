package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/monifinebakery/BISMILLAH-sub011/internal/core"
)

type postgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore wraps a pgx pool as a Store.
func NewPostgresStore(pool *pgxpool.Pool) Store {
	return &postgresStore{pool: pool}
}

func (s *postgresStore) Transactions(ctx context.Context) ([]core.Transaction, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, type, amount, COALESCE(category, ''), COALESCE(description, ''), transaction_date
		FROM financial_transactions
		ORDER BY transaction_date, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		var tx core.Transaction
		if err := rows.Scan(&tx.ID, &tx.Type, &tx.Amount, &tx.Category, &tx.Description, &tx.Date); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		out = append(out, tx)
	}
	return out, rows.Err()
}

func (s *postgresStore) Materials(ctx context.Context) ([]core.Material, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, stock, unit_price, COALESCE(weighted_average_cost, 0)
		FROM materials
		ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query materials: %w", err)
	}
	defer rows.Close()

	var out []core.Material
	for rows.Next() {
		var m core.Material
		if err := rows.Scan(&m.ID, &m.Name, &m.Stock, &m.UnitPrice, &m.WeightedAverageCost); err != nil {
			return nil, fmt.Errorf("failed to scan material: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *postgresStore) MaterialUsage(ctx context.Context, from, to time.Time) ([]core.UsageRecord, error) {
	query := `
		SELECT material_id, quantity, hpp_value, effective_unit_price
		FROM material_usage
		WHERE 1=1`
	args := []any{}
	if !from.IsZero() {
		args = append(args, from)
		query += fmt.Sprintf(" AND usage_date >= $%d::date", len(args))
	}
	if !to.IsZero() {
		args = append(args, to)
		query += fmt.Sprintf(" AND usage_date <= $%d::date", len(args))
	}
	query += " ORDER BY usage_date, material_id"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query material usage: %w", err)
	}
	defer rows.Close()

	var out []core.UsageRecord
	for rows.Next() {
		var u core.UsageRecord
		var lineCost, unitPrice *decimal.Decimal
		if err := rows.Scan(&u.MaterialID, &u.Quantity, &lineCost, &unitPrice); err != nil {
			return nil, fmt.Errorf("failed to scan usage record: %w", err)
		}
		u.LineCost = lineCost
		u.UnitPrice = unitPrice
		out = append(out, u)
	}
	return out, rows.Err()
}

func (s *postgresStore) ActiveOperatingCosts(ctx context.Context) ([]core.OperatingCost, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, monthly_amount, status, COALESCE(category, '')
		FROM operating_costs
		WHERE status = 'active'
		ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query operating costs: %w", err)
	}
	defer rows.Close()

	var out []core.OperatingCost
	for rows.Next() {
		var c core.OperatingCost
		if err := rows.Scan(&c.ID, &c.Name, &c.MonthlyAmount, &c.Status, &c.Category); err != nil {
			return nil, fmt.Errorf("failed to scan operating cost: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
