package store_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/monifinebakery/BISMILLAH-sub011/internal/store"
)

func setupTestDB(t *testing.T) *pgxpool.Pool {
	_ = godotenv.Load("../../.env")

	// Use a dedicated TEST database to avoid wiping the live app database.
	// Set TEST_DATABASE_URL in your .env or environment to run integration tests.
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set — skipping integration test to protect live database")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	// Clean and seed test DB
	_, err = pool.Exec(ctx, `
		TRUNCATE TABLE financial_transactions, materials, material_usage, operating_costs CASCADE;

		INSERT INTO financial_transactions (id, type, amount, category, description, transaction_date) VALUES
		('tx-1', 'income', 250000, 'Penjualan', 'Penjualan harian', '2024-05-10 09:30:00'),
		('tx-2', 'income', 180000, 'Penjualan', 'Penjualan harian', '2024-05-31 22:00:00'),
		('tx-3', 'expense', 90000, 'Bahan', 'Belanja pasar', '2024-06-01 08:00:00');

		INSERT INTO materials (id, name, stock, unit_price, weighted_average_cost) VALUES
		('m-flour', 'Tepung terigu', 100, 1800, 2000),
		('m-sugar', 'Gula pasir', 50, 1500, NULL);

		INSERT INTO material_usage (material_id, quantity, hpp_value, effective_unit_price, usage_date) VALUES
		('m-flour', 5, NULL, NULL, '2024-05-10'),
		('m-sugar', 3, 4500, NULL, '2024-05-20'),
		('m-flour', 2, NULL, 1900, '2024-06-02');

		INSERT INTO operating_costs (id, name, monthly_amount, status, category) VALUES
		('c-rent', 'Sewa tempat', 2000000, 'active', 'fixed'),
		('c-old', 'Langganan lama', 500000, 'inactive', 'fixed');
	`)
	if err != nil {
		t.Fatalf("Failed to seed test database: %v", err)
	}
	return pool
}

func TestPostgresStore_Transactions(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	st := store.NewPostgresStore(pool)

	txs, err := st.Transactions(context.Background())
	if err != nil {
		t.Fatalf("Transactions failed: %v", err)
	}
	if len(txs) != 3 {
		t.Fatalf("Expected 3 transactions, got %d", len(txs))
	}
	if txs[0].ID != "tx-1" || !txs[0].Amount.Equal(decimal.NewFromInt(250000)) {
		t.Errorf("First transaction: got %+v", txs[0])
	}
}

func TestPostgresStore_Materials_NullWAC(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	st := store.NewPostgresStore(pool)

	materials, err := st.Materials(context.Background())
	if err != nil {
		t.Fatalf("Materials failed: %v", err)
	}
	if len(materials) != 2 {
		t.Fatalf("Expected 2 materials, got %d", len(materials))
	}
	// Ordered by name: Gula pasir before Tepung terigu.
	if !materials[0].WeightedAverageCost.IsZero() {
		t.Errorf("NULL weighted_average_cost must scan as 0, got %s", materials[0].WeightedAverageCost)
	}
	if !materials[1].WeightedAverageCost.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("Tepung terigu WAC: got %s, want 2000", materials[1].WeightedAverageCost)
	}
}

func TestPostgresStore_MaterialUsage_Windowing(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	st := store.NewPostgresStore(pool)
	ctx := context.Background()

	t.Run("unbounded returns all", func(t *testing.T) {
		usage, err := st.MaterialUsage(ctx, time.Time{}, time.Time{})
		if err != nil {
			t.Fatalf("MaterialUsage failed: %v", err)
		}
		if len(usage) != 3 {
			t.Errorf("Expected 3 records, got %d", len(usage))
		}
	})

	t.Run("may window excludes june", func(t *testing.T) {
		from := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC)
		usage, err := st.MaterialUsage(ctx, from, to)
		if err != nil {
			t.Fatalf("MaterialUsage failed: %v", err)
		}
		if len(usage) != 2 {
			t.Fatalf("Expected 2 records in May, got %d", len(usage))
		}
		if usage[0].LineCost != nil {
			t.Error("NULL hpp_value must scan as nil")
		}
		if usage[1].LineCost == nil || !usage[1].LineCost.Equal(decimal.NewFromInt(4500)) {
			t.Errorf("hpp_value: got %v, want 4500", usage[1].LineCost)
		}
	})
}

func TestPostgresStore_ActiveOperatingCosts(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	st := store.NewPostgresStore(pool)

	costs, err := st.ActiveOperatingCosts(context.Background())
	if err != nil {
		t.Fatalf("ActiveOperatingCosts failed: %v", err)
	}
	if len(costs) != 1 {
		t.Fatalf("Expected 1 active cost, got %d", len(costs))
	}
	if costs[0].Name != "Sewa tempat" {
		t.Errorf("Active cost: got %q", costs[0].Name)
	}
}
