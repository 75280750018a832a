// seed is a one-shot tool to load demo data for local development.
// It wipes the analysis tables first, so never point it at a live database.
//
// Usage: go run ./cmd/seed
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/monifinebakery/BISMILLAH-sub011/internal/db"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer pool.Close()

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatalf("Failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	log.Println("Clearing analysis tables...")
	_, err = tx.Exec(ctx, `
		TRUNCATE TABLE financial_transactions, material_usage, materials, operating_costs CASCADE;
	`)
	if err != nil {
		log.Fatalf("Failed to clear tables: %v", err)
	}

	log.Println("Seeding materials...")
	_, err = tx.Exec(ctx, `
		INSERT INTO materials (id, name, stock, unit_price, weighted_average_cost) VALUES
		('m-flour',   'Tepung terigu', 100, 12000, 11500),
		('m-sugar',   'Gula pasir',     60, 15000, NULL),
		('m-butter',  'Butter',         20, 95000, 92000),
		('m-choc',    'Coklat blok',    15, 68000, 70000),
		('m-box',     'Kemasan box',   200,  2500, NULL);
	`)
	if err != nil {
		log.Fatalf("Failed to seed materials: %v", err)
	}

	log.Println("Seeding operating costs...")
	_, err = tx.Exec(ctx, `
		INSERT INTO operating_costs (id, name, monthly_amount, status, category) VALUES
		('c-rent',     'Sewa tempat',     2500000, 'active',   'fixed'),
		('c-wages',    'Gaji karyawan',   4000000, 'active',   'fixed'),
		('c-power',    'Listrik & air',    900000, 'active',   'variable'),
		('c-internet', 'Internet',         350000, 'active',   'fixed'),
		('c-old-ads',  'Iklan lama',       500000, 'inactive', 'variable');
	`)
	if err != nil {
		log.Fatalf("Failed to seed operating costs: %v", err)
	}

	log.Println("Seeding transactions...")
	_, err = tx.Exec(ctx, `
		INSERT INTO financial_transactions (id, type, amount, category, description, transaction_date) VALUES
		('tx-001', 'income',  3200000, 'Penjualan', 'Penjualan toko',        now() - interval '20 days'),
		('tx-002', 'income',  2800000, 'Penjualan', 'Pesanan online',        now() - interval '14 days'),
		('tx-003', 'income',  4100000, 'Penjualan', 'Pesanan katering',      now() - interval '6 days'),
		('tx-004', 'expense', 1500000, 'Bahan',     'Belanja bahan mingguan', now() - interval '18 days'),
		('tx-005', 'expense',  650000, 'Bahan',     'Belanja pasar',          now() - interval '4 days'),
		('tx-006', 'income',  3500000, 'Penjualan', 'Penjualan toko',        now() - interval '45 days'),
		('tx-007', 'income',  2100000, 'Penjualan', 'Pesanan online',        now() - interval '40 days');
	`)
	if err != nil {
		log.Fatalf("Failed to seed transactions: %v", err)
	}

	log.Println("Seeding material usage...")
	_, err = tx.Exec(ctx, `
		INSERT INTO material_usage (material_id, quantity, hpp_value, effective_unit_price, usage_date) VALUES
		('m-flour',  25, NULL,   NULL,  now() - interval '15 days'),
		('m-sugar',  10, 150000, NULL,  now() - interval '15 days'),
		('m-butter',  4, NULL,   93000, now() - interval '10 days'),
		('m-choc',    3, NULL,   NULL,  now() - interval '8 days'),
		('m-box',    80, NULL,   NULL,  now() - interval '5 days'),
		('m-flour',  30, NULL,   NULL,  now() - interval '42 days'),
		('m-sugar',  12, NULL,   NULL,  now() - interval '42 days');
	`)
	if err != nil {
		log.Fatalf("Failed to seed material usage: %v", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Fatalf("Failed to commit: %v", err)
	}

	log.Println("Seed data loaded successfully.")
}
