package store

import (
	"context"
	"time"

	"github.com/monifinebakery/BISMILLAH-sub011/internal/core"
)

// Store is the read surface the analysis service pulls its inputs from.
// It decouples the calculation pipeline from Postgres so tests can run
// against an in-memory fixture.
type Store interface {
	// Transactions returns every cash-book entry; period filtering happens
	// in the engine so all named periods share one inclusion rule.
	Transactions(ctx context.Context) ([]core.Transaction, error)

	// Materials returns the full material master.
	Materials(ctx context.Context) ([]core.Material, error)

	// MaterialUsage returns usage records dated inside [from, to].
	// A zero from or to leaves that end of the window unbounded.
	MaterialUsage(ctx context.Context, from, to time.Time) ([]core.UsageRecord, error)

	// ActiveOperatingCosts returns the operating costs currently switched on.
	ActiveOperatingCosts(ctx context.Context) ([]core.OperatingCost, error)
}
