package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// LedgerService computes derived totals over the full event log. Every call
// re-scans the store: there is no cached or incrementally maintained
// aggregate, so two calls with no intervening writes return identical
// results.
type LedgerService interface {
	// DashboardSummary sums the purchase and sale logs and counts stock
	// items. If any one of the three reads fails the whole call fails with a
	// single aggregate error; partial totals are never returned.
	DashboardSummary(ctx context.Context) (*DashboardSummary, error)

	// StockLevels returns the derived on-hand kg per stock item:
	// Σ purchased kg − Σ sold kg. Items with no movements report zero.
	StockLevels(ctx context.Context) ([]StockLevel, error)
}

type ledgerService struct {
	pool *pgxpool.Pool
}

// NewLedgerService constructs a LedgerService backed by PostgreSQL.
func NewLedgerService(pool *pgxpool.Pool) LedgerService {
	return &ledgerService{pool: pool}
}

func (s *ledgerService) DashboardSummary(ctx context.Context) (*DashboardSummary, error) {
	// SUM over numeric columns is exact decimal arithmetic; rounding to two
	// places happens only at the presentation boundary.
	var totalPurchases decimal.Decimal
	if err := s.pool.QueryRow(ctx,
		"SELECT COALESCE(SUM(total_amount), 0) FROM purchases",
	).Scan(&totalPurchases); err != nil {
		return nil, fmt.Errorf("dashboard summary failed: %w", storeErr("sum purchases", err))
	}

	var totalSales decimal.Decimal
	if err := s.pool.QueryRow(ctx,
		"SELECT COALESCE(SUM(total_amount), 0) FROM sales",
	).Scan(&totalSales); err != nil {
		return nil, fmt.Errorf("dashboard summary failed: %w", storeErr("sum sales", err))
	}

	var stockCount int
	if err := s.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM stocks",
	).Scan(&stockCount); err != nil {
		return nil, fmt.Errorf("dashboard summary failed: %w", storeErr("count stocks", err))
	}

	return &DashboardSummary{
		TotalPurchaseAmount: totalPurchases,
		TotalSalesAmount:    totalSales,
		TotalStockCount:     stockCount,
		NetProfit:           totalSales.Sub(totalPurchases),
	}, nil
}

func (s *ledgerService) StockLevels(ctx context.Context) ([]StockLevel, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT s.id, s.name, s.type,
		       COALESCE(p.kg_in, 0) - COALESCE(sl.kg_out, 0) AS current_kg
		FROM stocks s
		LEFT JOIN (
		    SELECT stock_id, SUM(kg) AS kg_in FROM purchases GROUP BY stock_id
		) p ON p.stock_id = s.id
		LEFT JOIN (
		    SELECT stock_id, SUM(kg) AS kg_out FROM sales GROUP BY stock_id
		) sl ON sl.stock_id = s.id
		ORDER BY s.name, s.id`)
	if err != nil {
		return nil, storeErr("query stock levels", err)
	}
	defer rows.Close()

	var levels []StockLevel
	for rows.Next() {
		var lv StockLevel
		if err := rows.Scan(&lv.StockID, &lv.StockName, &lv.Type, &lv.CurrentKg); err != nil {
			return nil, fmt.Errorf("failed to scan stock level: %w", err)
		}
		levels = append(levels, lv)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("query stock levels", err)
	}
	return levels, nil
}
