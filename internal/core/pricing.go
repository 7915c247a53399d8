package core

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PricingResolver finds the reference purchase rate for a stock item.
type PricingResolver interface {
	// LatestPurchaseRate returns the rate of the most recent purchase of the
	// given stock item. Zero means "no reference price available" — it is not
	// an error, and callers must not treat it as a valid free price.
	// Ordering is date DESC with created_at DESC, id DESC as tie-breaks, so
	// same-day purchases resolve deterministically to the last one recorded.
	LatestPurchaseRate(ctx context.Context, stockID int) (decimal.Decimal, error)
}

type pricingResolver struct {
	pool *pgxpool.Pool
}

// NewPricingResolver constructs a PricingResolver backed by PostgreSQL.
func NewPricingResolver(pool *pgxpool.Pool) PricingResolver {
	return &pricingResolver{pool: pool}
}

func (r *pricingResolver) LatestPurchaseRate(ctx context.Context, stockID int) (decimal.Decimal, error) {
	if stockID <= 0 {
		return decimal.Zero, nil
	}

	var rate decimal.Decimal
	err := r.pool.QueryRow(ctx, `
		SELECT rate
		FROM purchases
		WHERE stock_id = $1
		ORDER BY date DESC, created_at DESC, id DESC
		LIMIT 1`, stockID,
	).Scan(&rate)
	if errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, storeErr("resolve purchase rate", err)
	}
	return rate, nil
}
