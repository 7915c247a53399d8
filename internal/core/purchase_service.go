package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PurchaseService records and lists stock intake events.
type PurchaseService interface {
	// AddPurchase validates the input, snapshots the agent and stock names,
	// recomputes totalAmount = kg × rate server-side, and appends the event.
	// Unknown agent or stock references reject the write with NotFoundError.
	AddPurchase(ctx context.Context, input PurchaseInput) (*Purchase, error)

	// GetPurchases returns the full purchase log, newest date first.
	GetPurchases(ctx context.Context) ([]Purchase, error)
}

type purchaseService struct {
	pool *pgxpool.Pool
}

// NewPurchaseService constructs a PurchaseService backed by PostgreSQL.
func NewPurchaseService(pool *pgxpool.Pool) PurchaseService {
	return &purchaseService{pool: pool}
}

func (s *purchaseService) AddPurchase(ctx context.Context, input PurchaseInput) (*Purchase, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Name lookups and the insert are intentionally not one transaction: a
	// rename landing between them yields a stale snapshot, which is the
	// accepted behavior for this append-mostly log.
	var agentName string
	err := s.pool.QueryRow(ctx, "SELECT name FROM agents WHERE id = $1", input.AgentID).Scan(&agentName)
	if err != nil {
		return nil, wrapLookupErr("agent", input.AgentID, err)
	}

	var stockName string
	err = s.pool.QueryRow(ctx, "SELECT name FROM stocks WHERE id = $1", input.StockID).Scan(&stockName)
	if err != nil {
		return nil, wrapLookupErr("stock", input.StockID, err)
	}

	// Never trust a caller-supplied total.
	totalAmount := input.Kg.Mul(input.Rate)

	p := &Purchase{}
	err = s.pool.QueryRow(ctx, `
		INSERT INTO purchases (date, agent_id, agent_name, stock_id, stock_name, kg, bags, rate, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, date::text, agent_id, agent_name, stock_id, stock_name, kg, bags, rate, total_amount, created_at`,
		input.Date, input.AgentID, agentName, input.StockID, stockName,
		input.Kg, input.Bags, input.Rate, totalAmount,
	).Scan(
		&p.ID, &p.Date, &p.AgentID, &p.AgentName, &p.StockID, &p.StockName,
		&p.Kg, &p.Bags, &p.Rate, &p.TotalAmount, &p.CreatedAt,
	)
	if err != nil {
		return nil, storeErr("insert purchase", err)
	}
	return p, nil
}

func (s *purchaseService) GetPurchases(ctx context.Context) ([]Purchase, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, date::text, agent_id, agent_name, stock_id, stock_name, kg, bags, rate, total_amount, created_at
		FROM purchases
		ORDER BY date DESC, created_at DESC, id DESC`)
	if err != nil {
		return nil, storeErr("list purchases", err)
	}
	defer rows.Close()

	var purchases []Purchase
	for rows.Next() {
		var p Purchase
		if err := rows.Scan(
			&p.ID, &p.Date, &p.AgentID, &p.AgentName, &p.StockID, &p.StockName,
			&p.Kg, &p.Bags, &p.Rate, &p.TotalAmount, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan purchase: %w", err)
		}
		purchases = append(purchases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list purchases", err)
	}
	return purchases, nil
}
