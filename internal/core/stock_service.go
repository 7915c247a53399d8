package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// StockService manages the stock master data.
// Deleting a stock item never cascades: purchases and sales keep the name
// snapshot captured when they were recorded.
type StockService interface {
	CreateStock(ctx context.Context, input StockItemInput) (*StockItem, error)
	GetStocks(ctx context.Context) ([]StockItem, error)
	GetStock(ctx context.Context, id int) (*StockItem, error)
	UpdateStock(ctx context.Context, id int, input StockItemInput) (*StockItem, error)
	DeleteStock(ctx context.Context, id int) error
}

type stockService struct {
	pool *pgxpool.Pool
}

// NewStockService constructs a StockService backed by PostgreSQL.
func NewStockService(pool *pgxpool.Pool) StockService {
	return &stockService{pool: pool}
}

func (s *stockService) CreateStock(ctx context.Context, input StockItemInput) (*StockItem, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	item := &StockItem{}
	err := s.pool.QueryRow(ctx, `
		INSERT INTO stocks (name, type)
		VALUES ($1, $2)
		RETURNING id, name, type, created_at`,
		input.Name, string(input.Type),
	).Scan(&item.ID, &item.Name, &item.Type, &item.CreatedAt)
	if err != nil {
		return nil, storeErr("create stock", err)
	}
	return item, nil
}

func (s *stockService) GetStocks(ctx context.Context) ([]StockItem, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, type, created_at
		FROM stocks
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, storeErr("list stocks", err)
	}
	defer rows.Close()

	var items []StockItem
	for rows.Next() {
		var item StockItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Type, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan stock item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list stocks", err)
	}
	return items, nil
}

func (s *stockService) GetStock(ctx context.Context, id int) (*StockItem, error) {
	item := &StockItem{}
	err := s.pool.QueryRow(ctx, `
		SELECT id, name, type, created_at
		FROM stocks WHERE id = $1`, id,
	).Scan(&item.ID, &item.Name, &item.Type, &item.CreatedAt)
	if err != nil {
		return nil, wrapLookupErr("stock", id, err)
	}
	return item, nil
}

func (s *stockService) UpdateStock(ctx context.Context, id int, input StockItemInput) (*StockItem, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	item := &StockItem{}
	err := s.pool.QueryRow(ctx, `
		UPDATE stocks SET name = $1, type = $2
		WHERE id = $3
		RETURNING id, name, type, created_at`,
		input.Name, string(input.Type), id,
	).Scan(&item.ID, &item.Name, &item.Type, &item.CreatedAt)
	if err != nil {
		return nil, wrapLookupErr("stock", id, err)
	}
	return item, nil
}

func (s *stockService) DeleteStock(ctx context.Context, id int) error {
	// Historical purchases and sales referencing this item keep their
	// denormalized stock_name; only the master record goes away.
	tag, err := s.pool.Exec(ctx, "DELETE FROM stocks WHERE id = $1", id)
	if err != nil {
		return storeErr("delete stock", err)
	}
	if tag.RowsAffected() == 0 {
		return &NotFoundError{Entity: "stock", ID: id}
	}
	return nil
}
