package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SaleService records and lists sale events.
type SaleService interface {
	// AddSale validates the input, snapshots the stock name and the latest
	// purchase rate for the item, recomputes totalAmount = kg × saleRate
	// server-side, and appends the event. A zero purchase rate snapshot means
	// no reference price existed at sale time.
	AddSale(ctx context.Context, input SaleInput) (*Sale, error)

	// GetSales returns the full sales log, newest date first.
	GetSales(ctx context.Context) ([]Sale, error)
}

type saleService struct {
	pool    *pgxpool.Pool
	pricing PricingResolver
}

// NewSaleService constructs a SaleService backed by PostgreSQL.
func NewSaleService(pool *pgxpool.Pool, pricing PricingResolver) SaleService {
	return &saleService{pool: pool, pricing: pricing}
}

func (s *saleService) AddSale(ctx context.Context, input SaleInput) (*Sale, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var stockName string
	err := s.pool.QueryRow(ctx, "SELECT name FROM stocks WHERE id = $1", input.StockID).Scan(&stockName)
	if err != nil {
		return nil, wrapLookupErr("stock", input.StockID, err)
	}

	// Snapshot the reference rate now; later purchases never rewrite it.
	purchaseRate, err := s.pricing.LatestPurchaseRate(ctx, input.StockID)
	if err != nil {
		return nil, err
	}

	// Never trust a caller-supplied total.
	totalAmount := input.Kg.Mul(input.SaleRate)

	sale := &Sale{}
	err = s.pool.QueryRow(ctx, `
		INSERT INTO sales (date, customer_type, customer_name, stock_id, stock_name, kg, bags, purchase_rate, sale_rate, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, date::text, customer_type, customer_name, stock_id, stock_name, kg, bags, purchase_rate, sale_rate, total_amount, created_at`,
		input.Date, string(input.CustomerType), input.CustomerName, input.StockID, stockName,
		input.Kg, input.Bags, purchaseRate, input.SaleRate, totalAmount,
	).Scan(
		&sale.ID, &sale.Date, &sale.CustomerType, &sale.CustomerName, &sale.StockID, &sale.StockName,
		&sale.Kg, &sale.Bags, &sale.PurchaseRate, &sale.SaleRate, &sale.TotalAmount, &sale.CreatedAt,
	)
	if err != nil {
		return nil, storeErr("insert sale", err)
	}
	return sale, nil
}

func (s *saleService) GetSales(ctx context.Context) ([]Sale, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, date::text, customer_type, customer_name, stock_id, stock_name, kg, bags, purchase_rate, sale_rate, total_amount, created_at
		FROM sales
		ORDER BY date DESC, created_at DESC, id DESC`)
	if err != nil {
		return nil, storeErr("list sales", err)
	}
	defer rows.Close()

	var sales []Sale
	for rows.Next() {
		var sale Sale
		if err := rows.Scan(
			&sale.ID, &sale.Date, &sale.CustomerType, &sale.CustomerName, &sale.StockID, &sale.StockName,
			&sale.Kg, &sale.Bags, &sale.PurchaseRate, &sale.SaleRate, &sale.TotalAmount, &sale.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan sale: %w", err)
		}
		sales = append(sales, sale)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list sales", err)
	}
	return sales, nil
}
