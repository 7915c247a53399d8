package core

import (
	"time"

	"github.com/shopspring/decimal"
)

type StockType string

const (
	StockTypeTea    StockType = "tea"
	StockTypeCoffee StockType = "coffee"
)

type CustomerType string

const (
	CustomerTypeCustomer CustomerType = "customer"
	CustomerTypeCash     CustomerType = "cash"
)

// StockItem is a tea/coffee product tracked in the stock master.
type StockItem struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Type      StockType `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// Agent is a supplier from whom stock is purchased.
type Agent struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Purchase is an append-only stock intake event. AgentName and StockName are
// snapshots of the referenced records at write time; they are never refreshed
// when the agent or stock item is later renamed or deleted.
type Purchase struct {
	ID          int             `json:"id"`
	Date        string          `json:"date"` // YYYY-MM-DD
	AgentID     int             `json:"agent_id"`
	AgentName   string          `json:"agent_name"`
	StockID     int             `json:"stock_id"`
	StockName   string          `json:"stock_name"`
	Kg          decimal.Decimal `json:"kg"`
	Bags        int             `json:"bags"`
	Rate        decimal.Decimal `json:"rate"`         // currency per kg
	TotalAmount decimal.Decimal `json:"total_amount"` // always kg × rate, computed server-side
	CreatedAt   time.Time       `json:"created_at"`
}

// Sale is an append-only sale event. StockName and PurchaseRate are write-time
// snapshots: PurchaseRate records the reference purchase rate resolved at the
// moment of sale, not a live join.
type Sale struct {
	ID           int             `json:"id"`
	Date         string          `json:"date"` // YYYY-MM-DD
	CustomerType CustomerType    `json:"customer_type"`
	CustomerName string          `json:"customer_name,omitempty"`
	StockID      int             `json:"stock_id"`
	StockName    string          `json:"stock_name"`
	Kg           decimal.Decimal `json:"kg"`
	Bags         int             `json:"bags"`
	PurchaseRate decimal.Decimal `json:"purchase_rate"`
	SaleRate     decimal.Decimal `json:"sale_rate"`
	TotalAmount  decimal.Decimal `json:"total_amount"` // always kg × saleRate, computed server-side
	CreatedAt    time.Time       `json:"created_at"`
}

// StockLevel is the derived on-hand position for one stock item:
// total kg purchased minus total kg sold over the full event log.
type StockLevel struct {
	StockID   int             `json:"stock_id"`
	StockName string          `json:"stock_name"`
	Type      StockType       `json:"type"`
	CurrentKg decimal.Decimal `json:"current_kg"`
}

// DashboardSummary holds the running totals shown on the dashboard.
// NetProfit = TotalSalesAmount − TotalPurchaseAmount.
type DashboardSummary struct {
	TotalPurchaseAmount decimal.Decimal `json:"total_purchase_amount"`
	TotalSalesAmount    decimal.Decimal `json:"total_sales_amount"`
	TotalStockCount     int             `json:"total_stock_count"`
	NetProfit           decimal.Decimal `json:"net_profit"`
}
