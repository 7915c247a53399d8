package core

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// StockItemInput holds the fields for creating or updating a stock item.
type StockItemInput struct {
	Name string    `json:"name"`
	Type StockType `json:"type"`
}

func (in *StockItemInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Type = StockType(strings.ToLower(strings.TrimSpace(string(in.Type))))
}

func (in *StockItemInput) Validate() error {
	if in.Name == "" {
		return invalidField("name", "stock name is required")
	}
	if in.Type != StockTypeTea && in.Type != StockTypeCoffee {
		return invalidField("type", "must be tea or coffee")
	}
	return nil
}

// AgentInput holds the fields for creating or updating an agent.
type AgentInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (in *AgentInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
}

func (in *AgentInput) Validate() error {
	if in.Name == "" {
		return invalidField("name", "agent name is required")
	}
	return nil
}

// PurchaseInput holds the caller-supplied fields of a purchase event.
// TotalAmount is deliberately absent: it is always recomputed server-side.
type PurchaseInput struct {
	Date    string          `json:"date"` // YYYY-MM-DD
	AgentID int             `json:"agent_id"`
	StockID int             `json:"stock_id"`
	Kg      decimal.Decimal `json:"kg"`
	Bags    int             `json:"bags"`
	Rate    decimal.Decimal `json:"rate"`
}

func (in *PurchaseInput) Normalize() {
	in.Date = strings.TrimSpace(in.Date)
}

func (in *PurchaseInput) Validate() error {
	if err := validateDate(in.Date); err != nil {
		return err
	}
	if in.AgentID <= 0 {
		return invalidField("agent_id", "agent is required")
	}
	if in.StockID <= 0 {
		return invalidField("stock_id", "stock item is required")
	}
	if !in.Kg.IsPositive() {
		return invalidField("kg", "must be greater than 0")
	}
	if in.Bags < 0 {
		return invalidField("bags", "cannot be negative")
	}
	if !in.Rate.IsPositive() {
		return invalidField("rate", "must be greater than 0")
	}
	return nil
}

// SaleInput holds the caller-supplied fields of a sale event.
// PurchaseRate and TotalAmount are absent: the reference rate is resolved and
// the total recomputed server-side at write time.
type SaleInput struct {
	Date         string          `json:"date"` // YYYY-MM-DD
	CustomerType CustomerType    `json:"customer_type"`
	CustomerName string          `json:"customer_name"`
	StockID      int             `json:"stock_id"`
	Kg           decimal.Decimal `json:"kg"`
	Bags         int             `json:"bags"`
	SaleRate     decimal.Decimal `json:"sale_rate"`
}

func (in *SaleInput) Normalize() {
	in.Date = strings.TrimSpace(in.Date)
	in.CustomerType = CustomerType(strings.ToLower(strings.TrimSpace(string(in.CustomerType))))
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	// Cash sales carry no customer name, regardless of what the caller sent.
	if in.CustomerType == CustomerTypeCash {
		in.CustomerName = ""
	}
}

func (in *SaleInput) Validate() error {
	if err := validateDate(in.Date); err != nil {
		return err
	}
	switch in.CustomerType {
	case CustomerTypeCustomer:
		if in.CustomerName == "" {
			return invalidField("customer_name", "customer name is required")
		}
	case CustomerTypeCash:
		// no name required
	default:
		return invalidField("customer_type", "must be customer or cash")
	}
	if in.StockID <= 0 {
		return invalidField("stock_id", "stock item is required")
	}
	if !in.Kg.IsPositive() {
		return invalidField("kg", "must be greater than 0")
	}
	if in.Bags < 0 {
		return invalidField("bags", "cannot be negative")
	}
	if !in.SaleRate.IsPositive() {
		return invalidField("sale_rate", "must be greater than 0")
	}
	return nil
}

func validateDate(date string) error {
	if date == "" {
		return invalidField("date", "date is required")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return invalidField("date", "must be YYYY-MM-DD")
	}
	return nil
}
