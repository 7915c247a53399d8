package core_test

import (
	"errors"
	"testing"

	"trade-ledger/internal/core"

	"github.com/shopspring/decimal"
)

func TestStockItemInput_Validate(t *testing.T) {
	tests := []struct {
		name      string
		input     core.StockItemInput
		wantField string // empty means valid
	}{
		{"valid tea", core.StockItemInput{Name: "Assam Gold", Type: "tea"}, ""},
		{"valid coffee with whitespace", core.StockItemInput{Name: "  Peaberry  ", Type: " Coffee "}, ""},
		{"missing name", core.StockItemInput{Name: "   ", Type: "tea"}, "name"},
		{"bad type", core.StockItemInput{Name: "Assam Gold", Type: "spice"}, "type"},
		{"empty type", core.StockItemInput{Name: "Assam Gold"}, "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.input.Normalize()
			err := tt.input.Validate()
			checkValidation(t, err, tt.wantField)
		})
	}
}

func TestStockItemInput_NormalizeLowercasesType(t *testing.T) {
	in := core.StockItemInput{Name: "Peaberry", Type: "COFFEE"}
	in.Normalize()
	if in.Type != core.StockTypeCoffee {
		t.Errorf("expected type coffee, got %q", in.Type)
	}
}

func TestAgentInput_Validate(t *testing.T) {
	in := core.AgentInput{Name: "  Ravi Traders  ", Phone: " +91-98450-11111 "}
	in.Normalize()
	if err := in.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if in.Name != "Ravi Traders" {
		t.Errorf("expected trimmed name, got %q", in.Name)
	}

	empty := core.AgentInput{Name: "   "}
	empty.Normalize()
	checkValidation(t, empty.Validate(), "name")
}

func TestPurchaseInput_Validate(t *testing.T) {
	valid := func() core.PurchaseInput {
		return core.PurchaseInput{
			Date:    "2026-03-15",
			AgentID: 1,
			StockID: 1,
			Kg:      decimal.NewFromInt(10),
			Bags:    2,
			Rate:    decimal.NewFromInt(250),
		}
	}

	tests := []struct {
		name      string
		mutate    func(*core.PurchaseInput)
		wantField string
	}{
		{"valid", func(in *core.PurchaseInput) {}, ""},
		{"missing date", func(in *core.PurchaseInput) { in.Date = "" }, "date"},
		{"bad date format", func(in *core.PurchaseInput) { in.Date = "15/03/2026" }, "date"},
		{"missing agent", func(in *core.PurchaseInput) { in.AgentID = 0 }, "agent_id"},
		{"missing stock", func(in *core.PurchaseInput) { in.StockID = 0 }, "stock_id"},
		{"zero kg", func(in *core.PurchaseInput) { in.Kg = decimal.Zero }, "kg"},
		{"negative kg", func(in *core.PurchaseInput) { in.Kg = decimal.NewFromInt(-5) }, "kg"},
		{"negative bags", func(in *core.PurchaseInput) { in.Bags = -1 }, "bags"},
		{"zero rate", func(in *core.PurchaseInput) { in.Rate = decimal.Zero }, "rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid()
			tt.mutate(&in)
			in.Normalize()
			checkValidation(t, in.Validate(), tt.wantField)
		})
	}
}

func TestSaleInput_Validate(t *testing.T) {
	valid := func() core.SaleInput {
		return core.SaleInput{
			Date:         "2026-03-15",
			CustomerType: core.CustomerTypeCustomer,
			CustomerName: "Chai Point",
			StockID:      1,
			Kg:           decimal.NewFromInt(5),
			SaleRate:     decimal.NewFromInt(300),
		}
	}

	tests := []struct {
		name      string
		mutate    func(*core.SaleInput)
		wantField string
	}{
		{"valid customer sale", func(in *core.SaleInput) {}, ""},
		{"valid cash sale", func(in *core.SaleInput) {
			in.CustomerType = core.CustomerTypeCash
			in.CustomerName = ""
		}, ""},
		{"customer without name", func(in *core.SaleInput) { in.CustomerName = "  " }, "customer_name"},
		{"unknown customer type", func(in *core.SaleInput) { in.CustomerType = "wholesale" }, "customer_type"},
		{"bad date", func(in *core.SaleInput) { in.Date = "2026-3-5" }, "date"},
		{"missing stock", func(in *core.SaleInput) { in.StockID = 0 }, "stock_id"},
		{"zero kg", func(in *core.SaleInput) { in.Kg = decimal.Zero }, "kg"},
		{"zero sale rate", func(in *core.SaleInput) { in.SaleRate = decimal.Zero }, "sale_rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid()
			tt.mutate(&in)
			in.Normalize()
			checkValidation(t, in.Validate(), tt.wantField)
		})
	}
}

func TestSaleInput_NormalizeClearsNameForCashSales(t *testing.T) {
	in := core.SaleInput{
		Date:         "2026-03-15",
		CustomerType: "Cash",
		CustomerName: "Walk-in Customer",
		StockID:      1,
		Kg:           decimal.NewFromInt(2),
		SaleRate:     decimal.NewFromInt(300),
	}
	in.Normalize()
	if in.CustomerType != core.CustomerTypeCash {
		t.Errorf("expected normalized customer type cash, got %q", in.CustomerType)
	}
	if in.CustomerName != "" {
		t.Errorf("expected customer name cleared for cash sale, got %q", in.CustomerName)
	}
	if err := in.Validate(); err != nil {
		t.Errorf("Validate after Normalize: %v", err)
	}
}

func checkValidation(t *testing.T, err error, wantField string) {
	t.Helper()
	if wantField == "" {
		if err != nil {
			t.Errorf("expected valid input, got %v", err)
		}
		return
	}
	var verr *core.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != wantField {
		t.Errorf("expected field %q, got %q (%s)", wantField, verr.Field, verr.Message)
	}
}
