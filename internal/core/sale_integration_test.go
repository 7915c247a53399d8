package core_test

import (
	"context"
	"errors"
	"testing"

	"trade-ledger/internal/core"

	"github.com/shopspring/decimal"
)

func TestSale_AddAndList(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	ctx := context.Background()
	pricing := core.NewPricingResolver(pool)
	purchases := core.NewPurchaseService(pool)
	sales := core.NewSaleService(pool, pricing)

	t.Run("AddSale_WithoutReferenceRate", func(t *testing.T) {
		sale, err := sales.AddSale(ctx, core.SaleInput{
			Date:         "2026-03-01",
			CustomerType: core.CustomerTypeCustomer,
			CustomerName: "Chai Point",
			StockID:      1,
			Kg:           decimal.NewFromInt(5),
			SaleRate:     decimal.NewFromInt(300),
		})
		if err != nil {
			t.Fatalf("AddSale: %v", err)
		}
		// No purchase exists yet, so the snapshot records no reference price.
		if !sale.PurchaseRate.IsZero() {
			t.Errorf("expected zero purchase rate snapshot, got %s", sale.PurchaseRate)
		}
		if !sale.TotalAmount.Equal(decimal.NewFromInt(1500)) {
			t.Errorf("expected total 1500, got %s", sale.TotalAmount)
		}
		if sale.StockName != "Assam Gold" {
			t.Errorf("expected stock name snapshot, got %q", sale.StockName)
		}
	})

	t.Run("AddSale_SnapshotsLatestPurchaseRate", func(t *testing.T) {
		_, err := purchases.AddPurchase(ctx, core.PurchaseInput{
			Date: "2026-03-05", AgentID: 1, StockID: 1,
			Kg: decimal.NewFromInt(20), Rate: decimal.NewFromInt(250),
		})
		if err != nil {
			t.Fatalf("AddPurchase: %v", err)
		}

		sale, err := sales.AddSale(ctx, core.SaleInput{
			Date:         "2026-03-10",
			CustomerType: core.CustomerTypeCustomer,
			CustomerName: "Chai Point",
			StockID:      1,
			Kg:           decimal.NewFromInt(4),
			SaleRate:     decimal.NewFromInt(320),
		})
		if err != nil {
			t.Fatalf("AddSale: %v", err)
		}
		if !sale.PurchaseRate.Equal(decimal.NewFromInt(250)) {
			t.Errorf("expected purchase rate snapshot 250, got %s", sale.PurchaseRate)
		}
	})

	t.Run("SnapshotFrozenAgainstLaterPurchases", func(t *testing.T) {
		// A later, pricier purchase must not rewrite earlier sale snapshots.
		_, err := purchases.AddPurchase(ctx, core.PurchaseInput{
			Date: "2026-03-12", AgentID: 1, StockID: 1,
			Kg: decimal.NewFromInt(20), Rate: decimal.NewFromInt(280),
		})
		if err != nil {
			t.Fatalf("AddPurchase: %v", err)
		}

		list, err := sales.GetSales(ctx)
		if err != nil {
			t.Fatalf("GetSales: %v", err)
		}
		for _, s := range list {
			if s.PurchaseRate.Equal(decimal.NewFromInt(280)) {
				t.Errorf("sale %d snapshot was rewritten to the new rate", s.ID)
			}
		}
	})

	t.Run("AddSale_CashClearsCustomerName", func(t *testing.T) {
		sale, err := sales.AddSale(ctx, core.SaleInput{
			Date:         "2026-03-15",
			CustomerType: core.CustomerTypeCash,
			CustomerName: "should be dropped",
			StockID:      1,
			Kg:           decimal.NewFromInt(2),
			SaleRate:     decimal.NewFromInt(320),
		})
		if err != nil {
			t.Fatalf("AddSale: %v", err)
		}
		if sale.CustomerName != "" {
			t.Errorf("expected empty customer name on cash sale, got %q", sale.CustomerName)
		}
		if sale.CustomerType != core.CustomerTypeCash {
			t.Errorf("expected cash customer type, got %q", sale.CustomerType)
		}
	})

	t.Run("AddSale_UnknownStock", func(t *testing.T) {
		_, err := sales.AddSale(ctx, core.SaleInput{
			Date: "2026-03-15", CustomerType: core.CustomerTypeCash, StockID: 999,
			Kg: decimal.NewFromInt(2), SaleRate: decimal.NewFromInt(320),
		})
		var nf *core.NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("expected NotFoundError for unknown stock, got %v", err)
		}
	})

	t.Run("AddSale_StoresExactFractionalValues", func(t *testing.T) {
		// 1.111 × 10.01 = 11.12111, stored exactly, never pre-rounded.
		sale, err := sales.AddSale(ctx, core.SaleInput{
			Date:         "2026-03-16",
			CustomerType: core.CustomerTypeCash,
			StockID:      1,
			Kg:           decimal.RequireFromString("1.111"),
			SaleRate:     decimal.RequireFromString("10.01"),
		})
		if err != nil {
			t.Fatalf("AddSale: %v", err)
		}
		if !sale.Kg.Equal(decimal.RequireFromString("1.111")) {
			t.Errorf("expected kg stored exactly, got %s", sale.Kg)
		}
		if !sale.TotalAmount.Equal(decimal.RequireFromString("11.12111")) {
			t.Errorf("expected total 11.12111 (kg × saleRate), got %s", sale.TotalAmount)
		}
	})

	t.Run("GetSales_NewestDateFirst", func(t *testing.T) {
		list, err := sales.GetSales(ctx)
		if err != nil {
			t.Fatalf("GetSales: %v", err)
		}
		if len(list) != 4 {
			t.Fatalf("expected 4 sales, got %d", len(list))
		}
		for i := 1; i < len(list); i++ {
			if list[i-1].Date < list[i].Date {
				t.Errorf("sales out of order at %d: %s before %s", i, list[i-1].Date, list[i].Date)
			}
		}
	})
}
