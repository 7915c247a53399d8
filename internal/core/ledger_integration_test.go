package core_test

import (
	"context"
	"os"
	"testing"

	"trade-ledger/internal/core"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func setupTestDB(t *testing.T) *pgxpool.Pool {
	_ = godotenv.Load("../../.env")

	// Use a dedicated TEST database to avoid wiping the live app database.
	// Set TEST_DATABASE_URL in your .env or environment to run integration tests.
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set — skipping integration test to protect live database")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	// Clean and seed test DB. Stock 1 (tea), stock 2 (coffee) and agent 1 are
	// available to every test; sequences jump past the seeded ids.
	_, err = pool.Exec(ctx, `
		TRUNCATE TABLE purchases, sales, stocks, agents RESTART IDENTITY CASCADE;

		INSERT INTO stocks (id, name, type) VALUES
		(1, 'Assam Gold', 'tea'),
		(2, 'Monsoon Peaberry', 'coffee');

		INSERT INTO agents (id, name, phone) VALUES
		(1, 'Ravi Traders', '+91-98450-11111');

		SELECT setval('stocks_id_seq', 100);
		SELECT setval('agents_id_seq', 100);
	`)
	if err != nil {
		t.Fatalf("Failed to seed test database: %v", err)
	}

	return pool
}

func TestDashboardSummary(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	ctx := context.Background()
	ledger := core.NewLedgerService(pool)
	pricing := core.NewPricingResolver(pool)
	purchases := core.NewPurchaseService(pool)
	sales := core.NewSaleService(pool, pricing)

	t.Run("EmptyLedger", func(t *testing.T) {
		sum, err := ledger.DashboardSummary(ctx)
		if err != nil {
			t.Fatalf("DashboardSummary: %v", err)
		}
		if !sum.TotalPurchaseAmount.IsZero() || !sum.TotalSalesAmount.IsZero() || !sum.NetProfit.IsZero() {
			t.Errorf("expected zero totals on empty ledger, got %+v", sum)
		}
		if sum.TotalStockCount != 2 {
			t.Errorf("expected 2 seeded stock items, got %d", sum.TotalStockCount)
		}
	})

	// 10 kg @ 50 = 500 in, 8 kg @ 100 = 800 out.
	_, err := purchases.AddPurchase(ctx, core.PurchaseInput{
		Date: "2026-02-01", AgentID: 1, StockID: 1,
		Kg: decimal.NewFromInt(10), Rate: decimal.NewFromInt(50),
	})
	if err != nil {
		t.Fatalf("AddPurchase: %v", err)
	}
	_, err = sales.AddSale(ctx, core.SaleInput{
		Date: "2026-02-10", CustomerType: core.CustomerTypeCash, StockID: 1,
		Kg: decimal.NewFromInt(8), SaleRate: decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("AddSale: %v", err)
	}

	t.Run("TotalsAndNetProfit", func(t *testing.T) {
		sum, err := ledger.DashboardSummary(ctx)
		if err != nil {
			t.Fatalf("DashboardSummary: %v", err)
		}
		if !sum.TotalPurchaseAmount.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected purchase total 500, got %s", sum.TotalPurchaseAmount)
		}
		if !sum.TotalSalesAmount.Equal(decimal.NewFromInt(800)) {
			t.Errorf("expected sales total 800, got %s", sum.TotalSalesAmount)
		}
		if !sum.NetProfit.Equal(decimal.NewFromInt(300)) {
			t.Errorf("expected net profit 300, got %s", sum.NetProfit)
		}
	})

	t.Run("RepeatCallIsIdentical", func(t *testing.T) {
		first, err := ledger.DashboardSummary(ctx)
		if err != nil {
			t.Fatalf("DashboardSummary: %v", err)
		}
		second, err := ledger.DashboardSummary(ctx)
		if err != nil {
			t.Fatalf("DashboardSummary: %v", err)
		}
		if !first.TotalPurchaseAmount.Equal(second.TotalPurchaseAmount) ||
			!first.TotalSalesAmount.Equal(second.TotalSalesAmount) ||
			first.TotalStockCount != second.TotalStockCount ||
			!first.NetProfit.Equal(second.NetProfit) {
			t.Errorf("summaries differ with no intervening writes: %+v vs %+v", first, second)
		}
	})
}

func TestStockLevels(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	ctx := context.Background()
	ledger := core.NewLedgerService(pool)
	pricing := core.NewPricingResolver(pool)
	purchases := core.NewPurchaseService(pool)
	sales := core.NewSaleService(pool, pricing)

	_, err := purchases.AddPurchase(ctx, core.PurchaseInput{
		Date: "2026-02-01", AgentID: 1, StockID: 1,
		Kg: decimal.NewFromInt(10), Rate: decimal.NewFromInt(50),
	})
	if err != nil {
		t.Fatalf("AddPurchase: %v", err)
	}
	_, err = sales.AddSale(ctx, core.SaleInput{
		Date: "2026-02-10", CustomerType: core.CustomerTypeCash, StockID: 1,
		Kg: decimal.NewFromInt(4), SaleRate: decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("AddSale: %v", err)
	}

	levels, err := ledger.StockLevels(ctx)
	if err != nil {
		t.Fatalf("StockLevels: %v", err)
	}
	if len(levels) != 2 {
		t.Fatalf("expected 2 stock levels, got %d", len(levels))
	}

	byID := make(map[int]core.StockLevel)
	for _, lv := range levels {
		byID[lv.StockID] = lv
	}
	if !byID[1].CurrentKg.Equal(decimal.NewFromInt(6)) {
		t.Errorf("expected 6 kg on hand for stock 1, got %s", byID[1].CurrentKg)
	}
	// No movements at all still reports the item, at zero.
	if !byID[2].CurrentKg.IsZero() {
		t.Errorf("expected 0 kg on hand for stock 2, got %s", byID[2].CurrentKg)
	}
	if byID[2].Type != core.StockTypeCoffee {
		t.Errorf("expected coffee type for stock 2, got %s", byID[2].Type)
	}
}
