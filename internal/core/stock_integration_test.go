package core_test

import (
	"context"
	"errors"
	"testing"

	"trade-ledger/internal/core"
)

func TestStock_CRUD(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	ctx := context.Background()
	svc := core.NewStockService(pool)

	t.Run("CreateStock_Success", func(t *testing.T) {
		item, err := svc.CreateStock(ctx, core.StockItemInput{Name: "Nilgiri Frost", Type: "tea"})
		if err != nil {
			t.Fatalf("CreateStock: %v", err)
		}
		if item.ID == 0 {
			t.Error("expected stock ID to be set")
		}
		if item.Name != "Nilgiri Frost" || item.Type != core.StockTypeTea {
			t.Errorf("unexpected stock item: %+v", item)
		}
	})

	t.Run("CreateStock_RejectsBadType", func(t *testing.T) {
		_, err := svc.CreateStock(ctx, core.StockItemInput{Name: "Cardamom", Type: "spice"})
		var verr *core.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("GetStocks_IncludesSeededAndCreated", func(t *testing.T) {
		items, err := svc.GetStocks(ctx)
		if err != nil {
			t.Fatalf("GetStocks: %v", err)
		}
		if len(items) != 3 {
			t.Errorf("expected 3 stock items, got %d", len(items))
		}
	})

	t.Run("UpdateStock_Success", func(t *testing.T) {
		item, err := svc.UpdateStock(ctx, 1, core.StockItemInput{Name: "Assam Gold Reserve", Type: "tea"})
		if err != nil {
			t.Fatalf("UpdateStock: %v", err)
		}
		if item.Name != "Assam Gold Reserve" {
			t.Errorf("expected updated name, got %q", item.Name)
		}
	})

	t.Run("UpdateStock_NotFound", func(t *testing.T) {
		_, err := svc.UpdateStock(ctx, 999, core.StockItemInput{Name: "Ghost", Type: "tea"})
		var nf *core.NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})

	t.Run("DeleteStock_Success", func(t *testing.T) {
		if err := svc.DeleteStock(ctx, 2); err != nil {
			t.Fatalf("DeleteStock: %v", err)
		}
		if _, err := svc.GetStock(ctx, 2); err == nil {
			t.Error("expected deleted stock to be gone")
		}
	})

	t.Run("DeleteStock_NotFound", func(t *testing.T) {
		err := svc.DeleteStock(ctx, 999)
		var nf *core.NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})
}
