package app

import (
	"context"

	"trade-ledger/internal/core"
)

// ApplicationService is the single interface the web adapter calls. It
// decouples presentation from business logic; implementations contain no
// display logic of any kind.
type ApplicationService interface {
	// ── Stock master ──────────────────────────────────────────────────────────
	ListStocks(ctx context.Context) ([]core.StockItem, error)
	CreateStock(ctx context.Context, input core.StockItemInput) (*core.StockItem, error)
	UpdateStock(ctx context.Context, id int, input core.StockItemInput) (*core.StockItem, error)
	// DeleteStock removes a stock master record. Historical purchases and
	// sales keep their denormalized name snapshots.
	DeleteStock(ctx context.Context, id int) error

	// ── Agents ────────────────────────────────────────────────────────────────
	ListAgents(ctx context.Context) ([]core.Agent, error)
	CreateAgent(ctx context.Context, input core.AgentInput) (*core.Agent, error)
	UpdateAgent(ctx context.Context, id int, input core.AgentInput) (*core.Agent, error)
	DeleteAgent(ctx context.Context, id int) error

	// ── Event log ─────────────────────────────────────────────────────────────
	ListPurchases(ctx context.Context) ([]core.Purchase, error)
	AddPurchase(ctx context.Context, input core.PurchaseInput) (*core.Purchase, error)
	ListSales(ctx context.Context) ([]core.Sale, error)
	AddSale(ctx context.Context, input core.SaleInput) (*core.Sale, error)

	// LatestPurchaseRate returns the reference rate used to pre-fill a new
	// sale entry; zero means no reference price exists for the item.
	LatestPurchaseRate(ctx context.Context, stockID int) (*LatestRateResult, error)

	// ── Derived views ─────────────────────────────────────────────────────────
	GetDashboard(ctx context.Context) (*core.DashboardSummary, error)
	GetStockLevels(ctx context.Context) ([]core.StockLevel, error)

	// AnalyzeSalesTrends summarizes the full sales history and asks the
	// advisory service for narrative insights. When the advisor fails the
	// result degrades to the locally computed summary with a warning instead
	// of an error.
	AnalyzeSalesTrends(ctx context.Context) (*TrendAnalysisResult, error)

	// SuggestReorders asks the advisory service for reorder quantities.
	// When the advisor fails the result degrades to the local coverage
	// heuristic with a warning instead of an error.
	SuggestReorders(ctx context.Context) (*ReorderAdviceResult, error)

	// ── Identity ──────────────────────────────────────────────────────────────
	// AuthenticateAdmin verifies credentials against the single allow-listed
	// admin identity.
	AuthenticateAdmin(ctx context.Context, email, password string) (*AdminSession, error)
}
