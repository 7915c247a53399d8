package app

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"

	"trade-ledger/internal/ai"
	"trade-ledger/internal/core"
)

// AdminConfig is the single allow-listed admin identity, loaded from the
// environment at startup. PasswordSHA256 is the hex-encoded SHA-256 of the
// admin password.
type AdminConfig struct {
	Email          string
	PasswordSHA256 string
}

type appService struct {
	stocks    core.StockService
	agents    core.AgentService
	purchases core.PurchaseService
	sales     core.SaleService
	pricing   core.PricingResolver
	ledger    core.LedgerService
	advisor   ai.AdvisorService
	trendCfg  core.TrendConfig
	admin     AdminConfig
}

// NewAppService constructs an appService that satisfies ApplicationService.
func NewAppService(
	stocks core.StockService,
	agents core.AgentService,
	purchases core.PurchaseService,
	sales core.SaleService,
	pricing core.PricingResolver,
	ledger core.LedgerService,
	advisor ai.AdvisorService,
	trendCfg core.TrendConfig,
	admin AdminConfig,
) ApplicationService {
	return &appService{
		stocks:    stocks,
		agents:    agents,
		purchases: purchases,
		sales:     sales,
		pricing:   pricing,
		ledger:    ledger,
		advisor:   advisor,
		trendCfg:  trendCfg,
		admin:     admin,
	}
}

// ── Stock master ──────────────────────────────────────────────────────────────

func (s *appService) ListStocks(ctx context.Context) ([]core.StockItem, error) {
	return s.stocks.GetStocks(ctx)
}

func (s *appService) CreateStock(ctx context.Context, input core.StockItemInput) (*core.StockItem, error) {
	return s.stocks.CreateStock(ctx, input)
}

func (s *appService) UpdateStock(ctx context.Context, id int, input core.StockItemInput) (*core.StockItem, error) {
	return s.stocks.UpdateStock(ctx, id, input)
}

func (s *appService) DeleteStock(ctx context.Context, id int) error {
	return s.stocks.DeleteStock(ctx, id)
}

// ── Agents ────────────────────────────────────────────────────────────────────

func (s *appService) ListAgents(ctx context.Context) ([]core.Agent, error) {
	return s.agents.GetAgents(ctx)
}

func (s *appService) CreateAgent(ctx context.Context, input core.AgentInput) (*core.Agent, error) {
	return s.agents.CreateAgent(ctx, input)
}

func (s *appService) UpdateAgent(ctx context.Context, id int, input core.AgentInput) (*core.Agent, error) {
	return s.agents.UpdateAgent(ctx, id, input)
}

func (s *appService) DeleteAgent(ctx context.Context, id int) error {
	return s.agents.DeleteAgent(ctx, id)
}

// ── Event log ─────────────────────────────────────────────────────────────────

func (s *appService) ListPurchases(ctx context.Context) ([]core.Purchase, error) {
	return s.purchases.GetPurchases(ctx)
}

func (s *appService) AddPurchase(ctx context.Context, input core.PurchaseInput) (*core.Purchase, error) {
	return s.purchases.AddPurchase(ctx, input)
}

func (s *appService) ListSales(ctx context.Context) ([]core.Sale, error) {
	return s.sales.GetSales(ctx)
}

func (s *appService) AddSale(ctx context.Context, input core.SaleInput) (*core.Sale, error) {
	return s.sales.AddSale(ctx, input)
}

func (s *appService) LatestPurchaseRate(ctx context.Context, stockID int) (*LatestRateResult, error) {
	rate, err := s.pricing.LatestPurchaseRate(ctx, stockID)
	if err != nil {
		return nil, err
	}
	return &LatestRateResult{
		StockID:   stockID,
		Rate:      rate,
		Available: rate.IsPositive(),
	}, nil
}

// ── Derived views ─────────────────────────────────────────────────────────────

func (s *appService) GetDashboard(ctx context.Context) (*core.DashboardSummary, error) {
	return s.ledger.DashboardSummary(ctx)
}

func (s *appService) GetStockLevels(ctx context.Context) ([]core.StockLevel, error) {
	return s.ledger.StockLevels(ctx)
}

// AnalyzeSalesTrends computes the deterministic volume summary locally, then
// asks the advisor for narrative insights over it. Advisor failure degrades
// to the summary alone — the ledger never blocks on the advisory service.
func (s *appService) AnalyzeSalesTrends(ctx context.Context) (*TrendAnalysisResult, error) {
	sales, err := s.sales.GetSales(ctx)
	if err != nil {
		return nil, err
	}

	if len(sales) == 0 {
		return &TrendAnalysisResult{
			Summary: core.SummarizeSales(nil, s.trendCfg),
			Report: &core.TrendReport{
				PopularProducts: []core.PopularProductInsight{},
				SalesPeaks:      []core.SalesPeakInsight{},
				SlowMovingItems: []core.SlowMovingItemInsight{},
				OverallInsights: "No sales data available to analyze. Start by adding some sales records.",
			},
		}, nil
	}

	history := salesHistory(sales)
	summary := core.SummarizeSales(history, s.trendCfg)

	report, err := s.advisor.AnalyzeSalesTrends(ctx, history, summary)
	if err != nil {
		var advErr *core.AdvisoryError
		if errors.As(err, &advErr) {
			return &TrendAnalysisResult{
				Summary:  summary,
				Degraded: true,
				Warning:  "Trend insights are unavailable right now; showing computed volume summary only.",
			}, nil
		}
		return nil, err
	}

	return &TrendAnalysisResult{Summary: summary, Report: report}, nil
}

// SuggestReorders asks the advisor for reorder quantities; on advisor failure
// it falls back to the local coverage heuristic.
func (s *appService) SuggestReorders(ctx context.Context) (*ReorderAdviceResult, error) {
	levels, err := s.ledger.StockLevels(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := s.sales.GetSales(ctx)
	if err != nil {
		return nil, err
	}

	snapshots := make([]core.StockSnapshot, len(levels))
	for i, lv := range levels {
		snapshots[i] = core.StockSnapshot{
			ID:        lv.StockID,
			Name:      lv.StockName,
			Type:      string(lv.Type),
			CurrentKg: lv.CurrentKg.InexactFloat64(),
		}
	}
	records := saleRecords(sales)

	advice, err := s.advisor.SuggestReorders(ctx, snapshots, records)
	if err != nil {
		var advErr *core.AdvisoryError
		if errors.As(err, &advErr) {
			suggestions := core.SuggestReorders(levels, records, core.ReorderConfig{})
			return &ReorderAdviceResult{
				Suggestions: suggestions,
				Source:      "heuristic",
				Degraded:    true,
				Warning:     "Reorder advice is unavailable right now; showing coverage-based suggestions instead.",
			}, nil
		}
		return nil, err
	}

	return &ReorderAdviceResult{Suggestions: advice.Suggestions, Source: "advisor"}, nil
}

// ── Identity ──────────────────────────────────────────────────────────────────

// AuthenticateAdmin checks credentials against the allow-list of one.
func (s *appService) AuthenticateAdmin(ctx context.Context, email, password string) (*AdminSession, error) {
	if s.admin.Email == "" || s.admin.PasswordSHA256 == "" {
		return nil, fmt.Errorf("admin identity is not configured")
	}
	if !strings.EqualFold(strings.TrimSpace(email), s.admin.Email) {
		return nil, fmt.Errorf("unknown identity")
	}

	sum := sha256.Sum256([]byte(password))
	supplied := hex.EncodeToString(sum[:])
	if subtle.ConstantTimeCompare([]byte(supplied), []byte(strings.ToLower(s.admin.PasswordSHA256))) != 1 {
		return nil, fmt.Errorf("invalid credentials")
	}
	return &AdminSession{Email: s.admin.Email}, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// salesHistory converts the sales log (newest first) into the chronological
// volume sequence the summarizer and advisor expect.
func salesHistory(sales []core.Sale) []core.SaleVolume {
	history := make([]core.SaleVolume, len(sales))
	for i, sale := range sales {
		history[i] = core.SaleVolume{Date: sale.Date, StockName: sale.StockName, Kg: sale.Kg}
	}
	sort.SliceStable(history, func(i, j int) bool { return history[i].Date < history[j].Date })
	return history
}

func saleRecords(sales []core.Sale) []core.SaleRecord {
	records := make([]core.SaleRecord, len(sales))
	for i, sale := range sales {
		records[i] = core.SaleRecord{
			StockID: sale.StockID,
			Kg:      sale.Kg.InexactFloat64(),
			Date:    sale.Date,
		}
	}
	return records
}
