package app

import (
	"github.com/shopspring/decimal"

	"trade-ledger/internal/core"
)

// LatestRateResult is returned by LatestPurchaseRate. Available is false when
// no purchase record exists for the item — the zero rate is "no reference
// price", not a valid free price.
type LatestRateResult struct {
	StockID   int             `json:"stock_id"`
	Rate      decimal.Decimal `json:"rate"`
	Available bool            `json:"available"`
}

// TrendAnalysisResult is returned by AnalyzeSalesTrends. Summary is always
// the deterministic local computation; Report carries the advisory
// narrative and is nil when Degraded is true.
type TrendAnalysisResult struct {
	Summary  core.TrendSummary `json:"summary"`
	Report   *core.TrendReport `json:"report,omitempty"`
	Degraded bool              `json:"degraded"`
	Warning  string            `json:"warning,omitempty"`
}

// ReorderAdviceResult is returned by SuggestReorders. Source records whether
// the suggestions came from the advisory service or the local coverage
// heuristic fallback.
type ReorderAdviceResult struct {
	Suggestions []core.ReorderSuggestion `json:"suggestions"`
	Source      string                   `json:"source"` // "advisor" or "heuristic"
	Degraded    bool                     `json:"degraded"`
	Warning     string                   `json:"warning,omitempty"`
}

// AdminSession is the authenticated admin identity.
type AdminSession struct {
	Email string `json:"email"`
}
