package core

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ReorderConfig tunes the local reorder heuristic.
type ReorderConfig struct {
	// CoverageWeeks is how many weeks of average consumption the on-hand
	// stock should cover. Zero means the default of 3.
	CoverageWeeks int
	// LookbackWeeks is the window over which average weekly consumption is
	// measured. Zero means the default of 8.
	LookbackWeeks int
	// Now anchors the lookback window; the zero value means time.Now().
	Now time.Time
}

func (c ReorderConfig) coverageWeeks() int {
	if c.CoverageWeeks > 0 {
		return c.CoverageWeeks
	}
	return 3
}

func (c ReorderConfig) lookbackWeeks() int {
	if c.LookbackWeeks > 0 {
		return c.LookbackWeeks
	}
	return 8
}

func (c ReorderConfig) now() time.Time {
	if c.Now.IsZero() {
		return time.Now()
	}
	return c.Now
}

// SuggestReorders is the non-AI reorder heuristic: for each stock item it
// compares on-hand kg against the target coverage (average weekly consumption
// over the lookback window × coverage weeks) and suggests the shortfall.
// Items with no sales inside the window produce no suggestion — there is no
// demand signal to size one from. Pure function; used as the fallback when
// the advisory service is unavailable.
func SuggestReorders(levels []StockLevel, recentSales []SaleRecord, cfg ReorderConfig) []ReorderSuggestion {
	cutoff := cfg.now().AddDate(0, 0, -7*cfg.lookbackWeeks())

	soldKg := make(map[int]decimal.Decimal)
	for _, sr := range recentSales {
		d, err := time.Parse("2006-01-02", sr.Date)
		if err != nil || d.Before(cutoff) {
			continue
		}
		soldKg[sr.StockID] = soldKg[sr.StockID].Add(decimal.NewFromFloat(sr.Kg))
	}

	weeks := decimal.NewFromInt(int64(cfg.lookbackWeeks()))
	coverage := decimal.NewFromInt(int64(cfg.coverageWeeks()))

	var suggestions []ReorderSuggestion
	for _, lv := range levels {
		sold, ok := soldKg[lv.StockID]
		if !ok || !sold.IsPositive() {
			continue
		}
		weeklyAvg := sold.Div(weeks)
		target := weeklyAvg.Mul(coverage)
		if lv.CurrentKg.GreaterThanOrEqual(target) {
			continue
		}
		shortfall := target.Sub(lv.CurrentKg)
		suggestions = append(suggestions, ReorderSuggestion{
			StockID:     lv.StockID,
			StockName:   lv.StockName,
			SuggestedKg: shortfall.Round(2).InexactFloat64(),
			Reasoning: fmt.Sprintf(
				"Selling ~%s kg/week over the last %d weeks; on-hand %s kg covers less than %d weeks of demand.",
				weeklyAvg.Round(2), cfg.lookbackWeeks(), lv.CurrentKg.Round(2), cfg.coverageWeeks()),
		})
	}
	return suggestions
}
