package core

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// PeriodGranularity selects the calendar bucket used for peak detection.
type PeriodGranularity string

const (
	PeriodMonth   PeriodGranularity = "month"
	PeriodQuarter PeriodGranularity = "quarter"
)

// SaleVolume is one sales history entry fed to the summarizer: date, item,
// and kilograms sold. No currency fields — the summarizer aggregates volume
// only.
type SaleVolume struct {
	Date      string          `json:"date"` // YYYY-MM-DD
	StockName string          `json:"stock_name"`
	Kg        decimal.Decimal `json:"kg"`
}

// TrendConfig carries the thresholds the summarizer needs. The reference
// behavior left these judgments to a text-generation model, so they are
// explicit configuration here.
type TrendConfig struct {
	// Granularity buckets sales by calendar month (default) or quarter.
	Granularity PeriodGranularity
	// PeakRatio flags a bucket whose volume exceeds the mean bucket volume
	// by this factor. Zero means the default of 1.5.
	PeakRatio decimal.Decimal
}

var defaultPeakRatio = decimal.NewFromFloat(1.5)

func (c TrendConfig) granularity() PeriodGranularity {
	if c.Granularity == PeriodQuarter {
		return PeriodQuarter
	}
	return PeriodMonth
}

func (c TrendConfig) peakRatio() decimal.Decimal {
	if c.PeakRatio.IsPositive() {
		return c.PeakRatio
	}
	return defaultPeakRatio
}

// ProductVolume is the total kg sold of one stock item.
type ProductVolume struct {
	StockName   string          `json:"stock_name"`
	TotalKgSold decimal.Decimal `json:"total_kg_sold"`
}

// PeriodVolume is the total kg sold in one calendar bucket.
type PeriodVolume struct {
	DateRange   string          `json:"date_range"` // e.g. "January 2026", "Q4 2025"
	TotalKgSold decimal.Decimal `json:"total_kg_sold"`
}

// TrendSummary is the deterministic volume summary handed to the advisory
// service. PopularProducts is ranked descending by volume and SlowMovingItems
// ascending; both contain every product group — consumers decide how many to
// show. SalesPeaks lists only the buckets that cleared the peak threshold, in
// chronological order.
type TrendSummary struct {
	PopularProducts []ProductVolume `json:"popular_products"`
	SalesPeaks      []PeriodVolume  `json:"sales_peaks"`
	SlowMovingItems []ProductVolume `json:"slow_moving_items"`
}

// SummarizeSales buckets a sales history by item and by calendar period.
// It is a pure function: identical input and config produce identical output.
// Entries with unparseable dates are skipped from period bucketing but still
// count toward product totals.
func SummarizeSales(history []SaleVolume, cfg TrendConfig) TrendSummary {
	byProduct := make(map[string]decimal.Decimal)
	byPeriod := make(map[string]decimal.Decimal)
	periodOrder := make(map[string]time.Time)

	for _, sv := range history {
		byProduct[sv.StockName] = byProduct[sv.StockName].Add(sv.Kg)

		d, err := time.Parse("2006-01-02", sv.Date)
		if err != nil {
			continue
		}
		label, start := periodBucket(d, cfg.granularity())
		byPeriod[label] = byPeriod[label].Add(sv.Kg)
		periodOrder[label] = start
	}

	products := make([]ProductVolume, 0, len(byProduct))
	for name, kg := range byProduct {
		products = append(products, ProductVolume{StockName: name, TotalKgSold: kg})
	}
	// Descending by volume; ties resolve by name so the ranking is stable.
	sort.Slice(products, func(i, j int) bool {
		if !products[i].TotalKgSold.Equal(products[j].TotalKgSold) {
			return products[i].TotalKgSold.GreaterThan(products[j].TotalKgSold)
		}
		return products[i].StockName < products[j].StockName
	})

	slow := make([]ProductVolume, len(products))
	for i, p := range products {
		slow[len(products)-1-i] = p
	}

	// Slices are always non-nil so the summary serializes with empty arrays,
	// never null, matching the list endpoints.
	summary := TrendSummary{
		PopularProducts: products,
		SalesPeaks:      []PeriodVolume{},
		SlowMovingItems: slow,
	}

	if len(byPeriod) == 0 {
		return summary
	}

	var total decimal.Decimal
	for _, kg := range byPeriod {
		total = total.Add(kg)
	}
	mean := total.Div(decimal.NewFromInt(int64(len(byPeriod))))
	threshold := mean.Mul(cfg.peakRatio())

	peaks := make([]PeriodVolume, 0)
	for label, kg := range byPeriod {
		if kg.GreaterThan(threshold) {
			peaks = append(peaks, PeriodVolume{DateRange: label, TotalKgSold: kg})
		}
	}
	sort.Slice(peaks, func(i, j int) bool {
		return periodOrder[peaks[i].DateRange].Before(periodOrder[peaks[j].DateRange])
	})
	summary.SalesPeaks = peaks

	return summary
}

// periodBucket maps a date to its bucket label and the bucket's start time
// (used for chronological sorting).
func periodBucket(d time.Time, g PeriodGranularity) (string, time.Time) {
	if g == PeriodQuarter {
		q := (int(d.Month())-1)/3 + 1
		start := time.Date(d.Year(), time.Month((q-1)*3+1), 1, 0, 0, 0, 0, time.UTC)
		return fmt.Sprintf("Q%d %d", q, d.Year()), start
	}
	start := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	return fmt.Sprintf("%s %d", d.Month().String(), d.Year()), start
}
