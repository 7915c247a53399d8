package core

// Advisory contract types. These cross the boundary to the external
// text-generation service, so quantities are plain numbers rather than exact
// decimals: the advisory output is best-effort guidance, never ledger data.
// The jsonschema_description tags drive the structured-output schema sent to
// the model.

// StockSnapshot is one current stock position in the reorder-advice input.
type StockSnapshot struct {
	ID        int     `json:"id" jsonschema_description:"Unique identifier of the stock item"`
	Name      string  `json:"name" jsonschema_description:"Name of the stock item, e.g. 'Assam Tea'"`
	Type      string  `json:"type" jsonschema_description:"Type of the stock item: tea or coffee"`
	CurrentKg float64 `json:"currentKg" jsonschema_description:"Current on-hand quantity in kilograms"`
}

// SaleRecord is one recent sale in the reorder-advice input.
type SaleRecord struct {
	StockID int     `json:"stockId" jsonschema_description:"ID of the stock item sold"`
	Kg      float64 `json:"kg" jsonschema_description:"Quantity sold in kilograms"`
	Date    string  `json:"date" jsonschema_description:"Date of the sale in YYYY-MM-DD format"`
}

// ReorderSuggestion is one advised reorder. Items needing no reorder are
// omitted from the advice entirely.
type ReorderSuggestion struct {
	StockID     int     `json:"stockId" jsonschema_description:"ID of the stock item to reorder"`
	StockName   string  `json:"stockName" jsonschema_description:"Name of the stock item"`
	SuggestedKg float64 `json:"suggestedKg" jsonschema_description:"Suggested quantity in kilograms to reorder"`
	Reasoning   string  `json:"reasoning" jsonschema_description:"Explanation for the reorder suggestion"`
}

// ReorderAdvice is the full reorder-advice output.
type ReorderAdvice struct {
	Suggestions []ReorderSuggestion `json:"suggestions" jsonschema_description:"Reorder suggestions for stock items that need attention. Omit items that need no reorder."`
}

// PopularProductInsight is one high-volume product with its narrative.
type PopularProductInsight struct {
	StockName   string  `json:"stockName" jsonschema_description:"Name of the popular product"`
	TotalKgSold float64 `json:"totalKgSold" jsonschema_description:"Total kilograms of this product sold"`
	Insight     string  `json:"insight" jsonschema_description:"An insight or recommendation for this popular product"`
}

// SalesPeakInsight is one peak period with its narrative.
type SalesPeakInsight struct {
	DateRange   string  `json:"dateRange" jsonschema_description:"Date range of the sales peak, e.g. 'January 2026' or 'Q4 2025'"`
	TotalKgSold float64 `json:"totalKgSold" jsonschema_description:"Total kilograms sold during this peak period"`
	Insight     string  `json:"insight" jsonschema_description:"An insight into why this peak occurred or what to do about it"`
}

// SlowMovingItemInsight is one low-volume product with its narrative.
type SlowMovingItemInsight struct {
	StockName   string  `json:"stockName" jsonschema_description:"Name of the slow-moving item"`
	TotalKgSold float64 `json:"totalKgSold" jsonschema_description:"Total kilograms of this item sold over the analysis period"`
	Insight     string  `json:"insight" jsonschema_description:"A recommendation for this slow-moving item, e.g. 'Consider a discount'"`
}

// TrendReport is the full trend-analysis output.
type TrendReport struct {
	PopularProducts []PopularProductInsight `json:"popularProducts" jsonschema_description:"Popular products ranked by total kilograms sold"`
	SalesPeaks      []SalesPeakInsight      `json:"salesPeaks" jsonschema_description:"Periods with significantly higher than average sales"`
	SlowMovingItems []SlowMovingItemInsight `json:"slowMovingItems" jsonschema_description:"Products with the lowest total kilograms sold"`
	OverallInsights string                  `json:"overallInsights" jsonschema_description:"A general summary of sales trends and actionable recommendations"`
}
