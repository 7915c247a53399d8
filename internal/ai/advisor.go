package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"trade-ledger/internal/core"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
	"github.com/openai/openai-go/shared/constant"
)

// AdvisorService is the external generative advisory collaborator. All of its
// output is best-effort guidance: failures surface as core.AdvisoryError and
// callers fall back to locally computed results.
type AdvisorService interface {
	// SuggestReorders asks the model for reorder quantities given current
	// stock positions and recent sales. Items needing no reorder are omitted.
	SuggestReorders(ctx context.Context, currentStocks []core.StockSnapshot, recentSales []core.SaleRecord) (*core.ReorderAdvice, error)

	// AnalyzeSalesTrends asks the model for narrative insights over a sales
	// history and the deterministic volume summary computed locally.
	AnalyzeSalesTrends(ctx context.Context, history []core.SaleVolume, summary core.TrendSummary) (*core.TrendReport, error)
}

type Advisor struct {
	client *openai.Client
}

// NewAdvisor constructs an Advisor using the given OpenAI API key.
func NewAdvisor(apiKey string) *Advisor {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &Advisor{client: &client}
}

func (a *Advisor) SuggestReorders(ctx context.Context, currentStocks []core.StockSnapshot, recentSales []core.SaleRecord) (*core.ReorderAdvice, error) {
	stocksJSON, err := json.Marshal(currentStocks)
	if err != nil {
		return nil, &core.AdvisoryError{Op: "reorder advice", Err: err}
	}
	salesJSON, err := json.Marshal(recentSales)
	if err != nil {
		return nil, &core.AdvisoryError{Op: "reorder advice", Err: err}
	}

	prompt := fmt.Sprintf(`You are an expert inventory manager for a small tea and coffee business.
Analyze the current stock levels and recent sales trends to suggest optimal quantities of tea and coffee to reorder.
The goal is to maintain adequate stock without over-purchasing.

Current stock levels (JSON):
%s

Recent sales records (JSON, kg sold per stock item on a given date):
%s

Provide reorder suggestions for each stock item that needs attention. Consider a buffer
stock level for each item, typically enough to cover sales for the next 2-4 weeks based
on recent trends. For each suggestion include the stock ID, stock name, suggested
quantity in kilograms, and a brief reasoning. If a stock item does not need reordering,
do not include it. Focus on popular products and those with low current stock relative
to sales.`, stocksJSON, salesJSON)

	advice := &core.ReorderAdvice{}
	if err := a.structured(ctx, prompt, "reorder_advice",
		"Reorder suggestions for tea and coffee stock items", advice); err != nil {
		return nil, &core.AdvisoryError{Op: "reorder advice", Err: err}
	}
	return advice, nil
}

func (a *Advisor) AnalyzeSalesTrends(ctx context.Context, history []core.SaleVolume, summary core.TrendSummary) (*core.TrendReport, error) {
	historyJSON, err := json.Marshal(history)
	if err != nil {
		return nil, &core.AdvisoryError{Op: "trend analysis", Err: err}
	}
	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		return nil, &core.AdvisoryError{Op: "trend analysis", Err: err}
	}

	prompt := fmt.Sprintf(`You are an AI-powered sales analyst for a tea and coffee business.
Analyze historical sales data and provide actionable insights to optimize stock levels and purchasing decisions.

Sales data (JSON array; each entry has 'date' YYYY-MM-DD, 'stock_name', 'kg' sold):
%s

A deterministic volume summary has already been computed from this data — popular
products ranked by total kg sold, calendar periods whose volume significantly exceeded
the mean, and the lowest-volume items:
%s

Based on this, provide:
1. Popular Products: top products by total kilograms sold, each with stockName, totalKgSold, and an insight explaining its popularity or how to leverage it.
2. Sales Peaks: periods with significantly higher than average sales, each with dateRange, totalKgSold, and an insight into likely causes (seasonality, promotions) and future actions.
3. Slow-Moving Items: lowest-volume products, each with stockName, totalKgSold, and an insight suggesting how to improve sales or manage inventory.
4. Overall Insights: a general summary of trends and actionable stock/purchasing recommendations.

Keep totalKgSold figures consistent with the provided summary.`, historyJSON, summaryJSON)

	report := &core.TrendReport{}
	if err := a.structured(ctx, prompt, "sales_trend_report",
		"Narrative analysis of sales trends for a tea and coffee business", report); err != nil {
		return nil, &core.AdvisoryError{Op: "trend analysis", Err: err}
	}
	return report, nil
}

// structured sends the prompt with a JSON schema reflected from out's type and
// decodes the model's reply into out.
func (a *Advisor) structured(ctx context.Context, prompt, name, description string, out any) error {
	schemaJSON, err := json.Marshal(generateSchema(out))
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}
	var schemaMap map[string]any
	if err := json.Unmarshal(schemaJSON, &schemaMap); err != nil {
		return fmt.Errorf("failed to unmarshal schema to map: %w", err)
	}

	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(shared.ChatModelGPT4o),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: param.NewOpt(prompt),
		},
		Text: responses.ResponseTextConfigParam{
			Format: responses.ResponseFormatTextConfigUnionParam{
				OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
					Type:        constant.JSONSchema("json_schema"),
					Name:        name,
					Strict:      param.NewOpt(true),
					Schema:      schemaMap,
					Description: param.NewOpt(description),
				},
			},
		},
	}

	resp, err := a.client.Responses.New(ctx, params)
	if err != nil {
		return fmt.Errorf("openai responses error: %w", err)
	}

	content := resp.OutputText()
	if content == "" {
		return fmt.Errorf("empty response content")
	}
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return fmt.Errorf("failed to parse completion: %w", err)
	}
	return nil
}

func generateSchema(v any) interface{} {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	return reflector.Reflect(v)
}
