package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	webAdapter "trade-ledger/internal/adapters/web"
	"trade-ledger/internal/ai"
	"trade-ledger/internal/app"
	"trade-ledger/internal/core"
	"trade-ledger/internal/db"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	stockService := core.NewStockService(pool)
	agentService := core.NewAgentService(pool)
	pricing := core.NewPricingResolver(pool)
	purchaseService := core.NewPurchaseService(pool)
	saleService := core.NewSaleService(pool, pricing)
	ledgerService := core.NewLedgerService(pool)

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Println("Warning: OPENAI_API_KEY is not set — advisory endpoints will degrade to local computations")
	}
	advisor := ai.NewAdvisor(apiKey)

	trendCfg := core.TrendConfig{Granularity: core.PeriodGranularity(os.Getenv("TREND_GRANULARITY"))}
	if ratio := os.Getenv("TREND_PEAK_RATIO"); ratio != "" {
		if d, err := decimal.NewFromString(ratio); err == nil && d.IsPositive() {
			trendCfg.PeakRatio = d
		}
	}

	admin := app.AdminConfig{
		Email:          os.Getenv("ADMIN_EMAIL"),
		PasswordSHA256: os.Getenv("ADMIN_PASSWORD_SHA256"),
	}
	if admin.Email == "" {
		log.Println("Warning: ADMIN_EMAIL is not set — login is disabled")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	requestTimeout := 15 * time.Second
	if t := os.Getenv("REQUEST_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			requestTimeout = d
		}
	}

	svc := app.NewAppService(stockService, agentService, purchaseService, saleService,
		pricing, ledgerService, advisor, trendCfg, admin)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	handler := webAdapter.NewHandler(svc, allowedOrigins, jwtSecret, requestTimeout)

	log.Printf("server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
