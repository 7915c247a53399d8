package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"trade-ledger/internal/app"

	"github.com/go-chi/chi/v5"
)

// Handler holds the ApplicationService and the chi router.
type Handler struct {
	svc       app.ApplicationService
	jwtSecret string
}

// NewHandler creates and wires the chi router with all routes.
func NewHandler(svc app.ApplicationService, allowedOrigins, jwtSecret string, requestTimeout time.Duration) http.Handler {
	h := &Handler{svc: svc, jwtSecret: jwtSecret}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))
	r.Use(RequestTimeout(requestTimeout))

	// ── Public ────────────────────────────────────────────────────────────────
	r.Get("/api/health", h.health)
	r.Group(func(r chi.Router) {
		r.Use(RequestBodyLimit(1 << 20)) // 1 MB
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/logout", h.logout)
	})

	// ── Protected API (401 JSON if unauthenticated) ───────────────────────────
	r.Group(func(r chi.Router) {
		r.Use(h.RequireAuth)
		r.Use(RequestBodyLimit(1 << 20)) // 1 MB

		r.Get("/api/auth/me", h.me)

		// Stock master
		r.Get("/api/stocks", h.listStocks)
		r.Post("/api/stocks", h.createStock)
		r.Put("/api/stocks/{id}", h.updateStock)
		r.Delete("/api/stocks/{id}", h.deleteStock)

		// Agents
		r.Get("/api/agents", h.listAgents)
		r.Post("/api/agents", h.createAgent)
		r.Put("/api/agents/{id}", h.updateAgent)
		r.Delete("/api/agents/{id}", h.deleteAgent)

		// Event log
		r.Get("/api/purchases", h.listPurchases)
		r.Post("/api/purchases", h.addPurchase)
		r.Get("/api/sales", h.listSales)
		r.Post("/api/sales", h.addSale)
		r.Get("/api/sales/latest-rate", h.latestRate)

		// Derived views
		r.Get("/api/dashboard", h.dashboard)
		r.Get("/api/stock-levels", h.stockLevels)

		// Advisory (degrades gracefully, never blocks the ledger)
		r.Get("/api/analysis/trends", h.analyzeTrends)
		r.Get("/api/analysis/reorder", h.reorderAdvice)
	})

	return r
}

// health returns service status.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Status string `json:"status"`
	}
	writeJSON(w, response{Status: "ok"})
}

// idParam extracts and parses the {id} URL parameter. Writes a 400 response
// and returns false when the parameter is not a positive integer.
func idParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		writeError(w, r, "invalid id", "BAD_REQUEST", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// decodeJSON decodes the request body into v and returns false + writes an appropriate
// error response on failure. Returns HTTP 413 when the body exceeds the size limit set
// by RequestBodyLimit middleware; HTTP 400 for all other decode errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, r, "request body too large", "REQUEST_TOO_LARGE", http.StatusRequestEntityTooLarge)
			return false
		}
		writeError(w, r, "invalid JSON body: "+err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return false
	}
	return true
}
