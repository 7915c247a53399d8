package web

import (
	"net/http"
	"strconv"

	"trade-ledger/internal/core"
)

// listPurchases handles GET /api/purchases.
func (h *Handler) listPurchases(w http.ResponseWriter, r *http.Request) {
	purchases, err := h.svc.ListPurchases(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if purchases == nil {
		purchases = []core.Purchase{}
	}
	writeJSON(w, purchases)
}

// addPurchase handles POST /api/purchases.
// Body: { date, agent_id, stock_id, kg, bags, rate }. The total amount is
// always computed server-side; a caller-supplied value is ignored.
func (h *Handler) addPurchase(w http.ResponseWriter, r *http.Request) {
	var input core.PurchaseInput
	if !decodeJSON(w, r, &input) {
		return
	}

	purchase, err := h.svc.AddPurchase(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, purchase)
}

// listSales handles GET /api/sales.
func (h *Handler) listSales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.svc.ListSales(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if sales == nil {
		sales = []core.Sale{}
	}
	writeJSON(w, sales)
}

// addSale handles POST /api/sales.
// Body: { date, customer_type, customer_name?, stock_id, kg, bags, sale_rate }.
func (h *Handler) addSale(w http.ResponseWriter, r *http.Request) {
	var input core.SaleInput
	if !decodeJSON(w, r, &input) {
		return
	}

	sale, err := h.svc.AddSale(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, sale)
}

// latestRate handles GET /api/sales/latest-rate?stock_id=N — the reference
// purchase rate used to pre-fill a new sale entry. An absent or malformed
// stock_id means "no reference price" (rate 0, available false), not an
// error, matching the resolver's contract for unknown items.
func (h *Handler) latestRate(w http.ResponseWriter, r *http.Request) {
	stockID, _ := strconv.Atoi(r.URL.Query().Get("stock_id"))

	result, err := h.svc.LatestPurchaseRate(r.Context(), stockID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// dashboard handles GET /api/dashboard — the running totals summary.
func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.GetDashboard(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, summary)
}

// stockLevels handles GET /api/stock-levels — derived on-hand kg per item.
func (h *Handler) stockLevels(w http.ResponseWriter, r *http.Request) {
	levels, err := h.svc.GetStockLevels(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if levels == nil {
		levels = []core.StockLevel{}
	}
	writeJSON(w, levels)
}
