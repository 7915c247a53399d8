package web

import (
	"net/http"

	"trade-ledger/internal/core"
)

// listStocks handles GET /api/stocks.
func (h *Handler) listStocks(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListStocks(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if items == nil {
		items = []core.StockItem{}
	}
	writeJSON(w, items)
}

// createStock handles POST /api/stocks. Body: { name, type }.
func (h *Handler) createStock(w http.ResponseWriter, r *http.Request) {
	var input core.StockItemInput
	if !decodeJSON(w, r, &input) {
		return
	}

	item, err := h.svc.CreateStock(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, item)
}

// updateStock handles PUT /api/stocks/{id}.
func (h *Handler) updateStock(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var input core.StockItemInput
	if !decodeJSON(w, r, &input) {
		return
	}

	item, err := h.svc.UpdateStock(r.Context(), id, input)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, item)
}

// deleteStock handles DELETE /api/stocks/{id}.
func (h *Handler) deleteStock(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteStock(r.Context(), id); err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
