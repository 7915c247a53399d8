package web

import "net/http"

// analyzeTrends handles GET /api/analysis/trends. The response always carries
// the locally computed volume summary; when the advisory service is down the
// narrative is absent and the payload flags itself as degraded.
func (h *Handler) analyzeTrends(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.AnalyzeSalesTrends(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// reorderAdvice handles GET /api/analysis/reorder. Advisor failure degrades
// to the local coverage heuristic rather than an error.
func (h *Handler) reorderAdvice(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.SuggestReorders(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result)
}
