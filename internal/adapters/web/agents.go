package web

import (
	"net/http"

	"trade-ledger/internal/core"
)

// listAgents handles GET /api/agents.
func (h *Handler) listAgents(w http.ResponseWriter, r *http.Request) {
	agents, err := h.svc.ListAgents(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if agents == nil {
		agents = []core.Agent{}
	}
	writeJSON(w, agents)
}

// createAgent handles POST /api/agents. Body: { name, phone? }.
func (h *Handler) createAgent(w http.ResponseWriter, r *http.Request) {
	var input core.AgentInput
	if !decodeJSON(w, r, &input) {
		return
	}

	agent, err := h.svc.CreateAgent(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, agent)
}

// updateAgent handles PUT /api/agents/{id}.
func (h *Handler) updateAgent(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var input core.AgentInput
	if !decodeJSON(w, r, &input) {
		return
	}

	agent, err := h.svc.UpdateAgent(r.Context(), id, input)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, agent)
}

// deleteAgent handles DELETE /api/agents/{id}.
func (h *Handler) deleteAgent(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteAgent(r.Context(), id); err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
