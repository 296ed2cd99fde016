package handlers

import (
	"net/http"

	"github.com/go-chi/chi"
)

// GetProcessed lists the committed settlement records, for operator
// reconciliation of unconfirmed or half-completed swaps.
func (h *Handler) GetProcessed(w http.ResponseWriter, r *http.Request) {
	recs, err := h.Store.FindAllProcessed()
	if err != nil {
		responseJSON(w, nil, 500)
		return
	}

	responseJSON(w, recs, 200)
}

// GetProcessedTx looks up the settlement record for one source
// transaction, the first thing an operator needs when reconciling a
// reported swap.
func (h *Handler) GetProcessedTx(w http.ResponseWriter, r *http.Request) {
	txid := chi.URLParam(r, "txid")

	rec, err := h.Store.GetProcessed(txid)
	if err != nil {
		responseJSON(w, nil, 500)
		return
	}
	if rec == nil {
		responseJSON(w, &APIResponse{
			Status:  "error",
			Message: "No settlement record for this transaction.",
		}, http.StatusNotFound)
		return
	}

	responseJSON(w, rec, 200)
}
