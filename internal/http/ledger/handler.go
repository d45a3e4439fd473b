package ledger

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Urigo/accounter-ledger/internal/ledger"
)

type Handler struct {
	svc *ledger.Service
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/charges/{id}/ledger", h.compute)
	r.Post("/ledger/batch", h.computeBatch)
}

func (h *Handler) compute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid charge id", http.StatusBadRequest)
		return
	}

	res := h.svc.ComputeLedger(r.Context(), id)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResultResponse(res)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type batchRequest struct {
	ChargeIDs []string `json:"chargeIds"`
}

func (h *Handler) computeBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ids := make([]uuid.UUID, len(req.ChargeIDs))

	for i, raw := range req.ChargeIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, "invalid charge id: "+raw, http.StatusBadRequest)
			return
		}

		ids[i] = id
	}

	results := h.svc.ComputeLedgerMany(r.Context(), ids)

	responses := make([]resultResponse, len(results))
	for i, res := range results {
		responses[i] = toResultResponse(res)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(responses); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
