package account

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jumga/ledger/internal/ledger"
	"github.com/jumga/ledger/internal/settlement"
)

type Handler struct {
	svc *settlement.Service
}

func NewHandler(svc *settlement.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{principalID}/balance", h.balance)
}

type balanceResponse struct {
	PrincipalID uuid.UUID       `json:"principal_id"`
	Balance     string          `json:"balance"`
	Currency    ledger.Currency `json:"currency"`
}

func (h *Handler) balance(w http.ResponseWriter, r *http.Request) {
	principalID, err := uuid.Parse(chi.URLParam(r, "principalID"))
	if err != nil {
		http.Error(w, "invalid principal id", http.StatusBadRequest)
		return
	}

	balance, currency, err := h.svc.Balance(r.Context(), principalID)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			http.Error(w, "account not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	resp := balanceResponse{
		PrincipalID: principalID,
		Balance:     balance.StringFixed(currency.MinorUnits()),
		Currency:    currency,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
