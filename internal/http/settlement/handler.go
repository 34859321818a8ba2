package settlement

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

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
	r.Post("/", h.settle)
	r.Get("/{paymentID}/entries", h.entries)
}

type settleRequest struct {
	PaymentID  uuid.UUID       `json:"payment_id"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   ledger.Currency `json:"currency"`
	Kind       ledger.Kind     `json:"kind"`
	ShopID     *uuid.UUID      `json:"shop_id,omitempty"`
	OrderID    *uuid.UUID      `json:"order_id,omitempty"`
	GatewayRef string          `json:"gateway_ref,omitempty"`
	TxRef      string          `json:"tx_ref,omitempty"`
	Narration  string          `json:"narration,omitempty"`
}

func (req settleRequest) toPayment() *ledger.Payment {
	return &ledger.Payment{
		ID:         req.PaymentID,
		Amount:     req.Amount,
		Currency:   req.Currency,
		Kind:       req.Kind,
		ShopID:     req.ShopID,
		OrderID:    req.OrderID,
		GatewayRef: req.GatewayRef,
		TxRef:      req.TxRef,
		Narration:  req.Narration,
	}
}

func (h *Handler) settle(w http.ResponseWriter, r *http.Request) {
	var req settleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.PaymentID == uuid.Nil {
		http.Error(w, "payment_id is required", http.StatusBadRequest)
		return
	}

	payment := req.toPayment()

	result, err := h.svc.Settle(r.Context(), payment)
	if err != nil {
		writeSettleError(w, payment, err)
		return
	}

	status := http.StatusCreated
	if result.Outcome == settlement.OutcomeAlreadySettled {
		status = http.StatusOK
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(toResultResponse(result)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// writeSettleError maps the settlement error taxonomy onto the HTTP edge:
// 4xx for conditions the gateway must not blindly retry, 504 for the
// retryable timeout.
func writeSettleError(w http.ResponseWriter, payment *ledger.Payment, err error) {
	slog.Error("settlement failed",
		"payment_id", payment.ID,
		"outcome", settlement.OutcomeOf(err),
		"error", err,
	)

	switch {
	case errors.Is(err, ledger.ErrInvalidPayment), errors.Is(err, ledger.ErrUnsupportedCurrency):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, ledger.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ledger.ErrNoRiderAvailable), errors.Is(err, ledger.ErrNoRiderAssigned):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ledger.ErrTimeout):
		http.Error(w, err.Error(), http.StatusGatewayTimeout)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) entries(w http.ResponseWriter, r *http.Request) {
	paymentID, err := uuid.Parse(chi.URLParam(r, "paymentID"))
	if err != nil {
		http.Error(w, "invalid payment id", http.StatusBadRequest)
		return
	}

	entries, err := h.svc.Entries(r.Context(), paymentID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toEntryResponseList(entries)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
