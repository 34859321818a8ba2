package settlement

import (
	"time"

	"github.com/google/uuid"

	"github.com/jumga/ledger/internal/ledger"
	"github.com/jumga/ledger/internal/settlement"
)

type resultResponse struct {
	Outcome settlement.Outcome `json:"outcome"`
	Entries []entryResponse    `json:"entries,omitempty"`
}

type entryResponse struct {
	ID        uuid.UUID        `json:"id"`
	Reference string           `json:"reference"`
	PaymentID uuid.UUID        `json:"payment_id"`
	Leg       int              `json:"leg"`
	AccountID uuid.UUID        `json:"account_id"`
	Direction ledger.Direction `json:"direction"`
	Amount    string           `json:"amount"`
	Currency  ledger.Currency  `json:"currency"`
	Narration string           `json:"narration"`
	CreatedAt time.Time        `json:"created_at"`
}

func toResultResponse(result *settlement.Result) resultResponse {
	return resultResponse{
		Outcome: result.Outcome,
		Entries: toEntryResponseList(result.Entries),
	}
}

func toEntryResponse(entry *ledger.Entry) entryResponse {
	return entryResponse{
		ID:        entry.ID,
		Reference: entry.Reference,
		PaymentID: entry.PaymentID,
		Leg:       entry.Leg,
		AccountID: entry.AccountID,
		Direction: entry.Direction,
		// Fixed to the currency's minor unit; Decimal.String would trim
		// trailing zeros on the wire.
		Amount:    entry.Amount.StringFixed(entry.Currency.MinorUnits()),
		Currency:  entry.Currency,
		Narration: entry.Narration,
		CreatedAt: entry.CreatedAt,
	}
}

func toEntryResponseList(entries []*ledger.Entry) []entryResponse {
	if len(entries) == 0 {
		return nil
	}

	resp := make([]entryResponse, len(entries))
	for i, entry := range entries {
		resp[i] = toEntryResponse(entry)
	}

	return resp
}
