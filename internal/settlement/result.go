package settlement

import (
	"errors"

	"github.com/jumga/ledger/internal/ledger"
)

// Outcome is the reported disposition of a settlement attempt.
type Outcome string

const (
	OutcomeApplied             Outcome = "applied"
	OutcomeAlreadySettled      Outcome = "already_settled"
	OutcomeNoRiderAvailable    Outcome = "no_rider_available"
	OutcomeNoRiderAssigned     Outcome = "no_rider_assigned"
	OutcomeUnsupportedCurrency Outcome = "unsupported_currency"
	OutcomeInvalidPayment      Outcome = "invalid_payment"
	OutcomeNotFound            Outcome = "not_found"
	OutcomeTimeout             Outcome = "timeout"
	OutcomeFailed              Outcome = "failed"
)

// Result is returned for the two non-error dispositions. Entries is populated
// only for OutcomeApplied.
type Result struct {
	Outcome Outcome
	Entries []*ledger.Entry
}

// OutcomeOf folds a Settle error into the outcome taxonomy, for audit logs
// and callers that report dispositions rather than errors.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeApplied
	case errors.Is(err, ledger.ErrAlreadySettled):
		return OutcomeAlreadySettled
	case errors.Is(err, ledger.ErrNoRiderAvailable):
		return OutcomeNoRiderAvailable
	case errors.Is(err, ledger.ErrNoRiderAssigned):
		return OutcomeNoRiderAssigned
	case errors.Is(err, ledger.ErrUnsupportedCurrency):
		return OutcomeUnsupportedCurrency
	case errors.Is(err, ledger.ErrInvalidPayment):
		return OutcomeInvalidPayment
	case errors.Is(err, ledger.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, ledger.ErrTimeout):
		return OutcomeTimeout
	default:
		return OutcomeFailed
	}
}
