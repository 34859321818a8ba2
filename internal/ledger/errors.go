package ledger

import "errors"

var (
	// ErrNotFound means a referenced order, shop or account does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadySettled means ledger entries for the payment already exist.
	// It is an expected outcome under at-least-once delivery, not a fault.
	ErrAlreadySettled = errors.New("payment already settled")

	// ErrNoRiderAvailable means no unassigned rider exists for a shop
	// approval. Not retryable without operator intervention.
	ErrNoRiderAvailable = errors.New("no rider available")

	// ErrNoRiderAssigned means a sale settlement hit a shop with no bound
	// rider, so the delivery split has no beneficiary.
	ErrNoRiderAssigned = errors.New("shop has no rider assigned")

	// ErrUnsupportedCurrency means the payment currency is outside the
	// supported set. Rejected before any write.
	ErrUnsupportedCurrency = errors.New("unsupported currency")

	// ErrInvalidPayment means the payment is structurally malformed.
	ErrInvalidPayment = errors.New("invalid payment")

	// ErrConstraintViolation means the store rejected a write that breaches
	// a ledger invariant.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrTimeout means the settlement transaction exceeded its deadline and
	// was rolled back in full. Safe to retry.
	ErrTimeout = errors.New("settlement timed out")
)
