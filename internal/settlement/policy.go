package settlement

import "github.com/jumga/ledger/internal/ledger"

// RiderPolicy picks which unassigned rider a newly approved shop is bound to.
// Candidates arrive in the store's deterministic order (earliest-registered
// first).
type RiderPolicy interface {
	Pick(riders []ledger.Rider) (ledger.Rider, error)
}

// FirstAvailable assigns the longest-waiting unassigned rider.
type FirstAvailable struct{}

func (FirstAvailable) Pick(riders []ledger.Rider) (ledger.Rider, error) {
	if len(riders) == 0 {
		return ledger.Rider{}, ledger.ErrNoRiderAvailable
	}

	return riders[0], nil
}
