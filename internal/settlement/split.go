package settlement

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// Shares are the configured split fractions. Each pair must sum to exactly 1
// so the two halves of a split cannot drift apart; Validate runs at startup.
type Shares struct {
	PlatformSale     decimal.Decimal
	MerchantSale     decimal.Decimal
	PlatformDelivery decimal.Decimal
	RiderDelivery    decimal.Decimal
}

func (s Shares) Validate() error {
	for name, share := range map[string]decimal.Decimal{
		"platform sale":     s.PlatformSale,
		"merchant sale":     s.MerchantSale,
		"platform delivery": s.PlatformDelivery,
		"rider delivery":    s.RiderDelivery,
	} {
		if share.IsNegative() || share.GreaterThan(one) {
			return fmt.Errorf("%s share %s outside [0,1]", name, share)
		}
	}

	if sum := s.PlatformSale.Add(s.MerchantSale); !sum.Equal(one) {
		return fmt.Errorf("sale shares sum to %s, want 1", sum)
	}

	if sum := s.PlatformDelivery.Add(s.RiderDelivery); !sum.Equal(one) {
		return fmt.Errorf("delivery shares sum to %s, want 1", sum)
	}

	return nil
}

// splitPair divides amount between two shares, rounding each leg half-up to
// the currency's minor unit exactly once. Any rounding residual lands on the
// first (platform) leg so the pair always reconciles to the original amount.
func splitPair(amount, firstShare, secondShare decimal.Decimal, minorUnits int32) (decimal.Decimal, decimal.Decimal) {
	// decimal.Round is half away from zero, which is half-up for the
	// strictly positive amounts the domain allows.
	first := amount.Mul(firstShare).Round(minorUnits)
	second := amount.Mul(secondShare).Round(minorUnits)

	if residual := amount.Sub(first).Sub(second); !residual.IsZero() {
		first = first.Add(residual)
	}

	return first, second
}
