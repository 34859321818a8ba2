package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Currency is one of the closed set of currencies the platform settles in.
type Currency string

const (
	NGN Currency = "NGN"
	GHS Currency = "GHS"
	KES Currency = "KES"
	GBP Currency = "GBP"
)

// Supported reports whether the currency is in the settleable set.
func (c Currency) Supported() bool {
	switch c {
	case NGN, GHS, KES, GBP:
		return true
	}

	return false
}

// MinorUnits returns the number of decimal places of the currency's minor
// unit. All supported currencies use two, but rounding always goes through
// here so adding a zero-decimal currency cannot silently change it.
func (c Currency) MinorUnits() int32 {
	return 2
}

// Kind distinguishes what a payment settles.
type Kind string

const (
	// KindApproval is a merchant paying to activate a shop.
	KindApproval Kind = "approval"
	// KindSale is a customer paying for an order.
	KindSale Kind = "sale"
)

// Payment is one confirmed inbound payment event. It is created by the
// payment-gateway collaborator and immutable afterwards; the settlement
// engine only ever reads it.
type Payment struct {
	ID         uuid.UUID
	Amount     decimal.Decimal
	Currency   Currency
	Kind       Kind
	ShopID     *uuid.UUID // required for approval payments
	OrderID    *uuid.UUID // required for sale payments
	GatewayRef string     // the gateway's payment reference
	TxRef      string     // our transaction reference handed to the gateway
	Narration  string
	CreatedAt  time.Time
}

// Validate checks the payment's structural invariants before any write is
// attempted.
func (p *Payment) Validate() error {
	if !p.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidPayment, p.Amount)
	}

	if !p.Currency.Supported() {
		return fmt.Errorf("%w: %q", ErrUnsupportedCurrency, p.Currency)
	}

	switch p.Kind {
	case KindApproval:
		if p.ShopID == nil {
			return fmt.Errorf("%w: approval payment needs a shop reference", ErrInvalidPayment)
		}
	case KindSale:
		if p.OrderID == nil {
			return fmt.Errorf("%w: sale payment needs an order reference", ErrInvalidPayment)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidPayment, p.Kind)
	}

	return nil
}

// Direction of a ledger entry relative to its beneficiary account.
type Direction string

const (
	Credit Direction = "credit"
	Debit  Direction = "debit"
)

// Entry is one append-only ledger record attributed to a beneficiary
// account. Entries are never mutated or deleted; corrections are new
// offsetting entries.
type Entry struct {
	ID        uuid.UUID
	Reference string // opaque, collision-resistant
	PaymentID uuid.UUID
	Leg       int // position within the payment's settlement, unique per payment
	AccountID uuid.UUID
	Direction Direction
	Amount    decimal.Decimal
	Currency  Currency
	Narration string
	CreatedAt time.Time
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStanding    OrderStatus = "standing"
	OrderCancelled   OrderStatus = "cancelled"
	OrderPaymentMade OrderStatus = "payment_made"
	OrderDelivered   OrderStatus = "delivered"
)

// OrderItem is a line item with the unit price captured at order time.
type OrderItem struct {
	ProductID uuid.UUID
	Quantity  int64
	UnitPrice decimal.Decimal
}

// Order is a customer purchase against one shop. The settlement engine only
// ever flips it to payment_made/paid; creation and the terminal states belong
// to the order-management collaborator.
type Order struct {
	ID          uuid.UUID
	ShopID      uuid.UUID
	Status      OrderStatus
	Paid        bool
	DeliveryFee decimal.Decimal
	Items       []OrderItem
	Shop        *Shop // loaded via JOIN for settlement
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// TotalCost is the sum of line items plus the delivery fee.
func (o *Order) TotalCost() decimal.Decimal {
	total := o.DeliveryFee
	for _, item := range o.Items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity)))
	}

	return total
}

// Shop is a merchant storefront. MerchantID and RiderID are the principals
// credited on sale settlements.
type Shop struct {
	ID          uuid.UUID
	MerchantID  uuid.UUID
	RiderID     *uuid.UUID
	Name        string
	DeliveryFee decimal.Decimal
	Active      bool
}

// Rider is a delivery rider eligible for shop assignment.
type Rider struct {
	ID   uuid.UUID
	Name string
}
