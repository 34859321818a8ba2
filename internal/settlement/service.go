package settlement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jumga/ledger/internal/ledger"
)

// Narrations attached to the ledger entries each settlement produces.
const (
	NarrationShopApproval = "Earnings on Shop Approval"
	NarrationSales        = "Earnings on Sales"
	NarrationDelivery     = "Earnings on Delivery"
)

const defaultTimeout = 10 * time.Second

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=settlement
type Repository interface {
	// BeginSettlement opens the atomic scope for one payment. Settlements of
	// the same payment id are serialized behind it; different payments run
	// concurrently.
	BeginSettlement(ctx context.Context, paymentID uuid.UUID) (Tx, error)

	// Audit reads, outside any transaction scope.
	EntriesForPayment(ctx context.Context, paymentID uuid.UUID) ([]*ledger.Entry, error)
	AccountBalance(ctx context.Context, principalID uuid.UUID) (decimal.Decimal, ledger.Currency, error)
}

// Tx is the scoped settlement transaction. Rollback after Commit is a no-op,
// so callers defer Rollback and commit explicitly.
type Tx interface {
	HasEntriesForPayment(ctx context.Context, paymentID uuid.UUID) (bool, error)
	InsertEntry(ctx context.Context, entry *ledger.Entry) error
	CreditAccount(ctx context.Context, principalID uuid.UUID, amount decimal.Decimal, currency ledger.Currency) error
	GetOrderForUpdate(ctx context.Context, orderID uuid.UUID) (*ledger.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status ledger.OrderStatus, paid bool) error
	ActivateShop(ctx context.Context, shopID, riderID uuid.UUID) error
	ListUnassignedRiders(ctx context.Context) ([]ledger.Rider, error)
	Commit() error
	Rollback() error
}

// Config carries the engine's injected policy knobs. PlatformAccountID is the
// principal credited with every platform share.
type Config struct {
	Shares            Shares
	PlatformAccountID uuid.UUID
	Policy            RiderPolicy // defaults to FirstAvailable
	Timeout           time.Duration
}

type Service struct {
	repo              Repository
	shares            Shares
	platformAccountID uuid.UUID
	policy            RiderPolicy
	timeout           time.Duration
}

func NewService(repo Repository, cfg Config) (*Service, error) {
	if err := cfg.Shares.Validate(); err != nil {
		return nil, err
	}

	if cfg.PlatformAccountID == uuid.Nil {
		return nil, errors.New("platform account id is required")
	}

	policy := cfg.Policy
	if policy == nil {
		policy = FirstAvailable{}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Service{
		repo:              repo,
		shares:            cfg.Shares,
		platformAccountID: cfg.PlatformAccountID,
		policy:            policy,
		timeout:           timeout,
	}, nil
}

// Settle applies the full settlement effect of one confirmed payment as a
// single atomic unit, at most once per payment id. Re-delivery of an already
// settled payment yields OutcomeAlreadySettled with no further effect.
func (s *Service) Settle(ctx context.Context, payment *ledger.Payment) (*Result, error) {
	if err := payment.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	stx, err := s.repo.BeginSettlement(ctx, payment.ID)
	if err != nil {
		return nil, s.mapErr(ctx, fmt.Errorf("begin settlement: %w", err))
	}
	defer stx.Rollback()

	settled, err := stx.HasEntriesForPayment(ctx, payment.ID)
	if err != nil {
		return nil, s.mapErr(ctx, fmt.Errorf("checking prior settlement: %w", err))
	}

	if settled {
		return &Result{Outcome: OutcomeAlreadySettled}, nil
	}

	var entries []*ledger.Entry

	switch payment.Kind {
	case ledger.KindApproval:
		entries, err = s.applyApproval(ctx, stx, payment)
	case ledger.KindSale:
		entries, err = s.applySale(ctx, stx, payment)
	}

	if err != nil {
		// A concurrent settlement racing past the entries check trips the
		// store's uniqueness constraint; collapse it into the expected
		// outcome instead of surfacing it as a fault.
		if errors.Is(err, ledger.ErrAlreadySettled) {
			return &Result{Outcome: OutcomeAlreadySettled}, nil
		}

		return nil, s.mapErr(ctx, err)
	}

	if err := stx.Commit(); err != nil {
		return nil, s.mapErr(ctx, fmt.Errorf("committing settlement: %w", err))
	}

	return &Result{Outcome: OutcomeApplied, Entries: entries}, nil
}

// Entries returns the committed ledger entries for a payment, for audit.
func (s *Service) Entries(ctx context.Context, paymentID uuid.UUID) ([]*ledger.Entry, error) {
	return s.repo.EntriesForPayment(ctx, paymentID)
}

// Balance returns a principal's running settled balance. Reads are not
// serialized against in-flight settlements.
func (s *Service) Balance(ctx context.Context, principalID uuid.UUID) (decimal.Decimal, ledger.Currency, error) {
	return s.repo.AccountBalance(ctx, principalID)
}

// applyApproval credits the platform with the full amount, activates the shop
// and binds it to a rider picked by the assignment policy.
func (s *Service) applyApproval(ctx context.Context, stx Tx, payment *ledger.Payment) ([]*ledger.Entry, error) {
	riders, err := stx.ListUnassignedRiders(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing unassigned riders: %w", err)
	}

	rider, err := s.policy.Pick(riders)
	if err != nil {
		return nil, err
	}

	entry := newEntry(payment, 0, s.platformAccountID, payment.Amount, NarrationShopApproval)
	if err := s.credit(ctx, stx, entry); err != nil {
		return nil, err
	}

	if err := stx.ActivateShop(ctx, *payment.ShopID, rider.ID); err != nil {
		return nil, fmt.Errorf("activating shop %s: %w", *payment.ShopID, err)
	}

	return []*ledger.Entry{entry}, nil
}

// applySale splits the payment across platform, merchant and rider and flips
// the order to paid. The rider precondition is checked before any credit so a
// shop without one yields zero writes.
func (s *Service) applySale(ctx context.Context, stx Tx, payment *ledger.Payment) ([]*ledger.Entry, error) {
	order, err := stx.GetOrderForUpdate(ctx, *payment.OrderID)
	if err != nil {
		return nil, fmt.Errorf("loading order %s: %w", *payment.OrderID, err)
	}

	shop := order.Shop
	if shop.RiderID == nil {
		return nil, fmt.Errorf("shop %s: %w", shop.ID, ledger.ErrNoRiderAssigned)
	}

	units := payment.Currency.MinorUnits()

	net := payment.Amount.Sub(shop.DeliveryFee)
	if !net.IsPositive() {
		// Splitting would credit the full delivery fee against a smaller
		// payment and mint the difference.
		return nil, fmt.Errorf("%w: amount %s does not cover delivery fee %s",
			ledger.ErrInvalidPayment, payment.Amount, shop.DeliveryFee)
	}

	platformSale, merchantSale := splitPair(net, s.shares.PlatformSale, s.shares.MerchantSale, units)
	platformDelivery, riderDelivery := splitPair(shop.DeliveryFee, s.shares.PlatformDelivery, s.shares.RiderDelivery, units)

	legs := []struct {
		account   uuid.UUID
		amount    decimal.Decimal
		narration string
	}{
		{s.platformAccountID, platformSale, NarrationSales},
		{shop.MerchantID, merchantSale, NarrationSales},
		{s.platformAccountID, platformDelivery, NarrationDelivery},
		{*shop.RiderID, riderDelivery, NarrationDelivery},
	}

	var entries []*ledger.Entry

	for i, leg := range legs {
		// A zero delivery fee produces zero-amount delivery legs; the
		// ledger only records value that moved.
		if !leg.amount.IsPositive() {
			continue
		}

		entry := newEntry(payment, i, leg.account, leg.amount, leg.narration)
		if err := s.credit(ctx, stx, entry); err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	if err := stx.UpdateOrderStatus(ctx, order.ID, ledger.OrderPaymentMade, true); err != nil {
		return nil, fmt.Errorf("updating order %s: %w", order.ID, err)
	}

	return entries, nil
}

// credit pairs the entry insert with the balance increment; the two are never
// applied separately.
func (s *Service) credit(ctx context.Context, stx Tx, entry *ledger.Entry) error {
	if err := stx.InsertEntry(ctx, entry); err != nil {
		return fmt.Errorf("inserting entry leg %d: %w", entry.Leg, err)
	}

	if err := stx.CreditAccount(ctx, entry.AccountID, entry.Amount, entry.Currency); err != nil {
		return fmt.Errorf("crediting account %s: %w", entry.AccountID, err)
	}

	return nil
}

// mapErr folds a deadline expiry into the retryable timeout error; the
// transaction has already been rolled back by the deferred Rollback.
func (s *Service) mapErr(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ledger.ErrTimeout, err)
	}

	return err
}

func newEntry(payment *ledger.Payment, leg int, accountID uuid.UUID, amount decimal.Decimal, narration string) *ledger.Entry {
	return &ledger.Entry{
		Reference: uuid.NewString(),
		PaymentID: payment.ID,
		Leg:       leg,
		AccountID: accountID,
		Direction: ledger.Credit,
		Amount:    amount,
		Currency:  payment.Currency,
		Narration: narration,
	}
}
