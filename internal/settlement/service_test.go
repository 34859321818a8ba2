package settlement_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jumga/ledger/internal/ledger"
	"github.com/jumga/ledger/internal/settlement"
)

var platformID = uuid.MustParse("11111111-1111-1111-1111-111111111111")

func testConfig() settlement.Config {
	return settlement.Config{
		Shares: settlement.Shares{
			PlatformSale:     decimal.RequireFromString("0.026"),
			MerchantSale:     decimal.RequireFromString("0.974"),
			PlatformDelivery: decimal.RequireFromString("0.20"),
			RiderDelivery:    decimal.RequireFromString("0.80"),
		},
		PlatformAccountID: platformID,
		Timeout:           5 * time.Second,
	}
}

func newEngine(t *testing.T, repo settlement.Repository) *settlement.Service {
	t.Helper()

	svc, err := settlement.NewService(repo, testConfig())
	require.NoError(t, err)

	return svc
}

// eqDec matches a decimal argument by value rather than representation.
func eqDec(s string) gomock.Matcher {
	return decimalMatcher{want: decimal.RequireFromString(s)}
}

type decimalMatcher struct {
	want decimal.Decimal
}

func (m decimalMatcher) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string {
	return "decimal " + m.want.String()
}

func approvalPayment(amount string) *ledger.Payment {
	shopID := uuid.New()

	return &ledger.Payment{
		ID:       uuid.New(),
		Amount:   decimal.RequireFromString(amount),
		Currency: ledger.NGN,
		Kind:     ledger.KindApproval,
		ShopID:   &shopID,
	}
}

func salePayment(amount string) *ledger.Payment {
	orderID := uuid.New()

	return &ledger.Payment{
		ID:       uuid.New(),
		Amount:   decimal.RequireFromString(amount),
		Currency: ledger.NGN,
		Kind:     ledger.KindSale,
		OrderID:  &orderID,
	}
}

func saleOrder(orderID uuid.UUID, deliveryFee string, riderID *uuid.UUID) *ledger.Order {
	shopID := uuid.New()

	return &ledger.Order{
		ID:          orderID,
		ShopID:      shopID,
		Status:      ledger.OrderStanding,
		DeliveryFee: decimal.RequireFromString(deliveryFee),
		Shop: &ledger.Shop{
			ID:          shopID,
			MerchantID:  uuid.New(),
			RiderID:     riderID,
			DeliveryFee: decimal.RequireFromString(deliveryFee),
		},
	}
}

func TestService_Settle_Approval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := settlement.NewMockRepository(ctrl)
	stx := settlement.NewMockTx(ctrl)
	svc := newEngine(t, repo)

	payment := approvalPayment("50.00")
	rider := ledger.Rider{ID: uuid.New(), Name: "first"}

	var inserted []*ledger.Entry

	repo.EXPECT().BeginSettlement(gomock.Any(), payment.ID).Return(stx, nil)
	stx.EXPECT().HasEntriesForPayment(gomock.Any(), payment.ID).Return(false, nil)
	stx.EXPECT().ListUnassignedRiders(gomock.Any()).
		Return([]ledger.Rider{rider, {ID: uuid.New(), Name: "second"}}, nil)
	stx.EXPECT().InsertEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *ledger.Entry) error {
			inserted = append(inserted, e)
			return nil
		})
	stx.EXPECT().CreditAccount(gomock.Any(), platformID, eqDec("50.00"), ledger.NGN).Return(nil)
	stx.EXPECT().ActivateShop(gomock.Any(), *payment.ShopID, rider.ID).Return(nil)
	stx.EXPECT().Commit().Return(nil)
	stx.EXPECT().Rollback().Return(nil)

	result, err := svc.Settle(context.Background(), payment)
	require.NoError(t, err)
	assert.Equal(t, settlement.OutcomeApplied, result.Outcome)
	require.Len(t, result.Entries, 1)

	entry := result.Entries[0]
	assert.Equal(t, payment.ID, entry.PaymentID)
	assert.Equal(t, platformID, entry.AccountID)
	assert.Equal(t, ledger.Credit, entry.Direction)
	assert.True(t, entry.Amount.Equal(decimal.RequireFromString("50.00")))
	assert.Equal(t, settlement.NarrationShopApproval, entry.Narration)
	assert.NotEmpty(t, entry.Reference)
	assert.Len(t, inserted, 1)
}

func TestService_Settle_Approval_NoRiderAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := settlement.NewMockRepository(ctrl)
	stx := settlement.NewMockTx(ctrl)
	svc := newEngine(t, repo)

	payment := approvalPayment("50.00")

	repo.EXPECT().BeginSettlement(gomock.Any(), payment.ID).Return(stx, nil)
	stx.EXPECT().HasEntriesForPayment(gomock.Any(), payment.ID).Return(false, nil)
	stx.EXPECT().ListUnassignedRiders(gomock.Any()).Return(nil, nil)
	stx.EXPECT().Rollback().Return(nil)

	result, err := svc.Settle(context.Background(), payment)
	assert.ErrorIs(t, err, ledger.ErrNoRiderAvailable)
	assert.Nil(t, result)
}

func TestService_Settle_Sale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := settlement.NewMockRepository(ctrl)
	stx := settlement.NewMockTx(ctrl)
	svc := newEngine(t, repo)

	payment := salePayment("100.00")
	riderID := uuid.New()
	order := saleOrder(*payment.OrderID, "10.00", &riderID)

	repo.EXPECT().BeginSettlement(gomock.Any(), payment.ID).Return(stx, nil)
	stx.EXPECT().HasEntriesForPayment(gomock.Any(), payment.ID).Return(false, nil)
	stx.EXPECT().GetOrderForUpdate(gomock.Any(), order.ID).Return(order, nil)
	stx.EXPECT().InsertEntry(gomock.Any(), gomock.Any()).Return(nil).Times(4)
	stx.EXPECT().CreditAccount(gomock.Any(), platformID, eqDec("2.34"), ledger.NGN).Return(nil)
	stx.EXPECT().CreditAccount(gomock.Any(), order.Shop.MerchantID, eqDec("87.66"), ledger.NGN).Return(nil)
	stx.EXPECT().CreditAccount(gomock.Any(), platformID, eqDec("2.00"), ledger.NGN).Return(nil)
	stx.EXPECT().CreditAccount(gomock.Any(), riderID, eqDec("8.00"), ledger.NGN).Return(nil)
	stx.EXPECT().UpdateOrderStatus(gomock.Any(), order.ID, ledger.OrderPaymentMade, true).Return(nil)
	stx.EXPECT().Commit().Return(nil)
	stx.EXPECT().Rollback().Return(nil)

	result, err := svc.Settle(context.Background(), payment)
	require.NoError(t, err)
	assert.Equal(t, settlement.OutcomeApplied, result.Outcome)
	require.Len(t, result.Entries, 4)

	// Money conservation: the four credits sum back to the payment amount.
	total := decimal.Zero
	for _, entry := range result.Entries {
		total = total.Add(entry.Amount)
		assert.Equal(t, ledger.Credit, entry.Direction)
		assert.Equal(t, payment.ID, entry.PaymentID)
	}

	assert.True(t, total.Equal(payment.Amount), "credited %s, paid %s", total, payment.Amount)

	assert.Equal(t, settlement.NarrationSales, result.Entries[0].Narration)
	assert.Equal(t, settlement.NarrationSales, result.Entries[1].Narration)
	assert.Equal(t, settlement.NarrationDelivery, result.Entries[2].Narration)
	assert.Equal(t, settlement.NarrationDelivery, result.Entries[3].Narration)
}

func TestService_Settle_Sale_ZeroDeliveryFee(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := settlement.NewMockRepository(ctrl)
	stx := settlement.NewMockTx(ctrl)
	svc := newEngine(t, repo)

	payment := salePayment("100.00")
	riderID := uuid.New()
	order := saleOrder(*payment.OrderID, "0.00", &riderID)

	repo.EXPECT().BeginSettlement(gomock.Any(), payment.ID).Return(stx, nil)
	stx.EXPECT().HasEntriesForPayment(gomock.Any(), payment.ID).Return(false, nil)
	stx.EXPECT().GetOrderForUpdate(gomock.Any(), order.ID).Return(order, nil)
	stx.EXPECT().InsertEntry(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	stx.EXPECT().CreditAccount(gomock.Any(), platformID, eqDec("2.60"), ledger.NGN).Return(nil)
	stx.EXPECT().CreditAccount(gomock.Any(), order.Shop.MerchantID, eqDec("97.40"), ledger.NGN).Return(nil)
	stx.EXPECT().UpdateOrderStatus(gomock.Any(), order.ID, ledger.OrderPaymentMade, true).Return(nil)
	stx.EXPECT().Commit().Return(nil)
	stx.EXPECT().Rollback().Return(nil)

	result, err := svc.Settle(context.Background(), payment)
	require.NoError(t, err)
	require.Len(t, result.Entries, 2, "zero-amount delivery legs should be dropped")
}

func TestService_Settle_Sale_AmountBelowDeliveryFee(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := settlement.NewMockRepository(ctrl)
	stx := settlement.NewMockTx(ctrl)
	svc := newEngine(t, repo)

	payment := salePayment("5.00")
	riderID := uuid.New()
	order := saleOrder(*payment.OrderID, "10.00", &riderID)

	// No InsertEntry or CreditAccount expectations: crediting the delivery
	// legs against a smaller payment would create value out of nothing.
	repo.EXPECT().BeginSettlement(gomock.Any(), payment.ID).Return(stx, nil)
	stx.EXPECT().HasEntriesForPayment(gomock.Any(), payment.ID).Return(false, nil)
	stx.EXPECT().GetOrderForUpdate(gomock.Any(), order.ID).Return(order, nil)
	stx.EXPECT().Rollback().Return(nil)

	result, err := svc.Settle(context.Background(), payment)
	assert.ErrorIs(t, err, ledger.ErrInvalidPayment)
	assert.Nil(t, result)
}

func TestService_Settle_Sale_AmountEqualsDeliveryFee(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := settlement.NewMockRepository(ctrl)
	stx := settlement.NewMockTx(ctrl)
	svc := newEngine(t, repo)

	payment := salePayment("10.00")
	riderID := uuid.New()
	order := saleOrder(*payment.OrderID, "10.00", &riderID)

	repo.EXPECT().BeginSettlement(gomock.Any(), payment.ID).Return(stx, nil)
	stx.EXPECT().HasEntriesForPayment(gomock.Any(), payment.ID).Return(false, nil)
	stx.EXPECT().GetOrderForUpdate(gomock.Any(), order.ID).Return(order, nil)
	stx.EXPECT().Rollback().Return(nil)

	result, err := svc.Settle(context.Background(), payment)
	assert.ErrorIs(t, err, ledger.ErrInvalidPayment)
	assert.Nil(t, result)
}

func TestService_Settle_Sale_NoRiderAssigned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := settlement.NewMockRepository(ctrl)
	stx := settlement.NewMockTx(ctrl)
	svc := newEngine(t, repo)

	payment := salePayment("100.00")
	order := saleOrder(*payment.OrderID, "10.00", nil)

	// No InsertEntry, CreditAccount or UpdateOrderStatus expectations: the
	// rider check must fire before any write.
	repo.EXPECT().BeginSettlement(gomock.Any(), payment.ID).Return(stx, nil)
	stx.EXPECT().HasEntriesForPayment(gomock.Any(), payment.ID).Return(false, nil)
	stx.EXPECT().GetOrderForUpdate(gomock.Any(), order.ID).Return(order, nil)
	stx.EXPECT().Rollback().Return(nil)

	result, err := svc.Settle(context.Background(), payment)
	assert.ErrorIs(t, err, ledger.ErrNoRiderAssigned)
	assert.Nil(t, result)
}

func TestService_Settle_Sale_OrderNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := settlement.NewMockRepository(ctrl)
	stx := settlement.NewMockTx(ctrl)
	svc := newEngine(t, repo)

	payment := salePayment("100.00")

	repo.EXPECT().BeginSettlement(gomock.Any(), payment.ID).Return(stx, nil)
	stx.EXPECT().HasEntriesForPayment(gomock.Any(), payment.ID).Return(false, nil)
	stx.EXPECT().GetOrderForUpdate(gomock.Any(), *payment.OrderID).
		Return(nil, fmt.Errorf("order %s: %w", *payment.OrderID, ledger.ErrNotFound))
	stx.EXPECT().Rollback().Return(nil)

	result, err := svc.Settle(context.Background(), payment)
	assert.ErrorIs(t, err, ledger.ErrNotFound)
	assert.Nil(t, result)
}

func TestService_Settle_AlreadySettled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := settlement.NewMockRepository(ctrl)
	stx := settlement.NewMockTx(ctrl)
	svc := newEngine(t, repo)

	payment := approvalPayment("50.00")

	repo.EXPECT().BeginSettlement(gomock.Any(), payment.ID).Return(stx, nil)
	stx.EXPECT().HasEntriesForPayment(gomock.Any(), payment.ID).Return(true, nil)
	stx.EXPECT().Rollback().Return(nil)

	result, err := svc.Settle(context.Background(), payment)
	require.NoError(t, err)
	assert.Equal(t, settlement.OutcomeAlreadySettled, result.Outcome)
	assert.Empty(t, result.Entries)
}

func TestService_Settle_DuplicateRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := settlement.NewMockRepository(ctrl)
	stx := settlement.NewMockTx(ctrl)
	svc := newEngine(t, repo)

	payment := approvalPayment("50.00")

	// The duplicate slipped past the entries check and hit the store's
	// uniqueness constraint instead; the caller still sees the expected
	// outcome, not an error.
	repo.EXPECT().BeginSettlement(gomock.Any(), payment.ID).Return(stx, nil)
	stx.EXPECT().HasEntriesForPayment(gomock.Any(), payment.ID).Return(false, nil)
	stx.EXPECT().ListUnassignedRiders(gomock.Any()).
		Return([]ledger.Rider{{ID: uuid.New()}}, nil)
	stx.EXPECT().InsertEntry(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("inserting entry: %w", ledger.ErrAlreadySettled))
	stx.EXPECT().Rollback().Return(nil)

	result, err := svc.Settle(context.Background(), payment)
	require.NoError(t, err)
	assert.Equal(t, settlement.OutcomeAlreadySettled, result.Outcome)
}

func TestService_Settle_ExactlyOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := settlement.NewMockRepository(ctrl)
	first := settlement.NewMockTx(ctrl)
	second := settlement.NewMockTx(ctrl)
	svc := newEngine(t, repo)

	payment := approvalPayment("50.00")
	rider := ledger.Rider{ID: uuid.New()}

	firstBegin := repo.EXPECT().BeginSettlement(gomock.Any(), payment.ID).Return(first, nil)
	repo.EXPECT().BeginSettlement(gomock.Any(), payment.ID).Return(second, nil).After(firstBegin)

	first.EXPECT().HasEntriesForPayment(gomock.Any(), payment.ID).Return(false, nil)
	first.EXPECT().ListUnassignedRiders(gomock.Any()).Return([]ledger.Rider{rider}, nil)
	first.EXPECT().InsertEntry(gomock.Any(), gomock.Any()).Return(nil)
	first.EXPECT().CreditAccount(gomock.Any(), platformID, eqDec("50.00"), ledger.NGN).Return(nil)
	first.EXPECT().ActivateShop(gomock.Any(), *payment.ShopID, rider.ID).Return(nil)
	first.EXPECT().Commit().Return(nil)
	first.EXPECT().Rollback().Return(nil)

	second.EXPECT().HasEntriesForPayment(gomock.Any(), payment.ID).Return(true, nil)
	second.EXPECT().Rollback().Return(nil)

	result, err := svc.Settle(context.Background(), payment)
	require.NoError(t, err)
	assert.Equal(t, settlement.OutcomeApplied, result.Outcome)

	result, err = svc.Settle(context.Background(), payment)
	require.NoError(t, err)
	assert.Equal(t, settlement.OutcomeAlreadySettled, result.Outcome)
}

// fakeStore serializes settlements behind one mutex the way the real store's
// advisory lock does, so concurrent duplicates exercise the race for real.
type fakeStore struct {
	mu      sync.Mutex
	entries map[uuid.UUID][]*ledger.Entry
	riders  []ledger.Rider
}

func newFakeStore(riders ...ledger.Rider) *fakeStore {
	return &fakeStore{
		entries: make(map[uuid.UUID][]*ledger.Entry),
		riders:  riders,
	}
}

func (f *fakeStore) BeginSettlement(_ context.Context, paymentID uuid.UUID) (settlement.Tx, error) {
	f.mu.Lock()
	return &fakeTx{store: f, paymentID: paymentID}, nil
}

func (f *fakeStore) EntriesForPayment(_ context.Context, paymentID uuid.UUID) ([]*ledger.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.entries[paymentID], nil
}

func (f *fakeStore) AccountBalance(_ context.Context, _ uuid.UUID) (decimal.Decimal, ledger.Currency, error) {
	return decimal.Zero, ledger.NGN, nil
}

type fakeTx struct {
	store     *fakeStore
	paymentID uuid.UUID
	staged    []*ledger.Entry
	closed    bool
}

func (tx *fakeTx) HasEntriesForPayment(_ context.Context, paymentID uuid.UUID) (bool, error) {
	return len(tx.store.entries[paymentID]) > 0, nil
}

func (tx *fakeTx) InsertEntry(_ context.Context, entry *ledger.Entry) error {
	tx.staged = append(tx.staged, entry)
	return nil
}

func (tx *fakeTx) CreditAccount(_ context.Context, _ uuid.UUID, _ decimal.Decimal, _ ledger.Currency) error {
	return nil
}

func (tx *fakeTx) GetOrderForUpdate(_ context.Context, orderID uuid.UUID) (*ledger.Order, error) {
	return nil, fmt.Errorf("order %s: %w", orderID, ledger.ErrNotFound)
}

func (tx *fakeTx) UpdateOrderStatus(_ context.Context, _ uuid.UUID, _ ledger.OrderStatus, _ bool) error {
	return nil
}

func (tx *fakeTx) ActivateShop(_ context.Context, _, _ uuid.UUID) error { return nil }

func (tx *fakeTx) ListUnassignedRiders(_ context.Context) ([]ledger.Rider, error) {
	return tx.store.riders, nil
}

func (tx *fakeTx) Commit() error {
	tx.store.entries[tx.paymentID] = append(tx.store.entries[tx.paymentID], tx.staged...)
	tx.closed = true
	tx.store.mu.Unlock()

	return nil
}

func (tx *fakeTx) Rollback() error {
	if tx.closed {
		return nil
	}

	tx.closed = true
	tx.store.mu.Unlock()

	return nil
}

func TestService_Settle_ConcurrentDuplicates(t *testing.T) {
	store := newFakeStore(ledger.Rider{ID: uuid.New(), Name: "only"})

	svc, err := settlement.NewService(store, testConfig())
	require.NoError(t, err)

	payment := approvalPayment("50.00")

	const workers = 8

	outcomes := make(chan settlement.Outcome, workers)
	errs := make(chan error, workers)

	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			result, err := svc.Settle(context.Background(), payment)
			if err != nil {
				errs <- err
				return
			}

			outcomes <- result.Outcome
		}()
	}

	wg.Wait()
	close(outcomes)
	close(errs)

	for err := range errs {
		t.Errorf("settle: %v", err)
	}

	var applied, alreadySettled int

	for outcome := range outcomes {
		switch outcome {
		case settlement.OutcomeApplied:
			applied++
		case settlement.OutcomeAlreadySettled:
			alreadySettled++
		default:
			t.Errorf("unexpected outcome %s", outcome)
		}
	}

	assert.Equal(t, 1, applied, "exactly one duplicate may apply")
	assert.Equal(t, workers-1, alreadySettled)

	entries, err := store.EntriesForPayment(context.Background(), payment.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "ledger must hold one set of entries for the payment")
}

func TestService_Settle_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := settlement.NewMockRepository(ctrl)
	svc := newEngine(t, repo)

	payment := approvalPayment("50.00")

	repo.EXPECT().BeginSettlement(gomock.Any(), payment.ID).
		Return(nil, context.DeadlineExceeded)

	result, err := svc.Settle(context.Background(), payment)
	assert.ErrorIs(t, err, ledger.ErrTimeout)
	assert.Nil(t, result)
}

func TestService_Settle_RejectsBeforeAnyWrite(t *testing.T) {
	type testCase struct {
		name    string
		payment *ledger.Payment
		wantErr error
	}

	orderID := uuid.New()

	tests := []testCase{
		{
			name: "UnsupportedCurrency",
			payment: &ledger.Payment{
				ID:       uuid.New(),
				Amount:   decimal.RequireFromString("10.00"),
				Currency: "USD",
				Kind:     ledger.KindSale,
				OrderID:  &orderID,
			},
			wantErr: ledger.ErrUnsupportedCurrency,
		},
		{
			name: "SaleWithoutOrder",
			payment: &ledger.Payment{
				ID:       uuid.New(),
				Amount:   decimal.RequireFromString("10.00"),
				Currency: ledger.NGN,
				Kind:     ledger.KindSale,
			},
			wantErr: ledger.ErrInvalidPayment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// No expectations at all: rejection happens before the store is
			// touched.
			repo := settlement.NewMockRepository(ctrl)
			svc := newEngine(t, repo)

			result, err := svc.Settle(context.Background(), tt.payment)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, result)
		})
	}
}

func TestNewService_RejectsBadConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := settlement.NewMockRepository(ctrl)

	t.Run("ShareDrift", func(t *testing.T) {
		cfg := testConfig()
		cfg.Shares.MerchantSale = decimal.RequireFromString("0.975")

		_, err := settlement.NewService(repo, cfg)
		assert.Error(t, err)
	})

	t.Run("MissingPlatformAccount", func(t *testing.T) {
		cfg := testConfig()
		cfg.PlatformAccountID = uuid.Nil

		_, err := settlement.NewService(repo, cfg)
		assert.Error(t, err)
	})
}

func TestFirstAvailable_PicksEarliest(t *testing.T) {
	riders := []ledger.Rider{
		{ID: uuid.New(), Name: "oldest"},
		{ID: uuid.New(), Name: "newer"},
	}

	picked, err := settlement.FirstAvailable{}.Pick(riders)
	require.NoError(t, err)
	assert.Equal(t, riders[0], picked)

	_, err = settlement.FirstAvailable{}.Pick(nil)
	assert.ErrorIs(t, err, ledger.ErrNoRiderAvailable)
}

func TestOutcomeOf(t *testing.T) {
	tests := []struct {
		err  error
		want settlement.Outcome
	}{
		{nil, settlement.OutcomeApplied},
		{ledger.ErrAlreadySettled, settlement.OutcomeAlreadySettled},
		{ledger.ErrNoRiderAvailable, settlement.OutcomeNoRiderAvailable},
		{ledger.ErrNoRiderAssigned, settlement.OutcomeNoRiderAssigned},
		{ledger.ErrUnsupportedCurrency, settlement.OutcomeUnsupportedCurrency},
		{ledger.ErrInvalidPayment, settlement.OutcomeInvalidPayment},
		{ledger.ErrNotFound, settlement.OutcomeNotFound},
		{ledger.ErrTimeout, settlement.OutcomeTimeout},
		{errors.New("disk on fire"), settlement.OutcomeFailed},
		{fmt.Errorf("wrapped: %w", ledger.ErrTimeout), settlement.OutcomeTimeout},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, settlement.OutcomeOf(tt.err), "err %v", tt.err)
	}
}
