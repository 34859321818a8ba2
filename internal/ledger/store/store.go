package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/jumga/ledger/internal/ledger"
	"github.com/jumga/ledger/internal/settlement"
)

const pgUniqueViolation = "23505"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanEntry reads a ledger entry row from the scanner.
// Expected column order: id, reference, payment_id, leg, account_id, direction, amount, currency, narration, created_at
func scanEntry(s scanner) (*ledger.Entry, error) {
	var e ledger.Entry

	var directionStr, currencyStr string

	if err := s.Scan(
		&e.ID, &e.Reference, &e.PaymentID, &e.Leg, &e.AccountID,
		&directionStr, &e.Amount, &currencyStr, &e.Narration, &e.CreatedAt,
	); err != nil {
		return nil, err
	}

	e.Direction = ledger.Direction(directionStr)
	e.Currency = ledger.Currency(currencyStr)

	return &e, nil
}

const selectEntryColumns = `
	e.id, e.reference, e.payment_id, e.leg, e.account_id,
	e.direction, e.amount, e.currency, e.narration, e.created_at
`

// settlementLockKey derives the advisory lock key that serializes settlements
// of the same payment.
func settlementLockKey(paymentID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write(paymentID[:])

	return int64(h.Sum64())
}

// BeginSettlement opens the atomic scope for one payment. The advisory lock
// is transaction-scoped, so it is released on commit and rollback alike.
func (s *Store) BeginSettlement(ctx context.Context, paymentID uuid.UUID) (settlement.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning settlement tx: %w", err)
	}

	lockKey := settlementLockKey(paymentID)
	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", lockKey); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring settlement lock: %w", err)
	}

	return &settlementTx{tx: dbTx}, nil
}

type settlementTx struct {
	tx *sql.Tx
}

func (stx *settlementTx) Commit() error   { return stx.tx.Commit() }
func (stx *settlementTx) Rollback() error { return stx.tx.Rollback() }

func (stx *settlementTx) HasEntriesForPayment(ctx context.Context, paymentID uuid.UUID) (bool, error) {
	var exists bool

	query := `SELECT EXISTS (SELECT 1 FROM entries WHERE payment_id = $1)`
	if err := stx.tx.QueryRowContext(ctx, query, paymentID).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking entries for payment: %w", err)
	}

	return exists, nil
}

func (stx *settlementTx) InsertEntry(ctx context.Context, entry *ledger.Entry) error {
	if !entry.Amount.IsPositive() {
		return fmt.Errorf("%w: entry amount %s is not positive", ledger.ErrConstraintViolation, entry.Amount)
	}

	if !entry.Currency.Supported() {
		return fmt.Errorf("%w: currency %q", ledger.ErrConstraintViolation, entry.Currency)
	}

	query := `
		INSERT INTO entries (reference, payment_id, leg, account_id, direction, amount, currency, narration, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`

	err := stx.tx.QueryRowContext(ctx, query,
		entry.Reference,
		entry.PaymentID,
		entry.Leg,
		entry.AccountID,
		entry.Direction,
		entry.Amount,
		entry.Currency,
		entry.Narration,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			// entries_payment_id_leg_key: a concurrent settlement of the
			// same payment got here first.
			return fmt.Errorf("inserting entry: %w", ledger.ErrAlreadySettled)
		}

		return fmt.Errorf("inserting entry: %w", err)
	}

	return nil
}

func (stx *settlementTx) CreditAccount(ctx context.Context, principalID uuid.UUID, amount decimal.Decimal, currency ledger.Currency) error {
	query := `
		UPDATE accounts
		SET balance = balance + $1, updated_at = NOW()
		WHERE principal_id = $2 AND currency = $3
	`

	res, err := stx.tx.ExecContext(ctx, query, amount, principalID, currency)
	if err != nil {
		return fmt.Errorf("crediting account: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("crediting account: %w", err)
	}

	if affected == 0 {
		var exists bool
		if err := stx.tx.QueryRowContext(ctx,
			"SELECT EXISTS (SELECT 1 FROM accounts WHERE principal_id = $1)", principalID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("checking account: %w", err)
		}

		if exists {
			return fmt.Errorf("%w: account %s does not hold %s", ledger.ErrConstraintViolation, principalID, currency)
		}

		return fmt.Errorf("account %s: %w", principalID, ledger.ErrNotFound)
	}

	return nil
}

func (stx *settlementTx) GetOrderForUpdate(ctx context.Context, orderID uuid.UUID) (*ledger.Order, error) {
	query := `
		SELECT o.id, o.shop_id, o.status, o.paid, o.created_at, o.updated_at,
		       s.id, s.merchant_id, s.rider_id, s.name, s.delivery_fee, s.active
		FROM orders o
		JOIN shops s ON o.shop_id = s.id
		WHERE o.id = $1
		FOR UPDATE OF o
	`

	var o ledger.Order

	var shop ledger.Shop

	var statusStr string

	err := stx.tx.QueryRowContext(ctx, query, orderID).Scan(
		&o.ID, &o.ShopID, &statusStr, &o.Paid, &o.CreatedAt, &o.UpdatedAt,
		&shop.ID, &shop.MerchantID, &shop.RiderID, &shop.Name, &shop.DeliveryFee, &shop.Active,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("order %s: %w", orderID, ledger.ErrNotFound)
		}

		return nil, fmt.Errorf("getting order: %w", err)
	}

	o.Status = ledger.OrderStatus(statusStr)
	o.DeliveryFee = shop.DeliveryFee
	o.Shop = &shop

	items, err := stx.orderItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	o.Items = items

	return &o, nil
}

func (stx *settlementTx) orderItems(ctx context.Context, orderID uuid.UUID) ([]ledger.OrderItem, error) {
	query := `
		SELECT product_id, quantity, item_price
		FROM order_items
		WHERE order_id = $1
		ORDER BY product_id
	`

	rows, err := stx.tx.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("listing order items: %w", err)
	}
	defer rows.Close()

	var items []ledger.OrderItem

	for rows.Next() {
		var item ledger.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, fmt.Errorf("scanning order item: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order items: %w", err)
	}

	return items, nil
}

func (stx *settlementTx) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status ledger.OrderStatus, paid bool) error {
	query := `
		UPDATE orders
		SET status = $1, paid = $2, updated_at = NOW()
		WHERE id = $3
	`

	res, err := stx.tx.ExecContext(ctx, query, status, paid, orderID)
	if err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("order %s: %w", orderID, ledger.ErrNotFound)
	}

	return nil
}

func (stx *settlementTx) ActivateShop(ctx context.Context, shopID, riderID uuid.UUID) error {
	query := `
		UPDATE shops
		SET active = TRUE, rider_id = $1, updated_at = NOW()
		WHERE id = $2
	`

	res, err := stx.tx.ExecContext(ctx, query, riderID, shopID)
	if err != nil {
		return fmt.Errorf("activating shop: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("activating shop: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("shop %s: %w", shopID, ledger.ErrNotFound)
	}

	return nil
}

// ListUnassignedRiders returns riders not yet bound to any shop, earliest
// registration first. SKIP LOCKED keeps concurrent approvals from picking the
// same rider.
func (stx *settlementTx) ListUnassignedRiders(ctx context.Context) ([]ledger.Rider, error) {
	query := `
		SELECT r.id, r.name
		FROM riders r
		WHERE NOT EXISTS (SELECT 1 FROM shops s WHERE s.rider_id = r.id)
		ORDER BY r.created_at ASC
		FOR UPDATE SKIP LOCKED
	`

	rows, err := stx.tx.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing unassigned riders: %w", err)
	}
	defer rows.Close()

	var riders []ledger.Rider

	for rows.Next() {
		var r ledger.Rider
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, fmt.Errorf("scanning rider: %w", err)
		}

		riders = append(riders, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating riders: %w", err)
	}

	return riders, nil
}

// EntriesForPayment is the audit read of a payment's committed entries.
func (s *Store) EntriesForPayment(ctx context.Context, paymentID uuid.UUID) ([]*ledger.Entry, error) {
	query := `SELECT ` + selectEntryColumns + `
		FROM entries e
		WHERE e.payment_id = $1
		ORDER BY e.leg ASC`

	rows, err := s.db.QueryContext(ctx, query, paymentID)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	defer rows.Close()

	var entries []*ledger.Entry

	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}

	return entries, nil
}

// AccountBalance reads a principal's running balance outside any transaction;
// it may trail in-flight settlements.
func (s *Store) AccountBalance(ctx context.Context, principalID uuid.UUID) (decimal.Decimal, ledger.Currency, error) {
	query := `SELECT balance, currency FROM accounts WHERE principal_id = $1`

	var balance decimal.Decimal

	var currencyStr string

	err := s.db.QueryRowContext(ctx, query, principalID).Scan(&balance, &currencyStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, "", fmt.Errorf("account %s: %w", principalID, ledger.ErrNotFound)
		}

		return decimal.Zero, "", fmt.Errorf("getting balance: %w", err)
	}

	return balance, ledger.Currency(currencyStr), nil
}
