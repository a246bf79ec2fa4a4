package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/srgjo27/seat_reservation/internal/core/domain"
)

const orderColumns = `id, user_id, event_id, showing_id, total_amount, status, expires_at, payment_metadata, created_at, updated_at`

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	meta, err := encodeMetadata(order.PaymentMetadata)
	if err != nil {
		return err
	}

	query := `
	INSERT INTO orders (` + orderColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = conn(ctx, r.db).ExecContext(ctx, query,
		order.ID,
		order.UserID,
		order.EventID,
		order.ShowingID,
		order.TotalAmount,
		order.Status,
		order.ExpiresAt,
		meta,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	return nil
}

// GetByIDForUpdate locks the order row. Filtering on user_id keeps one user
// from confirming another user's order.
func (r *OrderRepository) GetByIDForUpdate(ctx context.Context, orderID, userID uuid.UUID) (*domain.Order, error) {
	query := `
	SELECT ` + orderColumns + `
	FROM orders
	WHERE id = $1 AND user_id = $2
	FOR UPDATE
	`

	order, err := scanOrder(conn(ctx, r.db).QueryRowContext(ctx, query, orderID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to lock order: %w", err)
	}

	return order, nil
}

func (r *OrderRepository) LockByID(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	query := `
	SELECT ` + orderColumns + `
	FROM orders
	WHERE id = $1
	FOR UPDATE
	`

	order, err := scanOrder(conn(ctx, r.db).QueryRowContext(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to lock order: %w", err)
	}

	return order, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) error {
	query := `
	UPDATE orders
	SET status = $1, updated_at = NOW()
	WHERE id = $2
	`

	result, err := conn(ctx, r.db).ExecContext(ctx, query, status, orderID)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	return requireRow(result)
}

func (r *OrderRepository) UpdatePaymentMetadata(ctx context.Context, orderID uuid.UUID, meta *domain.PaymentMetadata) error {
	raw, err := encodeMetadata(meta)
	if err != nil {
		return err
	}

	query := `
	UPDATE orders
	SET payment_metadata = $1, updated_at = NOW()
	WHERE id = $2
	`

	result, err := conn(ctx, r.db).ExecContext(ctx, query, raw, orderID)
	if err != nil {
		return fmt.Errorf("failed to update payment metadata: %w", err)
	}

	return requireRow(result)
}

func (r *OrderRepository) GetByVNPayTxnRef(ctx context.Context, txnRef string) (*domain.Order, error) {
	query := `
	SELECT ` + orderColumns + `
	FROM orders
	WHERE payment_metadata->>'provider' = 'vnpay'
		AND payment_metadata->'data'->>'txnRef' = $1
	ORDER BY created_at DESC
	LIMIT 1
	`

	order, err := scanOrder(conn(ctx, r.db).QueryRowContext(ctx, query, txnRef))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to find order by vnpay txn ref: %w", err)
	}

	return order, nil
}

// LockExpiredPending skips rows locked elsewhere so concurrent sweepers and
// in-flight confirmations never wait on each other.
func (r *OrderRepository) LockExpiredPending(ctx context.Context, now time.Time, limit int) ([]domain.Order, error) {
	query := `
	SELECT ` + orderColumns + `
	FROM orders
	WHERE status IN ('pending', 'pending_payment') AND expires_at <= $1
	ORDER BY expires_at
	LIMIT $2
	FOR UPDATE SKIP LOCKED
	`

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query expired orders: %w", err)
	}

	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}

	return orders, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var (
		order  domain.Order
		status string
		meta   []byte
	)

	if err := row.Scan(
		&order.ID,
		&order.UserID,
		&order.EventID,
		&order.ShowingID,
		&order.TotalAmount,
		&status,
		&order.ExpiresAt,
		&meta,
		&order.CreatedAt,
		&order.UpdatedAt,
	); err != nil {
		return nil, err
	}

	order.Status = domain.OrderStatus(status)

	if len(meta) > 0 {
		var pm domain.PaymentMetadata
		if err := json.Unmarshal(meta, &pm); err != nil {
			return nil, fmt.Errorf("failed to decode payment metadata for order %s: %w", order.ID, err)
		}
		order.PaymentMetadata = &pm
	}

	return &order, nil
}

func encodeMetadata(meta *domain.PaymentMetadata) (any, error) {
	if meta == nil {
		return nil, nil
	}

	raw, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payment metadata: %w", err)
	}

	return string(raw), nil
}

func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}
