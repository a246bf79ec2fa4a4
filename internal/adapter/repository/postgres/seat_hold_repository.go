package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/srgjo27/seat_reservation/internal/core/domain"
)

type SeatHoldRepository struct {
	db *sql.DB
}

func NewSeatHoldRepository(db *sql.DB) *SeatHoldRepository {
	return &SeatHoldRepository{db: db}
}

func (r *SeatHoldRepository) CreateBatch(ctx context.Context, holds []domain.SeatHold) error {
	if len(holds) == 0 {
		return nil
	}

	const cols = 8
	query := `
	INSERT INTO seat_holds (id, seat_id, order_id, user_id, expires_at, is_confirmed, is_paid, created_at)
	VALUES ` + valuesList(len(holds), cols)

	args := make([]any, 0, len(holds)*cols)
	for _, h := range holds {
		args = append(args, h.ID, h.SeatID, h.OrderID, h.UserID, h.ExpiresAt, h.IsConfirmed, h.IsPaid, h.CreatedAt)
	}

	if _, err := conn(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert %d seat holds: %w", len(holds), err)
	}

	return nil
}

func (r *SeatHoldRepository) LockUnconfirmedByOrder(ctx context.Context, orderID uuid.UUID) ([]domain.SeatHold, error) {
	query := `
	SELECT id, seat_id, order_id, user_id, expires_at, is_confirmed, is_paid, created_at
	FROM seat_holds
	WHERE order_id = $1 AND is_confirmed = false
	FOR UPDATE
	`

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock seat holds: %w", err)
	}

	defer rows.Close()

	var holds []domain.SeatHold
	for rows.Next() {
		var h domain.SeatHold
		if err := rows.Scan(
			&h.ID,
			&h.SeatID,
			&h.OrderID,
			&h.UserID,
			&h.ExpiresAt,
			&h.IsConfirmed,
			&h.IsPaid,
			&h.CreatedAt,
		); err != nil {
			return nil, err
		}

		holds = append(holds, h)
	}

	return holds, rows.Err()
}

func (r *SeatHoldRepository) ConfirmByOrder(ctx context.Context, orderID uuid.UUID) error {
	query := `
	UPDATE seat_holds
	SET is_confirmed = true, is_paid = true
	WHERE order_id = $1
	`

	if _, err := conn(ctx, r.db).ExecContext(ctx, query, orderID); err != nil {
		return fmt.Errorf("failed to confirm seat holds: %w", err)
	}

	return nil
}

// ReleaseByOrder moves the expiry of the order's live unconfirmed holds to now
// so their seats become selectable again. Confirmed holds are left alone.
func (r *SeatHoldRepository) ReleaseByOrder(ctx context.Context, orderID uuid.UUID, now time.Time) error {
	query := `
	UPDATE seat_holds
	SET expires_at = $2
	WHERE order_id = $1 AND is_confirmed = false AND expires_at > $2
	`

	if _, err := conn(ctx, r.db).ExecContext(ctx, query, orderID, now); err != nil {
		return fmt.Errorf("failed to release seat holds: %w", err)
	}

	return nil
}
