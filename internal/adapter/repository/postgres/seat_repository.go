package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/srgjo27/seat_reservation/internal/core/domain"
)

type SeatRepository struct {
	db *sql.DB
}

func NewSeatRepository(db *sql.DB) *SeatRepository {
	return &SeatRepository{db: db}
}

func (r *SeatRepository) GetPaidSeatIDs(ctx context.Context, eventID uuid.UUID) ([]uuid.UUID, error) {
	query := `
	SELECT DISTINCT seat_id
	FROM tickets
	WHERE event_id = $1 AND status IN ('active', 'used')
	`

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query paid seats: %w", err)
	}

	return scanUUIDs(rows)
}

func (r *SeatRepository) GetActiveHoldSeatIDs(ctx context.Context, eventID uuid.UUID, now time.Time) ([]uuid.UUID, error) {
	query := `
	SELECT DISTINCT h.seat_id
	FROM seat_holds h
	JOIN seats s ON s.id = h.seat_id
	JOIN rows r ON r.id = s.row_id
	JOIN areas a ON a.id = r.area_id
	WHERE a.event_id = $1 AND h.is_confirmed = false AND h.expires_at > $2
	`

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, eventID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to query held seats: %w", err)
	}

	return scanUUIDs(rows)
}

func (r *SeatRepository) GetSeatPricing(ctx context.Context, seatIDs []uuid.UUID) ([]domain.SeatPricing, error) {
	if len(seatIDs) == 0 {
		return []domain.SeatPricing{}, nil
	}

	query := `
	SELECT s.id, s.seat_number, r.name, a.id, a.name, a.event_id, a.showing_id, a.price
	FROM seats s
	JOIN rows r ON r.id = s.row_id
	JOIN areas a ON a.id = r.area_id
	WHERE s.id = ANY($1::uuid[])
	`

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, uuidArray(seatIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to query seat pricing: %w", err)
	}

	defer rows.Close()

	pricing := make([]domain.SeatPricing, 0, len(seatIDs))
	for rows.Next() {
		var p domain.SeatPricing
		if err := rows.Scan(
			&p.SeatID,
			&p.SeatNumber,
			&p.RowName,
			&p.AreaID,
			&p.AreaName,
			&p.EventID,
			&p.ShowingID,
			&p.Price,
		); err != nil {
			return nil, err
		}

		pricing = append(pricing, p)
	}

	return pricing, rows.Err()
}

func (r *SeatRepository) GetUnavailableSeatIDs(ctx context.Context, seatIDs []uuid.UUID, now time.Time) ([]uuid.UUID, error) {
	query := `
	SELECT t.seat_id
	FROM tickets t
	JOIN orders o ON o.id = t.order_id
	WHERE t.seat_id = ANY($1::uuid[]) AND o.status = 'paid'
	UNION
	SELECT h.seat_id
	FROM seat_holds h
	WHERE h.seat_id = ANY($1::uuid[]) AND h.expires_at > $2
	`

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, uuidArray(seatIDs), now)
	if err != nil {
		return nil, fmt.Errorf("failed to query seat availability: %w", err)
	}

	return scanUUIDs(rows)
}

// LockSeats locks only the seat rows (OF s); locking the shared area rows
// would make every other checkout in the same area skip its seats.
func (r *SeatRepository) LockSeats(ctx context.Context, seatIDs []uuid.UUID) ([]domain.LockedSeat, error) {
	query := `
	SELECT s.id, a.id, a.event_id, a.showing_id, a.price
	FROM seats s
	JOIN rows r ON r.id = s.row_id
	JOIN areas a ON a.id = r.area_id
	WHERE s.id = ANY($1::uuid[])
	FOR UPDATE OF s SKIP LOCKED
	`

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, uuidArray(seatIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to lock seats: %w", err)
	}

	return scanLockedSeats(rows)
}

func (r *SeatRepository) FindConflictingSeatIDs(ctx context.Context, seatIDs []uuid.UUID, now time.Time) ([]uuid.UUID, error) {
	query := `
	SELECT s.id
	FROM seats s
	WHERE s.id = ANY($1::uuid[])
		AND (
			EXISTS (
				SELECT 1 FROM tickets t
				WHERE t.seat_id = s.id AND t.status IN ('active', 'used')
			)
			OR EXISTS (
				SELECT 1 FROM seat_holds h
				WHERE h.seat_id = s.id AND h.is_confirmed = false AND h.expires_at > $2
			)
		)
	`

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, uuidArray(seatIDs), now)
	if err != nil {
		return nil, fmt.Errorf("failed to query seat conflicts: %w", err)
	}

	return scanUUIDs(rows)
}

// LockAvailableSeatsInArea filters free seats with NOT EXISTS subqueries
// evaluated under the lock, so no stale availability set is involved.
func (r *SeatRepository) LockAvailableSeatsInArea(ctx context.Context, eventID uuid.UUID, showingID uuid.NullUUID, areaID uuid.UUID, limit int, now time.Time) ([]domain.LockedSeat, error) {
	query := `
	SELECT s.id, a.id, a.event_id, a.showing_id, a.price
	FROM seats s
	JOIN rows r ON r.id = s.row_id
	JOIN areas a ON a.id = r.area_id
	WHERE a.id = $1
		AND a.event_id = $2
		AND (a.showing_id = $3::uuid OR ($3::uuid IS NULL AND a.showing_id IS NULL))
		AND NOT EXISTS (
			SELECT 1 FROM tickets t
			WHERE t.seat_id = s.id AND t.status IN ('active', 'used')
		)
		AND NOT EXISTS (
			SELECT 1 FROM seat_holds h
			WHERE h.seat_id = s.id AND h.is_confirmed = false AND h.expires_at > $4
		)
	LIMIT $5
	FOR UPDATE OF s SKIP LOCKED
	`

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, areaID, eventID, showingID, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to lock area seats: %w", err)
	}

	return scanLockedSeats(rows)
}

func scanLockedSeats(rows *sql.Rows) ([]domain.LockedSeat, error) {
	defer rows.Close()

	var seats []domain.LockedSeat
	for rows.Next() {
		var seat domain.LockedSeat
		if err := rows.Scan(
			&seat.SeatID,
			&seat.AreaID,
			&seat.EventID,
			&seat.ShowingID,
			&seat.Price,
		); err != nil {
			return nil, err
		}

		seats = append(seats, seat)
	}

	return seats, rows.Err()
}
