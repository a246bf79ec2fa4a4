package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/srgjo27/seat_reservation/internal/core/domain"
)

type TicketRepository struct {
	db *sql.DB
}

func NewTicketRepository(db *sql.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]domain.Ticket, error) {
	query := `
	SELECT id, order_id, seat_id, event_id, showing_id, price, status, created_at
	FROM tickets
	WHERE order_id = $1
	ORDER BY created_at, id
	`

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tickets: %w", err)
	}

	defer rows.Close()

	tickets := []domain.Ticket{}
	for rows.Next() {
		var (
			t      domain.Ticket
			status string
		)
		if err := rows.Scan(
			&t.ID,
			&t.OrderID,
			&t.SeatID,
			&t.EventID,
			&t.ShowingID,
			&t.Price,
			&status,
			&t.CreatedAt,
		); err != nil {
			return nil, err
		}

		t.Status = domain.TicketStatus(status)
		tickets = append(tickets, t)
	}

	return tickets, rows.Err()
}

func (r *TicketRepository) CreateBatch(ctx context.Context, tickets []domain.Ticket) error {
	if len(tickets) == 0 {
		return nil
	}

	const cols = 8
	query := `
	INSERT INTO tickets (id, order_id, seat_id, event_id, showing_id, price, status, created_at)
	VALUES ` + valuesList(len(tickets), cols)

	args := make([]any, 0, len(tickets)*cols)
	for _, t := range tickets {
		args = append(args, t.ID, t.OrderID, t.SeatID, t.EventID, t.ShowingID, t.Price, t.Status, t.CreatedAt)
	}

	if _, err := conn(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert %d tickets: %w", len(tickets), err)
	}

	return nil
}
