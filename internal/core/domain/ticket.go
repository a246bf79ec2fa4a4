package domain

import (
	"time"

	"github.com/google/uuid"
)

type TicketStatus string

const (
	TicketActive    TicketStatus = "active"
	TicketUsed      TicketStatus = "used"
	TicketCancelled TicketStatus = "cancelled"
)

func (s TicketStatus) IsValid() bool {
	return s == TicketActive || s == TicketUsed || s == TicketCancelled
}

// Ticket carries denormalized event, showing and price so lookups need no joins.
type Ticket struct {
	ID        uuid.UUID     `json:"id"`
	OrderID   uuid.UUID     `json:"order_id"`
	SeatID    uuid.UUID     `json:"seat_id"`
	EventID   uuid.UUID     `json:"event_id"`
	ShowingID uuid.NullUUID `json:"showing_id"`
	Price     float64       `json:"price"`
	Status    TicketStatus  `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

type TicketInput struct {
	SeatID uuid.UUID    `json:"seat_id"`
	Status TicketStatus `json:"status,omitempty"`
}

type PaymentResult struct {
	Order     *Order   `json:"order"`
	Tickets   []Ticket `json:"tickets"`
	SeatCount int      `json:"seat_count"`
}
