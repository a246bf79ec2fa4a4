package domain

import (
	"time"

	"github.com/google/uuid"
)

type SeatHold struct {
	ID          uuid.UUID `json:"id"`
	SeatID      uuid.UUID `json:"seat_id"`
	OrderID     uuid.UUID `json:"order_id"`
	UserID      uuid.UUID `json:"user_id"`
	ExpiresAt   time.Time `json:"expires_at"`
	IsConfirmed bool      `json:"is_confirmed"`
	IsPaid      bool      `json:"is_paid"`
	CreatedAt   time.Time `json:"created_at"`
}

func (h *SeatHold) IsExpired(now time.Time) bool {
	return !h.ExpiresAt.After(now)
}
