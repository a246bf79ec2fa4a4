package domain

import (
	"github.com/google/uuid"
)

// LockedSeat is a seat row locked inside a reservation transaction together
// with the area it resolves to.
type LockedSeat struct {
	SeatID    uuid.UUID     `json:"seat_id"`
	AreaID    uuid.UUID     `json:"area_id"`
	EventID   uuid.UUID     `json:"event_id"`
	ShowingID uuid.NullUUID `json:"showing_id"`
	Price     float64       `json:"price"`
}

type SeatPricing struct {
	SeatID     uuid.UUID     `json:"seat_id"`
	SeatNumber string        `json:"seat_number"`
	RowName    string        `json:"row_name"`
	AreaID     uuid.UUID     `json:"area_id"`
	AreaName   string        `json:"area_name"`
	EventID    uuid.UUID     `json:"event_id"`
	ShowingID  uuid.NullUUID `json:"showing_id"`
	Price      float64       `json:"price"`
}

type SeatStatus struct {
	PaidSeatIDs       []uuid.UUID `json:"paid_seat_ids"`
	ActiveHoldSeatIDs []uuid.UUID `json:"active_hold_seat_ids"`
}

type SeatAvailability struct {
	UnavailableSeatIDs []uuid.UUID `json:"unavailable_seat_ids"`
}

// SameShowing compares nullable showing ids; two null showings match.
func SameShowing(a, b uuid.NullUUID) bool {
	if a.Valid != b.Valid {
		return false
	}
	return !a.Valid || a.UUID == b.UUID
}

// UniqueSeatIDs drops duplicates while keeping first-seen order.
func UniqueSeatIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
