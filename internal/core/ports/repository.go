package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/seat_reservation/internal/core/domain"
)

// Transactor runs fn inside one database transaction. Repository calls made
// with the ctx passed to fn join that transaction; fn returning an error
// rolls it back.
type Transactor interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type SeatRepository interface {
	GetPaidSeatIDs(ctx context.Context, eventID uuid.UUID) ([]uuid.UUID, error)
	GetActiveHoldSeatIDs(ctx context.Context, eventID uuid.UUID, now time.Time) ([]uuid.UUID, error)
	GetSeatPricing(ctx context.Context, seatIDs []uuid.UUID) ([]domain.SeatPricing, error)
	GetUnavailableSeatIDs(ctx context.Context, seatIDs []uuid.UUID, now time.Time) ([]uuid.UUID, error)

	// LockSeats takes row locks on the given seats, skipping rows already
	// locked by other transactions.
	LockSeats(ctx context.Context, seatIDs []uuid.UUID) ([]domain.LockedSeat, error)
	FindConflictingSeatIDs(ctx context.Context, seatIDs []uuid.UUID, now time.Time) ([]uuid.UUID, error)
	// LockAvailableSeatsInArea locks up to limit free seats of an area.
	LockAvailableSeatsInArea(ctx context.Context, eventID uuid.UUID, showingID uuid.NullUUID, areaID uuid.UUID, limit int, now time.Time) ([]domain.LockedSeat, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByIDForUpdate(ctx context.Context, orderID, userID uuid.UUID) (*domain.Order, error)
	// LockByID locks the order row without an ownership check.
	LockByID(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) error
	UpdatePaymentMetadata(ctx context.Context, orderID uuid.UUID, meta *domain.PaymentMetadata) error
	GetByVNPayTxnRef(ctx context.Context, txnRef string) (*domain.Order, error)
	LockExpiredPending(ctx context.Context, now time.Time, limit int) ([]domain.Order, error)
}

type SeatHoldRepository interface {
	CreateBatch(ctx context.Context, holds []domain.SeatHold) error
	LockUnconfirmedByOrder(ctx context.Context, orderID uuid.UUID) ([]domain.SeatHold, error)
	ConfirmByOrder(ctx context.Context, orderID uuid.UUID) error
	// ReleaseByOrder ends the order's live unconfirmed holds at now.
	ReleaseByOrder(ctx context.Context, orderID uuid.UUID, now time.Time) error
}

type TicketRepository interface {
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]domain.Ticket, error)
	CreateBatch(ctx context.Context, tickets []domain.Ticket) error
}

// SeatStatusCache holds short-lived seat status snapshots per event.
type SeatStatusCache interface {
	Get(ctx context.Context, eventID uuid.UUID) (*domain.SeatStatus, bool, error)
	Set(ctx context.Context, eventID uuid.UUID, status *domain.SeatStatus) error
	Invalidate(ctx context.Context, eventID uuid.UUID) error
}
