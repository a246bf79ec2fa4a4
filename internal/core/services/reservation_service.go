package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/srgjo27/seat_reservation/internal/core/domain"
	"github.com/srgjo27/seat_reservation/internal/core/ports"
)

// ReservationService turns seat selections into an order plus seat holds.
// Correctness under concurrent checkouts comes from the row locks taken inside
// each transaction; there is no in-process locking.
type ReservationService struct {
	tx        ports.Transactor
	seatRepo  ports.SeatRepository
	orderRepo ports.OrderRepository
	holdRepo  ports.SeatHoldRepository
	options
}

func NewReservationService(
	tx ports.Transactor,
	seatRepo ports.SeatRepository,
	orderRepo ports.OrderRepository,
	holdRepo ports.SeatHoldRepository,
	opts ...Option,
) *ReservationService {
	return &ReservationService{
		tx:        tx,
		seatRepo:  seatRepo,
		orderRepo: orderRepo,
		holdRepo:  holdRepo,
		options:   newOptions(opts),
	}
}

// CreateOrderWithSeatLocks reserves an explicit list of seats. Seats locked by
// another in-flight transaction are skipped rather than waited for, so a race
// on the same seat fails fast with SeatsUnavailableError.
func (s *ReservationService) CreateOrderWithSeatLocks(ctx context.Context, input domain.OrderInput, seatIDs []uuid.UUID) (*domain.SeatOrderResult, error) {
	if len(seatIDs) == 0 {
		return nil, domain.NewValidationError("no seats selected")
	}

	now := s.now()
	status, expiresAt, err := s.orderDefaults(input.Status, input.ExpiresAt, now)
	if err != nil {
		return nil, err
	}

	seatIDs = domain.UniqueSeatIDs(seatIDs)
	var order *domain.Order

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		locked, err := s.seatRepo.LockSeats(ctx, seatIDs)
		if err != nil {
			return fmt.Errorf("failed to lock seats: %w", err)
		}

		if len(locked) < len(seatIDs) {
			return &domain.SeatsUnavailableError{SeatIDs: missingSeatIDs(seatIDs, locked)}
		}

		var total float64
		for _, seat := range locked {
			if seat.EventID != input.EventID || !domain.SameShowing(seat.ShowingID, input.ShowingID) {
				return domain.NewValidationError("seat %s does not belong to the requested event and showing", seat.SeatID)
			}
			total += seat.Price
		}

		conflicts, err := s.seatRepo.FindConflictingSeatIDs(ctx, seatIDs, now)
		if err != nil {
			return fmt.Errorf("failed to check seat conflicts: %w", err)
		}
		if len(conflicts) > 0 {
			return &domain.SeatsUnavailableError{SeatIDs: conflicts}
		}

		order = &domain.Order{
			ID:          uuid.New(),
			UserID:      input.UserID,
			EventID:     input.EventID,
			ShowingID:   input.ShowingID,
			TotalAmount: total,
			Status:      status,
			ExpiresAt:   expiresAt,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		return s.insertOrderWithHolds(ctx, order, holdsForSeats(seatIDs))
	})
	if err != nil {
		s.logReservationFailure("seat-mapped", input.EventID, err)
		return nil, err
	}

	s.invalidateSeatStatus(ctx, input.EventID)
	s.logger.Info("Order created with seat locks",
		zap.String("order_id", order.ID.String()),
		zap.String("event_id", order.EventID.String()),
		zap.Int("seats", len(seatIDs)),
	)

	return &domain.SeatOrderResult{Order: order, SeatIDs: seatIDs}, nil
}

// CreateGAOrderWithSeatLocks allocates general-admission seats per area. Each
// area is either allocated in full or the whole transaction rolls back, so no
// hold survives a failed request. A seat claimed by a transaction that
// committed during the locking scan fails the request with
// SeatsUnavailableError.
func (s *ReservationService) CreateGAOrderWithSeatLocks(ctx context.Context, input domain.GAOrderInput) (*domain.GAOrderResult, error) {
	requests := normalizeAreaRequests(input.Requests)
	if len(requests) == 0 {
		return nil, domain.NewValidationError("no area requests with a positive quantity")
	}

	now := s.now()
	status, expiresAt, err := s.orderDefaults(input.Status, input.ExpiresAt, now)
	if err != nil {
		return nil, err
	}

	var (
		order *domain.Order
		seats []domain.LockedSeat
		total float64
	)

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		seats, total = nil, 0

		for _, req := range requests {
			locked, err := s.seatRepo.LockAvailableSeatsInArea(ctx, input.EventID, input.ShowingID, req.AreaID, req.Quantity, now)
			if err != nil {
				return fmt.Errorf("failed to lock seats in area %s: %w", req.AreaID, err)
			}
			if len(locked) < req.Quantity {
				return &domain.InsufficientCapacityError{
					AreaID:    req.AreaID,
					Requested: req.Quantity,
					Available: len(locked),
				}
			}

			// The locking scan filters on a snapshot taken when it started, so a
			// hold committed mid-scan is invisible to it. Re-check after the lock.
			lockedIDs := make([]uuid.UUID, 0, len(locked))
			for _, seat := range locked {
				lockedIDs = append(lockedIDs, seat.SeatID)
			}
			conflicts, err := s.seatRepo.FindConflictingSeatIDs(ctx, lockedIDs, now)
			if err != nil {
				return fmt.Errorf("failed to check seat conflicts in area %s: %w", req.AreaID, err)
			}
			if len(conflicts) > 0 {
				return &domain.SeatsUnavailableError{SeatIDs: conflicts}
			}

			seats = append(seats, locked...)
		}

		seatIDs := make([]uuid.UUID, 0, len(seats))
		for _, seat := range seats {
			total += seat.Price
			seatIDs = append(seatIDs, seat.SeatID)
		}

		order = &domain.Order{
			ID:          uuid.New(),
			UserID:      input.UserID,
			EventID:     input.EventID,
			ShowingID:   input.ShowingID,
			TotalAmount: total,
			Status:      status,
			ExpiresAt:   expiresAt,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		return s.insertOrderWithHolds(ctx, order, holdsForSeats(seatIDs))
	})
	if err != nil {
		s.logReservationFailure("general-admission", input.EventID, err)
		return nil, err
	}

	s.invalidateSeatStatus(ctx, input.EventID)
	s.logger.Info("GA order created with seat locks",
		zap.String("order_id", order.ID.String()),
		zap.String("event_id", order.EventID.String()),
		zap.Int("seats", len(seats)),
		zap.Float64("total_amount", total),
	)

	return &domain.GAOrderResult{Order: order, Seats: seats, TotalAmount: total}, nil
}

// ExecuteOrderTransaction inserts an order and its holds in one transaction.
// It performs no conflict checks; callers must already own the seats.
func (s *ReservationService) ExecuteOrderTransaction(ctx context.Context, order *domain.Order, holds []domain.SeatHold) (*domain.Order, error) {
	if order == nil {
		return nil, domain.NewValidationError("order is required")
	}

	now := s.now()
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.Status == "" {
		order.Status = domain.OrderPending
	}
	if order.ExpiresAt.IsZero() {
		order.ExpiresAt = now.Add(s.holdTTL)
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now

	pending := make([]domain.SeatHold, len(holds))
	copy(pending, holds)

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		return s.insertOrderWithHolds(ctx, order, pending)
	})
	if err != nil {
		return nil, err
	}

	s.invalidateSeatStatus(ctx, order.EventID)

	return order, nil
}

func (s *ReservationService) insertOrderWithHolds(ctx context.Context, order *domain.Order, holds []domain.SeatHold) error {
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	if len(holds) == 0 {
		return nil
	}

	for i := range holds {
		holds[i].OrderID = order.ID
		if holds[i].ID == uuid.Nil {
			holds[i].ID = uuid.New()
		}
		if holds[i].UserID == uuid.Nil {
			holds[i].UserID = order.UserID
		}
		if holds[i].ExpiresAt.IsZero() {
			holds[i].ExpiresAt = order.ExpiresAt
		}
		if holds[i].CreatedAt.IsZero() {
			holds[i].CreatedAt = order.CreatedAt
		}
	}

	if err := s.holdRepo.CreateBatch(ctx, holds); err != nil {
		return fmt.Errorf("failed to insert seat holds: %w", err)
	}

	return nil
}

func (s *ReservationService) orderDefaults(status domain.OrderStatus, expiresAt time.Time, now time.Time) (domain.OrderStatus, time.Time, error) {
	if status == "" {
		status = domain.OrderPending
	}
	if !status.IsPayable() {
		return "", time.Time{}, domain.NewValidationError("new orders must be pending, got %q", status)
	}

	if expiresAt.IsZero() {
		expiresAt = now.Add(s.holdTTL)
	}
	if !expiresAt.After(now) {
		return "", time.Time{}, domain.NewValidationError("expires_at must be in the future")
	}

	return status, expiresAt, nil
}

func (s *ReservationService) logReservationFailure(kind string, eventID uuid.UUID, err error) {
	fields := []zap.Field{
		zap.String("kind", kind),
		zap.String("event_id", eventID.String()),
		zap.String("code", domain.ErrorCode(err)),
		zap.Error(err),
	}

	if domain.ErrorCode(err) == "" {
		s.logger.Error("Reservation failed", fields...)
		return
	}
	s.logger.Info("Reservation rejected", fields...)
}

// holdsForSeats builds unconfirmed holds; the order fields are filled in by
// insertOrderWithHolds.
func holdsForSeats(seatIDs []uuid.UUID) []domain.SeatHold {
	holds := make([]domain.SeatHold, 0, len(seatIDs))
	for _, id := range seatIDs {
		holds = append(holds, domain.SeatHold{SeatID: id})
	}
	return holds
}

func missingSeatIDs(requested []uuid.UUID, locked []domain.LockedSeat) []uuid.UUID {
	got := make(map[uuid.UUID]struct{}, len(locked))
	for _, seat := range locked {
		got[seat.SeatID] = struct{}{}
	}

	var missing []uuid.UUID
	for _, id := range requested {
		if _, ok := got[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

// normalizeAreaRequests drops non-positive quantities and merges repeated
// areas. A transaction does not skip rows it already locked itself, so the
// same area queried twice would hand out the same seats twice.
func normalizeAreaRequests(requests []domain.AreaRequest) []domain.AreaRequest {
	index := make(map[uuid.UUID]int, len(requests))
	out := make([]domain.AreaRequest, 0, len(requests))

	for _, req := range requests {
		if req.Quantity <= 0 {
			continue
		}
		if i, ok := index[req.AreaID]; ok {
			out[i].Quantity += req.Quantity
			continue
		}
		index[req.AreaID] = len(out)
		out = append(out, req)
	}

	return out
}
