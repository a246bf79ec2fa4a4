package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/srgjo27/seat_reservation/internal/core/domain"
	"github.com/srgjo27/seat_reservation/internal/core/ports"
)

// SeatService answers read-only availability questions for the seat map and
// checkout UI. None of its answers are a reservation guarantee.
type SeatService struct {
	seatRepo ports.SeatRepository
	options
}

func NewSeatService(seatRepo ports.SeatRepository, opts ...Option) *SeatService {
	return &SeatService{
		seatRepo: seatRepo,
		options:  newOptions(opts),
	}
}

func (s *SeatService) GetSeatStatus(ctx context.Context, eventID uuid.UUID) (*domain.SeatStatus, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, eventID)
		if err != nil {
			s.logger.Warn("Seat status cache read failed", zap.String("event_id", eventID.String()), zap.Error(err))
		} else if ok {
			return cached, nil
		}
	}

	paid, err := s.seatRepo.GetPaidSeatIDs(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load paid seats: %w", err)
	}

	held, err := s.seatRepo.GetActiveHoldSeatIDs(ctx, eventID, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to load held seats: %w", err)
	}

	paidSet := make(map[uuid.UUID]struct{}, len(paid))
	for _, id := range paid {
		paidSet[id] = struct{}{}
	}

	status := &domain.SeatStatus{
		PaidSeatIDs:       make([]uuid.UUID, 0, len(paid)),
		ActiveHoldSeatIDs: make([]uuid.UUID, 0, len(held)),
	}
	status.PaidSeatIDs = append(status.PaidSeatIDs, paid...)
	for _, id := range held {
		if _, ok := paidSet[id]; ok {
			continue
		}
		status.ActiveHoldSeatIDs = append(status.ActiveHoldSeatIDs, id)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, eventID, status); err != nil {
			s.logger.Warn("Seat status cache write failed", zap.String("event_id", eventID.String()), zap.Error(err))
		}
	}

	return status, nil
}

func (s *SeatService) GetSeatPricing(ctx context.Context, seatIDs []uuid.UUID) ([]domain.SeatPricing, error) {
	if len(seatIDs) == 0 {
		return []domain.SeatPricing{}, nil
	}

	pricing, err := s.seatRepo.GetSeatPricing(ctx, domain.UniqueSeatIDs(seatIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to load seat pricing: %w", err)
	}

	return pricing, nil
}

// GetSeatAvailabilityStatus is a pre-submit check. The reservation
// transaction re-checks under lock.
func (s *SeatService) GetSeatAvailabilityStatus(ctx context.Context, seatIDs []uuid.UUID) (*domain.SeatAvailability, error) {
	if len(seatIDs) == 0 {
		return &domain.SeatAvailability{UnavailableSeatIDs: []uuid.UUID{}}, nil
	}

	unavailable, err := s.seatRepo.GetUnavailableSeatIDs(ctx, domain.UniqueSeatIDs(seatIDs), s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to check seat availability: %w", err)
	}
	if unavailable == nil {
		unavailable = []uuid.UUID{}
	}

	return &domain.SeatAvailability{UnavailableSeatIDs: unavailable}, nil
}
