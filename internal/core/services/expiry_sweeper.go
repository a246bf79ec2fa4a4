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

const (
	defaultSweepInterval = time.Minute
	defaultSweepBatch    = 100
)

// ExpirySweeper moves stale pending orders to expired and releases their
// holds, so their seats show as free without waiting for a confirmation
// attempt. Confirmation re-checks
// expiry on its own, so running the sweeper is optional.
type ExpirySweeper struct {
	tx        ports.Transactor
	orderRepo ports.OrderRepository
	holdRepo  ports.SeatHoldRepository
	interval  time.Duration
	batch     int
	options
}

func NewExpirySweeper(tx ports.Transactor, orderRepo ports.OrderRepository, holdRepo ports.SeatHoldRepository, interval time.Duration, batch int, opts ...Option) *ExpirySweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	if batch <= 0 {
		batch = defaultSweepBatch
	}

	return &ExpirySweeper{
		tx:        tx,
		orderRepo: orderRepo,
		holdRepo:  holdRepo,
		interval:  interval,
		batch:     batch,
		options:   newOptions(opts),
	}
}

func (w *ExpirySweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("Expiry sweeper started", zap.Duration("interval", w.interval))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Expiry sweeper stopped")
			return
		case <-ticker.C:
			if _, err := w.SweepOnce(ctx); err != nil {
				w.logger.Error("Expiry sweep failed", zap.Error(err))
			}
		}
	}
}

// SweepOnce expires one batch of overdue orders and returns how many were
// moved. Rows already locked by a confirmation or another sweeper are skipped.
func (w *ExpirySweeper) SweepOnce(ctx context.Context) (int, error) {
	var expired []domain.Order

	err := w.tx.WithTx(ctx, func(ctx context.Context) error {
		now := w.now()
		orders, err := w.orderRepo.LockExpiredPending(ctx, now, w.batch)
		if err != nil {
			return fmt.Errorf("failed to fetch expired orders: %w", err)
		}

		for _, o := range orders {
			if err := w.orderRepo.UpdateStatus(ctx, o.ID, domain.OrderExpired); err != nil {
				return fmt.Errorf("failed to expire order %s: %w", o.ID, err)
			}
			if err := w.holdRepo.ReleaseByOrder(ctx, o.ID, now); err != nil {
				return fmt.Errorf("failed to release holds of order %s: %w", o.ID, err)
			}
		}

		expired = orders
		return nil
	})
	if err != nil {
		return 0, err
	}

	if len(expired) == 0 {
		return 0, nil
	}

	events := make(map[uuid.UUID]struct{})
	for _, o := range expired {
		w.logger.Info("Order expired by sweeper", zap.String("order_id", o.ID.String()))
		if _, seen := events[o.EventID]; seen {
			continue
		}
		events[o.EventID] = struct{}{}
		w.invalidateSeatStatus(ctx, o.EventID)
	}

	return len(expired), nil
}
