package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/srgjo27/seat_reservation/internal/core/ports"
)

const defaultHoldTTL = 15 * time.Minute

type options struct {
	logger  *zap.Logger
	now     func() time.Time
	holdTTL time.Duration
	cache   ports.SeatStatusCache
}

// Option configures the services in this package.
type Option func(*options)

// WithLogger sets the logger. A nil logger keeps the no-op default.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithClock overrides time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithHoldTTL sets the expiry used when a reservation request carries none.
func WithHoldTTL(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.holdTTL = d
		}
	}
}

// WithSeatStatusCache enables the per-event seat status cache. Writes
// invalidate it after they commit.
func WithSeatStatusCache(cache ports.SeatStatusCache) Option {
	return func(o *options) {
		o.cache = cache
	}
}

func newOptions(opts []Option) options {
	o := options{
		logger:  zap.NewNop(),
		now:     time.Now,
		holdTTL: defaultHoldTTL,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// invalidateSeatStatus drops the cached snapshot of an event. Failures only
// delay freshness until the TTL runs out, so they are logged and swallowed.
func (o *options) invalidateSeatStatus(ctx context.Context, eventID uuid.UUID) {
	if o.cache == nil {
		return
	}
	if err := o.cache.Invalidate(ctx, eventID); err != nil {
		o.logger.Warn("Failed to invalidate seat status cache",
			zap.String("event_id", eventID.String()),
			zap.Error(err),
		)
	}
}
