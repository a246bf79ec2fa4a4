package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/srgjo27/seat_reservation/internal/core/domain"
)

const defaultSeatStatusTTL = 5 * time.Second

// SeatStatusCache stores seat status snapshots under "seats:<eventID>".
type SeatStatusCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewSeatStatusCache(client redis.Cmdable, ttl time.Duration) *SeatStatusCache {
	if ttl <= 0 {
		ttl = defaultSeatStatusTTL
	}
	return &SeatStatusCache{client: client, ttl: ttl}
}

func seatStatusKey(eventID uuid.UUID) string {
	return fmt.Sprintf("seats:%s", eventID.String())
}

func (c *SeatStatusCache) Get(ctx context.Context, eventID uuid.UUID) (*domain.SeatStatus, bool, error) {
	raw, err := c.client.Get(ctx, seatStatusKey(eventID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read seat status: %w", err)
	}

	var status domain.SeatStatus
	if err := json.Unmarshal(raw, &status); err != nil {
		return nil, false, fmt.Errorf("failed to decode seat status: %w", err)
	}

	return &status, true, nil
}

func (c *SeatStatusCache) Set(ctx context.Context, eventID uuid.UUID, status *domain.SeatStatus) error {
	raw, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("failed to encode seat status: %w", err)
	}

	if err := c.client.Set(ctx, seatStatusKey(eventID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write seat status: %w", err)
	}

	return nil
}

func (c *SeatStatusCache) Invalidate(ctx context.Context, eventID uuid.UUID) error {
	return c.client.Del(ctx, seatStatusKey(eventID)).Err()
}
