package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/srgjo27/seat_reservation/internal/config"
)

// NewPostgresDB opens the pool and waits for Postgres to accept connections,
// retrying while the database container is still starting.
func NewPostgresDB(ctx context.Context, cfg config.DatabaseConfig, log *zap.Logger) (*sql.DB, error) {
	open := func() (*sql.DB, error) {
		return sql.Open("postgres", cfg.DSN())
	}

	db, err := connect(ctx, open, cfg.ConnectRetries, cfg.RetryInterval, log)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

func connect(ctx context.Context, open func() (*sql.DB, error), maxRetries int, interval time.Duration, log *zap.Logger) (*sql.DB, error) {
	if maxRetries < 1 {
		maxRetries = 1
	}

	var err error
	for i := 1; i <= maxRetries; i++ {
		log.Info("Connecting to database", zap.Int("attempt", i), zap.Int("max_attempts", maxRetries))

		var db *sql.DB
		db, err = open()
		if err == nil {
			err = db.PingContext(ctx)
			if err == nil {
				log.Info("Database connected successfully")
				return db, nil
			}
			db.Close()
		}

		if i == maxRetries {
			break
		}

		log.Warn("Database not ready yet", zap.Duration("retry_in", interval), zap.Error(err))
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(interval):
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}
