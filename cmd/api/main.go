package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/srgjo27/seat_reservation/internal/adapter/cache/redis"
	"github.com/srgjo27/seat_reservation/internal/adapter/handler"
	"github.com/srgjo27/seat_reservation/internal/adapter/repository/postgres"
	"github.com/srgjo27/seat_reservation/internal/config"
	"github.com/srgjo27/seat_reservation/internal/core/services"
	"github.com/srgjo27/seat_reservation/internal/platform/database"
	"github.com/srgjo27/seat_reservation/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLog, err := logger.New(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer appLog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgresDB(ctx, cfg.Database, appLog)
	if err != nil {
		appLog.Fatal("Failed to connect to db after retries", zap.Error(err))
	}
	defer db.Close()

	opts := []services.Option{
		services.WithLogger(appLog),
		services.WithHoldTTL(cfg.Reservation.HoldTTL),
	}

	if !cfg.Redis.Disabled {
		appLog.Info("Connecting to Redis", zap.String("addr", cfg.Redis.Addr()))

		redisClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			appLog.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		appLog.Info("Redis connected successfully")

		opts = append(opts, services.WithSeatStatusCache(redis.NewSeatStatusCache(redisClient, cfg.Redis.SeatStatusTTL)))
	}

	tx := postgres.NewTransactor(db)
	seatRepo := postgres.NewSeatRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	holdRepo := postgres.NewSeatHoldRepository(db)
	ticketRepo := postgres.NewTicketRepository(db)

	seatService := services.NewSeatService(seatRepo, opts...)
	reservationService := services.NewReservationService(tx, seatRepo, orderRepo, holdRepo, opts...)
	paymentService := services.NewPaymentService(tx, seatRepo, orderRepo, holdRepo, ticketRepo, opts...)

	if cfg.Reservation.ExpirySweepEnabled {
		sweeper := services.NewExpirySweeper(tx, orderRepo, holdRepo, cfg.Reservation.ExpirySweepEvery, cfg.Reservation.ExpirySweepBatch, opts...)
		go sweeper.Run(ctx)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), handler.RequestLogger(appLog))

	router.GET("/health", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handler.NewHandler(seatService, reservationService, paymentService, appLog).RegisterRoutes(router)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		appLog.Info("Server starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal("Server startup failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	appLog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLog.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	appLog.Info("Server exiting")
}
