package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/srgjo27/seat_reservation/internal/core/domain"
)

type SeatQuerier interface {
	GetSeatStatus(ctx context.Context, eventID uuid.UUID) (*domain.SeatStatus, error)
	GetSeatPricing(ctx context.Context, seatIDs []uuid.UUID) ([]domain.SeatPricing, error)
	GetSeatAvailabilityStatus(ctx context.Context, seatIDs []uuid.UUID) (*domain.SeatAvailability, error)
}

type Reserver interface {
	CreateOrderWithSeatLocks(ctx context.Context, input domain.OrderInput, seatIDs []uuid.UUID) (*domain.SeatOrderResult, error)
	CreateGAOrderWithSeatLocks(ctx context.Context, input domain.GAOrderInput) (*domain.GAOrderResult, error)
}

type PaymentProcessor interface {
	ExecutePaymentTransaction(ctx context.Context, orderID, userID uuid.UUID, ticketData []domain.TicketInput) (*domain.PaymentResult, error)
	UpdateOrderVNPayData(ctx context.Context, orderID uuid.UUID, data domain.VNPayData) error
	GetOrderByVNPayTxnRef(ctx context.Context, txnRef string) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) error
}

type Handler struct {
	seats    SeatQuerier
	orders   Reserver
	payments PaymentProcessor
	log      *zap.Logger
}

func NewHandler(seats SeatQuerier, orders Reserver, payments PaymentProcessor, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{seats: seats, orders: orders, payments: payments, log: log}
}

// RegisterRoutes mounts every endpoint under /api/v1. Routes that act on
// behalf of a customer require the X-User-ID header.
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	v1 := router.Group("/api/v1")

	v1.GET("/events/:eventID/seat-status", h.GetSeatStatus)
	v1.POST("/seats/pricing", h.GetSeatPricing)
	v1.POST("/seats/availability", h.GetSeatAvailability)

	customer := v1.Group("")
	customer.Use(RequireUserID())
	customer.POST("/orders", h.CreateOrder)
	customer.POST("/ga-orders", h.CreateGAOrder)
	customer.POST("/orders/:orderID/confirm", h.ConfirmPayment)

	// Gateway and back-office callers.
	v1.PUT("/orders/:orderID/vnpay", h.AttachVNPayData)
	v1.GET("/payments/vnpay/:txnRef", h.GetOrderByVNPayTxnRef)
	v1.PATCH("/orders/:orderID/status", h.UpdateOrderStatus)
}
