package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/srgjo27/seat_reservation/internal/core/domain"
)

type CreateOrderRequest struct {
	EventID   uuid.UUID          `json:"event_id"`
	ShowingID *uuid.UUID         `json:"showing_id"`
	ExpiresAt time.Time          `json:"expires_at"`
	Status    domain.OrderStatus `json:"status"`
	SeatIDs   []uuid.UUID        `json:"seat_ids"`
}

type CreateGAOrderRequest struct {
	EventID   uuid.UUID             `json:"event_id"`
	ShowingID *uuid.UUID            `json:"showing_id"`
	ExpiresAt time.Time             `json:"expires_at"`
	Status    domain.OrderStatus    `json:"status"`
	Requests  []AreaQuantityRequest `json:"requests"`
}

type AreaQuantityRequest struct {
	AreaID   uuid.UUID `json:"area_id"`
	Quantity int       `json:"quantity"`
}

func nullShowing(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json body")
		return
	}
	if req.EventID == uuid.Nil {
		badRequest(c, "event_id is required")
		return
	}

	input := domain.OrderInput{
		UserID:    currentUserID(c),
		EventID:   req.EventID,
		ShowingID: nullShowing(req.ShowingID),
		Status:    req.Status,
		ExpiresAt: req.ExpiresAt,
	}

	result, err := h.orders.CreateOrderWithSeatLocks(c.Request.Context(), input, req.SeatIDs)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"order":    result.Order,
		"seat_ids": result.SeatIDs,
	})
}

func (h *Handler) CreateGAOrder(c *gin.Context) {
	var req CreateGAOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json body")
		return
	}
	if req.EventID == uuid.Nil {
		badRequest(c, "event_id is required")
		return
	}

	requests := make([]domain.AreaRequest, 0, len(req.Requests))
	for _, r := range req.Requests {
		requests = append(requests, domain.AreaRequest{AreaID: r.AreaID, Quantity: r.Quantity})
	}

	result, err := h.orders.CreateGAOrderWithSeatLocks(c.Request.Context(), domain.GAOrderInput{
		EventID:   req.EventID,
		ShowingID: nullShowing(req.ShowingID),
		UserID:    currentUserID(c),
		ExpiresAt: req.ExpiresAt,
		Status:    req.Status,
		Requests:  requests,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"order":        result.Order,
		"seats":        result.Seats,
		"total_amount": result.TotalAmount,
	})
}
