package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/srgjo27/seat_reservation/internal/core/domain"
)

type ConfirmPaymentRequest struct {
	Tickets []TicketRequest `json:"tickets"`
}

type TicketRequest struct {
	SeatID uuid.UUID           `json:"seat_id"`
	Status domain.TicketStatus `json:"status"`
}

type UpdateStatusRequest struct {
	Status domain.OrderStatus `json:"status"`
}

// ConfirmPayment is safe to call repeatedly for the same order; replays
// return the tickets issued the first time.
func (h *Handler) ConfirmPayment(c *gin.Context) {
	orderID, ok := pathUUID(c, "orderID")
	if !ok {
		return
	}

	// An empty body tickets every held seat.
	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, "invalid json body")
		return
	}

	ticketData := make([]domain.TicketInput, 0, len(req.Tickets))
	for _, t := range req.Tickets {
		ticketData = append(ticketData, domain.TicketInput{SeatID: t.SeatID, Status: t.Status})
	}

	result, err := h.payments.ExecutePaymentTransaction(c.Request.Context(), orderID, currentUserID(c), ticketData)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order":      result.Order,
		"tickets":    result.Tickets,
		"seat_count": result.SeatCount,
	})
}

func (h *Handler) AttachVNPayData(c *gin.Context) {
	orderID, ok := pathUUID(c, "orderID")
	if !ok {
		return
	}

	var data domain.VNPayData
	if err := c.ShouldBindJSON(&data); err != nil {
		badRequest(c, "invalid json body")
		return
	}

	if err := h.payments.UpdateOrderVNPayData(c.Request.Context(), orderID, data); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) GetOrderByVNPayTxnRef(c *gin.Context) {
	order, err := h.payments.GetOrderByVNPayTxnRef(c.Request.Context(), c.Param("txnRef"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	orderID, ok := pathUUID(c, "orderID")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json body")
		return
	}

	if err := h.payments.UpdateOrderStatus(c.Request.Context(), orderID, req.Status); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
