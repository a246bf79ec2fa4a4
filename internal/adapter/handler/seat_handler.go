package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SeatIDsRequest struct {
	SeatIDs []uuid.UUID `json:"seat_ids"`
}

func (h *Handler) GetSeatStatus(c *gin.Context) {
	eventID, ok := pathUUID(c, "eventID")
	if !ok {
		return
	}

	status, err := h.seats.GetSeatStatus(c.Request.Context(), eventID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

func (h *Handler) GetSeatPricing(c *gin.Context) {
	var req SeatIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json body")
		return
	}

	pricing, err := h.seats.GetSeatPricing(c.Request.Context(), req.SeatIDs)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"seats": pricing})
}

func (h *Handler) GetSeatAvailability(c *gin.Context) {
	var req SeatIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json body")
		return
	}

	availability, err := h.seats.GetSeatAvailabilityStatus(c.Request.Context(), req.SeatIDs)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, availability)
}
