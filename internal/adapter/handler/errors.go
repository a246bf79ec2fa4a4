package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/srgjo27/seat_reservation/internal/core/domain"
)

type ErrorResponse struct {
	Error   string      `json:"error"`
	Code    string      `json:"code"`
	Message string      `json:"message"`
	SeatIDs []uuid.UUID `json:"seat_ids,omitempty"`
	AreaID  *uuid.UUID  `json:"area_id,omitempty"`
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrSeatsUnavailable),
		errors.Is(err, domain.ErrInsufficientCapacity),
		errors.Is(err, domain.ErrOrderNotPayable),
		errors.Is(err, domain.ErrNoSeatHolds):
		return http.StatusConflict
	case errors.Is(err, domain.ErrOrderExpired):
		return http.StatusGone
	}
	return http.StatusInternalServerError
}

func (h *Handler) writeError(c *gin.Context, err error) {
	status := statusFor(err)
	_ = c.Error(err)

	if status == http.StatusInternalServerError {
		h.log.Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(status, ErrorResponse{
			Error:   http.StatusText(status),
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		})
		return
	}

	resp := ErrorResponse{
		Error:   http.StatusText(status),
		Code:    domain.ErrorCode(err),
		Message: err.Error(),
	}

	var unavailable *domain.SeatsUnavailableError
	if errors.As(err, &unavailable) {
		resp.SeatIDs = unavailable.SeatIDs
	}
	var capacity *domain.InsufficientCapacityError
	if errors.As(err, &capacity) {
		areaID := capacity.AreaID
		resp.AreaID = &areaID
	}

	c.JSON(status, resp)
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   http.StatusText(http.StatusBadRequest),
		Code:    domain.CodeValidation,
		Message: message,
	})
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
