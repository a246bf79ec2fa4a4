package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrValidation           = errors.New("validation failed")
	ErrSeatsUnavailable     = errors.New("seats unavailable")
	ErrInsufficientCapacity = errors.New("insufficient capacity")
	ErrOrderNotFound        = errors.New("order not found or user mismatch")
	ErrOrderNotPayable      = errors.New("order is not payable")
	ErrOrderExpired         = errors.New("order has expired")
	ErrNoSeatHolds          = errors.New("no seat holds found")
)

const (
	CodeValidation           = "VALIDATION_ERROR"
	CodeSeatsUnavailable     = "SEATS_UNAVAILABLE"
	CodeInsufficientCapacity = "INSUFFICIENT_CAPACITY"
	CodeOrderNotFound        = "ORDER_NOT_FOUND"
	CodeOrderNotPayable      = "ORDER_NOT_PAYABLE"
	CodeOrderExpired         = "ORDER_EXPIRED"
	CodeNoSeatHolds          = "NO_SEAT_HOLDS"
)

type ValidationError struct {
	Reason string
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string        { return "validation failed: " + e.Reason }
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
func (e *ValidationError) Code() string         { return CodeValidation }

// SeatsUnavailableError lists the seats that were locked by another
// transaction, already ticketed, or under an active hold.
type SeatsUnavailableError struct {
	SeatIDs []uuid.UUID
}

func (e *SeatsUnavailableError) Error() string {
	return fmt.Sprintf("seats unavailable: %d seat(s) taken", len(e.SeatIDs))
}
func (e *SeatsUnavailableError) Is(target error) bool { return target == ErrSeatsUnavailable }
func (e *SeatsUnavailableError) Code() string         { return CodeSeatsUnavailable }

type InsufficientCapacityError struct {
	AreaID    uuid.UUID
	Requested int
	Available int
}

func (e *InsufficientCapacityError) Error() string {
	return fmt.Sprintf("insufficient capacity in area %s: requested %d, available %d", e.AreaID, e.Requested, e.Available)
}
func (e *InsufficientCapacityError) Is(target error) bool { return target == ErrInsufficientCapacity }
func (e *InsufficientCapacityError) Code() string         { return CodeInsufficientCapacity }

type OrderNotPayableError struct {
	Status OrderStatus
}

func (e *OrderNotPayableError) Error() string {
	return fmt.Sprintf("order is not payable in status %q", e.Status)
}
func (e *OrderNotPayableError) Is(target error) bool { return target == ErrOrderNotPayable }
func (e *OrderNotPayableError) Code() string         { return CodeOrderNotPayable }

// OrderExpiredError is returned after the order has been moved to expired.
// HoldExpired is set when a seat hold, not the order itself, ran out.
type OrderExpiredError struct {
	OrderID     uuid.UUID
	HoldExpired bool
}

func (e *OrderExpiredError) Error() string {
	if e.HoldExpired {
		return fmt.Sprintf("order %s has expired: seat hold expired", e.OrderID)
	}
	return fmt.Sprintf("order %s has expired", e.OrderID)
}
func (e *OrderExpiredError) Is(target error) bool { return target == ErrOrderExpired }
func (e *OrderExpiredError) Code() string         { return CodeOrderExpired }

// ErrorCode returns the stable code for any error produced by the engine,
// or an empty string for infrastructure failures.
func ErrorCode(err error) string {
	var coded interface{ Code() string }
	if errors.As(err, &coded) {
		return coded.Code()
	}
	switch {
	case errors.Is(err, ErrOrderNotFound):
		return CodeOrderNotFound
	case errors.Is(err, ErrNoSeatHolds):
		return CodeNoSeatHolds
	case errors.Is(err, ErrValidation):
		return CodeValidation
	}
	return ""
}
