package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderPending        OrderStatus = "pending"
	OrderPendingPayment OrderStatus = "pending_payment"
	OrderPaid           OrderStatus = "paid"
	OrderExpired        OrderStatus = "expired"
	OrderCancelled      OrderStatus = "cancelled"
)

// IsPayable reports whether an order in this status may still be confirmed.
func (s OrderStatus) IsPayable() bool {
	return s == OrderPending || s == OrderPendingPayment
}

// IsTerminal reports whether the order's lifecycle has ended. Terminal orders
// accept no further status changes.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderPaid || s == OrderExpired || s == OrderCancelled
}

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderPendingPayment, OrderPaid, OrderExpired, OrderCancelled:
		return true
	}
	return false
}

type Order struct {
	ID              uuid.UUID        `json:"id"`
	UserID          uuid.UUID        `json:"user_id"`
	EventID         uuid.UUID        `json:"event_id"`
	ShowingID       uuid.NullUUID    `json:"showing_id"`
	TotalAmount     float64          `json:"total_amount"`
	Status          OrderStatus      `json:"status"`
	ExpiresAt       time.Time        `json:"expires_at"`
	PaymentMetadata *PaymentMetadata `json:"payment_metadata,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

func (o *Order) IsExpired(now time.Time) bool {
	return !o.ExpiresAt.After(now)
}

// OrderInput carries the caller-owned fields of a new seat-mapped order.
// TotalAmount is derived from the locked seats.
type OrderInput struct {
	UserID    uuid.UUID
	EventID   uuid.UUID
	ShowingID uuid.NullUUID
	Status    OrderStatus
	ExpiresAt time.Time
}

type SeatOrderResult struct {
	Order   *Order      `json:"order"`
	SeatIDs []uuid.UUID `json:"seat_ids"`
}

type AreaRequest struct {
	AreaID   uuid.UUID `json:"area_id"`
	Quantity int       `json:"quantity"`
}

type GAOrderInput struct {
	EventID   uuid.UUID
	ShowingID uuid.NullUUID
	UserID    uuid.UUID
	ExpiresAt time.Time
	Status    OrderStatus
	Requests  []AreaRequest
}

type GAOrderResult struct {
	Order       *Order       `json:"order"`
	Seats       []LockedSeat `json:"seats"`
	TotalAmount float64      `json:"total_amount"`
}

const PaymentProviderVNPay = "vnpay"

// PaymentMetadata is stored in orders.payment_metadata as
// {"provider": "...", "data": {...}}.
type PaymentMetadata struct {
	Provider string          `json:"provider"`
	Data     json.RawMessage `json:"data"`
}

type VNPayData struct {
	TxnRef        string `json:"txnRef"`
	TransactionNo string `json:"transactionNo,omitempty"`
	BankCode      string `json:"bankCode,omitempty"`
	ResponseCode  string `json:"responseCode,omitempty"`
	PayDate       string `json:"payDate,omitempty"`
	Amount        int64  `json:"amount,omitempty"`
}

func NewVNPayMetadata(data VNPayData) (*PaymentMetadata, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return &PaymentMetadata{Provider: PaymentProviderVNPay, Data: raw}, nil
}

// VNPay decodes the provider payload. ok is false for other providers.
func (m *PaymentMetadata) VNPay() (data VNPayData, ok bool, err error) {
	if m == nil || m.Provider != PaymentProviderVNPay {
		return VNPayData{}, false, nil
	}
	if err := json.Unmarshal(m.Data, &data); err != nil {
		return VNPayData{}, false, err
	}
	return data, true, nil
}
