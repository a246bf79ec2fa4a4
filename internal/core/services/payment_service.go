package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/srgjo27/seat_reservation/internal/core/domain"
	"github.com/srgjo27/seat_reservation/internal/core/ports"
)

// PaymentService finalizes paid reservations into tickets and keeps the
// payment gateway's references on the order.
type PaymentService struct {
	tx         ports.Transactor
	seatRepo   ports.SeatRepository
	orderRepo  ports.OrderRepository
	holdRepo   ports.SeatHoldRepository
	ticketRepo ports.TicketRepository
	options
}

func NewPaymentService(
	tx ports.Transactor,
	seatRepo ports.SeatRepository,
	orderRepo ports.OrderRepository,
	holdRepo ports.SeatHoldRepository,
	ticketRepo ports.TicketRepository,
	opts ...Option,
) *PaymentService {
	return &PaymentService{
		tx:         tx,
		seatRepo:   seatRepo,
		orderRepo:  orderRepo,
		holdRepo:   holdRepo,
		ticketRepo: ticketRepo,
		options:    newOptions(opts),
	}
}

// ExecutePaymentTransaction confirms an order's holds and issues one ticket
// per held seat. It is the only place tickets are created and may be called
// any number of times for the same order: a paid order, or an order whose
// tickets already exist, returns the existing tickets.
//
// An order found past its own or a hold's expiry is moved to expired and that
// transition is committed before OrderExpiredError is returned.
func (s *PaymentService) ExecutePaymentTransaction(ctx context.Context, orderID, userID uuid.UUID, ticketData []domain.TicketInput) (*domain.PaymentResult, error) {
	var (
		result     *domain.PaymentResult
		expiredErr *domain.OrderExpiredError
		replayed   bool
		eventID    uuid.UUID
	)

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		result, expiredErr, replayed = nil, nil, false

		order, err := s.orderRepo.GetByIDForUpdate(ctx, orderID, userID)
		if err != nil {
			return err
		}
		eventID = order.EventID

		if order.Status == domain.OrderPaid {
			tickets, err := s.ticketRepo.ListByOrder(ctx, order.ID)
			if err != nil {
				return fmt.Errorf("failed to load issued tickets: %w", err)
			}
			result = &domain.PaymentResult{Order: order, Tickets: tickets, SeatCount: len(tickets)}
			replayed = true
			return nil
		}

		if !order.Status.IsPayable() {
			return &domain.OrderNotPayableError{Status: order.Status}
		}

		now := s.now()
		if order.IsExpired(now) {
			if err := s.expireOrder(ctx, order.ID, now); err != nil {
				return err
			}
			expiredErr = &domain.OrderExpiredError{OrderID: order.ID}
			return nil
		}

		holds, err := s.holdRepo.LockUnconfirmedByOrder(ctx, order.ID)
		if err != nil {
			return fmt.Errorf("failed to lock seat holds: %w", err)
		}
		if len(holds) == 0 {
			return domain.ErrNoSeatHolds
		}

		for _, hold := range holds {
			if hold.IsExpired(now) {
				if err := s.expireOrder(ctx, order.ID, now); err != nil {
					return err
				}
				expiredErr = &domain.OrderExpiredError{OrderID: order.ID, HoldExpired: true}
				return nil
			}
		}

		if err := s.holdRepo.ConfirmByOrder(ctx, order.ID); err != nil {
			return fmt.Errorf("failed to confirm seat holds: %w", err)
		}

		existing, err := s.ticketRepo.ListByOrder(ctx, order.ID)
		if err != nil {
			return fmt.Errorf("failed to load issued tickets: %w", err)
		}
		if len(existing) > 0 {
			if err := s.orderRepo.UpdateStatus(ctx, order.ID, domain.OrderPaid); err != nil {
				return fmt.Errorf("failed to mark order paid: %w", err)
			}
			order.Status = domain.OrderPaid
			result = &domain.PaymentResult{Order: order, Tickets: existing, SeatCount: len(existing)}
			replayed = true
			return nil
		}

		tickets, err := s.issueTickets(ctx, order, holds, ticketData)
		if err != nil {
			return err
		}

		if err := s.orderRepo.UpdateStatus(ctx, order.ID, domain.OrderPaid); err != nil {
			return fmt.Errorf("failed to mark order paid: %w", err)
		}
		order.Status = domain.OrderPaid
		order.UpdatedAt = now

		result = &domain.PaymentResult{Order: order, Tickets: tickets, SeatCount: len(tickets)}
		return nil
	})
	if err != nil {
		s.logger.Warn("Payment confirmation failed",
			zap.String("order_id", orderID.String()),
			zap.String("code", domain.ErrorCode(err)),
			zap.Error(err),
		)
		return nil, err
	}

	if expiredErr != nil {
		s.invalidateSeatStatus(ctx, eventID)
		s.logger.Info("Order expired at confirmation",
			zap.String("order_id", orderID.String()),
			zap.Bool("hold_expired", expiredErr.HoldExpired),
		)
		return nil, expiredErr
	}

	if replayed {
		s.logger.Info("Payment confirmation replayed",
			zap.String("order_id", orderID.String()),
			zap.Int("tickets", result.SeatCount),
		)
		return result, nil
	}

	s.invalidateSeatStatus(ctx, result.Order.EventID)
	s.logger.Info("Order paid",
		zap.String("order_id", orderID.String()),
		zap.Int("tickets", result.SeatCount),
	)

	return result, nil
}

// expireOrder flips the order to expired and releases whatever holds it still
// has, inside the caller's transaction.
func (s *PaymentService) expireOrder(ctx context.Context, orderID uuid.UUID, now time.Time) error {
	if err := s.orderRepo.UpdateStatus(ctx, orderID, domain.OrderExpired); err != nil {
		return fmt.Errorf("failed to expire order: %w", err)
	}
	if err := s.holdRepo.ReleaseByOrder(ctx, orderID, now); err != nil {
		return fmt.Errorf("failed to release seat holds: %w", err)
	}
	return nil
}

func (s *PaymentService) issueTickets(ctx context.Context, order *domain.Order, holds []domain.SeatHold, ticketData []domain.TicketInput) ([]domain.Ticket, error) {
	seatIDs, statuses, err := ticketSeats(holds, ticketData)
	if err != nil {
		return nil, err
	}

	pricing, err := s.seatRepo.GetSeatPricing(ctx, seatIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load seat metadata: %w", err)
	}

	bySeat := make(map[uuid.UUID]domain.SeatPricing, len(pricing))
	for _, p := range pricing {
		bySeat[p.SeatID] = p
	}

	now := s.now()
	tickets := make([]domain.Ticket, 0, len(seatIDs))
	for _, seatID := range seatIDs {
		meta, ok := bySeat[seatID]
		if !ok {
			return nil, fmt.Errorf("seat metadata missing for seat %s", seatID)
		}

		tickets = append(tickets, domain.Ticket{
			ID:        uuid.New(),
			OrderID:   order.ID,
			SeatID:    seatID,
			EventID:   meta.EventID,
			ShowingID: meta.ShowingID,
			Price:     meta.Price,
			Status:    statuses[seatID],
			CreatedAt: now,
		})
	}

	if err := s.ticketRepo.CreateBatch(ctx, tickets); err != nil {
		return nil, fmt.Errorf("failed to insert tickets: %w", err)
	}

	return tickets, nil
}

// ticketSeats resolves which seats get tickets. Without ticket data every held
// seat is ticketed as active; supplied seats must all be held by the order.
func ticketSeats(holds []domain.SeatHold, ticketData []domain.TicketInput) ([]uuid.UUID, map[uuid.UUID]domain.TicketStatus, error) {
	held := make([]uuid.UUID, 0, len(holds))
	for _, h := range holds {
		held = append(held, h.SeatID)
	}
	held = domain.UniqueSeatIDs(held)

	statuses := make(map[uuid.UUID]domain.TicketStatus, len(held))

	if len(ticketData) == 0 {
		for _, id := range held {
			statuses[id] = domain.TicketActive
		}
		return held, statuses, nil
	}

	heldSet := make(map[uuid.UUID]struct{}, len(held))
	for _, id := range held {
		heldSet[id] = struct{}{}
	}

	seatIDs := make([]uuid.UUID, 0, len(ticketData))
	for _, td := range ticketData {
		if _, ok := heldSet[td.SeatID]; !ok {
			return nil, nil, domain.NewValidationError("seat %s is not held by this order", td.SeatID)
		}
		if _, dup := statuses[td.SeatID]; dup {
			continue
		}

		status := td.Status
		if status == "" {
			status = domain.TicketActive
		}
		if !status.IsValid() {
			return nil, nil, domain.NewValidationError("unknown ticket status %q", status)
		}
		statuses[td.SeatID] = status
		seatIDs = append(seatIDs, td.SeatID)
	}

	return seatIDs, statuses, nil
}

// UpdateOrderVNPayData attaches the VNPay transaction reference and result
// fields to an order so the gateway callback can be correlated later.
func (s *PaymentService) UpdateOrderVNPayData(ctx context.Context, orderID uuid.UUID, data domain.VNPayData) error {
	if data.TxnRef == "" {
		return domain.NewValidationError("vnpay txnRef is required")
	}

	meta, err := domain.NewVNPayMetadata(data)
	if err != nil {
		return fmt.Errorf("failed to encode vnpay metadata: %w", err)
	}

	return s.tx.WithTx(ctx, func(ctx context.Context) error {
		return s.orderRepo.UpdatePaymentMetadata(ctx, orderID, meta)
	})
}

func (s *PaymentService) GetOrderByVNPayTxnRef(ctx context.Context, txnRef string) (*domain.Order, error) {
	if txnRef == "" {
		return nil, domain.NewValidationError("vnpay txnRef is required")
	}

	return s.orderRepo.GetByVNPayTxnRef(ctx, txnRef)
}

// UpdateOrderStatus moves a live order between the pending statuses or ends it
// as expired or cancelled. Paid is reachable only through
// ExecutePaymentTransaction, and paid, expired or cancelled orders are final.
// Ending an order releases its unconfirmed holds in the same transaction.
func (s *PaymentService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) error {
	if !status.IsValid() {
		return domain.NewValidationError("unknown order status %q", status)
	}
	if status == domain.OrderPaid {
		return domain.NewValidationError("orders become paid only through payment confirmation")
	}

	var (
		eventID  uuid.UUID
		released bool
	)

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		released = false

		order, err := s.orderRepo.LockByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order.Status.IsTerminal() {
			return &domain.OrderNotPayableError{Status: order.Status}
		}

		if err := s.orderRepo.UpdateStatus(ctx, order.ID, status); err != nil {
			return err
		}

		if status.IsTerminal() {
			if err := s.holdRepo.ReleaseByOrder(ctx, order.ID, s.now()); err != nil {
				return fmt.Errorf("failed to release seat holds: %w", err)
			}
			eventID = order.EventID
			released = true
		}
		return nil
	})
	if err != nil {
		return err
	}

	if released {
		s.invalidateSeatStatus(ctx, eventID)
	}

	s.logger.Info("Order status updated",
		zap.String("order_id", orderID.String()),
		zap.String("status", string(status)),
	)
	return nil
}
