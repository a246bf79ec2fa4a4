package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/seat_reservation/internal/core/domain"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	return db, mock
}

func TestTransactor_CommitsOnSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	orderID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders")).
		WithArgs(domain.OrderPaid, orderID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewOrderRepository(db)
	err := NewTransactor(db).WithTx(context.Background(), func(ctx context.Context) error {
		return repo.UpdateStatus(ctx, orderID, domain.OrderPaid)
	})

	assert.NoError(t, err)
}

func TestTransactor_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := NewTransactor(db).WithTx(context.Background(), func(ctx context.Context) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
}

func TestTransactor_NestedCallsJoinOuterTx(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	tx := NewTransactor(db)
	calls := 0
	err := tx.WithTx(context.Background(), func(ctx context.Context) error {
		return tx.WithTx(ctx, func(ctx context.Context) error {
			calls++
			return nil
		})
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestSeatRepository_LockSeats_SkipsLockedRows(t *testing.T) {
	db, mock := newMockDB(t)

	seatID, areaID, eventID, showingID := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE OF s SKIP LOCKED")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "area_id", "event_id", "showing_id", "price"}).
			AddRow(seatID.String(), areaID.String(), eventID.String(), showingID.String(), 150000.0))

	seats, err := NewSeatRepository(db).LockSeats(context.Background(), []uuid.UUID{seatID, uuid.New()})

	require.NoError(t, err)
	require.Len(t, seats, 1)
	assert.Equal(t, seatID, seats[0].SeatID)
	assert.Equal(t, areaID, seats[0].AreaID)
	assert.Equal(t, uuid.NullUUID{UUID: showingID, Valid: true}, seats[0].ShowingID)
	assert.Equal(t, 150000.0, seats[0].Price)
}

func TestSeatRepository_LockAvailableSeatsInArea_EventLevelArea(t *testing.T) {
	db, mock := newMockDB(t)

	eventID, areaID := uuid.New(), uuid.New()
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "area_id", "event_id", "showing_id", "price"})
	for i := 0; i < 3; i++ {
		rows.AddRow(uuid.New().String(), areaID.String(), eventID.String(), nil, 50000.0)
	}

	mock.ExpectQuery(`NOT EXISTS(.|\n)*LIMIT \$5\s+FOR UPDATE OF s SKIP LOCKED`).
		WithArgs(areaID, eventID, nil, now, 3).
		WillReturnRows(rows)

	seats, err := NewSeatRepository(db).LockAvailableSeatsInArea(context.Background(), eventID, uuid.NullUUID{}, areaID, 3, now)

	require.NoError(t, err)
	assert.Len(t, seats, 3)
	for _, s := range seats {
		assert.False(t, s.ShowingID.Valid)
	}
}

func TestSeatRepository_GetSeatPricing_EmptyInputSkipsQuery(t *testing.T) {
	db, _ := newMockDB(t)

	pricing, err := NewSeatRepository(db).GetSeatPricing(context.Background(), nil)

	assert.NoError(t, err)
	assert.Empty(t, pricing)
}

func TestSeatRepository_GetPaidSeatIDs(t *testing.T) {
	db, mock := newMockDB(t)

	eventID, seatID := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("status IN ('active', 'used')")).
		WithArgs(eventID).
		WillReturnRows(sqlmock.NewRows([]string{"seat_id"}).AddRow(seatID.String()))

	ids, err := NewSeatRepository(db).GetPaidSeatIDs(context.Background(), eventID)

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{seatID}, ids)
}

func TestSeatRepository_GetUnavailableSeatIDs(t *testing.T) {
	db, mock := newMockDB(t)

	seatA, seatB := uuid.New(), uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("UNION")).
		WithArgs(sqlmock.AnyArg(), now).
		WillReturnRows(sqlmock.NewRows([]string{"seat_id"}).AddRow(seatB.String()))

	ids, err := NewSeatRepository(db).GetUnavailableSeatIDs(context.Background(), []uuid.UUID{seatA, seatB}, now)

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{seatB}, ids)
}

func TestOrderRepository_GetByIDForUpdate_NotFound(t *testing.T) {
	db, mock := newMockDB(t)

	orderID, userID := uuid.New(), uuid.New()

	mock.ExpectQuery(`WHERE id = \$1 AND user_id = \$2\s+FOR UPDATE`).
		WithArgs(orderID, userID).
		WillReturnError(sql.ErrNoRows)

	order, err := NewOrderRepository(db).GetByIDForUpdate(context.Background(), orderID, userID)

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestOrderRepository_GetByVNPayTxnRef_DecodesMetadata(t *testing.T) {
	db, mock := newMockDB(t)

	orderID, userID, eventID := uuid.New(), uuid.New(), uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("payment_metadata->'data'->>'txnRef' = $1")).
		WithArgs("TXN-42").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "event_id", "showing_id", "total_amount", "status",
			"expires_at", "payment_metadata", "created_at", "updated_at",
		}).AddRow(
			orderID.String(), userID.String(), eventID.String(), nil, 300000.0, "pending_payment",
			now, []byte(`{"provider":"vnpay","data":{"txnRef":"TXN-42"}}`), now, now,
		))

	order, err := NewOrderRepository(db).GetByVNPayTxnRef(context.Background(), "TXN-42")

	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
	assert.Equal(t, domain.OrderPendingPayment, order.Status)

	data, ok, err := order.PaymentMetadata.VNPay()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "TXN-42", data.TxnRef)
}

func TestOrderRepository_UpdateStatus_MissingOrder(t *testing.T) {
	db, mock := newMockDB(t)

	orderID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders")).
		WithArgs(domain.OrderExpired, orderID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewOrderRepository(db).UpdateStatus(context.Background(), orderID, domain.OrderExpired)

	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestOrderRepository_UpdatePaymentMetadata(t *testing.T) {
	db, mock := newMockDB(t)

	orderID := uuid.New()
	meta, err := domain.NewVNPayMetadata(domain.VNPayData{TxnRef: "TXN-7"})
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta("SET payment_metadata = $1")).
		WithArgs(sqlmock.AnyArg(), orderID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = NewOrderRepository(db).UpdatePaymentMetadata(context.Background(), orderID, meta)

	assert.NoError(t, err)
}

func TestOrderRepository_LockExpiredPending(t *testing.T) {
	db, mock := newMockDB(t)

	now := time.Now().UTC()
	orderID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE SKIP LOCKED")).
		WithArgs(now, 10).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "event_id", "showing_id", "total_amount", "status",
			"expires_at", "payment_metadata", "created_at", "updated_at",
		}).AddRow(
			orderID.String(), uuid.NewString(), uuid.NewString(), nil, 100000.0, "pending",
			now.Add(-time.Minute), nil, now, now,
		))

	orders, err := NewOrderRepository(db).LockExpiredPending(context.Background(), now, 10)

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, orderID, orders[0].ID)
	assert.Nil(t, orders[0].PaymentMetadata)
}

func TestOrderRepository_LockByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)

	orderID := uuid.New()

	mock.ExpectQuery(`WHERE id = \$1\s+FOR UPDATE`).
		WithArgs(orderID).
		WillReturnError(sql.ErrNoRows)

	order, err := NewOrderRepository(db).LockByID(context.Background(), orderID)

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestSeatHoldRepository_ReleaseByOrder(t *testing.T) {
	db, mock := newMockDB(t)

	orderID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectExec(regexp.QuoteMeta("SET expires_at = $2")).
		WithArgs(orderID, now).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := NewSeatHoldRepository(db).ReleaseByOrder(context.Background(), orderID, now)

	assert.NoError(t, err)
}

func TestSeatHoldRepository_CreateBatch_SingleStatement(t *testing.T) {
	db, mock := newMockDB(t)

	orderID, userID := uuid.New(), uuid.New()
	expires := time.Now().Add(15 * time.Minute)
	holds := []domain.SeatHold{
		{ID: uuid.New(), SeatID: uuid.New(), OrderID: orderID, UserID: userID, ExpiresAt: expires, CreatedAt: time.Now()},
		{ID: uuid.New(), SeatID: uuid.New(), OrderID: orderID, UserID: userID, ExpiresAt: expires, CreatedAt: time.Now()},
	}

	mock.ExpectExec(regexp.QuoteMeta("VALUES ($1, $2, $3, $4, $5, $6, $7, $8), ($9, $10, $11, $12, $13, $14, $15, $16)")).
		WillReturnResult(sqlmock.NewResult(0, 2))

	assert.NoError(t, NewSeatHoldRepository(db).CreateBatch(context.Background(), holds))
}

func TestSeatHoldRepository_LockUnconfirmedByOrder(t *testing.T) {
	db, mock := newMockDB(t)

	orderID := uuid.New()
	expires := time.Now().Add(5 * time.Minute)

	mock.ExpectQuery(`WHERE order_id = \$1 AND is_confirmed = false\s+FOR UPDATE`).
		WithArgs(orderID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "seat_id", "order_id", "user_id", "expires_at", "is_confirmed", "is_paid", "created_at"}).
			AddRow(uuid.NewString(), uuid.NewString(), orderID.String(), uuid.NewString(), expires, false, false, time.Now()))

	holds, err := NewSeatHoldRepository(db).LockUnconfirmedByOrder(context.Background(), orderID)

	require.NoError(t, err)
	require.Len(t, holds, 1)
	assert.Equal(t, orderID, holds[0].OrderID)
	assert.False(t, holds[0].IsConfirmed)
}

func TestTicketRepository_CreateBatch_EmptyIsNoop(t *testing.T) {
	db, _ := newMockDB(t)

	assert.NoError(t, NewTicketRepository(db).CreateBatch(context.Background(), nil))
}

func TestTicketRepository_ListByOrder(t *testing.T) {
	db, mock := newMockDB(t)

	orderID, seatID, eventID := uuid.New(), uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM tickets")).
		WithArgs(orderID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "seat_id", "event_id", "showing_id", "price", "status", "created_at"}).
			AddRow(uuid.NewString(), orderID.String(), seatID.String(), eventID.String(), nil, 75000.0, "active", time.Now()))

	tickets, err := NewTicketRepository(db).ListByOrder(context.Background(), orderID)

	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, seatID, tickets[0].SeatID)
	assert.Equal(t, domain.TicketActive, tickets[0].Status)
}

func TestValuesList(t *testing.T) {
	assert.Equal(t, "($1, $2)", valuesList(1, 2))
	assert.Equal(t, "($1, $2, $3), ($4, $5, $6)", valuesList(2, 3))
}
