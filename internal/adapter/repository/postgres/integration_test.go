package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/seat_reservation/internal/adapter/repository/postgres"
	"github.com/srgjo27/seat_reservation/internal/core/domain"
	"github.com/srgjo27/seat_reservation/internal/core/services"
)

// These tests need a disposable database: the schema is dropped and recreated.
//
//	TEST_DATABASE_URL=postgres://postgres@localhost:5432/seat_reservation_test?sslmode=disable go test ./...
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	t.Cleanup(func() { db.Close() })

	for _, name := range []string{"0001_init.down.sql", "0001_init.up.sql"} {
		script, err := os.ReadFile(filepath.Join("..", "..", "..", "..", "migrations", name))
		require.NoError(t, err)
		_, err = db.Exec(string(script))
		require.NoError(t, err, name)
	}

	return db
}

type venue struct {
	eventID uuid.UUID
	areaID  uuid.UUID
	seatIDs []uuid.UUID
}

// seedVenue creates one event-level area with the given number of seats.
func seedVenue(t *testing.T, db *sql.DB, seats int, price float64) venue {
	t.Helper()

	v := venue{eventID: uuid.New(), areaID: uuid.New()}
	rowID := uuid.New()

	_, err := db.Exec(`INSERT INTO events (id, name) VALUES ($1, 'Integration Night')`, v.eventID)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO areas (id, event_id, showing_id, name, price) VALUES ($1, $2, NULL, 'GA', $3)`, v.areaID, v.eventID, price)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO rows (id, area_id, name) VALUES ($1, $2, 'A')`, rowID, v.areaID)
	require.NoError(t, err)

	for i := 0; i < seats; i++ {
		id := uuid.New()
		_, err = db.Exec(`INSERT INTO seats (id, row_id, seat_number) VALUES ($1, $2, $3)`, id, rowID, i+1)
		require.NoError(t, err)
		v.seatIDs = append(v.seatIDs, id)
	}

	return v
}

type engine struct {
	reservations *services.ReservationService
	payments     *services.PaymentService
	seats        *services.SeatService
}

func newEngine(db *sql.DB, opts ...services.Option) engine {
	tx := postgres.NewTransactor(db)
	seatRepo := postgres.NewSeatRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	holdRepo := postgres.NewSeatHoldRepository(db)
	ticketRepo := postgres.NewTicketRepository(db)

	return engine{
		reservations: services.NewReservationService(tx, seatRepo, orderRepo, holdRepo, opts...),
		payments:     services.NewPaymentService(tx, seatRepo, orderRepo, holdRepo, ticketRepo, opts...),
		seats:        services.NewSeatService(seatRepo, opts...),
	}
}

func TestIntegration_ConcurrentSeatMappedReservation(t *testing.T) {
	db := openTestDB(t)
	v := seedVenue(t, db, 3, 50000)
	e := newEngine(db)

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.reservations.CreateOrderWithSeatLocks(context.Background(),
				domain.OrderInput{UserID: uuid.New(), EventID: v.eventID},
				[]uuid.UUID{v.seatIDs[0]},
			)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, domain.ErrSeatsUnavailable):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, conflicts)

	status, err := e.seats.GetSeatStatus(context.Background(), v.eventID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{v.seatIDs[0]}, status.ActiveHoldSeatIDs)
	assert.Empty(t, status.PaidSeatIDs)
}

func TestIntegration_ConcurrentGAReservation(t *testing.T) {
	db := openTestDB(t)
	v := seedVenue(t, db, 5, 100000)
	e := newEngine(db)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = e.reservations.CreateGAOrderWithSeatLocks(context.Background(), domain.GAOrderInput{
				EventID:  v.eventID,
				UserID:   uuid.New(),
				Requests: []domain.AreaRequest{{AreaID: v.areaID, Quantity: 3}},
			})
		}(i)
	}
	wg.Wait()

	var ok, short int
	for _, err := range results {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrInsufficientCapacity), errors.Is(err, domain.ErrSeatsUnavailable):
			short++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, short)

	var holds int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM seat_holds`).Scan(&holds))
	assert.Equal(t, 3, holds)
}

func TestIntegration_PaymentIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	v := seedVenue(t, db, 2, 75000)
	e := newEngine(db)
	ctx := context.Background()
	userID := uuid.New()

	res, err := e.reservations.CreateOrderWithSeatLocks(ctx, domain.OrderInput{UserID: userID, EventID: v.eventID}, v.seatIDs)
	require.NoError(t, err)
	assert.Equal(t, 150000.0, res.Order.TotalAmount)

	first, err := e.payments.ExecutePaymentTransaction(ctx, res.Order.ID, userID, nil)
	require.NoError(t, err)
	require.Len(t, first.Tickets, 2)

	second, err := e.payments.ExecutePaymentTransaction(ctx, res.Order.ID, userID, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, ticketIDs(first.Tickets), ticketIDs(second.Tickets))

	var tickets int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM tickets WHERE order_id = $1`, res.Order.ID).Scan(&tickets))
	assert.Equal(t, 2, tickets)

	_, err = e.payments.ExecutePaymentTransaction(ctx, res.Order.ID, uuid.New(), nil)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)

	status, err := e.seats.GetSeatStatus(ctx, v.eventID)
	require.NoError(t, err)
	assert.ElementsMatch(t, v.seatIDs, status.PaidSeatIDs)
	assert.Empty(t, status.ActiveHoldSeatIDs)
}

func TestIntegration_ExpiredOrderIsCommittedAsExpired(t *testing.T) {
	db := openTestDB(t)
	v := seedVenue(t, db, 1, 10000)
	ctx := context.Background()
	userID := uuid.New()

	res, err := newEngine(db).reservations.CreateOrderWithSeatLocks(ctx,
		domain.OrderInput{UserID: userID, EventID: v.eventID, ExpiresAt: time.Now().Add(time.Minute)},
		v.seatIDs,
	)
	require.NoError(t, err)

	later := newEngine(db, services.WithClock(func() time.Time { return time.Now().Add(time.Hour) }))
	_, err = later.payments.ExecutePaymentTransaction(ctx, res.Order.ID, userID, nil)
	assert.ErrorIs(t, err, domain.ErrOrderExpired)

	var status string
	require.NoError(t, db.QueryRow(`SELECT status FROM orders WHERE id = $1`, res.Order.ID).Scan(&status))
	assert.Equal(t, string(domain.OrderExpired), status)

	_, err = later.payments.ExecutePaymentTransaction(ctx, res.Order.ID, userID, nil)
	assert.ErrorIs(t, err, domain.ErrOrderNotPayable)
}

func TestIntegration_CancelledOrderFreesSeats(t *testing.T) {
	db := openTestDB(t)
	v := seedVenue(t, db, 1, 10000)
	e := newEngine(db)
	ctx := context.Background()

	first, err := e.reservations.CreateOrderWithSeatLocks(ctx, domain.OrderInput{UserID: uuid.New(), EventID: v.eventID}, v.seatIDs)
	require.NoError(t, err)

	_, err = e.reservations.CreateOrderWithSeatLocks(ctx, domain.OrderInput{UserID: uuid.New(), EventID: v.eventID}, v.seatIDs)
	require.ErrorIs(t, err, domain.ErrSeatsUnavailable)

	require.NoError(t, e.payments.UpdateOrderStatus(ctx, first.Order.ID, domain.OrderCancelled))
	assert.ErrorIs(t, e.payments.UpdateOrderStatus(ctx, first.Order.ID, domain.OrderPending), domain.ErrOrderNotPayable)

	_, err = e.reservations.CreateOrderWithSeatLocks(ctx, domain.OrderInput{UserID: uuid.New(), EventID: v.eventID}, v.seatIDs)
	assert.NoError(t, err)
}

func ticketIDs(tickets []domain.Ticket) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(tickets))
	for _, tk := range tickets {
		ids = append(ids, tk.ID)
	}
	return ids
}
