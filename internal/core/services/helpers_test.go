package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/srgjo27/seat_reservation/internal/core/ports/mocks"
)

var fixedNow = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

// newPassthroughTx returns a Transactor mock that runs fn directly and records
// what fn itself returned, so tests can tell a committed body from a failed one.
func newPassthroughTx(t *testing.T) (*mocks.Transactor, *error) {
	tx := mocks.NewTransactor(t)
	var bodyErr error
	tx.On("WithTx", mock.Anything, mock.Anything).Return(func(ctx context.Context, fn func(context.Context) error) error {
		bodyErr = fn(ctx)
		return bodyErr
	}).Maybe()
	return tx, &bodyErr
}
