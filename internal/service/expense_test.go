package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayops-backend/internal/domain"
	"stayops-backend/internal/repository/memory"
	"stayops-backend/internal/seed"
	"stayops-backend/internal/service"
)

func seededExpense(t *testing.T) service.ExpenseService {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, seed.Apply(context.Background(), store))
	return service.NewExpenseService(store.ExpenseRepository, store.BookingRepository)
}

func TestExpenseService_CreateExpense(t *testing.T) {
	svc := seededExpense(t)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		expense, err := svc.CreateExpense(ctx, 1, "Pool maintenance", 450)
		require.NoError(t, err)
		assert.Equal(t, int32(3), expense.ID)
		assert.Equal(t, int32(1), expense.BookingID)
	})

	t.Run("Unknown booking", func(t *testing.T) {
		_, err := svc.CreateExpense(ctx, 99, "Cleaning", 500)
		assert.ErrorIs(t, err, domain.ErrUnknownReference)
	})

	t.Run("Negative amount", func(t *testing.T) {
		_, err := svc.CreateExpense(ctx, 1, "Refund", -100)
		assert.ErrorIs(t, err, domain.ErrNegativeAmount)
	})

	t.Run("Zero amount is allowed", func(t *testing.T) {
		_, err := svc.CreateExpense(ctx, 1, "Complimentary", 0)
		assert.NoError(t, err)
	})
}

func TestExpenseService_TotalForBooking(t *testing.T) {
	svc := seededExpense(t)
	ctx := context.Background()

	t.Run("Sums seeded expenses", func(t *testing.T) {
		total, err := svc.TotalForBooking(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 800.0, total)
	})

	t.Run("Stable without new expenses", func(t *testing.T) {
		first, err := svc.TotalForBooking(ctx, 1)
		require.NoError(t, err)
		second, err := svc.TotalForBooking(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("Zero when nothing recorded", func(t *testing.T) {
		total, err := svc.TotalForBooking(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, 0.0, total)
	})

	t.Run("Reflects newly recorded expenses", func(t *testing.T) {
		_, err := svc.CreateExpense(ctx, 1, "Gardening", 200)
		require.NoError(t, err)
		total, err := svc.TotalForBooking(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 1000.0, total)
	})
}
