package memory

import (
	"context"

	"stayops-backend/internal/domain"
)

type expenseRepository struct {
	store *Store
}

func (r *expenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	expense.ID = nextID(expenseIDs(s.expenses))
	s.expenses = append(s.expenses, *expense)
	return nil
}

func (r *expenseRepository) List(ctx context.Context) ([]domain.Expense, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	expenses := make([]domain.Expense, len(s.expenses))
	copy(expenses, s.expenses)
	return expenses, nil
}

func (r *expenseRepository) ListByBooking(ctx context.Context, bookingID int32) ([]domain.Expense, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var expenses []domain.Expense
	for _, e := range s.expenses {
		if e.BookingID == bookingID {
			expenses = append(expenses, e)
		}
	}
	return expenses, nil
}

func (r *expenseRepository) NextID(ctx context.Context) (int32, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	return nextID(expenseIDs(s.expenses)), nil
}

func expenseIDs(expenses []domain.Expense) []int32 {
	ids := make([]int32, len(expenses))
	for i, e := range expenses {
		ids[i] = e.ID
	}
	return ids
}
