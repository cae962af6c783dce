package service

import (
	"context"
	"fmt"

	"stayops-backend/internal/domain"
	"stayops-backend/internal/repository"
)

type expenseService struct {
	expenseRepo repository.ExpenseRepository
	bookingRepo repository.BookingRepository
}

func NewExpenseService(expenseRepo repository.ExpenseRepository, bookingRepo repository.BookingRepository) ExpenseService {
	return &expenseService{expenseRepo: expenseRepo, bookingRepo: bookingRepo}
}

func (s *expenseService) CreateExpense(ctx context.Context, bookingID int32, description string, amount float64) (*domain.Expense, error) {
	if amount < 0 {
		return nil, fmt.Errorf("expense amount: %w", domain.ErrNegativeAmount)
	}
	if _, err := s.bookingRepo.GetByID(ctx, bookingID); err != nil {
		return nil, err
	}

	expense := &domain.Expense{
		BookingID:   bookingID,
		Description: description,
		Amount:      amount,
	}
	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) ListBookingExpenses(ctx context.Context, bookingID int32) ([]domain.Expense, error) {
	if _, err := s.bookingRepo.GetByID(ctx, bookingID); err != nil {
		return nil, err
	}
	return s.expenseRepo.ListByBooking(ctx, bookingID)
}

func (s *expenseService) TotalForBooking(ctx context.Context, bookingID int32) (float64, error) {
	expenses, err := s.expenseRepo.ListByBooking(ctx, bookingID)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total, nil
}
