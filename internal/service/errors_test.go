package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"stayops-backend/internal/domain"
	"stayops-backend/internal/repository/memory"
	"stayops-backend/internal/service"
)

func TestBookingService_RepositoryErrorPropagates(t *testing.T) {
	bookingRepo := new(MockBookingRepo)
	propertyRepo := new(MockPropertyRepo)
	svc := service.NewBookingService(bookingRepo, propertyRepo)
	ctx := context.Background()

	boom := errors.New("store unavailable")
	propertyRepo.On("GetByID", ctx, int32(1)).Return(&domain.Property{ID: 1, NightlyRate: 6000}, nil)
	bookingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(boom)

	_, err := svc.CreateBooking(ctx, 1, "Dana", "2025-03-10", "2025-03-12")
	assert.ErrorIs(t, err, boom)
}

func TestPayoutService_RepositoryErrorPropagates(t *testing.T) {
	bookingRepo := new(MockBookingRepo)
	propertyRepo := new(MockPropertyRepo)
	store := memory.NewStore()
	expenseSvc := service.NewExpenseService(store.ExpenseRepository, store.BookingRepository)
	svc := service.NewPayoutService(bookingRepo, propertyRepo, expenseSvc, defaultShares())
	ctx := context.Background()

	boom := errors.New("store unavailable")
	propertyRepo.On("ListByOwner", ctx, int32(1)).Return([]domain.Property{{ID: 1, OwnerID: 1}}, nil)
	bookingRepo.On("List", ctx).Return(nil, boom)

	_, err := svc.SummarizeEarnings(ctx, domain.UserRoleOwner, 1)
	assert.ErrorIs(t, err, boom)
}
