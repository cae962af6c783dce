package service

import (
	"context"

	"stayops-backend/internal/domain"
)

type UserService interface {
	CreateUser(ctx context.Context, name string, role domain.UserRole) (*domain.User, error)
	GetUser(ctx context.Context, id int32) (*domain.User, error)
	// ListUsers returns every user, or only those with the given role
	// when role is non-empty.
	ListUsers(ctx context.Context, role domain.UserRole) ([]domain.User, error)
}

type PropertyService interface {
	CreateProperty(ctx context.Context, name, location string, ownerID, operatorID int32, nightlyRate float64) (*domain.Property, error)
	GetProperty(ctx context.Context, id int32) (*domain.Property, error)
	ListProperties(ctx context.Context) ([]domain.Property, error)
}

type BookingService interface {
	// CreateBooking computes nights and the frozen price total from the
	// property's current nightly rate. Dates are yyyy-mm-dd; check-out
	// must be strictly after check-in.
	CreateBooking(ctx context.Context, propertyID int32, guestName, checkIn, checkOut string) (*domain.Booking, error)
	GetBooking(ctx context.Context, id int32) (*domain.Booking, error)
	// ListBookings returns every booking, or only those against the
	// given property when propertyID > 0.
	ListBookings(ctx context.Context, propertyID int32) ([]domain.Booking, error)
	// CompletePastBookings marks booked stays whose check-out date is
	// before today as completed. Returns how many rows were flipped.
	CompletePastBookings(ctx context.Context, today string) (int32, error)
}

type ExpenseService interface {
	CreateExpense(ctx context.Context, bookingID int32, description string, amount float64) (*domain.Expense, error)
	ListBookingExpenses(ctx context.Context, bookingID int32) ([]domain.Expense, error)
	// TotalForBooking sums expense amounts recorded against the
	// booking; zero when none match.
	TotalForBooking(ctx context.Context, bookingID int32) (float64, error)
}

type PayoutService interface {
	BookingSplit(ctx context.Context, bookingID int32) (*domain.Split, error)
	SummarizeEarnings(ctx context.Context, role domain.UserRole, userID int32) (*domain.EarningsSummary, error)
}
