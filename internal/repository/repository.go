package repository

import (
	"context"

	"stayops-backend/internal/domain"
)

// The repositories own the four collections. Create assigns the next
// identifier (1 + max of the existing ones, 1 for an empty collection)
// and inserts; identifiers are never reassigned afterwards. Lookups
// that find nothing fail with domain.ErrUnknownReference.

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error)
	NextID(ctx context.Context) (int32, error)
}

type PropertyRepository interface {
	Create(ctx context.Context, property *domain.Property) error
	GetByID(ctx context.Context, id int32) (*domain.Property, error)
	List(ctx context.Context) ([]domain.Property, error)
	ListByOwner(ctx context.Context, ownerID int32) ([]domain.Property, error)
	ListByOperator(ctx context.Context, operatorID int32) ([]domain.Property, error)
	NextID(ctx context.Context) (int32, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int32) (*domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
	ListByProperty(ctx context.Context, propertyID int32) ([]domain.Booking, error)
	// UpdateStatus is the only mutation after creation; it exists for
	// the nightly completion job.
	UpdateStatus(ctx context.Context, id int32, status domain.BookingStatus) error
	NextID(ctx context.Context) (int32, error)
}

type ExpenseRepository interface {
	Create(ctx context.Context, expense *domain.Expense) error
	List(ctx context.Context) ([]domain.Expense, error)
	ListByBooking(ctx context.Context, bookingID int32) ([]domain.Expense, error)
	NextID(ctx context.Context) (int32, error)
}
