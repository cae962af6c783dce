package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"stayops-backend/internal/domain"
)

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) List(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByProperty(ctx context.Context, propertyID int32) ([]domain.Booking, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) UpdateStatus(ctx context.Context, id int32, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockBookingRepo) NextID(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}

// MockPropertyRepo
type MockPropertyRepo struct {
	mock.Mock
}

func (m *MockPropertyRepo) Create(ctx context.Context, property *domain.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}
func (m *MockPropertyRepo) GetByID(ctx context.Context, id int32) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}
func (m *MockPropertyRepo) List(ctx context.Context) ([]domain.Property, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Property), args.Error(1)
}
func (m *MockPropertyRepo) ListByOwner(ctx context.Context, ownerID int32) ([]domain.Property, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Property), args.Error(1)
}
func (m *MockPropertyRepo) ListByOperator(ctx context.Context, operatorID int32) ([]domain.Property, error) {
	args := m.Called(ctx, operatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Property), args.Error(1)
}
func (m *MockPropertyRepo) NextID(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}
