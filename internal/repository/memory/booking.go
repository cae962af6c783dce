package memory

import (
	"context"
	"fmt"

	"stayops-backend/internal/domain"
)

type bookingRepository struct {
	store *Store
}

func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	booking.ID = nextID(bookingIDs(s.bookings))
	s.bookings = append(s.bookings, *booking)
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			b := s.bookings[i]
			return &b, nil
		}
	}
	return nil, fmt.Errorf("booking %d: %w", id, domain.ErrUnknownReference)
}

func (r *bookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := make([]domain.Booking, len(s.bookings))
	copy(bookings, s.bookings)
	return bookings, nil
}

func (r *bookingRepository) ListByProperty(ctx context.Context, propertyID int32) ([]domain.Booking, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var bookings []domain.Booking
	for _, b := range s.bookings {
		if b.PropertyID == propertyID {
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id int32, status domain.BookingStatus) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("booking %d: %w", id, domain.ErrUnknownReference)
}

func (r *bookingRepository) NextID(ctx context.Context) (int32, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	return nextID(bookingIDs(s.bookings)), nil
}

func bookingIDs(bookings []domain.Booking) []int32 {
	ids := make([]int32, len(bookings))
	for i, b := range bookings {
		ids[i] = b.ID
	}
	return ids
}
