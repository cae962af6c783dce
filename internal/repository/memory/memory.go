// Package memory implements the repositories over four in-process
// collections. A Store holds one session's worth of data: the host
// decides its lifetime (one per API session, one per test). A single
// RWMutex gives every operation exclusive or shared access to the
// collections for its duration.
package memory

import (
	"sync"

	"stayops-backend/internal/domain"
	"stayops-backend/internal/repository"
)

type Store struct {
	mu         sync.RWMutex
	users      []domain.User
	properties []domain.Property
	bookings   []domain.Booking
	expenses   []domain.Expense

	repository.UserRepository
	repository.PropertyRepository
	repository.BookingRepository
	repository.ExpenseRepository
}

func NewStore() *Store {
	s := &Store{}
	s.UserRepository = &userRepository{store: s}
	s.PropertyRepository = &propertyRepository{store: s}
	s.BookingRepository = &bookingRepository{store: s}
	s.ExpenseRepository = &expenseRepository{store: s}
	return s
}

// nextID returns 1 + the largest identifier ever assigned to the
// collection, or 1 when it is empty. With no deletions this can never
// hand out an identifier that is still in use. Callers hold s.mu.
func nextID(ids []int32) int32 {
	var max int32
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}
