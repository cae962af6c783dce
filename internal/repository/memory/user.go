package memory

import (
	"context"
	"fmt"

	"stayops-backend/internal/domain"
)

type userRepository struct {
	store *Store
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = nextID(userIDs(s.users))
	s.users = append(s.users, *user)
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user %d: %w", id, domain.ErrUnknownReference)
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]domain.User, len(s.users))
	copy(users, s.users)
	return users, nil
}

func (r *userRepository) ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var users []domain.User
	for _, u := range s.users {
		if u.Role == role {
			users = append(users, u)
		}
	}
	return users, nil
}

func (r *userRepository) NextID(ctx context.Context) (int32, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	return nextID(userIDs(s.users)), nil
}

func userIDs(users []domain.User) []int32 {
	ids := make([]int32, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	return ids
}
