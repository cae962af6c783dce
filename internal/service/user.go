package service

import (
	"context"
	"fmt"
	"strings"

	"stayops-backend/internal/domain"
	"stayops-backend/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(ctx context.Context, name string, role domain.UserRole) (*domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name: %w", domain.ErrMissingField)
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	user := &domain.User{
		Name: name,
		Role: role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id int32) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) ListUsers(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	if role == "" {
		return s.userRepo.List(ctx)
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	return s.userRepo.ListByRole(ctx, role)
}
