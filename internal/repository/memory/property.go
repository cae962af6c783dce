package memory

import (
	"context"
	"fmt"

	"stayops-backend/internal/domain"
)

type propertyRepository struct {
	store *Store
}

func (r *propertyRepository) Create(ctx context.Context, property *domain.Property) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	property.ID = nextID(propertyIDs(s.properties))
	s.properties = append(s.properties, *property)
	return nil
}

func (r *propertyRepository) GetByID(ctx context.Context, id int32) (*domain.Property, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.properties {
		if s.properties[i].ID == id {
			p := s.properties[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("property %d: %w", id, domain.ErrUnknownReference)
}

func (r *propertyRepository) List(ctx context.Context) ([]domain.Property, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	properties := make([]domain.Property, len(s.properties))
	copy(properties, s.properties)
	return properties, nil
}

func (r *propertyRepository) ListByOwner(ctx context.Context, ownerID int32) ([]domain.Property, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var properties []domain.Property
	for _, p := range s.properties {
		if p.OwnerID == ownerID {
			properties = append(properties, p)
		}
	}
	return properties, nil
}

func (r *propertyRepository) ListByOperator(ctx context.Context, operatorID int32) ([]domain.Property, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var properties []domain.Property
	for _, p := range s.properties {
		if p.OperatorID == operatorID {
			properties = append(properties, p)
		}
	}
	return properties, nil
}

func (r *propertyRepository) NextID(ctx context.Context) (int32, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	return nextID(propertyIDs(s.properties)), nil
}

func propertyIDs(properties []domain.Property) []int32 {
	ids := make([]int32, len(properties))
	for i, p := range properties {
		ids[i] = p.ID
	}
	return ids
}
