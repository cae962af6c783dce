package service

import (
	"context"
	"fmt"
	"strings"

	"stayops-backend/internal/domain"
	"stayops-backend/internal/repository"
)

// Presentation defaults for the non-economic fields of a newly listed
// property, matching the stock listing card.
const (
	defaultRating      = 5.0
	defaultBedrooms    = 3
	defaultBaths       = 3
	defaultGuests      = 6
	defaultImageURL    = "https://images.pexels.com/photos/261102/pexels-photo-261102.jpeg"
	defaultDescription = "Newly added pool villa by owner."
)

type propertyService struct {
	propertyRepo repository.PropertyRepository
	userRepo     repository.UserRepository
}

func NewPropertyService(propertyRepo repository.PropertyRepository, userRepo repository.UserRepository) PropertyService {
	return &propertyService{propertyRepo: propertyRepo, userRepo: userRepo}
}

func (s *propertyService) CreateProperty(ctx context.Context, name, location string, ownerID, operatorID int32, nightlyRate float64) (*domain.Property, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name: %w", domain.ErrMissingField)
	}
	if nightlyRate < 0 {
		return nil, fmt.Errorf("nightly rate: %w", domain.ErrNegativeAmount)
	}

	// Owner and operator must be existing users.
	if _, err := s.userRepo.GetByID(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("owner: %w", err)
	}
	if _, err := s.userRepo.GetByID(ctx, operatorID); err != nil {
		return nil, fmt.Errorf("operator: %w", err)
	}

	property := &domain.Property{
		Name:        name,
		Location:    location,
		OwnerID:     ownerID,
		OperatorID:  operatorID,
		NightlyRate: nightlyRate,
		Rating:      defaultRating,
		Reviews:     0,
		Bedrooms:    defaultBedrooms,
		Baths:       defaultBaths,
		Guests:      defaultGuests,
		ImageURL:    defaultImageURL,
		Description: defaultDescription,
	}
	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *propertyService) GetProperty(ctx context.Context, id int32) (*domain.Property, error) {
	return s.propertyRepo.GetByID(ctx, id)
}

func (s *propertyService) ListProperties(ctx context.Context) ([]domain.Property, error) {
	return s.propertyRepo.List(ctx)
}
