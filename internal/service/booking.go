package service

import (
	"context"
	"fmt"
	"time"

	"stayops-backend/internal/domain"
	"stayops-backend/internal/logger"
	"stayops-backend/internal/repository"
)

const dateLayout = "2006-01-02"

type bookingService struct {
	bookingRepo  repository.BookingRepository
	propertyRepo repository.PropertyRepository
}

func NewBookingService(bookingRepo repository.BookingRepository, propertyRepo repository.PropertyRepository) BookingService {
	return &bookingService{bookingRepo: bookingRepo, propertyRepo: propertyRepo}
}

func (s *bookingService) CreateBooking(ctx context.Context, propertyID int32, guestName, checkIn, checkOut string) (*domain.Booking, error) {
	if guestName == "" {
		return nil, fmt.Errorf("guest name: %w", domain.ErrMissingField)
	}

	start, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return nil, fmt.Errorf("check-in %q: %w", checkIn, domain.ErrInvalidDateRange)
	}
	end, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return nil, fmt.Errorf("check-out %q: %w", checkOut, domain.ErrInvalidDateRange)
	}

	nights := int32(end.Sub(start).Hours() / 24)
	if nights <= 0 {
		return nil, domain.ErrInvalidDateRange
	}

	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		PropertyID: propertyID,
		GuestName:  guestName,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Nights:     nights,
		PriceTotal: property.NightlyRate * float64(nights),
		Status:     domain.BookingStatusBooked,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id int32) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *bookingService) ListBookings(ctx context.Context, propertyID int32) ([]domain.Booking, error) {
	if propertyID > 0 {
		return s.bookingRepo.ListByProperty(ctx, propertyID)
	}
	return s.bookingRepo.List(ctx)
}

func (s *bookingService) CompletePastBookings(ctx context.Context, today string) (int32, error) {
	cutoff, err := time.Parse(dateLayout, today)
	if err != nil {
		return 0, fmt.Errorf("invalid cutoff date: %w", err)
	}

	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		return 0, err
	}

	var count int32
	for _, b := range bookings {
		if b.Status != domain.BookingStatusBooked {
			continue
		}
		checkOut, err := time.Parse(dateLayout, b.CheckOut)
		if err != nil {
			logger.Warn("Skipping booking with unparsable check-out", "booking_id", b.ID, "check_out", b.CheckOut)
			continue
		}
		if checkOut.Before(cutoff) {
			if err := s.bookingRepo.UpdateStatus(ctx, b.ID, domain.BookingStatusCompleted); err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}
