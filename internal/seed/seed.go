// Package seed loads the demo dataset a fresh store starts with: three
// users, six Khao Yai pool villas, one completed booking and its two
// expenses.
package seed

import (
	"context"

	"stayops-backend/internal/domain"
	"stayops-backend/internal/repository/memory"
)

func Apply(ctx context.Context, store *memory.Store) error {
	users := []domain.User{
		{Name: "Alice (Owner)", Role: domain.UserRoleOwner},
		{Name: "Bob (Operator)", Role: domain.UserRoleOperator},
		{Name: "Charlie (Guest)", Role: domain.UserRoleGuest},
	}
	for i := range users {
		if err := store.UserRepository.Create(ctx, &users[i]); err != nil {
			return err
		}
	}

	properties := []domain.Property{
		{
			Name:        "Khaoyai Sunset Villa",
			Location:    "Khao Yai, Thailand",
			OwnerID:     1,
			OperatorID:  2,
			NightlyRate: 6000.0,
			Rating:      4.8,
			Reviews:     32,
			Bedrooms:    3,
			Baths:       3,
			Guests:      6,
			ImageURL:    "https://images.pexels.com/photos/261102/pexels-photo-261102.jpeg",
			Description: "Private pool villa with mountain view, perfect for wellness & pet-friendly stays.",
		},
		{
			Name:        "Forest Retreat Pool Villa",
			Location:    "Khao Yai, Thailand",
			OwnerID:     1,
			OperatorID:  2,
			NightlyRate: 7500.0,
			Rating:      4.9,
			Reviews:     18,
			Bedrooms:    4,
			Baths:       4,
			Guests:      8,
			ImageURL:    "https://images.pexels.com/photos/32870/pexels-photo.jpg",
			Description: "Surrounded by trees, ideal for yoga retreats and quiet escapes from Bangkok.",
		},
		{
			Name:        "Skyline Mountain View Villa",
			Location:    "Khao Yai, Thailand",
			OwnerID:     1,
			OperatorID:  2,
			NightlyRate: 9000.0,
			Rating:      4.7,
			Reviews:     24,
			Bedrooms:    5,
			Baths:       5,
			Guests:      10,
			ImageURL:    "https://images.pexels.com/photos/258154/pexels-photo-258154.jpeg",
			Description: "Spacious villa with panoramic mountain views, great for large groups & events.",
		},
		{
			Name:        "Minimal Zen Pool House",
			Location:    "Khao Yai, Thailand",
			OwnerID:     1,
			OperatorID:  2,
			NightlyRate: 5500.0,
			Rating:      4.6,
			Reviews:     15,
			Bedrooms:    2,
			Baths:       2,
			Guests:      4,
			ImageURL:    "https://images.pexels.com/photos/1571460/pexels-photo-1571460.jpeg",
			Description: "Calm, minimal villa with private pool, ideal for couples and small families.",
		},
		{
			Name:        "Family Garden Pool Villa",
			Location:    "Khao Yai, Thailand",
			OwnerID:     1,
			OperatorID:  2,
			NightlyRate: 6800.0,
			Rating:      4.5,
			Reviews:     21,
			Bedrooms:    3,
			Baths:       3,
			Guests:      7,
			ImageURL:    "https://images.pexels.com/photos/261187/pexels-photo-261187.jpeg",
			Description: "Lush garden, BBQ area and kids-friendly pool – perfect for family trips.",
		},
		{
			Name:        "Wellness Retreat Pool Villa",
			Location:    "Khao Yai, Thailand",
			OwnerID:     1,
			OperatorID:  2,
			NightlyRate: 8200.0,
			Rating:      5.0,
			Reviews:     11,
			Bedrooms:    4,
			Baths:       4,
			Guests:      8,
			ImageURL:    "https://images.pexels.com/photos/1458457/pexels-photo-1458457.jpeg",
			Description: "Designed for wellness: yoga deck, quiet surroundings and detox-friendly kitchen.",
		},
	}
	for i := range properties {
		if err := store.PropertyRepository.Create(ctx, &properties[i]); err != nil {
			return err
		}
	}

	booking := domain.Booking{
		PropertyID: 1,
		GuestName:  "Charlie (Guest)",
		CheckIn:    "2025-01-10",
		CheckOut:   "2025-01-12",
		Nights:     2,
		PriceTotal: 12000.0,
		Status:     domain.BookingStatusCompleted,
	}
	if err := store.BookingRepository.Create(ctx, &booking); err != nil {
		return err
	}

	expenses := []domain.Expense{
		{BookingID: booking.ID, Description: "Cleaning", Amount: 500.0},
		{BookingID: booking.ID, Description: "Minor Repair", Amount: 300.0},
	}
	for i := range expenses {
		if err := store.ExpenseRepository.Create(ctx, &expenses[i]); err != nil {
			return err
		}
	}

	return nil
}
