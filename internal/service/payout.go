package service

import (
	"context"

	"stayops-backend/internal/config"
	"stayops-backend/internal/domain"
	"stayops-backend/internal/logger"
	"stayops-backend/internal/repository"
)

type payoutService struct {
	bookingRepo  repository.BookingRepository
	propertyRepo repository.PropertyRepository
	expenseSvc   ExpenseService
	shares       config.RevenueConfig
}

func NewPayoutService(
	bookingRepo repository.BookingRepository,
	propertyRepo repository.PropertyRepository,
	expenseSvc ExpenseService,
	shares config.RevenueConfig,
) PayoutService {
	return &payoutService{
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
		expenseSvc:   expenseSvc,
		shares:       shares,
	}
}

// ComputeSplit allocates a booking's net profit among owner, operator
// and platform. Net is floored at zero, so expenses beyond the price
// total surface as a zero payout rather than a deficit. The three
// allocations sum to net exactly (modulo float rounding) because the
// shares are validated to sum to 1.0 at startup.
func ComputeSplit(priceTotal, expensesTotal float64, shares config.RevenueConfig) domain.Split {
	net := priceTotal - expensesTotal
	if net < 0 {
		net = 0
	}
	return domain.Split{
		PriceTotal:     priceTotal,
		ExpensesTotal:  expensesTotal,
		Net:            net,
		OwnerAmount:    net * shares.OwnerShare,
		OperatorAmount: net * shares.OperatorShare,
		PlatformAmount: net * shares.PlatformShare,
	}
}

func (s *payoutService) BookingSplit(ctx context.Context, bookingID int32) (*domain.Split, error) {
	logger.EnterMethod("payoutService.BookingSplit", "bookingID", bookingID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		logger.ExitMethodWithError("payoutService.BookingSplit", err, "bookingID", bookingID)
		return nil, err
	}

	expensesTotal, err := s.expenseSvc.TotalForBooking(ctx, bookingID)
	if err != nil {
		logger.ExitMethodWithError("payoutService.BookingSplit", err, "bookingID", bookingID)
		return nil, err
	}

	split := ComputeSplit(booking.PriceTotal, expensesTotal, s.shares)

	logger.ExitMethod("payoutService.BookingSplit", "bookingID", bookingID, "net", split.Net)
	return &split, nil
}

func (s *payoutService) SummarizeEarnings(ctx context.Context, role domain.UserRole, userID int32) (*domain.EarningsSummary, error) {
	logger.EnterMethod("payoutService.SummarizeEarnings", "role", role, "userID", userID)

	var properties []domain.Property
	var err error
	switch role {
	case domain.UserRoleOwner:
		properties, err = s.propertyRepo.ListByOwner(ctx, userID)
	case domain.UserRoleOperator:
		properties, err = s.propertyRepo.ListByOperator(ctx, userID)
	default:
		// Guests take no share of the split.
		err = domain.ErrInvalidRole
	}
	if err != nil {
		logger.ExitMethodWithError("payoutService.SummarizeEarnings", err, "role", role, "userID", userID)
		return nil, err
	}

	summary := &domain.EarningsSummary{}
	if len(properties) == 0 {
		logger.ExitMethod("payoutService.SummarizeEarnings", "role", role, "userID", userID, "bookings", 0)
		return summary, nil
	}

	propertySet := make(map[int32]bool, len(properties))
	for _, p := range properties {
		propertySet[p.ID] = true
	}

	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		logger.ExitMethodWithError("payoutService.SummarizeEarnings", err, "role", role, "userID", userID)
		return nil, err
	}

	for _, b := range bookings {
		if !propertySet[b.PropertyID] {
			continue
		}
		expensesTotal, err := s.expenseSvc.TotalForBooking(ctx, b.ID)
		if err != nil {
			logger.ExitMethodWithError("payoutService.SummarizeEarnings", err, "role", role, "userID", userID)
			return nil, err
		}
		split := ComputeSplit(b.PriceTotal, expensesTotal, s.shares)

		summary.BookingCount++
		if role == domain.UserRoleOwner {
			summary.TotalEarnings += split.OwnerAmount
		} else {
			summary.TotalEarnings += split.OperatorAmount
		}
	}

	logger.ExitMethod("payoutService.SummarizeEarnings", "role", role, "userID", userID,
		"bookings", summary.BookingCount, "earnings", summary.TotalEarnings)
	return summary, nil
}
