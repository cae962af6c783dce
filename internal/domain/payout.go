package domain

// Split is the three-way allocation of a booking's net profit. Net is
// the price total minus aggregated expenses, floored at zero: expenses
// beyond the price total are absorbed, never reported as a deficit.
type Split struct {
	PriceTotal     float64 `json:"price_total"`
	ExpensesTotal  float64 `json:"expenses_total"`
	Net            float64 `json:"net"`
	OwnerAmount    float64 `json:"owner_amount"`
	OperatorAmount float64 `json:"operator_amount"`
	PlatformAmount float64 `json:"platform_amount"`
}

// EarningsSummary aggregates a user's allocated share across every
// booking on the properties they own or operate.
type EarningsSummary struct {
	BookingCount  int32   `json:"booking_count"`
	TotalEarnings float64 `json:"total_earnings"`
}
