package domain

type Expense struct {
	ID          int32   `json:"id"`
	BookingID   int32   `json:"booking_id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}
