package domain

type BookingStatus string

const (
	BookingStatusBooked    BookingStatus = "booked"
	BookingStatusCompleted BookingStatus = "completed"
)

type Booking struct {
	ID         int32  `json:"id"`
	PropertyID int32  `json:"property_id"`
	GuestName  string `json:"guest_name"`
	CheckIn    string `json:"check_in"`  // yyyy-mm-dd
	CheckOut   string `json:"check_out"` // yyyy-mm-dd
	Nights     int32  `json:"nights"`
	// PriceTotal is snapshotted from the property's nightly rate at
	// creation time. Later rate changes do not touch it.
	PriceTotal float64       `json:"price_total"`
	Status     BookingStatus `json:"status"`
}
