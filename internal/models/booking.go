package models

// Booking is a persisted reservation row as it appears on the wire.
// PricePerNight is derived from the stored total on read.
type Booking struct {
	ID            int     `json:"booking_id"`
	UserID        string  `json:"user_id"`
	Hotel         string  `json:"hotel"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	Guests        int     `json:"guests"`
	Nights        int     `json:"nights"`
	PricePerNight float64 `json:"pricePerNight"`
	BookingDate   string  `json:"booking_date"`
	Status        string  `json:"status"`
	Image         string  `json:"image"`
}

// NewBooking carries the fields a caller supplies on create. The id, booking
// date and status are assigned by the store.
type NewBooking struct {
	UserID      string
	Hotel       string
	StartDate   string
	EndDate     string
	Guests      int
	Nights      int
	TotalAmount float64
	Image       string
}
