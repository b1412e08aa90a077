package domain

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// ParseBookingStatus validates a status at the store-write boundary. The
// bookings table itself does not constrain the column, so every write path
// must go through here.
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return BookingStatus(s), nil
	default:
		return "", fmt.Errorf("unknown booking status %q", s)
	}
}

type Booking struct {
	ID            string        `json:"id"`
	ProviderID    string        `json:"provider_id"`
	ServiceID     string        `json:"service_id"`
	CustomerName  string        `json:"customer_name"`
	CustomerEmail string        `json:"customer_email"`
	CustomerPhone string        `json:"customer_phone"`
	BookingDate   string        `json:"booking_date"` // YYYY-MM-DD
	BookingTime   string        `json:"booking_time"` // HH:MM
	Status        BookingStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`

	// Filled by the list query's join, absent elsewhere.
	Service *BookingService `json:"services,omitempty"`
}

// BookingService is the slice of the service row that the bookings list
// carries along for display.
type BookingService struct {
	Name     string  `json:"name"`
	Duration int32   `json:"duration"`
	Price    float64 `json:"price"`
}
