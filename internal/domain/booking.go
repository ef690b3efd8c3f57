package domain

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used everywhere a travel date
// crosses a boundary: user input, listings and the persisted records.
const DateLayout = "2006-01-02"

var (
	ErrInvalidDateFormat      = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrPastDate               = errors.New("travel date cannot be in the past")
	ErrInvalidFlightSelection = errors.New("invalid flight selection")
	ErrBookingNotFound        = errors.New("booking not found")
)

// Booking holds a non-owning reference to its flight: only the flight number
// is stored and lookups go through the catalog on demand.
type Booking struct {
	ID            int64     `json:"id"`
	PassengerName string    `json:"passenger_name"`
	FlightNumber  string    `json:"flight_number"`
	TravelDate    time.Time `json:"travel_date"`
}

// Render formats the booking as a fixed-width listing row. The destination
// is passed in because the booking itself only knows the flight number.
func (b Booking) Render(destination string) string {
	return fmt.Sprintf("%03d | %-20s | %-6s | %-15s | %s", b.ID, b.PassengerName, b.FlightNumber, destination, b.TravelDate.Format(DateLayout))
}
