package store

import (
	"context"
	"time"

	"github.com/petiair/tickets/internal/domain"
)

// Record is the flat persisted form of a booking. The flight is kept as a
// number only and is resolved against the live catalog on load.
type Record struct {
	ID            int64  `json:"id"`
	PassengerName string `json:"passenger_name"`
	FlightNumber  string `json:"flight_number"`
	Date          string `json:"date"`
}

type Store interface {
	Save(ctx context.Context, records []Record) error
	Load(ctx context.Context) ([]Record, error)
}

func FromBooking(b domain.Booking) Record {
	return Record{
		ID:            b.ID,
		PassengerName: b.PassengerName,
		FlightNumber:  b.FlightNumber,
		Date:          b.TravelDate.Format(domain.DateLayout),
	}
}

func (r Record) TravelDate() (time.Time, error) {
	return time.Parse(domain.DateLayout, r.Date)
}
