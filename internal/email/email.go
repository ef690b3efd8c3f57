package email

import (
	"context"
	"fmt"

	"github.com/petiair/tickets/internal/kafka"
)

// Sender turns booking events into passenger notifications. The delivery
// channel is stdout for now; the worker only cares about the Send contract.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	switch event.Type {
	case "booking_cancelled":
		fmt.Printf("notify %s: booking %d on flight %s cancelled\n", event.PassengerName, event.BookingID, event.FlightNumber)
	default:
		fmt.Printf("notify %s: booking %d confirmed, flight %s to %s on %s, price %d\n",
			event.PassengerName, event.BookingID, event.FlightNumber, event.Destination, event.TravelDate, event.Price)
	}
	return nil
}
