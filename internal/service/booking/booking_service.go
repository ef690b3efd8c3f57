package booking

import (
	"context"
	"strconv"

	"github.com/google/uuid"
	"github.com/petiair/tickets/internal/airline"
	"github.com/petiair/tickets/internal/domain"
	"github.com/petiair/tickets/internal/kafka"
	"github.com/petiair/tickets/internal/store"
	"go.uber.org/zap"
)

type BookingUseCase interface {
	Book(ctx context.Context, input BookTicketInput) (*Confirmation, error)
	Cancel(ctx context.Context, id int64) error
	Bookings(ctx context.Context) []domain.Booking
	ListBookings(ctx context.Context) string
	Load(ctx context.Context) error
	Save(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// BookTicketInput carries the raw caller input; the date stays a string so
// the aggregate owns format validation.
type BookTicketInput struct {
	PassengerName string `json:"passenger_name"`
	FlightIndex   int    `json:"flight_index"`
	Date          string `json:"date"`
}

// Confirmation is the success result of a booking: the allocated id and the
// effective ticket price.
type Confirmation struct {
	Booking domain.Booking
	Price   int64
}

type BookingService struct {
	airline  *airline.Airline
	bookings store.Store
	producer Producer
	topic    string
	logger   *zap.Logger
}

type BookingServiceOption func(*BookingService)

func WithProducer(producer Producer, topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.topic = topic
	}
}

func NewBookingService(a *airline.Airline, bookings store.Store, logger *zap.Logger, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		airline:  a,
		bookings: bookings,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) Book(ctx context.Context, input BookTicketInput) (*Confirmation, error) {
	booking, price, err := s.airline.BookTicket(input.PassengerName, input.FlightIndex, input.Date)
	if err != nil {
		return nil, err
	}

	if err := s.publish(ctx, "booking_created", booking, price); err != nil {
		s.logger.Warn("failed to publish booking_created event", zap.Int64("booking_id", booking.ID), zap.Error(err))
	}
	return &Confirmation{Booking: booking, Price: price}, nil
}

func (s *BookingService) Cancel(ctx context.Context, id int64) error {
	booking, ok := s.airline.Booking(id)
	if err := s.airline.CancelBooking(id); err != nil {
		return err
	}

	if ok {
		if err := s.publish(ctx, "booking_cancelled", booking, 0); err != nil {
			s.logger.Warn("failed to publish booking_cancelled event", zap.Int64("booking_id", id), zap.Error(err))
		}
	}
	return nil
}

func (s *BookingService) Bookings(ctx context.Context) []domain.Booking {
	return s.airline.Bookings()
}

func (s *BookingService) ListBookings(ctx context.Context) string {
	return s.airline.ListBookings()
}

// Load pulls persisted records into the aggregate. Records whose flight no
// longer exists in the catalog are dropped; the drop is logged but does not
// fail the load.
func (s *BookingService) Load(ctx context.Context) error {
	records, err := s.bookings.Load(ctx)
	if err != nil {
		return err
	}

	skipped, err := s.airline.Restore(records)
	if err != nil {
		return err
	}
	for _, r := range skipped {
		s.logger.Warn("dropping booking for unknown flight",
			zap.Int64("booking_id", r.ID), zap.String("flight_number", r.FlightNumber))
	}
	return nil
}

// Save persists the current booking set, overwriting whatever was stored.
func (s *BookingService) Save(ctx context.Context) error {
	bookings := s.airline.Bookings()
	records := make([]store.Record, 0, len(bookings))
	for _, b := range bookings {
		records = append(records, store.FromBooking(b))
	}
	return s.bookings.Save(ctx, records)
}

func (s *BookingService) publish(ctx context.Context, eventType string, b domain.Booking, price int64) error {
	if s.producer == nil || s.topic == "" {
		return nil
	}

	destination := ""
	if f, ok := s.airline.FlightByNumber(b.FlightNumber); ok {
		destination = f.Destination
	}
	event := kafka.BookingEvent{
		EventID:       uuid.NewString(),
		Type:          eventType,
		BookingID:     b.ID,
		PassengerName: b.PassengerName,
		FlightNumber:  b.FlightNumber,
		Destination:   destination,
		TravelDate:    b.TravelDate.Format(domain.DateLayout),
		Price:         price,
	}
	return s.producer.Publish(ctx, s.topic, strconv.FormatInt(b.ID, 10), event)
}

var _ BookingUseCase = (*BookingService)(nil)
