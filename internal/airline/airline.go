package airline

import (
	"fmt"
	"iter"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/petiair/tickets/internal/domain"
	"github.com/petiair/tickets/internal/store"
)

// Airline is the aggregate root: it owns the flight catalog and the booking
// collection and is the only mutator of either. Booking ids are allocated
// from a monotonic counter and are never reused, even after cancellation.
//
// The modeled workflow is sequential, but the aggregate is also served over
// HTTP, so all state is guarded by a single lock.
type Airline struct {
	mu       sync.RWMutex
	name     string
	flights  []domain.Flight
	bookings map[int64]domain.Booking
	nextID   int64
}

func New(name string) *Airline {
	return &Airline{
		name:     name,
		bookings: make(map[int64]domain.Booking),
		nextID:   1,
	}
}

func (a *Airline) Name() string {
	return a.name
}

// AddFlight appends to the catalog. Flight numbers are expected to be unique;
// lookups return the first match in catalog order.
func (a *Airline) AddFlight(f domain.Flight) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.flights = append(a.flights, f)
}

// FlightByIndex resolves a 0-based catalog position.
func (a *Airline) FlightByIndex(i int) (domain.Flight, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.flightByIndex(i)
}

func (a *Airline) flightByIndex(i int) (domain.Flight, bool) {
	if i < 0 || i >= len(a.flights) {
		return domain.Flight{}, false
	}
	return a.flights[i], true
}

// FlightByNumber returns the first flight in catalog order with the given
// flight number.
func (a *Airline) FlightByNumber(number string) (domain.Flight, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.flightByNumber(number)
}

func (a *Airline) flightByNumber(number string) (domain.Flight, bool) {
	for _, f := range a.flights {
		if f.FlightNumber == number {
			return f, true
		}
	}
	return domain.Flight{}, false
}

// Flights returns a snapshot of the catalog in insertion order.
func (a *Airline) Flights() []domain.Flight {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]domain.Flight, len(a.flights))
	copy(out, a.flights)
	return out
}

// FlightRows yields one rendered catalog row per flight, prefixed with its
// 1-based ordinal. The sequence is finite and can be ranged over repeatedly;
// each restart sees the catalog as of that iteration.
func (a *Airline) FlightRows() iter.Seq[string] {
	return func(yield func(string) bool) {
		for i, f := range a.Flights() {
			if !yield(fmt.Sprintf("%-6d | %s", i+1, f.Render())) {
				return
			}
		}
	}
}

// ListFlights renders the whole catalog with a header, one numbered row per
// flight.
func (a *Airline) ListFlights() string {
	header := fmt.Sprintf("%-6s | %-6s | %-15s | %-13s | %7s", "No.", "Flight", "Destination", "Category", "Price")
	rows := []string{header, strings.Repeat("-", len(header))}
	for row := range a.FlightRows() {
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}

// BookTicket validates the request and, on success, stores a new booking
// under a freshly allocated id and returns it together with the effective
// ticket price. Checks run in a fixed order: date format, past date, flight
// selection. A failed check leaves the aggregate untouched.
func (a *Airline) BookTicket(passengerName string, flightIndex int, date string) (domain.Booking, int64, error) {
	travelDate, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return domain.Booking{}, 0, domain.ErrInvalidDateFormat
	}
	if travelDate.Before(time.Now()) {
		return domain.Booking{}, 0, domain.ErrPastDate
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	flight, ok := a.flightByIndex(flightIndex)
	if !ok {
		return domain.Booking{}, 0, domain.ErrInvalidFlightSelection
	}

	booking := domain.Booking{
		ID:            a.nextID,
		PassengerName: passengerName,
		FlightNumber:  flight.FlightNumber,
		TravelDate:    travelDate,
	}
	a.bookings[booking.ID] = booking
	a.nextID++

	return booking, flight.EffectivePrice(), nil
}

// CancelBooking removes the booking if present. An unknown id is a reported
// outcome, not a fault; the freed id is never handed out again.
func (a *Airline) CancelBooking(id int64) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.bookings[id]; !ok {
		return domain.ErrBookingNotFound
	}
	delete(a.bookings, id)
	return nil
}

// Booking returns the booking with the given id if it exists.
func (a *Airline) Booking(id int64) (domain.Booking, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	b, ok := a.bookings[id]
	return b, ok
}

// Bookings returns a snapshot of all current bookings ordered by id. This is
// the order listings display and saves persist.
func (a *Airline) Bookings() []domain.Booking {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]domain.Booking, 0, len(a.bookings))
	for _, b := range a.bookings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ListBookings renders all current bookings, or a placeholder message when
// there are none.
func (a *Airline) ListBookings() string {
	bookings := a.Bookings()
	if len(bookings) == 0 {
		return "No bookings."
	}

	header := fmt.Sprintf("%-3s | %-20s | %-6s | %-15s | %s", "ID", "Passenger", "Flight", "Destination", "Date")
	rows := []string{header, strings.Repeat("-", len(header))}
	for _, b := range bookings {
		destination := ""
		if f, ok := a.FlightByNumber(b.FlightNumber); ok {
			destination = f.Destination
		}
		rows = append(rows, b.Render(destination))
	}
	return strings.Join(rows, "\n")
}

// Restore rebuilds the booking collection from persisted records. Records
// whose flight number no longer resolves against the catalog are dropped and
// returned so the caller can report them; a record with an unparseable date
// means the stored document is corrupt and aborts the load. The id counter is
// advanced past every restored id so new bookings never collide.
func (a *Airline) Restore(records []store.Record) ([]store.Record, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var skipped []store.Record
	for _, r := range records {
		if _, ok := a.flightByNumber(r.FlightNumber); !ok {
			skipped = append(skipped, r)
			continue
		}
		travelDate, err := r.TravelDate()
		if err != nil {
			return nil, fmt.Errorf("booking %d has malformed date %q: %w", r.ID, r.Date, err)
		}
		a.bookings[r.ID] = domain.Booking{
			ID:            r.ID,
			PassengerName: r.PassengerName,
			FlightNumber:  r.FlightNumber,
			TravelDate:    travelDate,
		}
		if r.ID >= a.nextID {
			a.nextID = r.ID + 1
		}
	}
	return skipped, nil
}
