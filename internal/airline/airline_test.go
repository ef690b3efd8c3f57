package airline

import (
	"strings"
	"testing"

	"github.com/petiair/tickets/internal/domain"
	"github.com/petiair/tickets/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAirline() *Airline {
	a := New("Peti Air")
	a.AddFlight(domain.Flight{FlightNumber: "B101", Destination: "Budapest", BaseFare: 15000, Category: domain.CategoryDomestic})
	a.AddFlight(domain.Flight{FlightNumber: "N202", Destination: "London", BaseFare: 55000, Category: domain.CategoryInternational})
	a.AddFlight(domain.Flight{FlightNumber: "N303", Destination: "New York", BaseFare: 120000, Category: domain.CategoryInternational})
	return a
}

func TestBookTicket(t *testing.T) {
	a := newTestAirline()

	booking, price, err := a.BookTicket("Jane Doe", 0, "2099-05-01")
	require.NoError(t, err)
	assert.Equal(t, int64(1), booking.ID)
	assert.Equal(t, "B101", booking.FlightNumber)
	assert.Equal(t, int64(13500), price)

	booking, price, err = a.BookTicket("John Doe", 1, "2099-05-02")
	require.NoError(t, err)
	assert.Equal(t, int64(2), booking.ID)
	assert.Equal(t, int64(66000), price)
}

func TestBookTicketValidationOrder(t *testing.T) {
	a := newTestAirline()

	// An unparseable date wins over a bad flight index.
	_, _, err := a.BookTicket("Jane Doe", 99, "2099-13-01")
	assert.ErrorIs(t, err, domain.ErrInvalidDateFormat)

	// A past date wins over a bad flight index.
	_, _, err = a.BookTicket("Jane Doe", 99, "2000-01-01")
	assert.ErrorIs(t, err, domain.ErrPastDate)

	_, _, err = a.BookTicket("Jane Doe", -1, "2099-05-01")
	assert.ErrorIs(t, err, domain.ErrInvalidFlightSelection)

	_, _, err = a.BookTicket("Jane Doe", len(a.Flights()), "2099-05-01")
	assert.ErrorIs(t, err, domain.ErrInvalidFlightSelection)
}

func TestBookTicketFailureMutatesNothing(t *testing.T) {
	a := newTestAirline()

	_, _, err := a.BookTicket("Jane Doe", 0, "2099-13-01")
	require.ErrorIs(t, err, domain.ErrInvalidDateFormat)
	_, _, err = a.BookTicket("Jane Doe", 0, "2000-01-01")
	require.ErrorIs(t, err, domain.ErrPastDate)
	_, _, err = a.BookTicket("Jane Doe", 42, "2099-05-01")
	require.ErrorIs(t, err, domain.ErrInvalidFlightSelection)

	assert.Empty(t, a.Bookings())

	// The failed attempts must not have advanced the id counter.
	booking, _, err := a.BookTicket("Jane Doe", 0, "2099-05-01")
	require.NoError(t, err)
	assert.Equal(t, int64(1), booking.ID)
}

func TestBookingIDsNeverReused(t *testing.T) {
	a := newTestAirline()

	for i := 0; i < 3; i++ {
		booking, _, err := a.BookTicket("Jane Doe", 0, "2099-05-01")
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), booking.ID)
	}

	require.NoError(t, a.CancelBooking(2))

	booking, _, err := a.BookTicket("John Doe", 0, "2099-05-01")
	require.NoError(t, err)
	assert.Equal(t, int64(4), booking.ID)
}

func TestCancelBooking(t *testing.T) {
	a := newTestAirline()

	booking, _, err := a.BookTicket("Jane Doe", 0, "2099-05-01")
	require.NoError(t, err)

	assert.NoError(t, a.CancelBooking(booking.ID))
	assert.ErrorIs(t, a.CancelBooking(booking.ID), domain.ErrBookingNotFound)

	err = a.CancelBooking(42)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	assert.Empty(t, a.Bookings())
}

func TestFlightLookups(t *testing.T) {
	a := newTestAirline()

	f, ok := a.FlightByIndex(1)
	require.True(t, ok)
	assert.Equal(t, "N202", f.FlightNumber)

	_, ok = a.FlightByIndex(-1)
	assert.False(t, ok)
	_, ok = a.FlightByIndex(3)
	assert.False(t, ok)

	f, ok = a.FlightByNumber("N303")
	require.True(t, ok)
	assert.Equal(t, "New York", f.Destination)

	_, ok = a.FlightByNumber("X999")
	assert.False(t, ok)
}

func TestFlightByNumberFirstMatch(t *testing.T) {
	a := New("Peti Air")
	a.AddFlight(domain.Flight{FlightNumber: "B101", Destination: "Budapest", BaseFare: 15000, Category: domain.CategoryDomestic})
	a.AddFlight(domain.Flight{FlightNumber: "B101", Destination: "Debrecen", BaseFare: 12000, Category: domain.CategoryDomestic})

	f, ok := a.FlightByNumber("B101")
	require.True(t, ok)
	assert.Equal(t, "Budapest", f.Destination)
}

func TestListFlights(t *testing.T) {
	a := newTestAirline()

	listing := a.ListFlights()
	lines := strings.Split(listing, "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "Destination")
	assert.True(t, strings.HasPrefix(lines[2], "1      | B101"))
	assert.True(t, strings.HasPrefix(lines[4], "3      | N303"))
	assert.Contains(t, lines[3], "66000")
}

func TestFlightRowsRestartable(t *testing.T) {
	a := newTestAirline()

	var first, second []string
	for row := range a.FlightRows() {
		first = append(first, row)
	}
	for row := range a.FlightRows() {
		second = append(second, row)
	}
	assert.Equal(t, first, second)
	assert.Len(t, first, 3)

	// Early break must not run the sequence to completion.
	count := 0
	for range a.FlightRows() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestListBookings(t *testing.T) {
	a := newTestAirline()
	assert.Equal(t, "No bookings.", a.ListBookings())

	_, _, err := a.BookTicket("Jane Doe", 0, "2099-05-01")
	require.NoError(t, err)
	_, _, err = a.BookTicket("John Doe", 2, "2099-06-15")
	require.NoError(t, err)

	listing := a.ListBookings()
	lines := strings.Split(listing, "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[2], "Jane Doe")
	assert.Contains(t, lines[2], "Budapest")
	assert.Contains(t, lines[3], "New York")
	assert.Contains(t, lines[3], "2099-06-15")
}

func TestRestore(t *testing.T) {
	a := newTestAirline()

	skipped, err := a.Restore([]store.Record{
		{ID: 3, PassengerName: "Jane Doe", FlightNumber: "B101", Date: "2099-05-01"},
		{ID: 7, PassengerName: "John Doe", FlightNumber: "GONE", Date: "2099-05-02"},
		{ID: 5, PassengerName: "Ann Smith", FlightNumber: "N202", Date: "2000-01-01"},
	})
	require.NoError(t, err)
	require.Len(t, skipped, 1)
	assert.Equal(t, int64(7), skipped[0].ID)

	// Past travel dates are not re-validated on load.
	bookings := a.Bookings()
	require.Len(t, bookings, 2)
	assert.Equal(t, int64(3), bookings[0].ID)
	assert.Equal(t, int64(5), bookings[1].ID)

	// The counter always lands past the highest restored id.
	booking, _, err := a.BookTicket("New Guy", 0, "2099-05-01")
	require.NoError(t, err)
	assert.Equal(t, int64(6), booking.ID)
}

func TestRestoreMalformedDate(t *testing.T) {
	a := newTestAirline()

	_, err := a.Restore([]store.Record{
		{ID: 1, PassengerName: "Jane Doe", FlightNumber: "B101", Date: "not-a-date"},
	})
	assert.Error(t, err)
}

func TestRestoreEmpty(t *testing.T) {
	a := newTestAirline()

	skipped, err := a.Restore(nil)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Empty(t, a.Bookings())

	booking, _, err := a.BookTicket("Jane Doe", 0, "2099-05-01")
	require.NoError(t, err)
	assert.Equal(t, int64(1), booking.ID)
}
