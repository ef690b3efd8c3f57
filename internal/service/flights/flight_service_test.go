package flights

import (
	"context"
	"errors"
	"testing"

	"github.com/petiair/tickets/internal/airline"
	"github.com/petiair/tickets/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	args := m.Called(ctx, flights)
	return args.Error(0)
}

func newTestAirline() *airline.Airline {
	a := airline.New("Peti Air")
	a.AddFlight(domain.Flight{FlightNumber: "B101", Destination: "Budapest", BaseFare: 15000, Category: domain.CategoryDomestic})
	a.AddFlight(domain.Flight{FlightNumber: "N202", Destination: "London", BaseFare: 55000, Category: domain.CategoryInternational})
	return a
}

func TestListWithoutCache(t *testing.T) {
	service := NewFlightService(newTestAirline(), nil)

	flights, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, flights, 2)
	assert.Equal(t, "B101", flights[0].FlightNumber)
}

func TestListCacheMissPopulatesCache(t *testing.T) {
	air := newTestAirline()
	cache := &MockCache{}
	cache.On("GetFlights", mock.Anything).Return(nil, nil)
	cache.On("SetFlights", mock.Anything, air.Flights()).Return(nil)

	service := NewFlightService(air, cache)

	flights, err := service.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, flights, 2)

	cache.AssertExpectations(t)
}

func TestListCacheHit(t *testing.T) {
	cached := []domain.Flight{{FlightNumber: "C1", Destination: "Cached", BaseFare: 1000, Category: domain.CategoryDomestic}}
	cache := &MockCache{}
	cache.On("GetFlights", mock.Anything).Return(cached, nil)

	service := NewFlightService(newTestAirline(), cache)

	flights, err := service.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cached, flights)

	cache.AssertNotCalled(t, "SetFlights", mock.Anything, mock.Anything)
}

func TestListCacheErrorFallsThrough(t *testing.T) {
	cache := &MockCache{}
	cache.On("GetFlights", mock.Anything).Return(nil, errors.New("redis down"))
	cache.On("SetFlights", mock.Anything, mock.Anything).Return(nil)

	service := NewFlightService(newTestAirline(), cache)

	flights, err := service.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, flights, 2)
}

func TestGetByNumber(t *testing.T) {
	service := NewFlightService(newTestAirline(), nil)

	f, ok := service.GetByNumber(context.Background(), "N202")
	require.True(t, ok)
	assert.Equal(t, "London", f.Destination)

	_, ok = service.GetByNumber(context.Background(), "X999")
	assert.False(t, ok)
}
