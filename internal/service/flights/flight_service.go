package flights

import (
	"context"

	"github.com/petiair/tickets/internal/airline"
	"github.com/petiair/tickets/internal/domain"
)

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByNumber(ctx context.Context, number string) (domain.Flight, bool)
	ListFlights(ctx context.Context) string
}

type FlightCache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
}

type FlightService struct {
	airline *airline.Airline
	cache   FlightCache
}

func NewFlightService(a *airline.Airline, cache FlightCache) *FlightService {
	return &FlightService{airline: a, cache: cache}
}

// List returns the catalog, preferring the cache when one is configured.
// Cache errors fall through to the catalog.
func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights := s.airline.Flights()
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *FlightService) GetByNumber(ctx context.Context, number string) (domain.Flight, bool) {
	return s.airline.FlightByNumber(number)
}

func (s *FlightService) ListFlights(ctx context.Context) string {
	return s.airline.ListFlights()
}

var _ FlightUseCase = (*FlightService)(nil)
