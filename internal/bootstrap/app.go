package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/petiair/tickets/config"
	"github.com/petiair/tickets/internal/airline"
	"github.com/petiair/tickets/internal/domain"
	"github.com/petiair/tickets/internal/store"
)

// NewAirline builds the aggregate and seeds its catalog from config.
func NewAirline(cfg *config.Config) *airline.Airline {
	a := airline.New(cfg.Airline.Name)
	for _, f := range cfg.Airline.Flights {
		category := domain.CategoryDomestic
		if f.Category == string(domain.CategoryInternational) {
			category = domain.CategoryInternational
		}
		a.AddFlight(domain.Flight{
			FlightNumber: f.Number,
			Destination:  f.Destination,
			BaseFare:     f.BaseFare,
			Category:     category,
		})
	}
	return a
}

// NewStore picks the booking store backend from config. The returned cleanup
// releases the postgres pool when that backend is in use.
func NewStore(ctx context.Context, cfg *config.Config) (store.Store, func(), error) {
	switch cfg.Storage.Backend {
	case "json":
		return store.NewJSONStore(cfg.Storage.Path), func() {}, nil
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.Storage.Database.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		return store.NewPostgresStore(pool), pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
