package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/petiair/tickets/api"
	"github.com/petiair/tickets/config"
	"github.com/petiair/tickets/internal/service/booking"
	"github.com/petiair/tickets/internal/service/flights"
)

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails. On cancellation the server drains with a short timeout; the
// caller is responsible for saving state after Run returns.
func Run(ctx context.Context, cfg *config.Config, flightSvc flights.FlightUseCase, bookingSvc booking.BookingUseCase) error {
	router := gin.Default()
	api.NewFlightHandler(flightSvc).Register(router.Group("/flights"))
	api.NewBookingHandler(bookingSvc).Register(router.Group("/bookings"))

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
