package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/petiair/tickets/config"
	"github.com/petiair/tickets/internal/bootstrap"
	"github.com/petiair/tickets/internal/cache"
	"github.com/petiair/tickets/internal/kafka"
	"github.com/petiair/tickets/internal/logger"
	"github.com/petiair/tickets/internal/service/booking"
	"github.com/petiair/tickets/internal/service/flights"
	"go.uber.org/zap"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zlog, err := logger.New("tickets-server")
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	air := bootstrap.NewAirline(cfg)
	bookingStore, cleanup, err := bootstrap.NewStore(ctx, cfg)
	if err != nil {
		zlog.Fatal("init store", zap.Error(err))
	}
	defer cleanup()

	var opts []booking.BookingServiceOption
	if len(cfg.Kafka.Brokers) > 0 && cfg.Kafka.BookingEventsTopic != "" {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, zlog)
		defer producer.Close()
		opts = append(opts, booking.WithProducer(producer, cfg.Kafka.BookingEventsTopic))
	}

	var flightCache flights.FlightCache
	if cfg.Redis.Addr != "" {
		flightCache = cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Redis.FlightsCacheTTL)*time.Second)
	}

	bookingService := booking.NewBookingService(air, bookingStore, zlog, opts...)
	flightService := flights.NewFlightService(air, flightCache)

	if err := bookingService.Load(ctx); err != nil {
		zlog.Fatal("load bookings", zap.Error(err))
	}

	if err := bootstrap.Run(ctx, cfg, flightService, bookingService); err != nil {
		zlog.Fatal("server error", zap.Error(err))
	}

	// Single save on the way out, after the server has drained.
	saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := bookingService.Save(saveCtx); err != nil {
		zlog.Error("save bookings", zap.Error(err))
	}
}
