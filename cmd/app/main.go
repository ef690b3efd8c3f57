package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/petiair/tickets/config"
	"github.com/petiair/tickets/internal/bootstrap"
	"github.com/petiair/tickets/internal/logger"
	"github.com/petiair/tickets/internal/service/booking"
	"go.uber.org/zap"
)

const menu = `
Menu:
1. Book a ticket
2. Cancel a booking
3. List bookings
4. Exit
`

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zlog, err := logger.New("tickets-cli")
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Sync()

	ctx := context.Background()

	air := bootstrap.NewAirline(cfg)
	bookingStore, cleanup, err := bootstrap.NewStore(ctx, cfg)
	if err != nil {
		zlog.Fatal("init store", zap.Error(err))
	}
	defer cleanup()

	bookingService := booking.NewBookingService(air, bookingStore, zlog)
	if err := bookingService.Load(ctx); err != nil {
		zlog.Fatal("load bookings", zap.Error(err))
	}

	fmt.Printf("Welcome to %s\n", air.Name())

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(menu + "\n")
		choice := prompt(in, "Choose an option (1-4): ")

		switch choice {
		case "1":
			name := prompt(in, "Passenger name: ")
			fmt.Println("\nAvailable flights:")
			fmt.Println(air.ListFlights())
			ordinal, err := strconv.Atoi(prompt(in, "\nPick a flight by its list number: "))
			if err != nil {
				fmt.Println("Invalid flight selection.")
				continue
			}
			date := prompt(in, "Date (YYYY-MM-DD): ")

			confirmation, err := bookingService.Book(ctx, booking.BookTicketInput{
				PassengerName: name,
				FlightIndex:   ordinal - 1,
				Date:          date,
			})
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Printf("Booking confirmed! Price: %d. Booking ID: %d\n", confirmation.Price, confirmation.Booking.ID)
		case "2":
			id, err := strconv.ParseInt(prompt(in, "Booking ID: "), 10, 64)
			if err != nil {
				fmt.Println("Invalid booking id.")
				continue
			}
			if err := bookingService.Cancel(ctx, id); err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Println("Booking cancelled.")
		case "3":
			fmt.Println("\nCurrent bookings:")
			fmt.Println(bookingService.ListBookings(ctx))
		case "4":
			fmt.Println("Saving bookings...")
			if err := bookingService.Save(ctx); err != nil {
				zlog.Error("save bookings", zap.Error(err))
			}
			fmt.Println("Bye.")
			return
		default:
			fmt.Println("Invalid option.")
		}
	}
}

func prompt(in *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}
