package domain

import "fmt"

type FlightCategory string

const (
	CategoryDomestic      FlightCategory = "Domestic"
	CategoryInternational FlightCategory = "International"
)

// Flight is an immutable catalog entry. FlightNumber is the key bookings are
// resolved against, so it must stay unique within a catalog.
type Flight struct {
	FlightNumber string         `json:"flight_number"`
	Destination  string         `json:"destination"`
	BaseFare     int64          `json:"base_fare"`
	Category     FlightCategory `json:"category"`
}

// EffectivePrice applies the category multiplier to the base fare and
// truncates. Domestic fares get a 10% discount, international fares a 20%
// surcharge. Integer arithmetic keeps the floor exact.
func (f Flight) EffectivePrice() int64 {
	switch f.Category {
	case CategoryInternational:
		return f.BaseFare * 12 / 10
	default:
		return f.BaseFare * 9 / 10
	}
}

// Render formats the flight as a fixed-width listing row.
func (f Flight) Render() string {
	return fmt.Sprintf("%-6s | %-15s | %-13s | %7d", f.FlightNumber, f.Destination, f.Category, f.EffectivePrice())
}
