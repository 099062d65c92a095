// Package seed loads the demo passengers and flights the console starts with.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/Domenick1991/airport/internal/service/airport"
)

type scheduledFlight struct {
	airport.FlightInput
	departIn time.Duration
	duration time.Duration
}

var samplePassengers = []airport.PassengerInput{
	{Name: "John Smith", Age: 35, Address: "123 Main St, New York", BaggageWeight: 15.5},
	{Name: "Sarah Johnson", Age: 28, Address: "456 Oak Ave, Los Angeles", BaggageWeight: 18.0},
	{Name: "Michael Brown", Age: 42, Address: "789 Pine Rd, Chicago", BaggageWeight: 12.0},
	{Name: "Emily Davis", Age: 31, Address: "321 Elm St, Houston", BaggageWeight: 19.5},
	{Name: "Robert Wilson", Age: 55, Address: "654 Maple Dr, Phoenix", BaggageWeight: 14.0},
}

var sampleFlights = []scheduledFlight{
	{
		FlightInput: airport.FlightInput{Code: "AA101", Origin: "New York", Destination: "Los Angeles", EconomySeats: 150, BusinessSeats: 30},
		departIn:    3 * time.Hour,
		duration:    5 * time.Hour,
	},
	{
		FlightInput: airport.FlightInput{Code: "UA202", Origin: "San Francisco", Destination: "Chicago", EconomySeats: 120, BusinessSeats: 25},
		departIn:    5 * time.Hour,
		duration:    4 * time.Hour,
	},
	{
		FlightInput: airport.FlightInput{Code: "DL303", Origin: "Boston", Destination: "Miami", EconomySeats: 100, BusinessSeats: 20},
		departIn:    24 * time.Hour,
		duration:    3 * time.Hour,
	},
}

// Load registers the sample passengers and flights and sets flight times relative to now.
func Load(ctx context.Context, m *airport.Manager, now time.Time) error {
	for _, p := range samplePassengers {
		if _, err := m.AddPassenger(ctx, p.Name, p.Age, p.Address, p.BaggageWeight); err != nil {
			return fmt.Errorf("seed passenger %s: %w", p.Name, err)
		}
	}
	for _, f := range sampleFlights {
		if _, err := m.AddFlight(ctx, f.Code, f.Destination, f.Origin, f.EconomySeats, f.BusinessSeats); err != nil {
			return fmt.Errorf("seed flight %s: %w", f.Code, err)
		}
		departure := now.Add(f.departIn)
		if err := m.SetFlightSchedule(f.Code, departure, departure.Add(f.duration)); err != nil {
			return fmt.Errorf("seed flight %s schedule: %w", f.Code, err)
		}
	}
	return nil
}
