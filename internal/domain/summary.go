package domain

import (
	"fmt"
	"time"
)

// PassengerSummary is a copy of a passenger's state, safe to hand out of the registry lock.
type PassengerSummary struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Age           int         `json:"age"`
	Address       string      `json:"address"`
	BaggageWeight float64     `json:"baggage_weight"`
	TicketClass   TicketClass `json:"ticket_class"`
}

type FlightSummary struct {
	Code                   string       `json:"code"`
	Origin                 string       `json:"origin"`
	Destination            string       `json:"destination"`
	Status                 FlightStatus `json:"status"`
	DepartureTime          time.Time    `json:"departure_time"`
	ArrivalTime            time.Time    `json:"arrival_time"`
	TotalEconomySeats      int          `json:"total_economy_seats"`
	AvailableEconomySeats  int          `json:"available_economy_seats"`
	TotalBusinessSeats     int          `json:"total_business_seats"`
	AvailableBusinessSeats int          `json:"available_business_seats"`
	Passengers             int          `json:"passengers"`
	OccupancyRate          float64      `json:"occupancy_rate"`
}

func (p *Passenger) Summary() PassengerSummary {
	return PassengerSummary{
		ID:            p.id,
		Name:          p.Name(),
		Age:           p.Age(),
		Address:       p.Address(),
		BaggageWeight: p.baggageWeight,
		TicketClass:   p.ticketClass,
	}
}

func (f *Flight) Summary() FlightSummary {
	return FlightSummary{
		Code:                   f.code,
		Origin:                 f.origin,
		Destination:            f.destination,
		Status:                 f.status,
		DepartureTime:          f.departureTime,
		ArrivalTime:            f.arrivalTime,
		TotalEconomySeats:      f.TotalEconomySeats(),
		AvailableEconomySeats:  f.AvailableEconomySeats(),
		TotalBusinessSeats:     f.TotalBusinessSeats(),
		AvailableBusinessSeats: f.AvailableBusinessSeats(),
		Passengers:             f.BoardedCount(),
		OccupancyRate:          f.OccupancyRate(),
	}
}

func (s PassengerSummary) String() string {
	return fmt.Sprintf("Passenger [ID: %s, Name: %s, Age: %d, Baggage: %.1f kg, Class: %s]",
		s.ID, s.Name, s.Age, s.BaggageWeight, s.TicketClass)
}

func (s FlightSummary) String() string {
	return fmt.Sprintf("Flight %s: %s → %s\n"+
		"Status: %s\n"+
		"Departure: %s | Arrival: %s\n"+
		"Economy: %d/%d available | Business: %d/%d available\n"+
		"Total Passengers: %d (%.1f%% occupancy)",
		s.Code, s.Origin, s.Destination,
		s.Status,
		s.DepartureTime.Format(TimeLayout), s.ArrivalTime.Format(TimeLayout),
		s.AvailableEconomySeats, s.TotalEconomySeats,
		s.AvailableBusinessSeats, s.TotalBusinessSeats,
		s.Passengers, s.OccupancyRate,
	)
}
