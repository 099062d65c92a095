package airport

import (
	"context"
	"sort"

	"github.com/Domenick1991/airport/internal/domain"
)

// AirportUseCase is the copy-returning surface the HTTP API is built on.
type AirportUseCase interface {
	RegisterPassenger(ctx context.Context, input PassengerInput) (domain.PassengerSummary, error)
	PassengerSummary(id string) (domain.PassengerSummary, error)
	PassengerSummaries(name string) []domain.PassengerSummary
	RemovePassenger(ctx context.Context, id string) bool

	ScheduleFlight(ctx context.Context, input FlightInput) (domain.FlightSummary, error)
	FlightSummary(code string) (domain.FlightSummary, error)
	FlightSummaries(destination string) []domain.FlightSummary
	RemoveFlight(ctx context.Context, code string) bool
	SetFlightStatus(ctx context.Context, code string, status domain.FlightStatus) error

	BoardPassenger(ctx context.Context, passengerID, flightCode string, class domain.TicketClass) (bool, error)
	BoardPassengerByName(ctx context.Context, name, flightCode string, class domain.TicketClass) (bool, error)

	Manifest(code string) (Manifest, error)
	Statistics() Statistics
}

type PassengerInput struct {
	Name          string  `json:"name"`
	Age           int     `json:"age"`
	Address       string  `json:"address"`
	BaggageWeight float64 `json:"baggage_weight"`
}

type FlightInput struct {
	Code          string `json:"code"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	EconomySeats  int    `json:"economy_seats"`
	BusinessSeats int    `json:"business_seats"`
}

// Manifest lists a flight's boarded passengers, business class first.
type Manifest struct {
	Flight   domain.FlightSummary      `json:"flight"`
	Business []domain.PassengerSummary `json:"business"`
	Economy  []domain.PassengerSummary `json:"economy"`
}

func (m Manifest) Empty() bool {
	return len(m.Business) == 0 && len(m.Economy) == 0
}

type Statistics struct {
	RegisteredPassengers int     `json:"registered_passengers"`
	ScheduledFlights     int     `json:"scheduled_flights"`
	BoardedPassengers    int     `json:"boarded_passengers"`
	AverageOccupancy     float64 `json:"average_occupancy"`
}

func (m *Manager) RegisterPassenger(ctx context.Context, input PassengerInput) (domain.PassengerSummary, error) {
	p, err := m.AddPassenger(ctx, input.Name, input.Age, input.Address, input.BaggageWeight)
	if err != nil {
		return domain.PassengerSummary{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return p.Summary(), nil
}

func (m *Manager) PassengerSummary(id string) (domain.PassengerSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.passengers[id]
	if !ok {
		return domain.PassengerSummary{}, domain.NotFoundError{Entity: "passenger", Key: id}
	}
	return p.Summary(), nil
}

// PassengerSummaries filters by name substring; an empty name lists everyone.
func (m *Manager) PassengerSummaries(name string) []domain.PassengerSummary {
	m.mu.RLock()
	defer m.mu.RUnlock()
	found := m.passengersByNameLocked(name)
	out := make([]domain.PassengerSummary, 0, len(found))
	for _, p := range found {
		out = append(out, p.Summary())
	}
	return out
}

func (m *Manager) ScheduleFlight(ctx context.Context, input FlightInput) (domain.FlightSummary, error) {
	f, err := m.AddFlight(ctx, input.Code, input.Destination, input.Origin, input.EconomySeats, input.BusinessSeats)
	if err != nil {
		return domain.FlightSummary{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return f.Summary(), nil
}

func (m *Manager) FlightSummary(code string) (domain.FlightSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.flights[domain.NormalizeFlightCode(code)]
	if !ok {
		return domain.FlightSummary{}, domain.NotFoundError{Entity: "flight", Key: code}
	}
	return f.Summary(), nil
}

// FlightSummaries filters by destination substring; an empty destination lists every flight.
func (m *Manager) FlightSummaries(destination string) []domain.FlightSummary {
	m.mu.RLock()
	defer m.mu.RUnlock()
	found := m.flightsByDestinationLocked(destination)
	out := make([]domain.FlightSummary, 0, len(found))
	for _, f := range found {
		out = append(out, f.Summary())
	}
	return out
}

func (m *Manager) Manifest(code string) (Manifest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.flights[domain.NormalizeFlightCode(code)]
	if !ok {
		return Manifest{}, domain.NotFoundError{Entity: "flight", Key: code}
	}

	manifest := Manifest{
		Flight:   f.Summary(),
		Business: make([]domain.PassengerSummary, 0),
		Economy:  make([]domain.PassengerSummary, 0),
	}
	roster := f.Roster()
	sort.SliceStable(roster, func(i, j int) bool {
		return roster[i].Passenger.Name() < roster[j].Passenger.Name()
	})
	for _, entry := range roster {
		summary := entry.Passenger.Summary()
		summary.TicketClass = entry.Class
		switch entry.Class {
		case domain.TicketClassBusiness:
			manifest.Business = append(manifest.Business, summary)
		default:
			manifest.Economy = append(manifest.Economy, summary)
		}
	}
	return manifest, nil
}

// Statistics averages per-flight occupancy; flights without seats count as 0%.
func (m *Manager) Statistics() Statistics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := Statistics{
		RegisteredPassengers: len(m.passengers),
		ScheduledFlights:     len(m.flights),
	}
	if len(m.flights) == 0 {
		return stats
	}

	var occupancy float64
	for _, f := range m.flights {
		stats.BoardedPassengers += f.BoardedCount()
		occupancy += f.OccupancyRate()
	}
	stats.AverageOccupancy = occupancy / float64(len(m.flights))
	return stats
}

var _ AirportUseCase = (*Manager)(nil)
