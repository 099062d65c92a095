package mocks

import (
	"context"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/service/airport"
	"github.com/stretchr/testify/mock"
)

// MockAirportUseCase is a mock implementation of airport.AirportUseCase
type MockAirportUseCase struct {
	mock.Mock
}

func (m *MockAirportUseCase) RegisterPassenger(ctx context.Context, input airport.PassengerInput) (domain.PassengerSummary, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.PassengerSummary), args.Error(1)
}

func (m *MockAirportUseCase) PassengerSummary(id string) (domain.PassengerSummary, error) {
	args := m.Called(id)
	return args.Get(0).(domain.PassengerSummary), args.Error(1)
}

func (m *MockAirportUseCase) PassengerSummaries(name string) []domain.PassengerSummary {
	args := m.Called(name)
	return args.Get(0).([]domain.PassengerSummary)
}

func (m *MockAirportUseCase) RemovePassenger(ctx context.Context, id string) bool {
	args := m.Called(ctx, id)
	return args.Bool(0)
}

func (m *MockAirportUseCase) ScheduleFlight(ctx context.Context, input airport.FlightInput) (domain.FlightSummary, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.FlightSummary), args.Error(1)
}

func (m *MockAirportUseCase) FlightSummary(code string) (domain.FlightSummary, error) {
	args := m.Called(code)
	return args.Get(0).(domain.FlightSummary), args.Error(1)
}

func (m *MockAirportUseCase) FlightSummaries(destination string) []domain.FlightSummary {
	args := m.Called(destination)
	return args.Get(0).([]domain.FlightSummary)
}

func (m *MockAirportUseCase) RemoveFlight(ctx context.Context, code string) bool {
	args := m.Called(ctx, code)
	return args.Bool(0)
}

func (m *MockAirportUseCase) SetFlightStatus(ctx context.Context, code string, status domain.FlightStatus) error {
	args := m.Called(ctx, code, status)
	return args.Error(0)
}

func (m *MockAirportUseCase) BoardPassenger(ctx context.Context, passengerID, flightCode string, class domain.TicketClass) (bool, error) {
	args := m.Called(ctx, passengerID, flightCode, class)
	return args.Bool(0), args.Error(1)
}

func (m *MockAirportUseCase) BoardPassengerByName(ctx context.Context, name, flightCode string, class domain.TicketClass) (bool, error) {
	args := m.Called(ctx, name, flightCode, class)
	return args.Bool(0), args.Error(1)
}

func (m *MockAirportUseCase) Manifest(code string) (airport.Manifest, error) {
	args := m.Called(code)
	return args.Get(0).(airport.Manifest), args.Error(1)
}

func (m *MockAirportUseCase) Statistics() airport.Statistics {
	args := m.Called()
	return args.Get(0).(airport.Statistics)
}

var _ airport.AirportUseCase = (*MockAirportUseCase)(nil)
