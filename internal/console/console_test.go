package console

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/service/airport"
	"github.com/Domenick1991/airport/internal/service/airport/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newManager() *airport.Manager {
	n := 0
	return airport.NewManager(
		airport.WithClock(func() time.Time { return time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC) }),
		airport.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("P%08X", n)
		}),
	)
}

func run(t *testing.T, m airport.AirportUseCase, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	c := New(m, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	require.NoError(t, c.Run(context.Background()))
	return out.String()
}

func TestConsole_ExitAndEOF(t *testing.T) {
	out := run(t, newManager(), "5")
	assert.Contains(t, out, "AIRPORT MANAGEMENT SYSTEM")
	assert.Contains(t, out, "Thank you for using Airport Management System!")

	out = run(t, newManager())
	assert.Contains(t, out, "Thank you for using Airport Management System!")
}

func TestConsole_InvalidInputReprompts(t *testing.T) {
	out := run(t, newManager(), "abc", "9", "5")
	assert.Contains(t, out, "Invalid input! Please enter a number.")
	assert.Contains(t, out, "Invalid choice. Please try again.")
}

func TestConsole_AddAndSearchPassenger(t *testing.T) {
	m := newManager()
	out := run(t, m,
		"1",
		"1", "John Smith", "35", "123 Main St", "15.5",
		"1", "Too Heavy", "40", "Nowhere", "25",
		"3", "smith",
		"2",
		"5", "5",
	)

	assert.Contains(t, out, "✓ Passenger added successfully!")
	assert.Contains(t, out, "Passenger ID: P00000001")
	assert.Contains(t, out, "✗ Failed to add passenger: validation error: baggage weight exceeds maximum allowed weight of 20.0 kg")
	assert.Contains(t, out, "Found 1 passenger(s):")
	assert.Contains(t, out, "Passenger [ID: P00000001, Name: John Smith, Age: 35, Baggage: 15.5 kg, Class: Economy]")
	assert.Len(t, m.Passengers(), 1)
}

func TestConsole_BoardingFlow(t *testing.T) {
	m := newManager()
	ctx := context.Background()
	_, err := m.AddFlight(ctx, "AA123", "Boston", "New York", 1, 1)
	require.NoError(t, err)
	alice, err := m.AddPassenger(ctx, "Alice", 30, "", 5)
	require.NoError(t, err)
	_, err = m.AddPassenger(ctx, "Bob", 31, "", 5)
	require.NoError(t, err)

	out := run(t, m,
		"3",
		"1", alice.ID(), "aa123", "1",
		"1", "bob", "AA123", "1",
		"1", "bob", "AA123", "2",
		"1", "carol", "AA123", "1",
		"2", "aa123",
		"3", "5",
	)

	assert.Contains(t, out, "✓ Passenger boarded successfully!")
	assert.Contains(t, out, "✗ No seats available in Economy class!")
	assert.Contains(t, out, "✗ Boarding failed: passenger with name not found: carol")
	assert.Contains(t, out, "FLIGHT MANIFEST")
	assert.Contains(t, out, "Business Class:")
	assert.Contains(t, out, "Economy Class:")
	assert.Contains(t, out, "Total Passengers: 2 (100.0% occupancy)")
}

func TestConsole_FlightManagement(t *testing.T) {
	m := newManager()
	out := run(t, m,
		"2",
		"1", "dl303", "Boston", "Miami", "100", "20",
		"1", "DL303", "Boston", "Miami", "1", "1",
		"3", "mia",
		"4", "dl303", "5",
		"4", "dl303", "4",
		"4", "dl303", "2",
		"4", "zz999",
		"2",
		"5", "dl303",
		"5", "dl303",
		"6", "5",
	)

	assert.Contains(t, out, "✓ Flight added successfully!")
	assert.Contains(t, out, "✗ Failed to add flight: flight with code DL303 already exists")
	assert.Contains(t, out, "Found 1 flight(s):")
	assert.Contains(t, out, "Current status: Scheduled")
	assert.Contains(t, out, "✓ Flight status updated successfully!")
	assert.Contains(t, out, "✗ Failed to update status: cannot change flight status from Arrived to Boarding")
	assert.Contains(t, out, "Flight not found!")
	assert.Contains(t, out, "ALL SCHEDULED FLIGHTS")
	assert.Contains(t, out, "✓ Flight removed successfully!")
	assert.Contains(t, out, "✗ Flight not found!")
	assert.Empty(t, m.Flights())
}

func TestConsole_RemovePassenger(t *testing.T) {
	m := newManager()
	p, err := m.AddPassenger(context.Background(), "Robert Wilson", 55, "", 14)
	require.NoError(t, err)

	out := run(t, m, "1", "4", p.ID(), "4", p.ID(), "2", "5", "5")

	assert.Contains(t, out, "✓ Passenger removed successfully!")
	assert.Contains(t, out, "✗ Passenger not found!")
	assert.Contains(t, out, "No passengers registered.")
}

func TestConsole_Reports(t *testing.T) {
	m := newManager()
	out := run(t, m, "4", "1", "2", "3", "5")
	assert.Contains(t, out, "Total Registered Passengers: 0")
	assert.NotContains(t, out, "Average Flight Occupancy")
	assert.Contains(t, out, "No flights scheduled.")

	_, err := m.AddFlight(context.Background(), "UA202", "Chicago", "San Francisco", 2, 0)
	require.NoError(t, err)
	out = run(t, m, "4", "1", "2", "3", "5")
	assert.Contains(t, out, "Average Flight Occupancy: 0.0%")
	assert.Contains(t, out, "No passengers boarded yet.")
}

func TestConsole_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(newManager(), strings.NewReader("5\n"), &bytes.Buffer{})
	assert.ErrorIs(t, c.Run(ctx), context.Canceled)
}

func TestLooksLikePassengerID(t *testing.T) {
	assert.True(t, looksLikePassengerID("P1A2B3C4D"))
	assert.False(t, looksLikePassengerID("Peter"))
	assert.False(t, looksLikePassengerID("PXYZXYZXY"))
	assert.False(t, looksLikePassengerID("p1a2b3c4d"))
	assert.False(t, looksLikePassengerID("Pabcdef12"))
}

func TestConsole_BoardLowercaseHexGoesByName(t *testing.T) {
	mockService := &mocks.MockAirportUseCase{}
	mockService.On("BoardPassengerByName", mock.Anything, "Pabcdef12", "AA101", domain.TicketClassEconomy).
		Return(false, domain.NotFoundError{Entity: "passenger with name", Key: "Pabcdef12"})

	out := run(t, mockService, "3", "1", "Pabcdef12", "AA101", "1", "3", "5")

	assert.Contains(t, out, "✗ Boarding failed: passenger with name not found: Pabcdef12")
	mockService.AssertExpectations(t)
	mockService.AssertNotCalled(t, "BoardPassenger", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestConsole_BoardByIDWithMock(t *testing.T) {
	mockService := &mocks.MockAirportUseCase{}
	mockService.On("BoardPassenger", mock.Anything, "P1A2B3C4D", "UA202", domain.TicketClassBusiness).Return(true, nil)

	out := run(t, mockService, "3", "1", "P1A2B3C4D", "UA202", "2", "3", "5")

	assert.Contains(t, out, "✓ Passenger boarded successfully!")
	mockService.AssertExpectations(t)
}

func TestConsole_AddPassengerWithMock(t *testing.T) {
	mockService := &mocks.MockAirportUseCase{}
	input := airport.PassengerInput{Name: "Emily Davis", Age: 31, Address: "321 Elm St", BaggageWeight: 19.5}
	mockService.On("RegisterPassenger", mock.Anything, input).Return(domain.PassengerSummary{
		ID: "P0000ABCD", Name: "Emily Davis", Age: 31, Address: "321 Elm St", BaggageWeight: 19.5,
	}, nil)

	out := run(t, mockService, "1", "1", "Emily Davis", "31", "321 Elm St", "19.5", "5", "5")

	assert.Contains(t, out, "Passenger ID: P0000ABCD")
	assert.Contains(t, out, "Passenger [ID: P0000ABCD, Name: Emily Davis, Age: 31, Baggage: 19.5 kg, Class: Economy]")
	mockService.AssertExpectations(t)
}

func TestWriteManifest_GroupsByClass(t *testing.T) {
	var buf bytes.Buffer
	writeManifest(&buf, airport.Manifest{
		Flight:   domain.FlightSummary{Code: "AA101", Status: domain.FlightStatusBoarding},
		Business: []domain.PassengerSummary{{ID: "P00000002", Name: "Sarah Johnson", TicketClass: domain.TicketClassBusiness}},
	})

	out := buf.String()
	assert.Contains(t, out, "Business Class:\n  • Passenger [ID: P00000002")
	assert.NotContains(t, out, "Economy Class:")
}
