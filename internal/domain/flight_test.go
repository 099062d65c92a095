package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

func newTestPassenger(t *testing.T, id, name string) *Passenger {
	t.Helper()
	p, err := NewPassengerWithID(id, name, 30, "Somewhere", 10)
	require.NoError(t, err)
	return p
}

func TestNewFlight_Defaults(t *testing.T) {
	f, err := NewFlight(" aa123 ", "Los Angeles", "New York", 150, 30, testNow)
	require.NoError(t, err)

	assert.Equal(t, "AA123", f.Code())
	assert.Equal(t, FlightStatusScheduled, f.Status())
	assert.Equal(t, testNow.Add(2*time.Hour), f.DepartureTime())
	assert.Equal(t, testNow.Add(5*time.Hour), f.ArrivalTime())
	assert.Equal(t, 150, f.AvailableEconomySeats())
	assert.Equal(t, 30, f.AvailableBusinessSeats())
	assert.Equal(t, 180, f.TotalSeats())
	assert.Zero(t, f.OccupancyRate())
}

func TestNewFlight_Validation(t *testing.T) {
	_, err := NewFlight("  ", "Miami", "Boston", 1, 1, testNow)
	assert.ErrorIs(t, err, ErrEmptyFlightCode)

	_, err = NewFlight("DL303", "Miami", "Boston", -1, 1, testNow)
	assert.ErrorIs(t, err, ErrNegativeSeats)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestFlight_BoardUntilFull(t *testing.T) {
	f, err := NewFlight("aa123", "Los Angeles", "New York", 2, 0, testNow)
	require.NoError(t, err)

	a := newTestPassenger(t, "PAAAAAAAA", "A")
	b := newTestPassenger(t, "PBBBBBBBB", "B")
	c := newTestPassenger(t, "PCCCCCCCC", "C")

	ok, err := f.Board(a, TicketClassEconomy)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, f.AvailableEconomySeats())

	ok, err = f.Board(b, TicketClassEconomy)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, f.AvailableEconomySeats())

	ok, err = f.Board(c, TicketClassEconomy)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, f.AvailableEconomySeats())
	assert.False(t, f.HasPassenger(c.ID()))
	assert.Equal(t, 2, f.BoardedCount())
}

func TestFlight_BoardDoesNotDrawFromOtherClass(t *testing.T) {
	f, err := NewFlight("UA202", "Chicago", "San Francisco", 0, 1, testNow)
	require.NoError(t, err)
	p := newTestPassenger(t, "P00000001", "Michael Brown")

	ok, err := f.Board(p, TicketClassEconomy)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, f.AvailableBusinessSeats())
	assert.Equal(t, TicketClassEconomy, p.TicketClass())

	ok, err = f.Board(p, TicketClassBusiness)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, f.AvailableBusinessSeats())
	assert.Equal(t, TicketClassBusiness, p.TicketClass())
}

func TestFlight_BoardTwiceIsStateConflict(t *testing.T) {
	f, err := NewFlight("DL303", "Miami", "Boston", 5, 5, testNow)
	require.NoError(t, err)
	p := newTestPassenger(t, "P00000002", "Emily Davis")

	ok, err := f.Board(p, TicketClassEconomy)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = f.Board(p, TicketClassBusiness)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrAlreadyBoarded)
	assert.ErrorIs(t, err, ErrStateConflict)
	assert.Equal(t, 4, f.AvailableEconomySeats())
	assert.Equal(t, 5, f.AvailableBusinessSeats())
	assert.Equal(t, TicketClassEconomy, p.TicketClass())
}

func TestFlight_BoardRejectedOutsideBoardingStatuses(t *testing.T) {
	for _, path := range [][]FlightStatus{
		{FlightStatusBoarding, FlightStatusDeparted},
		{FlightStatusBoarding, FlightStatusDeparted, FlightStatusArrived},
		{FlightStatusCancelled},
		{FlightStatusDelayed},
	} {
		final := path[len(path)-1]
		t.Run(final.String(), func(t *testing.T) {
			f, err := NewFlight("AA101", "Los Angeles", "New York", 1, 1, testNow)
			require.NoError(t, err)
			for _, s := range path {
				require.NoError(t, f.SetStatus(s))
			}

			ok, err := f.Board(newTestPassenger(t, "P00000003", "John Smith"), TicketClassEconomy)
			assert.False(t, ok)
			var closed BoardingClosedError
			require.ErrorAs(t, err, &closed)
			assert.Equal(t, final, closed.Status)
			assert.ErrorIs(t, err, ErrStateConflict)
			assert.Equal(t, 1, f.AvailableEconomySeats())
		})
	}
}

func TestFlight_BoardAllowedWhileBoarding(t *testing.T) {
	f, err := NewFlight("AA101", "Los Angeles", "New York", 1, 0, testNow)
	require.NoError(t, err)
	require.NoError(t, f.SetStatus(FlightStatusBoarding))

	ok, err := f.Board(newTestPassenger(t, "P00000004", "John Smith"), TicketClassEconomy)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFlight_RemoveRestoresSeatOfRecordedClass(t *testing.T) {
	f, err := NewFlight("AA101", "Los Angeles", "New York", 3, 2, testNow)
	require.NoError(t, err)
	eco := newTestPassenger(t, "P00000005", "Eco")
	biz := newTestPassenger(t, "P00000006", "Biz")

	_, err = f.Board(eco, TicketClassEconomy)
	require.NoError(t, err)
	_, err = f.Board(biz, TicketClassBusiness)
	require.NoError(t, err)

	assert.True(t, f.Remove(biz.ID()))
	assert.Equal(t, 2, f.AvailableBusinessSeats())
	assert.Equal(t, 2, f.AvailableEconomySeats())

	assert.False(t, f.Remove(biz.ID()))
	assert.False(t, f.Remove("PUNKNOWN0"))
	assert.Equal(t, 2, f.AvailableBusinessSeats())
}

func TestFlight_ClassIsRecordedPerFlight(t *testing.T) {
	aa, err := NewFlight("AA101", "Los Angeles", "New York", 3, 3, testNow)
	require.NoError(t, err)
	ua, err := NewFlight("UA202", "Chicago", "San Francisco", 3, 3, testNow)
	require.NoError(t, err)
	p := newTestPassenger(t, "P00000007", "Robert Wilson")

	_, err = aa.Board(p, TicketClassEconomy)
	require.NoError(t, err)
	_, err = ua.Board(p, TicketClassBusiness)
	require.NoError(t, err)

	assert.Equal(t, TicketClassBusiness, p.TicketClass())
	class, ok := aa.ClassOf(p.ID())
	require.True(t, ok)
	assert.Equal(t, TicketClassEconomy, class)
	assert.Equal(t, 1, aa.BoardedInClass(TicketClassEconomy))
	assert.Zero(t, aa.BoardedInClass(TicketClassBusiness))
	assert.Equal(t, aa.TotalEconomySeats(), aa.AvailableEconomySeats()+aa.BoardedInClass(TicketClassEconomy))

	require.True(t, aa.Remove(p.ID()))
	assert.Equal(t, 3, aa.AvailableEconomySeats())
	assert.Equal(t, 3, aa.AvailableBusinessSeats())

	_, ok = aa.ClassOf(p.ID())
	assert.False(t, ok)
	assert.Equal(t, []Boarding{{Passenger: p, Class: TicketClassBusiness}}, ua.Roster())
}

func TestFlight_SeatAccountingHoldsAcrossOperations(t *testing.T) {
	f, err := NewFlight("AA101", "Los Angeles", "New York", 4, 2, testNow)
	require.NoError(t, err)

	passengers := make([]*Passenger, 0, 8)
	for i := 0; i < 8; i++ {
		passengers = append(passengers, newTestPassenger(t, fmt.Sprintf("P%08d", i), fmt.Sprintf("Passenger %d", i)))
	}

	check := func() {
		assert.Equal(t, f.TotalEconomySeats(), f.AvailableEconomySeats()+f.BoardedInClass(TicketClassEconomy))
		assert.Equal(t, f.TotalBusinessSeats(), f.AvailableBusinessSeats()+f.BoardedInClass(TicketClassBusiness))
	}

	for i, p := range passengers {
		class := TicketClassEconomy
		if i%3 == 0 {
			class = TicketClassBusiness
		}
		_, err := f.Board(p, class)
		require.NoError(t, err)
		check()
	}
	for i, p := range passengers {
		if i%2 == 0 {
			f.Remove(p.ID())
			check()
		}
	}
	for _, p := range passengers {
		if !f.HasPassenger(p.ID()) {
			_, err := f.Board(p, TicketClassBusiness)
			require.NoError(t, err)
			check()
		}
	}
}

func TestFlight_OccupancyRate(t *testing.T) {
	f, err := NewFlight("AA101", "Los Angeles", "New York", 3, 1, testNow)
	require.NoError(t, err)
	_, err = f.Board(newTestPassenger(t, "P00000007", "One"), TicketClassEconomy)
	require.NoError(t, err)

	assert.InDelta(t, 25.0, f.OccupancyRate(), 1e-9)

	empty, err := NewFlight("ZZ000", "Nowhere", "Nowhere", 0, 0, testNow)
	require.NoError(t, err)
	assert.Zero(t, empty.OccupancyRate())
}

func TestFlight_SetStatusTransitions(t *testing.T) {
	f, err := NewFlight("AA101", "Los Angeles", "New York", 1, 1, testNow)
	require.NoError(t, err)

	require.NoError(t, f.SetStatus(FlightStatusScheduled))
	require.NoError(t, f.SetStatus(FlightStatusCancelled))
	require.NoError(t, f.SetStatus(FlightStatusScheduled), "a cancelled flight can be reinstated")
	require.NoError(t, f.SetStatus(FlightStatusDeparted))
	require.NoError(t, f.SetStatus(FlightStatusDelayed))
	require.NoError(t, f.SetStatus(FlightStatusArrived))
	require.NoError(t, f.SetStatus(FlightStatusArrived))

	var transition StatusTransitionError
	require.ErrorAs(t, f.SetStatus(FlightStatusCancelled), &transition)
	assert.ErrorIs(t, transition, ErrStateConflict)
	assert.Equal(t, FlightStatusArrived, transition.From)
	assert.Equal(t, FlightStatusCancelled, transition.To)

	assert.ErrorIs(t, f.SetStatus(FlightStatus(42)), ErrValidation)
}

func TestFlight_SetSchedule(t *testing.T) {
	f, err := NewFlight("AA101", "Los Angeles", "New York", 1, 1, testNow)
	require.NoError(t, err)

	dep := testNow.Add(24 * time.Hour)
	require.NoError(t, f.SetSchedule(dep, dep.Add(3*time.Hour)))
	assert.Equal(t, dep, f.DepartureTime())

	assert.ErrorIs(t, f.SetSchedule(dep, dep.Add(-time.Minute)), ErrInvalidSchedule)
	assert.Equal(t, dep.Add(3*time.Hour), f.ArrivalTime())
}

func TestFlight_String(t *testing.T) {
	f, err := NewFlight("dl303", "Miami", "Boston", 100, 20, testNow)
	require.NoError(t, err)

	want := "Flight DL303: Boston → Miami\n" +
		"Status: Scheduled\n" +
		"Departure: 2026-03-01 10:00 | Arrival: 2026-03-01 13:00\n" +
		"Economy: 100/100 available | Business: 20/20 available\n" +
		"Total Passengers: 0 (0.0% occupancy)"
	assert.Equal(t, want, f.String())
}

func TestFlight_PassengersSortedByID(t *testing.T) {
	f, err := NewFlight("AA101", "Los Angeles", "New York", 3, 0, testNow)
	require.NoError(t, err)
	for _, id := range []string{"P0000000C", "P0000000A", "P0000000B"} {
		_, err := f.Board(newTestPassenger(t, id, id), TicketClassEconomy)
		require.NoError(t, err)
	}

	roster := f.Passengers()
	require.Len(t, roster, 3)
	assert.Equal(t, "P0000000A", roster[0].ID())
	assert.Equal(t, "P0000000C", roster[2].ID())
}
