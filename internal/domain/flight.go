package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	DefaultDepartureLead  = 2 * time.Hour
	DefaultFlightDuration = 3 * time.Hour

	TimeLayout = "2006-01-02 15:04"
)

type seatPool struct {
	total     int
	available int
}

// Boarding is a roster entry: the passenger and the class they hold on this flight.
type Boarding struct {
	Passenger *Passenger
	Class     TicketClass
}

type Flight struct {
	code          string
	origin        string
	destination   string
	departureTime time.Time
	arrivalTime   time.Time
	seats         map[TicketClass]*seatPool
	roster        map[string]Boarding
	status        FlightStatus
}

// NewFlight schedules a flight departing two hours after now.
func NewFlight(code, destination, origin string, economySeats, businessSeats int, now time.Time) (*Flight, error) {
	code = NormalizeFlightCode(code)
	if code == "" {
		return nil, ErrEmptyFlightCode
	}
	if economySeats < 0 || businessSeats < 0 {
		return nil, ErrNegativeSeats
	}
	departure := now.Add(DefaultDepartureLead)
	return &Flight{
		code:        code,
		origin:      origin,
		destination: destination,
		seats: map[TicketClass]*seatPool{
			TicketClassEconomy:  {total: economySeats, available: economySeats},
			TicketClassBusiness: {total: businessSeats, available: businessSeats},
		},
		roster:        make(map[string]Boarding),
		status:        FlightStatusScheduled,
		departureTime: departure,
		arrivalTime:   departure.Add(DefaultFlightDuration),
	}, nil
}

func NormalizeFlightCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Board seats p in the requested class. A full class is reported as false, not as an error.
func (f *Flight) Board(p *Passenger, class TicketClass) (bool, error) {
	if _, ok := f.roster[p.ID()]; ok {
		return false, ErrAlreadyBoarded
	}
	if !f.status.AcceptsBoarding() {
		return false, BoardingClosedError{Status: f.status}
	}
	pool, ok := f.seats[class]
	if !ok {
		return false, fmt.Errorf("%w: unknown ticket class %d", ErrValidation, int(class))
	}
	if pool.available <= 0 {
		return false, nil
	}

	pool.available--
	p.setTicketClass(class)
	f.roster[p.ID()] = Boarding{Passenger: p, Class: class}
	return true, nil
}

// Remove drops the passenger from the roster and gives the seat back to the class they boarded in.
func (f *Flight) Remove(passengerID string) bool {
	entry, ok := f.roster[passengerID]
	if !ok {
		return false
	}
	delete(f.roster, passengerID)
	if pool, ok := f.seats[entry.Class]; ok && pool.available < pool.total {
		pool.available++
	}
	return true
}

func (f *Flight) HasPassenger(passengerID string) bool {
	_, ok := f.roster[passengerID]
	return ok
}

// ClassOf reports the class the passenger boarded this flight in.
func (f *Flight) ClassOf(passengerID string) (TicketClass, bool) {
	entry, ok := f.roster[passengerID]
	return entry.Class, ok
}

// Passengers returns the roster sorted by passenger id.
func (f *Flight) Passengers() []*Passenger {
	roster := f.Roster()
	list := make([]*Passenger, 0, len(roster))
	for _, entry := range roster {
		list = append(list, entry.Passenger)
	}
	return list
}

// Roster returns the boarding entries sorted by passenger id.
func (f *Flight) Roster() []Boarding {
	list := make([]Boarding, 0, len(f.roster))
	for _, entry := range f.roster {
		list = append(list, entry)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Passenger.ID() < list[j].Passenger.ID() })
	return list
}

func (f *Flight) BoardedCount() int {
	return len(f.roster)
}

func (f *Flight) BoardedInClass(class TicketClass) int {
	n := 0
	for _, entry := range f.roster {
		if entry.Class == class {
			n++
		}
	}
	return n
}

func (f *Flight) TotalSeats() int {
	return f.TotalEconomySeats() + f.TotalBusinessSeats()
}

func (f *Flight) OccupancyRate() float64 {
	total := f.TotalSeats()
	if total == 0 {
		return 0
	}
	return float64(len(f.roster)) / float64(total) * 100
}

func (f *Flight) SetStatus(status FlightStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown flight status %d", ErrValidation, int(status))
	}
	if !f.status.CanTransitionTo(status) {
		return StatusTransitionError{From: f.status, To: status}
	}
	f.status = status
	return nil
}

func (f *Flight) SetSchedule(departure, arrival time.Time) error {
	if arrival.Before(departure) {
		return ErrInvalidSchedule
	}
	f.departureTime = departure
	f.arrivalTime = arrival
	return nil
}

func (f *Flight) Code() string                { return f.code }
func (f *Flight) Origin() string              { return f.origin }
func (f *Flight) Destination() string         { return f.destination }
func (f *Flight) DepartureTime() time.Time    { return f.departureTime }
func (f *Flight) ArrivalTime() time.Time      { return f.arrivalTime }
func (f *Flight) Status() FlightStatus        { return f.status }
func (f *Flight) TotalEconomySeats() int      { return f.seats[TicketClassEconomy].total }
func (f *Flight) TotalBusinessSeats() int     { return f.seats[TicketClassBusiness].total }
func (f *Flight) AvailableEconomySeats() int  { return f.seats[TicketClassEconomy].available }
func (f *Flight) AvailableBusinessSeats() int { return f.seats[TicketClassBusiness].available }
func (f *Flight) SetOrigin(origin string)     { f.origin = origin }
func (f *Flight) SetDestination(dest string)  { f.destination = dest }

func (f *Flight) AvailableSeats(class TicketClass) int {
	if pool, ok := f.seats[class]; ok {
		return pool.available
	}
	return 0
}

func (f *Flight) String() string {
	return f.Summary().String()
}
