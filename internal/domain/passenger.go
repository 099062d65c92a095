package domain

import (
	"strings"

	"github.com/google/uuid"
)

// MaxBaggageWeight is the checked baggage allowance in kilograms.
const MaxBaggageWeight = 20.0

type Passenger struct {
	identity      Person
	id            string
	baggageWeight float64
	ticketClass   TicketClass
}

// NewPassengerID returns "P" followed by 8 uppercase hex characters.
func NewPassengerID() string {
	return "P" + strings.ToUpper(uuid.NewString()[:8])
}

func NewPassenger(name string, age int, address string, baggageWeight float64) (*Passenger, error) {
	return NewPassengerWithID(NewPassengerID(), name, age, address, baggageWeight)
}

func NewPassengerWithID(id, name string, age int, address string, baggageWeight float64) (*Passenger, error) {
	identity, err := NewPerson(name, age, address)
	if err != nil {
		return nil, err
	}
	p := &Passenger{
		identity:    identity,
		id:          id,
		ticketClass: TicketClassEconomy,
	}
	if err := p.SetBaggageWeight(baggageWeight); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Passenger) ID() string               { return p.id }
func (p *Passenger) Name() string             { return p.identity.Name() }
func (p *Passenger) Age() int                 { return p.identity.Age() }
func (p *Passenger) Address() string          { return p.identity.Address() }
func (p *Passenger) Identity() Person         { return p.identity }
func (p *Passenger) BaggageWeight() float64   { return p.baggageWeight }
func (p *Passenger) TicketClass() TicketClass { return p.ticketClass }

func (p *Passenger) SetName(name string) error { return p.identity.SetName(name) }
func (p *Passenger) SetAge(age int) error      { return p.identity.SetAge(age) }
func (p *Passenger) SetAddress(address string) { p.identity.SetAddress(address) }

func (p *Passenger) SetBaggageWeight(weight float64) error {
	if weight < 0 {
		return ErrNegativeBaggage
	}
	if weight > MaxBaggageWeight {
		return ErrExcessBaggage
	}
	p.baggageWeight = weight
	return nil
}

// HasExcessBaggage can only be true if the weight bypassed SetBaggageWeight.
func (p *Passenger) HasExcessBaggage() bool {
	return p.baggageWeight > MaxBaggageWeight
}

func (p *Passenger) setTicketClass(class TicketClass) {
	p.ticketClass = class
}

func (p *Passenger) String() string {
	return p.Summary().String()
}
