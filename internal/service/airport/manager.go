package airport

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Domenick1991/airport/internal/domain"
)

const maxIDAttempts = 5

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// Manager owns the passenger and flight registries and performs every
// operation that touches both.
type Manager struct {
	mu         sync.RWMutex
	passengers map[string]*domain.Passenger
	flights    map[string]*domain.Flight

	producer Producer
	topic    string
	logger   *slog.Logger
	now      func() time.Time
	newID    func() string
}

type Option func(*Manager)

func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

func WithProducer(producer Producer, topic string) Option {
	return func(m *Manager) {
		m.producer = producer
		m.topic = topic
	}
}

func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(m *Manager) {
		if newID != nil {
			m.newID = newID
		}
	}
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		passengers: make(map[string]*domain.Passenger),
		flights:    make(map[string]*domain.Flight),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:        time.Now,
		newID:      domain.NewPassengerID,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) AddPassenger(ctx context.Context, name string, age int, address string, baggageWeight float64) (*domain.Passenger, error) {
	m.mu.Lock()
	p, err := m.addPassengerLocked(name, age, address, baggageWeight)
	m.mu.Unlock()
	if err != nil {
		return nil, err
	}

	m.logger.Info("passenger registered", "passenger_id", p.ID(), "name", p.Name())
	m.publish(ctx, domain.Event{
		Type:          domain.EventPassengerRegistered,
		PassengerID:   p.ID(),
		PassengerName: p.Name(),
	})
	return p, nil
}

func (m *Manager) addPassengerLocked(name string, age int, address string, baggageWeight float64) (*domain.Passenger, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := m.newID()
		if _, taken := m.passengers[id]; taken {
			continue
		}
		p, err := domain.NewPassengerWithID(id, name, age, address, baggageWeight)
		if err != nil {
			return nil, err
		}
		m.passengers[id] = p
		return p, nil
	}
	return nil, fmt.Errorf("generate passenger id: %d attempts collided", maxIDAttempts)
}

func (m *Manager) FindPassengerByID(id string) (*domain.Passenger, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.passengers[id]
	return p, ok
}

// FindPassengersByName matches name as a case-insensitive substring.
func (m *Manager) FindPassengersByName(name string) []*domain.Passenger {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.passengersByNameLocked(name)
}

func (m *Manager) passengersByNameLocked(name string) []*domain.Passenger {
	needle := strings.ToLower(name)
	found := make([]*domain.Passenger, 0)
	for _, p := range m.passengers {
		if strings.Contains(strings.ToLower(p.Name()), needle) {
			found = append(found, p)
		}
	}
	sortPassengers(found)
	return found
}

func (m *Manager) Passengers() []*domain.Passenger {
	return m.FindPassengersByName("")
}

// RemovePassenger takes the passenger off every flight before dropping them from the registry.
func (m *Manager) RemovePassenger(ctx context.Context, id string) bool {
	m.mu.Lock()
	var flights []string
	for _, f := range m.flights {
		if f.Remove(id) {
			flights = append(flights, f.Code())
		}
	}
	p, existed := m.passengers[id]
	delete(m.passengers, id)
	m.mu.Unlock()

	if !existed {
		return false
	}

	m.logger.Info("passenger removed", "passenger_id", id, "flights", flights)
	m.publish(ctx, domain.Event{
		Type:          domain.EventPassengerRemoved,
		PassengerID:   id,
		PassengerName: p.Name(),
	})
	return true
}

func (m *Manager) AddFlight(ctx context.Context, code, destination, origin string, economySeats, businessSeats int) (*domain.Flight, error) {
	m.mu.Lock()
	f, err := m.addFlightLocked(code, destination, origin, economySeats, businessSeats)
	m.mu.Unlock()
	if err != nil {
		return nil, err
	}

	m.logger.Info("flight scheduled", "flight", f.Code(), "origin", f.Origin(), "destination", f.Destination())
	m.publish(ctx, domain.Event{
		Type:        domain.EventFlightScheduled,
		FlightCode:  f.Code(),
		Destination: f.Destination(),
	})
	return f, nil
}

func (m *Manager) addFlightLocked(code, destination, origin string, economySeats, businessSeats int) (*domain.Flight, error) {
	key := domain.NormalizeFlightCode(code)
	if _, exists := m.flights[key]; exists {
		return nil, domain.DuplicateFlightError{Code: code}
	}
	f, err := domain.NewFlight(code, destination, origin, economySeats, businessSeats, m.now())
	if err != nil {
		return nil, err
	}
	m.flights[f.Code()] = f
	return f, nil
}

// FindFlightByCode ignores the case of code.
func (m *Manager) FindFlightByCode(code string) (*domain.Flight, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.flights[domain.NormalizeFlightCode(code)]
	return f, ok
}

func (m *Manager) FindFlightsByDestination(destination string) []*domain.Flight {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.flightsByDestinationLocked(destination)
}

func (m *Manager) flightsByDestinationLocked(destination string) []*domain.Flight {
	needle := strings.ToLower(destination)
	found := make([]*domain.Flight, 0)
	for _, f := range m.flights {
		if strings.Contains(strings.ToLower(f.Destination()), needle) {
			found = append(found, f)
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].Code() < found[j].Code() })
	return found
}

func (m *Manager) Flights() []*domain.Flight {
	return m.FindFlightsByDestination("")
}

func (m *Manager) RemoveFlight(ctx context.Context, code string) bool {
	key := domain.NormalizeFlightCode(code)

	m.mu.Lock()
	f, existed := m.flights[key]
	delete(m.flights, key)
	m.mu.Unlock()

	if !existed {
		return false
	}

	m.logger.Info("flight removed", "flight", key, "passengers", f.BoardedCount())
	m.publish(ctx, domain.Event{
		Type:        domain.EventFlightRemoved,
		FlightCode:  key,
		Destination: f.Destination(),
	})
	return true
}

// BoardPassenger returns false without error when the requested class is full.
func (m *Manager) BoardPassenger(ctx context.Context, passengerID, flightCode string, class domain.TicketClass) (bool, error) {
	m.mu.Lock()
	p, f, boarded, err := m.boardLocked(passengerID, flightCode, class)
	m.mu.Unlock()
	if err != nil {
		m.logger.Warn("boarding rejected", "passenger_id", passengerID, "flight", flightCode, "error", err)
		return false, err
	}
	if !boarded {
		m.logger.Info("no seats available", "flight", f.Code(), "class", class)
		return false, nil
	}

	m.logger.Info("passenger boarded", "passenger_id", p.ID(), "flight", f.Code(), "class", class)
	m.publish(ctx, domain.Event{
		Type:          domain.EventPassengerBoarded,
		PassengerID:   p.ID(),
		PassengerName: p.Name(),
		FlightCode:    f.Code(),
		Destination:   f.Destination(),
		TicketClass:   &class,
	})
	return true, nil
}

func (m *Manager) boardLocked(passengerID, flightCode string, class domain.TicketClass) (*domain.Passenger, *domain.Flight, bool, error) {
	p, ok := m.passengers[passengerID]
	if !ok {
		return nil, nil, false, domain.NotFoundError{Entity: "passenger", Key: passengerID}
	}
	f, ok := m.flights[domain.NormalizeFlightCode(flightCode)]
	if !ok {
		return nil, nil, false, domain.NotFoundError{Entity: "flight", Key: flightCode}
	}
	boarded, err := f.Board(p, class)
	return p, f, boarded, err
}

// BoardPassengerByName requires name to match exactly one registered passenger.
func (m *Manager) BoardPassengerByName(ctx context.Context, name, flightCode string, class domain.TicketClass) (bool, error) {
	matches := m.FindPassengersByName(name)
	switch len(matches) {
	case 0:
		return false, domain.NotFoundError{Entity: "passenger with name", Key: name}
	case 1:
		return m.BoardPassenger(ctx, matches[0].ID(), flightCode, class)
	default:
		return false, domain.AmbiguousNameError{Name: name, Matches: len(matches)}
	}
}

func (m *Manager) SetFlightStatus(ctx context.Context, code string, status domain.FlightStatus) error {
	m.mu.Lock()
	f, ok := m.flights[domain.NormalizeFlightCode(code)]
	if !ok {
		m.mu.Unlock()
		return domain.NotFoundError{Entity: "flight", Key: code}
	}
	previous := f.Status()
	err := f.SetStatus(status)
	m.mu.Unlock()
	if err != nil {
		return err
	}
	if previous == status {
		return nil
	}

	m.logger.Info("flight status changed", "flight", f.Code(), "from", previous, "to", status)
	m.publish(ctx, domain.Event{
		Type:        domain.EventFlightStatusChanged,
		FlightCode:  f.Code(),
		Destination: f.Destination(),
		Status:      &status,
	})
	return nil
}

func (m *Manager) SetFlightSchedule(code string, departure, arrival time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.flights[domain.NormalizeFlightCode(code)]
	if !ok {
		return domain.NotFoundError{Entity: "flight", Key: code}
	}
	return f.SetSchedule(departure, arrival)
}

func (m *Manager) publish(ctx context.Context, event domain.Event) {
	if m.producer == nil || m.topic == "" {
		return
	}
	event.OccurredAt = m.now()
	if err := m.producer.Publish(ctx, m.topic, event.Key(), event); err != nil {
		m.logger.Warn("failed to publish event", "type", event.Type, "key", event.Key(), "error", err)
	}
}

func sortPassengers(list []*domain.Passenger) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name() != list[j].Name() {
			return list[i].Name() < list[j].Name()
		}
		return list[i].ID() < list[j].ID()
	})
}
