package domain

import "time"

type EventType string

const (
	EventPassengerRegistered EventType = "passenger_registered"
	EventPassengerRemoved    EventType = "passenger_removed"
	EventFlightScheduled     EventType = "flight_scheduled"
	EventFlightRemoved       EventType = "flight_removed"
	EventFlightStatusChanged EventType = "flight_status_changed"
	EventPassengerBoarded    EventType = "passenger_boarded"
)

// Event is what the airport publishes after every successful change.
type Event struct {
	Type          EventType     `json:"type"`
	PassengerID   string        `json:"passenger_id,omitempty"`
	PassengerName string        `json:"passenger_name,omitempty"`
	FlightCode    string        `json:"flight_code,omitempty"`
	Destination   string        `json:"destination,omitempty"`
	TicketClass   *TicketClass  `json:"ticket_class,omitempty"`
	Status        *FlightStatus `json:"status,omitempty"`
	OccurredAt    time.Time     `json:"occurred_at"`
}

// Key is the partitioning key: the flight when there is one, otherwise the passenger.
func (e Event) Key() string {
	if e.FlightCode != "" {
		return e.FlightCode
	}
	return e.PassengerID
}
