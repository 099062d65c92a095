package domain

import (
	"fmt"
	"strings"
)

type FlightStatus int

const (
	FlightStatusScheduled FlightStatus = iota
	FlightStatusBoarding
	FlightStatusDeparted
	FlightStatusArrived
	FlightStatusCancelled
	FlightStatusDelayed
)

var flightStatusNames = map[FlightStatus][2]string{
	FlightStatusScheduled: {"SCHEDULED", "Scheduled"},
	FlightStatusBoarding:  {"BOARDING", "Boarding"},
	FlightStatusDeparted:  {"DEPARTED", "Departed"},
	FlightStatusArrived:   {"ARRIVED", "Arrived"},
	FlightStatusCancelled: {"CANCELLED", "Cancelled"},
	FlightStatusDelayed:   {"DELAYED", "Delayed"},
}

// Statuses are assigned by operators, so any change is allowed until the flight has arrived.
var terminalStatuses = map[FlightStatus]bool{
	FlightStatusArrived: true,
}

// FlightStatuses lists every status in menu order.
func FlightStatuses() []FlightStatus {
	return []FlightStatus{
		FlightStatusScheduled,
		FlightStatusBoarding,
		FlightStatusDeparted,
		FlightStatusArrived,
		FlightStatusCancelled,
		FlightStatusDelayed,
	}
}

func (s FlightStatus) Valid() bool {
	_, ok := flightStatusNames[s]
	return ok
}

func (s FlightStatus) String() string {
	if names, ok := flightStatusNames[s]; ok {
		return names[1]
	}
	return fmt.Sprintf("FlightStatus(%d)", int(s))
}

func (s FlightStatus) Code() string {
	return flightStatusNames[s][0]
}

func (s FlightStatus) Terminal() bool {
	return terminalStatuses[s]
}

// AcceptsBoarding reports whether passengers may still be boarded.
func (s FlightStatus) AcceptsBoarding() bool {
	return s == FlightStatusScheduled || s == FlightStatusBoarding
}

func (s FlightStatus) CanTransitionTo(next FlightStatus) bool {
	if !next.Valid() {
		return false
	}
	return s == next || !s.Terminal()
}

func ParseFlightStatus(s string) (FlightStatus, error) {
	s = strings.TrimSpace(s)
	for status, names := range flightStatusNames {
		if strings.EqualFold(s, names[0]) {
			return status, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown flight status %q", ErrValidation, s)
}

func (s FlightStatus) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: unknown flight status %d", ErrValidation, int(s))
	}
	return []byte(s.Code()), nil
}

func (s *FlightStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseFlightStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
