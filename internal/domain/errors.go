package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("not found")
	ErrAmbiguous     = errors.New("ambiguous reference")
	ErrStateConflict = errors.New("state conflict")
)

var (
	ErrNegativeBaggage = fmt.Errorf("%w: baggage weight cannot be negative", ErrValidation)
	ErrExcessBaggage   = fmt.Errorf("%w: baggage weight exceeds maximum allowed weight of %.1f kg", ErrValidation, MaxBaggageWeight)
	ErrEmptyName       = fmt.Errorf("%w: name is required", ErrValidation)
	ErrNegativeAge     = fmt.Errorf("%w: age cannot be negative", ErrValidation)
	ErrEmptyFlightCode = fmt.Errorf("%w: flight code is required", ErrValidation)
	ErrNegativeSeats   = fmt.Errorf("%w: seat count cannot be negative", ErrValidation)
	ErrInvalidSchedule = fmt.Errorf("%w: arrival cannot be before departure", ErrValidation)
	ErrAlreadyBoarded  = fmt.Errorf("%w: passenger already boarded on this flight", ErrStateConflict)
)

type NotFoundError struct {
	Entity string
	Key    string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.Key)
}

func (e NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

type DuplicateFlightError struct {
	Code string
}

func (e DuplicateFlightError) Error() string {
	return fmt.Sprintf("flight with code %s already exists", e.Code)
}

func (e DuplicateFlightError) Is(target error) bool {
	return target == ErrValidation
}

type AmbiguousNameError struct {
	Name    string
	Matches int
}

func (e AmbiguousNameError) Error() string {
	return fmt.Sprintf("multiple passengers (%d) found with name: %s. Please use passenger ID instead", e.Matches, e.Name)
}

func (e AmbiguousNameError) Is(target error) bool {
	return target == ErrAmbiguous
}

// BoardingClosedError is returned when a flight's status no longer accepts passengers.
type BoardingClosedError struct {
	Status FlightStatus
}

func (e BoardingClosedError) Error() string {
	return fmt.Sprintf("cannot board passengers. Flight status: %s", e.Status)
}

func (e BoardingClosedError) Is(target error) bool {
	return target == ErrStateConflict
}

type StatusTransitionError struct {
	From FlightStatus
	To   FlightStatus
}

func (e StatusTransitionError) Error() string {
	return fmt.Sprintf("cannot change flight status from %s to %s", e.From, e.To)
}

func (e StatusTransitionError) Is(target error) bool {
	return target == ErrStateConflict
}
