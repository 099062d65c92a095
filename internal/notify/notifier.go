package notify

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/Domenick1991/airport/internal/domain"
)

// Notifier turns airport events into one-line announcements.
type Notifier struct {
	mu  sync.Mutex
	out io.Writer
}

func NewNotifier(out io.Writer) *Notifier {
	return &Notifier{out: out}
}

func (n *Notifier) Send(ctx context.Context, event domain.Event) error {
	msg := Message(event)
	if msg == "" {
		return nil
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	_, err := fmt.Fprintf(n.out, "[%s] %s\n", event.OccurredAt.Format(domain.TimeLayout), msg)
	return err
}

func Message(e domain.Event) string {
	switch e.Type {
	case domain.EventPassengerRegistered:
		return fmt.Sprintf("Welcome %s, your passenger ID is %s", e.PassengerName, e.PassengerID)
	case domain.EventPassengerRemoved:
		return fmt.Sprintf("Passenger %s (%s) has been removed from all flights", e.PassengerName, e.PassengerID)
	case domain.EventFlightScheduled:
		return fmt.Sprintf("Flight %s to %s is now scheduled", e.FlightCode, e.Destination)
	case domain.EventFlightRemoved:
		return fmt.Sprintf("Flight %s to %s has been removed from the schedule", e.FlightCode, e.Destination)
	case domain.EventFlightStatusChanged:
		if e.Status == nil {
			return ""
		}
		return fmt.Sprintf("Flight %s to %s: %s", e.FlightCode, e.Destination, *e.Status)
	case domain.EventPassengerBoarded:
		if e.TicketClass == nil {
			return ""
		}
		return fmt.Sprintf("%s boarded flight %s to %s in %s class", e.PassengerName, e.FlightCode, e.Destination, *e.TicketClass)
	default:
		return ""
	}
}
