package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/service/airport"
)

var (
	heavyRule = strings.Repeat("=", 60)
	lightRule = strings.Repeat("-", 60)
)

func writeManifest(w io.Writer, m airport.Manifest) {
	fmt.Fprintln(w, "\n"+heavyRule)
	fmt.Fprintln(w, "FLIGHT MANIFEST")
	fmt.Fprintln(w, heavyRule)
	fmt.Fprintln(w, m.Flight.String())
	fmt.Fprintln(w, lightRule)

	if m.Empty() {
		fmt.Fprintln(w, "No passengers boarded yet.")
	} else {
		fmt.Fprintln(w, "PASSENGER LIST:")
		writeClass(w, "Business Class:", m.Business)
		writeClass(w, "Economy Class:", m.Economy)
	}
	fmt.Fprintln(w, heavyRule)
}

func writeClass(w io.Writer, title string, passengers []domain.PassengerSummary) {
	if len(passengers) == 0 {
		return
	}
	fmt.Fprintln(w, "\n"+title)
	for _, p := range passengers {
		fmt.Fprintln(w, "  • "+p.String())
	}
}

func writeAllFlights(w io.Writer, flights []domain.FlightSummary) {
	if len(flights) == 0 {
		fmt.Fprintln(w, "No flights scheduled.")
		return
	}
	fmt.Fprintln(w, "\n"+heavyRule)
	fmt.Fprintln(w, "ALL SCHEDULED FLIGHTS")
	fmt.Fprintln(w, heavyRule)
	for _, f := range flights {
		fmt.Fprintln(w, f.String())
		fmt.Fprintf(w, "Passengers: %d\n", f.Passengers)
		fmt.Fprintln(w, lightRule)
	}
}

func writeStatistics(w io.Writer, s airport.Statistics) {
	fmt.Fprintln(w, "\n"+heavyRule)
	fmt.Fprintln(w, "AIRPORT STATISTICS")
	fmt.Fprintln(w, heavyRule)
	fmt.Fprintf(w, "Total Registered Passengers: %d\n", s.RegisteredPassengers)
	fmt.Fprintf(w, "Total Scheduled Flights: %d\n", s.ScheduledFlights)
	if s.ScheduledFlights > 0 {
		fmt.Fprintf(w, "Total Passengers Boarded: %d\n", s.BoardedPassengers)
		fmt.Fprintf(w, "Average Flight Occupancy: %.1f%%\n", s.AverageOccupancy)
	}
	fmt.Fprintln(w, heavyRule)
}
