// Package console is the interactive text front end of the airport manager.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/service/airport"
)

var errQuit = errors.New("quit")

type Console struct {
	airport airport.AirportUseCase
	in      *bufio.Scanner
	out     io.Writer
}

func New(m airport.AirportUseCase, in io.Reader, out io.Writer) *Console {
	return &Console{
		airport: m,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run shows the main menu until the user exits, input ends, or ctx is cancelled.
func (c *Console) Run(ctx context.Context) error {
	c.println("╔════════════════════════════════════════╗")
	c.println("║   AIRPORT MANAGEMENT SYSTEM            ║")
	c.println("╚════════════════════════════════════════╝")

	err := c.mainMenu(ctx)
	if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
		c.println("\nThank you for using Airport Management System!")
		return nil
	}
	return err
}

type menuItem struct {
	label  string
	action func(ctx context.Context) error
}

// menu loops until the last ("back") item is chosen. A nil action on the last item means return.
func (c *Console) menu(ctx context.Context, title string, items []menuItem) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.printf("\n┌─── %s ───┐\n", title)
		for i, item := range items {
			c.printf("│ %d. %s\n", i+1, item.label)
		}
		c.println("└" + strings.Repeat("─", len([]rune(title))+8) + "┘")

		choice, err := c.readInt("Enter your choice: ")
		if err != nil {
			return err
		}
		if choice < 1 || choice > len(items) {
			c.println("Invalid choice. Please try again.")
			continue
		}

		item := items[choice-1]
		if item.action == nil {
			return nil
		}
		if err := item.action(ctx); err != nil {
			return err
		}
	}
}

func (c *Console) mainMenu(ctx context.Context) error {
	return c.menu(ctx, "MAIN MENU", []menuItem{
		{"Passenger Management", c.passengerMenu},
		{"Flight Management", c.flightMenu},
		{"Boarding Operations", c.boardingMenu},
		{"Reports & Statistics", c.reportsMenu},
		{"Exit", func(context.Context) error { return errQuit }},
	})
}

func (c *Console) passengerMenu(ctx context.Context) error {
	return c.menu(ctx, "PASSENGER MANAGEMENT", []menuItem{
		{"Add New Passenger", c.addPassenger},
		{"View All Passengers", c.viewAllPassengers},
		{"Search Passenger", c.searchPassenger},
		{"Remove Passenger", c.removePassenger},
		{"Back to Main Menu", nil},
	})
}

func (c *Console) flightMenu(ctx context.Context) error {
	return c.menu(ctx, "FLIGHT MANAGEMENT", []menuItem{
		{"Add New Flight", c.addFlight},
		{"View All Flights", c.viewAllFlights},
		{"Search Flight", c.searchFlight},
		{"Update Flight Status", c.updateFlightStatus},
		{"Remove Flight", c.removeFlight},
		{"Back to Main Menu", nil},
	})
}

func (c *Console) boardingMenu(ctx context.Context) error {
	return c.menu(ctx, "BOARDING OPERATIONS", []menuItem{
		{"Board Passenger", c.boardPassenger},
		{"View Flight Manifest", c.viewFlightManifest},
		{"Back to Main Menu", nil},
	})
}

func (c *Console) reportsMenu(ctx context.Context) error {
	return c.menu(ctx, "REPORTS & STATISTICS", []menuItem{
		{"Airport Statistics", c.viewStatistics},
		{"All Flight Manifests", c.viewAllManifests},
		{"Back to Main Menu", nil},
	})
}

func (c *Console) addPassenger(ctx context.Context) error {
	c.println("\n--- Add New Passenger ---")
	name, err := c.readLine("Enter passenger name: ")
	if err != nil {
		return err
	}
	age, err := c.readInt("Enter age: ")
	if err != nil {
		return err
	}
	address, err := c.readLine("Enter address: ")
	if err != nil {
		return err
	}
	weight, err := c.readFloat("Enter baggage weight (kg): ")
	if err != nil {
		return err
	}

	p, err := c.airport.RegisterPassenger(ctx, airport.PassengerInput{
		Name:          name,
		Age:           age,
		Address:       address,
		BaggageWeight: weight,
	})
	if err != nil {
		c.printf("✗ Failed to add passenger: %v\n", err)
		return nil
	}
	c.println("✓ Passenger added successfully!")
	c.println("Passenger ID: " + p.ID)
	c.println(p.String())
	return nil
}

func (c *Console) viewAllPassengers(context.Context) error {
	passengers := c.airport.PassengerSummaries("")
	if len(passengers) == 0 {
		c.println("No passengers registered.")
		return nil
	}
	c.println("\n--- All Passengers ---")
	for _, p := range passengers {
		c.println(p.String())
	}
	return nil
}

func (c *Console) searchPassenger(context.Context) error {
	name, err := c.readLine("Enter passenger name to search: ")
	if err != nil {
		return err
	}
	found := c.airport.PassengerSummaries(name)
	if len(found) == 0 {
		c.println("No passengers found with name: " + name)
		return nil
	}
	c.printf("Found %d passenger(s):\n", len(found))
	for _, p := range found {
		c.println(p.String())
	}
	return nil
}

func (c *Console) removePassenger(ctx context.Context) error {
	id, err := c.readLine("Enter passenger ID to remove: ")
	if err != nil {
		return err
	}
	if c.airport.RemovePassenger(ctx, id) {
		c.println("✓ Passenger removed successfully!")
	} else {
		c.println("✗ Passenger not found!")
	}
	return nil
}

func (c *Console) addFlight(ctx context.Context) error {
	c.println("\n--- Add New Flight ---")
	code, err := c.readLine("Enter flight code (e.g., AA123): ")
	if err != nil {
		return err
	}
	origin, err := c.readLine("Enter origin city: ")
	if err != nil {
		return err
	}
	destination, err := c.readLine("Enter destination city: ")
	if err != nil {
		return err
	}
	economy, err := c.readInt("Enter number of economy seats: ")
	if err != nil {
		return err
	}
	business, err := c.readInt("Enter number of business seats: ")
	if err != nil {
		return err
	}

	f, err := c.airport.ScheduleFlight(ctx, airport.FlightInput{
		Code:          code,
		Origin:        origin,
		Destination:   destination,
		EconomySeats:  economy,
		BusinessSeats: business,
	})
	if err != nil {
		c.printf("✗ Failed to add flight: %v\n", err)
		return nil
	}
	c.println("✓ Flight added successfully!")
	c.println(f.String())
	return nil
}

func (c *Console) viewAllFlights(context.Context) error {
	writeAllFlights(c.out, c.airport.FlightSummaries(""))
	return nil
}

func (c *Console) searchFlight(context.Context) error {
	destination, err := c.readLine("Enter destination to search: ")
	if err != nil {
		return err
	}
	found := c.airport.FlightSummaries(destination)
	if len(found) == 0 {
		c.println("No flights found to: " + destination)
		return nil
	}
	c.printf("Found %d flight(s):\n", len(found))
	for _, f := range found {
		c.println(f.String())
		c.println("")
	}
	return nil
}

func (c *Console) updateFlightStatus(ctx context.Context) error {
	code, err := c.readLine("Enter flight code: ")
	if err != nil {
		return err
	}
	f, err := c.airport.FlightSummary(code)
	if err != nil {
		c.println("Flight not found!")
		return nil
	}

	c.println("Current status: " + f.Status.String())
	c.println("Select new status:")
	statuses := domain.FlightStatuses()
	for i, s := range statuses {
		c.printf("%d. %s\n", i+1, s)
	}
	choice, err := c.readInt("Enter choice: ")
	if err != nil {
		return err
	}
	if choice < 1 || choice > len(statuses) {
		c.println("Invalid choice!")
		return nil
	}

	if err := c.airport.SetFlightStatus(ctx, code, statuses[choice-1]); err != nil {
		c.printf("✗ Failed to update status: %v\n", err)
		return nil
	}
	c.println("✓ Flight status updated successfully!")
	return nil
}

func (c *Console) removeFlight(ctx context.Context) error {
	code, err := c.readLine("Enter flight code to remove: ")
	if err != nil {
		return err
	}
	if c.airport.RemoveFlight(ctx, code) {
		c.println("✓ Flight removed successfully!")
	} else {
		c.println("✗ Flight not found!")
	}
	return nil
}

func (c *Console) boardPassenger(ctx context.Context) error {
	c.println("\n--- Board Passenger ---")
	who, err := c.readLine("Enter passenger name or ID: ")
	if err != nil {
		return err
	}
	code, err := c.readLine("Enter flight code: ")
	if err != nil {
		return err
	}
	c.println("Select ticket class:")
	for i, class := range domain.TicketClasses() {
		c.printf("%d. %s\n", i+1, class)
	}
	choice, err := c.readInt("Enter choice: ")
	if err != nil {
		return err
	}
	class := domain.TicketClassEconomy
	if choice == 2 {
		class = domain.TicketClassBusiness
	}

	var boarded bool
	if looksLikePassengerID(who) {
		boarded, err = c.airport.BoardPassenger(ctx, who, code, class)
	} else {
		boarded, err = c.airport.BoardPassengerByName(ctx, who, code, class)
	}
	switch {
	case err != nil:
		c.printf("✗ Boarding failed: %v\n", err)
	case boarded:
		c.println("✓ Passenger boarded successfully!")
	default:
		c.printf("✗ No seats available in %s class!\n", class)
	}
	return nil
}

func (c *Console) viewFlightManifest(context.Context) error {
	code, err := c.readLine("Enter flight code: ")
	if err != nil {
		return err
	}
	c.printManifest(code)
	return nil
}

func (c *Console) viewStatistics(context.Context) error {
	writeStatistics(c.out, c.airport.Statistics())
	return nil
}

func (c *Console) viewAllManifests(context.Context) error {
	flights := c.airport.FlightSummaries("")
	if len(flights) == 0 {
		c.println("No flights scheduled.")
		return nil
	}
	for _, f := range flights {
		c.printManifest(f.Code)
		c.println("")
	}
	return nil
}

func (c *Console) printManifest(code string) {
	manifest, err := c.airport.Manifest(code)
	if err != nil {
		c.println("Flight not found: " + code)
		return
	}
	writeManifest(c.out, manifest)
}

// looksLikePassengerID mirrors the generated id shape: "P" and 8 uppercase hex digits.
func looksLikePassengerID(s string) bool {
	if len(s) != 9 || s[0] != 'P' {
		return false
	}
	for _, r := range s[1:] {
		if !(r >= '0' && r <= '9' || r >= 'A' && r <= 'F') {
			return false
		}
	}
	return true
}

func (c *Console) readLine(prompt string) (string, error) {
	c.printf("%s", prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) readInt(prompt string) (int, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		c.println("Invalid input! Please enter a number.")
	}
}

func (c *Console) readFloat(prompt string) (float64, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}
		f, err := strconv.ParseFloat(line, 64)
		if err == nil {
			return f, nil
		}
		c.println("Invalid input! Please enter a number.")
	}
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}
