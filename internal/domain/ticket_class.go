package domain

import (
	"fmt"
	"strings"
)

type TicketClass int

const (
	TicketClassEconomy TicketClass = iota
	TicketClassBusiness
)

type ticketClassInfo struct {
	code            string
	displayName     string
	priceMultiplier float64
}

var ticketClasses = map[TicketClass]ticketClassInfo{
	TicketClassEconomy:  {code: "ECONOMY", displayName: "Economy", priceMultiplier: 1.0},
	TicketClassBusiness: {code: "BUSINESS", displayName: "Business", priceMultiplier: 1.5},
}

// TicketClasses lists the classes in menu order.
func TicketClasses() []TicketClass {
	return []TicketClass{TicketClassEconomy, TicketClassBusiness}
}

func (c TicketClass) Valid() bool {
	_, ok := ticketClasses[c]
	return ok
}

func (c TicketClass) String() string {
	if info, ok := ticketClasses[c]; ok {
		return info.displayName
	}
	return fmt.Sprintf("TicketClass(%d)", int(c))
}

func (c TicketClass) Code() string {
	return ticketClasses[c].code
}

func (c TicketClass) PriceMultiplier() float64 {
	return ticketClasses[c].priceMultiplier
}

// ParseTicketClass accepts the code or display name in any case.
func ParseTicketClass(s string) (TicketClass, error) {
	s = strings.TrimSpace(s)
	for c, info := range ticketClasses {
		if strings.EqualFold(s, info.code) || strings.EqualFold(s, info.displayName) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown ticket class %q", ErrValidation, s)
}

func (c TicketClass) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: unknown ticket class %d", ErrValidation, int(c))
	}
	return []byte(c.Code()), nil
}

func (c *TicketClass) UnmarshalText(text []byte) error {
	parsed, err := ParseTicketClass(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
