package domain

import "strings"

// Person is the identity shared by everyone the airport tracks.
type Person struct {
	name    string
	age     int
	address string
}

func NewPerson(name string, age int, address string) (Person, error) {
	var p Person
	if err := p.SetName(name); err != nil {
		return Person{}, err
	}
	if err := p.SetAge(age); err != nil {
		return Person{}, err
	}
	p.SetAddress(address)
	return p, nil
}

func (p Person) Name() string    { return p.name }
func (p Person) Age() int        { return p.age }
func (p Person) Address() string { return p.address }

func (p *Person) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	p.name = name
	return nil
}

func (p *Person) SetAge(age int) error {
	if age < 0 {
		return ErrNegativeAge
	}
	p.age = age
	return nil
}

func (p *Person) SetAddress(address string) {
	p.address = address
}
