// Package model defines the address book entry.
package model

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// Person is one address book entry.
//
// No field is required and entries carry no identity: two persons with equal
// fields are still two entries.
type Person struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Street     string `json:"street"`
	PostalCode int    `json:"postal_code"`
	City       string `json:"city"`

	// Birthday is nil when unknown.
	Birthday *civil.Date `json:"birthday,omitempty"`
}

// New creates a person with the given name and placeholder address data.
func New(firstName, lastName string) *Person {
	birthday := civil.Date{Year: 1999, Month: time.February, Day: 21}
	return &Person{
		FirstName:  firstName,
		LastName:   lastName,
		Street:     "some street",
		PostalCode: 1234,
		City:       "some city",
		Birthday:   &birthday,
	}
}

// FullName joins first and last name, skipping empty parts.
func (p *Person) FullName() string {
	parts := make([]string, 0, 2)
	for _, s := range []string{p.FirstName, p.LastName} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// Clone returns a snapshot of p that shares no memory with it.
func (p *Person) Clone() Person {
	c := *p
	if p.Birthday != nil {
		b := *p.Birthday
		c.Birthday = &b
	}
	return c
}

// Apply overwrites every field of p with the values from snapshot.
func (p *Person) Apply(snapshot Person) {
	*p = snapshot.Clone()
}

// Equal reports whether p and other hold the same field values.
func (p *Person) Equal(other *Person) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p.FirstName != other.FirstName || p.LastName != other.LastName ||
		p.Street != other.Street || p.PostalCode != other.PostalCode || p.City != other.City {
		return false
	}
	switch {
	case p.Birthday == nil && other.Birthday == nil:
		return true
	case p.Birthday == nil || other.Birthday == nil:
		return false
	default:
		return *p.Birthday == *other.Birthday
	}
}
