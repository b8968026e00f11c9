package storage

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/makery/addressapp/internal/dates"
	"github.com/makery/addressapp/internal/model"
)

// personList is the root element of an address file.
type personList struct {
	XMLName xml.Name    `xml:"persons"`
	Persons []xmlPerson `xml:"person"`
}

type xmlPerson struct {
	FirstName  string `xml:"firstName"`
	LastName   string `xml:"lastName"`
	Street     string `xml:"street"`
	PostalCode string `xml:"postalCode"`
	City       string `xml:"city"`
	Birthday   string `xml:"birthday,omitempty"`
}

// ErrInvalidText reports text an address file cannot hold unchanged.
var ErrInvalidText = errors.New("text contains characters not allowed in XML")

// CheckText returns ErrInvalidText when s is not valid UTF-8 or holds a
// character outside the XML 1.0 Char production.
func CheckText(s string) error {
	if !utf8.ValidString(s) {
		return ErrInvalidText
	}
	for _, r := range s {
		if !isXMLChar(r) {
			return fmt.Errorf("%w: %U", ErrInvalidText, r)
		}
	}
	return nil
}

func isXMLChar(r rune) bool {
	switch {
	case r == 0x09 || r == 0x0A || r == 0x0D:
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	default:
		return r >= 0x10000 && r <= 0x10FFFF
	}
}

// Encode writes persons as an indented address document. Text that would not
// survive a round trip is rejected before anything is written.
func Encode(w io.Writer, persons []*model.Person) error {
	list := personList{Persons: make([]xmlPerson, 0, len(persons))}
	for i, p := range persons {
		if p == nil {
			continue
		}
		xp, err := toXML(p)
		if err != nil {
			return fmt.Errorf("person %d: %w", i+1, err)
		}
		list.Persons = append(list.Persons, xp)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(list); err != nil {
		return fmt.Errorf("encode persons: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Decode reads an address document. Element order is preserved.
func Decode(r io.Reader) ([]*model.Person, error) {
	var list personList
	if err := xml.NewDecoder(r).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode persons: %w", err)
	}

	persons := make([]*model.Person, 0, len(list.Persons))
	for i, xp := range list.Persons {
		p, err := fromXML(xp)
		if err != nil {
			return nil, fmt.Errorf("person %d: %w", i+1, err)
		}
		persons = append(persons, p)
	}
	return persons, nil
}

func toXML(p *model.Person) (xmlPerson, error) {
	for _, f := range []struct{ name, value string }{
		{"firstName", p.FirstName},
		{"lastName", p.LastName},
		{"street", p.Street},
		{"city", p.City},
	} {
		if err := CheckText(f.value); err != nil {
			return xmlPerson{}, fmt.Errorf("%s: %w", f.name, err)
		}
	}

	xp := xmlPerson{
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Street:     p.Street,
		PostalCode: strconv.Itoa(p.PostalCode),
		City:       p.City,
	}
	if p.Birthday != nil {
		xp.Birthday = dates.ToWire(*p.Birthday)
	}
	return xp, nil
}

func fromXML(xp xmlPerson) (*model.Person, error) {
	p := &model.Person{
		FirstName: xp.FirstName,
		LastName:  xp.LastName,
		Street:    xp.Street,
		City:      xp.City,
	}

	if code := strings.TrimSpace(xp.PostalCode); code != "" {
		n, err := strconv.Atoi(code)
		if err != nil {
			return nil, fmt.Errorf("invalid postal code %q", xp.PostalCode)
		}
		p.PostalCode = n
	}

	if strings.TrimSpace(xp.Birthday) != "" {
		d, err := dates.FromWire(xp.Birthday)
		if err != nil {
			return nil, err
		}
		p.Birthday = &d
	}
	return p, nil
}
