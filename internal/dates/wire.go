package dates

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"cloud.google.com/go/civil"
)

var isoDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ErrMalformedDate matches every *MalformedDateError via errors.Is.
var ErrMalformedDate = errors.New("malformed date")

// MalformedDateError reports stored date text that is not a valid ISO-8601
// calendar date.
type MalformedDateError struct {
	Text string
	Err  error
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("malformed date %q: expected yyyy-MM-dd", e.Text)
}

func (e *MalformedDateError) Unwrap() error { return e.Err }

func (e *MalformedDateError) Is(target error) bool { return target == ErrMalformedDate }

// ToWire renders d in its stored form, yyyy-MM-dd.
func ToWire(d civil.Date) string {
	return d.String()
}

// FromWire parses the stored form written by ToWire.
func FromWire(text string) (civil.Date, error) {
	trimmed := strings.TrimSpace(text)
	if !isoDateRegex.MatchString(trimmed) {
		return civil.Date{}, &MalformedDateError{Text: text}
	}
	d, err := civil.ParseDate(trimmed)
	if err != nil {
		return civil.Date{}, &MalformedDateError{Text: text, Err: err}
	}
	return d, nil
}
