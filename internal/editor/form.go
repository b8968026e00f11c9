// Package editor implements the edit workflows the application shell hands
// person snapshots to.
package editor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/makery/addressapp/internal/dates"
	"github.com/makery/addressapp/internal/model"
	"github.com/makery/addressapp/internal/storage"
)

// Form is the text form of a person as a user fills it in.
type Form struct {
	FirstName  string `yaml:"first_name"`
	LastName   string `yaml:"last_name"`
	Street     string `yaml:"street"`
	PostalCode string `yaml:"postal_code"`
	City       string `yaml:"city"`
	// Birthday uses the display pattern (dd.MM.yyyy).
	Birthday string `yaml:"birthday"`
}

// FormOf renders p into form fields.
func FormOf(p model.Person) Form {
	birthday, _ := dates.Format(p.Birthday)
	return Form{
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Street:     p.Street,
		PostalCode: strconv.Itoa(p.PostalCode),
		City:       p.City,
		Birthday:   birthday,
	}
}

// ValidationError lists every problem found in a form.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid fields: " + strings.Join(e.Problems, "; ")
}

// IsValidationError reports whether err carries a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Validate checks f and converts it into a person. All problems are reported
// together.
func Validate(f Form) (model.Person, error) {
	var problems []string
	required := func(value, label string) string {
		value = strings.TrimSpace(value)
		switch {
		case value == "":
			problems = append(problems, "no valid "+label)
		case storage.CheckText(value) != nil:
			problems = append(problems, "no valid "+label+" (contains control characters)")
		}
		return value
	}

	p := model.Person{
		FirstName: required(f.FirstName, "first name"),
		LastName:  required(f.LastName, "last name"),
		Street:    required(f.Street, "street"),
		City:      required(f.City, "city"),
	}

	if code := strings.TrimSpace(f.PostalCode); code == "" {
		problems = append(problems, "no valid postal code")
	} else if n, err := strconv.Atoi(code); err != nil {
		problems = append(problems, "no valid postal code (must be an integer)")
	} else {
		p.PostalCode = n
	}

	if birthday := strings.TrimSpace(f.Birthday); birthday == "" {
		problems = append(problems, "no valid birthday")
	} else if d, ok := dates.Parse(birthday); !ok {
		problems = append(problems, fmt.Sprintf("no valid birthday (use the format %s)", dates.Pattern))
	} else {
		p.Birthday = &d
	}

	if len(problems) > 0 {
		return model.Person{}, &ValidationError{Problems: problems}
	}
	return p, nil
}
