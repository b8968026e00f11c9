package editor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/makery/addressapp/internal/model"
)

// fieldSetters maps accepted field names, including short aliases, to form
// setters.
var fieldSetters = map[string]func(*Form, string){
	"first_name":  func(f *Form, v string) { f.FirstName = v },
	"first":       func(f *Form, v string) { f.FirstName = v },
	"last_name":   func(f *Form, v string) { f.LastName = v },
	"last":        func(f *Form, v string) { f.LastName = v },
	"street":      func(f *Form, v string) { f.Street = v },
	"postal_code": func(f *Form, v string) { f.PostalCode = v },
	"postal":      func(f *Form, v string) { f.PostalCode = v },
	"city":        func(f *Form, v string) { f.City = v },
	"birthday":    func(f *Form, v string) { f.Birthday = v },
}

// FieldNames returns the accepted field names in sorted order.
func FieldNames() []string {
	names := make([]string, 0, len(fieldSetters))
	for name := range fieldSetters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Assignment sets one form field.
type Assignment struct {
	Field string
	Value string
}

// ParseAssignments parses field=value pairs.
func ParseAssignments(args []string) ([]Assignment, error) {
	out := make([]Assignment, 0, len(args))
	for _, arg := range args {
		field, value, ok := strings.Cut(arg, "=")
		field = strings.ToLower(strings.TrimSpace(field))
		if !ok || field == "" {
			return nil, fmt.Errorf("invalid assignment %q: expected field=value", arg)
		}
		if _, known := fieldSetters[field]; !known {
			return nil, fmt.Errorf("unknown field %q (valid: %s)", field, strings.Join(FieldNames(), ", "))
		}
		out = append(out, Assignment{Field: field, Value: value})
	}
	return out, nil
}

// FieldEditor applies assignments without user interaction. It never cancels.
type FieldEditor struct {
	Assignments []Assignment
}

// Edit applies the assignments to the snapshot and validates the result.
func (e FieldEditor) Edit(snapshot model.Person) (model.Person, bool, error) {
	form := FormOf(snapshot)
	for _, a := range e.Assignments {
		setter, ok := fieldSetters[a.Field]
		if !ok {
			return model.Person{}, false, fmt.Errorf("unknown field %q", a.Field)
		}
		setter(&form, a.Value)
	}
	edited, err := Validate(form)
	if err != nil {
		return model.Person{}, false, err
	}
	return edited, true, nil
}
