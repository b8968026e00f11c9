package cli

import (
	"errors"
	"fmt"

	"github.com/makery/addressapp/internal/app"
	"github.com/makery/addressapp/internal/dates"
	"github.com/makery/addressapp/internal/model"
	"github.com/makery/addressapp/internal/slugs"
	"github.com/makery/addressapp/internal/ui"
)

// PersonResult is the JSON shape of one address book entry.
type PersonResult struct {
	Index      int    `json:"index"`
	Ref        string `json:"ref"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Street     string `json:"street"`
	PostalCode int    `json:"postal_code"`
	City       string `json:"city"`
	Birthday   string `json:"birthday,omitempty"`
}

func personResult(index int, p *model.Person) PersonResult {
	r := PersonResult{
		Index:      index + 1,
		Ref:        slugs.PersonSlug(p),
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Street:     p.Street,
		PostalCode: p.PostalCode,
		City:       p.City,
	}
	if p.Birthday != nil {
		r.Birthday = dates.ToWire(*p.Birthday)
	}
	return r
}

// resolvePerson finds the entry ref names (a 1-based index or a name slug).
func resolvePerson(ref string) (int, *model.Person, error) {
	persons := shell.Persons()
	idx, err := slugs.Resolve(ref, persons)
	if err != nil {
		return -1, nil, err
	}
	return idx, persons[idx], nil
}

// handlePersonError reports a failed person lookup.
func handlePersonError(err error) error {
	var ambiguous *slugs.AmbiguousError
	if errors.As(err, &ambiguous) {
		return handleErrorWithDetails(ErrPersonAmbiguous, err, "Refer to the person by index (see 'addr list')",
			map[string]interface{}{"indexes": ambiguous.Indexes})
	}
	return handleError(ErrPersonNotFound, err, "Run 'addr list' to see persons and their indexes")
}

// persistChanges writes a change made by a single command back to the current
// file. Inside a session nothing is written until 'save'.
func persistChanges() ([]Warning, error) {
	if inSession {
		return nil, nil
	}
	err := shell.Save()
	if errors.Is(err, app.ErrNoCurrentFile) {
		return []Warning{{
			Code:    WarnNotSaved,
			Message: "no current file: the change was not saved (open a file first, or use 'addr session' and 'save-as')",
		}}, nil
	}
	return nil, err
}

// reportChange prints the outcome of a mutating command.
func reportChange(data interface{}, message string) error {
	warnings, err := persistChanges()
	if errors.Is(err, app.ErrNotRestored) {
		return handleError(ErrNotRestored, err,
			"Nothing was saved. Fix the file and run 'addr open <file>', or keep this list with 'addr save-as <file>'")
	}
	if err != nil {
		return handleError(errorCode(err), err, "The address book was changed but could not be saved")
	}

	if isJSONOutput() {
		var meta *Meta
		if path, ok, _ := shell.CurrentFilePath(); ok && !inSession {
			meta = &Meta{File: path}
		}
		outputSuccessWithWarnings(data, warnings, meta)
		return nil
	}

	fmt.Println(ui.Success(message))
	for _, w := range warnings {
		fmt.Println(ui.Warning(w.Message))
	}
	return nil
}
