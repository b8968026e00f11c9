// Package slugs derives the short names used to refer to persons on the
// command line.
package slugs

import (
	"fmt"
	"strconv"
	"strings"

	goslug "github.com/gosimple/slug"

	"github.com/makery/addressapp/internal/model"
)

// Slug converts s to a lowercase, dash-separated ASCII slug.
func Slug(s string) string {
	slugged := goslug.Make(s)
	if slugged == "" {
		slugged = strings.ToLower(strings.Join(strings.Fields(s), "-"))
	}
	return slugged
}

// PersonSlug returns the slug of p's full name, e.g. "hans-muster".
func PersonSlug(p *model.Person) string {
	return Slug(p.FullName())
}

// NotFoundError reports a reference that matches no person.
type NotFoundError struct {
	Ref string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no person matches %q", e.Ref)
}

// AmbiguousError reports a reference that matches several persons.
type AmbiguousError struct {
	Ref     string
	Indexes []int // 1-based
}

func (e *AmbiguousError) Error() string {
	parts := make([]string, len(e.Indexes))
	for i, idx := range e.Indexes {
		parts[i] = strconv.Itoa(idx)
	}
	return fmt.Sprintf("%q matches %d persons (use an index: %s)", e.Ref, len(e.Indexes), strings.Join(parts, ", "))
}

// Resolve finds the person ref refers to and returns its 0-based index.
//
// A ref is either a 1-based position in persons or a slug of a full name.
// Name refs are slugged first, so "Hans Muster" and "hans-muster" are the same.
func Resolve(ref string, persons []*model.Person) (int, error) {
	ref = strings.TrimSpace(ref)
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(persons) {
			return -1, &NotFoundError{Ref: ref}
		}
		return n - 1, nil
	}

	want := Slug(ref)
	var matches []int
	for i, p := range persons {
		if want != "" && PersonSlug(p) == want {
			matches = append(matches, i)
		}
	}

	switch len(matches) {
	case 0:
		return -1, &NotFoundError{Ref: ref}
	case 1:
		return matches[0], nil
	default:
		oneBased := make([]int, len(matches))
		for i, m := range matches {
			oneBased[i] = m + 1
		}
		return -1, &AmbiguousError{Ref: ref, Indexes: oneBased}
	}
}
