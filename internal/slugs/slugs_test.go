package slugs

import (
	"errors"
	"testing"

	"github.com/makery/addressapp/internal/model"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hans Muster", "hans-muster"},
		{"  Anna   Best ", "anna-best"},
		{"Jürg Müller", "jurg-muller"},
		{"Special: Characters!", "special-characters"},
		{"hans-muster", "hans-muster"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Slug(tt.in); got != tt.want {
				t.Fatalf("Slug(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPersonSlug(t *testing.T) {
	if got := PersonSlug(model.New("Cornelia", "Meier")); got != "cornelia-meier" {
		t.Fatalf("PersonSlug = %q", got)
	}
}

func TestResolve(t *testing.T) {
	persons := model.SampleData()
	persons = append(persons, model.New("Hans", "Muster"))

	tests := []struct {
		ref  string
		want int
	}{
		{"1", 0},
		{"9", 8},
		{"ruth-mueller", 1},
		{"Ruth Mueller", 1},
		{"  anna-best ", 6},
	}
	for _, tt := range tests {
		got, err := Resolve(tt.ref, persons)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", tt.ref, err)
		}
		if got != tt.want {
			t.Fatalf("Resolve(%q) = %d, want %d", tt.ref, got, tt.want)
		}
	}

	for _, ref := range []string{"0", "11", "-1", "nobody", ""} {
		var nf *NotFoundError
		if _, err := Resolve(ref, persons); !errors.As(err, &nf) {
			t.Fatalf("Resolve(%q): expected NotFoundError, got %v", ref, err)
		}
	}

	var amb *AmbiguousError
	if _, err := Resolve("hans-muster", persons); !errors.As(err, &amb) {
		t.Fatalf("expected AmbiguousError, got %v", err)
	}
	if len(amb.Indexes) != 2 || amb.Indexes[0] != 1 || amb.Indexes[1] != 10 {
		t.Fatalf("unexpected indexes: %v", amb.Indexes)
	}
}
