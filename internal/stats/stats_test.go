package stats

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"

	"github.com/makery/addressapp/internal/model"
)

func born(month time.Month) *model.Person {
	d := civil.Date{Year: 1990, Month: month, Day: 1}
	return &model.Person{Birthday: &d}
}

func TestBirthdaysByMonth(t *testing.T) {
	persons := []*model.Person{
		born(time.January),
		born(time.February),
		born(time.February),
		born(time.December),
		{FirstName: "no birthday"},
		nil,
	}

	s := BirthdaysByMonth(persons)

	if s.ByMonth[0] != 1 || s.ByMonth[1] != 2 || s.ByMonth[11] != 1 {
		t.Fatalf("unexpected counts: %v", s.ByMonth)
	}
	if s.Unknown != 1 {
		t.Fatalf("Unknown = %d, want 1", s.Unknown)
	}
	if s.Total() != 4 {
		t.Fatalf("Total = %d, want 4", s.Total())
	}
	if s.Max() != 2 {
		t.Fatalf("Max = %d, want 2", s.Max())
	}

	months := s.Months()
	if len(months) != 12 || months[0].Month != time.January || months[11].Month != time.December {
		t.Fatalf("unexpected months: %+v", months)
	}
	if months[1].Count != 2 {
		t.Fatalf("February count = %d, want 2", months[1].Count)
	}
}

func TestBirthdaysByMonthEmpty(t *testing.T) {
	s := BirthdaysByMonth(nil)
	if s.Total() != 0 || s.Unknown != 0 || s.Max() != 0 {
		t.Fatalf("expected zero stats, got %+v", s)
	}
}

func TestSampleDataAllFebruary(t *testing.T) {
	s := BirthdaysByMonth(model.SampleData())
	if s.ByMonth[time.February-1] != 9 {
		t.Fatalf("expected all 9 sample birthdays in February, got %v", s.ByMonth)
	}
}

func TestBirthdaysByMonthInvalidDateIsUnknown(t *testing.T) {
	invalid := civil.Date{Year: 1990, Month: 13, Day: 1}
	persons := []*model.Person{
		{FirstName: "zero", Birthday: &civil.Date{}},
		{FirstName: "month 13", Birthday: &invalid},
		born(time.March),
	}

	s := BirthdaysByMonth(persons)

	if s.Unknown != 2 {
		t.Fatalf("Unknown = %d, want 2", s.Unknown)
	}
	if s.Total() != 1 || s.ByMonth[time.March-1] != 1 {
		t.Fatalf("unexpected counts: %v", s.ByMonth)
	}
}
