package dates

import (
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/civil"
)

func TestFormat(t *testing.T) {
	d := civil.Date{Year: 2020, Month: time.December, Day: 31}
	got, ok := Format(&d)
	if !ok || got != "31.12.2020" {
		t.Fatalf("Format = %q, %v; want 31.12.2020, true", got, ok)
	}

	got, ok = Format(nil)
	if ok || got != "" {
		t.Fatalf("Format(nil) = %q, %v; want no value", got, ok)
	}
}

func TestIsValid(t *testing.T) {
	valid := []string{"31.12.2020", "01.01.0001", "29.02.2024", " 21.02.1999 "}
	for _, d := range valid {
		if !IsValid(d) {
			t.Fatalf("expected %q to be valid", d)
		}
	}

	invalid := []string{"2020-12-31", "not a date", "", "1.1.2020", "31.12.20", "29.02.2023", "32.01.2020", "01.13.2020"}
	for _, d := range invalid {
		if IsValid(d) {
			t.Fatalf("expected %q to be invalid", d)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	start := civil.Date{Year: 1899, Month: time.December, Day: 25}
	for i := 0; i < 2000; i++ {
		d := start.AddDays(i * 17)
		text, ok := Format(&d)
		if !ok {
			t.Fatalf("Format(%v) returned no value", d)
		}
		back, ok := Parse(text)
		if !ok {
			t.Fatalf("Parse(%q) failed", text)
		}
		if back != d {
			t.Fatalf("round trip %v -> %q -> %v", d, text, back)
		}
	}
}

func TestWireRoundTrip(t *testing.T) {
	dates := []civil.Date{
		{Year: 1999, Month: time.February, Day: 21},
		{Year: 2024, Month: time.February, Day: 29},
		{Year: 1, Month: time.January, Day: 1},
		{Year: 9999, Month: time.December, Day: 31},
	}
	for _, d := range dates {
		text := ToWire(d)
		back, err := FromWire(text)
		if err != nil {
			t.Fatalf("FromWire(%q): %v", text, err)
		}
		if back != d {
			t.Fatalf("wire round trip %v -> %q -> %v", d, text, back)
		}
	}

	if got := ToWire(civil.Date{Year: 1999, Month: time.February, Day: 21}); got != "1999-02-21" {
		t.Fatalf("ToWire = %q, want 1999-02-21", got)
	}
}

func TestFromWireRejectsMalformed(t *testing.T) {
	for _, text := range []string{"2021-02-30", "21.02.1999", "1999-2-21", "", "yesterday"} {
		_, err := FromWire(text)
		if err == nil {
			t.Fatalf("expected error for %q", text)
		}
		if !errors.Is(err, ErrMalformedDate) {
			t.Fatalf("expected ErrMalformedDate for %q, got %v", text, err)
		}
		var mde *MalformedDateError
		if !errors.As(err, &mde) || mde.Text != text {
			t.Fatalf("expected *MalformedDateError carrying %q, got %#v", text, err)
		}
	}
}

func TestDisplayAndWireFormatsAreDistinct(t *testing.T) {
	d := civil.Date{Year: 2020, Month: time.December, Day: 31}
	display, _ := Format(&d)
	if _, err := FromWire(display); err == nil {
		t.Fatalf("wire decoder accepted display text %q", display)
	}
	if IsValid(ToWire(d)) {
		t.Fatalf("display parser accepted wire text %q", ToWire(d))
	}
}
