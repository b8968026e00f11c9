// Package dates converts calendar dates to and from text.
//
// Two textual conventions exist and must not be mixed:
//   - the display pattern dd.MM.yyyy, used for everything a person types or reads
//   - the wire form yyyy-MM-dd (ISO-8601), used only inside stored address files
package dates

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// Pattern is the display pattern in the notation shown to users.
const Pattern = "dd.MM.yyyy"

// displayLayout is Pattern expressed as a Go reference layout.
const displayLayout = "02.01.2006"

// Format renders d in the display pattern. A nil date has no display value and
// yields ("", false).
func Format(d *civil.Date) (string, bool) {
	if d == nil {
		return "", false
	}
	return d.In(time.UTC).Format(displayLayout), true
}

// Parse interprets text in the display pattern. Text that does not conform, or
// that names a day that does not exist, yields false. This is an expected
// outcome for user input, not an error.
func Parse(text string) (civil.Date, bool) {
	t, err := time.Parse(displayLayout, strings.TrimSpace(text))
	if err != nil {
		return civil.Date{}, false
	}
	return civil.DateOf(t), true
}

// IsValid reports whether Parse would accept text.
func IsValid(text string) bool {
	_, ok := Parse(text)
	return ok
}
