package shellquote

import (
	"errors"
	"reflect"
	"testing"
)

func TestQuote(t *testing.T) {
	if got := Quote("it's"); got != `'it'\''s'` {
		t.Fatalf("Quote = %q", got)
	}
	if got := QuoteIfNeeded("plain"); got != "plain" {
		t.Fatalf("QuoteIfNeeded(plain) = %q", got)
	}
	if got := QuoteIfNeeded("two words"); got != "'two words'" {
		t.Fatalf("QuoteIfNeeded(two words) = %q", got)
	}
	if got := QuoteIfNeeded(""); got != "''" {
		t.Fatalf("QuoteIfNeeded(empty) = %q", got)
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"list", []string{"list"}},
		{"edit 2 --set city=Bern", []string{"edit", "2", "--set", "city=Bern"}},
		{`add --first "Anna Maria" --last Best`, []string{"add", "--first", "Anna Maria", "--last", "Best"}},
		{`save-as '/tmp/my book.xml'`, []string{"save-as", "/tmp/my book.xml"}},
		{`open my\ book.xml`, []string{"open", "my book.xml"}},
		{`edit 1 --set "street=Rue \"A\""`, []string{"edit", "1", "--set", `street=Rue "A"`}},
		{`set city=''`, []string{"set", "city="}},
	}

	for _, tt := range tests {
		got, err := Split(tt.line)
		if err != nil {
			t.Fatalf("Split(%q): %v", tt.line, err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("Split(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestSplitUnterminated(t *testing.T) {
	for _, line := range []string{`open "a`, `open 'a`, `open a\`} {
		if _, err := Split(line); !errors.Is(err, ErrUnterminatedQuote) {
			t.Fatalf("Split(%q): expected ErrUnterminatedQuote, got %v", line, err)
		}
	}
}

func TestQuoteSplitRoundTrip(t *testing.T) {
	for _, word := range []string{"simple", "two words", "it's", `a "quoted" word`, ""} {
		got, err := Split("cmd " + QuoteIfNeeded(word))
		if err != nil {
			t.Fatalf("Split: %v", err)
		}
		if len(got) != 2 || got[1] != word {
			t.Fatalf("round trip of %q produced %q", word, got)
		}
	}
}
