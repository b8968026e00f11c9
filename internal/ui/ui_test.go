package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderMarkdownNormalizesTrailingNewline(t *testing.T) {
	out, err := RenderMarkdown("# Heading", 80)
	if err != nil {
		t.Fatalf("RenderMarkdown() error = %v", err)
	}
	if !strings.HasSuffix(out, "\n") || strings.HasSuffix(out, "\n\n") {
		t.Fatalf("expected single trailing newline, got %q", out)
	}
}

func TestRenderMarkdownDefaultsWidthWhenNonPositive(t *testing.T) {
	out, err := RenderMarkdown("hello", 0)
	if err != nil {
		t.Fatalf("RenderMarkdown() error = %v", err)
	}
	if !strings.Contains(out, "hello") {
		t.Fatalf("expected rendered text, got %q", out)
	}
}

func TestMarkdownStyleUsesAccentForHeadings(t *testing.T) {
	origAccent, origAccentBold, origColor := Accent, AccentBold, accentColor
	t.Cleanup(func() {
		Accent, AccentBold, accentColor = origAccent, origAccentBold, origColor
	})

	ConfigureTheme("39")
	style := markdownStyle()
	if style.Heading.Color == nil || *style.Heading.Color != "39" {
		t.Fatalf("expected heading color 39, got %v", style.Heading.Color)
	}

	ConfigureTheme("none")
	if markdownStyle().Heading.Color != nil {
		t.Fatal("expected no heading color when accent is disabled")
	}
}

func TestTableAlignsStyledCells(t *testing.T) {
	tbl := NewTable(2)
	tbl.AddRow(Bold.Render("Name"), "Hans Muster")
	tbl.AddRow("City", "Zurich")
	lines := strings.Split(strings.TrimRight(tbl.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", lines)
	}
	if lipgloss.Width(lines[0])-len("Hans Muster") != lipgloss.Width(lines[1])-len("Zurich") {
		t.Fatalf("value columns not aligned:\n%s", tbl.String())
	}
	if NewTable(2).String() != "" {
		t.Fatal("empty table should render nothing")
	}
}

func TestGridWidthsRespectBounds(t *testing.T) {
	for _, width := range []int{40, 100, 400} {
		g := NewGrid(NewDisplayContextWithWidth(width), PersonColumns)
		for i, w := range g.Widths() {
			col := PersonColumns[i]
			if w < col.MinWidth {
				t.Fatalf("width %d: column %q narrower than min: %d", width, col.Header, w)
			}
			if col.MaxWidth > 0 && w > col.MaxWidth {
				t.Fatalf("width %d: column %q wider than max: %d", width, col.Header, w)
			}
		}
	}
}

func TestGridRender(t *testing.T) {
	g := NewGrid(NewDisplayContextWithWidth(100), PersonColumns)
	if g.Render() != "" {
		t.Fatal("empty grid should render nothing")
	}
	g.AddRow("1", "Hans Muster", "some street", "1234", "some city", "21.02.1999")
	out := g.Render()
	for _, want := range []string{"Name", "Birthday", "Hans Muster", "21.02.1999"} {
		if !strings.Contains(out, want) {
			t.Fatalf("grid missing %q:\n%s", want, out)
		}
	}
}

func TestTruncateWithEllipsis(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"Bahnhofstrasse 12", 10, "Bahnhof..."},
		{"a very long street name", 15, "a very long..."},
		{"abcdef", 3, "abc"},
		{"Zürich", 6, "Zürich"},
	}
	for _, tt := range tests {
		if got := TruncateWithEllipsis(tt.in, tt.max); got != tt.want {
			t.Fatalf("TruncateWithEllipsis(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestFormatRowNum(t *testing.T) {
	if got := FormatRowNum(3, 9); got != " 3" {
		t.Fatalf("FormatRowNum(3, 9) = %q", got)
	}
	if got := FormatRowNum(7, 120); got != "  7" {
		t.Fatalf("FormatRowNum(7, 120) = %q", got)
	}
}

func TestCount(t *testing.T) {
	if got := Count(1, "person", "persons"); got != "1 person" {
		t.Fatalf("Count(1) = %q", got)
	}
	if got := Count(0, "person", "persons"); got != "0 persons" {
		t.Fatalf("Count(0) = %q", got)
	}
}

func TestRenderMarkdownStylesListsCodeAndTables(t *testing.T) {
	md := "## Dates\n\n- enter `21.02.1999`\n\n| Month | Persons |\n|-------|--------:|\n| February | 9 |\n"
	out, err := RenderMarkdown(md, 80)
	if err != nil {
		t.Fatalf("RenderMarkdown() error = %v", err)
	}
	for _, want := range []string{"Dates", "• ", "21.02.1999", "│", "February"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in rendered output, got %q", want, out)
		}
	}
}
