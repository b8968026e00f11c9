// Package export renders the address book into formats meant for reading or
// for other tools. Exports are one-way; only the XML address file is loaded.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"

	"github.com/makery/addressapp/internal/dates"
	"github.com/makery/addressapp/internal/model"
)

// Format names an export format.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatYAML     Format = "yaml"
	FormatJSON     Format = "json"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatMarkdown, FormatHTML, FormatYAML, FormatJSON}
}

// ParseFormat accepts a format name or a common alias ("md", "yml", "htm").
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html", "htm":
		return FormatHTML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return "", fmt.Errorf("unknown export format %q (valid: %s)", s, strings.Join(names, ", "))
}

// Extension returns the usual file extension for f.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatHTML:
		return ".html"
	case FormatYAML:
		return ".yaml"
	default:
		return ".json"
	}
}

// Write renders persons to w in the given format.
func Write(w io.Writer, format Format, persons []*model.Person) error {
	switch format {
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(persons))
		return err
	case FormatHTML:
		return writeHTML(w, persons)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(document{Persons: records(persons)}); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(document{Persons: records(persons)})
	}
	return fmt.Errorf("unknown export format %q", format)
}

// record is the exported shape of a person. Birthdays use ISO dates.
type record struct {
	FirstName  string `json:"first_name" yaml:"first_name"`
	LastName   string `json:"last_name" yaml:"last_name"`
	Street     string `json:"street" yaml:"street"`
	PostalCode int    `json:"postal_code" yaml:"postal_code"`
	City       string `json:"city" yaml:"city"`
	Birthday   string `json:"birthday,omitempty" yaml:"birthday,omitempty"`
}

type document struct {
	Persons []record `json:"persons" yaml:"persons"`
}

func records(persons []*model.Person) []record {
	out := make([]record, 0, len(persons))
	for _, p := range persons {
		r := record{
			FirstName:  p.FirstName,
			LastName:   p.LastName,
			Street:     p.Street,
			PostalCode: p.PostalCode,
			City:       p.City,
		}
		if p.Birthday != nil {
			r.Birthday = dates.ToWire(*p.Birthday)
		}
		out = append(out, r)
	}
	return out
}

// Markdown renders persons as a markdown table with display-format birthdays.
func Markdown(persons []*model.Person) string {
	var b strings.Builder
	b.WriteString("# Address book\n\n")
	if len(persons) == 0 {
		b.WriteString("_No persons._\n")
		return b.String()
	}

	b.WriteString("| # | Name | Street | Postal code | City | Birthday |\n")
	b.WriteString("|---|------|--------|-------------|------|----------|\n")
	for i, p := range persons {
		birthday, _ := dates.Format(p.Birthday)
		cells := []string{
			strconv.Itoa(i + 1),
			p.FullName(),
			p.Street,
			strconv.Itoa(p.PostalCode),
			p.City,
			birthday,
		}
		for j, c := range cells {
			cells[j] = escapeCell(c)
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	return b.String()
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}

const htmlPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Address book</title>
</head>
<body>
%s</body>
</html>
`

var htmlRenderer = goldmark.New(goldmark.WithExtensions(extension.Table))

func writeHTML(w io.Writer, persons []*model.Person) error {
	var body bytes.Buffer
	if err := htmlRenderer.Convert([]byte(Markdown(persons)), &body); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	_, err := fmt.Fprintf(w, htmlPage, body.String())
	return err
}
