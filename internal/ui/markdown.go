package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
)

// MarkdownRenderMargin is the left margin used for terminal markdown rendering.
const MarkdownRenderMargin = 2

// RenderMarkdown renders markdown for terminal display with the accent color
// applied to headings.
func RenderMarkdown(content string, width int) (string, error) {
	if width <= 0 {
		width = DefaultTermWidth
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(markdownStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}

	rendered, err := r.Render(content)
	if err != nil {
		return "", err
	}

	// glamour adds trailing newlines; normalize to a single trailing newline.
	rendered = strings.TrimRight(rendered, "\n") + "\n"
	return rendered, nil
}

// markdownStyle covers what the guides, about and stats pages use:
// H1/H2 headings, bullet lists, emphasis, inline code, code blocks and tables.
// Everything else falls back to glamour's unstyled defaults.
func markdownStyle() ansi.StyleConfig {
	var heading ansi.StylePrimitive
	heading.Bold = ptr(true)
	heading.BlockSuffix = "\n"
	if color, ok := AccentColor(); ok {
		heading.Color = ptr(color)
	}

	var cfg ansi.StyleConfig
	cfg.Document.BlockPrefix = "\n"
	cfg.Document.BlockSuffix = "\n"
	cfg.Document.Margin = ptr(uint(MarkdownRenderMargin))
	cfg.Heading.StylePrimitive = heading
	cfg.H1.Prefix = "# "
	cfg.H2.Prefix = "## "
	cfg.List.LevelIndent = 2
	cfg.Item.BlockPrefix = "• "
	cfg.Emph.Italic = ptr(true)
	cfg.Code.Prefix = "`"
	cfg.Code.Suffix = "`"
	cfg.Table.CenterSeparator = ptr("│")
	cfg.Table.ColumnSeparator = ptr("│")
	cfg.Table.RowSeparator = ptr("─")
	return cfg
}

func ptr[T any](v T) *T { return &v }
