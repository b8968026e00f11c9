package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Alignment represents column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Column defines one column of a Grid.
type Column struct {
	Header     string
	WidthRatio float64 // share of the flexible width; 0 means fixed at MinWidth
	MinWidth   int
	MaxWidth   int // 0 = no limit
	Align      Alignment
	Style      lipgloss.Style
}

// PersonColumns is the layout used to list address book entries:
// [#, name, street, postal code, city, birthday].
var PersonColumns = []Column{
	{Header: "#", MinWidth: 3, MaxWidth: 5, Align: AlignRight, Style: Muted},
	{Header: "Name", WidthRatio: 0.30, MinWidth: 12, MaxWidth: 40},
	{Header: "Street", WidthRatio: 0.30, MinWidth: 10, MaxWidth: 40},
	{Header: "Postal code", MinWidth: 11},
	{Header: "City", WidthRatio: 0.25, MinWidth: 8, MaxWidth: 30},
	{Header: "Birthday", MinWidth: 10, Style: Muted},
}

const (
	columnGap  = 2
	leftMargin = 2
)

// Grid renders rows in borderless columns sized to the terminal.
type Grid struct {
	display *DisplayContext
	columns []Column
	rows    [][]string
}

// NewGrid creates a grid for the given display and layout.
func NewGrid(display *DisplayContext, columns []Column) *Grid {
	return &Grid{display: display, columns: columns}
}

// AddRow appends a row. Missing cells render empty, extra cells are dropped.
func (g *Grid) AddRow(cells ...string) {
	row := make([]string, len(g.columns))
	copy(row, cells)
	g.rows = append(g.rows, row)
}

// Widths returns the rendered width of each column.
func (g *Grid) Widths() []int {
	widths := make([]int, len(g.columns))

	var totalRatio float64
	var fixed int
	for i, col := range g.columns {
		if col.WidthRatio == 0 {
			widths[i] = col.MinWidth
			fixed += widths[i]
		} else {
			totalRatio += col.WidthRatio
		}
	}

	available := g.display.TermWidth - fixed - (len(g.columns)-1)*columnGap - leftMargin
	if available < 0 {
		available = 0
	}

	for i, col := range g.columns {
		if col.WidthRatio == 0 {
			continue
		}
		width := int(float64(available) * col.WidthRatio / totalRatio)
		if width < col.MinWidth {
			width = col.MinWidth
		}
		if col.MaxWidth > 0 && width > col.MaxWidth {
			width = col.MaxWidth
		}
		widths[i] = width
	}
	return widths
}

// Render returns the grid with a header line, or "" when there are no rows.
func (g *Grid) Render() string {
	if len(g.rows) == 0 {
		return ""
	}

	widths := g.Widths()
	headers := make([]string, len(g.columns))
	for i, col := range g.columns {
		headers[i] = col.Header
	}
	rows := make([][]string, len(g.rows))
	for i, row := range g.rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = TruncateWithEllipsis(cell, widths[j])
		}
		rows[i] = cells
	}

	tbl := table.New().
		Border(lipgloss.Border{Top: "─", Bottom: "─", Middle: "─"}).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderRow(false).
		BorderColumn(false).
		BorderHeader(true).
		BorderStyle(Muted).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col >= len(g.columns) {
				return lipgloss.NewStyle()
			}
			def := g.columns[col]
			style := def.Style
			if row == table.HeaderRow {
				style = Bold
			}
			style = style.Width(widths[col])
			if def.Align == AlignRight {
				style = style.Align(lipgloss.Right)
			} else {
				style = style.Align(lipgloss.Left)
			}
			if col < len(g.columns)-1 {
				style = style.PaddingRight(columnGap)
			}
			return style
		}).
		Rows(rows...)

	return tbl.Render()
}

// TruncateWithEllipsis shortens s to maxLen cells, breaking at a word boundary
// when one is close.
func TruncateWithEllipsis(s string, maxLen int) string {
	if maxLen <= 0 || lipgloss.Width(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}

	truncated := string(runes[:maxLen-3])
	if lastSpace := strings.LastIndex(truncated, " "); lastSpace > len(truncated)/2 {
		truncated = truncated[:lastSpace]
	}
	return truncated + "..."
}

// FormatRowNum right-aligns num to the width of maxNum (at least two digits).
func FormatRowNum(num, maxNum int) string {
	width := max(len(strconv.Itoa(maxNum)), 2)
	s := strconv.Itoa(num)
	return strings.Repeat(" ", max(width-len(s), 0)) + s
}
