package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

// Table lays out rows in aligned columns. Widths are measured on the
// visible text, so cells may carry ANSI colour previews.
type Table struct {
	headers    []string
	rows       [][]string
	padding    int
	rightAlign map[int]bool
	styled     bool
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers:    headers,
		padding:    2,
		rightAlign: make(map[int]bool),
	}
}

// AlignRight right-aligns a column, for numbers.
func (t *Table) AlignRight(col int) *Table {
	t.rightAlign[col] = true
	return t
}

// SetStyled renders headers in bold.
func (t *Table) SetStyled(styled bool) *Table {
	t.styled = styled
	return t
}

// AddRow adds a row, padding or truncating it to the header count.
func (t *Table) AddRow(row ...string) {
	fitted := make([]string, len(t.headers))
	copy(fitted, row)
	t.rows = append(t.rows, fitted)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var sb strings.Builder
	gap := strings.Repeat(" ", t.padding)

	header := make([]string, len(t.headers))
	for i, h := range t.headers {
		header[i] = t.pad(i, h, widths[i])
		if t.styled {
			header[i] = headerStyle.Render(header[i])
		}
	}
	writeLine(&sb, header, gap)

	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = strings.Repeat("-", w)
	}
	writeLine(&sb, sep, gap)

	for _, row := range t.rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = t.pad(i, cell, widths[i])
		}
		writeLine(&sb, cells, gap)
	}
	return sb.String()
}

func (t *Table) pad(col int, s string, width int) string {
	fill := width - lipgloss.Width(s)
	if fill <= 0 {
		return s
	}
	if t.rightAlign[col] {
		return strings.Repeat(" ", fill) + s
	}
	return s + strings.Repeat(" ", fill)
}

func writeLine(sb *strings.Builder, cells []string, gap string) {
	sb.WriteString(strings.TrimRight(strings.Join(cells, gap), " "))
	sb.WriteByte('\n')
}
