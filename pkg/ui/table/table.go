// Package table renders listings from the weather server, as a styled
// table on a terminal or as a Markdown table otherwise.
package table

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	// Packages
	lipgloss "github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	term "golang.org/x/term"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Data is implemented by each listing which is rendered as a table
type Data interface {
	// Header returns the column labels
	Header() []string

	// Len returns the number of rows
	Len() int

	// Row returns the cells for row i, or nil to skip the row.
	// Wrap a value in Bold{} to emphasise it.
	Row(i int) []any
}

// Bold wraps a cell value which is emphasised
type Bold struct{ Value any }

// Rows is a Data with a fixed header and rows
type Rows struct {
	Columns []string
	Cells   [][]any
}

var _ Data = Rows{}

///////////////////////////////////////////////////////////////////////////////
// STYLES

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	boldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (r Rows) Header() []string { return r.Columns }
func (r Rows) Len() int         { return len(r.Cells) }
func (r Rows) Row(i int) []any  { return r.Cells[i] }

// Write renders data to w, styled when w is a terminal and as Markdown
// otherwise
func Write(w io.Writer, data Data) error {
	var out string
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		width, _, err := term.GetSize(int(f.Fd()))
		if err != nil {
			width = 0
		}
		out = Render(data, width)
	} else {
		out = RenderMarkdown(data)
	}
	_, err := fmt.Fprintln(w, out)
	return err
}

// Render returns the data as a bordered table. The table is wrapped to
// width when it is wider, and a width of zero disables wrapping.
func Render(data Data, width int) string {
	t := lgtable.New().
		Headers(data.Header()...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Wrap(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		})

	for i := range data.Len() {
		row := data.Row(i)
		if row == nil {
			continue
		}
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = FormatCell(v)
		}
		t.Row(cells...)
	}

	result := t.Render()
	if width > 0 && lipgloss.Width(result) > width {
		t.Width(width)
		result = t.Render()
	}
	return result
}

// RenderMarkdown returns the data as a Markdown table
func RenderMarkdown(data Data) string {
	header := data.Header()
	if len(header) == 0 {
		return ""
	}
	var buf strings.Builder

	buf.WriteString("|")
	for _, h := range header {
		buf.WriteString(" " + h + " |")
	}
	buf.WriteString("\n|")
	for range header {
		buf.WriteString("---|")
	}

	for i := range data.Len() {
		row := data.Row(i)
		if row == nil {
			continue
		}
		buf.WriteString("\n|")
		for j := range header {
			cell := "-"
			if j < len(row) {
				cell = markdownCell(row[j])
			}
			buf.WriteString(" " + cell + " |")
		}
	}
	return buf.String()
}

// Truncate shortens s to max runes on a single line, ending in "…" when
// shortened
func Truncate(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

// FormatCell returns the display text for a cell. Missing values are a
// dash, while numeric zero is shown as a number.
func FormatCell(v any) string {
	if b, ok := v.(Bold); ok {
		text := FormatCell(b.Value)
		if text == "-" {
			return text
		}
		return boldStyle.Render(text)
	}
	return plainCell(v)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func markdownCell(v any) string {
	if b, ok := v.(Bold); ok {
		text := markdownCell(b.Value)
		if text == "-" {
			return text
		}
		return "**" + text + "**"
	}
	return strings.ReplaceAll(plainCell(v), "|", `\|`)
}

func plainCell(v any) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case string:
		if strings.TrimSpace(val) == "" {
			return "-"
		}
		return val
	case bool:
		if val {
			return "yes"
		}
		return "no"
	case float64:
		return fmt.Sprintf("%.1f", val)
	case time.Time:
		if val.IsZero() {
			return "-"
		}
		return val.Format(time.RFC3339)
	case []string:
		if len(val) == 0 {
			return "-"
		}
		return strings.Join(val, ", ")
	default:
		return fmt.Sprint(val)
	}
}
