// Package ui - Terminal user interface
// Rich CLI output with tables, colors and quote summaries.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Colors for terminal output
const (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	Dim     = "\033[2m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"
)

// Writer is the UI output destination
type Writer struct {
	out       io.Writer
	noColor   bool
	verbosity int
}

// NewWriter creates a UI writer
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{
		out:       out,
		noColor:   noColor,
		verbosity: 1,
	}
}

// SetVerbosity sets output verbosity (0=quiet, 1=normal, 2=verbose)
func (w *Writer) SetVerbosity(level int) {
	w.verbosity = level
}

// color applies color if enabled
func (w *Writer) color(c, text string) string {
	if w.noColor {
		return text
	}
	return c + text + Reset
}

// Print writes a line
func (w *Writer) Print(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format, args...)
}

// Println writes a line with newline
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// writeLine writes s verbatim, so '%' in values is never read as a verb
func (w *Writer) writeLine(s string) {
	fmt.Fprintln(w.out, s)
}

// Header prints a section header
func (w *Writer) Header(title string) {
	w.Println("")
	w.writeLine(w.color(Bold+Cyan, "━━━ "+title+" ━━━"))
	w.Println("")
}

// SubHeader prints a subsection header
func (w *Writer) SubHeader(title string) {
	w.writeLine(w.color(Bold, "▸ "+title))
}

// Success prints a success message
func (w *Writer) Success(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.writeLine(w.color(Green, "✓ ")+msg)
}

// Warning prints a warning
func (w *Writer) Warning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.writeLine(w.color(Yellow, "⚠ ")+msg)
}

// Error prints an error
func (w *Writer) Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.writeLine(w.color(Red, "✗ ")+msg)
}

// Info prints an info message
func (w *Writer) Info(format string, args ...interface{}) {
	if w.verbosity < 1 {
		return
	}
	msg := fmt.Sprintf(format, args...)
	w.writeLine(w.color(Blue, "ℹ ")+msg)
}

// Debug prints a debug message
func (w *Writer) Debug(format string, args ...interface{}) {
	if w.verbosity < 2 {
		return
	}
	msg := fmt.Sprintf(format, args...)
	w.writeLine(w.color(Dim, "  "+msg))
}

// Table renders a table
type Table struct {
	w       *Writer
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable creates a table
func (w *Writer) NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	return &Table{
		w:       w,
		headers: headers,
		rows:    [][]string{},
		widths:  widths,
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	// Pad or truncate cells to match header count
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		if n := utf8.RuneCountInString(row[i]); n > t.widths[i] {
			t.widths[i] = n
		}
	}
	t.rows = append(t.rows, row)
}

// Render prints the table
func (t *Table) Render() {
	t.w.writeLine(t.w.color(Bold, t.line(t.headers)))

	// Separator
	sep := ""
	for i, w := range t.widths {
		if i > 0 {
			sep += "─┼─"
		}
		sep += strings.Repeat("─", w)
	}
	t.w.writeLine(sep)

	for _, row := range t.rows {
		t.w.writeLine(t.line(row))
	}
}

// line pads each cell to its column width. Cells whose first rune is a
// digit or '$' are right-aligned.
func (t *Table) line(cells []string) string {
	var sb strings.Builder
	for i, cell := range cells {
		if i > 0 {
			sb.WriteString(" │ ")
		}
		pad := strings.Repeat(" ", t.widths[i]-utf8.RuneCountInString(cell))
		if numeric(cell) {
			sb.WriteString(pad + cell)
		} else {
			sb.WriteString(cell + pad)
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

func numeric(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return c == '$' || c == '-' || (c >= '0' && c <= '9')
}

// QuoteSummary renders the headline numbers of a quote
type QuoteSummary struct {
	w        *Writer
	Title    string
	Retail   string
	Subtotal string
	Profit   string
	Margin   string
	Deposit  string
	Valid    bool
	Warnings []string
}

// NewQuoteSummary creates a quote summary
func (w *Writer) NewQuoteSummary(title string) *QuoteSummary {
	return &QuoteSummary{w: w, Title: title, Valid: true}
}

// Render prints the quote summary
func (s *QuoteSummary) Render() {
	s.w.Header(s.Title)

	s.w.writeLine(s.w.color(Bold, "╭─────────────────────────────────────╮"))
	s.w.writeLine(s.w.color(Bold, "│")+s.w.color(Green, fmt.Sprintf("  Retail:   %-25s", s.Retail))+s.w.color(Bold, "│"))
	s.w.writeLine(s.w.color(Bold, "│")+s.w.color(Dim, fmt.Sprintf("  Deposit:  %-25s", s.Deposit))+s.w.color(Bold, "│"))
	s.w.writeLine(s.w.color(Bold, "╰─────────────────────────────────────╯"))
	s.w.Println("")

	s.w.writeLine(s.w.color(Dim, fmt.Sprintf("  Cost:    %s", s.Subtotal)))
	s.w.writeLine(s.w.color(Dim, fmt.Sprintf("  Profit:  %s (%s margin)", s.Profit, s.Margin)))

	if !s.Valid {
		s.w.Error("quote is incomplete")
	}
	for _, warning := range s.Warnings {
		s.w.Warning("%s", warning)
	}
}
