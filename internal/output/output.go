package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Printer handles formatted output to a writer.
// It supports both JSON and human-readable output modes.
type Printer struct {
	w      io.Writer
	errW   io.Writer
	json   bool
	color  bool
	styles *Styles
}

// Styles holds lipgloss styles for human-readable output.
type Styles struct {
	Error   lipgloss.Style
	Warning lipgloss.Style
	Hint    lipgloss.Style
	Bold    lipgloss.Style
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Key     lipgloss.Style
}

// NewPrinter creates a new Printer.
// If jsonMode is true, output will be JSON formatted.
// If color is true, styles are applied to human output.
func NewPrinter(writer io.Writer, jsonMode bool, color bool) *Printer {
	styles := &Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true), // Red
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),           // Yellow
		Hint:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),            // Gray
		Bold:    lipgloss.NewStyle().Bold(true),
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")), // Blue
		Muted:   lipgloss.NewStyle().Faint(true),
		Key:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")), // Cyan
	}

	if !color {
		plain := lipgloss.NewStyle()
		styles = &Styles{
			Error:   plain,
			Warning: plain,
			Hint:    plain,
			Bold:    plain,
			Title:   plain,
			Muted:   plain,
			Key:     plain,
		}
	}

	return &Printer{
		w:      writer,
		errW:   writer,
		json:   jsonMode,
		color:  color,
		styles: styles,
	}
}

// WithStderr sets a separate writer for errors, warnings and hints in human mode.
// In JSON mode, errors still go to the main writer.
// Returns the printer for chaining.
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.errW = w
	return p
}

// IsJSON returns true if the printer is in JSON mode.
func (p *Printer) IsJSON() bool {
	return p.json
}

// Color returns true if human output is styled.
func (p *Printer) Color() bool {
	return p.color
}

// Error outputs an error.
// For JSON mode, outputs {"error": "...", "code": N} to the main writer.
// For human mode, outputs a styled message and any hint to the error writer.
func (p *Printer) Error(err error) {
	exitErr := &ExitError{}
	if !errors.As(err, &exitErr) {
		exitErr = &ExitError{
			Code:    ExitFailure,
			Message: err.Error(),
		}
	}

	if p.json {
		mustWrite(p.w.Write(ErrorJSON(exitErr.Message, exitErr.Hint, exitErr.Code)))
		mustWrite(fmt.Fprintln(p.w))
		return
	}

	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Error.Render("Error"), exitErr.Message))
	if exitErr.Hint != "" {
		mustWrite(fmt.Fprintln(p.errW, p.styles.Hint.Render(exitErr.Hint)))
	}
}

// Warn outputs a warning message to the error writer.
// In JSON mode warnings are dropped so stdout stays a single document.
func (p *Printer) Warn(format string, args ...any) {
	if p.json {
		return
	}
	msg := fmt.Sprintf(format, args...)
	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Warning.Render("Warning"), msg))
}

// Hint writes a status line to the error writer. No-op in JSON mode.
func (p *Printer) Hint(format string, args ...any) {
	if p.json {
		return
	}
	mustWrite(fmt.Fprintln(p.errW, p.styles.Hint.Render(fmt.Sprintf(format, args...))))
}

// Print formats and writes to the output without a newline.
func (p *Printer) Print(format string, args ...any) {
	mustWrite(fmt.Fprintf(p.w, format, args...))
}

// Println writes a line to the output.
func (p *Printer) Println(args ...any) {
	mustWrite(fmt.Fprintln(p.w, args...))
}

// writeJSON encodes data as JSON and writes it.
func (p *Printer) writeJSON(data any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// WriteJSON encodes any data as JSON and writes it.
// Use this for outputting structs or other types that aren't maps.
func (p *Printer) WriteJSON(data any) error {
	return p.writeJSON(data)
}

// ErrorJSON returns JSON-formatted error bytes.
// Format: {"error": "message", "code": N} plus "hint" when set.
func ErrorJSON(message, hint string, code int) []byte {
	data := map[string]any{
		"error": message,
		"code":  code,
	}
	if hint != "" {
		data["hint"] = hint
	}
	result, _ := json.Marshal(data)
	return result
}

// mustWrite panics if a write operation fails.
// Use this to wrap write operations that should never fail
// (e.g., writing to stdout/stderr or buffers).
func mustWrite(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("write failed: %v", err))
	}
}

// Table renders a simple table with column alignment.
// Headers are rendered in Bold style. Column widths are auto-calculated.
func (p *Printer) Table(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}

	widths := calcColumnWidths(headers, rows)
	p.printTableRow(headers, widths, p.styles.Bold)
	for _, row := range rows {
		p.printTableRow(row, widths, lipgloss.NewStyle())
	}
}

// calcColumnWidths computes the max display width for each column.
func calcColumnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], runewidth.StringWidth(cell))
			}
		}
	}
	return widths
}

// printTableRow renders one row; the last column is not padded.
func (p *Printer) printTableRow(row []string, widths []int, style lipgloss.Style) {
	var b strings.Builder
	for i, cell := range row {
		if i >= len(widths) {
			break
		}
		if i > 0 {
			b.WriteString("  ")
		}
		if i < len(row)-1 && i < len(widths)-1 {
			cell = runewidth.FillRight(cell, widths[i])
		}
		b.WriteString(style.Render(cell))
	}
	mustWrite(fmt.Fprintln(p.w, b.String()))
}

// Section renders a section header with underline.
// Adds a blank line before the header.
func (p *Printer) Section(title string) {
	mustWrite(fmt.Fprintln(p.w))
	mustWrite(fmt.Fprintln(p.w, p.styles.Title.Render(title)))
	underline := strings.Repeat("─", runewidth.StringWidth(title))
	mustWrite(fmt.Fprintln(p.w, p.styles.Muted.Render(underline)))
}

// KeyValue renders a key-value pair with styles applied.
// Format: "Key: Value"
func (p *Printer) KeyValue(key string, value string) {
	mustWrite(fmt.Fprintf(p.w, "%s %s\n", p.styles.Key.Render(key+":"), value))
}
