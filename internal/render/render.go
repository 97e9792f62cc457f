// Package render substitutes a message into a parsed template's art.
package render

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/gorewood/cowfetch/internal/cowfile"
	"github.com/gorewood/cowfetch/internal/termstyle"
)

// thoughtsVar is the variable the caller's message is bound to.
const thoughtsVar = "thoughts"

// Render returns the document's art with every placeholder substituted.
// It never fails; a nil document renders as the empty string.
//
// The message is bound to $thoughts. $thoughts is first resolved in the art
// and in every variable value, so a wrapper such as $t = "$thoughts " carries
// the message one level deep. Then each variable is substituted into the whole
// current text, longest name first, so $ab is never cut short by $a.
func Render(doc *cowfile.Document, message string) string {
	if doc == nil {
		return ""
	}

	vars := make(map[string]string, len(doc.Variables)+1)
	for name, value := range doc.Variables {
		vars[name] = strings.ReplaceAll(value, "$"+thoughtsVar, message)
	}
	// Bound unconditionally; whether $t references $thoughts makes no difference.
	vars[thoughtsVar] = message

	art := strings.ReplaceAll(doc.ArtTemplate, "$"+thoughtsVar, message)
	for _, name := range substitutionOrder(vars) {
		art = strings.ReplaceAll(art, "$"+name, vars[name])
	}
	return art
}

// substitutionOrder sorts names by length descending, then by name.
func substitutionOrder(vars map[string]string) []string {
	names := slices.Collect(maps.Keys(vars))
	slices.SortFunc(names, func(a, b string) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}
		return strings.Compare(a, b)
	})
	return names
}

// StripANSI removes escape sequences, leaving only printable text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// Dimensions returns the display width and line count of rendered art.
// Escape sequences take no columns and wide runes take two.
func Dimensions(s string) (width, height int) {
	if s == "" {
		return 0, 0
	}
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		width = max(width, runewidth.StringWidth(StripANSI(line)))
	}
	return width, len(lines)
}

// Print renders doc and writes it to w followed by a newline. Color state is
// reset after writing on every path; with color off, escape sequences are
// stripped from the output.
func Print(w io.Writer, doc *cowfile.Document, message string, color bool) (err error) {
	text := Render(doc, message)
	if !color {
		text = StripANSI(text)
	}

	session, err := termstyle.Begin(w, color)
	if err != nil {
		return err
	}
	defer func() {
		if endErr := session.End(); endErr != nil && err == nil {
			err = endErr
		}
	}()

	if _, err := fmt.Fprintln(session.Writer(), text); err != nil {
		return fmt.Errorf("writing art: %w", err)
	}
	return nil
}
