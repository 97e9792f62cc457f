package cowfile

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// ErrMalformedTemplate is matched by every *MalformedTemplateError.
var ErrMalformedTemplate = errors.New("malformed template")

// Document is the parsed form of one template file.
type Document struct {
	Name        string
	Source      string
	Variables   map[string]string
	ArtTemplate string
	ArtLines    int
	Comments    []string
	Diagnostics []Diagnostic
}

// DiagnosticKind classifies a non-fatal parse finding.
type DiagnosticKind string

// Diagnostic kinds.
const (
	UnrecognizedLine  DiagnosticKind = "unrecognized_line"
	TrailingContent   DiagnosticKind = "trailing_content"
	UnterminatedBlock DiagnosticKind = "unterminated_block"
)

// Diagnostic is a non-fatal finding reported while parsing.
type Diagnostic struct {
	Source string         `json:"source"`
	Line   int            `json:"line"`
	Kind   DiagnosticKind `json:"kind"`
	Text   string         `json:"text"`
}

// String formats the diagnostic as "source:line: message".
func (d Diagnostic) String() string {
	switch d.Kind {
	case TrailingContent:
		return fmt.Sprintf("%s:%d: content after art block marker ignored: %q", d.Source, d.Line, d.Text)
	case UnterminatedBlock:
		return fmt.Sprintf("%s:%d: art block opened here is never closed", d.Source, d.Line)
	default:
		return fmt.Sprintf("%s:%d: unrecognized line: %q", d.Source, d.Line, d.Text)
	}
}

// MalformedTemplateError reports an art block without a close marker.
// It is only returned when parsing with WithStrict.
type MalformedTemplateError struct {
	Source string
	Line   int // line of the open marker
}

// Error implements the error interface.
func (e *MalformedTemplateError) Error() string {
	return fmt.Sprintf("%s: art block opened at line %d is never closed", e.Source, e.Line)
}

// Unwrap lets errors.Is match ErrMalformedTemplate.
func (e *MalformedTemplateError) Unwrap() error {
	return ErrMalformedTemplate
}

// NameFromSource derives a document name from a file path or identifier:
// the base name without its extension.
func NameFromSource(source string) string {
	base := path.Base(strings.ReplaceAll(source, `\`, "/"))
	if base == "." || base == "/" {
		return ""
	}
	return strings.TrimSuffix(base, path.Ext(base))
}
