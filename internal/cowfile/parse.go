package cowfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"regexp"
	"strings"
)

const (
	artOpenMarker  = "$the_cow = <<EOC"
	artCloseMarker = "EOC"
)

// assignmentPattern matches `$name = "value";` with an optional trailing
// comment. An escaped quote inside the value does not end it.
var assignmentPattern = regexp.MustCompile(`^\s*\$(\w+)\s*=\s*"((?:\\"|[^"])*)"\s*;(?:\s*#.*)?$`)

// Option configures parsing.
type Option func(*parseConfig)

type parseConfig struct {
	strict bool
	source string
}

// WithStrict makes an unterminated art block a *MalformedTemplateError
// instead of a diagnostic.
func WithStrict() Option {
	return func(c *parseConfig) { c.strict = true }
}

// WithSource overrides the source identifier ParseFile records in the
// document and its diagnostics. The document name still comes from the file name.
func WithSource(source string) Option {
	return func(c *parseConfig) { c.source = source }
}

// Parse builds a Document from the lines of a template file.
// Lines must not carry their trailing newline.
func Parse(lines []string, source string, opts ...Option) (*Document, error) {
	cfg := parseConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	doc := &Document{
		Name:      NameFromSource(source),
		Source:    source,
		Variables: make(map[string]string),
	}

	var art []string
	inArt, artDone := false, false
	openedAt := 0

	for idx, line := range lines {
		lineNo := idx + 1

		if inArt {
			if strings.TrimSpace(line) == artCloseMarker {
				inArt, artDone = false, true
				continue
			}
			art = append(art, line)
			continue
		}

		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			continue
		case strings.HasPrefix(trimmed, "#"):
			doc.Comments = append(doc.Comments, trimmed)
		case !artDone && parseAssignment(doc.Variables, line):
			// Variables are only declared ahead of the art block.
		case strings.HasPrefix(trimmed, artOpenMarker):
			inArt = true
			openedAt = lineNo
			if rest := strings.TrimSpace(trimmed[len(artOpenMarker):]); rest != "" {
				doc.diagnose(lineNo, TrailingContent, rest)
			}
		default:
			doc.diagnose(lineNo, UnrecognizedLine, line)
		}
	}

	if inArt {
		if cfg.strict {
			return nil, &MalformedTemplateError{Source: source, Line: openedAt}
		}
		doc.diagnose(openedAt, UnterminatedBlock, artOpenMarker)
	}

	doc.ArtTemplate = strings.Join(art, "\n")
	doc.ArtLines = len(art)
	return doc, nil
}

// parseAssignment stores the variable declared by line, if it is one.
func parseAssignment(vars map[string]string, line string) bool {
	match := assignmentPattern.FindStringSubmatch(line)
	if match == nil {
		return false
	}
	vars[match[1]] = DecodeValue(match[2])
	return true
}

func (d *Document) diagnose(line int, kind DiagnosticKind, text string) {
	d.Diagnostics = append(d.Diagnostics, Diagnostic{
		Source: d.Source,
		Line:   line,
		Kind:   kind,
		Text:   text,
	})
}

// ParseReader reads a template from r and parses it.
func ParseReader(r io.Reader, source string, opts ...Option) (*Document, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}
	return Parse(lines, source, opts...)
}

// ParseFile opens name in fsys and parses it. The file is closed on every path.
func ParseFile(fsys fs.FS, name string, opts ...Option) (*Document, error) {
	cfg := parseConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	source := name
	if cfg.source != "" {
		source = cfg.source
	}

	file, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", source, err)
	}
	defer file.Close() //nolint:errcheck // best-effort close on read-only file

	doc, err := ParseReader(file, source, opts...)
	if err != nil {
		return nil, err
	}
	doc.Name = NameFromSource(name)
	return doc, nil
}

// readLines splits r into lines without their line terminators. Lines have
// no length limit; colored art lines run long.
func readLines(r io.Reader) ([]string, error) {
	reader := bufio.NewReader(r)

	var lines []string
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
