package cowfile

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"
)

func TestParse_Basic(t *testing.T) {
	lines := []string{
		"# falco by someone",
		"  # indented comment",
		"",
		`$a = "\e[49m  ";`,
		`$t = "$thoughts ";   # wrapper`,
		"$the_cow = <<EOC",
		"   $t",
		"",
		"  $a$a  ",
		"EOC",
	}

	doc, err := Parse(lines, "cows/falco.cow")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if doc.Name != "falco" {
		t.Errorf("Name = %q, want %q", doc.Name, "falco")
	}
	if doc.Source != "cows/falco.cow" {
		t.Errorf("Source = %q, want %q", doc.Source, "cows/falco.cow")
	}

	wantComments := []string{"# falco by someone", "# indented comment"}
	if len(doc.Comments) != len(wantComments) {
		t.Fatalf("Comments = %q, want %q", doc.Comments, wantComments)
	}
	for i, c := range wantComments {
		if doc.Comments[i] != c {
			t.Errorf("Comments[%d] = %q, want %q", i, doc.Comments[i], c)
		}
	}

	if got := doc.Variables["a"]; got != "\x1b[49m  " {
		t.Errorf("Variables[a] = %q, want %q", got, "\x1b[49m  ")
	}
	if got := doc.Variables["t"]; got != "$thoughts " {
		t.Errorf("Variables[t] = %q, want %q", got, "$thoughts ")
	}
	if len(doc.Variables) != 2 {
		t.Errorf("len(Variables) = %d, want 2", len(doc.Variables))
	}

	wantArt := "   $t\n\n  $a$a  "
	if doc.ArtTemplate != wantArt {
		t.Errorf("ArtTemplate = %q, want %q", doc.ArtTemplate, wantArt)
	}
	if doc.ArtLines != 3 {
		t.Errorf("ArtLines = %d, want 3", doc.ArtLines)
	}
	if len(doc.Diagnostics) != 0 {
		t.Errorf("Diagnostics = %v, want none", doc.Diagnostics)
	}
}

func TestParse_ArtLineCountMatchesSource(t *testing.T) {
	tests := []struct {
		name string
		art  []string
	}{
		{name: "empty block", art: nil},
		{name: "single line", art: []string{"(oo)"}},
		{name: "blank lines kept", art: []string{"", "  ", ""}},
		{name: "comment-looking lines kept", art: []string{"# not a comment", `$x = "y";`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := append([]string{"$the_cow = <<EOC"}, tt.art...)
			lines = append(lines, "EOC")

			doc, err := Parse(lines, "x.cow")
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if doc.ArtLines != len(tt.art) {
				t.Errorf("ArtLines = %d, want %d", doc.ArtLines, len(tt.art))
			}
			if doc.ArtTemplate != strings.Join(tt.art, "\n") {
				t.Errorf("ArtTemplate = %q, want %q", doc.ArtTemplate, strings.Join(tt.art, "\n"))
			}
			if len(doc.Variables) != 0 {
				t.Errorf("Variables = %v, want none (assignments inside art are art)", doc.Variables)
			}
		})
	}
}

func TestParse_LastAssignmentWins(t *testing.T) {
	lines := []string{`$eye = "o";`, `$eye = "O";`}
	doc, err := Parse(lines, "x.cow")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if doc.Variables["eye"] != "O" {
		t.Errorf("Variables[eye] = %q, want %q", doc.Variables["eye"], "O")
	}
}

func TestParse_VariablesAfterArtBlockAreIgnored(t *testing.T) {
	lines := []string{
		"$the_cow = <<EOC",
		"art",
		"EOC",
		`$late = "x";`,
	}
	doc, err := Parse(lines, "x.cow")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if _, ok := doc.Variables["late"]; ok {
		t.Errorf("Variables = %v, want no variable declared after the art block", doc.Variables)
	}
	if len(doc.Diagnostics) != 1 || doc.Diagnostics[0].Kind != UnrecognizedLine || doc.Diagnostics[0].Line != 4 {
		t.Errorf("Diagnostics = %v, want unrecognized line 4", doc.Diagnostics)
	}
}

func TestParse_AssignmentGrammar(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantKey string
		wantVal string
		ok      bool
	}{
		{name: "plain", line: `$eyes = "oo";`, wantKey: "eyes", wantVal: "oo", ok: true},
		{name: "no spaces", line: `$eyes="oo";`, wantKey: "eyes", wantVal: "oo", ok: true},
		{name: "leading whitespace", line: "\t  $x = \"1\";", wantKey: "x", wantVal: "1", ok: true},
		{name: "trailing comment", line: `$x = "1"; # note`, wantKey: "x", wantVal: "1", ok: true},
		{name: "space before semicolon", line: `$x = "1" ;`, wantKey: "x", wantVal: "1", ok: true},
		{name: "escaped quote", line: `$q = "say \"hi\"";`, wantKey: "q", wantVal: `say "hi"`, ok: true},
		{name: "escape byte", line: `$c = "\e[0m";`, wantKey: "c", wantVal: "\x1b[0m", ok: true},
		{name: "empty value", line: `$e = "";`, wantKey: "e", wantVal: "", ok: true},
		{name: "digits and underscore", line: `$a_1 = "v";`, wantKey: "a_1", wantVal: "v", ok: true},
		{name: "missing semicolon", line: `$x = "1"`, ok: false},
		{name: "unbalanced quotes", line: `$x = "1;`, ok: false},
		{name: "single quotes", line: `$x = '1';`, ok: false},
		{name: "no dollar", line: `x = "1";`, ok: false},
		{name: "trailing garbage", line: `$x = "1"; more`, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]string{tt.line}, "x.cow")
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			got, found := doc.Variables[tt.wantKey]
			if !tt.ok {
				if len(doc.Variables) != 0 {
					t.Errorf("Variables = %v, want none", doc.Variables)
				}
				if len(doc.Diagnostics) != 1 || doc.Diagnostics[0].Kind != UnrecognizedLine {
					t.Errorf("Diagnostics = %v, want one unrecognized line", doc.Diagnostics)
				}
				return
			}
			if !found {
				t.Fatalf("Variables[%q] missing, got %v", tt.wantKey, doc.Variables)
			}
			if got != tt.wantVal {
				t.Errorf("Variables[%q] = %q, want %q", tt.wantKey, got, tt.wantVal)
			}
		})
	}
}

func TestParse_TrailingContentOnOpenMarker(t *testing.T) {
	lines := []string{
		`$the_cow = <<EOC;`,
		"body",
		"EOC",
	}
	doc, err := Parse(lines, "x.cow")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if doc.ArtTemplate != "body" {
		t.Errorf("ArtTemplate = %q, want %q", doc.ArtTemplate, "body")
	}
	if len(doc.Diagnostics) != 1 {
		t.Fatalf("Diagnostics = %v, want 1", doc.Diagnostics)
	}
	d := doc.Diagnostics[0]
	if d.Kind != TrailingContent || d.Line != 1 || d.Text != ";" {
		t.Errorf("Diagnostic = %+v, want trailing content ';' on line 1", d)
	}
}

func TestParse_UnrecognizedLineContinues(t *testing.T) {
	lines := []string{
		"what is this",
		`$x = "1";`,
		"$the_cow = <<EOC",
		"$x",
		"EOC",
	}
	doc, err := Parse(lines, "x.cow")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if doc.Variables["x"] != "1" {
		t.Errorf("Variables[x] = %q, want %q", doc.Variables["x"], "1")
	}
	if len(doc.Diagnostics) != 1 {
		t.Fatalf("Diagnostics = %v, want 1", doc.Diagnostics)
	}
	d := doc.Diagnostics[0]
	if d.Kind != UnrecognizedLine || d.Line != 1 || d.Text != "what is this" {
		t.Errorf("Diagnostic = %+v", d)
	}
	if !strings.Contains(d.String(), "x.cow:1") {
		t.Errorf("String() = %q, want source:line prefix", d.String())
	}
}

func TestParse_UnterminatedBlockTolerant(t *testing.T) {
	lines := []string{
		"$the_cow = <<EOC",
		"line one",
		"",
		"line three",
	}
	doc, err := Parse(lines, "x.cow")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if doc.ArtTemplate != "line one\n\nline three" {
		t.Errorf("ArtTemplate = %q", doc.ArtTemplate)
	}
	if doc.ArtLines != 3 {
		t.Errorf("ArtLines = %d, want 3", doc.ArtLines)
	}
	if len(doc.Diagnostics) != 1 || doc.Diagnostics[0].Kind != UnterminatedBlock {
		t.Errorf("Diagnostics = %v, want one unterminated block", doc.Diagnostics)
	}
}

func TestParse_UnterminatedBlockStrict(t *testing.T) {
	lines := []string{
		`$x = "1";`,
		"$the_cow = <<EOC",
		"art",
	}
	doc, err := Parse(lines, "x.cow", WithStrict())
	if err == nil {
		t.Fatalf("Parse() error = nil, doc = %+v", doc)
	}
	if !errors.Is(err, ErrMalformedTemplate) {
		t.Errorf("errors.Is(err, ErrMalformedTemplate) = false, err = %v", err)
	}
	var malformed *MalformedTemplateError
	if !errors.As(err, &malformed) {
		t.Fatalf("error type = %T, want *MalformedTemplateError", err)
	}
	if malformed.Line != 2 {
		t.Errorf("Line = %d, want 2", malformed.Line)
	}
}

func TestParse_CloseMarkerTrimmed(t *testing.T) {
	lines := []string{"$the_cow = <<EOC", "x", "  EOC  ", "#after"}
	doc, err := Parse(lines, "x.cow", WithStrict())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if doc.ArtTemplate != "x" {
		t.Errorf("ArtTemplate = %q, want %q", doc.ArtTemplate, "x")
	}
	if len(doc.Comments) != 1 || doc.Comments[0] != "#after" {
		t.Errorf("Comments = %q", doc.Comments)
	}
}

func TestParseReader_LineEndings(t *testing.T) {
	input := "$e = \"o\";\r\n$the_cow = <<EOC\r\n ($e$e)  \r\nEOC\r\n"
	doc, err := ParseReader(strings.NewReader(input), "crlf.cow")
	if err != nil {
		t.Fatalf("ParseReader() error = %v", err)
	}
	if doc.Variables["e"] != "o" {
		t.Errorf("Variables[e] = %q, want %q", doc.Variables["e"], "o")
	}
	if doc.ArtTemplate != " ($e$e)  " {
		t.Errorf("ArtTemplate = %q, want %q", doc.ArtTemplate, " ($e$e)  ")
	}
}

func TestParseReader_LongLine(t *testing.T) {
	long := strings.Repeat("\x1b[48;5;16m ", 20000)
	input := "$the_cow = <<EOC\n" + long + "\nEOC\n"
	doc, err := ParseReader(strings.NewReader(input), "long.cow")
	if err != nil {
		t.Fatalf("ParseReader() error = %v", err)
	}
	if doc.ArtTemplate != long {
		t.Errorf("ArtTemplate length = %d, want %d", len(doc.ArtTemplate), len(long))
	}
}

func TestParseReader_LineOverOneMiB(t *testing.T) {
	long := strings.Repeat("#", 3<<20)
	input := "$w = \"" + long + "\";\n$the_cow = <<EOC\n$w\n" + long + "\nEOC"
	doc, err := ParseReader(strings.NewReader(input), "huge.cow")
	if err != nil {
		t.Fatalf("ParseReader() error = %v", err)
	}
	if doc.Variables["w"] != long {
		t.Errorf("Variables[w] length = %d, want %d", len(doc.Variables["w"]), len(long))
	}
	if doc.ArtLines != 2 || !strings.HasSuffix(doc.ArtTemplate, "\n"+long) {
		t.Errorf("ArtLines = %d, ArtTemplate length = %d", doc.ArtLines, len(doc.ArtTemplate))
	}
	if len(doc.Diagnostics) != 0 {
		t.Errorf("Diagnostics = %v, want none", doc.Diagnostics)
	}
}

func TestParseReader_NoTrailingNewline(t *testing.T) {
	doc, err := ParseReader(strings.NewReader("# c\n\n$the_cow = <<EOC\nx\nEOC"), "eof.cow")
	if err != nil {
		t.Fatalf("ParseReader() error = %v", err)
	}
	if doc.ArtTemplate != "x" || len(doc.Diagnostics) != 0 {
		t.Errorf("ArtTemplate = %q, Diagnostics = %v", doc.ArtTemplate, doc.Diagnostics)
	}
}

func TestParseFile(t *testing.T) {
	fsys := fstest.MapFS{
		"cows/duck.cow": {Data: []byte("$the_cow = <<EOC\n>o)\nEOC\n")},
	}

	doc, err := ParseFile(fsys, "cows/duck.cow")
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if doc.Name != "duck" {
		t.Errorf("Name = %q, want %q", doc.Name, "duck")
	}
	if doc.ArtTemplate != ">o)" {
		t.Errorf("ArtTemplate = %q, want %q", doc.ArtTemplate, ">o)")
	}
}

func TestParseFile_WithSource(t *testing.T) {
	fsys := fstest.MapFS{
		"duck.cow": {Data: []byte("huh\n")},
	}

	doc, err := ParseFile(fsys, "duck.cow", WithSource("/home/me/cows/duck.cow"))
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if doc.Name != "duck" {
		t.Errorf("Name = %q, want %q", doc.Name, "duck")
	}
	if doc.Source != "/home/me/cows/duck.cow" {
		t.Errorf("Source = %q", doc.Source)
	}
	if len(doc.Diagnostics) != 1 || doc.Diagnostics[0].Source != "/home/me/cows/duck.cow" {
		t.Errorf("Diagnostics = %v", doc.Diagnostics)
	}
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile(fstest.MapFS{}, "nope.cow")
	if err == nil {
		t.Fatal("ParseFile() error = nil, want error")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("errors.Is(err, fs.ErrNotExist) = false, err = %v", err)
	}
}

func TestNameFromSource(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"falco.cow", "falco"},
		{"/usr/share/cows/tux.cow", "tux"},
		{`C:\cows\moose.cow`, "moose"},
		{"noext", "noext"},
		{"two.dots.cow", "two.dots"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NameFromSource(tt.source); got != tt.want {
			t.Errorf("NameFromSource(%q) = %q, want %q", tt.source, got, tt.want)
		}
	}
}
