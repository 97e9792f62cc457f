package cowfile

import "testing"

func TestDecodeValue(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "no escapes", raw: "plain text", want: "plain text"},
		{name: "escape byte", raw: `\e[31m`, want: "\x1b[31m"},
		{name: "escaped quote", raw: `a \"b\"`, want: `a "b"`},
		{name: "both", raw: `\e[1m\"\e[0m`, want: "\x1b[1m\"\x1b[0m"},
		{name: "other escapes untouched", raw: `\n\t\\`, want: `\n\t\\`},
		{name: "escape byte decoded first", raw: `\\e`, want: "\\\x1b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeValue(tt.raw); got != tt.want {
				t.Errorf("DecodeValue(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestEncodeValue_RoundTrip(t *testing.T) {
	declared := []string{
		"",
		"oo",
		`\e[49m  `,
		`$thoughts `,
		`say \"hi\"`,
		`\e[38;5;196m\"\e[0m`,
		`back\\slash`,
		`\\e`,
	}

	for _, raw := range declared {
		t.Run(raw, func(t *testing.T) {
			if got := EncodeValue(DecodeValue(raw)); got != raw {
				t.Errorf("EncodeValue(DecodeValue(%q)) = %q", raw, got)
			}
		})
	}
}

func TestDeclaredValueRoundTripsThroughParse(t *testing.T) {
	raw := `\e[48;5;208m \"x\" \e[0m`
	doc, err := Parse([]string{`$v = "` + raw + `";`}, "x.cow")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := EncodeValue(doc.Variables["v"]); got != raw {
		t.Errorf("EncodeValue(parsed) = %q, want %q", got, raw)
	}
}
