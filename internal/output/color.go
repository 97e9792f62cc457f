package output

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Color modes accepted by --color and the config file.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ResolveColorMode determines whether color is used based on the color mode
// and actual TTY detection. The colorMode parameter accepts "never",
// "always", or "auto":
//   - "never":  always disable colors (returns false)
//   - "always": always enable colors (returns true)
//   - "auto":   use the detected isTTY value unless NO_COLOR is set
func ResolveColorMode(colorMode string, isTTY bool) bool {
	switch colorMode {
	case ColorNever:
		return false
	case ColorAlways:
		return true
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		return isTTY
	}
}

// ValidColorMode reports whether mode is one of the accepted values.
func ValidColorMode(mode string) bool {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// IsTTY checks if a writer is a terminal.
// Returns true only for an *os.File attached to a terminal.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd())) //nolint:gosec // fd fits in int on supported platforms
}
