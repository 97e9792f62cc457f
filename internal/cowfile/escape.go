package cowfile

import "strings"

// esc is the ANSI escape control byte written as \e in template files.
const esc = "\x1b"

// DecodeValue turns the raw text between an assignment's quotes into its
// stored value. \e is replaced before \"; no other escapes exist.
func DecodeValue(raw string) string {
	decoded := strings.ReplaceAll(raw, `\e`, esc)
	return strings.ReplaceAll(decoded, `\"`, `"`)
}

// EncodeValue is the inverse of DecodeValue for values that contain no raw
// ESC bytes in their declared form.
func EncodeValue(value string) string {
	encoded := strings.ReplaceAll(value, `"`, `\"`)
	return strings.ReplaceAll(encoded, esc, `\e`)
}
