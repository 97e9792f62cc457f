// Package output provides structured output and error handling for the cowfetch CLI.
//
// Every command works for both people and scripts: human output is styled
// with lipgloss when color is enabled, and --json switches every command to a
// single JSON document on stdout.
//
// # Printer
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonFlag, color).WithStderr(cmd.ErrOrStderr())
//
//	printer.Table([]string{"NAME", "ORIGIN"}, rows)
//	printer.Hint("No cow specified, choosing a random one: %s", name)
//	printer.Error(err)
//
// Rendered art is written by the render package, not the Printer; the Printer
// carries listings, metadata, warnings and errors.
//
// # JSON Mode
//
//	// Success: the command's result object, via WriteJSON
//	// Error:   {"error": "message", "code": N, "hint": "..."}
//
// Warnings and hints are suppressed in JSON mode.
//
// # Exit Codes
//
//	output.ExitSuccess // 0: Success
//	output.ExitFailure // 1: Unknown cow, no catalog, unreadable or malformed file
//	output.ExitUsage   // 2: Bad flags or arguments
//
// # Color
//
// ResolveColorMode maps --color (auto, always, never) plus TTY detection and
// NO_COLOR to a single on/off decision shared by the Printer and the renderer.
package output
