// Package main provides the entry point for the cowfetch CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gorewood/cowfetch/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := lookupFlag(cmd, "json")
	return flag != nil && flag.Value.String() == "true"
}

// lookupFlag finds a flag on cmd, walking up to the root's persistent flags.
func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag
	}
	return cmd.Root().PersistentFlags().Lookup(name)
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	a := newApp()
	cmd := newRootCmdFor(a)
	err := fang.Execute(context.Background(), cmd,
		fang.WithVersion(buildVersion()),
		fang.WithErrorHandler(errorHandler(a, cmd)),
	)
	return output.GetExitCode(err)
}

// errorHandler reports command errors through the Printer so --json and exit
// codes stay consistent. Errors cobra raises on its own keep fang's styling.
func errorHandler(a *app, root *cobra.Command) fang.ErrorHandler {
	return func(w io.Writer, styles fang.Styles, err error) {
		var exitErr *output.ExitError
		if !errors.As(err, &exitErr) && !isJSONMode(root) {
			fang.DefaultErrorHandler(w, styles, err)
			return
		}
		a.reportError(root, w, err)
	}
}

// newRootCmdFor creates the root command for the cowfetch CLI, bound to a.
func newRootCmdFor(a *app) *cobra.Command {
	var opts sayOptions

	cmd := &cobra.Command{
		Use:   "cowfetch [cow_name] [message...]",
		Short: "Render ASCII and ANSI art from .cow templates",
		Long: `Cowfetch renders .cow templates, substituting your message for $thoughts.

Templates are looked up by name in, first match wins:
  ./.cowfetch/cows     project templates
  $COWPATH             extra directories (also cow_path in config.yaml)
  <config dir>/cows    your templates
  built-in             templates shipped with cowfetch

Examples:
  cowfetch tux "hello there"     # Render tux with a message
  cowfetch -r hello              # Random cow, all words are the message
  cowfetch -f ./moose.cow hi     # Render a file outside the catalog
  cowfetch --list-cows           # List available names`,
		Version:       buildVersion(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSay(cmd, a, args, opts)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return a.setup(cmd)
	}
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return output.NewUsageError(err.Error()).
			WithHint(fmt.Sprintf("Run '%s --help' for usage.", c.CommandPath()))
	})

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", output.ColorAuto, "Color output: auto, always or never")
	cmd.PersistentFlags().String("log-level", "warn", "Diagnostic log level: debug, info, warn or error")
	cmd.PersistentFlags().Bool("strict", false, "Reject templates whose art block is never closed")

	cmd.Flags().BoolVarP(&opts.list, "list-cows", "l", false, "List available cow names and exit")
	cmd.Flags().BoolVarP(&opts.random, "random", "r", false, "Pick a random cow; every argument is the message")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Render a .cow file by path; every argument is the message")

	lipgloss.SetHasDarkBackground(true)

	cmd.AddCommand(newListCmd(a))
	cmd.AddCommand(newShowCmd(a))
	cmd.AddCommand(newServeCmd(a))

	return cmd
}
