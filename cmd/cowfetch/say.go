package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/cowfetch/internal/catalog"
	"github.com/gorewood/cowfetch/internal/cowfile"
	"github.com/gorewood/cowfetch/internal/output"
	"github.com/gorewood/cowfetch/internal/render"
)

// sayOptions holds the root command's local flags.
type sayOptions struct {
	list   bool
	random bool
	file   string
}

// sayResult is the --json form of a rendered cow.
type sayResult struct {
	Name   string `json:"name"`
	Source string `json:"source"`
	Art    string `json:"art"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// runSay renders one cow with the message taken from args.
func runSay(cmd *cobra.Command, a *app, args []string, opts sayOptions) error {
	if opts.list {
		return runListNames(cmd, a)
	}
	if opts.random && opts.file != "" {
		return output.NewUsageError("--random and --file cannot be combined")
	}

	doc, message, err := loadSayDocument(cmd, a, args, opts)
	if err != nil {
		return err
	}
	a.logDiagnostics(doc)

	color := a.useColor(cmd, cmd.OutOrStdout())
	if isJSONMode(cmd) {
		return writeSayJSON(a.printer(cmd), doc, message, color)
	}
	if err := render.Print(cmd.OutOrStdout(), doc, message, color); err != nil {
		return output.NewFailureWithCause(err.Error(), err)
	}
	return nil
}

// loadSayDocument picks and parses the template and returns it with the message.
func loadSayDocument(cmd *cobra.Command, a *app, args []string, opts sayOptions) (*cowfile.Document, string, error) {
	parseOpts := a.parseOptions(cmd)

	if opts.file != "" {
		doc, err := loadFile(opts.file, parseOpts)
		return doc, joinMessage(args), err
	}

	cat := a.newCatalog(a.cfg)
	var (
		entry catalog.Entry
		err   error
		name  string
	)
	message := joinMessage(args)

	switch {
	case opts.random:
		entry, err = cat.Random(a.rng)
	case len(args) > 0:
		name, message = args[0], joinMessage(args[1:])
		entry, err = cat.Resolve(name)
	case a.cfg.DefaultCow != "":
		name = a.cfg.DefaultCow
		entry, err = cat.Resolve(name)
	default:
		entry, err = cat.Random(a.rng)
		if err == nil {
			a.printer(cmd).Hint("No cow specified, choosing a random one: %s", entry.Name)
		}
	}
	if err != nil {
		return nil, "", catalogError(name, err)
	}

	a.logger.Debug("resolved cow", "name", entry.Name, "origin", entry.Origin, "path", entry.Path)
	doc, err := entry.Load(parseOpts...)
	if err != nil {
		return nil, "", loadError(err)
	}
	return doc, message, nil
}

// loadFile parses a template given by path rather than by name.
func loadFile(path string, opts []cowfile.Option) (*cowfile.Document, error) {
	file, err := os.Open(path) //nolint:gosec // path is an explicit user argument
	if err != nil {
		return nil, output.NewFailureWithCause(fmt.Sprintf("could not open %s", path), err)
	}
	defer file.Close() //nolint:errcheck // read-only

	doc, err := cowfile.ParseReader(file, path, opts...)
	if err != nil {
		return nil, loadError(err)
	}
	return doc, nil
}

func writeSayJSON(printer *output.Printer, doc *cowfile.Document, message string, color bool) error {
	art := render.Render(doc, message)
	if !color {
		art = render.StripANSI(art)
	}
	width, height := render.Dimensions(art)
	return printer.WriteJSON(sayResult{
		Name:   doc.Name,
		Source: doc.Source,
		Art:    art,
		Width:  width,
		Height: height,
	})
}

// joinMessage joins message words with single spaces.
func joinMessage(words []string) string {
	return strings.Join(words, " ")
}
