package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/gorewood/cowfetch/internal/catalog"
	"github.com/gorewood/cowfetch/internal/cowfile"
	"github.com/gorewood/cowfetch/internal/output"
	"github.com/gorewood/cowfetch/internal/render"
)

// showResult is the --json form of an inspected template.
type showResult struct {
	Name        string               `json:"name"`
	Origin      string               `json:"origin"`
	Path        string               `json:"path"`
	Overrides   string               `json:"overrides,omitempty"`
	Comments    []string             `json:"comments"`
	Variables   map[string]string    `json:"variables"`
	ArtTemplate string               `json:"art_template"`
	ArtLines    int                  `json:"art_lines"`
	Width       int                  `json:"width"`
	Height      int                  `json:"height"`
	Diagnostics []cowfile.Diagnostic `json:"diagnostics"`
}

// newShowCmd creates the show command.
func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Inspect a parsed cow template",
		Long: `Show how cowfetch reads a template: where it was found, its comments,
declared variables (escapes shown as written), art size and any parse
diagnostics.

Examples:
  cowfetch show tux          # Human-readable summary
  cowfetch show tux --json   # Full parsed document as JSON`,
		Args: exactlyOneArg("cow name"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, a, args[0])
		},
	}
}

// runShow executes the show command.
func runShow(cmd *cobra.Command, a *app, name string) error {
	entry, err := a.newCatalog(a.cfg).Resolve(name)
	if err != nil {
		return catalogError(name, err)
	}
	doc, err := entry.Load(a.parseOptions(cmd)...)
	if err != nil {
		return loadError(err)
	}

	result := buildShowResult(entry, doc)
	printer := a.printer(cmd)
	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}
	outputShowHuman(printer, result)
	return nil
}

func buildShowResult(entry catalog.Entry, doc *cowfile.Document) showResult {
	vars := make(map[string]string, len(doc.Variables))
	for name, value := range doc.Variables {
		vars[name] = cowfile.EncodeValue(value)
	}
	width, height := render.Dimensions(render.StripANSI(render.Render(doc, "")))

	comments := doc.Comments
	if comments == nil {
		comments = []string{}
	}
	diags := doc.Diagnostics
	if diags == nil {
		diags = []cowfile.Diagnostic{}
	}

	return showResult{
		Name:        entry.Name,
		Origin:      entry.Origin,
		Path:        entry.Path,
		Overrides:   entry.Overrides,
		Comments:    comments,
		Variables:   vars,
		ArtTemplate: doc.ArtTemplate,
		ArtLines:    doc.ArtLines,
		Width:       width,
		Height:      height,
		Diagnostics: diags,
	}
}

// outputShowHuman prints the inspected template in human-readable form.
func outputShowHuman(printer *output.Printer, result showResult) {
	printer.KeyValue("Name", result.Name)
	printer.KeyValue("Origin", result.Origin)
	printer.KeyValue("Path", result.Path)
	if result.Overrides != "" {
		printer.KeyValue("Overrides", result.Overrides)
	}
	printer.KeyValue("Art", fmt.Sprintf("%d lines, %dx%d", result.ArtLines, result.Width, result.Height))

	if len(result.Comments) > 0 {
		printer.Section("Comments")
		for _, comment := range result.Comments {
			printer.Println(comment)
		}
	}

	if len(result.Variables) > 0 {
		printer.Section("Variables")
		for _, name := range slices.Sorted(maps.Keys(result.Variables)) {
			printer.KeyValue("$"+name, `"`+result.Variables[name]+`"`)
		}
	}

	if len(result.Diagnostics) > 0 {
		printer.Section("Diagnostics")
		for _, d := range result.Diagnostics {
			printer.Println(d.String())
		}
	}
}
