package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/cowfetch/internal/catalog"
	"github.com/gorewood/cowfetch/internal/cowfile"
	"github.com/gorewood/cowfetch/internal/render"
)

// --- Shared types ---

// CowSummary is one catalog entry.
type CowSummary struct {
	Name      string `json:"name"                jsonschema:"cow name, usable as render_cow name"`
	Origin    string `json:"origin"              jsonschema:"where it was found: project, path, global or built-in"`
	Path      string `json:"path"                jsonschema:"resolved file path"`
	Overrides string `json:"overrides,omitempty" jsonschema:"origin of a lower-precedence cow this one hides"`
}

func toSummary(entry catalog.Entry) CowSummary {
	return CowSummary{
		Name:      entry.Name,
		Origin:    entry.Origin,
		Path:      entry.Path,
		Overrides: entry.Overrides,
	}
}

func diagnosticStrings(diags []cowfile.Diagnostic) []string {
	if len(diags) == 0 {
		return nil
	}
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.String())
	}
	return out
}

// --- list_cows tool ---

// ListCowsInput is the input for the list_cows tool (no parameters needed).
type ListCowsInput struct{}

// ListCowsOutput is the output for the list_cows tool.
type ListCowsOutput struct {
	Count int          `json:"count" jsonschema:"number of available cows"`
	Cows  []CowSummary `json:"cows"  jsonschema:"available cows sorted by name"`
}

func handleListCows(cat *catalog.Catalog) mcp.ToolHandlerFor[ListCowsInput, ListCowsOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ ListCowsInput) (*mcp.CallToolResult, ListCowsOutput, error) {
		entries, err := cat.List()
		if errors.Is(err, catalog.ErrCatalogUnavailable) {
			return nil, ListCowsOutput{Cows: []CowSummary{}}, nil
		}
		if err != nil {
			return nil, ListCowsOutput{}, fmt.Errorf("listing cows: %w", err)
		}

		out := ListCowsOutput{
			Count: len(entries),
			Cows:  make([]CowSummary, 0, len(entries)),
		}
		for _, entry := range entries {
			out.Cows = append(out.Cows, toSummary(entry))
		}
		return nil, out, nil
	}
}

// --- render_cow tool ---

// RenderCowInput is the input for the render_cow tool.
type RenderCowInput struct {
	Name    string `json:"name,omitempty"    jsonschema:"cow name from list_cows"`
	Message string `json:"message,omitempty" jsonschema:"text substituted for $thoughts"`
	Random  bool   `json:"random,omitempty"  jsonschema:"pick a random cow instead of name"`
	Color   bool   `json:"color,omitempty"   jsonschema:"keep ANSI color escapes in the art (default strips them)"`
	Strict  bool   `json:"strict,omitempty"  jsonschema:"fail on an art block with no closing marker"`
}

// RenderCowOutput is the output for the render_cow tool.
type RenderCowOutput struct {
	Name        string   `json:"name"                  jsonschema:"cow that was rendered"`
	Art         string   `json:"art"                   jsonschema:"rendered art"`
	Width       int      `json:"width"                 jsonschema:"display width in columns"`
	Height      int      `json:"height"                jsonschema:"number of lines"`
	Diagnostics []string `json:"diagnostics,omitempty" jsonschema:"non-fatal parse findings"`
}

func handleRenderCow(cat *catalog.Catalog) mcp.ToolHandlerFor[RenderCowInput, RenderCowOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input RenderCowInput) (*mcp.CallToolResult, RenderCowOutput, error) {
		entry, err := pickEntry(cat, input.Name, input.Random)
		if err != nil {
			return nil, RenderCowOutput{}, err
		}

		doc, err := entry.Load(parseOptions(input.Strict)...)
		if err != nil {
			return nil, RenderCowOutput{}, fmt.Errorf("loading %s: %w", entry.Name, err)
		}

		art := render.Render(doc, input.Message)
		if !input.Color {
			art = render.StripANSI(art)
		}
		width, height := render.Dimensions(art)

		return nil, RenderCowOutput{
			Name:        entry.Name,
			Art:         art,
			Width:       width,
			Height:      height,
			Diagnostics: diagnosticStrings(doc.Diagnostics),
		}, nil
	}
}

func pickEntry(cat *catalog.Catalog, name string, random bool) (catalog.Entry, error) {
	name = strings.TrimSpace(name)
	switch {
	case random && name != "":
		return catalog.Entry{}, errors.New("name and random cannot be combined")
	case random:
		return cat.Random(nil)
	case name == "":
		return catalog.Entry{}, errors.New("name is required unless random is true")
	default:
		return cat.Resolve(name)
	}
}

func parseOptions(strict bool) []cowfile.Option {
	if strict {
		return []cowfile.Option{cowfile.WithStrict()}
	}
	return nil
}

// --- inspect_cow tool ---

// InspectCowInput is the input for the inspect_cow tool.
type InspectCowInput struct {
	Name string `json:"name" jsonschema:"cow name from list_cows"`
}

// InspectCowOutput is the output for the inspect_cow tool.
type InspectCowOutput struct {
	Cow         CowSummary        `json:"cow"                   jsonschema:"catalog entry the template was loaded from"`
	Comments    []string          `json:"comments,omitempty"    jsonschema:"comment lines in file order"`
	Variables   map[string]string `json:"variables"             jsonschema:"declared variables, escapes re-encoded as in the file"`
	ArtTemplate string            `json:"art_template"          jsonschema:"art block before substitution"`
	ArtLines    int               `json:"art_lines"             jsonschema:"number of lines in the art block"`
	Diagnostics []string          `json:"diagnostics,omitempty" jsonschema:"non-fatal parse findings"`
}

func handleInspectCow(cat *catalog.Catalog) mcp.ToolHandlerFor[InspectCowInput, InspectCowOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input InspectCowInput) (*mcp.CallToolResult, InspectCowOutput, error) {
		entry, err := cat.Resolve(strings.TrimSpace(input.Name))
		if err != nil {
			return nil, InspectCowOutput{}, err
		}

		doc, err := entry.Load()
		if err != nil {
			return nil, InspectCowOutput{}, fmt.Errorf("loading %s: %w", entry.Name, err)
		}

		vars := make(map[string]string, len(doc.Variables))
		for name, value := range doc.Variables {
			vars[name] = cowfile.EncodeValue(value)
		}

		return nil, InspectCowOutput{
			Cow:         toSummary(entry),
			Comments:    doc.Comments,
			Variables:   vars,
			ArtTemplate: doc.ArtTemplate,
			ArtLines:    doc.ArtLines,
			Diagnostics: diagnosticStrings(doc.Diagnostics),
		}, nil
	}
}
