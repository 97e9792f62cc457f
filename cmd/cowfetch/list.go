package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/cowfetch/internal/catalog"
	"github.com/gorewood/cowfetch/internal/output"
)

// listResult is the --json form of the catalog listing.
type listResult struct {
	Count int             `json:"count"`
	Cows  []catalog.Entry `json:"cows"`
}

// newListCmd creates the list command.
func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available cows grouped by where they were found",
		Long: `List every cow visible to cowfetch, grouped by source in lookup order.

A cow marked "overrides" hides a cow of the same name further down the
lookup order.

Examples:
  cowfetch list          # Grouped listing
  cowfetch list --json   # Names, origins and paths as JSON`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, a)
		},
	}
}

// listEntries returns the catalog listing; an empty catalog is not an error.
func listEntries(a *app) (*catalog.Catalog, []catalog.Entry, error) {
	cat := a.newCatalog(a.cfg)
	entries, err := cat.List()
	if errors.Is(err, catalog.ErrCatalogUnavailable) {
		return cat, nil, nil
	}
	if err != nil {
		return nil, nil, output.NewFailureWithCause(err.Error(), err)
	}
	return cat, entries, nil
}

// runListNames prints one name per line for --list-cows.
func runListNames(cmd *cobra.Command, a *app) error {
	_, entries, err := listEntries(a)
	if err != nil {
		return err
	}

	printer := a.printer(cmd)
	if printer.IsJSON() {
		return writeListJSON(printer, entries)
	}
	if len(entries) == 0 {
		printer.Println("No cows found.")
		return nil
	}
	for _, entry := range entries {
		printer.Println(entry.Name)
	}
	return nil
}

// runList prints the grouped listing.
func runList(cmd *cobra.Command, a *app) error {
	cat, entries, err := listEntries(a)
	if err != nil {
		return err
	}

	printer := a.printer(cmd)
	if printer.IsJSON() {
		return writeListJSON(printer, entries)
	}
	if len(entries) == 0 {
		printer.Println("No cows found.")
		return nil
	}

	for _, origin := range originOrder(cat) {
		rows := groupRows(entries, origin)
		if len(rows) == 0 {
			continue
		}
		printer.Section(fmt.Sprintf("%s (%d)", origin, len(rows)))
		printer.Table([]string{"NAME", "PATH", "NOTE"}, rows)
	}
	return nil
}

func writeListJSON(printer *output.Printer, entries []catalog.Entry) error {
	if entries == nil {
		entries = []catalog.Entry{}
	}
	return printer.WriteJSON(listResult{Count: len(entries), Cows: entries})
}

// originOrder returns each source origin once, in lookup order.
func originOrder(cat *catalog.Catalog) []string {
	var origins []string
	seen := make(map[string]bool)
	for _, src := range cat.Sources() {
		if seen[src.Origin] {
			continue
		}
		seen[src.Origin] = true
		origins = append(origins, src.Origin)
	}
	return origins
}

func groupRows(entries []catalog.Entry, origin string) [][]string {
	var rows [][]string
	for _, entry := range entries {
		if entry.Origin != origin {
			continue
		}
		note := ""
		if entry.Overrides != "" {
			note = "overrides " + entry.Overrides
		}
		rows = append(rows, []string{entry.Name, entry.Path, note})
	}
	return rows
}

// noArgs rejects positional arguments with a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return output.NewUsageError(fmt.Sprintf("%s takes no arguments, got %q", cmd.CommandPath(), args[0]))
	}
	return nil
}

// exactlyOneArg requires a single positional argument named what.
func exactlyOneArg(what string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return output.NewUsageError(fmt.Sprintf("%s requires exactly one %s", cmd.CommandPath(), what)).
				WithHint(fmt.Sprintf("Run '%s --help' for usage.", cmd.CommandPath()))
		}
		return nil
	}
}
