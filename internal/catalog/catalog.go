// Package catalog finds .cow templates by name.
//
// Templates are resolved in order, first match wins:
//  1. .cowfetch/cows/<name>.cow (project-local)
//  2. each directory on $COWPATH and in the config file's cow_path
//  3. <config dir>/cows/<name>.cow (user global)
//  4. Built-in templates (embedded in binary)
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gorewood/cowfetch/internal/cowfile"
)

// Extension is the file suffix of template files.
const Extension = ".cow"

// Origin labels used for sources.
const (
	OriginProject = "project"
	OriginPath    = "path"
	OriginGlobal  = "global"
	OriginBuiltin = "built-in"
)

// ErrCatalogUnavailable is returned when no source provides any template.
var ErrCatalogUnavailable = errors.New("no cows available")

// ErrUnknownName is returned when a requested name is not in the catalog.
var ErrUnknownName = errors.New("cow not found")

// Source is one place templates are listed from.
type Source struct {
	Origin string
	// Root is shown to users and used to build entry paths. For directory
	// sources it is the directory; for built-ins it is "builtin:".
	Root string
	FS   fs.FS
}

// DirSource returns a source backed by a directory on disk.
func DirSource(origin, dir string) Source {
	return Source{Origin: origin, Root: dir, FS: os.DirFS(dir)}
}

// Entry is a template visible in the catalog.
type Entry struct {
	Name   string `json:"name"`
	Origin string `json:"origin"`
	// Path is the resolved file path (builtin:<file> for embedded templates).
	Path string `json:"path"`
	// Overrides names the origin of a lower-precedence template this one hides.
	Overrides string `json:"overrides,omitempty"`

	fsys fs.FS
	file string
}

// Load parses the entry's template file.
func (e Entry) Load(opts ...cowfile.Option) (*cowfile.Document, error) {
	if e.fsys == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownName, e.Name)
	}
	opts = append([]cowfile.Option{cowfile.WithSource(e.Path)}, opts...)
	return cowfile.ParseFile(e.fsys, e.file, opts...)
}

// Catalog lists and resolves templates across sources.
type Catalog struct {
	sources []Source
}

// New creates a catalog over sources, highest precedence first.
func New(sources ...Source) *Catalog {
	return &Catalog{sources: sources}
}

// Sources returns the catalog's sources in precedence order.
func (c *Catalog) Sources() []Source {
	return slices.Clone(c.sources)
}

// List returns every visible template sorted by name. Sources that cannot be
// read are skipped. ErrCatalogUnavailable is returned if nothing is found.
func (c *Catalog) List() ([]Entry, error) {
	seen := make(map[string]int)
	var entries []Entry

	for _, src := range c.sources {
		found, err := listSource(src)
		if err != nil {
			continue // directory might not exist
		}
		for _, entry := range found {
			if idx, exists := seen[entry.Name]; exists {
				if entries[idx].Overrides == "" {
					entries[idx].Overrides = entry.Origin
				}
				continue
			}
			seen[entry.Name] = len(entries)
			entries = append(entries, entry)
		}
	}

	if len(entries) == 0 {
		return nil, ErrCatalogUnavailable
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Name, b.Name)
	})
	return entries, nil
}

// Names returns the sorted names of all visible templates.
func (c *Catalog) Names() ([]string, error) {
	entries, err := c.List()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name)
	}
	return names, nil
}

// Resolve finds the highest-precedence template called name.
func (c *Catalog) Resolve(name string) (Entry, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}

	file := name + Extension
	for _, src := range c.sources {
		if src.FS == nil {
			continue
		}
		info, err := fs.Stat(src.FS, file)
		if err != nil || info.IsDir() {
			continue
		}
		return newEntry(src, name, file), nil
	}

	if _, err := c.List(); errors.Is(err, ErrCatalogUnavailable) {
		return Entry{}, err
	}
	return Entry{}, fmt.Errorf("%w: %q", ErrUnknownName, name)
}

// Random picks a template uniformly from List. A nil r uses the
// package-level generator.
func (c *Catalog) Random(r *rand.Rand) (Entry, error) {
	entries, err := c.List()
	if err != nil {
		return Entry{}, err
	}

	var idx int
	if r == nil {
		idx = rand.IntN(len(entries))
	} else {
		idx = r.IntN(len(entries))
	}
	return c.Resolve(entries[idx].Name)
}

// listSource lists the templates at the top level of one source.
func listSource(src Source) ([]Entry, error) {
	if src.FS == nil {
		return nil, errors.New("no filesystem")
	}

	dirEntries, err := fs.ReadDir(src.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", src.Root, err)
	}

	var entries []Entry
	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() || !strings.HasSuffix(dirEntry.Name(), Extension) {
			continue
		}
		name := strings.TrimSuffix(dirEntry.Name(), Extension)
		if name == "" {
			continue
		}
		entries = append(entries, newEntry(src, name, dirEntry.Name()))
	}
	return entries, nil
}

func newEntry(src Source, name, file string) Entry {
	return Entry{
		Name:   name,
		Origin: src.Origin,
		Path:   joinRoot(src.Root, file),
		fsys:   src.FS,
		file:   file,
	}
}

// joinRoot builds a display path. Roots ending in ':' are URI-like prefixes.
func joinRoot(root, file string) string {
	switch {
	case root == "":
		return file
	case strings.HasSuffix(root, ":"):
		return root + path.Clean(file)
	default:
		return filepath.Join(root, file)
	}
}
