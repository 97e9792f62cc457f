package catalog

import (
	"os"
	"path/filepath"
	"strings"
)

// ProjectDir is the project-local template directory, relative to the
// working directory.
const ProjectDir = ".cowfetch/cows"

// Options selects the directories searched by Default.
type Options struct {
	// CowPath is a list of directories in $COWPATH form (OS path-list separator).
	CowPath string
	// ExtraDirs come from the config file's cow_path.
	ExtraDirs []string
	// GlobalDir is the user's global template directory; empty skips it.
	GlobalDir string
	// NoProject skips the project-local directory.
	NoProject bool
}

// Default builds the standard catalog: project, path directories, global,
// then built-ins.
func Default(opts Options) *Catalog {
	var sources []Source

	if !opts.NoProject {
		sources = append(sources, DirSource(OriginProject, ProjectDir))
	}

	for _, dir := range pathDirs(opts.CowPath, opts.ExtraDirs) {
		sources = append(sources, DirSource(OriginPath, dir))
	}

	if opts.GlobalDir != "" {
		sources = append(sources, DirSource(OriginGlobal, opts.GlobalDir))
	}

	sources = append(sources, Builtin())
	return New(sources...)
}

// pathDirs merges $COWPATH entries and configured directories, expanding a
// leading ~ and dropping empties and duplicates.
func pathDirs(cowPath string, extra []string) []string {
	var candidates []string
	if cowPath != "" {
		candidates = append(candidates, filepath.SplitList(cowPath)...)
	}
	candidates = append(candidates, extra...)

	seen := make(map[string]bool)
	dirs := make([]string, 0, len(candidates))
	for _, dir := range candidates {
		dir = expandHome(strings.TrimSpace(dir))
		if dir == "" || seen[dir] {
			continue
		}
		seen[dir] = true
		dirs = append(dirs, dir)
	}
	return dirs
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(dir string) string {
	if dir != "~" && !strings.HasPrefix(dir, "~/") {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return dir
	}
	return filepath.Join(home, strings.TrimPrefix(dir, "~"))
}
