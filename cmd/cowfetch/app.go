package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/gorewood/cowfetch/internal/catalog"
	"github.com/gorewood/cowfetch/internal/config"
	"github.com/gorewood/cowfetch/internal/cowfile"
	"github.com/gorewood/cowfetch/internal/logging"
	"github.com/gorewood/cowfetch/internal/output"
)

// listHint follows every unknown-name error.
const listHint = "Use --list-cows to see the available names."

// app carries state resolved once per invocation and shared by all commands.
type app struct {
	cfg    *config.Config
	logger *slog.Logger

	// newCatalog builds the catalog for cfg; tests replace it.
	newCatalog func(cfg *config.Config) *catalog.Catalog
	// rng drives random selection; nil uses the global generator.
	rng *rand.Rand
}

func newApp() *app {
	return &app{
		cfg:        config.Default(),
		logger:     logging.NewNop(),
		newCatalog: defaultCatalog,
	}
}

// defaultCatalog searches the project, $COWPATH, configured and global
// directories before the built-ins.
func defaultCatalog(cfg *config.Config) *catalog.Catalog {
	return catalog.Default(catalog.Options{
		CowPath:   os.Getenv("COWPATH"),
		ExtraDirs: cfg.CowPath,
		GlobalDir: config.CowsDir(),
	})
}

// setup validates persistent flags, loads the config file and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	levelName, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return output.NewUsageError(err.Error())
	}
	a.logger = logging.New(cmd.ErrOrStderr(), level)

	if mode, _ := cmd.Flags().GetString("color"); !output.ValidColorMode(mode) {
		return output.NewUsageError(fmt.Sprintf("invalid --color %q (want auto, always or never)", mode))
	}

	cfg, err := config.Load()
	if err != nil {
		return output.NewFailureWithCause(err.Error(), err)
	}
	if !output.ValidColorMode(cfg.Color) {
		a.logger.Warn("ignoring invalid color in config", "path", cfg.Path, "color", cfg.Color)
		cfg.Color = output.ColorAuto
	}
	a.cfg = cfg
	a.logger.Debug("config loaded", "path", cfg.Path, "default_cow", cfg.DefaultCow)
	return nil
}

// colorMode returns --color when given, else the configured mode.
func (a *app) colorMode(cmd *cobra.Command) string {
	if flag := lookupFlag(cmd, "color"); flag != nil && flag.Changed {
		return flag.Value.String()
	}
	return a.cfg.Color
}

// useColor reports whether output written to w is styled.
func (a *app) useColor(cmd *cobra.Command, w io.Writer) bool {
	return output.ResolveColorMode(a.colorMode(cmd), output.IsTTY(w))
}

// strict returns --strict when given, else the configured policy.
func (a *app) strict(cmd *cobra.Command) bool {
	if flag := lookupFlag(cmd, "strict"); flag != nil && flag.Changed {
		return flag.Value.String() == "true"
	}
	return a.cfg.Strict
}

func (a *app) parseOptions(cmd *cobra.Command) []cowfile.Option {
	if a.strict(cmd) {
		return []cowfile.Option{cowfile.WithStrict()}
	}
	return nil
}

func (a *app) printer(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), a.useColor(cmd, cmd.OutOrStdout())).
		WithStderr(cmd.ErrOrStderr())
}

// reportError prints err the way the failing command would have.
func (a *app) reportError(cmd *cobra.Command, w io.Writer, err error) {
	output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), a.useColor(cmd, w)).
		WithStderr(w).
		Error(err)
}

// logDiagnostics records non-fatal parse findings.
func (a *app) logDiagnostics(doc *cowfile.Document) {
	for _, d := range doc.Diagnostics {
		a.logger.Warn("template diagnostic",
			"source", d.Source, "line", d.Line, "kind", string(d.Kind), "text", d.Text)
	}
}

// catalogError converts catalog failures into CLI errors.
func catalogError(name string, err error) error {
	switch {
	case errors.Is(err, catalog.ErrUnknownName):
		return output.NewFailureWithCause(fmt.Sprintf("cow %q not found", name), err).WithHint(listHint)
	case errors.Is(err, catalog.ErrCatalogUnavailable):
		return output.NewFailureWithCause("no cows available", err).
			WithHint(fmt.Sprintf("Add .cow files to %s or a directory on $COWPATH.", cowsDirHint()))
	default:
		return output.NewFailureWithCause(err.Error(), err)
	}
}

// loadError converts template loading failures into CLI errors.
func loadError(err error) error {
	if errors.Is(err, cowfile.ErrMalformedTemplate) {
		return output.NewFailureWithCause(err.Error(), err).
			WithHint("Close the art block with a line containing only EOC, or drop --strict.")
	}
	return output.NewFailureWithCause(fmt.Sprintf("could not load cow: %v", err), err)
}

func cowsDirHint() string {
	if dir := config.CowsDir(); dir != "" {
		return dir
	}
	return catalog.ProjectDir
}
