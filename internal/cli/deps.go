// Package cli provides the Cobra command tree and dependency injection
// wiring for dotnet-gen. This file defines the Dependencies struct
// (Composition Root) that wires the domain packages together.
package cli

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/carmax/dotnet-gen/internal/config"
	"github.com/carmax/dotnet-gen/internal/template"
	"github.com/carmax/dotnet-gen/internal/toolchain"
	"github.com/carmax/dotnet-gen/internal/ui"
)

// Dependencies holds the services used by CLI commands. This is the
// Composition Root: the only place where concrete types are instantiated.
// Commands access dependencies through interfaces only.
type Dependencies struct {
	Config    *config.Loader
	Runner    toolchain.Runner
	Templates fs.FS
	Headless  *ui.HeadlessManager
	Theme     *ui.Theme
	Logger    *slog.Logger
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies creates and wires all domain dependencies.
// It should be called once during application startup.
func InitDependencies() {
	logger := newLogger(io.Discard, false)

	deps = &Dependencies{
		Config:   config.NewLoader(logger),
		Runner:   toolchain.NewExecRunner(logger),
		Headless: ui.NewHeadlessManager(),
		Theme:    newTheme(false),
		Logger:   logger,
	}

	fsys, err := template.EmbeddedTemplates()
	if err != nil {
		logger.Error("load embedded templates", "error", err)
	}
	deps.Templates = fsys
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// SetLogger replaces the logger and rewires the services built with it.
// A Runner injected for testing is kept as is.
func (d *Dependencies) SetLogger(logger *slog.Logger) {
	d.Logger = logger
	d.Config = config.NewLoader(logger)
	if _, ok := d.Runner.(*toolchain.ExecRunner); ok {
		d.Runner = toolchain.NewExecRunner(logger)
	}
}

// requireDeps returns the dependencies or an error when they were never
// initialized.
func requireDeps() (*Dependencies, error) {
	if deps == nil {
		return nil, fmt.Errorf("dependencies not initialized")
	}
	if deps.Templates == nil {
		return nil, fmt.Errorf("embedded templates unavailable")
	}
	return deps, nil
}

// newLogger returns a text logger writing to w. Without verbose the level
// stays at Info; verbose enables Debug.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newTheme(noColor bool) *ui.Theme {
	return ui.NewTheme(ui.ThemeConfig{NoColor: noColor})
}
