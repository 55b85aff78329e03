package project

import (
	"path"

	"github.com/carmax/dotnet-gen/internal/config"
	"github.com/carmax/dotnet-gen/internal/defs"
)

// Layout fixes where generated artifacts go. Paths are relative to the
// workspace root and use forward slashes.
type Layout struct {
	SourceDir     string
	TestsDir      string
	TestSuffix    string
	SampleProject string

	SettingsFile     string
	DevSettingsFile  string
	EnvironmentKey   string
	EnvironmentValue string

	TestFramework  string
	MockingPackage string
}

// NewLayout derives a Layout from the generator configuration.
func NewLayout(cfg *config.Config) Layout {
	return Layout{
		SourceDir:        cfg.Layout.SourceDir,
		TestsDir:         cfg.Layout.TestsDir,
		TestSuffix:       cfg.Layout.TestSuffix,
		SampleProject:    cfg.Layout.SampleProject,
		SettingsFile:     cfg.Settings.File,
		DevSettingsFile:  cfg.Settings.DevelopmentFile,
		EnvironmentKey:   cfg.Settings.EnvironmentKey,
		EnvironmentValue: cfg.Settings.EnvironmentValue,
		TestFramework:    cfg.Test.Framework,
		MockingPackage:   cfg.Test.MockingPackage,
	}
}

// DefaultLayout is the Layout of the compiled-in configuration.
func DefaultLayout() Layout {
	return NewLayout(config.NewDefaultConfig())
}

// SolutionFile returns the solution file name for name.
func (l Layout) SolutionFile(name string) string {
	return name + defs.SolutionSuffix
}

// ProjectDir returns the main project directory, e.g. src/CarMax.Orders.
func (l Layout) ProjectDir(name string) string {
	return path.Join(l.SourceDir, name)
}

// ProjectFile returns the main project file.
func (l Layout) ProjectFile(name string) string {
	return path.Join(l.ProjectDir(name), name+defs.ProjectSuffix)
}

// TestProjectName returns the unit test project name, e.g. CarMax.Orders.Tests.Unit.
func (l Layout) TestProjectName(name string) string {
	return name + l.TestSuffix
}

// TestProjectDir returns the unit test project directory.
func (l Layout) TestProjectDir(name string) string {
	return path.Join(l.TestsDir, l.TestProjectName(name))
}

// TestProjectFile returns the unit test project file.
func (l Layout) TestProjectFile(name string) string {
	return path.Join(l.TestProjectDir(name), l.TestProjectName(name)+defs.ProjectSuffix)
}

// SampleProjectFile returns the project file of the console sample.
func (l Layout) SampleProjectFile() string {
	return path.Join(l.SampleProject, l.SampleProject+defs.ProjectSuffix)
}
