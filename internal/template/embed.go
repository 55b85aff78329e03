package template

import (
	"embed"
	"io/fs"
)

//go:embed templates
var embedded embed.FS

// Names of the embedded templates, relative to EmbeddedTemplates().
const (
	EditorConfigTemplate  = "editorconfig"
	GitIgnoreTemplate     = "gitignore"
	NuGetConfigTemplate   = "nuget.config.tmpl"
	ReadmeTemplate        = "readme.md.tmpl"
	DockerfileTemplate    = "Dockerfile.tmpl"
	PipelinesTemplate     = "bitbucket-pipelines.yml.tmpl"
	ProjectReadmeTemplate = "project-readme.md.tmpl"
	ClassTemplate         = "MyClass.cs.tmpl"
	InterfaceTemplate     = "IMyInterface.cs.tmpl"
)

// EmbeddedTemplates returns the template tree compiled into the binary,
// rooted so that template names have no directory prefix.
func EmbeddedTemplates() (fs.FS, error) {
	return fs.Sub(embedded, "templates")
}
