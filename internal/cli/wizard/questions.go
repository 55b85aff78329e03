package wizard

import (
	"errors"
	"path/filepath"
	"slices"
	"strings"

	"github.com/carmax/dotnet-gen/pkg/models"
)

// DefaultQuestions returns the questions for a new workspace.
// The questions follow this order:
// 1. Project name (default derived from the workspace directory)
// 2. Solution name (default: the project name)
// 3. Project type
// 4. Sample files (only when a project is created)
// 5. Unit test project (only when a project is created)
// 6. Editor configuration
// 7. Private NuGet feed
// 8. NuGet feed URL (only when a feed is requested)
func DefaultQuestions(workspaceRoot, namespace string) []Question {
	hasProject := func(a Answers) bool {
		return a.ProjectType().HasProject()
	}

	return []Question{
		// 1. Project Name
		{
			Key:         KeyProjectName,
			Kind:        KindInput,
			Title:       "Project name",
			Description: "Used for the project directory, assembly and root namespace.",
			Default:     DeriveProjectName(workspaceName(workspaceRoot), namespace),
			Required:    true,
			Validate:    validateIdentifier,
		},
		// 2. Solution Name
		{
			Key:         KeySolutionName,
			Kind:        KindInput,
			Title:       "Solution name",
			Description: "Name of the .sln file. Press Enter to reuse the project name.",
			DefaultFrom: KeyProjectName,
			Required:    true,
			Validate:    validateIdentifier,
		},
		// 3. Project Type
		{
			Key:         KeyProjectType,
			Kind:        KindSelect,
			Title:       "Project type",
			Description: "The dotnet template used for the main project.",
			Options:     projectTypeOptions(),
			Default:     string(models.ProjectTypeWebAPI),
			Required:    true,
		},
		// 4. Sample Files (conditional)
		{
			Key:         KeyFiles,
			Kind:        KindMultiSelect,
			Title:       "Which sample files would you like to include?",
			Description: "Space to toggle, Enter to confirm.",
			Options:     sampleFileOptions(),
			Default:     []string{string(models.SampleReadme)},
			When:        hasProject,
		},
		// 5. Unit Tests (conditional)
		{
			Key:         KeyCreateUnitTests,
			Kind:        KindConfirm,
			Title:       "Create a unit test project?",
			Description: "Adds an xunit project under tests/ referencing the main project.",
			Default:     true,
			When:        hasProject,
		},
		// 6. Editor Config
		{
			Key:     KeyCreateEditorConfig,
			Kind:    KindConfirm,
			Title:   "Add an .editorconfig?",
			Default: true,
		},
		// 7. NuGet Config
		{
			Key:         KeyCreateNugetConfig,
			Kind:        KindConfirm,
			Title:       "Add a private NuGet feed?",
			Description: "Writes a nuget.config with an extra package source.",
			Default:     false,
		},
		// 8. NuGet Source (conditional)
		{
			Key:         KeyNugetSource,
			Kind:        KindInput,
			Title:       "NuGet feed URL",
			Description: "e.g. https://pkgs.example.com/nuget/v3/index.json",
			Required:    true,
			When: func(a Answers) bool {
				want, _ := a.Bool(KeyCreateNugetConfig)
				return want
			},
		},
	}
}

// SampleQuestions returns the questions for the console sample workspace.
func SampleQuestions() []Question {
	return []Question{
		{
			Key:     KeyFiles,
			Kind:    KindMultiSelect,
			Title:   "Which sample files would you like to include?",
			Options: sampleFileOptions(),
			Default: []string{string(models.SampleReadme)},
		},
	}
}

// WithDefault returns a copy of questions with the default of key replaced.
func WithDefault(questions []Question, key string, value any) []Question {
	out := slices.Clone(questions)
	for i := range out {
		if out[i].Key == key {
			out[i].Default = value
		}
	}
	return out
}

// workspaceName returns the directory name of root, or "" for a
// filesystem root.
func workspaceName(root string) string {
	name := filepath.Base(filepath.Clean(root))
	if name == "." || name == string(filepath.Separator) {
		return ""
	}
	return name
}

func projectTypeOptions() []Option {
	types := models.ValidProjectTypes()
	opts := make([]Option, len(types))
	for i, pt := range types {
		opts[i] = Option{Label: pt.Label(), Value: string(pt), Desc: pt.Template()}
	}
	return opts
}

func sampleFileOptions() []Option {
	files := models.ValidSampleFiles()
	opts := make([]Option, len(files))
	for i, f := range files {
		opts[i] = Option{Label: f.Label(), Value: string(f)}
	}
	return opts
}

// validateIdentifier rejects names that cannot be used as a path segment.
func validateIdentifier(s string) error {
	if strings.ContainsAny(s, `/\:*?"<>|`) {
		return errors.New("must not contain path separators or reserved characters")
	}
	if strings.HasPrefix(s, ".") || strings.HasSuffix(s, ".") {
		return errors.New("must not start or end with a dot")
	}
	if strings.ContainsFunc(s, func(r rune) bool { return r == ' ' || r == '\t' }) {
		return errors.New("must not contain whitespace")
	}
	return nil
}
