package wizard

import (
	"maps"
	"slices"

	"github.com/carmax/dotnet-gen/pkg/models"
)

// Answers is the immutable result of a collection run. Values are string,
// bool or []string depending on the question kind. Keys of skipped
// questions are absent.
type Answers struct {
	values map[string]any
}

// NewAnswers copies values into a new Answers.
func NewAnswers(values map[string]any) Answers {
	copied := make(map[string]any, len(values))
	for k, v := range values {
		if ss, ok := v.([]string); ok {
			v = slices.Clone(ss)
		}
		copied[k] = v
	}
	return Answers{values: copied}
}

// Has reports whether key was answered.
func (a Answers) Has(key string) bool {
	_, ok := a.values[key]
	return ok
}

// Len returns the number of answered questions.
func (a Answers) Len() int {
	return len(a.values)
}

// Keys returns the answered keys in sorted order.
func (a Answers) Keys() []string {
	return slices.Sorted(maps.Keys(a.values))
}

// String returns a string answer.
func (a Answers) String(key string) (string, bool) {
	v, ok := a.values[key].(string)
	return v, ok
}

// Bool returns a yes/no answer.
func (a Answers) Bool(key string) (bool, bool) {
	v, ok := a.values[key].(bool)
	return v, ok
}

// Strings returns a copy of a multiple-choice answer.
func (a Answers) Strings(key string) ([]string, bool) {
	v, ok := a.values[key].([]string)
	if !ok {
		return nil, false
	}
	return slices.Clone(v), true
}

// Map returns a copy of all answers.
func (a Answers) Map() map[string]any {
	return NewAnswers(a.values).values
}

// ProjectName returns the projectName answer.
func (a Answers) ProjectName() string {
	v, _ := a.String(KeyProjectName)
	return v
}

// SolutionName returns the solutionName answer, falling back to the
// project name.
func (a Answers) SolutionName() string {
	if v, ok := a.String(KeySolutionName); ok && v != "" {
		return v
	}
	return a.ProjectName()
}

// ProjectType returns the chosen archetype. A missing answer is
// models.ProjectTypeNone.
func (a Answers) ProjectType() models.ProjectType {
	v, ok := a.String(KeyProjectType)
	if !ok {
		return models.ProjectTypeNone
	}
	return models.ProjectType(v)
}

// SampleFiles returns the requested sample files in catalog order.
func (a Answers) SampleFiles() []models.SampleFile {
	selected, _ := a.Strings(KeyFiles)
	var files []models.SampleFile
	for _, f := range models.ValidSampleFiles() {
		if slices.Contains(selected, string(f)) {
			files = append(files, f)
		}
	}
	return files
}

// WantsUnitTests reports whether a test project was requested.
func (a Answers) WantsUnitTests() bool {
	v, _ := a.Bool(KeyCreateUnitTests)
	return v
}

// WantsEditorConfig reports whether an .editorconfig was requested.
func (a Answers) WantsEditorConfig() bool {
	v, _ := a.Bool(KeyCreateEditorConfig)
	return v
}

// NugetSource returns the private feed URL when a nuget.config was requested.
func (a Answers) NugetSource() (string, bool) {
	if want, _ := a.Bool(KeyCreateNugetConfig); !want {
		return "", false
	}
	return a.String(KeyNugetSource)
}
