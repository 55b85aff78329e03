package models

// ProjectType represents the archetype of the main project.
type ProjectType string

const (
	ProjectTypeWebAPI  ProjectType = "webapi"
	ProjectTypeWebApp  ProjectType = "webapp"
	ProjectTypeMVC     ProjectType = "mvc"
	ProjectTypeConsole ProjectType = "console"
	ProjectTypeNone    ProjectType = "none"
)

// ValidProjectTypes returns all project types in wizard order.
func ValidProjectTypes() []ProjectType {
	return []ProjectType{
		ProjectTypeWebAPI,
		ProjectTypeWebApp,
		ProjectTypeMVC,
		ProjectTypeConsole,
		ProjectTypeNone,
	}
}

// IsValid checks if the project type is one of the known archetypes.
func (p ProjectType) IsValid() bool {
	switch p {
	case ProjectTypeWebAPI, ProjectTypeWebApp, ProjectTypeMVC, ProjectTypeConsole, ProjectTypeNone:
		return true
	}
	return false
}

// HasProject reports whether a main project is created for this type.
func (p ProjectType) HasProject() bool {
	return p.IsValid() && p != ProjectTypeNone
}

// Template returns the dotnet new short name for the archetype.
// Returns an empty string for ProjectTypeNone and unknown values.
func (p ProjectType) Template() string {
	if !p.HasProject() {
		return ""
	}
	return string(p)
}

// Label returns a human-readable name for the archetype.
func (p ProjectType) Label() string {
	switch p {
	case ProjectTypeWebAPI:
		return "Service API"
	case ProjectTypeWebApp:
		return "Web UI"
	case ProjectTypeMVC:
		return "Web MVC"
	case ProjectTypeConsole:
		return "Console App"
	case ProjectTypeNone:
		return "None"
	}
	return string(p)
}

// HasAppSettings reports whether the dotnet template generates appsettings files.
func (p ProjectType) HasAppSettings() bool {
	switch p {
	case ProjectTypeWebAPI, ProjectTypeWebApp, ProjectTypeMVC:
		return true
	}
	return false
}
