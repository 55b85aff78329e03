package models

// SampleFile identifies an optional starter file.
type SampleFile string

const (
	SampleReadme     SampleFile = "readme"
	SampleClass      SampleFile = "classFile"
	SampleInterface  SampleFile = "interfaceFile"
	SampleDockerfile SampleFile = "dockerfile"
	SamplePipelines  SampleFile = "pipelines"
)

// ValidSampleFiles returns all sample files in wizard order.
func ValidSampleFiles() []SampleFile {
	return []SampleFile{SampleReadme, SampleClass, SampleInterface, SampleDockerfile, SamplePipelines}
}

// IsValid checks if the sample file is known.
func (s SampleFile) IsValid() bool {
	switch s {
	case SampleReadme, SampleClass, SampleInterface, SampleDockerfile, SamplePipelines:
		return true
	}
	return false
}

// Label returns the file name shown in the wizard.
func (s SampleFile) Label() string {
	switch s {
	case SampleReadme:
		return "README.md"
	case SampleClass:
		return "MyClass.cs"
	case SampleInterface:
		return "IMyInterface.cs"
	case SampleDockerfile:
		return "Dockerfile"
	case SamplePipelines:
		return "Bitbucket-pipelines"
	}
	return string(s)
}

// ProjectScoped reports whether the file lives inside the project directory
// rather than at the workspace root.
func (s SampleFile) ProjectScoped() bool {
	switch s {
	case SampleReadme, SampleClass, SampleInterface:
		return true
	}
	return false
}
