package defs

// Workspace-level files written by the generator.
const (
	EditorConfig   = ".editorconfig"
	GitIgnore      = ".gitignore"
	NuGetConfig    = "nuget.config"
	ReadmeMD       = "readme.md"
	Dockerfile     = "Dockerfile"
	PipelinesYAML  = "bitbucket-pipelines.yml"
	SolutionSuffix = ".sln"
	ProjectSuffix  = ".csproj"
)

// Files generated by the dotnet project templates.
const (
	AppSettingsJSON            = "appsettings.json"
	AppSettingsDevelopmentJSON = "appsettings.Development.json"
)

// Sample files placed inside a project directory.
const (
	ProjectReadmeMD = "README.md"
	MyClassCS       = "MyClass.cs"
	MyInterfaceCS   = "IMyInterface.cs"
)

// Generator configuration file names.
const (
	ConfigFileName = ".dotnet-gen.yaml"
	EnvFileName    = ".env"
)

// Permissions for created files and directories.
const (
	DirPerm  = 0o755
	FilePerm = 0o644
)
