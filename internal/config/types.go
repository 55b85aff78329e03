package config

// Config is the root configuration for a generator run.
type Config struct {
	// Namespace is the organizational token prefixed to derived project names.
	Namespace string          `yaml:"namespace"`
	Toolchain ToolchainConfig `yaml:"toolchain"`
	Test      TestConfig      `yaml:"test"`
	Layout    LayoutConfig    `yaml:"layout"`
	Settings  SettingsConfig  `yaml:"settings"`
	NuGet     NuGetConfig     `yaml:"nuget"`
}

// ToolchainConfig selects the external project-management CLI.
type ToolchainConfig struct {
	Binary     string `yaml:"binary"`
	MinVersion string `yaml:"min_version"`
}

// TestConfig configures the optional unit-test project.
type TestConfig struct {
	Framework      string `yaml:"framework"`
	MockingPackage string `yaml:"mocking_package"`
}

// LayoutConfig configures where projects are placed inside the workspace.
type LayoutConfig struct {
	SourceDir     string `yaml:"source_dir"`
	TestsDir      string `yaml:"tests_dir"`
	TestSuffix    string `yaml:"test_suffix"`
	SampleProject string `yaml:"sample_project"`
}

// SettingsConfig describes the post-creation settings merge.
type SettingsConfig struct {
	File             string `yaml:"file"`
	DevelopmentFile  string `yaml:"development_file"`
	EnvironmentKey   string `yaml:"environment_key"`
	EnvironmentValue string `yaml:"environment_value"`
}

// NuGetConfig holds NuGet feed defaults offered by the wizard.
type NuGetConfig struct {
	DefaultSource string `yaml:"default_source"`
}
