package config

// Default value constants.
const (
	DefaultNamespace = "CarMax"

	DefaultDotNetBinary     = "dotnet"
	DefaultDotNetMinVersion = "6.0.100"

	DefaultTestFramework  = "xunit"
	DefaultMockingPackage = "Moq"

	DefaultSourceDir     = "src"
	DefaultTestsDir      = "tests"
	DefaultTestSuffix    = ".Tests.Unit"
	DefaultSampleProject = "SampleProject"

	DefaultSettingsFile            = "appsettings.json"
	DefaultDevelopmentSettingsFile = "appsettings.Development.json"
	DefaultEnvironmentKey          = "Environment"
	DefaultEnvironmentValue        = "local"
)

// NewDefaultConfig returns a Config populated with compiled defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Namespace: DefaultNamespace,
		Toolchain: ToolchainConfig{
			Binary:     DefaultDotNetBinary,
			MinVersion: DefaultDotNetMinVersion,
		},
		Test: TestConfig{
			Framework:      DefaultTestFramework,
			MockingPackage: DefaultMockingPackage,
		},
		Layout: LayoutConfig{
			SourceDir:     DefaultSourceDir,
			TestsDir:      DefaultTestsDir,
			TestSuffix:    DefaultTestSuffix,
			SampleProject: DefaultSampleProject,
		},
		Settings: SettingsConfig{
			File:             DefaultSettingsFile,
			DevelopmentFile:  DefaultDevelopmentSettingsFile,
			EnvironmentKey:   DefaultEnvironmentKey,
			EnvironmentValue: DefaultEnvironmentValue,
		},
	}
}
