package config

import (
	"fmt"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// namespacePattern matches a dotted .NET namespace such as "CarMax" or "CarMax.Platform".
var namespacePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// supportedTestFrameworks lists the dotnet new test templates the generator accepts.
var supportedTestFrameworks = []string{"xunit", "nunit", "mstest"}

// Validate checks the configuration for correctness.
func Validate(cfg *Config) error {
	var errs []ValidationError

	if !namespacePattern.MatchString(cfg.Namespace) {
		errs = append(errs, ValidationError{
			Field:   "namespace",
			Message: "must be a dotted .NET identifier (example: CarMax)",
			Value:   cfg.Namespace,
			Wrapped: ErrInvalidConfig,
		})
	}

	errs = append(errs, validateToolchain(&cfg.Toolchain)...)
	errs = append(errs, validateTest(&cfg.Test)...)
	errs = append(errs, validateLayout(&cfg.Layout)...)

	errs = append(errs, validateSettings(&cfg.Settings)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

func validateToolchain(tc *ToolchainConfig) []ValidationError {
	var errs []ValidationError
	if strings.TrimSpace(tc.Binary) == "" {
		errs = append(errs, ValidationError{
			Field:   "toolchain.binary",
			Message: "required field is empty",
			Wrapped: ErrInvalidConfig,
		})
	}
	if _, err := semver.NewVersion(tc.MinVersion); err != nil {
		errs = append(errs, ValidationError{
			Field:   "toolchain.min_version",
			Message: "must be a semantic version",
			Value:   tc.MinVersion,
			Wrapped: ErrInvalidConfig,
		})
	}
	return errs
}

// validateSettings requires every settings field. The file names are
// joined onto the project directory, so they must be plain file names.
func validateSettings(sc *SettingsConfig) []ValidationError {
	var errs []ValidationError
	for _, f := range []struct{ field, value string }{
		{"settings.file", sc.File},
		{"settings.development_file", sc.DevelopmentFile},
	} {
		name := strings.TrimSpace(f.value)
		if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
			errs = append(errs, ValidationError{
				Field:   f.field,
				Message: "must be a file name inside the project directory",
				Value:   f.value,
				Wrapped: ErrInvalidConfig,
			})
		}
	}
	if strings.TrimSpace(sc.EnvironmentKey) == "" {
		errs = append(errs, ValidationError{
			Field:   "settings.environment_key",
			Message: "required field is empty",
			Wrapped: ErrInvalidConfig,
		})
	}
	return errs
}

func validateTest(tc *TestConfig) []ValidationError {
	var errs []ValidationError
	if !slices.Contains(supportedTestFrameworks, tc.Framework) {
		errs = append(errs, ValidationError{
			Field:   "test.framework",
			Message: fmt.Sprintf("must be one of: %s", strings.Join(supportedTestFrameworks, ", ")),
			Value:   tc.Framework,
			Wrapped: ErrInvalidConfig,
		})
	}
	if strings.TrimSpace(tc.MockingPackage) == "" {
		errs = append(errs, ValidationError{
			Field:   "test.mocking_package",
			Message: "required field is empty",
			Wrapped: ErrInvalidConfig,
		})
	}
	return errs
}

func validateLayout(lc *LayoutConfig) []ValidationError {
	var errs []ValidationError
	dirs := map[string]string{
		"layout.source_dir":     lc.SourceDir,
		"layout.tests_dir":      lc.TestsDir,
		"layout.sample_project": lc.SampleProject,
	}
	for _, field := range []string{"layout.source_dir", "layout.tests_dir", "layout.sample_project"} {
		dir := dirs[field]
		if dir == "" || filepath.IsAbs(dir) || strings.HasPrefix(filepath.Clean(dir), "..") {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: "must be a non-empty path relative to the workspace",
				Value:   dir,
				Wrapped: ErrInvalidConfig,
			})
		}
	}
	return errs
}
