// Package config provides generator configuration for dotnet-gen.
// It loads an optional YAML file from the workspace, expands ${VAR}
// references, applies DOTNET_GEN_* overrides, and validates the result.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Sentinel errors for configuration operations.
var (
	// ErrConfigNotFound indicates an explicitly requested configuration file does not exist.
	ErrConfigNotFound = errors.New("config: configuration file not found")

	// ErrInvalidConfig indicates the configuration is invalid.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrInvalidYAML indicates invalid YAML syntax in a configuration file.
	ErrInvalidYAML = errors.New("config: invalid YAML syntax")

	// ErrInvalidEnvFile indicates the workspace .env file could not be parsed.
	ErrInvalidEnvFile = errors.New("config: invalid .env file")
)

// ValidationError reports one invalid configuration field. Field is the
// YAML path of the value, e.g. "toolchain.min_version".
type ValidationError struct {
	Field   string
	Message string
	Value   any
	Wrapped error
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s (got %q)", e.Field, e.Message, fmt.Sprint(e.Value))
}

// Unwrap returns the sentinel the error was created with.
func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}

// ValidationErrors collects every problem found by Validate.
type ValidationErrors struct {
	Errors []ValidationError
}

func (e *ValidationErrors) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "invalid configuration (%d problem", len(e.Errors))
	if len(e.Errors) != 1 {
		b.WriteString("s")
	}
	b.WriteString(")")
	for _, ve := range e.Errors {
		b.WriteString("\n  - ")
		b.WriteString(ve.Error())
	}
	return b.String()
}

// Is matches ErrInvalidConfig and any sentinel wrapped by a contained error.
func (e *ValidationErrors) Is(target error) bool {
	if target == ErrInvalidConfig {
		return true
	}
	return slices.ContainsFunc(e.Errors, func(ve ValidationError) bool {
		return ve.Wrapped != nil && errors.Is(ve.Wrapped, target)
	})
}
