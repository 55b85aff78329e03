package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/drone/envsubst"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/carmax/dotnet-gen/internal/defs"
)

// Environment variables that override file values.
const (
	EnvConfigFile     = "DOTNET_GEN_CONFIG"
	EnvNamespace      = "DOTNET_GEN_NAMESPACE"
	EnvDotNetBinary   = "DOTNET_GEN_DOTNET"
	EnvMockingPackage = "DOTNET_GEN_MOCKING_PACKAGE"
	EnvNuGetSource    = "DOTNET_GEN_NUGET_SOURCE"
)

// Loader reads generator configuration for a workspace.
type Loader struct {
	logger *slog.Logger
	getenv func(string) string
}

// NewLoader creates a Loader. A nil logger discards output.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{logger: logger, getenv: os.Getenv}
}

// Load builds the configuration for the given workspace root.
//
// Precedence, lowest to highest: compiled defaults, the YAML file
// (explicitPath, $DOTNET_GEN_CONFIG, or <workspace>/.dotnet-gen.yaml),
// then DOTNET_GEN_* variables. Variables are looked up in the process
// environment first and in <workspace>/.env second; the same lookup
// expands ${VAR} references in the YAML file before it is parsed.
func (l *Loader) Load(workspace, explicitPath string) (*Config, error) {
	workspace = filepath.Clean(workspace)
	cfg := NewDefaultConfig()

	dotenv, err := readDotEnv(filepath.Join(workspace, defs.EnvFileName))
	if err != nil {
		return nil, err
	}
	lookup := func(key string) string {
		if v := l.getenv(key); v != "" {
			return v
		}
		return dotenv[key]
	}

	path, required := explicitPath, explicitPath != ""
	if path == "" {
		if envPath := lookup(EnvConfigFile); envPath != "" {
			path, required = envPath, true
		} else {
			path = filepath.Join(workspace, defs.ConfigFileName)
		}
	}

	loaded, err := loadYAMLFile(path, lookup, cfg)
	if err != nil {
		return nil, err
	}
	if !loaded {
		if required {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		l.logger.Debug("no configuration file, using defaults", "path", path)
	}

	applyEnvOverrides(cfg, lookup)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readDotEnv parses a .env file. A missing file yields an empty map.
func readDotEnv(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidEnvFile, path, err)
	}
	return values, nil
}

// loadYAMLFile reads path, expands ${VAR} references with lookup and
// merges the result over target. Empty values in the file leave target's
// values in place. Returns (false, nil) if the file
// does not exist.
func loadYAMLFile(path string, lookup func(string) string, target *Config) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	expanded, err := envsubst.Eval(string(data), lookup)
	if err != nil {
		return false, fmt.Errorf("expand %s: %w", path, err)
	}

	var fromFile Config
	if err := yaml.Unmarshal([]byte(expanded), &fromFile); err != nil {
		return false, fmt.Errorf("parse %s: %w", path, ErrInvalidYAML)
	}
	if err := mergo.Merge(target, &fromFile, mergo.WithOverride); err != nil {
		return false, fmt.Errorf("merge %s: %w", path, err)
	}
	return true, nil
}

func applyEnvOverrides(cfg *Config, lookup func(string) string) {
	if v := lookup(EnvNamespace); v != "" {
		cfg.Namespace = v
	}
	if v := lookup(EnvDotNetBinary); v != "" {
		cfg.Toolchain.Binary = v
	}
	if v := lookup(EnvMockingPackage); v != "" {
		cfg.Test.MockingPackage = v
	}
	if v := lookup(EnvNuGetSource); v != "" {
		cfg.NuGet.DefaultSource = v
	}
}
