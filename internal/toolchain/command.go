package toolchain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Command is one toolchain invocation.
type Command struct {
	Name string   // Binary name or path, e.g. "dotnet".
	Args []string // Arguments passed to the binary.
	Dir  string   // Absolute working directory.
}

// String renders the command line for logs and error messages.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Validate rejects commands that would run in the process's ambient
// working directory.
func (c Command) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: empty binary name", ErrInvalidCommand)
	}
	if c.Dir == "" {
		return fmt.Errorf("%w: %s: empty working directory", ErrInvalidCommand, c)
	}
	if !filepath.IsAbs(c.Dir) {
		return fmt.Errorf("%w: %s: relative working directory %q", ErrInvalidCommand, c, c.Dir)
	}
	return nil
}

// Result holds the outcome of a completed command.
type Result struct {
	ExitCode int
	Output   string // Combined stdout and stderr.
}
