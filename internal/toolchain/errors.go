// Package toolchain drives the external dotnet CLI: pure command builders,
// a synchronous runner that captures exit code and output, and an
// installation check against a minimum SDK version.
package toolchain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the toolchain package.
var (
	// ErrToolNotFound indicates the toolchain binary is not on PATH.
	ErrToolNotFound = errors.New("toolchain binary not found")

	// ErrToolVersion indicates the installed toolchain is older than required.
	ErrToolVersion = errors.New("toolchain version below minimum")

	// ErrInvocation indicates a toolchain command exited unsuccessfully.
	ErrInvocation = errors.New("toolchain invocation failed")

	// ErrInvalidCommand indicates a command that must not be run, such as
	// one without an absolute working directory.
	ErrInvalidCommand = errors.New("invalid toolchain command")
)

// InvocationError records a command that exited with a non-zero status.
type InvocationError struct {
	Command  Command
	ExitCode int
	Output   string
}

// Error implements the error interface.
func (e *InvocationError) Error() string {
	msg := fmt.Sprintf("%s: exit status %d", e.Command, e.ExitCode)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += ": " + lastLines(out, 5)
	}
	return msg
}

// Unwrap allows errors.Is(err, ErrInvocation).
func (e *InvocationError) Unwrap() error {
	return ErrInvocation
}

// lastLines returns at most n trailing lines of s.
func lastLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
