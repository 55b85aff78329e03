package toolchain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"sync"
)

// Runner executes toolchain commands synchronously.
type Runner interface {
	// Run blocks until the command exits. A non-zero exit returns the
	// populated Result together with an *InvocationError.
	Run(ctx context.Context, cmd Command) (Result, error)
}

// lookPathFunc resolves a binary name to a path.
// Used for dependency injection in tests.
type lookPathFunc func(file string) (string, error)

// ExecRunner implements Runner with os/exec.
type ExecRunner struct {
	logger   *slog.Logger
	lookPath lookPathFunc

	mu       sync.Mutex
	resolved map[string]string
}

// Compile-time interface compliance check.
var _ Runner = (*ExecRunner)(nil)

// NewExecRunner creates a Runner that spawns real processes.
// If logger is nil, a discard logger is used.
func NewExecRunner(logger *slog.Logger) *ExecRunner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ExecRunner{
		logger:   logger,
		lookPath: exec.LookPath,
		resolved: make(map[string]string),
	}
}

// Run executes cmd in cmd.Dir and captures combined output.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) (Result, error) {
	if err := cmd.Validate(); err != nil {
		return Result{}, err
	}

	bin, err := r.resolve(cmd.Name)
	if err != nil {
		return Result{}, err
	}

	r.logger.Debug("running toolchain command", "cmd", cmd.String(), "dir", cmd.Dir)

	c := exec.CommandContext(ctx, bin, cmd.Args...)
	c.Dir = cmd.Dir
	out, runErr := c.CombinedOutput()
	res := Result{Output: string(out)}

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			r.logger.Debug("toolchain command failed", "cmd", cmd.String(), "exit_code", res.ExitCode)
			return res, &InvocationError{Command: cmd, ExitCode: res.ExitCode, Output: res.Output}
		}
		return res, fmt.Errorf("%w: %s: %w", ErrInvocation, cmd, runErr)
	}

	return res, nil
}

// resolve looks up a binary once per runner.
func (r *ExecRunner) resolve(name string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if path, ok := r.resolved[name]; ok {
		return path, nil
	}
	path, err := r.lookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrToolNotFound, name, err)
	}
	r.resolved[name] = path
	return path, nil
}
