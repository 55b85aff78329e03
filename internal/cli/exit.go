package cli

import (
	"errors"

	"github.com/carmax/dotnet-gen/internal/cli/wizard"
	"github.com/carmax/dotnet-gen/internal/toolchain"
)

// Process exit codes.
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitNoInput   = 2
	ExitToolchain = 3
	ExitCancelled = 130
)

// ExitCode maps a command error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, wizard.ErrCancelled):
		return ExitCancelled
	case errors.Is(err, wizard.ErrInputUnavailable):
		return ExitNoInput
	case errors.Is(err, toolchain.ErrToolNotFound), errors.Is(err, toolchain.ErrToolVersion):
		return ExitToolchain
	}
	return ExitFailure
}
