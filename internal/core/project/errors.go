// Package project provisions a .NET workspace. It runs the generator state
// machine (initialize, prompt, configure, invoke) over flat, ordered lists of
// steps built from the collected answers.
package project

import (
	"errors"
	"fmt"
)

// Sentinel errors for the project package.
var (
	// ErrInvalidRoot indicates the given workspace root path is invalid or inaccessible.
	ErrInvalidRoot = errors.New("invalid workspace root path")

	// ErrNoCollector indicates Run was called without an answer collector.
	ErrNoCollector = errors.New("no answer collector configured")
)

// StepError reports the step that halted a run.
type StepError struct {
	Phase State
	Step  string
	Err   error
}

// Error implements the error interface.
func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Phase, e.Step, e.Err)
}

// Unwrap returns the underlying step failure.
func (e *StepError) Unwrap() error {
	return e.Err
}
