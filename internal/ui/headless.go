package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// HeadlessManager decides whether the UI may prompt and animate. Both
// stdin and stdout must be terminals; otherwise output falls back to plain
// lines and prompting is impossible.
type HeadlessManager struct {
	forced   *bool
	terminal func(fd uintptr) bool
}

// NewHeadlessManager creates a HeadlessManager that inspects os.Stdin and
// os.Stdout.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{terminal: isTerminal}
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// IsHeadless reports whether the UI must run without a terminal.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	return !h.terminal(os.Stdin.Fd()) || !h.terminal(os.Stdout.Fd())
}

// ForceHeadless overrides terminal detection.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}

// ClearForce reverts to terminal detection.
func (h *HeadlessManager) ClearForce() {
	h.forced = nil
}
