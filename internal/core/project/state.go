package project

import "fmt"

// State is a generator lifecycle state. Steps also use the Configuring and
// Invoking states as their phase.
type State int

const (
	// StateInit validates the workspace and the toolchain.
	StateInit State = iota
	// StatePrompting collects answers; it has no file-system side effects.
	StatePrompting
	// StateConfiguring writes configuration and template files.
	StateConfiguring
	// StateInvoking runs toolchain commands and post-processes their output.
	StateInvoking
	// StateDone is the terminal success state.
	StateDone
	// StateFailed is the terminal failure state.
	StateFailed
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StatePrompting:
		return "prompting"
	case StateConfiguring:
		return "configuring"
	case StateInvoking:
		return "invoking"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}

// canTransition reports whether the generator may move from s to next.
// Failed is reachable from every non-terminal state; otherwise states
// advance one at a time.
func (s State) canTransition(next State) bool {
	if s.Terminal() {
		return false
	}
	if next == StateFailed {
		return true
	}
	return next == s+1
}
