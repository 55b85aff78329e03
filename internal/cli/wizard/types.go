// Package wizard collects the answers that drive workspace generation:
// a declarative question list with gating predicates, an interactive
// huh-based collector and a scripted collector for answer files.
package wizard

import (
	"errors"
	"fmt"
)

// Answer keys.
const (
	KeyProjectName        = "projectName"
	KeySolutionName       = "solutionName"
	KeyProjectType        = "projectType"
	KeyFiles              = "files"
	KeyCreateUnitTests    = "createUnitTests"
	KeyCreateEditorConfig = "createEditorConfig"
	KeyCreateNugetConfig  = "createNugetConfig"
	KeyNugetSource        = "nugetSource"
)

// Kind is the prompt kind of a question.
type Kind int

const (
	// KindInput is a free-text question. Answers are strings.
	KindInput Kind = iota
	// KindSelect is a single-choice question. Answers are strings.
	KindSelect
	// KindMultiSelect is a multiple-choice question. Answers are []string.
	KindMultiSelect
	// KindConfirm is a yes/no question. Answers are bools.
	KindConfirm
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindSelect:
		return "select"
	case KindMultiSelect:
		return "multiselect"
	case KindConfirm:
		return "confirm"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Question defines a single wizard question.
type Question struct {
	Key         string             // Answer key
	Kind        Kind               // Prompt kind
	Title       string             // Question title
	Description string             // Additional description
	Default     any                // string, bool or []string matching Kind
	DefaultFrom string             // Key of an earlier answer used as the default when present
	Options     []Option           // Choices for select kinds
	Required    bool               // Whether an empty answer is rejected
	Validate    func(string) error // Extra validation for input questions
	When        func(Answers) bool // Gating predicate; nil means always asked
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label
	Value string // Actual value stored
	Desc  string // Optional description
}

// asked reports whether q applies given the answers collected so far.
func (q Question) asked(a Answers) bool {
	return q.When == nil || q.When(a)
}

// defaultValue resolves the default shown for q.
func (q Question) defaultValue(a Answers) any {
	if q.DefaultFrom != "" {
		if v, ok := a.String(q.DefaultFrom); ok && v != "" {
			return v
		}
	}
	return q.Default
}

// Error definitions for the wizard package.
var (
	// ErrInputUnavailable is returned when answers cannot be collected,
	// e.g. no terminal and no answers file.
	ErrInputUnavailable = errors.New("input unavailable")
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = fmt.Errorf("wizard cancelled by user: %w", ErrInputUnavailable)
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
	// ErrInvalidAnswer is returned when an answer does not fit its question.
	ErrInvalidAnswer = errors.New("invalid answer")
)
