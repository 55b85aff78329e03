package wizard

import (
	"context"
	"fmt"
	"maps"
	"os"

	"gopkg.in/yaml.v3"
)

// ScriptedCollector answers questions from a preset map, e.g. an answers
// file used in CI. A question without a preset takes its default; a
// required question with neither fails with ErrInputUnavailable.
type ScriptedCollector struct {
	preset map[string]any
}

// Compile-time interface compliance check.
var _ Collector = (*ScriptedCollector)(nil)

// NewScriptedCollector creates a collector backed by preset answers.
func NewScriptedCollector(preset map[string]any) *ScriptedCollector {
	return &ScriptedCollector{preset: maps.Clone(preset)}
}

// LoadAnswersFile reads preset answers from a YAML mapping of answer key
// to value.
func LoadAnswersFile(path string) (*ScriptedCollector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers file: %w", err)
	}

	var preset map[string]any
	if err := yaml.Unmarshal(data, &preset); err != nil {
		return nil, fmt.Errorf("parse answers file %s: %w", path, err)
	}
	return NewScriptedCollector(preset), nil
}

// Collect answers questions without user interaction.
func (c *ScriptedCollector) Collect(ctx context.Context, questions []Question) (Answers, error) {
	return Collect(ctx, questions, c.ask)
}

func (c *ScriptedCollector) ask(_ context.Context, q Question, def any) (any, error) {
	if v, ok := c.preset[q.Key]; ok && v != nil {
		return v, nil
	}
	if isEmpty(def) && q.Required {
		return nil, fmt.Errorf("%w: no answer for %q", ErrInputUnavailable, q.Key)
	}
	return def, nil
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []string:
		return len(t) == 0
	}
	return false
}

// SelectCollector picks the collector for a run: an answers file when
// given, otherwise the interactive form. Without a terminal and without an
// answers file there is no way to collect input.
func SelectCollector(answersPath string, headless bool) (Collector, error) {
	if answersPath != "" {
		return LoadAnswersFile(answersPath)
	}
	if headless {
		return nil, fmt.Errorf("%w: no terminal available; pass an answers file", ErrInputUnavailable)
	}
	return NewFormCollector(false), nil
}
