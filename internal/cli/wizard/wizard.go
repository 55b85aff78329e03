package wizard

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/huh"
)

// FormCollector asks questions on the terminal with huh.
// Each question runs as its own independent huh.Form to avoid the huh v0.8.x
// YOffset scroll bug that occurs when multiple groups share a single viewport.
type FormCollector struct {
	theme      *huh.Theme
	accessible bool
}

// Compile-time interface compliance check.
var _ Collector = (*FormCollector)(nil)

// NewFormCollector creates an interactive collector. accessible switches
// huh to its line-based accessible mode.
func NewFormCollector(accessible bool) *FormCollector {
	return &FormCollector{
		theme:      newWizardTheme(),
		accessible: accessible,
	}
}

// Collect runs the wizard and returns the answers.
func (c *FormCollector) Collect(ctx context.Context, questions []Question) (Answers, error) {
	return Collect(ctx, questions, c.ask)
}

// ask runs a single-question form.
func (c *FormCollector) ask(ctx context.Context, q Question, def any) (any, error) {
	field, value := buildField(q, def)

	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(c.theme).
		WithAccessible(c.accessible)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
			return nil, ErrCancelled
		}
		return nil, fmt.Errorf("wizard error: %w", err)
	}

	return value(), nil
}

// buildField creates the huh field for q and a getter for its value.
func buildField(q Question, def any) (huh.Field, func() any) {
	switch q.Kind {
	case KindSelect:
		sel, get := buildSelectField(q, def)
		return sel, func() any { return get() }
	case KindMultiSelect:
		ms, get := buildMultiSelectField(q, def)
		return ms, func() any { return get() }
	case KindConfirm:
		cf, get := buildConfirmField(q, def)
		return cf, func() any { return get() }
	default:
		inp, get := buildInputField(q, def)
		return inp, func() any { return get() }
	}
}

// buildSelectField creates a huh.Select field for a select-type question.
func buildSelectField(q Question, def any) (*huh.Select[string], func() string) {
	selected, _ := def.(string)

	// Static Options with no Height keeps the viewport sized to the option
	// list. OptionsFunc forces a fixed height in huh v0.8.x and the viewport
	// then scrolls the selected item to the top on every update.
	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		key := opt.Label
		if opt.Desc != "" {
			key = opt.Label + " - " + opt.Desc
		}
		opts[i] = huh.NewOption(key, opt.Value)
	}

	sel := huh.NewSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(&selected)

	return sel, func() string { return selected }
}

// buildMultiSelectField creates a huh.MultiSelect field.
func buildMultiSelectField(q Question, def any) (*huh.MultiSelect[string], func() []string) {
	defaults, _ := def.([]string)
	selected := slices.Clone(defaults)

	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		opts[i] = huh.NewOption(opt.Label, opt.Value).Selected(slices.Contains(defaults, opt.Value))
	}

	ms := huh.NewMultiSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(&selected)

	if q.Required {
		ms = ms.Validate(func(v []string) error {
			if len(v) == 0 {
				return errors.New("select at least one option")
			}
			return nil
		})
	}

	return ms, func() []string {
		if selected == nil {
			return []string{}
		}
		return selected
	}
}

// buildConfirmField creates a huh.Confirm field for a yes/no question.
func buildConfirmField(q Question, def any) (*huh.Confirm, func() bool) {
	value, _ := def.(bool)

	cf := huh.NewConfirm().
		Title(q.Title).
		Description(q.Description).
		Affirmative("Yes").
		Negative("No").
		Value(&value)

	return cf, func() bool { return value }
}

// buildInputField creates a huh.Input field for an input-type question.
// An empty submission takes the default.
func buildInputField(q Question, def any) (*huh.Input, func() string) {
	defVal, _ := def.(string)
	var value string

	inp := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Value(&value)

	if defVal != "" {
		inp = inp.Placeholder(defVal)
	}

	inp = inp.Validate(func(val string) error {
		v := strings.TrimSpace(val)
		if v == "" {
			v = defVal
		}
		if q.Required && v == "" {
			return errors.New("this field is required")
		}
		if q.Validate != nil && v != "" {
			return q.Validate(v)
		}
		return nil
	})

	return inp, func() string {
		if v := strings.TrimSpace(value); v != "" {
			return v
		}
		return defVal
	}
}
