package wizard

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Collector produces an Answers from an ordered question list.
type Collector interface {
	Collect(ctx context.Context, questions []Question) (Answers, error)
}

// AskFunc obtains the raw answer to one question. def is the resolved
// default for the question, or nil.
type AskFunc func(ctx context.Context, q Question, def any) (any, error)

// Collect walks questions in order. A question whose When predicate is false
// against the answers gathered so far is skipped and leaves no key behind.
// Any error discards the partial result.
func Collect(ctx context.Context, questions []Question, ask AskFunc) (Answers, error) {
	if len(questions) == 0 {
		return Answers{}, ErrNoQuestions
	}

	values := make(map[string]any, len(questions))
	for _, q := range questions {
		if err := ctx.Err(); err != nil {
			return Answers{}, err
		}

		snapshot := NewAnswers(values)
		if !q.asked(snapshot) {
			continue
		}

		raw, err := ask(ctx, q, q.defaultValue(snapshot))
		if err != nil {
			return Answers{}, err
		}

		v, err := normalize(q, raw)
		if err != nil {
			return Answers{}, err
		}
		values[q.Key] = v
	}

	return NewAnswers(values), nil
}

// normalize coerces a raw answer to the type its kind stores and checks it
// against the question's constraints.
func normalize(q Question, raw any) (any, error) {
	switch q.Kind {
	case KindInput:
		s, err := asString(q, raw)
		if err != nil {
			return nil, err
		}
		s = strings.TrimSpace(s)
		if q.Required && s == "" {
			return nil, fmt.Errorf("%w: %s: required", ErrInvalidAnswer, q.Key)
		}
		if q.Validate != nil {
			if err := q.Validate(s); err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrInvalidAnswer, q.Key, err)
			}
		}
		return s, nil

	case KindSelect:
		s, err := asString(q, raw)
		if err != nil {
			return nil, err
		}
		if !q.hasOption(s) {
			return nil, fmt.Errorf("%w: %s: %q is not one of %v", ErrInvalidAnswer, q.Key, s, q.optionValues())
		}
		return s, nil

	case KindMultiSelect:
		items, err := asStrings(q, raw)
		if err != nil {
			return nil, err
		}
		for _, s := range items {
			if !q.hasOption(s) {
				return nil, fmt.Errorf("%w: %s: %q is not one of %v", ErrInvalidAnswer, q.Key, s, q.optionValues())
			}
		}
		if q.Required && len(items) == 0 {
			return nil, fmt.Errorf("%w: %s: at least one choice required", ErrInvalidAnswer, q.Key)
		}
		return items, nil

	case KindConfirm:
		return asBool(q, raw)
	}
	return nil, fmt.Errorf("%w: %s: unknown kind %s", ErrInvalidAnswer, q.Key, q.Kind)
}

func (q Question) hasOption(value string) bool {
	return slices.ContainsFunc(q.Options, func(o Option) bool { return o.Value == value })
}

func (q Question) optionValues() []string {
	values := make([]string, len(q.Options))
	for i, o := range q.Options {
		values[i] = o.Value
	}
	return values
}

func asString(q Question, raw any) (string, error) {
	switch v := raw.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	case int, int64, float64:
		return fmt.Sprint(v), nil
	}
	return "", fmt.Errorf("%w: %s: expected text, got %T", ErrInvalidAnswer, q.Key, raw)
}

func asStrings(q Question, raw any) ([]string, error) {
	switch v := raw.(type) {
	case nil:
		return []string{}, nil
	case []string:
		return slices.Clone(v), nil
	case string:
		return []string{v}, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s: expected text choices, got %T", ErrInvalidAnswer, q.Key, item)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %s: expected a list, got %T", ErrInvalidAnswer, q.Key, raw)
}

func asBool(q Question, raw any) (bool, error) {
	switch v := raw.(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "y", "yes":
			return true, nil
		case "n", "no", "":
			return false, nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("%w: %s: %q is not yes/no", ErrInvalidAnswer, q.Key, v)
		}
		return b, nil
	}
	return false, fmt.Errorf("%w: %s: expected yes/no, got %T", ErrInvalidAnswer, q.Key, raw)
}
