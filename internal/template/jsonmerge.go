package template

import (
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// MergeOutcome describes what MergeJSON did.
type MergeOutcome int

const (
	// MergeSkipped means the target file does not exist; nothing was written.
	MergeSkipped MergeOutcome = iota
	// MergeUnchanged means the key already held the value; nothing was written.
	MergeUnchanged
	// MergeApplied means the document was updated and rewritten.
	MergeApplied
)

// String implements fmt.Stringer.
func (o MergeOutcome) String() string {
	switch o {
	case MergeSkipped:
		return "skipped"
	case MergeUnchanged:
		return "unchanged"
	case MergeApplied:
		return "applied"
	}
	return fmt.Sprintf("MergeOutcome(%d)", int(o))
}

// MergeJSON sets a top-level key in an existing JSON object.
// A missing file is skipped and not created; a file that is not a valid
// JSON object fails with ErrConfigMerge and is left untouched.
func (m *materializer) MergeJSON(rel, key, value string) (MergeOutcome, error) {
	path, err := m.resolve(rel)
	if err != nil {
		return MergeSkipped, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			m.logger.Debug("settings file missing, merge skipped", "path", rel)
			return MergeSkipped, nil
		}
		return MergeSkipped, fmt.Errorf("read %s: %w", rel, err)
	}

	merged, changed, err := mergeJSONValue(data, key, value)
	if err != nil {
		return MergeSkipped, fmt.Errorf("%w: %s: %v", ErrConfigMerge, rel, err)
	}
	if !changed {
		return MergeUnchanged, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return MergeSkipped, fmt.Errorf("stat %s: %w", rel, err)
	}
	if err := os.WriteFile(path, merged, info.Mode().Perm()); err != nil {
		return MergeSkipped, fmt.Errorf("%w: %s: %w", ErrTemplateWrite, rel, err)
	}

	m.logger.Debug("merged settings", "path", rel, "key", key)
	return MergeApplied, nil
}

// mergeJSONValue returns data with key set to value. Existing keys keep
// their order; a new key is appended. changed is false when the document
// already holds the value.
func mergeJSONValue(data []byte, key, value string) ([]byte, bool, error) {
	if !gjson.ValidBytes(data) {
		return nil, false, fmt.Errorf("invalid JSON")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, false, fmt.Errorf("top-level value is not an object")
	}

	path := escapePathComponent(key)
	if current := doc.Get(path); current.Type == gjson.String && current.Str == value {
		return data, false, nil
	}

	out, err := sjson.SetBytes(data, path, value)
	if err != nil {
		return nil, false, err
	}
	return pretty.Pretty(out), true, nil
}

// escapePathComponent escapes gjson path syntax so key is matched literally.
func escapePathComponent(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\', '!', '=', '<', '>', '%':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
