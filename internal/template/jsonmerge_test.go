package template

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

const settingsRel = "src/CarMax.Orders/appsettings.json"

func writeSettings(t *testing.T, root, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(settingsRel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestMergeJSONApplied(t *testing.T) {
	m, root := newTestMaterializer(t, fstest.MapFS{})
	path := writeSettings(t, root, `{"Logging":{"LogLevel":{"Default":"Information"}},"AllowedHosts":"*","Port":5000}`)

	outcome, err := m.MergeJSON(settingsRel, "Environment", "local")
	if err != nil {
		t.Fatalf("MergeJSON error: %v", err)
	}
	if outcome != MergeApplied {
		t.Errorf("outcome = %v, want %v", outcome, MergeApplied)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("merged file is not valid JSON: %v", err)
	}
	if doc["Environment"] != "local" {
		t.Errorf("Environment = %v, want local", doc["Environment"])
	}
	if doc["AllowedHosts"] != "*" {
		t.Errorf("AllowedHosts = %v, existing keys must be preserved", doc["AllowedHosts"])
	}
	if _, ok := doc["Logging"].(map[string]any); !ok {
		t.Errorf("Logging = %v, nested objects must be preserved", doc["Logging"])
	}
	if !strings.Contains(string(data), `"Port": 5000`) {
		t.Errorf("numbers must round-trip unchanged, got:\n%s", data)
	}
}

func TestMergeJSONKeepsKeyOrder(t *testing.T) {
	m, root := newTestMaterializer(t, fstest.MapFS{})
	path := writeSettings(t, root, `{"Z":1,"A":{"B":true},"Logging":{"LogLevel":{"Default":"Information"}},"AllowedHosts":"*"}`)

	if _, err := m.MergeJSON(settingsRel, "Environment", "local"); err != nil {
		t.Fatalf("MergeJSON error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	got := string(data)
	last := -1
	for _, key := range []string{`"Z"`, `"A"`, `"Logging"`, `"AllowedHosts"`, `"Environment"`} {
		i := strings.Index(got, key)
		if i < 0 {
			t.Fatalf("%s missing from:\n%s", key, got)
		}
		if i < last {
			t.Errorf("%s moved; keys must keep their order:\n%s", key, got)
		}
		last = i
	}
}

func TestMergeJSONIdempotent(t *testing.T) {
	m, root := newTestMaterializer(t, fstest.MapFS{})
	path := writeSettings(t, root, `{"AllowedHosts":"*"}`)

	if _, err := m.MergeJSON(settingsRel, "Environment", "local"); err != nil {
		t.Fatalf("first MergeJSON: %v", err)
	}
	first, _ := os.ReadFile(path)

	outcome, err := m.MergeJSON(settingsRel, "Environment", "local")
	if err != nil {
		t.Fatalf("second MergeJSON: %v", err)
	}
	if outcome != MergeUnchanged {
		t.Errorf("second outcome = %v, want %v", outcome, MergeUnchanged)
	}
	second, _ := os.ReadFile(path)
	if string(first) != string(second) {
		t.Errorf("second merge changed the file:\n%s\n---\n%s", first, second)
	}
}

func TestMergeJSONOverridesExistingValue(t *testing.T) {
	m, root := newTestMaterializer(t, fstest.MapFS{})
	path := writeSettings(t, root, `{"Environment":"production"}`)

	outcome, err := m.MergeJSON(settingsRel, "Environment", "local")
	if err != nil {
		t.Fatalf("MergeJSON error: %v", err)
	}
	if outcome != MergeApplied {
		t.Errorf("outcome = %v, want %v", outcome, MergeApplied)
	}
	data, _ := os.ReadFile(path)
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if doc["Environment"] != "local" {
		t.Errorf("Environment = %v, want local", doc["Environment"])
	}
}

func TestMergeJSONMissingFile(t *testing.T) {
	m, root := newTestMaterializer(t, fstest.MapFS{})

	outcome, err := m.MergeJSON(settingsRel, "Environment", "local")
	if err != nil {
		t.Fatalf("MergeJSON error: %v", err)
	}
	if outcome != MergeSkipped {
		t.Errorf("outcome = %v, want %v", outcome, MergeSkipped)
	}
	if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(settingsRel))); !os.IsNotExist(err) {
		t.Error("missing settings file must not be created")
	}
}

func TestMergeJSONInvalidDocument(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed", `{"AllowedHosts": `},
		{"array", `["a", "b"]`},
		{"string", `"text"`},
		{"empty", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, root := newTestMaterializer(t, fstest.MapFS{})
			path := writeSettings(t, root, tt.content)

			_, err := m.MergeJSON(settingsRel, "Environment", "local")
			if !errors.Is(err, ErrConfigMerge) {
				t.Fatalf("error = %v, want ErrConfigMerge", err)
			}
			data, _ := os.ReadFile(path)
			if string(data) != tt.content {
				t.Errorf("invalid file was modified: %q", string(data))
			}
		})
	}
}

func TestMergeOutcomeString(t *testing.T) {
	tests := []struct {
		outcome MergeOutcome
		want    string
	}{
		{MergeSkipped, "skipped"},
		{MergeUnchanged, "unchanged"},
		{MergeApplied, "applied"},
		{MergeOutcome(9), "MergeOutcome(9)"},
	}
	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
