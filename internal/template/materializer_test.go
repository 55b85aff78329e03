package template

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func newTestMaterializer(t *testing.T, fsys fstest.MapFS) (Materializer, string) {
	t.Helper()
	root := t.TempDir()
	m, err := NewMaterializer(root, fsys, nil)
	if err != nil {
		t.Fatalf("NewMaterializer: %v", err)
	}
	return m, root
}

func TestMaterializeVerbatim(t *testing.T) {
	fsys := fstest.MapFS{
		"editorconfig": &fstest.MapFile{Data: []byte("root = true\n# keep ${LITERAL}\n"), Mode: 0o444},
	}
	m, root := newTestMaterializer(t, fsys)

	path, err := m.Materialize(context.Background(), Descriptor{Source: "editorconfig", Dest: ".editorconfig"})
	if err != nil {
		t.Fatalf("Materialize error: %v", err)
	}
	if path != filepath.Join(root, ".editorconfig") {
		t.Errorf("path = %q, want %q", path, filepath.Join(root, ".editorconfig"))
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "root = true\n# keep ${LITERAL}\n" {
		t.Errorf("content = %q, verbatim copy must not render", string(got))
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm()&0o200 == 0 {
		t.Errorf("copied file is not writable: %v", info.Mode())
	}
}

func TestMaterializeRendered(t *testing.T) {
	fsys := fstest.MapFS{
		"readme.md.tmpl": &fstest.MapFile{Data: []byte("# {{.Title}}\n")},
	}
	m, root := newTestMaterializer(t, fsys)

	d := Descriptor{
		Source: "readme.md.tmpl",
		Dest:   "src/CarMax.Orders/README.md",
		Vars:   map[string]string{"Title": "CarMax.Orders"},
	}
	if _, err := m.Materialize(context.Background(), d); err != nil {
		t.Fatalf("Materialize error: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(root, "src", "CarMax.Orders", "README.md"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "# CarMax.Orders\n" {
		t.Errorf("content = %q, want %q", string(got), "# CarMax.Orders\n")
	}
}

func TestMaterializeOverwrites(t *testing.T) {
	fsys := fstest.MapFS{
		"readme.md.tmpl": &fstest.MapFile{Data: []byte("# {{.Title}}\n")},
		"gitignore":      &fstest.MapFile{Data: []byte("bin/\n")},
	}
	m, root := newTestMaterializer(t, fsys)

	if err := os.WriteFile(filepath.Join(root, "readme.md"), []byte("old readme"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, ".gitignore"), []byte("old ignore rules that are longer"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	if _, err := m.Materialize(ctx, Descriptor{Source: "readme.md.tmpl", Dest: "readme.md", Vars: map[string]string{"Title": "X"}}); err != nil {
		t.Fatalf("Materialize rendered: %v", err)
	}
	if _, err := m.Materialize(ctx, Descriptor{Source: "gitignore", Dest: ".gitignore"}); err != nil {
		t.Fatalf("Materialize verbatim: %v", err)
	}

	readme, _ := os.ReadFile(filepath.Join(root, "readme.md"))
	if string(readme) != "# X\n" {
		t.Errorf("readme = %q, want overwritten content", string(readme))
	}
	ignore, _ := os.ReadFile(filepath.Join(root, ".gitignore"))
	if string(ignore) != "bin/\n" {
		t.Errorf(".gitignore = %q, want overwritten content", string(ignore))
	}
}

func TestMaterializeErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"readme.md.tmpl": &fstest.MapFile{Data: []byte("# {{.Title}}\n")},
	}

	tests := []struct {
		name    string
		d       Descriptor
		wantErr error
	}{
		{
			name:    "missing_verbatim_source",
			d:       Descriptor{Source: "nope", Dest: "nope"},
			wantErr: ErrTemplateNotFound,
		},
		{
			name:    "missing_rendered_source",
			d:       Descriptor{Source: "nope.tmpl", Dest: "nope", Vars: map[string]string{}},
			wantErr: ErrTemplateNotFound,
		},
		{
			name:    "missing_variable",
			d:       Descriptor{Source: "readme.md.tmpl", Dest: "readme.md", Vars: map[string]string{}},
			wantErr: ErrMissingTemplateKey,
		},
		{
			name:    "parent_traversal",
			d:       Descriptor{Source: "readme.md.tmpl", Dest: "../escape.md", Vars: map[string]string{"Title": "X"}},
			wantErr: ErrPathTraversal,
		},
		{
			name:    "absolute_destination",
			d:       Descriptor{Source: "readme.md.tmpl", Dest: "/etc/passwd", Vars: map[string]string{"Title": "X"}},
			wantErr: ErrPathTraversal,
		},
		{
			name:    "empty_destination",
			d:       Descriptor{Source: "readme.md.tmpl", Dest: "", Vars: map[string]string{"Title": "X"}},
			wantErr: ErrPathTraversal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestMaterializer(t, fsys)
			_, err := m.Materialize(context.Background(), tt.d)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Materialize error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMaterializeCancelledContext(t *testing.T) {
	m, root := newTestMaterializer(t, fstest.MapFS{
		"gitignore": &fstest.MapFile{Data: []byte("bin/\n")},
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Materialize(ctx, Descriptor{Source: "gitignore", Dest: ".gitignore"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if _, err := os.Stat(filepath.Join(root, ".gitignore")); !os.IsNotExist(err) {
		t.Error("file written despite cancelled context")
	}
}

func TestRemoveIfExists(t *testing.T) {
	m, root := newTestMaterializer(t, fstest.MapFS{})

	dir := filepath.Join(root, "src", "CarMax.Orders")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "appsettings.Development.json")
	if err := os.WriteFile(target, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	removed, err := m.RemoveIfExists("src/CarMax.Orders/appsettings.Development.json")
	if err != nil {
		t.Fatalf("RemoveIfExists error: %v", err)
	}
	if !removed {
		t.Error("removed = false, want true")
	}
	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Error("file still exists after removal")
	}

	removed, err = m.RemoveIfExists("src/CarMax.Orders/appsettings.Development.json")
	if err != nil {
		t.Fatalf("second RemoveIfExists error: %v", err)
	}
	if removed {
		t.Error("removed = true for missing file, want false")
	}

	if _, err := m.RemoveIfExists("../outside.json"); !errors.Is(err, ErrPathTraversal) {
		t.Errorf("traversal error = %v, want ErrPathTraversal", err)
	}
}

func TestValidateDestPath(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name    string
		rel     string
		wantErr bool
	}{
		{"simple_file", "readme.md", false},
		{"nested_file", "src/CarMax.Orders/README.md", false},
		{"dot_file", ".editorconfig", false},
		{"inner_parent_resolved", "src/../readme.md", false},
		{"empty", "", true},
		{"root_itself", ".", true},
		{"parent", "..", true},
		{"parent_prefix", "../x", true},
		{"absolute", "/tmp/x", true},
		{"escaping_after_clean", "src/../../x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDestPath(root, tt.rel)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateDestPath(%q) error = %v, wantErr %v", tt.rel, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrPathTraversal) {
				t.Errorf("error should wrap ErrPathTraversal, got %v", err)
			}
		})
	}
}
