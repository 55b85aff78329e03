package project

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/carmax/dotnet-gen/internal/cli/wizard"
)

func TestResolveRoot(t *testing.T) {
	t.Run("missing_directory_is_not_created", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "new", "workspace")
		root, err := ResolveRoot(dir)
		if err != nil {
			t.Fatalf("ResolveRoot error: %v", err)
		}
		if root != dir {
			t.Errorf("root = %q, want %q", root, dir)
		}
		if _, err := os.Stat(root); !os.IsNotExist(err) {
			t.Errorf("%s should not be created, stat error = %v", root, err)
		}
	})

	t.Run("file_is_rejected", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		if err := os.WriteFile(file, nil, 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := ResolveRoot(file); !errors.Is(err, ErrInvalidRoot) {
			t.Errorf("error = %v, want ErrInvalidRoot", err)
		}
	})
}

func TestNearestDir(t *testing.T) {
	base := t.TempDir()
	tests := []struct {
		path string
		want string
	}{
		{base, base},
		{filepath.Join(base, "a"), base},
		{filepath.Join(base, "a", "b", "c"), base},
	}
	for _, tt := range tests {
		if got := nearestDir(tt.path); got != tt.want {
			t.Errorf("nearestDir(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestEnsureRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "a", "b")
	if err := ensureRoot(root); err != nil {
		t.Fatalf("ensureRoot error: %v", err)
	}
	if !dirExists(root) {
		t.Errorf("%s not created", root)
	}
}

func TestInspectWorkspace(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"b.sln", "A.SLN", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(root, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(root, "dir.sln"), 0o755); err != nil {
		t.Fatal(err)
	}

	ws, err := InspectWorkspace(root)
	if err != nil {
		t.Fatalf("InspectWorkspace error: %v", err)
	}
	if want := []string{"A.SLN", "b.sln"}; !reflect.DeepEqual(ws.Solutions, want) {
		t.Errorf("Solutions = %v, want %v", ws.Solutions, want)
	}

	if _, err := InspectWorkspace(filepath.Join(root, "missing")); !errors.Is(err, ErrInvalidRoot) {
		t.Errorf("error = %v, want ErrInvalidRoot", err)
	}
}

func TestWorkspaceConflicts(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "src", "CarMax.Orders"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(root, "tests", "CarMax.Orders.Tests.Unit"), 0o755); err != nil {
		t.Fatal(err)
	}
	ws := &Workspace{Root: root, Solutions: []string{"carmax.orders.sln"}}

	answers := wizard.NewAnswers(map[string]any{
		wizard.KeyProjectName:     "CarMax.Orders",
		wizard.KeyProjectType:     "webapi",
		wizard.KeyCreateUnitTests: true,
	})
	want := []string{
		"CarMax.Orders.sln already exists",
		"src/CarMax.Orders already exists",
		"tests/CarMax.Orders.Tests.Unit already exists",
	}
	if got := ws.Conflicts(answers, DefaultLayout()); !reflect.DeepEqual(got, want) {
		t.Errorf("Conflicts = %v, want %v", got, want)
	}

	none := wizard.NewAnswers(map[string]any{
		wizard.KeyProjectName: "CarMax.Other",
		wizard.KeyProjectType: "none",
	})
	if got := ws.Conflicts(none, DefaultLayout()); len(got) != 0 {
		t.Errorf("Conflicts = %v, want none", got)
	}
}
