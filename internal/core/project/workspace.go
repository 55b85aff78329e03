package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/carmax/dotnet-gen/internal/cli/wizard"
	"github.com/carmax/dotnet-gen/internal/defs"
)

// Workspace describes what already exists in a workspace root.
type Workspace struct {
	Root      string
	Solutions []string // Existing solution files, sorted.
}

// ResolveRoot returns the absolute workspace root for dir. The directory
// may not exist yet; it is created when the run starts writing files.
func ResolveRoot(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidRoot, dir, err)
	}
	return abs, checkRoot(abs)
}

// ensureRoot creates the workspace root if it is missing.
func ensureRoot(root string) error {
	if err := os.MkdirAll(root, defs.DirPerm); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidRoot, root, err)
	}
	return validateRoot(root)
}

// nearestDir returns path if it is a directory, otherwise its closest
// existing ancestor.
func nearestDir(path string) string {
	for {
		if dirExists(path) {
			return path
		}
		parent := filepath.Dir(path)
		if parent == path {
			return path
		}
		path = parent
	}
}

// InspectWorkspace lists existing generator artifacts under root.
func InspectWorkspace(root string) (*Workspace, error) {
	root = filepath.Clean(root)
	if err := validateRoot(root); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read workspace: %w", err)
	}

	ws := &Workspace{Root: root}
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), defs.SolutionSuffix) {
			ws.Solutions = append(ws.Solutions, e.Name())
		}
	}
	slices.Sort(ws.Solutions)
	return ws, nil
}

// Conflicts reports artifacts that the toolchain would refuse to overwrite
// for the given answers.
func (ws *Workspace) Conflicts(a wizard.Answers, l Layout) []string {
	var conflicts []string

	sln := l.SolutionFile(a.SolutionName())
	if slices.ContainsFunc(ws.Solutions, func(s string) bool { return strings.EqualFold(s, sln) }) {
		conflicts = append(conflicts, fmt.Sprintf("%s already exists", sln))
	}

	if a.ProjectType().HasProject() {
		dir := l.ProjectDir(a.ProjectName())
		if dirExists(filepath.Join(ws.Root, filepath.FromSlash(dir))) {
			conflicts = append(conflicts, fmt.Sprintf("%s already exists", dir))
		}
		if a.WantsUnitTests() {
			testDir := l.TestProjectDir(a.ProjectName())
			if dirExists(filepath.Join(ws.Root, filepath.FromSlash(testDir))) {
				conflicts = append(conflicts, fmt.Sprintf("%s already exists", testDir))
			}
		}
	}

	return conflicts
}

// checkRoot accepts a missing root but rejects one that exists and is not
// a directory.
func checkRoot(root string) error {
	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return validateRoot(root)
}

// validateRoot checks that the root path is a valid, accessible directory.
func validateRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidRoot, root)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, root)
	}
	return nil
}

// dirExists checks if a path exists and is a directory.
func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
