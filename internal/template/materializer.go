package template

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/otiai10/copy"

	"github.com/carmax/dotnet-gen/internal/defs"
)

// Descriptor names one file to materialize.
type Descriptor struct {
	Source string            // Template name inside the template FS.
	Dest   string            // Destination, relative to the workspace root.
	Vars   map[string]string // Substitution variables; nil means verbatim copy.
}

// Verbatim reports whether the descriptor copies its source unchanged.
func (d Descriptor) Verbatim() bool {
	return d.Vars == nil
}

// Materializer writes template content into a single workspace root.
// All operations are synchronous.
type Materializer interface {
	// Materialize ensures Dest exists with the content of Source, rendered
	// with Vars when they are set. Parent directories are created and an
	// existing file is overwritten. Returns the absolute destination path.
	Materialize(ctx context.Context, d Descriptor) (string, error)

	// RemoveIfExists deletes rel when present. Reports whether a file was removed.
	RemoveIfExists(rel string) (bool, error)

	// MergeJSON sets key to value in the JSON object stored at rel.
	MergeJSON(rel, key, value string) (MergeOutcome, error)

	// Root returns the absolute workspace root.
	Root() string
}

// materializer is the concrete implementation of Materializer.
type materializer struct {
	root     string
	fsys     fs.FS
	renderer Renderer
	logger   *slog.Logger
}

// NewMaterializer creates a Materializer that reads templates from fsys and
// writes below root. In production fsys comes from EmbeddedTemplates; in
// tests use testing/fstest.MapFS.
func NewMaterializer(root string, fsys fs.FS, logger *slog.Logger) (Materializer, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve workspace root: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &materializer{
		root:     abs,
		fsys:     fsys,
		renderer: NewRenderer(fsys),
		logger:   logger,
	}, nil
}

func (m *materializer) Root() string {
	return m.root
}

// Materialize copies or renders one template.
func (m *materializer) Materialize(ctx context.Context, d Descriptor) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	destPath, err := m.resolve(d.Dest)
	if err != nil {
		return "", err
	}

	if d.Verbatim() {
		if _, err := fs.Stat(m.fsys, d.Source); err != nil {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, d.Source)
		}
		// Sources in an embed.FS are read-only; the copy gets regular file
		// permissions after it is written.
		opts := copy.Options{
			FS:                m.fsys,
			PermissionControl: copy.DoNothing,
		}
		if err := copy.Copy(d.Source, destPath, opts); err != nil {
			return "", fmt.Errorf("%w: copy %s: %w", ErrTemplateWrite, d.Dest, err)
		}
		if err := os.Chmod(destPath, defs.FilePerm); err != nil {
			return "", fmt.Errorf("%w: chmod %s: %w", ErrTemplateWrite, d.Dest, err)
		}
		m.logger.Debug("copied template", "source", d.Source, "dest", d.Dest)
		return destPath, nil
	}

	content, err := m.renderer.Render(d.Source, d.Vars)
	if err != nil {
		return "", fmt.Errorf("template render %q: %w", d.Source, err)
	}
	if err := writeFile(destPath, content); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrTemplateWrite, d.Dest, err)
	}
	m.logger.Debug("rendered template", "source", d.Source, "dest", d.Dest, "vars", len(d.Vars))
	return destPath, nil
}

// RemoveIfExists deletes a generated file; a missing file is not an error.
func (m *materializer) RemoveIfExists(rel string) (bool, error) {
	path, err := m.resolve(rel)
	if err != nil {
		return false, err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("remove %s: %w", rel, err)
	}
	m.logger.Debug("removed generated file", "path", rel)
	return true, nil
}

// resolve validates rel and joins it to the workspace root.
func (m *materializer) resolve(rel string) (string, error) {
	if err := validateDestPath(m.root, rel); err != nil {
		return "", err
	}
	return filepath.Join(m.root, filepath.FromSlash(rel)), nil
}

// writeFile creates parent directories and writes content, replacing any
// existing file.
func writeFile(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), defs.DirPerm); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	return os.WriteFile(path, content, defs.FilePerm)
}

// validateDestPath ensures a destination path does not escape root.
func validateDestPath(root, relPath string) error {
	if relPath == "" {
		return fmt.Errorf("%w: empty destination", ErrPathTraversal)
	}

	cleaned := filepath.Clean(filepath.FromSlash(relPath))

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}

	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}

	absPath := filepath.Join(root, cleaned)
	if !strings.HasPrefix(absPath, root+string(filepath.Separator)) {
		return fmt.Errorf("%w: %q escapes workspace root", ErrPathTraversal, relPath)
	}

	return nil
}
