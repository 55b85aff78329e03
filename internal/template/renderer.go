package template

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io/fs"
	"regexp"
	"strings"
	"text/template"
)

// Renderer executes named templates from a filesystem. Execution is
// strict: a variable missing from the data fails the render.
type Renderer interface {
	// Render executes the named template with data. It fails with
	// ErrTemplateNotFound, ErrMissingTemplateKey, or ErrUnexpandedToken when
	// a placeholder is still present in the output.
	Render(name string, data any) ([]byte, error)
}

// funcs are available to every template.
var funcs = template.FuncMap{
	"xmlEscape": xmlEscape,
	"posixPath": posixPath,
}

// leftoverPlaceholder matches template placeholders that survived
// rendering, such as {{.Name}} or ${NAME}, for example when a value
// itself contains one.
var leftoverPlaceholder = regexp.MustCompile(`\{\{\s*\.?[A-Za-z_][A-Za-z0-9_.]*\s*\}\}|\$\{[A-Za-z_][A-Za-z0-9_]*\}`)

type renderer struct {
	fsys   fs.FS
	parsed map[string]*template.Template
}

// NewRenderer creates a Renderer reading templates from fsys. Parsed
// templates are cached; a Renderer is not safe for concurrent use.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys, parsed: make(map[string]*template.Template)}
}

func (r *renderer) Render(name string, data any) ([]byte, error) {
	tmpl, err := r.lookup(name)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingTemplateKey, name, err)
	}

	out := buf.Bytes()
	if m := leftoverPlaceholder.Find(out); m != nil {
		return nil, fmt.Errorf("%w: %s: %q", ErrUnexpandedToken, name, m)
	}
	return out, nil
}

// lookup returns the parsed template for name, parsing it on first use.
func (r *renderer) lookup(name string) (*template.Template, error) {
	if tmpl, ok := r.parsed[name]; ok {
		return tmpl, nil
	}

	src, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	tmpl, err := template.New(name).Funcs(funcs).Option("missingkey=error").Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}
	r.parsed[name] = tmpl
	return tmpl, nil
}

// xmlEscape escapes s for use inside an XML attribute value.
func xmlEscape(s string) string {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return s
	}
	return b.String()
}

// posixPath converts backslash separators to forward slashes.
func posixPath(s string) string {
	return strings.ReplaceAll(s, `\`, "/")
}
