package template

import (
	"bytes"
	"fmt"
	"io/fs"
	"regexp"
	"strings"
	"text/template"
)

// TemplateExt is the suffix every template file carries.
const TemplateExt = ".tmpl"

// unexpandedTokenPattern detects leftover template actions in rendered output.
// Kotlin string templates ($name, ${expr}) and Gradle placeholders
// (${applicationId}) are legitimate output and are not matched.
var unexpandedTokenPattern = regexp.MustCompile(`\{\{-?\s*\.?[A-Za-z_][A-Za-z0-9_.]*\s*-?\}\}`)

// Renderer renders Go text/template files with strict mode enabled.
type Renderer interface {
	// Render executes the named template with the given data. Returns
	// ErrTemplateNotFound for unknown names, ErrMissingTemplateKey if a key
	// is missing and ErrUnexpandedToken if tokens remain after rendering.
	Render(templateName string, data any) ([]byte, error)

	// Names returns the sorted names of all parsed templates.
	Names() []string
}

// renderer is the concrete implementation of Renderer.
type renderer struct {
	root  *template.Template
	names []string
}

// NewRenderer parses every *.tmpl file in fsys once. Templates are named by
// their slash-separated path relative to the root of fsys.
func NewRenderer(fsys fs.FS) (Renderer, error) {
	root := template.New("").Funcs(templateFuncMap).Option("missingkey=error")
	var names []string

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, TemplateExt) {
			return nil
		}

		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("read template %q: %w", path, err)
		}
		if _, err := root.New(path).Parse(string(content)); err != nil {
			return fmt.Errorf("template parse %q: %w", path, err)
		}
		names = append(names, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &renderer{root: root, names: names}, nil
}

// Render executes a parsed template with strict mode (missingkey=error).
func (r *renderer) Render(templateName string, data any) ([]byte, error) {
	tmpl := r.root.Lookup(templateName)
	if tmpl == nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateName)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}

	result := buf.Bytes()
	if loc := unexpandedTokenPattern.Find(result); loc != nil {
		return nil, fmt.Errorf("%w: %s: found %q", ErrUnexpandedToken, templateName, string(loc))
	}

	return result, nil
}

// Names returns the sorted template names. WalkDir visits in lexical order.
func (r *renderer) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}
