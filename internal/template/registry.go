package template

import (
	"fmt"
	"slices"
)

// RenderOption supplies per-artifact data beyond the shared Context.
type RenderOption func(*renderData)

// WithLocale renders a string resource for a non-default locale.
func WithLocale(qualifier string) RenderOption {
	return func(d *renderData) {
		d.Locale = NewLocale(qualifier)
	}
}

// WithDarkVariant renders the night variant of a theme resource.
func WithDarkVariant() RenderOption {
	return func(d *renderData) {
		d.Dark = true
	}
}

// renderData is what templates see: the shared Context plus per-artifact
// fields.
type renderData struct {
	*Context
	Locale Locale
	Dark   bool
}

// Registry selects and renders the template for each artifact kind.
type Registry struct {
	renderer Renderer
}

// NewRegistry creates a Registry backed by the given Renderer.
func NewRegistry(r Renderer) *Registry {
	return &Registry{renderer: r}
}

// NewDefaultRegistry creates a Registry over the embedded templates.
func NewDefaultRegistry() (*Registry, error) {
	r, err := NewRenderer(Templates())
	if err != nil {
		return nil, err
	}
	if err := checkVariants(r.Names()); err != nil {
		return nil, err
	}
	return NewRegistry(r), nil
}

// checkVariants reports the first kind whose template is not among names.
func checkVariants(names []string) error {
	for _, k := range AllKinds() {
		for _, n := range variants[k].templateNames() {
			if !slices.Contains(names, n) {
				return fmt.Errorf("%w: %s for %s", ErrTemplateNotFound, n, k)
			}
		}
	}
	return nil
}

// TemplateName returns the template used for kind under ctx.
func (r *Registry) TemplateName(kind Kind, ctx *Context) (string, error) {
	v, ok := variants[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	name := v.name
	switch {
	case v.bySource && v.kotlinOnly && !ctx.Kotlin:
		return "", fmt.Errorf("%w: %s requires kotlin", ErrNoVariant, kind)
	case v.bySource && ctx.Kotlin:
		name += ".kt"
	case v.bySource:
		name += ".java"
	case v.byScript && ctx.KTS:
		name += ".kts"
	}
	return name + TemplateExt, nil
}

// Render renders the artifact of the given kind.
func (r *Registry) Render(kind Kind, ctx *Context, opts ...RenderOption) ([]byte, error) {
	name, err := r.TemplateName(kind, ctx)
	if err != nil {
		return nil, err
	}

	data := &renderData{Context: ctx}
	for _, opt := range opts {
		opt(data)
	}

	out, err := r.renderer.Render(name, data)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", kind, err)
	}
	return out, nil
}
