package view

import (
	"bytes"
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// Errors.
var (
	ErrTemplateNotFound = errors.New("view: template not found")
	ErrRender           = errors.New("view: render failed")
)

// templateExt is appended to lookup names that omit it.
const templateExt = ".html"

// Renderer evaluates named templates from a single directory namespace.
//
// Lookup keys are path-like names relative to the namespace root
// ("tasks/index", "tasks/_list", "_layout/base"). Interpolated values
// are auto-escaped unless a template opts out with |safe, and missing
// context variables render as empty output rather than failing the
// request; only a missing template is fatal.
//
// A Renderer is safe for concurrent use. With caching enabled compiled
// templates are reused; with caching disabled (the development default)
// templates are recompiled from source on every call so edits show up
// without a restart.
type Renderer struct {
	set   *pongo2.TemplateSet
	cache map[string]*pongo2.Template
	mu    sync.RWMutex
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithCache enables compiled-template caching.
func WithCache() RendererOption {
	return func(r *Renderer) {
		r.cache = make(map[string]*pongo2.Template)
	}
}

// WithGlobals seeds values available to every template evaluation.
func WithGlobals(globals map[string]any) RendererOption {
	return func(r *Renderer) {
		if r.set.Globals == nil {
			r.set.Globals = make(pongo2.Context)
		}
		r.set.Globals.Update(pongo2.Context(globals))
	}
}

// NewRenderer creates a Renderer rooted at dir.
func NewRenderer(dir string, opts ...RendererOption) (*Renderer, error) {
	loader, err := pongo2.NewLocalFileSystemLoader(dir)
	if err != nil {
		return nil, fmt.Errorf("view: create template loader: %w", err)
	}

	r := &Renderer{
		set: pongo2.NewSet("views", loader),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Render evaluates the named template against ctx and returns the HTML.
// Returns an error wrapping ErrTemplateNotFound when the name has no
// corresponding source.
func (r *Renderer) Render(name string, ctx Context) (string, error) {
	tmpl, err := r.template(normalize(name))
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(pongo2.Context(ctx), &buf); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrRender, name, err)
	}

	return buf.String(), nil
}

// IsPartial reports whether the template name follows the fragment
// convention: file name prefixed with an underscore. Partials are
// composed into pages or returned as enhancement responses, never
// served as a standalone full page.
func IsPartial(name string) bool {
	return strings.HasPrefix(path.Base(normalize(name)), "_")
}

func (r *Renderer) template(p string) (*pongo2.Template, error) {
	if r.cache == nil {
		return r.compile(p)
	}

	r.mu.RLock()
	tmpl, ok := r.cache[p]
	r.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if tmpl, ok := r.cache[p]; ok {
		return tmpl, nil
	}

	tmpl, err := r.compile(p)
	if err != nil {
		return nil, err
	}

	r.cache[p] = tmpl
	return tmpl, nil
}

func (r *Renderer) compile(p string) (*pongo2.Template, error) {
	tmpl, err := r.set.FromFile(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, p, err)
	}
	return tmpl, nil
}

func normalize(name string) string {
	if !strings.HasSuffix(name, templateExt) {
		return name + templateExt
	}
	return name
}
