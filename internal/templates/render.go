// Package templates renders the HTML fragments patched into the viewer
// page over Datastar SSE.
package templates

import (
	"bytes"
	"html/template"
	"path/filepath"
	"sync"

	"parkmap/internal/zone"
)

var funcMap = template.FuncMap{
	// display renders a raw zone name in its human-readable form.
	"display": zone.DisplayName,
}

// Renderer manages HTML fragment templates.
type Renderer struct {
	mu        sync.RWMutex
	templates *template.Template
}

// New parses every *.html fragment in fragmentsDir.
func New(fragmentsDir string) (*Renderer, error) {
	tmpl, err := template.New("").Funcs(funcMap).ParseGlob(filepath.Join(fragmentsDir, "*.html"))
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: tmpl}, nil
}

// Render renders a named fragment to a string.
func (r *Renderer) Render(name string, data any) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToBuffer renders a named fragment into buf.
func (r *Renderer) RenderToBuffer(buf *bytes.Buffer, name string, data any) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.templates.ExecuteTemplate(buf, name, data)
}

// Reload re-parses fragments from disk (dev hot-reload).
func (r *Renderer) Reload(fragmentsDir string) error {
	tmpl, err := template.New("").Funcs(funcMap).ParseGlob(filepath.Join(fragmentsDir, "*.html"))
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.templates = tmpl
	r.mu.Unlock()
	return nil
}
