// Package pongo adapts pongo2 to the template.Engine contract for callers
// whose custom quote templates need filters, conditionals, or loops. The
// placeholder engine remains the default: pongo2 collapses unknown variables
// to empty output instead of passing tokens through, so this adapter is
// opt-in.
package pongo

import (
	"fmt"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-quotegen/pkg/render/template"
)

// Engine compiles template content with pongo2, caching compiled templates by
// their content.
type Engine struct {
	mu    sync.Mutex
	cache map[string]*pongo2.Template
}

var _ template.Engine = (*Engine)(nil)

// New constructs a pongo2-backed engine.
func New() *Engine {
	return &Engine{cache: make(map[string]*pongo2.Template)}
}

// Expand compiles and executes the content against the data mapping.
func (e *Engine) Expand(content string, data map[string]any) (string, error) {
	tmpl, err := e.compile(content)
	if err != nil {
		return "", fmt.Errorf("pongo: parse template: %w", err)
	}

	out, err := tmpl.Execute(pongo2.Context(data))
	if err != nil {
		return "", fmt.Errorf("pongo: execute template: %w", err)
	}
	return out, nil
}

func (e *Engine) compile(content string) (*pongo2.Template, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.cache[content]; ok {
		return tmpl, nil
	}

	tmpl, err := pongo2.FromString(content)
	if err != nil {
		return nil, err
	}
	e.cache[content] = tmpl
	return tmpl, nil
}
