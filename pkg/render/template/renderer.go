// Package template defines the engine contract renderers expand template
// content through. The default implementation lives in the placeholder
// sub-package; pongo adapts pongo2 for callers whose custom templates need
// filters and control flow.
package template

// Engine expands template content against a data mapping and returns the
// resulting document.
type Engine interface {
	Expand(content string, data map[string]any) (string, error)
}
