// Package quotegen renders printable quotation documents for custom
// window-covering orders. The root package is a thin facade over
// pkg/renderers/document for callers that just want HTML output; advanced
// callers wire the sub-packages directly.
package quotegen

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-quotegen/pkg/quote"
	"github.com/goliatone/go-quotegen/pkg/render"
	"github.com/goliatone/go-quotegen/pkg/renderers/document"
	"github.com/goliatone/go-quotegen/pkg/templates"
)

// Request bundles the order, fee selection, and metadata of one render call.
type Request = render.Request

// RenderOptions carries per-request placeholder overrides.
type RenderOptions = render.RenderOptions

// Item, Order, FeeSelection, and Metadata are re-exported so simple callers
// only import the root package.
type (
	Item         = quote.Item
	Order        = quote.Order
	FeeSelection = quote.FeeSelection
	Metadata     = quote.Metadata
)

// TemplateSet is the immutable pair of fetched template documents.
type TemplateSet = templates.Set

// GenerateHTML builds a document renderer with the supplied options and
// renders the request. It is the simplest entry point for callers that just
// want the finished page.
func GenerateHTML(ctx context.Context, req Request, options ...document.Option) ([]byte, error) {
	renderer, err := document.New(options...)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, req, render.RenderOptions{})
}

// DefaultRegistry returns a renderer registry with the built-in document
// renderer registered under its name.
func DefaultRegistry(options ...document.Option) (*render.Registry, error) {
	renderer, err := document.New(options...)
	if err != nil {
		return nil, err
	}
	registry := render.NewRegistry()
	if err := registry.Register(renderer); err != nil {
		return nil, err
	}
	return registry, nil
}

// DefaultTemplates exposes the embedded summary/detail bundle.
func DefaultTemplates() TemplateSet {
	return document.DefaultTemplates()
}

// AssetsFS exposes the embedded default assets (templates, action bar,
// script) for callers that serve or customize them.
func AssetsFS() fs.FS {
	return document.AssetsFS()
}
