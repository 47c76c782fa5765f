// Package document renders the printable quotation page: it merges the
// summary and per-item detail templates, fills both from one data mapping,
// and injects the action bar plus the clipboard/print script.
package document

import (
	"context"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-quotegen/internal/htmldoc"
	"github.com/goliatone/go-quotegen/pkg/pricing"
	"github.com/goliatone/go-quotegen/pkg/render"
	tmpl "github.com/goliatone/go-quotegen/pkg/render/template"
	"github.com/goliatone/go-quotegen/pkg/render/template/placeholder"
	"github.com/goliatone/go-quotegen/pkg/templates"
)

type Option func(*config)

type config struct {
	templates templates.Set
	engine    tmpl.Engine
	provider  pricing.Provider
	logger    zerolog.Logger
	sanitizer *bluemonday.Policy
	actionBar string
	script    string
}

// WithTemplates supplies the summary/detail pair. Pass a zero Set to model
// the not-yet-fetched state; renders will fail fast with
// render.ErrTemplatesNotReady.
func WithTemplates(set templates.Set) Option {
	return func(cfg *config) {
		cfg.templates = set
	}
}

// WithEngine injects a custom template engine implementation.
func WithEngine(engine tmpl.Engine) Option {
	return func(cfg *config) {
		if engine != nil {
			cfg.engine = engine
		}
	}
}

// WithProvider injects the pricing provider used to compute totals.
func WithProvider(provider pricing.Provider) Option {
	return func(cfg *config) {
		if provider != nil {
			cfg.provider = provider
		}
	}
}

// WithLogger attaches a logger; renders that fail for readiness reasons are
// reported through it.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithSanitizer applies a bluemonday policy to free-text notes/terms before
// newline conversion. Off by default: the documented contract only performs
// newline-to-break conversion.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		cfg.sanitizer = policy
	}
}

// WithActionFragments overrides the injected action bar and script, e.g. to
// drop them for email delivery. Empty strings remove the fragments.
func WithActionFragments(bar, script string) Option {
	return func(cfg *config) {
		cfg.actionBar = bar
		cfg.script = script
	}
}

// Renderer produces the final self-contained HTML quotation document.
type Renderer struct {
	templates templates.Set
	engine    tmpl.Engine
	provider  pricing.Provider
	logger    zerolog.Logger
	sanitizer *bluemonday.Policy
	actionBar string
	script    string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the document renderer applying any provided options.
// Defaults: embedded templates, the placeholder engine, a rate-card provider,
// and a no-op logger.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templates: DefaultTemplates(),
		logger:    zerolog.Nop(),
		actionBar: actionBarFragment(),
		script:    actionScriptFragment(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.engine == nil {
		cfg.engine = placeholder.New()
	}
	if cfg.provider == nil {
		cfg.provider = pricing.NewTableProvider(pricing.DefaultRateCard())
	}

	return &Renderer{
		templates: cfg.templates,
		engine:    cfg.engine,
		provider:  cfg.provider,
		logger:    cfg.logger,
		sanitizer: cfg.sanitizer,
		actionBar: cfg.actionBar,
		script:    cfg.script,
	}, nil
}

func (r *Renderer) Name() string {
	return "document"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the merged quotation document. It is pure with respect to
// its inputs: identical requests against the same renderer yield identical
// bytes.
func (r *Renderer) Render(ctx context.Context, req render.Request, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !r.templates.Ready() {
		r.logger.Error().Msg("document renderer: templates not loaded, skipping render")
		return nil, render.ErrTemplatesNotReady
	}

	summary, err := r.provider.Summarize(req.Order, req.Fees)
	if err != nil {
		return nil, fmt.Errorf("document renderer: compute pricing summary: %w", err)
	}

	data := buildTemplateData(req, summary, r.sanitizeFunc())
	for key, value := range options.Values {
		data[key] = value
	}

	detailDoc, err := r.engine.Expand(r.templates.Detail, data)
	if err != nil {
		return nil, fmt.Errorf("document renderer: expand detail template: %w", err)
	}

	body, ok := htmldoc.BodyContent(detailDoc)
	if !ok {
		return nil, fmt.Errorf("document renderer: detail template has no body region: %w", render.ErrMalformedTemplate)
	}

	merged := r.templates.Summary
	if style, ok := htmldoc.StyleBlock(detailDoc); ok {
		merged = htmldoc.InsertBeforeCloseHead(merged, style)
	}
	merged = htmldoc.InsertBeforeCloseBody(merged, body)

	// Second pass so page-one placeholders resolve; already-substituted
	// detail content is stable under re-expansion.
	merged, err = r.engine.Expand(merged, data)
	if err != nil {
		return nil, fmt.Errorf("document renderer: expand merged document: %w", err)
	}

	if r.actionBar != "" {
		merged = htmldoc.InsertAfterBodyOpen(merged, r.actionBar)
	}
	if r.script != "" {
		merged = htmldoc.InsertBeforeCloseBody(merged, r.script)
	}

	return []byte(merged), nil
}

func (r *Renderer) sanitizeFunc() func(string) string {
	if r.sanitizer == nil {
		return nil
	}
	return r.sanitizer.Sanitize
}
