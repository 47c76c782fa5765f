package render

import (
	"context"

	"github.com/goliatone/go-quotegen/pkg/quote"
)

// Request bundles the three inputs of one render call. Renders are pure
// functions of a Request plus whatever templates the renderer was built with.
type Request struct {
	Order quote.Order
	Fees  quote.FeeSelection
	Meta  quote.Metadata
}

// Renderer converts a quotation request into a byte representation (HTML
// today; the registry leaves room for other formats).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, req Request, options RenderOptions) ([]byte, error)
}
