package render

// RenderOptions describe per-request data renderers can use to customise
// their output without touching the request's domain values.
type RenderOptions struct {
	// Values adds or overrides placeholder values in the template data
	// mapping. Keys already produced by the renderer win unless listed
	// here.
	Values map[string]any
}
