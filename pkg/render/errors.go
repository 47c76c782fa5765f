package render

import "errors"

// ErrTemplatesNotReady is returned when a render is invoked before both
// template documents were fetched. It is non-fatal: the caller can retry once
// the templates resolve.
var ErrTemplatesNotReady = errors.New("render: templates not ready")

// ErrMalformedTemplate is returned when a fetched template lacks a region the
// splice pipeline requires (a complete body element in the detail page).
var ErrMalformedTemplate = errors.New("render: malformed template")
