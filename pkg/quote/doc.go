// Package quote defines the immutable value objects a quotation render
// consumes: order items, fee selections, and document metadata. Nothing in
// this package is mutated after construction; renderers treat every value as
// read-only input for a single render call.
package quote
