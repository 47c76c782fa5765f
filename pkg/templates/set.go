package templates

import "strings"

// Set holds the two cached template documents for a renderer's lifetime. The
// zero value is the not-ready state; renders against it fail fast.
type Set struct {
	// Summary is the page-one document that receives the spliced detail
	// fragments. Detail is the per-item list document whose style and body
	// are extracted and merged in.
	Summary string
	Detail  string
}

// Ready reports whether both documents were fetched with non-blank content.
func (s Set) Ready() bool {
	return strings.TrimSpace(s.Summary) != "" && strings.TrimSpace(s.Detail) != ""
}
