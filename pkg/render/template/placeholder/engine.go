// Package placeholder implements the quote templating dialect: tokens of the
// form {{key}} or {{{key}}} are replaced with the mapping's value for key,
// and unknown tokens pass through unchanged. It is an explicit tokenizer over
// literal text and markers rather than a regex substitution, so template
// content that merely resembles a token can never corrupt the output.
package placeholder

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-quotegen/pkg/render/template"
)

// Engine is stateless; the zero value is ready to use.
type Engine struct{}

var _ template.Engine = (*Engine)(nil)

// New returns a placeholder engine.
func New() *Engine {
	return &Engine{}
}

// Expand substitutes every resolvable token in content. It never fails:
// unresolved or malformed tokens are emitted verbatim.
func (e *Engine) Expand(content string, data map[string]any) (string, error) {
	var b strings.Builder
	b.Grow(len(content))

	i := 0
	for i < len(content) {
		idx := strings.Index(content[i:], "{{")
		if idx < 0 {
			b.WriteString(content[i:])
			break
		}
		b.WriteString(content[i : i+idx])
		start := i + idx

		braces := 2
		if start+2 < len(content) && content[start+2] == '{' {
			braces = 3
		}

		keyStart := start + braces
		closing := strings.Repeat("}", braces)
		end := strings.Index(content[keyStart:], closing)
		if end < 0 {
			// No matching close for this marker width. Emit one brace and
			// rescan so narrower tokens that follow still resolve.
			b.WriteByte('{')
			i = start + 1
			continue
		}

		key := content[keyStart : keyStart+end]
		tokenEnd := keyStart + end + braces

		trimmed := strings.TrimSpace(key)
		if !validKey(trimmed) {
			b.WriteString(content[start:keyStart])
			i = keyStart
			continue
		}

		value, ok := data[trimmed]
		if !ok {
			// Unknown keys are a silent pass-through.
			b.WriteString(content[start:tokenEnd])
			i = tokenEnd
			continue
		}

		b.WriteString(stringify(value))
		i = tokenEnd
	}

	return b.String(), nil
}

func validKey(key string) bool {
	if key == "" {
		return false
	}
	return !strings.ContainsAny(key, "{}\n")
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
