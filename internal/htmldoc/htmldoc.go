// Package htmldoc implements the small amount of HTML surgery the quote
// pipeline needs: extracting the style block and body content from one
// document and splicing fragments into another. It scans tags explicitly
// (case-insensitive, attribute-aware) instead of pattern matching raw text.
package htmldoc

import "strings"

// StyleBlock returns the first complete <style>...</style> element from the
// document, including its tags, and reports whether one was found.
func StyleBlock(doc string) (string, bool) {
	open, contentStart, ok := openTag(doc, "style", 0)
	if !ok {
		return "", false
	}
	closeIdx, ok := closeTag(doc, "style", contentStart)
	if !ok {
		return "", false
	}
	end := closeIdx + len("</style>")
	return doc[open:end], true
}

// BodyContent returns the inner content of the first <body> element and
// reports whether a complete body region was found.
func BodyContent(doc string) (string, bool) {
	_, contentStart, ok := openTag(doc, "body", 0)
	if !ok {
		return "", false
	}
	closeIdx, ok := closeTag(doc, "body", contentStart)
	if !ok {
		return "", false
	}
	return doc[contentStart:closeIdx], true
}

// InsertBeforeCloseHead splices the fragment immediately before </head>. The
// document is returned unchanged when no head close tag exists.
func InsertBeforeCloseHead(doc, fragment string) string {
	return insertBeforeClose(doc, "head", fragment)
}

// InsertBeforeCloseBody splices the fragment immediately before </body>. The
// document is returned unchanged when no body close tag exists.
func InsertBeforeCloseBody(doc, fragment string) string {
	return insertBeforeClose(doc, "body", fragment)
}

// InsertAfterBodyOpen splices the fragment immediately after the opening
// <body> tag. The document is returned unchanged when no body open tag
// exists.
func InsertAfterBodyOpen(doc, fragment string) string {
	_, contentStart, ok := openTag(doc, "body", 0)
	if !ok {
		return doc
	}
	return doc[:contentStart] + fragment + doc[contentStart:]
}

func insertBeforeClose(doc, name, fragment string) string {
	idx, ok := closeTag(doc, name, 0)
	if !ok {
		return doc
	}
	return doc[:idx] + fragment + doc[idx:]
}

// openTag locates an opening tag by name, tolerating attributes. It returns
// the tag's start offset and the offset just past its closing '>'.
func openTag(doc, name string, from int) (start, contentStart int, ok bool) {
	lower := strings.ToLower(doc)
	needle := "<" + name
	for i := from; i < len(lower); {
		idx := strings.Index(lower[i:], needle)
		if idx < 0 {
			return 0, 0, false
		}
		idx += i

		after := idx + len(needle)
		if after >= len(doc) {
			return 0, 0, false
		}
		// Reject partial matches such as <bodyguard>.
		switch c := doc[after]; {
		case c == '>' || c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '/':
			end := strings.IndexByte(doc[after:], '>')
			if end < 0 {
				return 0, 0, false
			}
			return idx, after + end + 1, true
		default:
			i = after
		}
	}
	return 0, 0, false
}

// closeTag locates the first </name> at or after from.
func closeTag(doc, name string, from int) (int, bool) {
	lower := strings.ToLower(doc)
	idx := strings.Index(lower[from:], "</"+name+">")
	if idx < 0 {
		return 0, false
	}
	return from + idx, true
}
