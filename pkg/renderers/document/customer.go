package document

import (
	"html"
	"strings"

	"github.com/goliatone/go-quotegen/pkg/quote"
)

// customerInfo assembles the customer block: bold name, then address, phone,
// and email lines, each omitted entirely when blank.
func customerInfo(meta quote.Metadata) string {
	lines := make([]string, 0, 4)

	if name := strings.TrimSpace(meta.CustomerName); name != "" {
		lines = append(lines, "<strong>"+html.EscapeString(name)+"</strong>")
	}
	if address := strings.TrimSpace(meta.Address); address != "" {
		lines = append(lines, newlineToBreak(html.EscapeString(address)))
	}
	if phone := strings.TrimSpace(meta.Phone); phone != "" {
		lines = append(lines, "Phone: "+html.EscapeString(phone))
	}
	if email := strings.TrimSpace(meta.Email); email != "" {
		lines = append(lines, "Email: "+html.EscapeString(email))
	}

	return strings.Join(lines, "<br>")
}
