package document

import (
	"strings"

	"github.com/shopspring/decimal"
)

// checkMark fills the winder/bracket/motor columns; unticked cells stay blank.
const checkMark = "✓"

var (
	taxDivisor = decimal.RequireFromString("1.1")
	taxRate    = decimal.RequireFromString("0.1")
	two        = decimal.NewFromInt(2)
)

// formatCurrency renders a two-decimal, $-prefixed amount.
func formatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// formatOptionalCurrency renders like formatCurrency but collapses zero to an
// empty string, so optional fee fields never print $0.00.
func formatOptionalCurrency(amount decimal.Decimal) string {
	if amount.IsZero() {
		return ""
	}
	return formatCurrency(amount)
}

// gstComponent extracts the GST portion of a tax-inclusive total.
func gstComponent(total decimal.Decimal) decimal.Decimal {
	return total.Div(taxDivisor).Mul(taxRate).Round(2)
}

// halfOf splits the grand total for deposit/balance figures.
func halfOf(total decimal.Decimal) decimal.Decimal {
	return total.Div(two).Round(2)
}

// newlineToBreak converts line breaks for HTML display. Free text is carried
// verbatim otherwise; callers wanting sanitization opt in via WithSanitizer.
func newlineToBreak(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\n", "<br>")
}
