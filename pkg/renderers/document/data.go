package document

import (
	"github.com/goliatone/go-quotegen/pkg/pricing"
	"github.com/goliatone/go-quotegen/pkg/render"
)

// buildTemplateData assembles the placeholder mapping both template passes
// resolve against. Every money value is pre-formatted here so templates stay
// plain substitution targets.
func buildTemplateData(req render.Request, summary pricing.Summary, sanitize func(string) string) map[string]any {
	grand := summary.Subtotal
	if req.Meta.FinalOfferPrice != nil {
		grand = *req.Meta.FinalOfferPrice
	}

	savings := summary.RollerPrice.Sub(summary.DiscountedRollerPrice)

	notes := req.Meta.Notes
	terms := req.Meta.TermsOrDefault()
	if sanitize != nil {
		notes = sanitize(notes)
		terms = sanitize(terms)
	}

	return map[string]any{
		"docTitle":    req.Meta.DocumentTitle(),
		"quoteNumber": req.Meta.QuoteNumber,
		"issueDate":   req.Meta.IssueDate,
		"dueDate":     req.Meta.DueDate,

		"customerInfo": customerInfo(req.Meta),
		"detailRows":   detailRows(req.Order, summary),
		"summaryRows":  summaryRows(req.Order, req.Fees, summary),

		"rollerPrice":           formatCurrency(summary.RollerPrice),
		"discountedRollerPrice": formatCurrency(summary.DiscountedRollerPrice),
		"accessorySum":          formatOptionalCurrency(summary.AccessorySum),
		"motorisedAccessorySum": formatOptionalCurrency(summary.MotorisedAccessorySum),
		"deliveryFee":           formatOptionalCurrency(summary.DeliveryFee),
		"installationFee":       formatOptionalCurrency(summary.InstallationFee),
		"removalFee":            formatOptionalCurrency(summary.RemovalFee),
		"savings":               formatOptionalCurrency(savings),

		"subTotal":   formatCurrency(summary.Subtotal),
		"grandTotal": formatCurrency(grand),
		"gst":        formatCurrency(gstComponent(grand)),
		"deposit":    formatCurrency(halfOf(grand)),
		"balance":    formatCurrency(halfOf(grand)),

		"itemCount": req.Order.BillableCount(),

		"notes": newlineToBreak(notes),
		"terms": newlineToBreak(terms),
	}
}
