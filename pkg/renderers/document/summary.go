package document

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/goliatone/go-quotegen/pkg/pricing"
	"github.com/goliatone/go-quotegen/pkg/quote"
)

// summaryRows renders the page-one line items. The roller-blind row and the
// three fee rows always appear; the accessory rows only when their sums are
// positive. Numbering stays consecutive from 1 whichever optional rows made
// the cut.
func summaryRows(order quote.Order, fees quote.FeeSelection, summary pricing.Summary) string {
	billable := order.BillableCount()

	var b strings.Builder
	num := 0
	next := func() int {
		num++
		return num
	}

	b.WriteString(summaryRow(
		next(),
		"Roller Blinds",
		fmt.Sprintf("%d", billable),
		formatCurrency(summary.RollerPrice),
		formatCurrency(summary.DiscountedRollerPrice),
		false,
	))

	if summary.AccessorySum.IsPositive() {
		price := formatCurrency(summary.AccessorySum)
		b.WriteString(summaryRow(next(), "Installation Accessories", "", price, price, false))
	}
	if summary.MotorisedAccessorySum.IsPositive() {
		price := formatCurrency(summary.MotorisedAccessorySum)
		b.WriteString(summaryRow(next(), "Motorised Accessories", "", price, price, false))
	}

	b.WriteString(feeRow(next(), "Delivery", fees.DeliveryQuantity(), summary.DeliveryFee, fees.ExcludeDelivery))
	b.WriteString(feeRow(next(), "Installation", billable, summary.InstallationFee, fees.ExcludeInstallation))
	b.WriteString(feeRow(next(), "Removal", fees.RemovalQty, summary.RemovalFee, fees.ExcludeRemoval))

	return b.String()
}

// feeRow keeps the nominal fee in the price column; exclusion only zeroes the
// discounted column and marks it.
func feeRow(num int, label string, qty int, fee decimal.Decimal, excluded bool) string {
	discounted := formatCurrency(fee)
	if excluded {
		discounted = formatCurrency(decimal.Zero)
	}
	return summaryRow(num, label, fmt.Sprintf("%d", qty), formatCurrency(fee), discounted, excluded)
}

func summaryRow(num int, label, qty, price, discounted string, excluded bool) string {
	discountedCell := `<td>` + discounted + `</td>`
	if excluded {
		discountedCell = `<td class="excluded">` + discounted + `</td>`
	}
	return fmt.Sprintf("<tr><td>%d</td><td>%s</td><td>%s</td><td>%s</td>%s</tr>\n",
		num, label, qty, price, discountedCell)
}
