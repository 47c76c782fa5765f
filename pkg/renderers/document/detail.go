package document

import (
	"fmt"
	"html"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/goliatone/go-quotegen/pkg/pricing"
	"github.com/goliatone/go-quotegen/pkg/quote"
)

// detailColumnWidths are the fixed percentage widths of the item table, in
// column order: index, fabric, colour, location, winder, dual, motor, price.
var detailColumnWidths = [...]int{5, 20, 15, 12, 9, 9, 9, 13}

// rowClass picks the background class for an item row. Light-filter fabrics
// win over the screen code, which wins over the blockout tier set.
func rowClass(item quote.Item) string {
	if strings.Contains(strings.ToLower(item.Fabric), "light-filter") {
		return "light-filter"
	}
	if item.FabricType == quote.FabricScreen {
		return "screen"
	}
	if item.FabricType.IsBlockout() {
		return "blockout"
	}
	return ""
}

// detailRows renders one <tr> per billable item. Items missing a dimension
// are skipped entirely and never consume a sequence number.
func detailRows(order quote.Order, summary pricing.Summary) string {
	multiplier := summary.Multiplier()

	var b strings.Builder
	seq := 0
	for _, item := range order.Items {
		if !item.Billable() {
			continue
		}
		seq++
		b.WriteString(detailRow(seq, item, multiplier))
	}
	return b.String()
}

func detailRow(seq int, item quote.Item, multiplier decimal.Decimal) string {
	price := item.LinePrice.Mul(multiplier).Round(2)

	cells := []string{
		fmt.Sprintf("%d", seq),
		html.EscapeString(item.Fabric),
		html.EscapeString(item.Color),
		html.EscapeString(item.Location),
		tick(item.HeavyDutyWinder),
		tick(item.DualBracket),
		tick(item.Motorised),
		formatCurrency(price),
	}

	var b strings.Builder
	if cls := rowClass(item); cls != "" {
		b.WriteString(`<tr class="` + cls + `">`)
	} else {
		b.WriteString("<tr>")
	}
	for i, content := range cells {
		b.WriteString(detailCell(content, detailColumnWidths[i]))
	}
	b.WriteString("</tr>\n")
	return b.String()
}

func detailCell(content string, width int) string {
	if content == "" {
		return fmt.Sprintf(`<td class="empty" style="width:%d%%"></td>`, width)
	}
	return fmt.Sprintf(`<td style="width:%d%%">%s</td>`, width, content)
}

func tick(on bool) string {
	if on {
		return checkMark
	}
	return ""
}
