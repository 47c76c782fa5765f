package document

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/goliatone/go-quotegen/pkg/pricing"
	"github.com/goliatone/go-quotegen/pkg/quote"
)

func billableOrder(n int) quote.Order {
	items := make([]quote.Item, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, quote.Item{Width: intp(100), Height: intp(100), LinePrice: decimal.NewFromInt(100)})
	}
	return quote.Order{Items: items}
}

func TestSummaryRowsAlwaysPresent(t *testing.T) {
	rows := summaryRows(billableOrder(2), quote.FeeSelection{}, pricing.Summary{
		RollerPrice:           decimal.NewFromInt(200),
		DiscountedRollerPrice: decimal.NewFromInt(180),
	})

	for _, label := range []string{"Roller Blinds", "Delivery", "Installation", "Removal"} {
		if !strings.Contains(rows, label) {
			t.Fatalf("missing %q row:\n%s", label, rows)
		}
	}
	if strings.Contains(rows, "Accessories") {
		t.Fatalf("accessory rows should be absent when sums are zero:\n%s", rows)
	}
}

func TestSummaryRowsAccessoryVisibility(t *testing.T) {
	rows := summaryRows(billableOrder(1), quote.FeeSelection{}, pricing.Summary{
		AccessorySum:          decimal.Zero,
		MotorisedAccessorySum: decimal.NewFromInt(25),
	})

	if strings.Contains(rows, "Installation Accessories") {
		t.Fatalf("zero accessory sum should omit its row:\n%s", rows)
	}
	motorisedRow := ""
	for _, row := range strings.Split(rows, "\n") {
		if strings.Contains(row, "Motorised Accessories") {
			motorisedRow = row
		}
	}
	if motorisedRow == "" {
		t.Fatalf("motorised accessories row missing:\n%s", rows)
	}
	if strings.Count(motorisedRow, "$25.00") != 2 {
		t.Fatalf("both price columns should carry the sum: %s", motorisedRow)
	}
}

func TestSummaryRowsConsecutiveNumbering(t *testing.T) {
	// No accessory rows: fee rows must still number 2, 3, 4.
	rows := summaryRows(billableOrder(1), quote.FeeSelection{}, pricing.Summary{})

	for _, cell := range []string{"<td>1</td><td>Roller Blinds</td>", "<td>2</td><td>Delivery</td>", "<td>3</td><td>Installation</td>", "<td>4</td><td>Removal</td>"} {
		if !strings.Contains(rows, cell) {
			t.Fatalf("missing numbered row %q:\n%s", cell, rows)
		}
	}
}

func TestSummaryRowsQuantityDefaults(t *testing.T) {
	rows := summaryRows(billableOrder(3), quote.FeeSelection{}, pricing.Summary{})

	if !strings.Contains(rows, "<td>Delivery</td><td>1</td>") {
		t.Fatalf("delivery quantity should default to 1:\n%s", rows)
	}
	if !strings.Contains(rows, "<td>Installation</td><td>3</td>") {
		t.Fatalf("installation quantity should be the billable count:\n%s", rows)
	}
	if !strings.Contains(rows, "<td>Removal</td><td>0</td>") {
		t.Fatalf("removal quantity should default to 0:\n%s", rows)
	}
}

func TestSummaryRowsExclusionMarksDiscountedColumnOnly(t *testing.T) {
	rows := summaryRows(billableOrder(1), quote.FeeSelection{ExcludeDelivery: true}, pricing.Summary{
		DeliveryFee: decimal.NewFromInt(35),
	})

	deliveryRow := ""
	for _, row := range strings.Split(rows, "\n") {
		if strings.Contains(row, "Delivery") {
			deliveryRow = row
		}
	}
	if deliveryRow == "" {
		t.Fatal("delivery row missing")
	}
	if !strings.Contains(deliveryRow, "<td>$35.00</td>") {
		t.Fatalf("nominal fee cell should be unaffected: %s", deliveryRow)
	}
	if !strings.Contains(deliveryRow, `<td class="excluded">$0.00</td>`) {
		t.Fatalf("discounted cell should be zeroed and marked: %s", deliveryRow)
	}
}
