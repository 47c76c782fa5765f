package quote

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestItemBillable(t *testing.T) {
	width, height := 1200, 2100

	cases := []struct {
		name string
		item Item
		want bool
	}{
		{"both dimensions", Item{Width: &width, Height: &height}, true},
		{"missing height", Item{Width: &width}, false},
		{"missing width", Item{Height: &height}, false},
		{"no dimensions", Item{Fabric: "Vibe", LinePrice: decimal.NewFromInt(50)}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.item.Billable(); got != tc.want {
				t.Fatalf("Billable() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestOrderBillableCount(t *testing.T) {
	width, height := 600, 900
	order := Order{Items: []Item{
		{Width: &width, Height: &height},
		{Width: &width},
		{Height: &height},
		{Width: &width, Height: &height},
	}}

	if got := order.BillableCount(); got != 2 {
		t.Fatalf("BillableCount() = %d, want 2", got)
	}
}

func TestFabricTypeIsBlockout(t *testing.T) {
	for _, code := range []FabricType{FabricBlockout1, FabricBlockout2, FabricBlockout3, FabricBlockout4, FabricBlockout5} {
		if !code.IsBlockout() {
			t.Fatalf("expected %s to be blockout", code)
		}
	}
	for _, code := range []FabricType{FabricScreen, FabricLightFilter, FabricType(""), FabricType("XX")} {
		if code.IsBlockout() {
			t.Fatalf("expected %s not to be blockout", code)
		}
	}
}

func TestFeeSelectionDeliveryQuantity(t *testing.T) {
	if got := (FeeSelection{}).DeliveryQuantity(); got != 1 {
		t.Fatalf("default delivery quantity = %d, want 1", got)
	}

	qty := 3
	if got := (FeeSelection{DeliveryQty: &qty}).DeliveryQuantity(); got != 3 {
		t.Fatalf("delivery quantity = %d, want 3", got)
	}

	zero := 0
	if got := (FeeSelection{DeliveryQty: &zero}).DeliveryQuantity(); got != 0 {
		t.Fatalf("explicit zero delivery quantity = %d, want 0", got)
	}
}

func TestMetadataDocumentTitle(t *testing.T) {
	cases := []struct {
		name string
		meta Metadata
		want string
	}{
		{"all parts", Metadata{QuoteNumber: "Q-1042", CustomerName: "Jane Doe", Phone: "0400 000 000"}, "Q-1042 Jane Doe 0400 000 000"},
		{"missing phone", Metadata{QuoteNumber: "Q-1042", CustomerName: "Jane Doe"}, "Q-1042 Jane Doe"},
		{"only customer", Metadata{CustomerName: "Jane Doe"}, "Jane Doe"},
		{"blank parts trimmed", Metadata{QuoteNumber: "  ", CustomerName: "Jane"}, "Jane"},
		{"empty", Metadata{}, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.meta.DocumentTitle(); got != tc.want {
				t.Fatalf("DocumentTitle() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMetadataTermsOrDefault(t *testing.T) {
	if got := (Metadata{}).TermsOrDefault(); got != DefaultTerms {
		t.Fatalf("expected default terms, got %q", got)
	}
	if got := (Metadata{Terms: "Net 7"}).TermsOrDefault(); got != "Net 7" {
		t.Fatalf("expected explicit terms, got %q", got)
	}
}
