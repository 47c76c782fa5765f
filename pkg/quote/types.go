package quote

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FabricType is the short code classifying a fabric's opacity/category.
type FabricType string

const (
	FabricScreen      FabricType = "SN"
	FabricBlockout1   FabricType = "B1"
	FabricBlockout2   FabricType = "B2"
	FabricBlockout3   FabricType = "B3"
	FabricBlockout4   FabricType = "B4"
	FabricBlockout5   FabricType = "B5"
	FabricLightFilter FabricType = "LF"
)

// IsBlockout reports whether the code belongs to the blockout tier set.
func (t FabricType) IsBlockout() bool {
	switch t {
	case FabricBlockout1, FabricBlockout2, FabricBlockout3, FabricBlockout4, FabricBlockout5:
		return true
	default:
		return false
	}
}

// Item is one priced window-covering unit. Width and Height are pointers
// because dimensions may be missing on draft rows; an item is only billable
// when both are present.
type Item struct {
	Width      *int
	Height     *int
	Fabric     string
	FabricType FabricType
	Color      string
	Location   string

	// HeavyDutyWinder marks the heavy-duty winder upgrade over the
	// standard chain winder.
	HeavyDutyWinder bool
	DualBracket     bool
	Motorised       bool

	// LinePrice is the computed price for this line before the
	// summary-level multiplier is applied.
	LinePrice decimal.Decimal
}

// Billable reports whether the item carries both dimensions and therefore
// appears in the detail table and counts toward the blind total.
func (i Item) Billable() bool {
	return i.Width != nil && i.Height != nil
}

// Order is the collection of items a quotation covers.
type Order struct {
	Items []Item
}

// BillableCount returns the number of items with both dimensions present.
func (o Order) BillableCount() int {
	count := 0
	for _, item := range o.Items {
		if item.Billable() {
			count++
		}
	}
	return count
}

// FeeSelection carries the per-quote fee toggles and accessory counts chosen
// in the host UI. Exclude* flags remove the matching fee from the discounted
// column only; the nominal column is unaffected.
type FeeSelection struct {
	ExcludeDelivery     bool
	ExcludeInstallation bool
	ExcludeRemoval      bool

	// DeliveryQty defaults to 1 when nil. RemovalQty defaults to 0, so a
	// plain int is enough.
	DeliveryQty *int
	RemovalQty  int

	RemoteCount              int
	SingleChannelRemoteCount int
	ChargerCount             int
	CordCount                int
}

// DeliveryQuantity resolves the delivery quantity, defaulting to one.
func (f FeeSelection) DeliveryQuantity() int {
	if f.DeliveryQty == nil {
		return 1
	}
	return *f.DeliveryQty
}

// DefaultTerms is the standard clause used when Metadata.Terms is blank.
const DefaultTerms = "Quotation valid for 30 days from the issue date. " +
	"A 50% deposit is required to confirm the order; the balance is due on completion of installation."

// Metadata is the customer/job information printed on the document.
type Metadata struct {
	QuoteNumber string
	IssueDate   string
	DueDate     string

	CustomerName string
	Address      string
	Phone        string
	Email        string

	Notes string
	Terms string

	// FinalOfferPrice, when set, overrides the computed tax-inclusive
	// total as the document's grand total.
	FinalOfferPrice *decimal.Decimal
}

// TermsOrDefault returns the free-text terms, falling back to DefaultTerms.
func (m Metadata) TermsOrDefault() string {
	if strings.TrimSpace(m.Terms) == "" {
		return DefaultTerms
	}
	return m.Terms
}

// DocumentTitle derives the document title from quote number, customer name
// and phone, space-joined, omitting whichever parts are blank.
func (m Metadata) DocumentTitle() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{m.QuoteNumber, m.CustomerName, m.Phone} {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, " ")
}
