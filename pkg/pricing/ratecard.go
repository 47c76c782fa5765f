package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/goliatone/go-quotegen/pkg/quote"
)

// RateCard carries the flat rates the TableProvider prices against.
type RateCard struct {
	// DiscountPercent is the roller-blind discount expressed as a
	// percentage, e.g. 15 for a 15% discount.
	DiscountPercent decimal.Decimal

	DeliveryRate     decimal.Decimal
	InstallationRate decimal.Decimal
	RemovalRate      decimal.Decimal

	// PriceMultiplier scales per-item line prices for display. Zero means
	// no scaling.
	PriceMultiplier decimal.Decimal

	Accessories map[AccessoryKind]decimal.Decimal
}

// DefaultRateCard returns a card with zero discount and common accessory
// prices, useful for examples and tests.
func DefaultRateCard() RateCard {
	return RateCard{
		DeliveryRate:     decimal.NewFromInt(35),
		InstallationRate: decimal.NewFromInt(25),
		RemovalRate:      decimal.NewFromInt(10),
		Accessories: map[AccessoryKind]decimal.Decimal{
			AccessoryMotor:               decimal.NewFromInt(220),
			AccessoryRemote:              decimal.NewFromInt(90),
			AccessoryRemoteSingleChannel: decimal.NewFromInt(45),
			AccessoryCharger:             decimal.NewFromInt(30),
			AccessoryCord:                decimal.NewFromInt(15),
		},
	}
}

// TableProvider is a rate-card driven Provider. It exists so the module
// renders end to end without the external calculation engine; production
// deployments inject their own Provider instead.
type TableProvider struct {
	card RateCard
}

var _ Provider = (*TableProvider)(nil)

// NewTableProvider constructs a provider over the supplied rate card.
func NewTableProvider(card RateCard) *TableProvider {
	return &TableProvider{card: card}
}

// Summarize aggregates billable line prices, accessory counts, and fees into
// a Summary. Excluded fees still report their nominal figure; exclusion only
// removes them from the tax-inclusive subtotal.
func (p *TableProvider) Summarize(order quote.Order, fees quote.FeeSelection) (Summary, error) {
	if fees.DeliveryQuantity() < 0 || fees.RemovalQty < 0 {
		return Summary{}, fmt.Errorf("pricing: negative fee quantity")
	}

	roller := decimal.Zero
	motorised := 0
	for _, item := range order.Items {
		if !item.Billable() {
			continue
		}
		roller = roller.Add(item.LinePrice)
		if item.Motorised {
			motorised++
		}
	}

	discounted := roller
	if p.card.DiscountPercent.IsPositive() {
		factor := decimal.NewFromInt(1).Sub(p.card.DiscountPercent.Div(decimal.NewFromInt(100)))
		discounted = roller.Mul(factor).Round(2)
	}

	accessorySum := p.unitPrice(AccessoryCord).Mul(decimal.NewFromInt(int64(fees.CordCount)))

	motorisedSum := p.unitPrice(AccessoryMotor).Mul(decimal.NewFromInt(int64(motorised))).
		Add(p.unitPrice(AccessoryRemote).Mul(decimal.NewFromInt(int64(fees.RemoteCount)))).
		Add(p.unitPrice(AccessoryRemoteSingleChannel).Mul(decimal.NewFromInt(int64(fees.SingleChannelRemoteCount)))).
		Add(p.unitPrice(AccessoryCharger).Mul(decimal.NewFromInt(int64(fees.ChargerCount))))

	delivery := p.card.DeliveryRate.Mul(decimal.NewFromInt(int64(fees.DeliveryQuantity())))
	installation := p.card.InstallationRate.Mul(decimal.NewFromInt(int64(order.BillableCount())))
	removal := p.card.RemovalRate.Mul(decimal.NewFromInt(int64(fees.RemovalQty)))

	subtotal := discounted.Add(accessorySum).Add(motorisedSum)
	if !fees.ExcludeDelivery {
		subtotal = subtotal.Add(delivery)
	}
	if !fees.ExcludeInstallation {
		subtotal = subtotal.Add(installation)
	}
	if !fees.ExcludeRemoval {
		subtotal = subtotal.Add(removal)
	}

	return Summary{
		RollerPrice:           roller,
		DiscountedRollerPrice: discounted,
		AccessorySum:          accessorySum,
		MotorisedAccessorySum: motorisedSum,
		DeliveryFee:           delivery,
		InstallationFee:       installation,
		RemovalFee:            removal,
		PriceMultiplier:       p.card.PriceMultiplier,
		Subtotal:              subtotal.Round(2),
	}, nil
}

// UnitPrice resolves an accessory rate from the card.
func (p *TableProvider) UnitPrice(kind AccessoryKind) (decimal.Decimal, bool) {
	price, ok := p.card.Accessories[kind]
	return price, ok
}

func (p *TableProvider) unitPrice(kind AccessoryKind) decimal.Decimal {
	price, ok := p.card.Accessories[kind]
	if !ok {
		return decimal.Zero
	}
	return price
}
