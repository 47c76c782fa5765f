// Package pricing defines the contract the quote renderer uses to obtain
// computed totals, together with a rate-card backed reference implementation.
// The production calculation engine is an external collaborator; renderers
// only depend on the Provider interface.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/goliatone/go-quotegen/pkg/quote"
)

// AccessoryKind keys the unit-price lookup exposed by providers.
type AccessoryKind string

const (
	AccessoryMotor               AccessoryKind = "motor"
	AccessoryRemote              AccessoryKind = "remote"
	AccessoryRemoteSingleChannel AccessoryKind = "remote-single-channel"
	AccessoryCharger             AccessoryKind = "charger"
	AccessoryCord                AccessoryKind = "cord"
)

// Summary holds the aggregate figures a single render consumes. It is a
// read-only value object; renderers never mutate it.
type Summary struct {
	// RollerPrice is the undiscounted roller-blind subtotal;
	// DiscountedRollerPrice is the same subtotal after discounting. The
	// difference is presented to the customer as savings.
	RollerPrice           decimal.Decimal
	DiscountedRollerPrice decimal.Decimal

	// AccessorySum covers installation accessories, MotorisedAccessorySum
	// covers motors, remotes and chargers. Either may be zero, in which
	// case its summary row is omitted.
	AccessorySum          decimal.Decimal
	MotorisedAccessorySum decimal.Decimal

	DeliveryFee     decimal.Decimal
	InstallationFee decimal.Decimal
	RemovalFee      decimal.Decimal

	// PriceMultiplier is applied uniformly to per-item line prices for
	// display. Zero is treated as 1 by renderers.
	PriceMultiplier decimal.Decimal

	// Subtotal is the computed tax-inclusive grand total before any
	// manually entered final offer price overrides it.
	Subtotal decimal.Decimal
}

// Multiplier returns the display multiplier, defaulting to 1 when unset.
func (s Summary) Multiplier() decimal.Decimal {
	if s.PriceMultiplier.IsZero() {
		return decimal.NewFromInt(1)
	}
	return s.PriceMultiplier
}

// Provider computes a Summary for an order plus fee selection and resolves
// accessory unit prices by kind.
type Provider interface {
	Summarize(order quote.Order, fees quote.FeeSelection) (Summary, error)
	UnitPrice(kind AccessoryKind) (decimal.Decimal, bool)
}
