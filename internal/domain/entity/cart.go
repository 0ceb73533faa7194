package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// CartLine is one product entry in a buyer's cart. A cart holds at most one
// line per distinct product; adding an already-present product increments the
// line's quantity instead of duplicating it.
type CartLine struct {
	BuyerID        uuid.UUID
	ProductID      uuid.UUID
	ProductName    string  // Resolved from the catalogue on read.
	ImageURL       string  // First product image, resolved on read.
	Quantity       int     // Always >= 1; a line at quantity 0 is removed.
	PriceAtAddTime float64 // Price snapshot captured when the line was created. Never recomputed.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// LineTotal returns the derived total for this line. Never persisted.
func (l *CartLine) LineTotal() float64 {
	return float64(l.Quantity) * l.PriceAtAddTime
}

// Cart is the collection of a buyer's current lines. It exists only as a
// read projection over the buyer's cart lines; totals are a pure function of
// the lines and are re-derived on every read.
type Cart struct {
	BuyerID uuid.UUID
	Lines   []*CartLine
}

// Pricing carries the configured cart pricing rules.
type Pricing struct {
	// TaxRatePercent is the tax percentage applied to the subtotal.
	TaxRatePercent float64
	// ShippingFlatFee is charged while the subtotal is positive and below
	// FreeShippingThreshold. A zero fee makes shipping always free.
	ShippingFlatFee float64
	// FreeShippingThreshold is the subtotal at which shipping becomes free.
	FreeShippingThreshold float64
}

// Totals are the derived aggregate figures for a cart. They are computed
// fresh on every read and never stored.
type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	Shipping   float64 `json:"shipping"`
	Tax        float64 `json:"tax"`
	Total      float64 `json:"total"`
	TotalItems int     `json:"totalItems"`
}

// Totals computes the cart aggregate: subtotal is the sum of
// quantity x priceAtAddTime over current lines, tax is the configured
// percentage of the subtotal rounded to the nearest whole currency unit,
// and shipping follows the flat-fee-below-threshold rule.
func (c *Cart) Totals(p Pricing) Totals {
	var t Totals
	for _, line := range c.Lines {
		t.Subtotal += line.LineTotal()
		t.TotalItems += line.Quantity
	}

	t.Tax = math.Round(t.Subtotal * p.TaxRatePercent / 100)
	if t.Subtotal > 0 && t.Subtotal < p.FreeShippingThreshold {
		t.Shipping = p.ShippingFlatFee
	}
	t.Total = t.Subtotal + t.Shipping + t.Tax

	return t
}

// Line returns the line for the given product, or nil when the product is
// not in the cart.
func (c *Cart) Line(productID uuid.UUID) *CartLine {
	for _, line := range c.Lines {
		if line.ProductID == productID {
			return line
		}
	}

	return nil
}
