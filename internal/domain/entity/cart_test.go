package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCart_Totals(t *testing.T) {
	buyerID := uuid.New()
	productID := uuid.New()

	tests := []struct {
		name    string
		lines   []*CartLine
		pricing Pricing
		want    Totals
	}{
		{
			name: "two units at snapshot price with default tax",
			lines: []*CartLine{
				{BuyerID: buyerID, ProductID: productID, Quantity: 2, PriceAtAddTime: 200},
			},
			pricing: Pricing{TaxRatePercent: 10},
			want:    Totals{Subtotal: 400, Tax: 40, Total: 440, TotalItems: 2},
		},
		{
			name: "multiple lines sum quantities and line totals",
			lines: []*CartLine{
				{Quantity: 1, PriceAtAddTime: 150},
				{Quantity: 3, PriceAtAddTime: 50},
			},
			pricing: Pricing{TaxRatePercent: 10},
			want:    Totals{Subtotal: 300, Tax: 30, Total: 330, TotalItems: 4},
		},
		{
			name: "flat shipping below the free threshold",
			lines: []*CartLine{
				{Quantity: 1, PriceAtAddTime: 100},
			},
			pricing: Pricing{TaxRatePercent: 10, ShippingFlatFee: 40, FreeShippingThreshold: 500},
			want:    Totals{Subtotal: 100, Shipping: 40, Tax: 10, Total: 150, TotalItems: 1},
		},
		{
			name: "free shipping at the threshold",
			lines: []*CartLine{
				{Quantity: 1, PriceAtAddTime: 500},
			},
			pricing: Pricing{TaxRatePercent: 10, ShippingFlatFee: 40, FreeShippingThreshold: 500},
			want:    Totals{Subtotal: 500, Shipping: 0, Tax: 50, Total: 550, TotalItems: 1},
		},
		{
			name: "tax is rounded to the nearest whole unit",
			lines: []*CartLine{
				{Quantity: 1, PriceAtAddTime: 55},
			},
			pricing: Pricing{TaxRatePercent: 10},
			want:    Totals{Subtotal: 55, Tax: 6, Total: 61, TotalItems: 1},
		},
		{
			name:    "empty cart charges nothing",
			lines:   nil,
			pricing: Pricing{TaxRatePercent: 10, ShippingFlatFee: 40, FreeShippingThreshold: 500},
			want:    Totals{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := &Cart{BuyerID: buyerID, Lines: tt.lines}
			assert.Equal(t, tt.want, cart.Totals(tt.pricing))
		})
	}
}

func TestCartLine_LineTotal(t *testing.T) {
	line := &CartLine{Quantity: 3, PriceAtAddTime: 199.5}
	assert.InDelta(t, 598.5, line.LineTotal(), 0.0001)
}

func TestCart_Line(t *testing.T) {
	inCart := uuid.New()
	absent := uuid.New()
	cart := &Cart{
		Lines: []*CartLine{
			{ProductID: inCart, Quantity: 1},
		},
	}

	assert.NotNil(t, cart.Line(inCart))
	assert.Nil(t, cart.Line(absent))
}
