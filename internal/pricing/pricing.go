package pricing

import (
	"github.com/shopspring/decimal"

	"storefront/internal/api"
	"storefront/internal/cart"
)

// Totals is the money summary shown on the checkout page and sent with the
// order. All figures derive deterministically from the cart, the selected
// governorate and the applied discount; nothing is cached.
type Totals struct {
	Subtotal       float64
	ShippingFee    float64
	DiscountAmount float64
	Total          float64
}

// Subtotal sums unit price times quantity over the cart.
func Subtotal(items []cart.LineItem) float64 {
	var subtotal float64
	for _, item := range items {
		subtotal += item.UnitPrice * float64(item.Quantity)
	}
	return subtotal
}

// ShippingFeeFor picks the fee whose governorate exactly matches the
// selection. No selection or no match means no fee, not an error; the form
// blocks submission separately when no governorate is chosen.
func ShippingFeeFor(fees []api.ShippingFee, governorate string) float64 {
	for _, entry := range fees {
		if entry.Governorate == governorate {
			return entry.Fee
		}
	}
	return 0
}

// DiscountAmount derives the monetary effect of a resolved discount code on
// the given subtotal. Percentage discounts are clamped to the descriptor's
// max amount when one is set; fixed discounts apply as-is and are not
// compared against the subtotal. The floor in Compute keeps the total from
// going negative.
func DiscountAmount(subtotal float64, code api.DiscountCode) float64 {
	if code.PercentageValue != nil && *code.PercentageValue > 0 {
		amount := subtotal * *code.PercentageValue / 100
		if code.MaxDiscountAmount != nil && amount > *code.MaxDiscountAmount {
			amount = *code.MaxDiscountAmount
		}
		return amount
	}
	if code.FixedValue != nil && *code.FixedValue > 0 {
		return *code.FixedValue
	}
	return 0
}

// Compute aggregates the four checkout figures. discountAmount is zero when
// no code is applied.
func Compute(items []cart.LineItem, fees []api.ShippingFee, governorate string, discountAmount float64) Totals {
	subtotal := Subtotal(items)
	shippingFee := ShippingFeeFor(fees, governorate)

	total := subtotal - discountAmount + shippingFee
	if total < 0 {
		total = 0
	}

	return Totals{
		Subtotal:       subtotal,
		ShippingFee:    shippingFee,
		DiscountAmount: discountAmount,
		Total:          total,
	}
}

// Round2 rounds a monetary amount to two decimal places.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Format renders a monetary amount with exactly two decimals, the way every
// figure is displayed and serialized.
func Format(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
