package pricing

import (
	"testing"

	"storefront/internal/api"
	"storefront/internal/cart"
)

func floatPtr(v float64) *float64 { return &v }

func TestSubtotal(t *testing.T) {
	items := []cart.LineItem{
		{ProductID: "p1", UnitPrice: 100, Quantity: 2},
		{ProductID: "p2", UnitPrice: 49.5, Quantity: 1},
	}
	if got := Subtotal(items); got != 249.5 {
		t.Fatalf("expected subtotal 249.5, got %v", got)
	}
	if got := Subtotal(nil); got != 0 {
		t.Fatalf("expected empty cart subtotal 0, got %v", got)
	}
}

func TestShippingFeeForExactMatch(t *testing.T) {
	fees := []api.ShippingFee{
		{Governorate: "Cairo", Fee: 30},
		{Governorate: "Giza", Fee: 35},
	}

	if got := ShippingFeeFor(fees, "Giza"); got != 35 {
		t.Fatalf("expected fee 35 for Giza, got %v", got)
	}
	if got := ShippingFeeFor(fees, ""); got != 0 {
		t.Fatalf("expected fee 0 with no selection, got %v", got)
	}
	if got := ShippingFeeFor(fees, "cairo"); got != 0 {
		t.Fatalf("expected case-sensitive match to miss, got %v", got)
	}
	if got := ShippingFeeFor(fees, "Luxor"); got != 0 {
		t.Fatalf("expected fee 0 for unknown governorate, got %v", got)
	}
}

func TestDiscountAmountPercentage(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		code     api.DiscountCode
		want     float64
	}{
		{
			name:     "percentage without cap",
			subtotal: 200,
			code:     api.DiscountCode{PercentageValue: floatPtr(10)},
			want:     20,
		},
		{
			name:     "percentage clamped to cap",
			subtotal: 200,
			code:     api.DiscountCode{PercentageValue: floatPtr(10), MaxDiscountAmount: floatPtr(15)},
			want:     15,
		},
		{
			name:     "percentage below cap stays uncapped",
			subtotal: 100,
			code:     api.DiscountCode{PercentageValue: floatPtr(10), MaxDiscountAmount: floatPtr(15)},
			want:     10,
		},
		{
			name:     "fixed value not compared to subtotal",
			subtotal: 200,
			code:     api.DiscountCode{FixedValue: floatPtr(500)},
			want:     500,
		},
		{
			name:     "empty descriptor",
			subtotal: 200,
			code:     api.DiscountCode{},
			want:     0,
		},
	}

	for _, tt := range tests {
		if got := DiscountAmount(tt.subtotal, tt.code); got != tt.want {
			t.Fatalf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestComputePercentageScenario(t *testing.T) {
	// cart [{price 100, qty 2}], Cairo fee 30, SAVE10 {10%, cap 15, min 50}
	items := []cart.LineItem{{ProductID: "p1", UnitPrice: 100, Quantity: 2}}
	fees := []api.ShippingFee{{Governorate: "Cairo", Fee: 30}}

	discount := DiscountAmount(Subtotal(items), api.DiscountCode{
		PercentageValue:   floatPtr(10),
		MaxDiscountAmount: floatPtr(15),
	})
	totals := Compute(items, fees, "Cairo", discount)

	if totals.Subtotal != 200 {
		t.Fatalf("expected subtotal 200, got %v", totals.Subtotal)
	}
	if totals.DiscountAmount != 15 {
		t.Fatalf("expected discount clamped to 15, got %v", totals.DiscountAmount)
	}
	if totals.ShippingFee != 30 {
		t.Fatalf("expected shipping 30, got %v", totals.ShippingFee)
	}
	if totals.Total != 215 {
		t.Fatalf("expected total 215, got %v", totals.Total)
	}
}

func TestComputeFixedDiscountFloorsAtZero(t *testing.T) {
	// same cart, fixed 500 discount: total floors at 0
	items := []cart.LineItem{{ProductID: "p1", UnitPrice: 100, Quantity: 2}}
	fees := []api.ShippingFee{{Governorate: "Cairo", Fee: 30}}

	discount := DiscountAmount(Subtotal(items), api.DiscountCode{FixedValue: floatPtr(500)})
	totals := Compute(items, fees, "Cairo", discount)

	if totals.DiscountAmount != 500 {
		t.Fatalf("expected fixed discount 500, got %v", totals.DiscountAmount)
	}
	if totals.Total != 0 {
		t.Fatalf("expected total floored at 0, got %v", totals.Total)
	}
}

func TestComputeEmptyCart(t *testing.T) {
	totals := Compute(nil, nil, "", 0)
	if totals.Subtotal != 0 || totals.Total != 0 {
		t.Fatalf("expected zeroed totals for empty cart, got %+v", totals)
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(10.005); got != 10.01 {
		t.Fatalf("expected 10.01, got %v", got)
	}
	if got := Round2(10.004); got != 10 {
		t.Fatalf("expected 10, got %v", got)
	}
}

func TestFormat(t *testing.T) {
	if got := Format(215); got != "215.00" {
		t.Fatalf("expected 215.00, got %q", got)
	}
	if got := Format(15.5); got != "15.50" {
		t.Fatalf("expected 15.50, got %q", got)
	}
}
