package pricing

import "github.com/emidobak1/happy-snail/internal/domain"

const (
	// TaxRatePercent is the 13% Ontario HST applied to (subtotal - discount).
	TaxRatePercent = 13

	// FlatDeliveryFee is charged on delivery orders at or under the
	// free-delivery threshold.
	FlatDeliveryFee = domain.Cents(1200)

	// FreeDeliveryOver is the subtotal above which delivery is free.
	FreeDeliveryOver = domain.Cents(10000)
)

// Totals is the cost breakdown for a cart. Total always equals
// Subtotal + DeliveryFee + Tax - Discount exactly.
type Totals struct {
	Subtotal    domain.Cents `json:"subtotal_cents"`
	Discount    domain.Cents `json:"discount_cents"`
	DeliveryFee domain.Cents `json:"delivery_fee_cents"`
	Tax         domain.Cents `json:"tax_cents"`
	Total       domain.Cents `json:"total_cents"`
}

// ComputeTotals derives the cost breakdown. Pure: equal inputs always
// yield equal totals.
func ComputeTotals(cart *domain.Cart, method domain.DeliveryMethod, discount domain.Cents) Totals {
	subtotal := cart.Subtotal()

	var fee domain.Cents
	if method != domain.DeliveryMethodPickup && subtotal <= FreeDeliveryOver {
		fee = FlatDeliveryFee
	}

	tax := (subtotal - discount).Percent(TaxRatePercent)

	return Totals{
		Subtotal:    subtotal,
		Discount:    discount,
		DeliveryFee: fee,
		Tax:         tax,
		Total:       subtotal + fee + tax - discount,
	}
}
