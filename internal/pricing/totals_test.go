package pricing

import (
	"testing"

	"github.com/emidobak1/happy-snail/internal/domain"
	"github.com/stretchr/testify/assert"
)

func cartWith(lines ...domain.CartLine) *domain.Cart {
	return &domain.Cart{SessionID: "test", Lines: lines}
}

func TestComputeTotals_FreeDeliveryOver100(t *testing.T) {
	// 2 x $65.00 = $130.00, free delivery, 13% tax
	cart := cartWith(domain.CartLine{ProductID: 1, Price: 6500, Quantity: 2})

	totals := ComputeTotals(cart, domain.DeliveryMethodDelivery, 0)

	assert.Equal(t, domain.Cents(13000), totals.Subtotal)
	assert.Equal(t, domain.Cents(0), totals.DeliveryFee)
	assert.Equal(t, domain.Cents(1690), totals.Tax)
	assert.Equal(t, domain.Cents(14690), totals.Total)
}

func TestComputeTotals_FlatFeeUnder100(t *testing.T) {
	// 1 x $45.00, $12 delivery fee, 13% tax
	cart := cartWith(domain.CartLine{ProductID: 6, Price: 4500, Quantity: 1})

	totals := ComputeTotals(cart, domain.DeliveryMethodDelivery, 0)

	assert.Equal(t, domain.Cents(4500), totals.Subtotal)
	assert.Equal(t, domain.Cents(1200), totals.DeliveryFee)
	assert.Equal(t, domain.Cents(585), totals.Tax)
	assert.Equal(t, domain.Cents(6285), totals.Total)
}

func TestComputeTotals_PickupNeverChargesDelivery(t *testing.T) {
	cart := cartWith(domain.CartLine{ProductID: 6, Price: 4500, Quantity: 1})

	totals := ComputeTotals(cart, domain.DeliveryMethodPickup, 0)

	assert.Equal(t, domain.Cents(0), totals.DeliveryFee)
	assert.Equal(t, domain.Cents(5085), totals.Total)
}

func TestComputeTotals_ExactlyAtThresholdChargesFee(t *testing.T) {
	// Free delivery requires subtotal strictly over $100
	cart := cartWith(domain.CartLine{ProductID: 9, Price: 10000, Quantity: 1})

	totals := ComputeTotals(cart, domain.DeliveryMethodDelivery, 0)

	assert.Equal(t, domain.Cents(1200), totals.DeliveryFee)
}

func TestComputeTotals_DiscountReducesTaxBase(t *testing.T) {
	// $100 subtotal, $25 discount: tax is 13% of $75
	cart := cartWith(domain.CartLine{ProductID: 9, Price: 10000, Quantity: 1})

	totals := ComputeTotals(cart, domain.DeliveryMethodDelivery, 2500)

	assert.Equal(t, domain.Cents(975), totals.Tax)
	assert.Equal(t, domain.Cents(10000+1200+975-2500), totals.Total)
}

func TestComputeTotals_TotalIdentityHolds(t *testing.T) {
	carts := []*domain.Cart{
		cartWith(),
		cartWith(domain.CartLine{ProductID: 1, Price: 6500, Quantity: 3}),
		cartWith(
			domain.CartLine{ProductID: 2, Price: 7500, Quantity: 1},
			domain.CartLine{ProductID: 7, Price: 9500, Quantity: 2},
		),
	}

	for _, cart := range carts {
		for _, method := range []domain.DeliveryMethod{domain.DeliveryMethodDelivery, domain.DeliveryMethodPickup} {
			for _, discount := range []domain.Cents{0, 1000, 2500} {
				totals := ComputeTotals(cart, method, discount)
				assert.Equal(t, totals.Subtotal+totals.DeliveryFee+totals.Tax-totals.Discount, totals.Total)
			}
		}
	}
}

func TestComputeTotals_Pure(t *testing.T) {
	cart := cartWith(domain.CartLine{ProductID: 1, Price: 6500, Quantity: 2})

	first := ComputeTotals(cart, domain.DeliveryMethodDelivery, 1000)
	second := ComputeTotals(cart, domain.DeliveryMethodDelivery, 1000)

	assert.Equal(t, first, second)
}

func TestComputeTotals_EmptyCart(t *testing.T) {
	totals := ComputeTotals(cartWith(), domain.DeliveryMethodDelivery, 0)

	assert.Equal(t, domain.Cents(0), totals.Subtotal)
	assert.Equal(t, domain.Cents(1200), totals.DeliveryFee)
	assert.Equal(t, domain.Cents(1200), totals.Total)
}
