package pricing

import (
	"testing"

	"github.com/emidobak1/happy-snail/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyCoupon_Spring25(t *testing.T) {
	// 25% of a $100.00 subtotal is $25.00
	discount, err := ApplyCoupon("spring25", 10000)
	require.NoError(t, err)
	assert.Equal(t, domain.Cents(2500), discount)
}

func TestApplyCoupon_CaseInsensitive(t *testing.T) {
	discount, err := ApplyCoupon("SPRING25", 10000)
	require.NoError(t, err)
	assert.Equal(t, domain.Cents(2500), discount)

	discount, err = ApplyCoupon("Welcome10", 500)
	require.NoError(t, err)
	assert.Equal(t, domain.Cents(1000), discount)
}

func TestApplyCoupon_Welcome10FlatRegardlessOfSubtotal(t *testing.T) {
	for _, subtotal := range []domain.Cents{500, 10000, 99900} {
		discount, err := ApplyCoupon("welcome10", subtotal)
		require.NoError(t, err)
		assert.Equal(t, domain.Cents(1000), discount)
	}
}

func TestApplyCoupon_UnknownCodeRejected(t *testing.T) {
	discount, err := ApplyCoupon("summer50", 10000)
	assert.ErrorIs(t, err, ErrInvalidCoupon)
	assert.Equal(t, domain.Cents(0), discount)
}

func TestApplyCoupon_TrimsWhitespace(t *testing.T) {
	discount, err := ApplyCoupon("  spring25 ", 10000)
	require.NoError(t, err)
	assert.Equal(t, domain.Cents(2500), discount)
}

func TestApplyCoupon_RoundsHalfUp(t *testing.T) {
	// 25% of $0.50 = 12.5 cents, rounds to 13
	discount, err := ApplyCoupon("spring25", 50)
	require.NoError(t, err)
	assert.Equal(t, domain.Cents(13), discount)
}
