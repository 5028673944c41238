package pricing

import (
	"errors"
	"strings"

	"github.com/emidobak1/happy-snail/internal/domain"
)

var ErrInvalidCoupon = errors.New("invalid coupon code")

// ApplyCoupon resolves a coupon code against the static rule table and
// returns the discount amount. Codes are case-insensitive. Percentage
// discounts are computed against the subtotal at apply time and are not
// recomputed on later cart edits.
func ApplyCoupon(code string, subtotal domain.Cents) (domain.Cents, error) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "spring25":
		// 25% off the current subtotal
		return subtotal.Percent(25), nil
	case "welcome10":
		// flat $10 off regardless of subtotal
		return domain.Cents(1000), nil
	default:
		return 0, ErrInvalidCoupon
	}
}
