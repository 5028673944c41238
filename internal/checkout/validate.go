package checkout

import (
	"regexp"
	"strings"

	"github.com/emidobak1/happy-snail/internal/domain"
)

var (
	emailRe  = regexp.MustCompile(`\S+@\S+\.\S+`)
	postalRe = regexp.MustCompile(`^[A-Za-z]\d[A-Za-z][ -]?\d[A-Za-z]\d$`)
	cardRe   = regexp.MustCompile(`^\d{16}$`)
	expiryRe = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cvvRe    = regexp.MustCompile(`^\d{3,4}$`)
)

// validateCustomerInfo guards CustomerInfo -> Shipping.
func validateCustomerInfo(d *domain.OrderDraft) *ValidationError {
	if d.FirstName == "" {
		return &ValidationError{Field: "first_name", Message: "first name is required"}
	}
	if d.LastName == "" {
		return &ValidationError{Field: "last_name", Message: "last name is required"}
	}
	if d.Email == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if d.Phone == "" {
		return &ValidationError{Field: "phone", Message: "phone number is required"}
	}
	if !emailRe.MatchString(d.Email) {
		return &ValidationError{Field: "email", Message: "please enter a valid email address"}
	}
	return nil
}

// validateShipping guards Shipping -> Payment. Address fields only apply
// when delivery is selected; a date is required either way.
func validateShipping(d *domain.OrderDraft) *ValidationError {
	if d.DeliveryMethod == domain.DeliveryMethodDelivery {
		if d.Address == "" {
			return &ValidationError{Field: "address", Message: "street address is required"}
		}
		if d.City == "" {
			return &ValidationError{Field: "city", Message: "city is required"}
		}
		if d.Province == "" {
			return &ValidationError{Field: "province", Message: "province is required"}
		}
		if d.PostalCode == "" {
			return &ValidationError{Field: "postal_code", Message: "postal code is required"}
		}
		if !postalRe.MatchString(d.PostalCode) {
			return &ValidationError{Field: "postal_code", Message: "please enter a valid Canadian postal code"}
		}
	}
	if d.DeliveryDate == "" {
		return &ValidationError{Field: "delivery_date", Message: "please select a delivery date"}
	}
	return nil
}

// validatePayment guards order submission (Payment -> Confirmation).
func validatePayment(d *domain.OrderDraft) *ValidationError {
	if d.CardNumber == "" {
		return &ValidationError{Field: "card_number", Message: "card number is required"}
	}
	if d.CardName == "" {
		return &ValidationError{Field: "card_name", Message: "name on card is required"}
	}
	if d.Expiry == "" {
		return &ValidationError{Field: "expiry", Message: "expiry date is required"}
	}
	if d.CVV == "" {
		return &ValidationError{Field: "cvv", Message: "CVV is required"}
	}
	if !cardRe.MatchString(strings.ReplaceAll(d.CardNumber, " ", "")) {
		return &ValidationError{Field: "card_number", Message: "please enter a valid 16-digit card number"}
	}
	if !expiryRe.MatchString(d.Expiry) {
		return &ValidationError{Field: "expiry", Message: "please enter a valid expiry date in MM/YY format"}
	}
	if !cvvRe.MatchString(d.CVV) {
		return &ValidationError{Field: "cvv", Message: "please enter a valid CVV code"}
	}
	return nil
}
