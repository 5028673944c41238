package domain

type DeliveryMethod string

const (
	DeliveryMethodDelivery DeliveryMethod = "delivery"
	DeliveryMethodPickup   DeliveryMethod = "pickup"
)

// OrderDraft is the in-progress, not-yet-submitted order form. No field is
// validated until the checkout step containing it is submitted.
type OrderDraft struct {
	// Customer information
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	// Shipping information
	Address    string `json:"address"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`

	// Delivery options
	DeliveryMethod DeliveryMethod `json:"delivery_method"`
	DeliveryDate   string         `json:"delivery_date"`
	DeliveryNote   string         `json:"delivery_note"`

	// Payment information (never stored beyond the session)
	CardNumber string `json:"card_number"`
	CardName   string `json:"card_name"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

// NewOrderDraft returns a draft with the storefront defaults.
func NewOrderDraft() OrderDraft {
	return OrderDraft{
		City:           "Toronto",
		Province:       "ON",
		DeliveryMethod: DeliveryMethodDelivery,
	}
}
