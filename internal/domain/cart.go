package domain

import "time"

// Cart is one session's cart. It is persisted as a whole JSON document
// under the session's storage key after every mutation.
type Cart struct {
	SessionID string     `json:"session_id"`
	Lines     []CartLine `json:"lines"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartLine is one product+quantity entry. Identity is the product id;
// a cart holds at most one line per product.
type CartLine struct {
	ProductID   int64     `json:"product_id"`
	Name        string    `json:"name"`
	Price       Cents     `json:"price_cents"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Quantity    int       `json:"quantity"`
	AddedAt     time.Time `json:"added_at"`
}

// Clone returns a deep copy with its own line slice. Concurrent readers of
// the same session must never share mutable lines.
func (c *Cart) Clone() *Cart {
	cp := *c
	cp.Lines = append([]CartLine(nil), c.Lines...)
	return &cp
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Subtotal is the sum of price x quantity over all lines.
func (c *Cart) Subtotal() Cents {
	var total Cents
	for _, l := range c.Lines {
		total += l.Price * Cents(l.Quantity)
	}
	return total
}

// Find returns the line for the given product id, or nil.
func (c *Cart) Find(productID int64) *CartLine {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			return &c.Lines[i]
		}
	}
	return nil
}
