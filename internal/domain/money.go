package domain

import "fmt"

// Cents is a currency amount in integer minor units (CAD cents).
// All pricing arithmetic happens in cents; formatting to dollars is a
// display concern only.
type Cents int64

// Percent returns p percent of the amount, rounded half up.
func (c Cents) Percent(p int64) Cents {
	v := int64(c) * p
	if v >= 0 {
		return Cents((v + 50) / 100)
	}
	return Cents((v - 50) / 100)
}

// Dollars returns the amount as a float for JSON responses. Only the
// presentation layer should call this.
func (c Cents) Dollars() float64 {
	return float64(c) / 100
}

func (c Cents) String() string {
	if c < 0 {
		return fmt.Sprintf("-$%d.%02d", -c/100, -c%100)
	}
	return fmt.Sprintf("$%d.%02d", c/100, c%100)
}
