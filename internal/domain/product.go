package domain

type Product struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Price       Cents    `json:"price_cents"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Categories  []string `json:"categories"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// HasCategory reports whether the product carries the given category tag.
// The "all" pseudo-category matches every product.
func (p *Product) HasCategory(id string) bool {
	if id == "all" {
		return true
	}
	for _, c := range p.Categories {
		if c == id {
			return true
		}
	}
	return false
}
