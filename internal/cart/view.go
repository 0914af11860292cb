package cart

// View is the JSON representation of a session cart.
type View struct {
	Items      []LineItem `json:"items"`
	TotalItems int        `json:"totalItems"`
	TotalPrice float64    `json:"totalPrice"`
	Open       bool       `json:"open"`
}

// Snapshot builds a View from the cart's current state.
func (c *Cart) Snapshot() *View {
	return &View{
		Items:      c.Items(),
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
		Open:       c.Open(),
	}
}
