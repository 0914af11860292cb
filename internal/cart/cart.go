package cart

// LineItem is a (product, quantity) pairing inside a session cart.
// Price and display fields are captured when the item is added.
type LineItem struct {
	ProductID  string  `json:"productId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Image      string  `json:"image"`
	Category   string  `json:"category"`
	Collection *string `json:"collection,omitempty"`
	Quantity   int     `json:"quantity"`
}

// Cart is a session-scoped mutable container of line items. It is not
// safe for concurrent use on its own; Store serialises access.
type Cart struct {
	items []LineItem
	open  bool
}

// AddItem inserts the item or increments the quantity of an existing
// line with the same product ID.
func (c *Cart) AddItem(item LineItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	for i := range c.items {
		if c.items[i].ProductID == item.ProductID {
			c.items[i].Quantity += item.Quantity
			return
		}
	}
	c.items = append(c.items, item)
}

// RemoveItem removes the line with the given product ID, if present.
func (c *Cart) RemoveItem(productID string) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity of a line. A quantity of zero or
// below removes the line.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Items returns a copy of the cart lines.
func (c *Cart) Items() []LineItem {
	items := make([]LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// TotalItems returns the total quantity across all lines.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice returns the sum of price times quantity over all lines.
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Clear removes all lines.
func (c *Cart) Clear() {
	c.items = nil
}

// Toggle flips the cart drawer visibility flag.
func (c *Cart) Toggle() {
	c.open = !c.open
}

// Close clears the cart drawer visibility flag.
func (c *Cart) Close() {
	c.open = false
}

// Open reports the cart drawer visibility flag.
func (c *Cart) Open() bool {
	return c.open
}
