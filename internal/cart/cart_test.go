package cart

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestCart_AddItem(t *testing.T) {
	tests := []struct {
		name          string
		adds          []LineItem
		expectedLines int
		expectedQty   map[string]int
	}{
		{
			name: "Single item",
			adds: []LineItem{
				{ProductID: "1", Price: 485, Quantity: 1},
			},
			expectedLines: 1,
			expectedQty:   map[string]int{"1": 1},
		},
		{
			name: "Same product twice increments quantity",
			adds: []LineItem{
				{ProductID: "1", Price: 485, Quantity: 1},
				{ProductID: "1", Price: 485, Quantity: 1},
			},
			expectedLines: 1,
			expectedQty:   map[string]int{"1": 2},
		},
		{
			name: "Different products create separate lines",
			adds: []LineItem{
				{ProductID: "1", Price: 485, Quantity: 1},
				{ProductID: "3", Price: 445, Quantity: 2},
			},
			expectedLines: 2,
			expectedQty:   map[string]int{"1": 1, "3": 2},
		},
		{
			name: "Zero quantity defaults to one",
			adds: []LineItem{
				{ProductID: "1", Price: 485, Quantity: 0},
			},
			expectedLines: 1,
			expectedQty:   map[string]int{"1": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Cart
			for _, item := range tt.adds {
				c.AddItem(item)
			}

			items := c.Items()
			assert.Len(t, items, tt.expectedLines)
			for _, item := range items {
				assert.Equal(t, tt.expectedQty[item.ProductID], item.Quantity)
			}
		})
	}
}

func TestCart_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name          string
		quantity      int
		expectedLines int
	}{
		{name: "Positive quantity updates the line", quantity: 5, expectedLines: 1},
		{name: "Zero quantity removes the line", quantity: 0, expectedLines: 0},
		{name: "Negative quantity removes the line", quantity: -3, expectedLines: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Cart
			c.AddItem(LineItem{ProductID: "1", Price: 485, Quantity: 1})

			c.UpdateQuantity("1", tt.quantity)

			items := c.Items()
			assert.Len(t, items, tt.expectedLines)
			if tt.expectedLines > 0 {
				assert.Equal(t, tt.quantity, items[0].Quantity)
			}
		})
	}
}

func TestCart_RemoveItem(t *testing.T) {
	var c Cart
	c.AddItem(LineItem{ProductID: "1", Quantity: 1})
	c.AddItem(LineItem{ProductID: "2", Quantity: 1})

	c.RemoveItem("1")

	items := c.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, "2", items[0].ProductID)

	// Removing an absent product is a no-op
	c.RemoveItem("missing")
	assert.Len(t, c.Items(), 1)
}

func TestCart_Totals(t *testing.T) {
	var c Cart
	c.AddItem(LineItem{ProductID: "1", Price: 485, Quantity: 1})
	c.AddItem(LineItem{ProductID: "3", Price: 445, Quantity: 2})

	assert.Equal(t, 3, c.TotalItems())
	assert.InDelta(t, 1375.00, c.TotalPrice(), 0.001)
}

func TestCart_Clear(t *testing.T) {
	var c Cart
	c.AddItem(LineItem{ProductID: "1", Price: 485, Quantity: 1})

	c.Clear()

	assert.Empty(t, c.Items())
	assert.Equal(t, 0, c.TotalItems())
	assert.Equal(t, 0.0, c.TotalPrice())
}

func TestCart_Visibility(t *testing.T) {
	var c Cart
	assert.False(t, c.Open())

	c.Toggle()
	assert.True(t, c.Open())

	c.Toggle()
	assert.False(t, c.Open())

	c.Toggle()
	c.Close()
	assert.False(t, c.Open())
}

func TestStore_SessionIsolation(t *testing.T) {
	store := NewStore(zerolog.Nop())

	store.Update("session-a", func(c *Cart) {
		c.AddItem(LineItem{ProductID: "1", Price: 485, Quantity: 1})
	})

	store.View("session-b", func(c *Cart) {
		assert.Empty(t, c.Items())
	})

	store.View("session-a", func(c *Cart) {
		assert.Len(t, c.Items(), 1)
	})
}

func TestStore_Clear(t *testing.T) {
	store := NewStore(zerolog.Nop())

	store.Update("session-a", func(c *Cart) {
		c.AddItem(LineItem{ProductID: "1", Quantity: 2})
	})

	store.Clear("session-a")

	store.View("session-a", func(c *Cart) {
		assert.Empty(t, c.Items())
	})
}

func TestStore_ConcurrentUpdates(t *testing.T) {
	store := NewStore(zerolog.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Update("shared", func(c *Cart) {
				c.AddItem(LineItem{ProductID: "1", Price: 10, Quantity: 1})
			})
		}()
	}
	wg.Wait()

	store.View("shared", func(c *Cart) {
		assert.Equal(t, 50, c.TotalItems())
	})
}
