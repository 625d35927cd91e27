package models

// CartItem is a denormalized snapshot of a MenuItem taken when the item was
// added. Later catalog edits do not change cart contents.
type CartItem struct {
	MenuItem
	Quantity int `json:"quantity"`
}

type Cart struct {
	Items []CartItem `json:"items"`
}

// Add increments the quantity when the item is already in the cart,
// otherwise inserts it with quantity 1.
func (c *Cart) Add(item MenuItem) {
	for i := range c.Items {
		if c.Items[i].ID == item.ID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, CartItem{MenuItem: item, Quantity: 1})
}

// SetQuantity sets the quantity for the item with the given id. A quantity
// of zero or less removes the item; an unknown id is a no-op.
func (c *Cart) SetQuantity(id string, quantity int) {
	if quantity <= 0 {
		kept := c.Items[:0]
		for _, item := range c.Items {
			if item.ID != id {
				kept = append(kept, item)
			}
		}
		c.Items = kept
		return
	}
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

func (c *Cart) TotalPrice() int {
	total := 0
	for _, item := range c.Items {
		total += item.Price * item.Quantity
	}
	return total
}
