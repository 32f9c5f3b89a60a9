package models

// CartItem is a line in a user's cart: a snapshot of the gift at the time it
// was added, plus a quantity. Keyed by gift id.
type CartItem struct {
	GiftID    uint   `json:"gift_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Condition string `json:"condition"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
}

// Cart holds a user's cart items. The zero value is an empty cart. Mutations
// are plain value operations; persistence of the whole snapshot is the
// caller's concern.
type Cart struct {
	Items []CartItem `json:"items"`
}

// NewCartItem builds a cart line from a gift with quantity one.
func NewCartItem(gift *Gift) CartItem {
	return CartItem{
		GiftID:    gift.ID,
		Name:      gift.Name,
		Category:  gift.Category,
		Condition: gift.Condition,
		Image:     gift.Image,
		Quantity:  1,
	}
}

// Add inserts the item, or increments the existing line's quantity by one if
// the gift is already in the cart.
func (c *Cart) Add(item CartItem) {
	for i := range c.Items {
		if c.Items[i].GiftID == item.GiftID {
			c.Items[i].Quantity++
			return
		}
	}
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	c.Items = append(c.Items, item)
}

// Remove deletes the line for the gift id. Returns false if no such line.
func (c *Cart) Remove(giftID uint) bool {
	for i := range c.Items {
		if c.Items[i].GiftID == giftID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateQuantity sets the line's quantity. A quantity of zero or less removes
// the line. Returns false if no such line.
func (c *Cart) UpdateQuantity(giftID uint, quantity int) bool {
	if quantity <= 0 {
		return c.Remove(giftID)
	}
	for i := range c.Items {
		if c.Items[i].GiftID == giftID {
			c.Items[i].Quantity = quantity
			return true
		}
	}
	return false
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// Total returns the sum of quantities across all lines.
func (c *Cart) Total() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}
