package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testGift(id uint, name string) *Gift {
	return &Gift{
		ID:        id,
		Name:      name,
		Category:  "Kitchen",
		Condition: ConditionLikeNew,
	}
}

func TestCartAdd(t *testing.T) {
	cart := &Cart{}

	cart.Add(NewCartItem(testGift(1, "Coffee Maker")))
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	// Adding the same gift again increments quantity, never duplicates the line
	cart.Add(NewCartItem(testGift(1, "Coffee Maker")))
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)

	cart.Add(NewCartItem(testGift(2, "Desk Lamp")))
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 3, cart.Total())
}

func TestCartUpdateQuantity(t *testing.T) {
	cart := &Cart{}
	cart.Add(NewCartItem(testGift(1, "Coffee Maker")))
	cart.Add(NewCartItem(testGift(2, "Desk Lamp")))

	ok := cart.UpdateQuantity(1, 5)
	assert.True(t, ok)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 6, cart.Total())

	// Zero or negative quantity removes the line
	ok = cart.UpdateQuantity(2, 0)
	assert.True(t, ok)
	assert.Len(t, cart.Items, 1)

	ok = cart.UpdateQuantity(99, 3)
	assert.False(t, ok)
}

func TestCartRemove(t *testing.T) {
	cart := &Cart{}
	cart.Add(NewCartItem(testGift(1, "Coffee Maker")))

	assert.False(t, cart.Remove(42))
	assert.True(t, cart.Remove(1))
	assert.Empty(t, cart.Items)
	assert.False(t, cart.Remove(1))
}

func TestCartClear(t *testing.T) {
	cart := &Cart{}
	cart.Add(NewCartItem(testGift(1, "Coffee Maker")))
	cart.Add(NewCartItem(testGift(2, "Desk Lamp")))

	cart.Clear()
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, cart.Total())
}

func TestCartTotalIsQuantitySum(t *testing.T) {
	cart := &Cart{}
	cart.Add(NewCartItem(testGift(1, "Coffee Maker")))
	cart.Add(NewCartItem(testGift(2, "Desk Lamp")))
	cart.UpdateQuantity(1, 4)
	cart.UpdateQuantity(2, 2)

	sum := 0
	for _, item := range cart.Items {
		sum += item.Quantity
	}
	assert.Equal(t, sum, cart.Total())
}
