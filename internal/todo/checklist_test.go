// ABOUTME: Tests for the grocery checklist.
// ABOUTME: Follows toggles through the bought-items header.

package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecklistDisplaysAllItems(t *testing.T) {
	c := New(DefaultItems())

	names := []string{}
	for _, it := range c.Items() {
		names = append(names, it.Name)
	}
	assert.Equal(t, []string{"Apples", "Bananas", "Carrots"}, names)
}

func TestChecklistPurchasedCount(t *testing.T) {
	c := New(DefaultItems())
	assert.Equal(t, "Items bought: 1", c.Header())

	assert.True(t, c.Toggle("Apples"))
	assert.Equal(t, "Items bought: 2", c.Header())

	assert.True(t, c.Toggle("Carrots"))
	assert.Equal(t, "Items bought: 1", c.Header())

	assert.True(t, c.Toggle("Bananas"))
	assert.Equal(t, "Items bought: 2", c.Header())
}

func TestChecklistToggleUnknown(t *testing.T) {
	c := New(DefaultItems())

	assert.False(t, c.Toggle("Durian"))
	assert.False(t, c.ToggleAt(7))
	assert.Equal(t, 1, c.PurchasedCount())
}

func TestChecklistCopiesInput(t *testing.T) {
	items := DefaultItems()
	c := New(items)

	c.ToggleAt(0)

	assert.False(t, items[0].Purchased)
}
