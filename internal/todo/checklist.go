// ABOUTME: Grocery checklist with a derived count of bought items.
// ABOUTME: Independent of the notes board; shares no state with it.

package todo

import (
	"fmt"
	"slices"

	"github.com/harper/stickies/internal/models"
)

// DefaultItems is the list shown when no other list is given.
func DefaultItems() []models.Item {
	return []models.Item{
		{Name: "Apples", Purchased: false},
		{Name: "Bananas", Purchased: false},
		{Name: "Carrots", Purchased: true},
	}
}

type Checklist struct {
	items []models.Item
}

func New(items []models.Item) *Checklist {
	return &Checklist{items: slices.Clone(items)}
}

// Items returns a copy of the list in display order.
func (c *Checklist) Items() []models.Item {
	return slices.Clone(c.items)
}

// Toggle flips the purchased flag of the first item named name and reports
// whether such an item exists.
func (c *Checklist) Toggle(name string) bool {
	i := slices.IndexFunc(c.items, func(it models.Item) bool { return it.Name == name })
	if i < 0 {
		return false
	}
	c.items[i].Purchased = !c.items[i].Purchased
	return true
}

// ToggleAt flips the item at index i.
func (c *Checklist) ToggleAt(i int) bool {
	if i < 0 || i >= len(c.items) {
		return false
	}
	c.items[i].Purchased = !c.items[i].Purchased
	return true
}

func (c *Checklist) PurchasedCount() int {
	count := 0
	for _, it := range c.items {
		if it.Purchased {
			count++
		}
	}
	return count
}

func (c *Checklist) Len() int {
	return len(c.items)
}

// Header is the title line above the list.
func (c *Checklist) Header() string {
	return fmt.Sprintf("Items bought: %d", c.PurchasedCount())
}
