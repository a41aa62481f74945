// ABOUTME: Item model for the grocery checklist.
// ABOUTME: Tracks an item name and whether it has been bought.

package models

type Item struct {
	Name      string `json:"name" yaml:"name"`
	Purchased bool   `json:"is_purchased" yaml:"is_purchased"`
}
