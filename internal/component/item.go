package component

import "satchel/internal/inventory"

// Pickable is an item lying in the scene that the player can put in the
// satchel. The wrapped Item is copied into the inventory on pickup and the
// floor entity is destroyed.
type Pickable struct {
	inventory.Item
}
