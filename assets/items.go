package assets

import "satchel/internal/inventory"

// Glyphs used for the player and props.
const (
	GlyphPlayer    = "🧍"
	GlyphCrouching = "🧎"
	GlyphDoor      = "🚪"
)

// itemsByRune maps the layout rune for an item to its definition.
var itemsByRune = map[rune]inventory.Item{
	'l': {Name: "Lantern", Icon: "🏮", Model: inventory.Model{Glyph: "🏮", Tint: "orange", Grip: inventory.GripUpright}},
	'k': {Name: "Brass Key", Icon: "🔑", Model: inventory.Model{Glyph: "🔑", Tint: "gold", Grip: inventory.GripRight}},
	'm': {Name: "Torn Map", Icon: "🗺️", Model: inventory.Model{Glyph: "🗺️", Tint: "wheat", Grip: inventory.GripUpright}},
	'c': {Name: "Compass", Icon: "🧭", Model: inventory.Model{Glyph: "🧭", Tint: "silver", Grip: inventory.GripUpright}},
	't': {Name: "Flashlight", Icon: "🔦", Model: inventory.Model{Glyph: "🔦", Tint: "yellow", Grip: inventory.GripRight}},
	'a': {Name: "Apple", Icon: "🍎", Model: inventory.Model{Glyph: "🍎", Tint: "red", Grip: inventory.GripUpright}},
	'h': {Name: "Hammer", Icon: "🔨", Model: inventory.Model{Glyph: "🔨", Tint: "gray", Grip: inventory.GripLeft}},
	'b': {Name: "Journal", Icon: "📕", Model: inventory.Model{Glyph: "📕", Tint: "maroon", Grip: inventory.GripInverted}},
}

// ItemForRune returns the item placed by a layout rune.
func ItemForRune(r rune) (inventory.Item, bool) {
	it, ok := itemsByRune[r]
	return it, ok
}
