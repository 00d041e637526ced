package inventory

// Grip is the orientation an item takes when held, in quarter turns
// clockwise from upright.
type Grip uint8

const (
	GripUpright Grip = iota
	GripRight
	GripInverted
	GripLeft
)

// Model is the world representation of an item: how it looks lying on the
// floor and how it is posed when held.
type Model struct {
	Glyph string
	Tint  string // tcell colour name, e.g. "gold"
	Grip  Grip
}

// Item is one entry in the player's satchel.
type Item struct {
	Name  string
	Icon  string // glyph shown in the HUD slots
	Model Model
}

// IsEmpty reports whether i is the zero Item.
func (i Item) IsEmpty() bool { return i.Name == "" }
