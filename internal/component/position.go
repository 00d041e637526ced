package component

// Position is a tile coordinate on the scene map.
type Position struct {
	X, Y int
}

// Add returns p offset by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Facing is the direction an entity is looking.
type Facing uint8

const (
	FacingNorth Facing = iota
	FacingEast
	FacingSouth
	FacingWest
)

// Delta returns the one-tile step in the facing direction.
func (f Facing) Delta() (int, int) {
	switch f {
	case FacingNorth:
		return 0, -1
	case FacingEast:
		return 1, 0
	case FacingSouth:
		return 0, 1
	case FacingWest:
		return -1, 0
	}
	return 0, 0
}

// Left returns the facing after a quarter turn counter-clockwise.
func (f Facing) Left() Facing { return (f + 3) % 4 }

// Right returns the facing after a quarter turn clockwise.
func (f Facing) Right() Facing { return (f + 1) % 4 }

// FacingFor returns the facing that matches a movement step.
// ok is false for a zero or diagonal step.
func FacingFor(dx, dy int) (f Facing, ok bool) {
	switch {
	case dx == 0 && dy < 0:
		return FacingNorth, true
	case dx > 0 && dy == 0:
		return FacingEast, true
	case dx == 0 && dy > 0:
		return FacingSouth, true
	case dx < 0 && dy == 0:
		return FacingWest, true
	}
	return 0, false
}

func (f Facing) String() string {
	switch f {
	case FacingNorth:
		return "north"
	case FacingEast:
		return "east"
	case FacingSouth:
		return "south"
	case FacingWest:
		return "west"
	}
	return "?"
}
