package gamemap

// TileKind is the terrain of one map cell.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
	TileDoor
)

// String returns the layout rune name of the kind.
func (k TileKind) String() string {
	switch k {
	case TileFloor:
		return "floor"
	case TileDoor:
		return "door"
	}
	return "wall"
}

// Tile is one cell of a scene. Walkable and Transparent are fixed by Kind;
// Visible is recomputed every turn and Explored latches once seen.
type Tile struct {
	Kind        TileKind
	Walkable    bool
	Transparent bool
	Explored    bool
	Visible     bool
}

func makeTile(k TileKind) Tile {
	return Tile{Kind: k, Walkable: k != TileWall, Transparent: k == TileFloor}
}

// MakeWall returns a solid tile.
func MakeWall() Tile { return makeTile(TileWall) }

// MakeFloor returns open ground.
func MakeFloor() Tile { return makeTile(TileFloor) }

// MakeDoor returns a doorway: the player walks through it, but it hides
// whatever lies in the next scene.
func MakeDoor() Tile { return makeTile(TileDoor) }
