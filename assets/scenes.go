package assets

// ExitDef describes where a numbered doorway in a layout leads.
type ExitDef struct {
	Target         string
	SpawnX, SpawnY int
}

// SceneDef is a hand-authored scene.
//
// Layout runes: '#' wall, '.' floor, '@' default spawn, a digit is a door
// whose destination is Exits[digit], and item runes from ItemForRune.
type SceneDef struct {
	Name  string
	Title string
	Rows  []string
	Exits map[rune]ExitDef
	Theme TileTheme
}

// Scenes lists the playable scenes by name.
var Scenes = map[string]SceneDef{
	"tutorial": {
		Name:  "tutorial",
		Title: "The Cellar",
		Rows: []string{
			"####################",
			"#..................#",
			"#..l......#....k...#",
			"#.........#........#",
			"#.........#........#",
			"#....@.............1",
			"#..................#",
			"#...m.....#.....b..#",
			"#.........#........#",
			"####################",
		},
		Exits: map[rune]ExitDef{
			'1': {Target: "yard", SpawnX: 1, SpawnY: 4},
		},
		Theme: TileTheme{Wall: "🧱", Floor: "🟫", DimWall: "🌑", DimFloor: "🔲"},
	},
	"yard": {
		Name:  "yard",
		Title: "The Overgrown Yard",
		Rows: []string{
			"##########################",
			"#........................#",
			"#...c.......#####....a...#",
			"#...........#...#........#",
			"1@..........#.h.#........#",
			"#...........#...#........#",
			"#...................t....#",
			"#........................#",
			"##########################",
		},
		Exits: map[rune]ExitDef{
			'1': {Target: "tutorial", SpawnX: 18, SpawnY: 5},
		},
		Theme: TileTheme{Wall: "🌲", Floor: "🟩", DimWall: "🌑", DimFloor: "🔲"},
	},
}

// TileTheme holds the glyphs used to draw one scene's terrain. Emoji carry
// their own colours, so dark tiles use distinct glyphs instead of a tint.
type TileTheme struct {
	Wall     string
	Floor    string
	DimWall  string
	DimFloor string
}
