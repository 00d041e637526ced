package gamemap

import "testing"

func TestInBounds(t *testing.T) {
	m := New(10, 8)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 8, false},
	}
	for _, c := range cases {
		got := m.InBounds(c.x, c.y)
		if got != c.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestIsWalkable(t *testing.T) {
	m := New(5, 5)
	// all walls initially
	if m.IsWalkable(2, 2) {
		t.Error("wall tile should not be walkable")
	}
	m.Set(2, 2, MakeFloor())
	if !m.IsWalkable(2, 2) {
		t.Error("floor tile should be walkable")
	}
	// out of bounds
	if m.IsWalkable(-1, 0) {
		t.Error("out-of-bounds should not be walkable")
	}
}

func TestAt(t *testing.T) {
	m := New(5, 5)
	// Default tiles are walls; At returns a pointer into the map.
	if m.At(2, 3).Kind != TileWall {
		t.Fatal("expected TileWall at (2,3) before any Set")
	}
	m.Set(2, 3, MakeFloor())
	if m.At(2, 3).Kind != TileFloor {
		t.Fatal("Set should be reflected by subsequent At")
	}
}

func TestIsTransparent(t *testing.T) {
	cases := []struct {
		name string
		tile Tile
		x, y int
		want bool
	}{
		{"wall is opaque", MakeWall(), 2, 2, false},
		{"floor is transparent", MakeFloor(), 2, 2, true},
		{"out-of-bounds x=-1", MakeWall(), -1, 0, false},
		{"out-of-bounds y=-1", MakeWall(), 0, -1, false},
		{"out-of-bounds beyond width", MakeWall(), 10, 2, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := New(5, 5)
			if tc.x >= 0 && tc.y >= 0 && tc.x < 5 && tc.y < 5 {
				m.Set(tc.x, tc.y, tc.tile)
			}
			if got := m.IsTransparent(tc.x, tc.y); got != tc.want {
				t.Errorf("IsTransparent(%d,%d) = %v; want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestParseLayout(t *testing.T) {
	m, err := Parse([]string{
		"#####",
		"#.@.+",
		"###",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m.Width != 5 || m.Height != 3 {
		t.Fatalf("size = %dx%d, want 5x3", m.Width, m.Height)
	}
	if !m.IsWalkable(2, 1) {
		t.Error("spawn rune should parse as floor")
	}
	if m.At(4, 1).Kind != TileDoor {
		t.Error("'+' should parse as a door")
	}
	if m.IsTransparent(4, 1) {
		t.Error("doors should block sight")
	}
	if m.IsWalkable(4, 2) {
		t.Error("short rows should be padded with wall")
	}
}

func TestParseRejectsEmpty(t *testing.T) {
	if _, err := Parse(nil); err == nil {
		t.Error("expected error for no rows")
	}
	if _, err := Parse([]string{"", ""}); err == nil {
		t.Error("expected error for blank rows")
	}
}

func TestClearVisibleKeepsExplored(t *testing.T) {
	m := New(3, 3)
	tile := m.At(1, 1)
	tile.Visible = true
	tile.Explored = true

	m.ClearVisible()

	if m.At(1, 1).Visible {
		t.Error("tile should no longer be visible")
	}
	if !m.At(1, 1).Explored {
		t.Error("explored flag should survive ClearVisible")
	}
}
