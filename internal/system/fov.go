package system

import (
	"satchel/internal/ecs"
	"satchel/internal/gamemap"
	"satchel/internal/level"
)

// Octant multipliers for recursive shadowcasting. A sweep cell (col, row)
// maps to the world offset (col*xx + row*xy, col*yx + row*yy).
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// viewCone decides which lit cells the viewer actually sees.
type viewCone struct {
	cx, cy   int
	fdx, fdy int
	radiusSq int
}

// sees reports whether the offset lies inside the radius and not behind the
// viewer. Cells touching the viewer are always seen.
func (c viewCone) sees(x, y int) bool {
	dx, dy := x-c.cx, y-c.cy
	if dx*dx+dy*dy >= c.radiusSq {
		return false
	}
	if dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1 {
		return true
	}
	return dx*c.fdx+dy*c.fdy >= 0
}

// UpdateView recomputes which tiles entity id can see: everything within
// radius that is not behind it and not hidden by an opaque tile. Seen tiles
// are marked explored.
func UpdateView(s *level.Scene, id ecs.EntityID, radius int) {
	gmap := s.Map
	gmap.ClearVisible()

	pos, ok := s.Positions.Get(id)
	if !ok {
		return
	}
	facing, _ := s.Facings.Get(id)
	fdx, fdy := facing.Delta()
	cone := viewCone{cx: pos.X, cy: pos.Y, fdx: fdx, fdy: fdy, radiusSq: radius * radius}

	reveal(gmap, pos.X, pos.Y)
	for _, m := range octants {
		castLight(gmap, cone, 1, 1.0, 0.0, radius, m)
	}
}

// Visible reports whether the tile under entity other is currently seen.
func Visible(s *level.Scene, other ecs.EntityID) bool {
	p, ok := s.Positions.Get(other)
	if !ok || !s.Map.InBounds(p.X, p.Y) {
		return false
	}
	return s.Map.At(p.X, p.Y).Visible
}

func reveal(gmap *gamemap.GameMap, x, y int) {
	if !gmap.InBounds(x, y) {
		return
	}
	t := gmap.At(x, y)
	t.Visible = true
	t.Explored = true
}

// castLight scans one octant row by row from row outward, between the slopes
// start and end, recursing past each run of opaque cells.
func castLight(gmap *gamemap.GameMap, cone viewCone, row int, start, end float64, radius int, m [4]int) {
	if start < end {
		return
	}
	xx, xy, yx, yy := m[0], m[1], m[2], m[3]
	nextStart := start

	for j := row; j <= radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := cone.cx + dx*xx + dy*xy
			wy := cone.cy + dx*yx + dy*yy

			left := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			right := (float64(dx) + 0.5) / (float64(dy) - 0.5)
			if start < right {
				continue
			}
			if end > left {
				break
			}

			if cone.sees(wx, wy) {
				reveal(gmap, wx, wy)
			}

			opaque := !gmap.IsTransparent(wx, wy)
			switch {
			case blocked && opaque:
				nextStart = right
			case blocked:
				blocked = false
				start = nextStart
			case opaque && j < radius:
				blocked = true
				castLight(gmap, cone, j+1, start, left, radius, m)
				nextStart = right
			}
		}
		if blocked {
			break
		}
	}
}

