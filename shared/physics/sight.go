package physics

import (
	"math"

	"github.com/automoto/cavern/shared/gamemath"
	"github.com/automoto/cavern/tags"
	"github.com/solarlune/resolv"
)

// sightPadding is how many cells either side of the resolv cell walk are
// searched. CellsInLine walks from cell center to cell center in half-cell
// steps, so it can stray up to a cell from the true segment.
const sightPadding = 2

// HasLineOfSight reports whether (x2, y2) is visible from (x1, y1).
//
// Targets beyond maxRange are never visible. Otherwise the segment is tested
// against the bounds of the solid objects in the cells it crosses; a hit
// strictly before the target blocks it and a hit exactly at the target does
// not. Only solid objects occlude, so actors in the space never block sight.
func HasLineOfSight(space *resolv.Space, x1, y1, x2, y2, maxRange float64) bool {
	dist := math.Hypot(x2-x1, y2-y1)
	if dist > maxRange {
		return false
	}
	if space == nil || dist == 0 {
		return true
	}

	visible := true
	eachSightCandidate(space, x1, y1, x2, y2, func(obj *resolv.Object) bool {
		if !obj.HasTags(tags.ResolvSolid) {
			return true
		}
		t, hit := gamemath.SegmentAABB(x1, y1, x2, y2, obj.X, obj.Y, obj.X+obj.W, obj.Y+obj.H)
		if hit && t < 1 {
			visible = false
			return false
		}
		return true
	})
	return visible
}

// eachSightCandidate calls fn for every object in the band of cells around
// the segment until fn returns false. An object spanning several cells may be
// passed more than once. Segments with an end outside the space fall back to
// every object in it.
func eachSightCandidate(space *resolv.Space, x1, y1, x2, y2 float64, fn func(*resolv.Object) bool) {
	sx, sy := space.WorldToSpace(x1, y1)
	ex, ey := space.WorldToSpace(x2, y2)
	cells := space.CellsInLine(sx, sy, ex, ey)
	if len(cells) == 0 {
		for _, obj := range space.Objects() {
			if !fn(obj) {
				return
			}
		}
		return
	}

	// The walk never skips a row, so each row it touches has one x span
	minY, maxY := cells[0].Y, cells[0].Y
	for _, c := range cells {
		minY = min(minY, c.Y)
		maxY = max(maxY, c.Y)
	}
	lo := make([]int, maxY-minY+1)
	hi := make([]int, maxY-minY+1)
	for i := range lo {
		lo[i], hi[i] = math.MaxInt, math.MinInt
	}
	for _, c := range cells {
		lo[c.Y-minY] = min(lo[c.Y-minY], c.X)
		hi[c.Y-minY] = max(hi[c.Y-minY], c.X)
	}

	for y := minY - sightPadding; y <= maxY+sightPadding; y++ {
		spanLo, spanHi := math.MaxInt, math.MinInt
		for r := max(y-sightPadding, minY); r <= min(y+sightPadding, maxY); r++ {
			spanLo = min(spanLo, lo[r-minY])
			spanHi = max(spanHi, hi[r-minY])
		}
		if spanLo > spanHi {
			continue
		}
		for x := spanLo - sightPadding; x <= spanHi+sightPadding; x++ {
			cell := space.Cell(x, y)
			if cell == nil {
				continue
			}
			for _, obj := range cell.Objects {
				if !fn(obj) {
					return
				}
			}
		}
	}
}
