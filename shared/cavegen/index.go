package cavegen

import "math"

// Point is a world-space position.
type Point struct {
	X, Y float64
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// TileCenter returns the world-space center of tile (x, y).
func TileCenter(x, y int, tileSize float64) Point {
	half := tileSize / 2
	return Point{
		X: float64(x)*tileSize + half,
		Y: float64(y)*tileSize + half,
	}
}

// WorldToTile maps a world position to the tile containing it.
func WorldToTile(p Point, tileSize float64) (x, y int) {
	return int(math.Floor(p.X / tileSize)), int(math.Floor(p.Y / tileSize))
}

// ColliderEntry is a static axis-aligned square obstacle for one wall tile.
type ColliderEntry struct {
	Center     Point
	HalfExtent float64
}

// Min returns the top-left corner of the box.
func (c ColliderEntry) Min() Point {
	return Point{X: c.Center.X - c.HalfExtent, Y: c.Center.Y - c.HalfExtent}
}

// Max returns the bottom-right corner of the box.
func (c ColliderEntry) Max() Point {
	return Point{X: c.Center.X + c.HalfExtent, Y: c.Center.Y + c.HalfExtent}
}

// Tile maps the collider back to the grid tile it was emitted for.
func (c ColliderEntry) Tile(tileSize float64) (x, y int) {
	return WorldToTile(c.Center, tileSize)
}

// ColliderIndex holds one entry per wall tile that survived pocket
// resolution, in scan order. It is never modified after generation.
type ColliderIndex []ColliderEntry

// SpawnIndex holds the positions actors are placed at when a level starts.
type SpawnIndex struct {
	Player  Point
	Enemies []Point
}
