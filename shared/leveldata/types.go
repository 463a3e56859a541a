// Package leveldata converts generated caves into the collision and spawn
// data shared by the game and the tools, and reads/writes them as TMX.
// Nothing here depends on ebitengine, donburi or resolv.
package leveldata

import "github.com/automoto/cavern/shared/cavegen"

// Layer and object group names used in exported TMX files.
const (
	SolidLayerName   = "wg-tiles"
	SpawnGroupName   = "Spawns"
	PlayerObjectName = "player"
	EnemyObjectName  = "enemy"
)

// CollisionData holds all collision-relevant data for one level.
type CollisionData struct {
	Grid        *cavegen.Grid
	SolidRects  []SolidRect
	PlayerSpawn SpawnPoint
	EnemySpawns []SpawnPoint
	TileSize    float64
	MapWidth    int // world units
	MapHeight   int
	Seed        int64
}

// SolidRect represents a solid collision tile. X, Y is the top-left corner.
type SolidRect struct {
	X, Y, W, H float64
}

// SpawnPoint represents an actor spawn location (tile center).
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// FromLevel flattens a generated level into collision data.
func FromLevel(level *cavegen.Level) *CollisionData {
	w, h := level.WorldSize()
	data := &CollisionData{
		Grid:        level.Grid,
		SolidRects:  make([]SolidRect, 0, len(level.Colliders)),
		PlayerSpawn: SpawnPoint{X: level.Spawns.Player.X, Y: level.Spawns.Player.Y},
		TileSize:    level.TileSize,
		MapWidth:    int(w),
		MapHeight:   int(h),
		Seed:        level.Seed,
	}

	for _, c := range level.Colliders {
		lo := c.Min()
		data.SolidRects = append(data.SolidRects, SolidRect{
			X: lo.X,
			Y: lo.Y,
			W: c.HalfExtent * 2,
			H: c.HalfExtent * 2,
		})
	}

	for i, e := range level.Spawns.Enemies {
		data.EnemySpawns = append(data.EnemySpawns, SpawnPoint{X: e.X, Y: e.Y, Index: i})
	}

	return data
}
