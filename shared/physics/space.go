// Package physics registers generated collision data with resolv and answers
// queries against the resulting space.
package physics

import (
	"log"

	"github.com/automoto/cavern/shared/leveldata"
	"github.com/automoto/cavern/tags"
	"github.com/solarlune/resolv"
)

// NewSpace builds a resolv.Space holding one static solid object per wall
// rect. Space cells match the level's tile size.
func NewSpace(data *leveldata.CollisionData) *resolv.Space {
	cell := int(data.TileSize)
	if cell <= 0 {
		cell = 16
	}
	space := resolv.NewSpace(data.MapWidth, data.MapHeight, cell, cell)

	for _, r := range data.SolidRects {
		space.Add(NewWallObject(r))
	}

	log.Printf("Loaded level: %d solid tiles, %d enemy spawns, %dx%d map",
		len(data.SolidRects), len(data.EnemySpawns), data.MapWidth, data.MapHeight)

	return space
}

// NewWallObject creates the solid collision object for one wall rect.
func NewWallObject(r leveldata.SolidRect) *resolv.Object {
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	return obj
}
