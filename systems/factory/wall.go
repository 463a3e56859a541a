package factory

import (
	"github.com/automoto/cavern/archetypes"
	"github.com/automoto/cavern/components"
	"github.com/automoto/cavern/shared/leveldata"
	"github.com/automoto/cavern/shared/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, r leveldata.SolidRect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := physics.NewWallObject(r)
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return wall
}
