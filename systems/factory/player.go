package factory

import (
	"github.com/automoto/cavern/archetypes"
	"github.com/automoto/cavern/components"
	cfg "github.com/automoto/cavern/config"
	"github.com/automoto/cavern/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player centered on (x, y).
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := newActorObject(x, y, cfg.Player.Radius, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Player.SetValue(player, components.PlayerData{
		Direction: components.Vector{X: 1, Y: 0},
	})
	components.Physics.SetValue(player, components.PhysicsData{
		MaxSpeed: cfg.Player.Speed,
	})

	addToSpace(ecs, obj)
	return player
}

// newActorObject builds a square collision box of side 2*radius centered on
// (x, y).
func newActorObject(x, y, radius float64, tag string) *resolv.Object {
	size := radius * 2
	obj := resolv.NewObject(x-radius, y-radius, size, size, "character", tag)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	return obj
}
