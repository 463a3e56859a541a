package systems

import (
	"math"

	"github.com/automoto/cavern/components"
	"github.com/automoto/cavern/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	applyPlayerInput(ecs, readMoveInput())
}

// applyPlayerInput sets every player's velocity from a direction. Diagonal
// input is normalized so it is no faster than straight movement.
func applyPlayerInput(ecs *ecs.ECS, dir components.Vector) {
	length := math.Hypot(dir.X, dir.Y)
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)

		if length == 0 {
			physics.Velocity = components.Vector{}
			return
		}
		player.Direction = components.Vector{X: dir.X / length, Y: dir.Y / length}
		physics.Velocity = components.Vector{
			X: player.Direction.X * physics.MaxSpeed,
			Y: player.Direction.Y * physics.MaxSpeed,
		}
	})
}
