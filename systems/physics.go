package systems

import (
	"math"

	"github.com/automoto/cavern/components"
	cfg "github.com/automoto/cavern/config"
	"github.com/automoto/cavern/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics moves every actor by its velocity for one tick, stopping at
// walls. Each axis is resolved separately so actors slide along walls.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := tickSeconds()
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		if speed := math.Hypot(physics.Velocity.X, physics.Velocity.Y); speed > physics.MaxSpeed && speed > 0 {
			scale := physics.MaxSpeed / speed
			physics.Velocity.X *= scale
			physics.Velocity.Y *= scale
		}

		moveAndCollide(obj.Object, physics.Velocity.X*dt, physics.Velocity.Y*dt)
	})
}

func tickSeconds() float64 {
	if cfg.C.TPS <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(cfg.C.TPS)
}

func moveAndCollide(object *resolv.Object, dx, dy float64) {
	if dx != 0 {
		if check := object.Check(dx, 0, tags.ResolvSolid); check != nil {
			dx = nearestContact(check, dx, true)
		}
		object.X += dx
	}

	if dy != 0 {
		if check := object.Check(0, dy, tags.ResolvSolid); check != nil {
			dy = nearestContact(check, dy, false)
		}
		object.Y += dy
	}

	object.Update()
}

// nearestContact shortens a step along one axis to the closest solid in the
// way. Never reverses the step.
func nearestContact(check *resolv.Collision, step float64, horizontal bool) float64 {
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		contact := check.ContactWithObject(solid)
		d := contact.Y()
		if horizontal {
			d = contact.X()
		}
		if d*step < 0 {
			d = 0
		}
		if math.Abs(d) < math.Abs(step) {
			step = d
		}
	}
	return step
}
