package components

import (
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// PhysicsData drives top-down movement. Velocity is in world units per
// second; UpdatePhysics converts it to a per-tick step.
type PhysicsData struct {
	Velocity Vector
	MaxSpeed float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
