package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Center returns the midpoint of the object's bounds.
func (o *ObjectData) Center() (float64, float64) {
	return o.X + o.W/2, o.Y + o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()

// Space holds the level's collision space. There is one per world.
var Space = donburi.NewComponentType[resolv.Space]()
