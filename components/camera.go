package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position   math.Vec2
	Zoom       float64
	ZoomTarget float64      // where the running tween ends
	ZoomTween  *gween.Tween // nil when no zoom change is in flight
}

var Camera = donburi.NewComponentType[CameraData]()
