package systems

import (
	"github.com/automoto/cavern/components"
	cfg "github.com/automoto/cavern/config"
	"github.com/automoto/cavern/shared/gamemath"
	"github.com/automoto/cavern/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera applies mouse-wheel zoom and keeps the camera on the player.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		ZoomBy(camera, wheelY)
	}
	stepZoom(camera, float32(tickSeconds()))

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return // no player yet, leave the camera where it is
	}
	targetX, targetY := components.Object.Get(playerEntry).Center()
	camera.Position.X += (targetX - camera.Position.X) * cfg.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * cfg.Camera.FollowSmoothing
}

// ZoomBy changes the zoom target by wheel notches and starts an eased tween
// from the current zoom. The target never drops below cfg.Camera.MinZoom.
func ZoomBy(camera *components.CameraData, notches float64) {
	target := gamemath.Clamp(camera.ZoomTarget+notches*cfg.Camera.ZoomPerWheelStep, cfg.Camera.MinZoom, cfg.Camera.MaxZoom)
	if target == camera.ZoomTarget {
		return
	}
	camera.ZoomTarget = target
	camera.ZoomTween = gween.New(float32(camera.Zoom), float32(target), cfg.Camera.ZoomTweenSeconds, ease.OutQuad)
}

// stepZoom advances the zoom tween by dt seconds.
func stepZoom(camera *components.CameraData, dt float32) {
	if camera.ZoomTween == nil {
		return
	}
	value, finished := camera.ZoomTween.Update(dt)
	camera.Zoom = float64(value)
	if finished {
		camera.Zoom = camera.ZoomTarget
		camera.ZoomTween = nil
	}
}
