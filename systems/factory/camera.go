package factory

import (
	"github.com/automoto/cavern/archetypes"
	"github.com/automoto/cavern/components"
	cfg "github.com/automoto/cavern/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS, x, y, zoom float64) *donburi.Entry {
	if zoom < cfg.Camera.MinZoom {
		zoom = cfg.Camera.StartZoom
	}
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position:   math.NewVec2(x, y),
		Zoom:       zoom,
		ZoomTarget: zoom,
	})
	return camera
}

func CreateSettings(ecs *ecs.ECS) *donburi.Entry {
	settings := archetypes.Settings.Spawn(ecs)
	components.Settings.SetValue(settings, components.SettingsData{
		ShowColliders: cfg.Debug.ShowColliders,
		ShowSight:     cfg.Debug.ShowSight,
		ShowHUD:       true,
	})
	return settings
}
