package systems

import (
	"github.com/automoto/cavern/components"
	"github.com/automoto/cavern/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the world's viewer settings, creating them from
// config defaults on first use.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	if entry, ok := components.Settings.First(ecs.World); ok {
		return components.Settings.Get(entry)
	}
	return components.Settings.Get(factory.CreateSettings(ecs))
}

// UpdateSettings handles the debug overlay toggles: F1 colliders, F2 sight
// lines, F3 HUD.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		settings.ShowColliders = !settings.ShowColliders
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		settings.ShowSight = !settings.ShowSight
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		settings.ShowHUD = !settings.ShowHUD
	}
}
