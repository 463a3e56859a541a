package systems

import (
	"fmt"

	"github.com/automoto/cavern/components"
	cfg "github.com/automoto/cavern/config"
	"github.com/automoto/cavern/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)

	view, ok := cameraView(ecs, screen)
	if !ok {
		return
	}

	if settings.ShowColliders {
		drawColliders(ecs, screen, view)
	}
	if settings.ShowSight {
		drawSightLines(ecs, screen, view)
	}
	if settings.ShowHUD {
		drawHUD(ecs, screen, view)
	}
}

func drawColliders(ecs *ecs.ECS, screen *ebiten.Image, view viewTransform) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	// Viewport in world coordinates
	viewX := view.camX - view.halfW/view.zoom
	viewY := view.camY - view.halfH/view.zoom
	viewW := 2 * view.halfW / view.zoom
	viewH := 2 * view.halfH / view.zoom

	for _, obj := range space.Objects() {
		if obj.X+obj.W < viewX || obj.X > viewX+viewW || obj.Y+obj.H < viewY || obj.Y > viewY+viewH {
			continue
		}
		if !obj.HasTags(tags.ResolvSolid) {
			continue
		}
		x, y := view.toScreen(obj.X, obj.Y)
		vector.StrokeRect(screen, x, y, view.scale(obj.W), view.scale(obj.H), 1, cfg.Render.ColliderColor, false)
	}
}

func drawSightLines(ecs *ecs.ECS, screen *ebiten.Image, view viewTransform) {
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		if !enemy.CanSeeTarget || enemy.Target == nil || !enemy.Target.Valid() {
			return
		}
		ex, ey := components.Object.Get(e).Center()
		px, py := components.Object.Get(enemy.Target).Center()
		x0, y0 := view.toScreen(ex, ey)
		x1, y1 := view.toScreen(px, py)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, cfg.Render.SightColor, false)
	})
}

func drawHUD(ecs *ecs.ECS, screen *ebiten.Image, view viewTransform) {
	level := CurrentLevel(ecs)
	if level == nil {
		return
	}

	enemies, alerted := 0, 0
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemies++
		if components.Enemy.Get(e).CanSeeTarget {
			alerted++
		}
	})

	msg := fmt.Sprintf("seed %d (%s)  zoom %.2f  enemies %d  alerted %d  TPS %.0f\n"+
		"WASD move  wheel zoom  R new seed  F1 colliders  F2 sight  F3 HUD",
		level.Seed, level.Source, view.zoom, enemies, alerted, ebiten.ActualTPS())
	ebitenutil.DebugPrint(screen, msg)
}
