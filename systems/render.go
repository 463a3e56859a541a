package systems

import (
	"image/color"

	"github.com/automoto/cavern/components"
	cfg "github.com/automoto/cavern/config"
	"github.com/automoto/cavern/shared/cavegen"
	"github.com/automoto/cavern/shared/leveldata"
	"github.com/automoto/cavern/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	// One pixel per tile, scaled up at draw time. Rebuilt when the level changes.
	levelImage     *ebiten.Image
	levelImageData *leveldata.CollisionData
)

// viewTransform maps world coordinates to screen coordinates for the camera.
type viewTransform struct {
	camX, camY float64
	zoom       float64
	halfW      float64
	halfH      float64
}

func newViewTransform(camera *components.CameraData, screen *ebiten.Image) viewTransform {
	zoom := camera.Zoom
	if zoom <= 0 {
		zoom = 1.0
	}
	return viewTransform{
		camX:  camera.Position.X,
		camY:  camera.Position.Y,
		zoom:  zoom,
		halfW: float64(screen.Bounds().Dx()) / 2,
		halfH: float64(screen.Bounds().Dy()) / 2,
	}
}

func (v viewTransform) toScreen(x, y float64) (float32, float32) {
	return float32((x-v.camX)*v.zoom + v.halfW), float32((y-v.camY)*v.zoom + v.halfH)
}

func (v viewTransform) scale(d float64) float32 {
	return float32(d * v.zoom)
}

func cameraView(ecs *ecs.ECS, screen *ebiten.Image) (viewTransform, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return viewTransform{}, false
	}
	return newViewTransform(components.Camera.Get(cameraEntry), screen), true
}

// DrawLevel draws the cave tiles.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	view, ok := cameraView(ecs, screen)
	if !ok {
		return
	}
	level := CurrentLevel(ecs)
	if level == nil || level.Collision == nil || level.Collision.Grid == nil {
		return
	}

	if levelImageData != level.Collision {
		levelImage = buildLevelImage(level.Collision.Grid)
		levelImageData = level.Collision
	}

	ts := level.Collision.TileSize
	drawOp.GeoM.Reset()
	drawOp.GeoM.Scale(ts, ts)
	drawOp.GeoM.Translate(-view.camX, -view.camY)
	drawOp.GeoM.Scale(view.zoom, view.zoom)
	drawOp.GeoM.Translate(view.halfW, view.halfH)
	screen.DrawImage(levelImage, drawOp)
}

func buildLevelImage(g *cavegen.Grid) *ebiten.Image {
	w, h := g.Width(), g.Height()
	pix := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := cfg.Render.FloorColor
			if t, _ := g.At(x, y); t == cavegen.Wall {
				c = cfg.Render.WallColor
			}
			i := (y*w + x) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
		}
	}
	img := ebiten.NewImage(w, h)
	img.WritePixels(pix)
	return img
}

// DrawActors draws the player and enemies as filled boxes. Enemies that can
// see their target use the alert colour.
func DrawActors(ecs *ecs.ECS, screen *ebiten.Image) {
	view, ok := cameraView(ecs, screen)
	if !ok {
		return
	}

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		c := cfg.Render.EnemyColor
		if components.Enemy.Get(e).CanSeeTarget {
			c = cfg.Render.AlertColor
		}
		drawObject(screen, view, components.Object.Get(e), c)
	})
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		drawObject(screen, view, components.Object.Get(e), cfg.Render.PlayerColor)
	})
}

func drawObject(screen *ebiten.Image, view viewTransform, obj *components.ObjectData, c color.Color) {
	x, y := view.toScreen(obj.X, obj.Y)
	vector.FillRect(screen, x, y, view.scale(obj.W), view.scale(obj.H), c, false)
}
