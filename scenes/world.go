package scenes

import (
	"os"
	"path/filepath"
	"sync"

	cfg "github.com/automoto/cavern/config"
	"github.com/automoto/cavern/components"
	"github.com/automoto/cavern/systems"
	"github.com/automoto/cavern/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CaveOptions selects the level a CaveScene shows.
type CaveOptions struct {
	Seed      int64
	LevelPath string  // TMX file to load instead of generating; empty to generate
	Zoom      float64 // starting zoom; config default when zero
}

// CaveScene shows one cave level with its player and enemies. Pressing R
// replaces it with a fresh scene built from the next seed.
type CaveScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	options      CaveOptions
	once         sync.Once
}

func NewCaveScene(sc SceneChanger, options CaveOptions) *CaveScene {
	return &CaveScene{sceneChanger: sc, options: options}
}

func (cs *CaveScene) Update() {
	cs.once.Do(cs.configure)

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		cs.regenerate()
		return
	}

	cs.ecs.Update()
}

func (cs *CaveScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Render.Background)

	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)
}

// regenerate saves the viewer state and switches to a scene for the next
// seed. The old world is dropped wholesale.
func (cs *CaveScene) regenerate() {
	systems.SaveCurrentViewerState(cs.ecs)

	next := cs.options
	next.LevelPath = ""
	next.Seed = cs.seed() + 1
	if cameraEntry, ok := components.Camera.First(cs.ecs.World); ok {
		next.Zoom = components.Camera.Get(cameraEntry).ZoomTarget
	}
	cs.sceneChanger.ChangeScene(NewCaveScene(cs.sceneChanger, next))
}

func (cs *CaveScene) seed() int64 {
	if level := systems.CurrentLevel(cs.ecs); level != nil {
		return level.Seed
	}
	return cs.options.Seed
}

func (cs *CaveScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateEnemies)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawActors)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	cs.ecs = ecs

	var err error
	if cs.options.LevelPath != "" {
		dir, name := filepath.Split(cs.options.LevelPath)
		if dir == "" {
			dir = "."
		}
		_, err = systems.LoadLevel(cs.ecs, os.DirFS(dir), name)
	} else {
		_, err = systems.BuildLevel(cs.ecs, cs.options.Seed)
	}
	if err != nil {
		panic("failed to set up level: " + err.Error())
	}

	systems.SpawnActors(cs.ecs)

	// Snap camera to the player spawn to prevent panning from (0,0)
	level := systems.CurrentLevel(cs.ecs)
	spawn := level.Collision.PlayerSpawn
	factory.CreateCamera(cs.ecs, spawn.X, spawn.Y, cs.options.Zoom)
	systems.GetOrCreateSettings(cs.ecs)

	systems.SaveCurrentViewerState(cs.ecs)
}
