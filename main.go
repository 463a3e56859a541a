package main

import (
	"flag"
	"image"
	"log"
	"time"

	"github.com/automoto/cavern/config"
	"github.com/automoto/cavern/scenes"
	"github.com/automoto/cavern/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(options scenes.CaveOptions) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewCaveScene(g, options)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	seed := flag.Int64("seed", 0, "Generation seed (0 = resume last seed, or time-based)")
	configPath := flag.String("config", "", "YAML generation config (empty = built-in defaults)")
	levelPath := flag.String("level", "", "TMX level to view instead of generating one")
	showColliders := flag.Bool("colliders", false, "Start with collider outlines shown")
	showSight := flag.Bool("sight", false, "Start with enemy sight lines shown")
	flag.Parse()

	if *configPath != "" {
		gen, err := config.LoadGenerationConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		config.Generation = *gen
	}
	config.Debug.ShowColliders = *showColliders
	config.Debug.ShowSight = *showSight

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Cavern")
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and resume the last seed when none was given
	options := scenes.CaveOptions{Seed: *seed, LevelPath: *levelPath}
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadViewerState(); err == nil && saved != nil {
		if options.Seed == 0 {
			options.Seed = saved.LastSeed
		}
		options.Zoom = saved.Zoom
	}
	if options.Seed == 0 && options.LevelPath == "" {
		options.Seed = time.Now().UnixNano()
	}

	log.Printf("Starting viewer (seed %d)", options.Seed)
	if err := ebiten.RunGame(NewGame(options)); err != nil {
		log.Fatal(err)
	}
}
