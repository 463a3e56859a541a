package systems

import (
	"fmt"
	"io/fs"
	"log"

	"github.com/automoto/cavern/components"
	cfg "github.com/automoto/cavern/config"
	"github.com/automoto/cavern/shared/cavegen"
	"github.com/automoto/cavern/shared/leveldata"
	"github.com/automoto/cavern/shared/nav"
	"github.com/automoto/cavern/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BuildLevel generates a cave from seed and installs it into the world. A
// seed whose cave has no floor is retried with the next seed, up to
// cfg.Generation.MaxAttempts runs.
func BuildLevel(e *ecs.ECS, seed int64) (*donburi.Entry, error) {
	level, attempts, err := cavegen.GenerateRetry(cfg.Generation.Params(seed), cfg.Generation.MaxAttempts)
	if err != nil {
		return nil, fmt.Errorf("build level: %w", err)
	}
	if attempts > 1 {
		log.Printf("Seed %d had no floor, using seed %d after %d attempts", seed, level.Seed, attempts)
	}
	return InstallLevel(e, leveldata.FromLevel(level), attempts, "generated"), nil
}

// LoadLevel installs a level previously exported as TMX.
func LoadLevel(e *ecs.ECS, fsys fs.FS, path string) (*donburi.Entry, error) {
	data, err := leveldata.LoadCollisionData(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("load level: %w", err)
	}
	return InstallLevel(e, data, 0, path), nil
}

// InstallLevel creates the level entity, its spawn markers, the collision
// space with one wall entity per solid rect, and the navigation grid. The
// world is expected to be fresh; rebuilding means creating a new world.
func InstallLevel(e *ecs.ECS, data *leveldata.CollisionData, attempts int, source string) *donburi.Entry {
	levelEntry := factory.CreateLevel(e, data, attempts, source)
	levelData := components.Level.Get(levelEntry)

	cell := int(data.TileSize)
	spaceEntry := factory.CreateSpace(e, data.MapWidth, data.MapHeight, cell, cell)
	space := components.Space.Get(spaceEntry)

	for _, r := range data.SolidRects {
		factory.CreateWall(e, r)
	}

	levelData.NavGrid = nav.CreateNavGrid(space, data.MapWidth, data.MapHeight, data.TileSize)

	log.Printf("Level ready: seed %d (%s), %dx%d tiles, %d walls, %d enemy spawns",
		data.Seed, source, data.Grid.Width(), data.Grid.Height(), len(data.SolidRects), len(data.EnemySpawns))

	return levelEntry
}

// CurrentLevel returns the world's level data, or nil before a level is installed.
func CurrentLevel(e *ecs.ECS) *components.LevelData {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(levelEntry)
}
