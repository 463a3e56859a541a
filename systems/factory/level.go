package factory

import (
	"github.com/automoto/cavern/archetypes"
	"github.com/automoto/cavern/components"
	"github.com/automoto/cavern/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel creates the level entity and one spawn marker per entry in the
// level's spawn index. The player marker comes first, then enemies in index
// order.
func CreateLevel(ecs *ecs.ECS, data *leveldata.CollisionData, attempts int, source string) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		Collision: data,
		Seed:      data.Seed,
		Attempts:  attempts,
		Source:    source,
	})

	CreateSpawnPoint(ecs, components.SpawnPointData{
		Kind: components.SpawnPlayer,
		X:    data.PlayerSpawn.X,
		Y:    data.PlayerSpawn.Y,
	})
	for _, s := range data.EnemySpawns {
		CreateSpawnPoint(ecs, components.SpawnPointData{
			Kind:  components.SpawnEnemy,
			Index: s.Index,
			X:     s.X,
			Y:     s.Y,
		})
	}

	return level
}

func CreateSpawnPoint(ecs *ecs.ECS, data components.SpawnPointData) *donburi.Entry {
	spawn := archetypes.SpawnPoint.Spawn(ecs)
	components.SpawnPoint.SetValue(spawn, data)
	return spawn
}
