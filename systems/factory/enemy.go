package factory

import (
	"github.com/automoto/cavern/archetypes"
	"github.com/automoto/cavern/components"
	cfg "github.com/automoto/cavern/config"
	"github.com/automoto/cavern/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy centered on (x, y). Repath timers are staggered
// by spawn index so enemies do not all search on the same tick.
func CreateEnemy(ecs *ecs.ECS, x, y float64, spawnIndex int) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	obj := newActorObject(x, y, cfg.Enemy.Radius, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	components.Enemy.SetValue(enemy, components.EnemyData{
		SpawnIndex:  spawnIndex,
		RepathTimer: 1 + spawnIndex%max(cfg.Enemy.RepathInterval, 1),
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		MaxSpeed: cfg.Enemy.Speed,
	})

	addToSpace(ecs, obj)
	return enemy
}
