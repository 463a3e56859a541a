package systems

import (
	"log"

	"github.com/automoto/cavern/components"
	"github.com/automoto/cavern/systems/factory"
	"github.com/automoto/cavern/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnActors removes any existing player and enemies, then creates one actor
// per unconsumed spawn marker. Markers are consumed, so a second call without
// a level rebuild only clears actors. It returns the number of actors created.
func SpawnActors(e *ecs.ECS) int {
	ClearActors(e)

	var pending []components.SpawnPointData
	tags.SpawnPoint.Each(e.World, func(entry *donburi.Entry) {
		if spawn := components.SpawnPoint.Get(entry); !spawn.Consumed {
			spawn.Consumed = true
			pending = append(pending, *spawn)
		}
	})

	spawned := 0
	for _, spawn := range pending {
		switch spawn.Kind {
		case components.SpawnPlayer:
			factory.CreatePlayer(e, spawn.X, spawn.Y)
		case components.SpawnEnemy:
			factory.CreateEnemy(e, spawn.X, spawn.Y, spawn.Index)
		}
		spawned++
	}

	if spawned > 0 {
		log.Printf("Spawned %d actors", spawned)
	}
	return spawned
}

// ClearActors removes every player and enemy entity and its collision object.
func ClearActors(e *ecs.ECS) {
	var actors []*donburi.Entry
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		actors = append(actors, entry)
	})
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		actors = append(actors, entry)
	})

	spaceEntry, hasSpace := components.Space.First(e.World)
	for _, entry := range actors {
		if hasSpace {
			obj := components.Object.Get(entry)
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
		e.World.Remove(entry.Entity())
	}
}
