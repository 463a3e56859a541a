package components

import (
	"github.com/yohamta/donburi"
)

type SpawnKind int

const (
	SpawnPlayer SpawnKind = iota
	SpawnEnemy
)

// SpawnPointData marks a spawn location from the level's spawn index. A spawn
// point is consumed the first time an actor is created from it.
type SpawnPointData struct {
	Kind     SpawnKind
	Index    int
	X, Y     float64
	Consumed bool
}

var SpawnPoint = donburi.NewComponentType[SpawnPointData]()
