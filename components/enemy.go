package components

import (
	"github.com/automoto/cavern/shared/nav"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	SpawnIndex int

	// AI state
	Target       *donburi.Entry // closest player this tick
	CanSeeTarget bool
	Path         []*nav.NavNode // A* route used while the target is hidden
	PathIndex    int            // next node to walk toward
	RepathTimer  int            // frames until the path is recomputed
}

var Enemy = donburi.NewComponentType[EnemyData]()
