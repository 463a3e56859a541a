package components

import (
	"github.com/automoto/cavern/shared/leveldata"
	"github.com/automoto/cavern/shared/nav"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Collision *leveldata.CollisionData
	NavGrid   *nav.NavGrid
	Seed      int64 // seed the level was built from, after any retries
	Attempts  int   // generation runs used; 0 for levels loaded from TMX
	Source    string
}

var Level = donburi.NewComponentType[LevelData]()
