package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Wall       = donburi.NewTag().SetName("Wall")
	Enemy      = donburi.NewTag().SetName("Enemy")
	SpawnPoint = donburi.NewTag().SetName("SpawnPoint")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
)
