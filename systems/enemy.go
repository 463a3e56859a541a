package systems

import (
	"math"
	"sort"

	"github.com/automoto/cavern/components"
	cfg "github.com/automoto/cavern/config"
	"github.com/automoto/cavern/shared/gamemath"
	"github.com/automoto/cavern/shared/nav"
	"github.com/automoto/cavern/shared/physics"
	"github.com/automoto/cavern/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// waypointReached is how close an enemy must get to a path node's center
// before it heads for the next one.
const waypointReached = 2.0

type playerInfo struct {
	entry *donburi.Entry
	x, y  float64
}

// UpdateEnemies steers every enemy toward its closest player. An enemy with
// line of sight, or with its target beyond sight range, moves straight at
// the player; otherwise it follows an A* path over the level's navigation
// grid, recomputed every cfg.Enemy.RepathInterval frames. At most
// cfg.Enemy.RepathBudget paths are searched per tick, most overdue first.
func UpdateEnemies(ecs *ecs.ECS) {
	updateEnemies(ecs)
}

// updateEnemies runs one enemy tick and returns how many A* searches it ran.
func updateEnemies(ecs *ecs.ECS) int {
	var space *resolv.Space
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space = components.Space.Get(spaceEntry)
	}
	var navGrid *nav.NavGrid
	if level := CurrentLevel(ecs); level != nil {
		navGrid = level.NavGrid
	}

	var players []playerInfo
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		x, y := components.Object.Get(e).Center()
		players = append(players, playerInfo{entry: e, x: x, y: y})
	})

	var due []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if steerEnemy(e, players, space, navGrid) {
			due = append(due, e)
		}
	})

	return repathEnemies(due, navGrid, cfg.Enemy.RepathBudget)
}

// steerEnemy picks the enemy's target and sets its velocity. It returns true
// when the enemy is following a path that needs a fresh search; its velocity
// is then set by repathEnemies.
func steerEnemy(enemyEntry *donburi.Entry, players []playerInfo, space *resolv.Space, navGrid *nav.NavGrid) bool {
	enemy := components.Enemy.Get(enemyEntry)
	phys := components.Physics.Get(enemyEntry)
	ex, ey := components.Object.Get(enemyEntry).Center()

	target := findClosestPlayer(ex, ey, players)
	if target == nil {
		enemy.Target = nil
		enemy.CanSeeTarget = false
		enemy.Path = nil
		phys.Velocity = components.Vector{}
		return false
	}
	enemy.Target = target.entry

	inRange := math.Hypot(target.x-ex, target.y-ey) <= cfg.Generation.SightRange
	enemy.CanSeeTarget = inRange && space != nil &&
		physics.HasLineOfSight(space, ex, ey, target.x, target.y, cfg.Generation.SightRange)

	if enemy.CanSeeTarget {
		enemy.RepathTimer = 0
	}
	if enemy.CanSeeTarget || !inRange || navGrid == nil {
		enemy.Path = nil
		phys.Velocity.X, phys.Velocity.Y = gamemath.ChaseVelocity(ex, ey, target.x, target.y, phys.MaxSpeed)
		return false
	}

	// Keeps counting down while waiting for budget so the longest wait goes first
	enemy.RepathTimer--
	if enemy.RepathTimer <= 0 || (enemy.Path != nil && enemy.PathIndex >= len(enemy.Path)) {
		return true
	}

	phys.Velocity = followPath(enemy, navGrid, ex, ey, phys.MaxSpeed)
	return false
}

// repathEnemies searches new paths for up to budget of the due enemies, lowest
// RepathTimer first, and steers all of them along their paths. Enemies left
// over keep their old path until a later tick.
func repathEnemies(due []*donburi.Entry, navGrid *nav.NavGrid, budget int) int {
	sort.SliceStable(due, func(i, j int) bool {
		return components.Enemy.Get(due[i]).RepathTimer < components.Enemy.Get(due[j]).RepathTimer
	})

	searched := 0
	for _, entry := range due {
		enemy := components.Enemy.Get(entry)
		phys := components.Physics.Get(entry)
		ex, ey := components.Object.Get(entry).Center()

		if searched < budget {
			target := components.Object.Get(enemy.Target)
			tx, ty := target.Center()
			enemy.Path = navGrid.FindPath(ex, ey, tx, ty)
			enemy.PathIndex = 1 // node 0 is the cell the enemy stands in
			enemy.RepathTimer = cfg.Enemy.RepathInterval
			searched++
		}

		phys.Velocity = followPath(enemy, navGrid, ex, ey, phys.MaxSpeed)
	}
	return searched
}

func findClosestPlayer(x, y float64, players []playerInfo) *playerInfo {
	var closest *playerInfo
	closestDist := math.MaxFloat64
	for i := range players {
		p := &players[i]
		if d := math.Hypot(p.x-x, p.y-y); d < closestDist {
			closest = p
			closestDist = d
		}
	}
	return closest
}

// followPath returns the velocity toward the enemy's next waypoint, advancing
// past waypoints already reached. Zero when the path is exhausted.
func followPath(enemy *components.EnemyData, navGrid *nav.NavGrid, x, y, speed float64) components.Vector {
	for enemy.PathIndex < len(enemy.Path) {
		node := enemy.Path[enemy.PathIndex]
		wx, wy := navGrid.GridToWorld(node.X, node.Y)
		if math.Hypot(wx-x, wy-y) > waypointReached {
			vx, vy := gamemath.ChaseVelocity(x, y, wx, wy, speed)
			return components.Vector{X: vx, Y: vy}
		}
		enemy.PathIndex++
	}
	return components.Vector{}
}
