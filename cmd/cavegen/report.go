package main

import (
	"fmt"
	"io"

	"github.com/automoto/cavern/shared/cavegen"
	"github.com/automoto/cavern/shared/leveldata"
	"github.com/automoto/cavern/shared/nav"
	"github.com/automoto/cavern/shared/physics"
)

type spawnReport struct {
	Total     int
	Reachable int
	Visible   int
}

// buildReport counts enemy spawns with an A* route to the player spawn and
// those with direct line of sight to it.
func buildReport(data *leveldata.CollisionData, level *cavegen.Level, sightRange float64) spawnReport {
	space := physics.NewSpace(data)
	grid := nav.CreateNavGrid(space, data.MapWidth, data.MapHeight, data.TileSize)

	player := level.Spawns.Player
	r := spawnReport{Total: len(level.Spawns.Enemies)}
	for _, e := range level.Spawns.Enemies {
		if grid.Reachable(e.X, e.Y, player.X, player.Y) {
			r.Reachable++
		}
		if level.Colliders.Visible(e, player, sightRange) {
			r.Visible++
		}
	}
	return r
}

func writeReport(w io.Writer, data *leveldata.CollisionData, level *cavegen.Level, sightRange float64) error {
	r := buildReport(data, level, sightRange)
	floor := level.Grid.Count(cavegen.Floor)
	total := level.Grid.Width() * level.Grid.Height()
	_, err := fmt.Fprintf(w, "seed %d: floor %d/%d tiles (%.1f%%), enemies %d, reachable %d, in sight %d\n",
		level.Seed, floor, total, 100*float64(floor)/float64(total), r.Total, r.Reachable, r.Visible)
	return err
}
