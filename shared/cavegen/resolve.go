package cavegen

import "fmt"

// Resolve makes the final scan over the whole grid, rows top to bottom and
// each row left to right. In that one pass it:
//
//   - turns every wall tile with floor on all four orthogonal sides into floor,
//   - emits a collider for every other wall tile,
//   - records the last floor tile seen as the player spawn,
//   - appends each floor tile as an enemy spawn with probability enemyChance.
//
// A wall converted to floor here is not considered for spawns in the same
// scan and consumes no random sample. Floor tiles consume exactly one sample
// each, in scan order.
//
// If the scan finds no floor tile the indices built so far are returned
// together with ErrNoFloorTile.
func Resolve(g *Grid, tileSize, enemyChance float64, rng Sampler) (ColliderIndex, SpawnIndex, error) {
	var spawns SpawnIndex
	if g == nil {
		return nil, spawns, fmt.Errorf("resolve: nil grid: %w", ErrInvalidConfig)
	}
	if tileSize <= 0 {
		return nil, spawns, fmt.Errorf("resolve: tile size %v: %w", tileSize, ErrInvalidConfig)
	}

	colliders := make(ColliderIndex, 0, g.Count(Wall))
	half := tileSize / 2
	foundFloor := false

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			i := y*g.width + x
			if g.tiles[i] == Floor {
				pos := TileCenter(x, y, tileSize)
				spawns.Player = pos
				foundFloor = true
				if rng.Float64() < enemyChance {
					spawns.Enemies = append(spawns.Enemies, pos)
				}
				continue
			}

			// Hanging pocket
			if g.CountOrthogonal(x, y, Floor) == 4 {
				g.tiles[i] = Floor
				continue
			}

			colliders = append(colliders, ColliderEntry{
				Center:     TileCenter(x, y, tileSize),
				HalfExtent: half,
			})
		}
	}

	if !foundFloor {
		return colliders, spawns, fmt.Errorf("resolve %dx%d grid: %w", g.width, g.height, ErrNoFloorTile)
	}
	return colliders, spawns, nil
}
