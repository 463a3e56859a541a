package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/automoto/cavern/shared/cavegen"
	"github.com/lafriks/go-tiled"
)

// LoadCollisionData parses a TMX file written by WriteTMX and returns its
// grid, collision data and spawn points. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS.
func LoadCollisionData(fsys fs.FS, tmxPath string) (*CollisionData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("load TMX %s: non-square tiles %dx%d", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	grid, err := cavegen.NewGrid(levelMap.Width, levelMap.Height)
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	tileSize := float64(levelMap.TileWidth)
	data := &CollisionData{
		Grid:      grid,
		TileSize:  tileSize,
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}
	if levelMap.Properties != nil {
		if s := levelMap.Properties.GetString("seed"); s != "" {
			seed, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("load TMX %s: seed %q: %w", tmxPath, s, err)
			}
			data.Seed = seed
		}
	}

	// Walls are the non-empty tiles of the wg-tiles layer
	foundLayer := false
	for _, layer := range levelMap.Layers {
		if layer.Name != SolidLayerName {
			continue
		}
		foundLayer = true
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					_ = grid.Set(x, y, cavegen.Floor)
					continue
				}
				data.SolidRects = append(data.SolidRects, SolidRect{
					X: float64(x) * tileSize,
					Y: float64(y) * tileSize,
					W: tileSize,
					H: tileSize,
				})
			}
		}
		break
	}
	if !foundLayer {
		return nil, fmt.Errorf("load TMX %s: no %q layer", tmxPath, SolidLayerName)
	}

	foundPlayer := false
	for _, og := range levelMap.ObjectGroups {
		if og.Name != SpawnGroupName {
			continue
		}
		for _, o := range og.Objects {
			switch o.Name {
			case PlayerObjectName:
				data.PlayerSpawn = SpawnPoint{X: o.X, Y: o.Y}
				foundPlayer = true
			case EnemyObjectName:
				data.EnemySpawns = append(data.EnemySpawns, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}
	if !foundPlayer {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, cavegen.ErrNoFloorTile)
	}

	// Keep the generator's scan order
	sort.SliceStable(data.EnemySpawns, func(i, j int) bool {
		return data.EnemySpawns[i].Index < data.EnemySpawns[j].Index
	})

	return data, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads collision
// data for each, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*CollisionData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*CollisionData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadCollisionData(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		levels[stem] = data
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}
