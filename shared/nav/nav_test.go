package nav

import (
	"math/rand"
	"testing"

	"github.com/automoto/cavern/shared/cavegen"
	"github.com/automoto/cavern/shared/leveldata"
	"github.com/automoto/cavern/shared/physics"
)

func navFromRows(t *testing.T, rows ...string) (*NavGrid, *cavegen.Grid) {
	t.Helper()
	g, err := cavegen.NewGrid(len(rows[0]), len(rows))
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	for y, row := range rows {
		for x, c := range row {
			if c == '.' {
				_ = g.Set(x, y, cavegen.Floor)
			}
		}
	}
	colliders, spawns, err := cavegen.Resolve(g, 32, 0, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	data := leveldata.FromLevel(&cavegen.Level{Grid: g, Colliders: colliders, Spawns: spawns, TileSize: 32})
	space := physics.NewSpace(data)
	return CreateNavGrid(space, data.MapWidth, data.MapHeight, data.TileSize), g
}

func center(x, y int) (float64, float64) {
	p := cavegen.TileCenter(x, y, 32)
	return p.X, p.Y
}

func TestCreateNavGridMatchesFloor(t *testing.T) {
	grid, g := navFromRows(t,
		"#######",
		"#..#..#",
		"#..#..#",
		"#.....#",
		"#######",
	)
	if grid.Width != 7 || grid.Height != 5 {
		t.Fatalf("nav grid %dx%d, want 7x5", grid.Width, grid.Height)
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			tile, _ := g.At(x, y)
			if grid.Nodes[y][x].Walkable != (tile == cavegen.Floor) {
				t.Errorf("cell (%d,%d) walkable = %v, tile = %v", x, y, grid.Nodes[y][x].Walkable, tile)
			}
		}
	}
}

func TestFindPathAroundWall(t *testing.T) {
	grid, _ := navFromRows(t,
		"#######",
		"#..#..#",
		"#..#..#",
		"#.....#",
		"#######",
	)
	sx, sy := center(1, 1)
	gx, gy := center(5, 1)

	path := grid.FindPath(sx, sy, gx, gy)
	if path == nil {
		t.Fatal("expected a path")
	}
	if first := path[0]; first.X != 1 || first.Y != 1 {
		t.Errorf("path starts at (%d,%d), want (1,1)", first.X, first.Y)
	}
	if last := path[len(path)-1]; last.X != 5 || last.Y != 1 {
		t.Errorf("path ends at (%d,%d), want (5,1)", last.X, last.Y)
	}
	for _, n := range path {
		if !n.Walkable {
			t.Fatalf("path crosses wall at (%d,%d)", n.X, n.Y)
		}
		if n.X == 3 && n.Y != 3 {
			t.Fatalf("path passes the divider at (%d,%d)", n.X, n.Y)
		}
	}
}

func TestFindPathDisconnected(t *testing.T) {
	grid, _ := navFromRows(t,
		"#######",
		"#..#..#",
		"#######",
	)
	sx, sy := center(1, 1)
	gx, gy := center(5, 1)
	if grid.Reachable(sx, sy, gx, gy) {
		t.Error("separate chambers should not be reachable")
	}
	if !grid.Reachable(sx, sy, sx+32, sy) {
		t.Error("neighbouring floor should be reachable")
	}
}

func TestFindPathNoCornerCutting(t *testing.T) {
	grid, _ := navFromRows(t,
		"####",
		"#.##",
		"##.#",
		"####",
	)
	sx, sy := center(1, 1)
	gx, gy := center(2, 2)
	if grid.Reachable(sx, sy, gx, gy) {
		t.Error("diagonal step between two wall corners should be blocked")
	}
}

func TestWorldToGridClamps(t *testing.T) {
	grid, _ := navFromRows(t,
		"###",
		"#.#",
		"###",
	)
	if x, y := grid.WorldToGrid(-50, 5000); x != 0 || y != 2 {
		t.Errorf("WorldToGrid = (%d,%d), want (0,2)", x, y)
	}
	if wx, wy := grid.GridToWorld(1, 1); wx != 48 || wy != 48 {
		t.Errorf("GridToWorld = (%v,%v), want (48,48)", wx, wy)
	}
}

func TestCreateNavGridLabelsRegions(t *testing.T) {
	grid, _ := navFromRows(t,
		"#######",
		"#..#..#",
		"#..#..#",
		"#######",
	)
	left, right := grid.Nodes[1][1], grid.Nodes[2][5]
	if left.Region == 0 || right.Region == 0 {
		t.Fatalf("floor regions = %d/%d, want non-zero", left.Region, right.Region)
	}
	if left.Region == right.Region {
		t.Error("separate chambers share a region")
	}
	if grid.Nodes[2][2].Region != left.Region {
		t.Error("cells of one chamber have different regions")
	}
	if grid.Nodes[0][0].Region != 0 || grid.Nodes[1][3].Region != 0 {
		t.Error("solid cells should have region 0")
	}
}
