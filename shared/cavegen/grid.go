package cavegen

import "fmt"

// Tile is the logical state of a single grid cell.
type Tile uint8

const (
	Wall Tile = iota
	Floor
)

func (t Tile) String() string {
	switch t {
	case Wall:
		return "wall"
	case Floor:
		return "floor"
	default:
		return fmt.Sprintf("Tile(%d)", uint8(t))
	}
}

// Grid is a fixed-size tile buffer stored in row-major order.
type Grid struct {
	width, height int
	tiles         []Tile
}

// NewGrid allocates a grid with every tile set to Wall.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("grid %dx%d: %w", width, height, ErrInvalidConfig)
	}
	return &Grid{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) lies inside [0,width)x[0,height).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsBorder reports whether (x, y) is on the outer ring of the grid.
func (g *Grid) IsBorder(x, y int) bool {
	return x == 0 || y == 0 || x == g.width-1 || y == g.height-1
}

// At returns the tile at (x, y). The boolean is false when the position is
// outside the grid.
func (g *Grid) At(x, y int) (Tile, bool) {
	if !g.InBounds(x, y) {
		return 0, false
	}
	return g.tiles[y*g.width+x], true
}

// TileAt is At with an error for callers that want to propagate misses.
func (g *Grid) TileAt(x, y int) (Tile, error) {
	t, ok := g.At(x, y)
	if !ok {
		return 0, fmt.Errorf("tile (%d,%d) in %dx%d grid: %w", x, y, g.width, g.height, ErrOutOfBounds)
	}
	return t, nil
}

// Set writes a tile. Out-of-range writes change nothing and return
// ErrOutOfBounds.
func (g *Grid) Set(x, y int, t Tile) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("set (%d,%d) in %dx%d grid: %w", x, y, g.width, g.height, ErrOutOfBounds)
	}
	g.tiles[y*g.width+x] = t
	return nil
}

// ForceBorder sets every tile on the outer ring to Wall.
func (g *Grid) ForceBorder() {
	for x := 0; x < g.width; x++ {
		g.tiles[x] = Wall
		g.tiles[(g.height-1)*g.width+x] = Wall
	}
	for y := 0; y < g.height; y++ {
		g.tiles[y*g.width] = Wall
		g.tiles[y*g.width+g.width-1] = Wall
	}
}

// Count returns how many tiles are in state t.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, v := range g.tiles {
		if v == t {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	tiles := make([]Tile, len(g.tiles))
	copy(tiles, g.tiles)
	return &Grid{width: g.width, height: g.height, tiles: tiles}
}

// Equal reports whether both grids have the same size and tiles.
func (g *Grid) Equal(o *Grid) bool {
	if g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.tiles {
		if g.tiles[i] != o.tiles[i] {
			return false
		}
	}
	return true
}

var (
	mooreOffsets = [8][2]int{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}
	orthogonalOffsets = [4][2]int{
		{0, -1}, {-1, 0}, {1, 0}, {0, 1},
	}
)

// CountMoore counts tiles equal to t among the 8 Moore neighbours of (x, y).
// Neighbours outside the grid are skipped.
func (g *Grid) CountMoore(x, y int, t Tile) int {
	return g.countOffsets(x, y, t, mooreOffsets[:])
}

// CountOrthogonal counts tiles equal to t among the N/S/E/W neighbours of
// (x, y). Neighbours outside the grid are skipped.
func (g *Grid) CountOrthogonal(x, y int, t Tile) int {
	return g.countOffsets(x, y, t, orthogonalOffsets[:])
}

func (g *Grid) countOffsets(x, y int, t Tile, offsets [][2]int) int {
	n := 0
	for _, o := range offsets {
		if v, ok := g.At(x+o[0], y+o[1]); ok && v == t {
			n++
		}
	}
	return n
}

// String renders the grid with '#' for walls and '.' for floor, one row per
// line.
func (g *Grid) String() string {
	buf := make([]byte, 0, (g.width+1)*g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.tiles[y*g.width+x] == Wall {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
