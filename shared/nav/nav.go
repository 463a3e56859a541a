// Package nav builds a walkability grid over a level's collision space and
// finds paths through it with A*.
package nav

import (
	"math"

	astar "github.com/beefsack/go-astar"
	"github.com/solarlune/resolv"

	cfg "github.com/automoto/cavern/config"
	"github.com/automoto/cavern/tags"
)

// NavGrid represents the walkable areas of the level
type NavGrid struct {
	Width, Height int
	CellSize      float64
	Nodes         [][]*NavNode // 2D grid of nodes
}

// NavNode represents a single cell in the navigation grid
// Implements astar.Pather interface
type NavNode struct {
	X, Y     int
	Walkable bool
	Region   int      // connected area id, 0 for solid cells
	Grid     *NavGrid // Reference to parent grid for neighbor lookup
}

var (
	cardinalDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs = [4][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
)

// PathNeighbors returns adjacent walkable nodes (implements astar.Pather)
func (n *NavNode) PathNeighbors() []astar.Pather {
	var neighbors []astar.Pather

	for _, d := range cardinalDirs {
		if nb := n.Grid.walkable(n.X+d[0], n.Y+d[1]); nb != nil {
			neighbors = append(neighbors, nb)
		}
	}

	if !cfg.Nav.AllowDiagonal {
		return neighbors
	}

	// Diagonal steps may not cut a wall corner
	for _, d := range diagonalDirs {
		if n.Grid.walkable(n.X+d[0], n.Y) == nil || n.Grid.walkable(n.X, n.Y+d[1]) == nil {
			continue
		}
		if nb := n.Grid.walkable(n.X+d[0], n.Y+d[1]); nb != nil {
			neighbors = append(neighbors, nb)
		}
	}

	return neighbors
}

// PathNeighborCost returns the movement cost between adjacent nodes (implements astar.Pather)
func (n *NavNode) PathNeighborCost(to astar.Pather) float64 {
	toNode := to.(*NavNode)
	if toNode.X != n.X && toNode.Y != n.Y {
		return cfg.Nav.DiagonalCost
	}
	return 1
}

// PathEstimatedCost returns heuristic distance to target (implements astar.Pather)
func (n *NavNode) PathEstimatedCost(to astar.Pather) float64 {
	toNode := to.(*NavNode)

	dx := float64(toNode.X - n.X)
	dy := float64(toNode.Y - n.Y)

	// Euclidean distance heuristic
	return math.Sqrt(dx*dx + dy*dy)
}

func (g *NavGrid) walkable(x, y int) *NavNode {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return nil
	}
	if node := g.Nodes[y][x]; node.Walkable {
		return node
	}
	return nil
}

// CreateNavGrid builds navigation grid from resolv Space
func CreateNavGrid(space *resolv.Space, levelWidth, levelHeight int, cellSize float64) *NavGrid {
	gridW := int(float64(levelWidth) / cellSize)
	gridH := int(float64(levelHeight) / cellSize)

	grid := &NavGrid{
		Width:    gridW,
		Height:   gridH,
		CellSize: cellSize,
		Nodes:    make([][]*NavNode, gridH),
	}

	for y := 0; y < gridH; y++ {
		grid.Nodes[y] = make([]*NavNode, gridW)
		for x := 0; x < gridW; x++ {
			grid.Nodes[y][x] = &NavNode{
				X:        x,
				Y:        y,
				Walkable: true,
				Grid:     grid,
			}
		}
	}

	// Mark cells as non-walkable based on collision data
	for y := 0; y < gridH; y++ {
		for x := 0; x < gridW; x++ {
			worldX := float64(x) * cellSize
			worldY := float64(y) * cellSize

			// Inset test object so touching neighbouring walls does not count
			testObj := resolv.NewObject(worldX+2, worldY+2, cellSize-4, cellSize-4)
			space.Add(testObj)

			if testObj.Check(0, 0, tags.ResolvSolid) != nil {
				grid.Nodes[y][x].Walkable = false
			}

			space.Remove(testObj)
		}
	}

	grid.labelRegions()
	return grid
}

// labelRegions flood-fills each connected walkable area with its own id so
// unreachable goals are rejected without running A*.
func (g *NavGrid) labelRegions() {
	region := 0
	var queue []*NavNode
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			seed := g.Nodes[y][x]
			if !seed.Walkable || seed.Region != 0 {
				continue
			}
			region++
			seed.Region = region
			queue = append(queue[:0], seed)
			for len(queue) > 0 {
				n := queue[0]
				queue = queue[1:]
				for _, p := range n.PathNeighbors() {
					nb := p.(*NavNode)
					if nb.Region == 0 {
						nb.Region = region
						queue = append(queue, nb)
					}
				}
			}
		}
	}
}

// WorldToGrid converts world coordinates to the containing cell, clamped to the grid
func (g *NavGrid) WorldToGrid(worldX, worldY float64) (int, int) {
	return clampInt(int(math.Floor(worldX/g.CellSize)), 0, g.Width-1),
		clampInt(int(math.Floor(worldY/g.CellSize)), 0, g.Height-1)
}

// GridToWorld converts grid coordinates to world coordinates (center of cell)
func (g *NavGrid) GridToWorld(gridX, gridY int) (float64, float64) {
	return float64(gridX)*g.CellSize + g.CellSize/2,
		float64(gridY)*g.CellSize + g.CellSize/2
}

// FindPath uses go-astar to find a path between world coordinates. The
// returned nodes run from start to goal; nil when no path exists.
func (g *NavGrid) FindPath(startX, startY, goalX, goalY float64) []*NavNode {
	sx, sy := g.WorldToGrid(startX, startY)
	gx, gy := g.WorldToGrid(goalX, goalY)

	startNode := g.Nodes[sy][sx]
	goalNode := g.Nodes[gy][gx]

	// Handle case where start or goal is in solid geometry
	if !startNode.Walkable {
		startNode = g.findNearestWalkable(sx, sy)
	}
	if !goalNode.Walkable {
		goalNode = g.findNearestWalkable(gx, gy)
	}

	if startNode == nil || goalNode == nil {
		return nil
	}
	if startNode == goalNode {
		return []*NavNode{startNode}
	}
	if startNode.Region != goalNode.Region {
		return nil
	}

	path, _, found := astar.Path(startNode, goalNode)
	if !found {
		return nil
	}

	result := make([]*NavNode, len(path))
	for i, p := range path {
		result[i] = p.(*NavNode)
	}
	if result[0] != startNode {
		for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
			result[i], result[j] = result[j], result[i]
		}
	}

	return result
}

// Reachable reports whether a path exists between two world positions.
func (g *NavGrid) Reachable(fromX, fromY, toX, toY float64) bool {
	return g.FindPath(fromX, fromY, toX, toY) != nil
}

// findNearestWalkable finds the nearest walkable node to the given position
func (g *NavGrid) findNearestWalkable(x, y int) *NavNode {
	// Search in expanding squares
	for radius := 1; radius < 10; radius++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if node := g.walkable(x+dx, y+dy); node != nil {
					return node
				}
			}
		}
	}
	return nil
}

func clampInt(v, minVal, maxVal int) int {
	return max(minVal, min(maxVal, v))
}
