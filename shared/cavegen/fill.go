package cavegen

import "fmt"

// Sampler is a source of uniform samples in [0,1). *rand.Rand satisfies it.
type Sampler interface {
	Float64() float64
}

// Fill seeds the grid with noise. Every interior tile whose sample is above
// threshold becomes Wall, the rest Floor; the outer ring is then forced to
// Wall. Samples are drawn in row-major order.
func Fill(g *Grid, threshold float64, rng Sampler) error {
	if g == nil || g.width <= 0 || g.height <= 0 {
		return fmt.Errorf("fill: empty grid: %w", ErrInvalidConfig)
	}
	for y := 1; y < g.height-1; y++ {
		for x := 1; x < g.width-1; x++ {
			t := Floor
			if rng.Float64() > threshold {
				t = Wall
			}
			g.tiles[y*g.width+x] = t
		}
	}
	g.ForceBorder()
	return nil
}
