package cavegen

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Smooth runs exactly iterations automaton passes over the interior of g.
//
// Each pass reads a snapshot of the previous pass and writes into a second
// buffer that is swapped in once the pass is complete, so the result does not
// depend on visiting order. A tile becomes Wall when more than 4 of its Moore
// neighbours are walls or when none are; otherwise it becomes Floor. Border
// tiles are never written.
//
// workers > 1 splits each pass by rows across goroutines. Passes themselves
// always run one after another.
func Smooth(g *Grid, iterations, workers int) error {
	if g == nil {
		return fmt.Errorf("smooth: nil grid: %w", ErrInvalidConfig)
	}
	if iterations < 0 {
		return fmt.Errorf("smooth: %d iterations: %w", iterations, ErrInvalidConfig)
	}
	if g.width < 3 || g.height < 3 {
		// no interior tiles
		return nil
	}

	next := g.Clone()
	for i := 0; i < iterations; i++ {
		if workers > 1 {
			if err := smoothParallel(g, next, workers); err != nil {
				return err
			}
		} else {
			smoothRows(g, next, 1, g.height-1)
		}
		g.tiles, next.tiles = next.tiles, g.tiles
	}
	return nil
}

// smoothRows computes rows [y0,y1) of the next generation from src into dst.
func smoothRows(src, dst *Grid, y0, y1 int) {
	for y := y0; y < y1; y++ {
		for x := 1; x < src.width-1; x++ {
			walls := src.CountMoore(x, y, Wall)
			t := Floor
			if walls > 4 || walls == 0 {
				t = Wall
			}
			dst.tiles[y*dst.width+x] = t
		}
	}
}

func smoothParallel(src, dst *Grid, workers int) error {
	interior := src.height - 2
	if workers > interior {
		workers = interior
	}
	band := (interior + workers - 1) / workers

	var eg errgroup.Group
	eg.SetLimit(workers)
	for y0 := 1; y0 < src.height-1; y0 += band {
		y1 := min(y0+band, src.height-1)
		eg.Go(func() error {
			smoothRows(src, dst, y0, y1)
			return nil
		})
	}
	return eg.Wait()
}
