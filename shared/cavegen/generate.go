// Package cavegen builds cave levels. A seeded random fill is smoothed by a
// cellular automaton, then a pocket-resolution pass emits the collider and
// spawn indices consumed by the rest of the game.
//
// It has no dependencies on ebitengine, donburi, or resolv.
package cavegen

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

const (
	DefaultWallFillThreshold     = 0.45
	DefaultSmoothingIterations   = 40
	DefaultEnemySpawnProbability = 0.1
	DefaultTileSize              = 32.0
	DefaultSightRange            = 1000.0
)

// Params configures a single generation run.
type Params struct {
	Width, Height int
	TileSize      float64

	// WallFillThreshold: interior samples above it start as Wall.
	WallFillThreshold     float64
	SmoothingIterations   int
	EnemySpawnProbability float64

	Seed int64

	// Workers > 1 parallelises neighbour counting inside a smoothing pass.
	Workers int
}

// DefaultParams returns the stock 128x128 cave with 32 unit tiles.
func DefaultParams(seed int64) Params {
	return Params{
		Width:                 128,
		Height:                128,
		TileSize:              DefaultTileSize,
		WallFillThreshold:     DefaultWallFillThreshold,
		SmoothingIterations:   DefaultSmoothingIterations,
		EnemySpawnProbability: DefaultEnemySpawnProbability,
		Seed:                  seed,
	}
}

func (p Params) Validate() error {
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("dimensions %dx%d: %w", p.Width, p.Height, ErrInvalidConfig)
	case !(p.TileSize > 0) || math.IsInf(p.TileSize, 0):
		return fmt.Errorf("tile size %v: %w", p.TileSize, ErrInvalidConfig)
	case math.IsNaN(p.WallFillThreshold) || p.WallFillThreshold < 0 || p.WallFillThreshold > 1:
		return fmt.Errorf("wall fill threshold %v: %w", p.WallFillThreshold, ErrInvalidConfig)
	case math.IsNaN(p.EnemySpawnProbability) || p.EnemySpawnProbability < 0 || p.EnemySpawnProbability > 1:
		return fmt.Errorf("enemy spawn probability %v: %w", p.EnemySpawnProbability, ErrInvalidConfig)
	case p.SmoothingIterations < 0:
		return fmt.Errorf("smoothing iterations %d: %w", p.SmoothingIterations, ErrInvalidConfig)
	}
	return nil
}

// Level is the output of one generation run. Nothing in it is modified after
// Generate returns, so it can be shared between readers without locking.
type Level struct {
	Grid      *Grid
	Colliders ColliderIndex
	Spawns    SpawnIndex
	TileSize  float64
	Seed      int64
}

// WorldSize returns the level extent in world units.
func (l *Level) WorldSize() (w, h float64) {
	return float64(l.Grid.Width()) * l.TileSize, float64(l.Grid.Height()) * l.TileSize
}

// Generate builds a level using a math/rand source seeded with p.Seed.
func Generate(p Params) (*Level, error) {
	return GenerateWith(p, rand.New(rand.NewSource(p.Seed)))
}

// GenerateWith builds a level drawing every random sample from rng.
//
// When the error is ErrNoFloorTile the returned level is non-nil and holds
// the resolved grid and colliders, but its spawn index must not be used.
func GenerateWith(p Params, rng Sampler) (*Level, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	g, err := NewGrid(p.Width, p.Height)
	if err != nil {
		return nil, err
	}
	if err := Fill(g, p.WallFillThreshold, rng); err != nil {
		return nil, err
	}
	if err := Smooth(g, p.SmoothingIterations, p.Workers); err != nil {
		return nil, err
	}

	colliders, spawns, err := Resolve(g, p.TileSize, p.EnemySpawnProbability, rng)
	level := &Level{
		Grid:      g,
		Colliders: colliders,
		Spawns:    spawns,
		TileSize:  p.TileSize,
		Seed:      p.Seed,
	}
	if err != nil {
		return level, fmt.Errorf("generate seed %d: %w", p.Seed, err)
	}
	return level, nil
}

// GenerateRetry calls Generate with p.Seed, p.Seed+1, ... until a level with
// at least one floor tile comes out or maxAttempts runs are used up. It
// returns the level, whose Seed is the one that succeeded, and the number of
// attempts made. Errors other than ErrNoFloorTile stop the loop immediately.
func GenerateRetry(p Params, maxAttempts int) (*Level, int, error) {
	if maxAttempts < 1 {
		return nil, 0, fmt.Errorf("max attempts %d: %w", maxAttempts, ErrInvalidConfig)
	}
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		try := p
		try.Seed = p.Seed + int64(attempt-1)
		level, err := Generate(try)
		if err == nil {
			return level, attempt, nil
		}
		if !errors.Is(err, ErrNoFloorTile) {
			return nil, attempt, err
		}
		lastErr = err
	}
	return nil, maxAttempts, fmt.Errorf("%d attempts from seed %d: %w", maxAttempts, p.Seed, lastErr)
}
