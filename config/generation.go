package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/automoto/cavern/shared/cavegen"
	"gopkg.in/yaml.v3"
)

// GenerationConfig describes how cave levels are generated.
//
// The grid is ChunksX*ChunkSize tiles wide and ChunksY*ChunkSize tiles high.
// It can be overridden from a YAML file, e.g. data/generation.yaml:
//
//	chunksX: 2
//	chunksY: 2
//	chunkSize: 64
//	tileSize: 32
//	wallFillThreshold: 0.45
//	smoothingIterations: 40
//	enemySpawnProbability: 0.1
type GenerationConfig struct {
	ChunksX   int     `yaml:"chunksX"`
	ChunksY   int     `yaml:"chunksY"`
	ChunkSize int     `yaml:"chunkSize"`
	TileSize  float64 `yaml:"tileSize"`

	// WallFillThreshold: interior noise samples above it start as walls
	WallFillThreshold     float64 `yaml:"wallFillThreshold"`
	SmoothingIterations   int     `yaml:"smoothingIterations"`
	EnemySpawnProbability float64 `yaml:"enemySpawnProbability"`

	// Workers > 1 splits each smoothing pass across goroutines
	Workers int `yaml:"workers"`

	// MaxAttempts bounds how many consecutive seeds are tried when a level
	// has no floor tile
	MaxAttempts int `yaml:"maxAttempts"`

	// SightRange is the distance beyond which enemies never see a target
	SightRange float64 `yaml:"sightRange"`
}

// DefaultGenerationConfig returns the stock 2x2 chunks of 64 tiles.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		ChunksX:               2,
		ChunksY:               2,
		ChunkSize:             64,
		TileSize:              cavegen.DefaultTileSize,
		WallFillThreshold:     cavegen.DefaultWallFillThreshold,
		SmoothingIterations:   cavegen.DefaultSmoothingIterations,
		EnemySpawnProbability: cavegen.DefaultEnemySpawnProbability,
		Workers:               1,
		MaxAttempts:           8,
		SightRange:            cavegen.DefaultSightRange,
	}
}

// LoadGenerationConfig reads a YAML file on top of the defaults. Keys missing
// from the file keep their default value.
func LoadGenerationConfig(path string) (*GenerationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read generation config: %w", err)
	}

	cfg := DefaultGenerationConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse generation config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generation config: %w", err)
	}

	return &cfg, nil
}

// Validate checks values that cavegen.Params cannot check on its own, then
// the derived Params.
func (c *GenerationConfig) Validate() error {
	if c.ChunksX <= 0 || c.ChunksY <= 0 || c.ChunkSize <= 0 {
		return fmt.Errorf("chunk layout %dx%d of %d tiles: %w", c.ChunksX, c.ChunksY, c.ChunkSize, cavegen.ErrInvalidConfig)
	}
	if c.MaxAttempts <= 0 {
		return errors.New("maxAttempts must be positive")
	}
	if c.SightRange <= 0 {
		return errors.New("sightRange must be positive")
	}
	// Levels are exported as TMX and indexed by resolv, both in whole pixels
	if c.TileSize != math.Trunc(c.TileSize) {
		return fmt.Errorf("tile size %v is not a whole number: %w", c.TileSize, cavegen.ErrInvalidConfig)
	}
	return c.Params(0).Validate()
}

// GridSize returns the grid dimensions in tiles.
func (c *GenerationConfig) GridSize() (w, h int) {
	return c.ChunksX * c.ChunkSize, c.ChunksY * c.ChunkSize
}

// Params converts the config into generator parameters for one seed.
func (c *GenerationConfig) Params(seed int64) cavegen.Params {
	w, h := c.GridSize()
	return cavegen.Params{
		Width:                 w,
		Height:                h,
		TileSize:              c.TileSize,
		WallFillThreshold:     c.WallFillThreshold,
		SmoothingIterations:   c.SmoothingIterations,
		EnemySpawnProbability: c.EnemySpawnProbability,
		Seed:                  seed,
		Workers:               c.Workers,
	}
}
