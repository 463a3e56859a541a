package config

import "image/color"

// Config holds general viewer configuration
type Config struct {
	Width  int
	Height int
	TPS    int // simulation ticks per second
}

// PlayerConfig contains player actor configuration
type PlayerConfig struct {
	Speed  float64 // world units per second
	Radius float64
}

// EnemyConfig contains enemy actor configuration
type EnemyConfig struct {
	Speed          float64 // world units per second
	Radius         float64
	RepathInterval int // frames between A* path refreshes when the target is hidden
	RepathBudget   int // A* searches allowed per tick across all enemies
}

// CameraConfig contains viewer camera configuration
type CameraConfig struct {
	ZoomPerWheelStep float64 // zoom change per wheel notch
	MinZoom          float64
	MaxZoom          float64
	ZoomTweenSeconds float32 // duration of the eased zoom transition
	FollowSmoothing  float64 // fraction of the gap to the player closed per frame
	StartZoom        float64
}

// NavConfig contains navigation grid configuration
type NavConfig struct {
	AllowDiagonal bool    // 8-way movement; diagonals never cut wall corners
	DiagonalCost  float64 // cost multiplier for diagonal steps
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowColliders bool // outline every solid object
	ShowSight     bool // draw enemy sight lines to the player
}

// RenderConfig contains viewer colours
type RenderConfig struct {
	Background    color.RGBA
	WallColor     color.RGBA
	FloorColor    color.RGBA
	PlayerColor   color.RGBA
	EnemyColor    color.RGBA
	AlertColor    color.RGBA // enemy that can see the player
	ColliderColor color.RGBA
	SightColor    color.RGBA
}

// Global configuration instances
var C *Config
var Generation GenerationConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Camera CameraConfig
var Nav NavConfig
var Debug DebugConfig
var Render RenderConfig

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		TPS:    60,
	}

	Generation = DefaultGenerationConfig()

	Player = PlayerConfig{
		Speed:  200.0,
		Radius: 10.0,
	}

	Enemy = EnemyConfig{
		Speed:          30.0,
		Radius:         10.0,
		RepathInterval: 30,
		RepathBudget:   4,
	}

	Camera = CameraConfig{
		ZoomPerWheelStep: 1.0 / 20.0,
		MinZoom:          0.01,
		MaxZoom:          4.0,
		ZoomTweenSeconds: 0.15,
		FollowSmoothing:  0.15,
		StartZoom:        1.0,
	}

	Nav = NavConfig{
		AllowDiagonal: true,
		DiagonalCost:  1.414,
	}

	Render = RenderConfig{
		Background:    color.RGBA{R: 28, G: 10, B: 1, A: 255},
		WallColor:     color.RGBA{R: 70, G: 52, B: 40, A: 255},
		FloorColor:    color.RGBA{R: 150, G: 128, B: 96, A: 255},
		PlayerColor:   color.RGBA{R: 0, G: 100, B: 255, A: 255},
		EnemyColor:    color.RGBA{R: 255, G: 60, B: 60, A: 255},
		AlertColor:    color.RGBA{R: 255, G: 255, B: 0, A: 255},
		ColliderColor: color.RGBA{R: 0, G: 255, B: 255, A: 255},
		SightColor:    color.RGBA{R: 255, G: 255, B: 100, A: 120},
	}
}
