package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/automoto/cavern/shared/cavegen"
)

func TestLoadGenerationConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GenerationConfig)
	}{
		{
			name: "full config",
			yamlContent: `
chunksX: 3
chunksY: 1
chunkSize: 32
tileSize: 16
wallFillThreshold: 0.5
smoothingIterations: 10
enemySpawnProbability: 0.2
workers: 4
maxAttempts: 3
sightRange: 500
`,
			validate: func(t *testing.T, cfg *GenerationConfig) {
				w, h := cfg.GridSize()
				if w != 96 || h != 32 {
					t.Errorf("expected grid 96x32, got %dx%d", w, h)
				}
				p := cfg.Params(11)
				if p.TileSize != 16 || p.SmoothingIterations != 10 || p.Workers != 4 || p.Seed != 11 {
					t.Errorf("unexpected params: %+v", p)
				}
				if cfg.SightRange != 500 {
					t.Errorf("expected sight range 500, got %v", cfg.SightRange)
				}
			},
		},
		{
			name:        "partial config keeps defaults",
			yamlContent: "smoothingIterations: 5\n",
			validate: func(t *testing.T, cfg *GenerationConfig) {
				w, h := cfg.GridSize()
				if w != 128 || h != 128 {
					t.Errorf("expected default grid 128x128, got %dx%d", w, h)
				}
				if cfg.SmoothingIterations != 5 {
					t.Errorf("expected 5 iterations, got %d", cfg.SmoothingIterations)
				}
				if cfg.WallFillThreshold != cavegen.DefaultWallFillThreshold {
					t.Errorf("expected default threshold, got %v", cfg.WallFillThreshold)
				}
			},
		},
		{
			name:        "zero tile size",
			yamlContent: "tileSize: 0\n",
			wantErr:     true,
			errContains: "tile size",
		},
		{
			name:        "fractional tile size",
			yamlContent: "tileSize: 32.5\n",
			wantErr:     true,
			errContains: "whole number",
		},
		{
			name:        "negative chunks",
			yamlContent: "chunksX: -1\n",
			wantErr:     true,
			errContains: "chunk layout",
		},
		{
			name:        "zero attempts",
			yamlContent: "maxAttempts: 0\n",
			wantErr:     true,
			errContains: "maxAttempts",
		},
		{
			name:        "malformed yaml",
			yamlContent: "chunksX: [1, 2\n",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "generation.yaml")
			if err := os.WriteFile(path, []byte(tt.yamlContent), 0o644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			cfg, err := LoadGenerationConfig(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.validate(t, cfg)
		})
	}
}

func TestLoadGenerationConfigMissingFile(t *testing.T) {
	_, err := LoadGenerationConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestDefaultGenerationConfigIsValid(t *testing.T) {
	cfg := DefaultGenerationConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if Generation.ChunkSize != 64 {
		t.Errorf("package default chunk size = %d, want 64", Generation.ChunkSize)
	}
}
