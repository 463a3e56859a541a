package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/automoto/cavern/shared/cavegen"
	"github.com/automoto/cavern/shared/leveldata"
)

func writeSmallConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gen.yaml")
	cfg := "chunksX: 1\nchunksY: 1\nchunkSize: 40\n"
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestRunWritesOutputs(t *testing.T) {
	dir := t.TempDir()
	tmxPath := filepath.Join(dir, "cave.tmx")
	pngPath := filepath.Join(dir, "cave.png")

	var stdout bytes.Buffer
	err := run([]string{
		"-seed", "21",
		"-config", writeSmallConfig(t),
		"-out", tmxPath,
		"-png", pngPath,
		"-scale", "3",
		"-ascii",
		"-report",
	}, &stdout)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	data, err := leveldata.LoadCollisionData(os.DirFS(dir), "cave.tmx")
	if err != nil {
		t.Fatalf("LoadCollisionData: %v", err)
	}
	if data.Grid.Width() != 40 || data.Grid.Height() != 40 {
		t.Errorf("grid = %dx%d, want 40x40", data.Grid.Width(), data.Grid.Height())
	}

	f, err := os.Open(pngPath)
	if err != nil {
		t.Fatalf("open png: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 120 {
		t.Errorf("png = %dx%d, want 120x120", b.Dx(), b.Dy())
	}

	out := stdout.String()
	if !strings.Contains(out, "P") {
		t.Error("ASCII dump has no player marker")
	}
	if !strings.Contains(out, "reachable") {
		t.Errorf("report missing from output:\n%s", out)
	}
}

func TestRunRejectsBadFlags(t *testing.T) {
	var stdout bytes.Buffer
	if err := run([]string{"-scale", "0"}, &stdout); err == nil {
		t.Error("expected error for zero scale")
	}
	if err := run([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, &stdout); err == nil {
		t.Error("expected error for missing config")
	}
}

func TestASCIIDumpMarksSpawns(t *testing.T) {
	p := cavegen.DefaultParams(5)
	p.Width, p.Height = 30, 20
	level, err := cavegen.Generate(p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	rows := strings.Split(asciiDump(level), "\n")
	if len(rows) < 20 {
		t.Fatalf("rows = %d, want at least 20", len(rows))
	}
	px, py := cavegen.WorldToTile(level.Spawns.Player, level.TileSize)
	if rows[py][px] != 'P' {
		t.Errorf("player tile shows %q, want 'P'", rows[py][px])
	}
	if got := strings.Count(asciiDump(level), "E"); got != len(level.Spawns.Enemies) {
		t.Errorf("enemy markers = %d, want %d", got, len(level.Spawns.Enemies))
	}
}

func TestBuildReportCountsReachable(t *testing.T) {
	g, err := cavegen.NewGrid(7, 3)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	// Two chambers split by a wall at x=3.
	for _, x := range []int{1, 2, 4, 5} {
		_ = g.Set(x, 1, cavegen.Floor)
	}
	level := &cavegen.Level{
		Grid:      g,
		Colliders: nil,
		TileSize:  32,
		Spawns: cavegen.SpawnIndex{
			Player:  cavegen.TileCenter(5, 1, 32),
			Enemies: []cavegen.Point{cavegen.TileCenter(1, 1, 32), cavegen.TileCenter(4, 1, 32)},
		},
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 7; x++ {
			if tile, _ := g.At(x, y); tile == cavegen.Wall {
				level.Colliders = append(level.Colliders, cavegen.ColliderEntry{Center: cavegen.TileCenter(x, y, 32), HalfExtent: 16})
			}
		}
	}

	r := buildReport(leveldata.FromLevel(level), level, 1000)
	if r.Total != 2 || r.Reachable != 1 || r.Visible != 1 {
		t.Errorf("report = %+v, want total 2, reachable 1, visible 1", r)
	}
}
