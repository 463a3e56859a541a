package leveldata

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/automoto/cavern/shared/cavegen"
)

func generateLevel(t *testing.T, seed int64) *cavegen.Level {
	t.Helper()
	p := cavegen.DefaultParams(seed)
	p.Width, p.Height = 48, 32
	level, err := cavegen.Generate(p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return level
}

func encodeLevel(t *testing.T, data *CollisionData) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := WriteTMX(&buf, data); err != nil {
		t.Fatalf("WriteTMX: %v", err)
	}
	return buf.Bytes()
}

func TestFromLevel(t *testing.T) {
	level := generateLevel(t, 5)
	data := FromLevel(level)

	if len(data.SolidRects) != len(level.Colliders) {
		t.Fatalf("solid rects = %d, colliders = %d", len(data.SolidRects), len(level.Colliders))
	}
	first, c := data.SolidRects[0], level.Colliders[0]
	if first.X != c.Center.X-16 || first.Y != c.Center.Y-16 || first.W != 32 || first.H != 32 {
		t.Errorf("first rect = %+v for collider %+v", first, c)
	}
	if data.MapWidth != 48*32 || data.MapHeight != 32*32 {
		t.Errorf("map size = %dx%d", data.MapWidth, data.MapHeight)
	}
	if data.PlayerSpawn.X != level.Spawns.Player.X || data.PlayerSpawn.Y != level.Spawns.Player.Y {
		t.Errorf("player spawn = %+v, want %+v", data.PlayerSpawn, level.Spawns.Player)
	}
	for i, e := range data.EnemySpawns {
		if e.Index != i {
			t.Errorf("enemy %d has index %d", i, e.Index)
		}
	}
}

func TestTMXRoundTrip(t *testing.T) {
	level := generateLevel(t, 12)
	want := FromLevel(level)

	fsys := fstest.MapFS{
		"levels/cave.tmx": {Data: encodeLevel(t, want)},
	}
	got, err := LoadCollisionData(fsys, "levels/cave.tmx")
	if err != nil {
		t.Fatalf("LoadCollisionData: %v", err)
	}

	if !got.Grid.Equal(want.Grid) {
		t.Errorf("grid mismatch:\n%s\nwant:\n%s", got.Grid, want.Grid)
	}
	if len(got.SolidRects) != len(want.SolidRects) {
		t.Errorf("solid rects = %d, want %d", len(got.SolidRects), len(want.SolidRects))
	}
	if got.PlayerSpawn.X != want.PlayerSpawn.X || got.PlayerSpawn.Y != want.PlayerSpawn.Y {
		t.Errorf("player spawn = %+v, want %+v", got.PlayerSpawn, want.PlayerSpawn)
	}
	if len(got.EnemySpawns) != len(want.EnemySpawns) {
		t.Fatalf("enemy spawns = %d, want %d", len(got.EnemySpawns), len(want.EnemySpawns))
	}
	for i := range want.EnemySpawns {
		if got.EnemySpawns[i] != want.EnemySpawns[i] {
			t.Errorf("enemy spawn %d = %+v, want %+v", i, got.EnemySpawns[i], want.EnemySpawns[i])
		}
	}
	if got.Seed != 12 || got.TileSize != 32 {
		t.Errorf("seed/tile size = %d/%v", got.Seed, got.TileSize)
	}
}

func TestWriteTMXLayout(t *testing.T) {
	out := string(encodeLevel(t, FromLevel(generateLevel(t, 2))))
	for _, want := range []string{
		`<map version="1.10" orientation="orthogonal"`,
		`name="wg-tiles"`,
		`<data encoding="csv">`,
		`<objectgroup id="2" name="Spawns">`,
		`name="player"`,
		`<property name="seed" value="2">`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("TMX output missing %q", want)
		}
	}
}

func TestWriteTMXRejectsBadData(t *testing.T) {
	grid := FromLevel(generateLevel(t, 2)).Grid
	tests := []struct {
		name string
		data *CollisionData
	}{
		{"empty", &CollisionData{}},
		{"zero tile size", &CollisionData{Grid: grid}},
		{"fractional tile size", &CollisionData{Grid: grid, TileSize: 32.5}},
		{"infinite tile size", &CollisionData{Grid: grid, TileSize: math.Inf(1)}},
		{"NaN tile size", &CollisionData{Grid: grid, TileSize: math.NaN()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteTMX(&buf, tt.data); !errors.Is(err, cavegen.ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
			if buf.Len() != 0 {
				t.Error("nothing should be written for rejected data")
			}
		})
	}
}

func TestLoadAllLevels(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx":      {Data: encodeLevel(t, FromLevel(generateLevel(t, 2)))},
		"levels/a.tmx":      {Data: encodeLevel(t, FromLevel(generateLevel(t, 1)))},
		"levels/readme.txt": {Data: []byte("not a level")},
	}

	levels, names, err := LoadAllLevels(fsys, "levels")
	if err != nil {
		t.Fatalf("LoadAllLevels: %v", err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Fatalf("names = %v, want [a b]", names)
	}
	if levels["a"].Seed != 1 || levels["b"].Seed != 2 {
		t.Errorf("seeds = %d/%d, want 1/2", levels["a"].Seed, levels["b"].Seed)
	}

	if _, _, err := LoadAllLevels(fstest.MapFS{}, "levels"); err == nil {
		t.Error("expected error for empty levels directory")
	}
}
