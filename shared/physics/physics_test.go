package physics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/cavern/shared/cavegen"
	"github.com/automoto/cavern/shared/leveldata"
	"github.com/automoto/cavern/tags"
	"github.com/solarlune/resolv"
)

func buildLevel(t *testing.T, seed int64) (*cavegen.Level, *leveldata.CollisionData) {
	t.Helper()
	p := cavegen.DefaultParams(seed)
	p.Width, p.Height = 60, 40
	level, err := cavegen.Generate(p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return level, leveldata.FromLevel(level)
}

func TestNewSpaceRegistersEveryWall(t *testing.T) {
	_, data := buildLevel(t, 4)
	space := NewSpace(data)

	objects := space.Objects()
	if len(objects) != len(data.SolidRects) {
		t.Fatalf("objects = %d, solid rects = %d", len(objects), len(data.SolidRects))
	}
	for _, obj := range objects {
		if !obj.HasTags(tags.ResolvSolid) {
			t.Fatal("wall object missing solid tag")
		}
		if obj.W != data.TileSize || obj.H != data.TileSize {
			t.Fatalf("wall object size %vx%v, want %v", obj.W, obj.H, data.TileSize)
		}
	}
}

func TestHasLineOfSightMatchesColliderIndex(t *testing.T) {
	level, data := buildLevel(t, 9)
	space := NewSpace(data)

	points := append([]cavegen.Point{level.Spawns.Player}, level.Spawns.Enemies...)
	for i, a := range points {
		for _, b := range points[i+1:] {
			want := level.Colliders.Visible(a, b, cavegen.DefaultSightRange)
			got := HasLineOfSight(space, a.X, a.Y, b.X, b.Y, cavegen.DefaultSightRange)
			if got != want {
				t.Fatalf("sight %+v -> %+v: space says %v, collider index says %v", a, b, got, want)
			}
		}
	}
}

func TestHasLineOfSightIgnoresActors(t *testing.T) {
	space := resolv.NewSpace(256, 256, 32, 32)
	space.Add(NewWallObject(leveldata.SolidRect{X: 96, Y: 0, W: 32, H: 32}))

	actor := resolv.NewObject(40, 100, 20, 20, tags.ResolvEnemy)
	space.Add(actor)

	if HasLineOfSight(space, 16, 16, 200, 16, 1000) {
		t.Error("wall between viewer and target should block sight")
	}
	if !HasLineOfSight(space, 16, 110, 200, 110, 1000) {
		t.Error("actors must not block sight")
	}
	if HasLineOfSight(space, 0, 200, 1200, 200, 1000) {
		t.Error("target beyond range should not be visible")
	}
}

func TestHasLineOfSightMatchesColliderIndexOffCenter(t *testing.T) {
	level, data := buildLevel(t, 21)
	space := NewSpace(data)
	w, h := level.WorldSize()
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 2000; i++ {
		a := cavegen.Point{X: rng.Float64() * w, Y: rng.Float64() * h}
		b := cavegen.Point{X: a.X + (rng.Float64()-0.5)*600, Y: a.Y + (rng.Float64()-0.5)*600}
		b.X = math.Max(0, math.Min(w-1, b.X))
		b.Y = math.Max(0, math.Min(h-1, b.Y))

		want := level.Colliders.Visible(a, b, cavegen.DefaultSightRange)
		got := HasLineOfSight(space, a.X, a.Y, b.X, b.Y, cavegen.DefaultSightRange)
		if got != want {
			t.Fatalf("sight %+v -> %+v: space says %v, collider index says %v", a, b, got, want)
		}
	}
}

func TestSightCandidatesStayNearSegment(t *testing.T) {
	level, data := buildLevel(t, 4)
	space := NewSpace(data)
	ts := level.TileSize

	// A horizontal sight line ten tiles long touches a band of cells around
	// it, not the whole space.
	seen := 0
	eachSightCandidate(space, 2*ts, 20*ts, 12*ts, 20*ts, func(*resolv.Object) bool {
		seen++
		return true
	})
	maxCells := (10 + 1 + 2*sightPadding) * (1 + 2*sightPadding)
	if seen > maxCells {
		t.Errorf("visited %d objects, want at most %d", seen, maxCells)
	}
	if total := len(space.Objects()); seen >= total {
		t.Errorf("visited %d of %d objects", seen, total)
	}

	stopped := 0
	eachSightCandidate(space, 2*ts, 20*ts, 12*ts, 20*ts, func(*resolv.Object) bool {
		stopped++
		return false
	})
	if seen > 0 && stopped != 1 {
		t.Errorf("callback ran %d times after returning false", stopped)
	}
}
