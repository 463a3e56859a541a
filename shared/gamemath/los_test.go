package gamemath

import (
	"math"
	"testing"
)

func TestSegmentAABB(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
		wantHit        bool
		wantT          float64
	}{
		{name: "misses above", x1: 0, y1: -5, x2: 20, y2: -5, wantHit: false},
		{name: "crosses box", x1: 0, y1: 5, x2: 20, y2: 5, wantHit: true, wantT: 0.25},
		{name: "ends before box", x1: 0, y1: 5, x2: 4, y2: 5, wantHit: false},
		{name: "starts inside", x1: 7, y1: 7, x2: 20, y2: 20, wantHit: true, wantT: 0},
		{name: "touches edge at end", x1: 0, y1: 5, x2: 5, y2: 5, wantHit: true, wantT: 1},
		{name: "vertical through", x1: 7, y1: -10, x2: 7, y2: 30, wantHit: true, wantT: 0.375},
		{name: "vertical beside", x1: 11, y1: -10, x2: 11, y2: 30, wantHit: false},
		{name: "diagonal", x1: 0, y1: 0, x2: 20, y2: 20, wantHit: true, wantT: 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := SegmentAABB(tt.x1, tt.y1, tt.x2, tt.y2, 5, 5, 10, 10)
			if hit != tt.wantHit {
				t.Fatalf("hit = %v, want %v", hit, tt.wantHit)
			}
			if hit && math.Abs(got-tt.wantT) > 1e-9 {
				t.Errorf("t = %v, want %v", got, tt.wantT)
			}
		})
	}
}

func TestChaseVelocity(t *testing.T) {
	vx, vy := ChaseVelocity(0, 0, 3, 4, 10)
	if math.Abs(vx-6) > 1e-9 || math.Abs(vy-8) > 1e-9 {
		t.Errorf("velocity = (%v,%v), want (6,8)", vx, vy)
	}

	vx, vy = ChaseVelocity(2, 2, 2, 2, 10)
	if vx != 0 || vy != 0 {
		t.Errorf("velocity at target = (%v,%v), want zero", vx, vy)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-1, 0.01, 4); got != 0.01 {
		t.Errorf("Clamp low = %v", got)
	}
	if got := Clamp(5, 0.01, 4); got != 4 {
		t.Errorf("Clamp high = %v", got)
	}
	if got := Clamp(2, 0.01, 4); got != 2 {
		t.Errorf("Clamp mid = %v", got)
	}
}
