package cavegen

import "github.com/automoto/cavern/shared/gamemath"

// Visible reports whether target can be seen from viewer.
//
// Targets farther than maxRange are never visible and skip the geometric
// test. Otherwise the segment viewer->target is tested against every
// collider; any hit strictly before the target occludes it. A hit exactly at
// the target distance does not occlude. A viewer standing inside a collider
// sees nothing but a target at its own position.
func (idx ColliderIndex) Visible(viewer, target Point, maxRange float64) bool {
	dist := viewer.DistanceTo(target)
	if dist > maxRange {
		return false
	}
	if dist == 0 {
		return true
	}
	for _, c := range idx {
		lo, hi := c.Min(), c.Max()
		t, hit := gamemath.SegmentAABB(viewer.X, viewer.Y, target.X, target.Y, lo.X, lo.Y, hi.X, hi.Y)
		if hit && t < 1 {
			return false
		}
	}
	return true
}
