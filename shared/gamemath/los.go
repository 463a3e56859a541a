package gamemath

// SegmentAABB tests the segment (x1,y1)->(x2,y2) against the closed box
// [minX,maxX]x[minY,maxY] using the slab method. It returns the fraction of
// the segment, in [0,1], at which the segment first touches the box. A
// segment starting inside the box hits at 0.
func SegmentAABB(x1, y1, x2, y2, minX, minY, maxX, maxY float64) (float64, bool) {
	tMin, tMax := 0.0, 1.0
	if !clipSlab(x1, x2-x1, minX, maxX, &tMin, &tMax) {
		return 0, false
	}
	if !clipSlab(y1, y2-y1, minY, maxY, &tMin, &tMax) {
		return 0, false
	}
	return tMin, true
}

func clipSlab(p, d, lo, hi float64, tMin, tMax *float64) bool {
	if d == 0 {
		return p >= lo && p <= hi
	}
	t1 := (lo - p) / d
	t2 := (hi - p) / d
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	if t1 > *tMin {
		*tMin = t1
	}
	if t2 < *tMax {
		*tMax = t2
	}
	return *tMin <= *tMax
}
