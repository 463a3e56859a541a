package gamemath

import "math"

// ChaseVelocity returns velocity components moving from (fromX, fromY)
// straight toward (toX, toY) at speed. Zero when the points coincide.
func ChaseVelocity(fromX, fromY, toX, toY, speed float64) (velX, velY float64) {
	dirX := toX - fromX
	dirY := toY - fromY
	dist := math.Sqrt(dirX*dirX + dirY*dirY)
	if dist > 0 {
		velX = (dirX / dist) * speed
		velY = (dirY / dist) * speed
	}
	return velX, velY
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
